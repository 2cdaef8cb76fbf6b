//go:build unit

package booking

import (
	"testing"

	"stagenight/internal/domain/allowance"
	"stagenight/internal/domain/event"

	"github.com/stretchr/testify/assert"
)

func TestNightStateAccumulation(t *testing.T) {
	state := NewNightState("hh-1", event.NightTue)

	state.AddSelection("tue-530", 2)
	state.AddSelection("tue-630", 1)

	assert.Equal(t, 3, state.TicketsRequested)
	assert.Equal(t, []string{"tue-530", "tue-630"}, state.ShowsSelected)
}

// Selecting the same showtime twice appends the key again. Nothing merges the
// history.
func TestNightStateDuplicateSelections(t *testing.T) {
	state := NewNightState("hh-1", event.NightTue)

	state.AddSelection("tue-530", 1)
	state.AddSelection("tue-530", 1)

	assert.Equal(t, 2, state.TicketsRequested)
	assert.Equal(t, []string{"tue-530", "tue-530"}, state.ShowsSelected)
}

func TestCheckAllowance(t *testing.T) {
	info := allowance.Info{Total: 4}

	tests := []struct {
		name      string
		requested int
		purchased int
		tickets   int
		wantErr   bool
	}{
		{name: "fresh state, within allowance", tickets: 4},
		{name: "fresh state, over allowance", tickets: 5, wantErr: true},
		{name: "requests count against the ceiling", requested: 3, tickets: 2, wantErr: true},
		{name: "purchases count against the ceiling", purchased: 3, tickets: 2, wantErr: true},
		{name: "requests and purchases combine", requested: 2, purchased: 1, tickets: 1},
		{name: "exactly at the ceiling", requested: 2, purchased: 1, tickets: 2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewNightState("hh-1", event.NightTue)
			state.TicketsRequested = tt.requested
			state.TicketsPurchased = tt.purchased

			err := state.CheckAllowance(tt.tickets, info)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrAllowanceExceeded)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHasSelected(t *testing.T) {
	state := NewNightState("hh-1", event.NightThu)
	state.AddSelection("thu-530", 2)

	assert.True(t, state.HasSelected("thu-530"))
	assert.False(t, state.HasSelected("thu-630"))
}
