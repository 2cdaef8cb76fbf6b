//go:build unit

package allowance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentPhase(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	resolver, err := NewResolver("2026-03-01", loc)
	require.NoError(t, err)

	tests := []struct {
		name string
		now  time.Time
		want Phase
	}{
		{
			name: "well before cutover",
			now:  time.Date(2026, 2, 1, 12, 0, 0, 0, loc),
			want: PhaseInitial,
		},
		{
			name: "one second before midnight",
			now:  time.Date(2026, 2, 28, 23, 59, 59, 0, loc),
			want: PhaseInitial,
		},
		{
			name: "exactly midnight of the cutover date",
			now:  time.Date(2026, 3, 1, 0, 0, 0, 0, loc),
			want: PhaseSecondWave,
		},
		{
			name: "after cutover",
			now:  time.Date(2026, 3, 5, 9, 0, 0, 0, loc),
			want: PhaseSecondWave,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.CurrentPhase(tt.now))
		})
	}
}

// The resolver compares instants, so a caller in another timezone gets the
// same answer.
func TestCurrentPhaseCallerTimezoneIrrelevant(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	resolver, err := NewResolver("2026-03-01", loc)
	require.NoError(t, err)

	beforeInUTC := time.Date(2026, 3, 1, 4, 59, 0, 0, time.UTC) // 23:59 EST Feb 28
	assert.Equal(t, PhaseInitial, resolver.CurrentPhase(beforeInUTC))

	afterInUTC := time.Date(2026, 3, 1, 5, 0, 0, 0, time.UTC) // 00:00 EST Mar 1
	assert.Equal(t, PhaseSecondWave, resolver.CurrentPhase(afterInUTC))
}

func TestNewResolverBadDate(t *testing.T) {
	_, err := NewResolver("March 1st", time.UTC)
	assert.ErrorIs(t, err, ErrBadCutoverDate)
}
