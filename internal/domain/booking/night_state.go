package booking

import (
	"errors"

	"stagenight/internal/domain/allowance"
	"stagenight/internal/domain/event"
)

var ErrAllowanceExceeded = errors.New("allowance exceeded for night")

// NightState is the append-only record of a household's activity for one
// night: tickets requested across selections, tickets confirmed purchased,
// and the ordered showtime keys chosen. The same key may appear more than
// once; selections accumulate and are never deduplicated.
type NightState struct {
	Household        string
	Night            event.Night
	TicketsRequested int
	TicketsPurchased int
	ShowsSelected    []string
}

// NewNightState is the zero-valued state used when a household has no record
// for the night yet.
func NewNightState(household string, night event.Night) *NightState {
	return &NightState{Household: household, Night: night}
}

// Committed is the total the allowance check runs against: what the household
// has already asked for plus what it has already bought.
func (s *NightState) Committed() int {
	return s.TicketsRequested + s.TicketsPurchased
}

// CheckAllowance verifies that adding tickets would stay within the ceiling
// computed at the instant of the call. All-or-nothing per call; partial
// grants are never made.
func (s *NightState) CheckAllowance(tickets int, info allowance.Info) error {
	if s.Committed()+tickets > info.Total {
		return ErrAllowanceExceeded
	}
	return nil
}

// AddSelection accumulates a successful slot selection. Repeated calls add
// up; the showtime key is appended even when already present.
func (s *NightState) AddSelection(showtimeKey string, tickets int) {
	s.TicketsRequested += tickets
	s.ShowsSelected = append(s.ShowsSelected, showtimeKey)
}

// HasSelected reports whether the household ever selected the showtime for
// this night. Intents may only be issued against selected showtimes.
func (s *NightState) HasSelected(showtimeKey string) bool {
	for _, key := range s.ShowsSelected {
		if key == showtimeKey {
			return true
		}
	}
	return false
}
