package allowance

import (
	"errors"
	"fmt"
	"time"
)

var ErrBadCutoverDate = errors.New("malformed cutover date")

// Phase is the time-gated allowance tier. The initial phase holds households
// to the base allowance; once the cutover date arrives the second wave opens
// the remaining seats.
type Phase string

const (
	PhaseInitial    Phase = "initial"
	PhaseSecondWave Phase = "second-wave"
)

// Resolver answers which phase applies at a given instant. Callers must ask
// on every request: an allowance can grow mid-session as the cutover passes,
// so the result is never cached.
type Resolver struct {
	cutover time.Time
	loc     *time.Location
}

// NewResolver parses the cutover date (inclusive: second wave starts at
// midnight of that date) in the event's reference timezone.
func NewResolver(cutoverDate string, loc *time.Location) (*Resolver, error) {
	cutover, err := time.ParseInLocation("2006-01-02", cutoverDate, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadCutoverDate, cutoverDate)
	}
	return &Resolver{cutover: cutover, loc: loc}, nil
}

func (r *Resolver) CurrentPhase(now time.Time) Phase {
	if now.In(r.loc).Before(r.cutover) {
		return PhaseInitial
	}
	return PhaseSecondWave
}
