package intent

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotActive      = errors.New("intent is not active")
	ErrInvalidStatus  = errors.New("invalid intent status")
	ErrInvalidTickets = errors.New("intent requires a positive ticket count")
)

// Status is the lifecycle of a checkout handoff. Only the active→completed
// transition happens inside the engine; abandoned and expired are applied by
// external housekeeping.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusAbandoned Status = "abandoned"
	StatusExpired   Status = "expired"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusCompleted, StatusAbandoned, StatusExpired:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Intent is a provisional checkout handoff to the external payment provider.
type Intent struct {
	id          uuid.UUID
	household   string
	showtimeKey string
	tickets     int
	checkoutRef string
	status      Status
	createdAt   time.Time
	completedAt *time.Time
}

func New(household, showtimeKey string, tickets int, checkoutRef string, now time.Time) (*Intent, error) {
	if tickets <= 0 {
		return nil, ErrInvalidTickets
	}
	return &Intent{
		id:          uuid.New(),
		household:   household,
		showtimeKey: showtimeKey,
		tickets:     tickets,
		checkoutRef: checkoutRef,
		status:      StatusActive,
		createdAt:   now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	household, showtimeKey string,
	tickets int,
	checkoutRef string,
	status Status,
	createdAt time.Time,
	completedAt *time.Time,
) *Intent {
	return &Intent{
		id:          id,
		household:   household,
		showtimeKey: showtimeKey,
		tickets:     tickets,
		checkoutRef: checkoutRef,
		status:      status,
		createdAt:   createdAt,
		completedAt: completedAt,
	}
}

// Complete transitions an active intent when a matching purchase confirmation
// arrives. Terminal states never transition again.
func (i *Intent) Complete(now time.Time) error {
	if i.status != StatusActive {
		return ErrNotActive
	}
	i.status = StatusCompleted
	i.completedAt = &now
	return nil
}

func (i *Intent) IsActive() bool { return i.status == StatusActive }

func (i *Intent) ID() uuid.UUID           { return i.id }
func (i *Intent) Household() string       { return i.household }
func (i *Intent) ShowtimeKey() string     { return i.showtimeKey }
func (i *Intent) Tickets() int            { return i.tickets }
func (i *Intent) CheckoutRef() string     { return i.checkoutRef }
func (i *Intent) Status() Status          { return i.status }
func (i *Intent) CreatedAt() time.Time    { return i.createdAt }
func (i *Intent) CompletedAt() *time.Time { return i.completedAt }
