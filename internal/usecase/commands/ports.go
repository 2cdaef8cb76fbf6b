package commands

import (
	"context"
	"fmt"
	"time"

	"stagenight/internal/domain/allowance"
	"stagenight/internal/domain/booking"
	"stagenight/internal/domain/event"
	"stagenight/internal/domain/intent"
	"stagenight/internal/pkg/errs"

	"github.com/google/uuid"
)

// Actor is the authenticated household as supplied by the credential
// subsystem. The engine trusts both fields completely.
type Actor struct {
	HouseholdID string
	Volunteer   bool
}

// NightStateRepository is the write-side store for per-night household state.
// Mutations are additive merges so concurrent increments cannot be lost.
type NightStateRepository interface {
	// Find returns KindNotFound when the household has no record for the
	// night yet; callers substitute a zero-valued state.
	Find(ctx context.Context, household string, night event.Night) (*booking.NightState, error)
	AppendSelection(ctx context.Context, household string, night event.Night, showtimeKey string, tickets int) error
	AddPurchased(ctx context.Context, household string, night event.Night, tickets int) error
}

// DailyLimitRepository is the cross-show purchase ledger, keyed by household
// and calendar day.
type DailyLimitRepository interface {
	// FindByDay returns KindNotFound when no purchase has been recorded for
	// the household on that day.
	FindByDay(ctx context.Context, household, day string) (*booking.DailyLimitRecord, error)
	ApplyPurchase(ctx context.Context, p booking.Purchase) error
}

type IntentRepository interface {
	Create(ctx context.Context, in *intent.Intent) error
	// FindLatestActive returns KindNotFound when the household has no active
	// intent for the showtime.
	FindLatestActive(ctx context.Context, household, showtimeKey string) (*intent.Intent, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, completedAt time.Time) error
}

// AnalyticsSink is fire-and-forget: callers never propagate its errors into
// the primary flow.
type AnalyticsSink interface {
	Record(ctx context.Context, eventKind string, payload map[string]any) error
}

// HouseholdLock serializes mutations per household. The read-check-write
// sequences below are not transactional, so without this scope two
// concurrent requests could both pass a ceiling check.
type HouseholdLock interface {
	Acquire(ctx context.Context, householdID string) (release func(), err error)
}

// AllowanceExceededError carries the ceiling computed at the instant of the
// rejected call so the client can render it.
type AllowanceExceededError struct {
	Allowance allowance.Info
}

func (e *AllowanceExceededError) Error() string {
	return fmt.Sprintf("allowance exceeded: total allowance is %d", e.Allowance.Total)
}

func (e *AllowanceExceededError) Is(target error) bool {
	return target == errs.ErrAllowanceExceeded
}

// DailyLimitExceededError carries the ledger numbers behind the rejection.
type DailyLimitExceededError struct {
	Current int
	Max     int
}

func (e *DailyLimitExceededError) Error() string {
	return fmt.Sprintf("daily purchase limit exceeded: %d purchased, max %d", e.Current, e.Max)
}

func (e *DailyLimitExceededError) Is(target error) bool {
	return target == errs.ErrDailyLimitExceeded
}
