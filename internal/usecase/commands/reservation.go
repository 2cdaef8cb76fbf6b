package commands

import (
	"context"
	"log/slog"
	"time"

	"stagenight/internal/domain/allowance"
	"stagenight/internal/domain/booking"
	"stagenight/internal/domain/event"
	"stagenight/internal/infra"
	"stagenight/internal/pkg/clock"
	"stagenight/internal/pkg/errs"
)

const analyticsTimeout = 3 * time.Second

// SelectSlotResult reports the state after a successful selection, including
// the allowance in effect at the instant of the call.
type SelectSlotResult struct {
	Night            event.Night
	ShowtimeKey      string
	TicketsRequested int
	TicketsPurchased int
	ShowsSelected    []string
	Allowance        allowance.Info
}

type ReservationCommands interface {
	SelectSlot(ctx context.Context, actor Actor, night event.Night, showtimeKey string, tickets int) (*SelectSlotResult, error)
}

type reservationCommandsImpl struct {
	nightStates NightStateRepository
	catalog     *event.Catalog
	phases      *allowance.Resolver
	calculator  *allowance.Calculator
	analytics   AnalyticsSink
	lock        HouseholdLock
	clock       clock.Clock
}

func NewReservationCommands(
	nightStates NightStateRepository,
	catalog *event.Catalog,
	phases *allowance.Resolver,
	calculator *allowance.Calculator,
	analytics AnalyticsSink,
	lock HouseholdLock,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		nightStates: nightStates,
		catalog:     catalog,
		phases:      phases,
		calculator:  calculator,
		analytics:   analytics,
		lock:        lock,
		clock:       clock,
	}
}

// SelectSlot validates and records a showtime selection. Checks run in the
// order the policy defines: allowance, then the night's sales window, then
// showtime/night membership. All-or-nothing per call.
func (r *reservationCommandsImpl) SelectSlot(
	ctx context.Context,
	actor Actor,
	night event.Night,
	showtimeKey string,
	tickets int,
) (*SelectSlotResult, error) {
	if tickets <= 0 {
		return nil, errs.ErrInvalidTicketCount
	}

	release, err := r.lock.Acquire(ctx, actor.HouseholdID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer release()

	state, err := r.findOrZeroState(ctx, actor.HouseholdID, night)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	info := r.calculator.Calculate(actor.Volunteer, r.phases.CurrentPhase(now))

	if err := state.CheckAllowance(tickets, info); err != nil {
		return nil, &AllowanceExceededError{Allowance: info}
	}

	if !r.catalog.AnySalesOpen(night, now) {
		return nil, errs.ErrSalesClosed
	}

	showtime, ok := r.catalog.Get(showtimeKey)
	if !ok || showtime.Night != night {
		return nil, errs.ErrInvalidEvent
	}

	if err := r.nightStates.AppendSelection(ctx, actor.HouseholdID, night, showtimeKey, tickets); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	state.AddSelection(showtimeKey, tickets)

	r.emit("slot_selected", map[string]any{
		"household": actor.HouseholdID,
		"showtime":  showtimeKey,
		"tickets":   tickets,
	})

	return &SelectSlotResult{
		Night:            night,
		ShowtimeKey:      showtimeKey,
		TicketsRequested: state.TicketsRequested,
		TicketsPurchased: state.TicketsPurchased,
		ShowsSelected:    state.ShowsSelected,
		Allowance:        info,
	}, nil
}

func (r *reservationCommandsImpl) findOrZeroState(
	ctx context.Context,
	household string,
	night event.Night,
) (*booking.NightState, error) {
	state, err := r.nightStates.Find(ctx, household, night)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.NewNightState(household, night), nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return state, nil
}

// emit publishes an analytics event without blocking or failing the caller.
func (r *reservationCommandsImpl) emit(kind string, payload map[string]any) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), analyticsTimeout)
		defer cancel()
		if err := r.analytics.Record(ctx, kind, payload); err != nil {
			slog.Warn("analytics emission failed", "kind", kind, "error", err)
		}
	}()
}
