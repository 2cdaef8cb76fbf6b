package commands

import (
	"context"
	"log/slog"

	"stagenight/internal/domain/allowance"
	"stagenight/internal/domain/booking"
	"stagenight/internal/domain/event"
	"stagenight/internal/domain/intent"
	"stagenight/internal/infra"
	"stagenight/internal/pkg/clock"
	"stagenight/internal/pkg/errs"
)

// IssueIntentResult is the checkout handoff returned to the client.
type IssueIntentResult struct {
	IntentID    string
	CheckoutURL string
}

type IntentCommands interface {
	IssueIntent(ctx context.Context, actor Actor, showtimeKey string, tickets int) (*IssueIntentResult, error)
	ConfirmPurchase(ctx context.Context, household, showtimeKey string, tickets int, amountCents int64, paymentStatus string) error
}

type intentCommandsImpl struct {
	intents     IntentRepository
	nightStates NightStateRepository
	dailyLimits DailyLimitRepository
	catalog     *event.Catalog
	calculator  *allowance.Calculator
	urls        intent.URLBuilder
	analytics   AnalyticsSink
	lock        HouseholdLock
	clock       clock.Clock
}

func NewIntentCommands(
	intents IntentRepository,
	nightStates NightStateRepository,
	dailyLimits DailyLimitRepository,
	catalog *event.Catalog,
	calculator *allowance.Calculator,
	urls intent.URLBuilder,
	analytics AnalyticsSink,
	lock HouseholdLock,
	clock clock.Clock,
) IntentCommands {
	return &intentCommandsImpl{
		intents:     intents,
		nightStates: nightStates,
		dailyLimits: dailyLimits,
		catalog:     catalog,
		calculator:  calculator,
		urls:        urls,
		analytics:   analytics,
		lock:        lock,
		clock:       clock,
	}
}

// IssueIntent re-checks the daily purchase ceiling and hands the household
// off to the external checkout provider. An intent can only target a
// showtime the household already selected.
func (i *intentCommandsImpl) IssueIntent(
	ctx context.Context,
	actor Actor,
	showtimeKey string,
	tickets int,
) (*IssueIntentResult, error) {
	if tickets <= 0 {
		return nil, errs.ErrInvalidTicketCount
	}

	showtime, ok := i.catalog.Get(showtimeKey)
	if !ok {
		return nil, errs.ErrInvalidEvent
	}

	release, err := i.lock.Acquire(ctx, actor.HouseholdID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer release()

	state, err := i.nightStates.Find(ctx, actor.HouseholdID, showtime.Night)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrNoSelection
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !state.HasSelected(showtimeKey) {
		return nil, errs.ErrNoSelection
	}

	if err := i.checkDailyLimit(ctx, actor, tickets); err != nil {
		return nil, err
	}

	now := i.clock.Now()
	record, err := intent.New(actor.HouseholdID, showtimeKey, tickets, "", now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTicketCount)
	}
	checkoutURL := i.urls.CheckoutURL(showtimeKey, record.ID().String(), tickets)
	record = intent.Reconstruct(
		record.ID(), actor.HouseholdID, showtimeKey, tickets,
		checkoutURL, intent.StatusActive, now, nil,
	)

	if err := i.intents.Create(ctx, record); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	i.emit("intent_issued", map[string]any{
		"household": actor.HouseholdID,
		"showtime":  showtimeKey,
		"tickets":   tickets,
		"intent_id": record.ID().String(),
	})

	return &IssueIntentResult{
		IntentID:    record.ID().String(),
		CheckoutURL: checkoutURL,
	}, nil
}

// checkDailyLimit reads today's ledger record, keyed by the current calendar
// day in the event timezone. Only confirmed purchases count against the
// ceiling; mere selections never do.
func (i *intentCommandsImpl) checkDailyLimit(ctx context.Context, actor Actor, tickets int) error {
	today := i.catalog.Today(i.clock.Now())

	record, err := i.dailyLimits.FindByDay(ctx, actor.HouseholdID, today)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		record = booking.NewDailyLimitRecord(actor.HouseholdID, today)
	}

	max := i.calculator.DailyMax(actor.Volunteer)
	if record.WouldExceed(tickets, max) {
		return &DailyLimitExceededError{Current: record.TotalTickets, Max: max}
	}
	return nil
}

// ConfirmPurchase processes a purchase notification from the checkout
// provider. The notification is trusted as-is: the ledger is updated even
// when no matching intent exists, and the sales window is not consulted.
func (i *intentCommandsImpl) ConfirmPurchase(
	ctx context.Context,
	household, showtimeKey string,
	tickets int,
	amountCents int64,
	paymentStatus string,
) error {
	if tickets <= 0 {
		return errs.ErrInvalidTicketCount
	}

	showtime, ok := i.catalog.Get(showtimeKey)
	if !ok {
		return errs.ErrInvalidEvent
	}

	release, err := i.lock.Acquire(ctx, household)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer release()

	now := i.clock.Now()

	active, err := i.intents.FindLatestActive(ctx, household, showtimeKey)
	switch {
	case err == nil:
		if completeErr := active.Complete(now); completeErr == nil {
			if err := i.intents.MarkCompleted(ctx, active.ID(), now); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
	case infra.IsKind(err, infra.KindNotFound):
		// No prior intent. Purchase confirmations are trusted regardless.
		slog.Info("purchase confirmed without matching intent",
			"household", household, "showtime", showtimeKey)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	purchase := booking.Purchase{
		Household:   household,
		ShowtimeKey: showtimeKey,
		Day:         i.catalog.DayKey(showtime),
		Tickets:     tickets,
		AmountCents: amountCents,
	}
	if err := i.dailyLimits.ApplyPurchase(ctx, purchase); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := i.nightStates.AddPurchased(ctx, household, showtime.Night, tickets); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	i.emit("purchase_confirmed", map[string]any{
		"household":      household,
		"showtime":       showtimeKey,
		"tickets":        tickets,
		"amount_cents":   amountCents,
		"payment_status": paymentStatus,
	})

	return nil
}

func (i *intentCommandsImpl) emit(kind string, payload map[string]any) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), analyticsTimeout)
		defer cancel()
		if err := i.analytics.Record(ctx, kind, payload); err != nil {
			slog.Warn("analytics emission failed", "kind", kind, "error", err)
		}
	}()
}
