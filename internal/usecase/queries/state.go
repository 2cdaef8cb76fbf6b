package queries

import (
	"context"

	"stagenight/internal/domain/allowance"
	"stagenight/internal/domain/event"
	"stagenight/internal/pkg/clock"
	"stagenight/internal/pkg/errs"
)

// NightStateReadStore is the read-side view over per-night household state.
type NightStateReadStore interface {
	ListByHousehold(ctx context.Context, household string) ([]*NightStateView, error)
}

type StateQueries interface {
	// GetState assembles everything the booking page needs: the phase and
	// allowance in effect right now, the household's night records, and the
	// showtimes still open for requests.
	GetState(ctx context.Context, householdID string, volunteer bool) (*HouseholdStateView, error)
}

type stateQueriesImpl struct {
	store      NightStateReadStore
	catalog    *event.Catalog
	phases     *allowance.Resolver
	calculator *allowance.Calculator
	clock      clock.Clock
}

func NewStateQueries(
	store NightStateReadStore,
	catalog *event.Catalog,
	phases *allowance.Resolver,
	calculator *allowance.Calculator,
	clock clock.Clock,
) StateQueries {
	return &stateQueriesImpl{
		store:      store,
		catalog:    catalog,
		phases:     phases,
		calculator: calculator,
		clock:      clock,
	}
}

func (q *stateQueriesImpl) GetState(ctx context.Context, householdID string, volunteer bool) (*HouseholdStateView, error) {
	now := q.clock.Now()
	phase := q.phases.CurrentPhase(now)

	nights, err := q.store.ListByHousehold(ctx, householdID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var available []ShowtimeView
	for _, st := range q.catalog.Showtimes() {
		if !q.catalog.IsSalesOpen(st, now) {
			continue
		}
		available = append(available, ShowtimeView{
			Key:         st.Key,
			Night:       string(st.Night),
			DisplayName: st.DisplayName,
			StartsAt:    st.StartsAt,
		})
	}

	return &HouseholdStateView{
		HouseholdID:        householdID,
		Volunteer:          volunteer,
		Phase:              string(phase),
		Allowance:          q.calculator.Calculate(volunteer, phase),
		Nights:             nights,
		AvailableShowtimes: available,
	}, nil
}
