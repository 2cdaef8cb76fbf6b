//go:build unit

package queries

import (
	"context"
	"errors"
	"testing"
	"time"

	"stagenight/internal/domain/allowance"
	"stagenight/internal/domain/event"
	"stagenight/internal/pkg/clock"
	"stagenight/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNightStateReadStore struct {
	mock.Mock
}

func (m *MockNightStateReadStore) ListByHousehold(ctx context.Context, household string) ([]*NightStateView, error) {
	args := m.Called(ctx, household)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*NightStateView), args.Error(1)
}

func newStateQueries(t *testing.T, store NightStateReadStore, now time.Time) StateQueries {
	t.Helper()

	catalog, err := event.NewCatalog(event.Settings{
		TimeZone:       "America/New_York",
		TueDate:        "2026-03-10",
		ThuDate:        "2026-03-12",
		ShowTimes:      []string{"17:30", "18:30"},
		SalesCloseHour: 16,
	})
	require.NoError(t, err)

	resolver, err := allowance.NewResolver("2026-03-01", catalog.Location())
	require.NoError(t, err)

	calculator := allowance.NewCalculator(allowance.Constants{
		Base:              2,
		VolunteerBonus:    2,
		SecondWaveBonus:   4,
		MaxStandard:       4,
		MaxVolunteer:      8,
		DailyMaxStandard:  2,
		DailyMaxVolunteer: 4,
	})

	return NewStateQueries(store, catalog, resolver, calculator, clock.NewFixedClock(now))
}

func TestGetState(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	t.Run("assembles phase, allowance, nights and open showtimes", func(t *testing.T) {
		store := new(MockNightStateReadStore)
		nights := []*NightStateView{
			{Night: "tue", TicketsRequested: 2, ShowsSelected: []string{"tue-530"}},
		}
		store.On("ListByHousehold", mock.Anything, "hh-1").Return(nights, nil)

		now := time.Date(2026, 2, 15, 12, 0, 0, 0, loc)
		svc := newStateQueries(t, store, now)

		view, err := svc.GetState(context.Background(), "hh-1", false)
		require.NoError(t, err)

		assert.Equal(t, "hh-1", view.HouseholdID)
		assert.Equal(t, "initial", view.Phase)
		assert.Equal(t, 2, view.Allowance.Total)
		assert.Len(t, view.Nights, 1)
		assert.Len(t, view.AvailableShowtimes, 4)
	})

	t.Run("volunteer in the second wave", func(t *testing.T) {
		store := new(MockNightStateReadStore)
		store.On("ListByHousehold", mock.Anything, "hh-2").Return([]*NightStateView{}, nil)

		now := time.Date(2026, 3, 5, 12, 0, 0, 0, loc)
		svc := newStateQueries(t, store, now)

		view, err := svc.GetState(context.Background(), "hh-2", true)
		require.NoError(t, err)

		assert.Equal(t, "second-wave", view.Phase)
		assert.Equal(t, 8, view.Allowance.Total)
	})

	t.Run("closed showtimes drop out of the list", func(t *testing.T) {
		store := new(MockNightStateReadStore)
		store.On("ListByHousehold", mock.Anything, "hh-1").Return([]*NightStateView{}, nil)

		// After Tuesday's close, before Thursday's.
		now := time.Date(2026, 3, 11, 12, 0, 0, 0, loc)
		svc := newStateQueries(t, store, now)

		view, err := svc.GetState(context.Background(), "hh-1", false)
		require.NoError(t, err)

		require.Len(t, view.AvailableShowtimes, 2)
		for _, st := range view.AvailableShowtimes {
			assert.Equal(t, "thu", st.Night)
		}
	})

	t.Run("reading state twice changes nothing", func(t *testing.T) {
		store := new(MockNightStateReadStore)
		store.On("ListByHousehold", mock.Anything, "hh-1").Return([]*NightStateView{
			{Night: "tue", TicketsRequested: 1, ShowsSelected: []string{"tue-530"}},
		}, nil)

		now := time.Date(2026, 2, 15, 12, 0, 0, 0, loc)
		svc := newStateQueries(t, store, now)

		first, err := svc.GetState(context.Background(), "hh-1", false)
		require.NoError(t, err)
		second, err := svc.GetState(context.Background(), "hh-1", false)
		require.NoError(t, err)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("state changed between reads (-first +second):\n%s", diff)
		}
	})

	t.Run("store failure surfaces as database error", func(t *testing.T) {
		store := new(MockNightStateReadStore)
		store.On("ListByHousehold", mock.Anything, "hh-1").Return(nil, errors.New("connection reset"))

		now := time.Date(2026, 2, 15, 12, 0, 0, 0, loc)
		svc := newStateQueries(t, store, now)

		_, err := svc.GetState(context.Background(), "hh-1", false)
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}
