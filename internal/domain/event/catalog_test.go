//go:build unit

package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() Settings {
	return Settings{
		TimeZone:       "America/New_York",
		TueDate:        "2026-03-10",
		ThuDate:        "2026-03-12",
		ShowTimes:      []string{"17:30", "18:30"},
		SalesCloseHour: 16,
	}
}

func TestNewCatalogShowtimes(t *testing.T) {
	catalog, err := NewCatalog(testSettings())
	require.NoError(t, err)

	showtimes := catalog.Showtimes()
	require.Len(t, showtimes, 4)

	wantKeys := []string{"tue-530", "tue-630", "thu-530", "thu-630"}
	for i, key := range wantKeys {
		assert.Equal(t, key, showtimes[i].Key)
	}

	st, ok := catalog.Get("tue-530")
	require.True(t, ok)
	assert.Equal(t, NightTue, st.Night)
	assert.Equal(t, 17, st.StartsAt.Hour())
	assert.Equal(t, 30, st.StartsAt.Minute())
	assert.Equal(t, "Tuesday 5:30 PM", st.DisplayName)

	_, ok = catalog.Get("fri-530")
	assert.False(t, ok)
}

func TestNewCatalogBadInput(t *testing.T) {
	s := testSettings()
	s.TimeZone = "Mars/Olympus"
	_, err := NewCatalog(s)
	assert.ErrorIs(t, err, ErrUnknownTimeZone)

	s = testSettings()
	s.TueDate = "03/10/2026"
	_, err = NewCatalog(s)
	assert.ErrorIs(t, err, ErrBadDate)

	s = testSettings()
	s.ShowTimes = []string{"5:30 PM"}
	_, err = NewCatalog(s)
	assert.ErrorIs(t, err, ErrBadShowTime)
}

func TestIsSalesOpen(t *testing.T) {
	catalog, err := NewCatalog(testSettings())
	require.NoError(t, err)
	loc := catalog.Location()

	tue530, ok := catalog.Get("tue-530")
	require.True(t, ok)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{
			name: "weeks before the show",
			now:  time.Date(2026, 2, 1, 12, 0, 0, 0, loc),
			want: true,
		},
		{
			name: "morning of the show",
			now:  time.Date(2026, 3, 10, 9, 0, 0, 0, loc),
			want: true,
		},
		{
			name: "one second before close",
			now:  time.Date(2026, 3, 10, 15, 59, 59, 0, loc),
			want: true,
		},
		{
			name: "exactly at the close hour",
			now:  time.Date(2026, 3, 10, 16, 0, 0, 0, loc),
			want: false,
		},
		{
			name: "during the show",
			now:  time.Date(2026, 3, 10, 18, 0, 0, 0, loc),
			want: false,
		},
		{
			name: "the day after",
			now:  time.Date(2026, 3, 11, 9, 0, 0, 0, loc),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.IsSalesOpen(tue530, tt.now))
		})
	}
}

func TestAnySalesOpen(t *testing.T) {
	catalog, err := NewCatalog(testSettings())
	require.NoError(t, err)
	loc := catalog.Location()

	// Tuesday closed, Thursday still open
	betweenNights := time.Date(2026, 3, 11, 12, 0, 0, 0, loc)
	assert.False(t, catalog.AnySalesOpen(NightTue, betweenNights))
	assert.True(t, catalog.AnySalesOpen(NightThu, betweenNights))

	afterEverything := time.Date(2026, 3, 13, 12, 0, 0, 0, loc)
	assert.False(t, catalog.AnySalesOpen(NightThu, afterEverything))
}

func TestDayKeys(t *testing.T) {
	catalog, err := NewCatalog(testSettings())
	require.NoError(t, err)
	loc := catalog.Location()

	thu630, ok := catalog.Get("thu-630")
	require.True(t, ok)
	assert.Equal(t, "2026-03-12", catalog.DayKey(thu630))

	// Today follows the clock, not the show. The two can disagree.
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, loc)
	assert.Equal(t, "2026-03-10", catalog.Today(now))
}

func TestParseNight(t *testing.T) {
	night, ok := ParseNight("tue")
	assert.True(t, ok)
	assert.Equal(t, NightTue, night)

	_, ok = ParseNight("wed")
	assert.False(t, ok)

	_, ok = ParseNight("")
	assert.False(t, ok)
}
