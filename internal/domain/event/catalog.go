package event

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnknownTimeZone = errors.New("unknown event timezone")
	ErrBadDate         = errors.New("malformed event date")
	ErrBadShowTime     = errors.New("malformed show time")
)

// Night identifies one of the two performance evenings.
type Night string

const (
	NightTue Night = "tue"
	NightThu Night = "thu"
)

func ParseNight(s string) (Night, bool) {
	switch Night(s) {
	case NightTue:
		return NightTue, true
	case NightThu:
		return NightThu, true
	}
	return "", false
}

// Showtime is a single performance. Static configuration; never mutated at
// runtime.
type Showtime struct {
	Key         string
	Night       Night
	StartsAt    time.Time
	DisplayName string
}

// Settings is the parsed-from-config shape the catalog is built from. The
// handler/bootstrap layer converts config.EventConfig into this so the domain
// stays free of env concerns.
type Settings struct {
	TimeZone       string
	TueDate        string
	ThuDate        string
	ShowTimes      []string
	SalesCloseHour int
}

// Catalog holds every showtime of the event and answers the sales-window
// question. All temporal checks run in the event's reference timezone, not
// the caller's.
type Catalog struct {
	loc            *time.Location
	salesCloseHour int
	showtimes      []Showtime
	byKey          map[string]Showtime
}

func NewCatalog(s Settings) (*Catalog, error) {
	loc, err := time.LoadLocation(s.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimeZone, s.TimeZone)
	}

	c := &Catalog{
		loc:            loc,
		salesCloseHour: s.SalesCloseHour,
		byKey:          map[string]Showtime{},
	}

	nights := []struct {
		night Night
		date  string
		label string
	}{
		{NightTue, s.TueDate, "Tuesday"},
		{NightThu, s.ThuDate, "Thursday"},
	}

	for _, n := range nights {
		day, err := time.ParseInLocation("2006-01-02", n.date, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadDate, n.date)
		}
		for _, hhmm := range s.ShowTimes {
			clock, err := time.ParseInLocation("15:04", hhmm, loc)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadShowTime, hhmm)
			}
			startsAt := time.Date(day.Year(), day.Month(), day.Day(),
				clock.Hour(), clock.Minute(), 0, 0, loc)
			st := Showtime{
				Key:         showKey(n.night, startsAt),
				Night:       n.night,
				StartsAt:    startsAt,
				DisplayName: fmt.Sprintf("%s %s", n.label, startsAt.Format("3:04 PM")),
			}
			c.showtimes = append(c.showtimes, st)
			c.byKey[st.Key] = st
		}
	}

	return c, nil
}

// showKey renders keys like "tue-530" for a 5:30 PM Tuesday show.
func showKey(night Night, startsAt time.Time) string {
	h := startsAt.Hour() % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%s-%d%02d", night, h, startsAt.Minute())
}

func (c *Catalog) Get(key string) (Showtime, bool) {
	st, ok := c.byKey[key]
	return st, ok
}

func (c *Catalog) Showtimes() []Showtime {
	out := make([]Showtime, len(c.showtimes))
	copy(out, c.showtimes)
	return out
}

func (c *Catalog) ShowtimesForNight(night Night) []Showtime {
	var out []Showtime
	for _, st := range c.showtimes {
		if st.Night == night {
			out = append(out, st)
		}
	}
	return out
}

// IsSalesOpen reports whether requests for the showtime are still accepted:
// until the configured close hour on the showtime's own calendar date.
// Once that instant passes the showtime is closed for good.
func (c *Catalog) IsSalesOpen(st Showtime, now time.Time) bool {
	day := st.StartsAt.In(c.loc)
	closeAt := time.Date(day.Year(), day.Month(), day.Day(), c.salesCloseHour, 0, 0, 0, c.loc)
	return now.Before(closeAt)
}

// AnySalesOpen reports whether at least one showtime of the night is still
// open for requests.
func (c *Catalog) AnySalesOpen(night Night, now time.Time) bool {
	for _, st := range c.ShowtimesForNight(night) {
		if c.IsSalesOpen(st, now) {
			return true
		}
	}
	return false
}

// DayKey returns the ledger day of the showtime, derived from the showtime's
// date rather than any purchase timestamp.
func (c *Catalog) DayKey(st Showtime) string {
	return st.StartsAt.In(c.loc).Format("2006-01-02")
}

// Today returns the current ledger day in the event timezone.
func (c *Catalog) Today(now time.Time) string {
	return now.In(c.loc).Format("2006-01-02")
}

func (c *Catalog) Location() *time.Location {
	return c.loc
}
