package booking

// Purchase is a confirmed ticket purchase as reported by the checkout
// provider. Day is the ledger key, derived from the showtime's calendar date
// rather than the purchase timestamp.
type Purchase struct {
	Household   string
	ShowtimeKey string
	Day         string
	Tickets     int
	AmountCents int64
}

// DailyLimitRecord aggregates a household's confirmed purchases across all
// shows of one calendar day. Only purchased tickets count here; selections
// alone never consume the daily limit.
type DailyLimitRecord struct {
	Household       string
	Day             string
	TotalTickets    int
	TotalSpentCents int64
	ShowsAttended   []string
}

func NewDailyLimitRecord(household, day string) *DailyLimitRecord {
	return &DailyLimitRecord{Household: household, Day: day}
}

// WouldExceed reports whether buying tickets more would push the record past
// the per-type ceiling. The ceiling is advisory at write time: it gates
// intent issuance, not the ledger update itself.
func (r *DailyLimitRecord) WouldExceed(tickets, max int) bool {
	return r.TotalTickets+tickets > max
}

// Apply merges a confirmed purchase into the record. Additive; the showtime
// key is recorded once per day.
func (r *DailyLimitRecord) Apply(p Purchase) {
	r.TotalTickets += p.Tickets
	r.TotalSpentCents += p.AmountCents
	for _, key := range r.ShowsAttended {
		if key == p.ShowtimeKey {
			return
		}
	}
	r.ShowsAttended = append(r.ShowsAttended, p.ShowtimeKey)
}
