package repository

import (
	"context"
	"errors"

	"stagenight/internal/domain/booking"
	"stagenight/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DailyLimitRepository struct {
	pool *pgxpool.Pool
}

func NewDailyLimitRepository(pool *pgxpool.Pool) *DailyLimitRepository {
	return &DailyLimitRepository{pool: pool}
}

func (r *DailyLimitRepository) FindByDay(ctx context.Context, household, day string) (*booking.DailyLimitRecord, error) {
	const query = `
		SELECT household_id, day, total_tickets, total_spent_cents, shows_attended
		FROM daily_limits
		WHERE household_id = $1 AND day = $2`

	record := &booking.DailyLimitRecord{}
	err := r.pool.QueryRow(ctx, query, household, day).Scan(
		&record.Household,
		&record.Day,
		&record.TotalTickets,
		&record.TotalSpentCents,
		&record.ShowsAttended,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("daily limit record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find daily limit record", err)
	}

	return record, nil
}

// ApplyPurchase merges a confirmed purchase into the day's ledger row.
// Totals add up; the showtime key is recorded at most once per day.
func (r *DailyLimitRepository) ApplyPurchase(ctx context.Context, p booking.Purchase) error {
	const query = `
		INSERT INTO daily_limits (household_id, day, total_tickets, total_spent_cents, shows_attended)
		VALUES ($1, $2, $3, $4, ARRAY[$5])
		ON CONFLICT (household_id, day) DO UPDATE SET
			total_tickets = daily_limits.total_tickets + EXCLUDED.total_tickets,
			total_spent_cents = daily_limits.total_spent_cents + EXCLUDED.total_spent_cents,
			shows_attended = CASE
				WHEN $5 = ANY (daily_limits.shows_attended) THEN daily_limits.shows_attended
				ELSE array_append(daily_limits.shows_attended, $5)
			END,
			updated_at = now()`

	if _, err := r.pool.Exec(ctx, query, p.Household, p.Day, p.Tickets, p.AmountCents, p.ShowtimeKey); err != nil {
		return infra.WrapRepoErr("failed to apply purchase to daily ledger", err)
	}
	return nil
}
