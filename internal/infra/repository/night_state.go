package repository

import (
	"context"
	"errors"

	"stagenight/internal/domain/booking"
	"stagenight/internal/domain/event"
	"stagenight/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NightStateRepository struct {
	pool *pgxpool.Pool
}

func NewNightStateRepository(pool *pgxpool.Pool) *NightStateRepository {
	return &NightStateRepository{pool: pool}
}

func (r *NightStateRepository) Find(ctx context.Context, household string, night event.Night) (*booking.NightState, error) {
	const query = `
		SELECT household_id, night, tickets_requested, tickets_purchased, shows_selected
		FROM night_states
		WHERE household_id = $1 AND night = $2`

	state := &booking.NightState{}
	var nightStr string
	err := r.pool.QueryRow(ctx, query, household, string(night)).Scan(
		&state.Household,
		&nightStr,
		&state.TicketsRequested,
		&state.TicketsPurchased,
		&state.ShowsSelected,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("night state not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find night state", err)
	}
	state.Night = event.Night(nightStr)

	return state, nil
}

// AppendSelection merges a selection into the night record in one statement.
// The upsert is additive so concurrent selections both land.
func (r *NightStateRepository) AppendSelection(ctx context.Context, household string, night event.Night, showtimeKey string, tickets int) error {
	const query = `
		INSERT INTO night_states (household_id, night, tickets_requested, tickets_purchased, shows_selected)
		VALUES ($1, $2, $3, 0, ARRAY[$4])
		ON CONFLICT (household_id, night) DO UPDATE SET
			tickets_requested = night_states.tickets_requested + EXCLUDED.tickets_requested,
			shows_selected = array_append(night_states.shows_selected, $4),
			updated_at = now()`

	if _, err := r.pool.Exec(ctx, query, household, string(night), tickets, showtimeKey); err != nil {
		return infra.WrapRepoErr("failed to append selection", err)
	}
	return nil
}

func (r *NightStateRepository) AddPurchased(ctx context.Context, household string, night event.Night, tickets int) error {
	const query = `
		INSERT INTO night_states (household_id, night, tickets_requested, tickets_purchased, shows_selected)
		VALUES ($1, $2, 0, $3, '{}')
		ON CONFLICT (household_id, night) DO UPDATE SET
			tickets_purchased = night_states.tickets_purchased + EXCLUDED.tickets_purchased,
			updated_at = now()`

	if _, err := r.pool.Exec(ctx, query, household, string(night), tickets); err != nil {
		return infra.WrapRepoErr("failed to add purchased tickets", err)
	}
	return nil
}
