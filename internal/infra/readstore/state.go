package readstore

import (
	"context"

	"stagenight/internal/infra"
	"stagenight/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NightStateReadStore serves the read side directly from the night_states
// table. Missing rows are not an error here; a household with no activity
// simply gets an empty list.
type NightStateReadStore struct {
	pool *pgxpool.Pool
}

func NewNightStateReadStore(pool *pgxpool.Pool) *NightStateReadStore {
	return &NightStateReadStore{pool: pool}
}

func (s *NightStateReadStore) ListByHousehold(ctx context.Context, household string) ([]*queries.NightStateView, error) {
	const query = `
		SELECT night, tickets_requested, tickets_purchased, shows_selected
		FROM night_states
		WHERE household_id = $1
		ORDER BY night DESC`

	rows, err := s.pool.Query(ctx, query, household)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list night states", err)
	}
	defer rows.Close()

	var views []*queries.NightStateView
	for rows.Next() {
		view := &queries.NightStateView{}
		if err := rows.Scan(&view.Night, &view.TicketsRequested, &view.TicketsPurchased, &view.ShowsSelected); err != nil {
			return nil, infra.WrapRepoErr("failed to scan night state row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate night state rows", err)
	}

	return views, nil
}
