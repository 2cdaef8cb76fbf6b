package repository

import (
	"context"
	"errors"
	"time"

	"stagenight/internal/domain/intent"
	"stagenight/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IntentRepository struct {
	pool *pgxpool.Pool
}

func NewIntentRepository(pool *pgxpool.Pool) *IntentRepository {
	return &IntentRepository{pool: pool}
}

func (r *IntentRepository) Create(ctx context.Context, in *intent.Intent) error {
	const query = `
		INSERT INTO purchase_intents (id, household_id, showtime_key, tickets, checkout_ref, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		in.ID(), in.Household(), in.ShowtimeKey(), in.Tickets(),
		in.CheckoutRef(), string(in.Status()), in.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create purchase intent", err)
	}
	return nil
}

func (r *IntentRepository) FindLatestActive(ctx context.Context, household, showtimeKey string) (*intent.Intent, error) {
	const query = `
		SELECT id, household_id, showtime_key, tickets, checkout_ref, status, created_at, completed_at
		FROM purchase_intents
		WHERE household_id = $1 AND showtime_key = $2 AND status = 'active'
		ORDER BY created_at DESC
		LIMIT 1`

	var (
		id          uuid.UUID
		householdID string
		key         string
		tickets     int
		checkoutRef string
		status      string
		createdAt   time.Time
		completedAt *time.Time
	)
	err := r.pool.QueryRow(ctx, query, household, showtimeKey).Scan(
		&id, &householdID, &key, &tickets, &checkoutRef, &status, &createdAt, &completedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("active intent not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active intent", err)
	}

	parsed, err := intent.ParseStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid intent status in store", err)
	}

	return intent.Reconstruct(id, householdID, key, tickets, checkoutRef, parsed, createdAt, completedAt), nil
}

func (r *IntentRepository) MarkCompleted(ctx context.Context, id uuid.UUID, completedAt time.Time) error {
	const query = `
		UPDATE purchase_intents
		SET status = 'completed', completed_at = $2
		WHERE id = $1 AND status = 'active'`

	if _, err := r.pool.Exec(ctx, query, id, completedAt); err != nil {
		return infra.WrapRepoErr("failed to mark intent completed", err)
	}
	return nil
}
