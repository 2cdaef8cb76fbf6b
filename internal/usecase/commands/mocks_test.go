//go:build unit

package commands

import (
	"context"
	"errors"
	"sync"
	"time"

	"stagenight/internal/domain/booking"
	"stagenight/internal/domain/event"
	"stagenight/internal/domain/intent"
	"stagenight/internal/infra"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockNightStateRepository struct {
	mock.Mock
}

func (m *MockNightStateRepository) Find(ctx context.Context, household string, night event.Night) (*booking.NightState, error) {
	args := m.Called(ctx, household, night)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.NightState), args.Error(1)
}

func (m *MockNightStateRepository) AppendSelection(ctx context.Context, household string, night event.Night, showtimeKey string, tickets int) error {
	args := m.Called(ctx, household, night, showtimeKey, tickets)
	return args.Error(0)
}

func (m *MockNightStateRepository) AddPurchased(ctx context.Context, household string, night event.Night, tickets int) error {
	args := m.Called(ctx, household, night, tickets)
	return args.Error(0)
}

type MockDailyLimitRepository struct {
	mock.Mock
}

func (m *MockDailyLimitRepository) FindByDay(ctx context.Context, household, day string) (*booking.DailyLimitRecord, error) {
	args := m.Called(ctx, household, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.DailyLimitRecord), args.Error(1)
}

func (m *MockDailyLimitRepository) ApplyPurchase(ctx context.Context, p booking.Purchase) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockIntentRepository struct {
	mock.Mock
}

func (m *MockIntentRepository) Create(ctx context.Context, in *intent.Intent) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

func (m *MockIntentRepository) FindLatestActive(ctx context.Context, household, showtimeKey string) (*intent.Intent, error) {
	args := m.Called(ctx, household, showtimeKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*intent.Intent), args.Error(1)
}

func (m *MockIntentRepository) MarkCompleted(ctx context.Context, id uuid.UUID, completedAt time.Time) error {
	args := m.Called(ctx, id, completedAt)
	return args.Error(0)
}

// stubSink records asynchronously emitted analytics events without failing.
// Emission is fire-and-forget, so tests never assert on it.
type stubSink struct {
	mu    sync.Mutex
	kinds []string
}

func (s *stubSink) Record(_ context.Context, eventKind string, _ map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kinds = append(s.kinds, eventKind)
	return nil
}

type noopLock struct{}

func (noopLock) Acquire(context.Context, string) (func(), error) {
	return func() {}, nil
}

func notFoundErr() error {
	return infra.WrapRepoErr("not found", errors.New("no rows"), infra.KindNotFound)
}
