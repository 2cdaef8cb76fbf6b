package lock

import (
	"context"
	"log/slog"
	"time"

	"stagenight/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	leaseTTL      = 10 * time.Second
	retryInterval = 50 * time.Millisecond
	acquireWait   = 5 * time.Second
)

// releaseScript deletes the lease only when it still holds our token, so an
// expired lease taken over by another request is never released from here.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`)

// HouseholdLock serializes writes per household with a Redis lease. When no
// Redis client is available the lock degrades to a no-op and the engine runs
// with best-effort consistency only.
type HouseholdLock struct {
	client *redis.Client
}

func NewHouseholdLock(client *redis.Client) *HouseholdLock {
	return &HouseholdLock{client: client}
}

func (l *HouseholdLock) Acquire(ctx context.Context, householdID string) (func(), error) {
	if l.client == nil {
		return func() {}, nil
	}

	key := "lock:household:" + householdID
	token := uuid.NewString()
	deadline := time.Now().Add(acquireWait)

	for {
		ok, err := l.client.SetNX(ctx, key, token, leaseTTL).Result()
		if err != nil {
			return nil, errs.Wrap(err, "failed to acquire household lock")
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return nil, errs.New("timed out waiting for household lock")
		}
		select {
		case <-ctx.Done():
			return nil, errs.Wrap(ctx.Err(), "canceled while waiting for household lock")
		case <-time.After(retryInterval):
		}
	}

	release := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
			slog.Warn("failed to release household lock", "household", householdID, "error", err)
		}
	}
	return release, nil
}
