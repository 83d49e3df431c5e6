package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// CheckGateStore implements ports.CheckGate using Redis SET NX. One key per
// address, expiring after the cooldown, so repeated "Check Payment" presses
// within the window don't each hit the ledger RPC. Shared across process
// instances; a future background poller gets its in-flight dedupe from the
// same keys.
type CheckGateStore struct {
	client *goredis.Client
	prefix string
}

// NewCheckGateStore creates a new Redis-backed check gate.
func NewCheckGateStore(client *goredis.Client) *CheckGateStore {
	return &CheckGateStore{
		client: client,
		prefix: "checkgate:",
	}
}

// TryAcquire atomically claims the address for one cooldown window.
// Returns true if no check ran within ttl, false if one already did.
func (s *CheckGateStore) TryAcquire(ctx context.Context, address string, ttl time.Duration) (bool, error) {
	key := s.prefix + address
	result, err := s.client.SetArgs(ctx, key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists — a check ran within the cooldown window
			return false, nil
		}
		return false, fmt.Errorf("redis check gate: %w", err)
	}
	return result == "OK", nil
}
