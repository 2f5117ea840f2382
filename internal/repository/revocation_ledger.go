package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationLedger is the denylist of logged-out session tokens. Entries
// self-expire after the retention window passed to Revoke; the caller must
// keep that window at least as long as the longest token TTL in use, or a
// revoked token could outlive its ledger entry and verify again.
type RevocationLedger interface {
	// Revoke is idempotent: revoking an already-revoked token succeeds.
	Revoke(ctx context.Context, token string, retention time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

const revokedKeyPrefix = "revoked:"

type redisRevocationLedger struct {
	client *redis.Client
}

func NewRedisRevocationLedger(client *redis.Client) RevocationLedger {
	return &redisRevocationLedger{client: client}
}

func (l *redisRevocationLedger) Revoke(ctx context.Context, token string, retention time.Duration) error {
	return l.client.Set(ctx, revokedKeyPrefix+token, "1", retention).Err()
}

func (l *redisRevocationLedger) IsRevoked(ctx context.Context, token string) (bool, error) {
	count, err := l.client.Exists(ctx, revokedKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
