package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ServerLocker serializes lifecycle mutations per panel server. Two
// concurrent create/power/suspend/delete calls against the same server would
// otherwise race each other through the external panel.
type ServerLocker interface {
	TryLock(ctx context.Context, panelServerID int64) (bool, error)
	Unlock(ctx context.Context, panelServerID int64) error
}

type serverLocker struct {
	redis *redis.Client
	ttl   time.Duration
}

func (l *serverLocker) lockKey(panelServerID int64) string {
	return fmt.Sprintf("panel-server-lock:%d", panelServerID)
}

func (l *serverLocker) TryLock(ctx context.Context, panelServerID int64) (bool, error) {
	acquired, err := l.redis.SetNX(ctx, l.lockKey(panelServerID), 1, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("ServerLocker.TryLock: %w", err)
	}
	return acquired, nil
}

func (l *serverLocker) Unlock(ctx context.Context, panelServerID int64) error {
	err := l.redis.Del(ctx, l.lockKey(panelServerID)).Err()
	if err != nil {
		return fmt.Errorf("ServerLocker.Unlock: %w", err)
	}
	return nil
}

func NewServerLocker(redisClient *redis.Client, ttl time.Duration) ServerLocker {
	return &serverLocker{
		redis: redisClient,
		ttl:   ttl,
	}
}
