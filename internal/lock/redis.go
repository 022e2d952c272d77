package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

// Redis is a Locker backed by redislock.
type Redis struct {
	client *redislock.Client
	wait   time.Duration
}

// Connect opens a Redis client and checks it answers.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return rdb, nil
}

// NewRedis wraps rdb. Obtain retries for up to wait when the key is busy.
func NewRedis(rdb redis.UniversalClient, wait time.Duration) *Redis {
	return &Redis{client: redislock.New(rdb), wait: wait}
}

func (r *Redis) Obtain(ctx context.Context, key string, ttl time.Duration) (Lease, error) {
	var opts *redislock.Options
	if r.wait > 0 {
		opts = &redislock.Options{
			RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(50*time.Millisecond), int(r.wait/(50*time.Millisecond))),
		}
	}

	l, err := r.client.Obtain(ctx, "lock:"+key, ttl, opts)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, ErrNotObtained
	}

	if err != nil {
		return nil, fmt.Errorf("obtaining lock %s: %w", key, err)
	}

	return l, nil
}
