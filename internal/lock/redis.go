package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrLocked = errors.New("another seed run holds the lock")

// release only deletes the key if it still carries our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLock keeps two seed runs from writing the same table at once.
type RedisLock struct {
	Client *redis.Client
	Key    string
	TTL    time.Duration

	token string
}

func New(client *redis.Client, table string, ttl time.Duration) *RedisLock {
	return &RedisLock{
		Client: client,
		Key:    Key(table),
		TTL:    ttl,
	}
}

const (
	ttlMargin   = time.Minute
	fallbackTTL = 30 * time.Minute
)

// TTLFor sizes the lock so it outlives a run of n records where every call
// takes the full per-call timeout. Without a per-call timeout the run has no
// bound and fallbackTTL is used.
func TTLFor(n int, perCall time.Duration) time.Duration {
	if perCall <= 0 {
		return fallbackTTL
	}
	return time.Duration(n)*perCall + ttlMargin
}

func Key(table string) string {
	return "posterseed:lock:" + table
}

func (l *RedisLock) Acquire(ctx context.Context) error {
	token := uuid.NewString()

	ok, err := l.Client.SetNX(ctx, l.Key, token, l.TTL).Result()
	if err != nil {
		return fmt.Errorf("acquire %s: %w", l.Key, err)
	}
	if !ok {
		return ErrLocked
	}

	l.token = token
	return nil
}

func (l *RedisLock) Release(ctx context.Context) error {
	if l.token == "" {
		return nil
	}

	if err := releaseScript.Run(ctx, l.Client, []string{l.Key}, l.token).Err(); err != nil {
		return fmt.Errorf("release %s: %w", l.Key, err)
	}
	l.token = ""
	return nil
}
