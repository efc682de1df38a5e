package cache

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const DefaultRefreshLockKey = "treasury-curve:refresh-lock"

// releaseScript deletes the key only if this holder still owns it.
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0`

type LockClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// RedisLock is a single-holder lock shared by every process that talks to the
// same Redis. The TTL bounds how long a crashed holder can block others.
type RedisLock struct {
	client   LockClient
	key      string
	ttl      time.Duration
	newToken func() string
}

func NewRedisLock(client LockClient, key string, ttl time.Duration) *RedisLock {
	if key == "" {
		key = DefaultRefreshLockKey
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisLock{
		client:   client,
		key:      key,
		ttl:      ttl,
		newToken: uuid.NewString,
	}
}

// TryAcquire returns immediately. When acquired is false someone else holds the lock.
func (l *RedisLock) TryAcquire(ctx context.Context) (release func(), acquired bool, err error) {
	token := l.newToken()
	ok, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	release = func() {
		// Detached from the caller's context, which may already be done.
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := l.client.Eval(ctx, releaseScript, []string{l.key}, token).Err(); err != nil {
			log.Printf("refresh lock release error: %v", err)
		}
	}
	return release, true, nil
}
