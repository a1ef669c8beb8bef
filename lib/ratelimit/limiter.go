package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter counts hits per key in fixed time buckets
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

var Instance Limiter

// bucketKey places a hit into the window it belongs to
func bucketKey(key string, window time.Duration, now time.Time) string {
	return fmt.Sprintf("%s:%d", key, now.UnixNano()/int64(window))
}

type memoryBucket struct {
	count     int
	expiresAt time.Time
}

// MemoryLimiter keeps counters in process, for single-instance deployments
type MemoryLimiter struct {
	mu      sync.Mutex
	buckets map[string]*memoryBucket
	now     func() time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		buckets: map[string]*memoryBucket{},
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, error) {
	if key == "" || limit <= 0 || window <= 0 {
		return true, nil
	}
	now := l.now()
	id := bucketKey(key, window, now)

	l.mu.Lock()
	defer l.mu.Unlock()
	bucket, ok := l.buckets[id]
	if !ok {
		bucket = &memoryBucket{expiresAt: now.Truncate(window).Add(window)}
		l.buckets[id] = bucket
	}
	if bucket.count >= limit {
		return false, nil
	}
	bucket.count++
	return true, nil
}

// Cleanup drops buckets of finished windows
func (l *MemoryLimiter) Cleanup() int {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()
	removed := 0
	for id, bucket := range l.buckets {
		if !now.Before(bucket.expiresAt) {
			delete(l.buckets, id)
			removed++
		}
	}
	return removed
}

const redisScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

// RedisLimiter shares counters between instances
type RedisLimiter struct {
	client *redis.Client
	script *redis.Script
	prefix string
	now    func() time.Time
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		script: redis.NewScript(redisScript),
		prefix: "tpo:ratelimit:",
		now:    time.Now,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	if key == "" || limit <= 0 || window <= 0 {
		return true, nil
	}
	ttl := window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}
	allowed, err := l.script.Run(ctx, l.client, []string{l.prefix + bucketKey(key, window, l.now())}, ttl, limit).Int64()
	if err != nil {
		return true, err
	}
	return allowed == 1, nil
}
