package initializers

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"tpo-portal-backend/config"
	"tpo-portal-backend/lib/ratelimit"
	baseworker "tpo-portal-backend/lib/utils/base-worker"
)

// InitRateLimit shares counters through redis when it is configured and reachable
func InitRateLimit() {
	if !*config.Conf.RateLimit.Enabled {
		log.Info("rate limit disabled")
		return
	}
	if config.Conf.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     config.Conf.Redis.Addr,
			Password: config.Conf.Redis.Password,
			DB:       config.Conf.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		err := client.Ping(ctx).Err()
		if err == nil {
			ratelimit.Instance = ratelimit.NewRedisLimiter(client)
			log.WithField("redis_addr", config.Conf.Redis.Addr).Info("rate limit counters stored in redis")
			return
		}
		log.WithError(err).Warn("redis unavailable, rate limit counters kept in memory")
		_ = client.Close()
	}
	ratelimit.Instance = ratelimit.NewMemoryLimiter()
}

func RateLimitWindow() time.Duration {
	return time.Duration(config.Conf.RateLimit.WindowSeconds) * time.Second
}

func startRateLimitCleanup(ctx context.Context) {
	limiter, ok := ratelimit.Instance.(*ratelimit.MemoryLimiter)
	if !ok || RateLimitWindow() <= 0 {
		return
	}
	worker := baseworker.NewInstance("RateLimitCleanupWorker", RateLimitWindow(), RateLimitWindow())
	go worker.Run(ctx, func(ctx context.Context) error {
		if removed := limiter.Cleanup(); removed > 0 {
			worker.GetLogger().WithField("removed", removed).Debug("expired rate limit buckets dropped")
		}
		return nil
	})
}
