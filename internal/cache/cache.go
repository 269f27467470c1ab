package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barber-platform/internal/config"
)

// Cache fronts the public booking page. A nil client (redis unreachable at
// boot) degrades to pass-through so the API keeps serving.
type Cache struct {
	client *redis.Client
	log    *logrus.Logger
}

func New(cfg *config.Config, log *logrus.Logger) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.WithError(err).Warn("redis unavailable, public page cache disabled")
		return &Cache{client: nil, log: log}
	}

	return &Cache{client: client, log: log}
}

func PublicPageKey(slug string) string {
	return fmt.Sprintf("tenant:%s:public", slug)
}

func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil || c.client == nil {
		return "", false
	}
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.log.WithError(err).Debug("cache set failed")
	}
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.WithError(err).Debug("cache delete failed")
	}
}
