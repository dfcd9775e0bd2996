package cache

import (
	"context"
	"time"

	"movie-reservation/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient connects to Redis using the loaded config. It returns nil
// when no address is configured or the server is unreachable; callers must
// treat a nil client as cache-disabled and fall back to direct reads.
func NewRedisClient(config utils.RedisConfig, log *zap.Logger) *redis.Client {
	if config.Addr == "" {
		log.Info("Redis not configured, seat map cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, seat map cache disabled",
			zap.String("addr", config.Addr),
			zap.Error(err))
		return nil
	}

	return client
}

// SeatMapCache stores rendered seat maps per showtime. All methods are no-ops
// on a nil receiver or nil client so the service works without Redis.
type SeatMapCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewSeatMapCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *SeatMapCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &SeatMapCache{
		client: client,
		ttl:    ttl,
		log:    log.With(zap.String("cache", "seatmap")),
	}
}

func (c *SeatMapCache) key(showtimeID string) string {
	return "seatmap:" + showtimeID
}

// Get returns the cached JSON payload for a showtime, or ("", false) on miss.
func (c *SeatMapCache) Get(ctx context.Context, showtimeID string) (string, bool) {
	if c == nil || c.client == nil {
		return "", false
	}

	val, err := c.client.Get(ctx, c.key(showtimeID)).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		c.log.Warn("Seat map cache read failed", zap.Error(err))
		return "", false
	}
	return val, true
}

// Set stores the JSON payload for a showtime with the configured TTL.
func (c *SeatMapCache) Set(ctx context.Context, showtimeID, payload string) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Set(ctx, c.key(showtimeID), payload, c.ttl).Err(); err != nil {
		c.log.Warn("Seat map cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached seat map after seat state changed.
func (c *SeatMapCache) Invalidate(ctx context.Context, showtimeID string) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Del(ctx, c.key(showtimeID)).Err(); err != nil {
		c.log.Warn("Seat map cache invalidation failed", zap.Error(err))
	}
}
