package roomcache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"roombook/internal/pkg/config"
	"roombook/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const roomListKey = "rooms:all"

// Cache is a Redis-backed read-through cache of the room list. Misses and
// Redis outages degrade to the read store; they are never surfaced to callers.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, cfg config.RedisConfig) queries.RoomCache {
	return &Cache{client: client, ttl: cfg.RoomTTL}
}

func (c *Cache) GetRooms(ctx context.Context) ([]*queries.RoomView, bool) {
	raw, err := c.client.Get(ctx, roomListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("room cache read failed", "error", err.Error())
		}
		return nil, false
	}

	var rooms []*queries.RoomView
	if err := json.Unmarshal(raw, &rooms); err != nil {
		slog.Warn("room cache entry corrupt, dropping", "error", err.Error())
		c.Invalidate(ctx)
		return nil, false
	}
	return rooms, true
}

func (c *Cache) SetRooms(ctx context.Context, rooms []*queries.RoomView) {
	raw, err := json.Marshal(rooms)
	if err != nil {
		slog.Warn("room cache marshal failed", "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, roomListKey, raw, c.ttl).Err(); err != nil {
		slog.Warn("room cache write failed", "error", err.Error())
	}
}

func (c *Cache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, roomListKey).Err(); err != nil {
		slog.Warn("room cache invalidation failed", "error", err.Error())
	}
}

// NewClient connects to Redis eagerly so that misconfiguration fails startup
// instead of the first request.
func NewClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}
