package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"rentahome/internal/models"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func New(addr string, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
		DB:       0,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}

	return &RedisCache{Client: client, TTL: ttl}, nil
}

func browseKey(city string) string {
	if city == "" {
		city = "all"
	}
	return fmt.Sprintf(`properties:verified:%s`, city)
}

func (r *RedisCache) PutVerifiedProperties(properties []models.Property, city string) error {
	ctx := context.Background()

	data, err := json.Marshal(properties)
	if err != nil {
		slog.Error("Failed to marshal properties", slog.Any("err", err))
		return err
	}

	key := browseKey(city)
	if err := r.Client.Set(ctx, key, data, r.TTL).Err(); err != nil {
		slog.Error("Failed to set properties in cache", slog.Any("err", err))
		return err
	}

	return nil
}

func (r *RedisCache) GetVerifiedProperties(city string) ([]byte, error) {
	ctx := context.Background()

	data, err := r.Client.Get(ctx, browseKey(city)).Result()
	if err != nil {
		return nil, err
	}

	return []byte(data), nil
}

// DeleteVerifiedProperties drops the cached browse result for a city.
// Called after every review decision so a listing that left verified can
// never be served from cache.
func (r *RedisCache) DeleteVerifiedProperties(city string) {
	ctx := context.Background()

	if err := r.Client.Del(ctx, browseKey(city)).Err(); err != nil {
		slog.Error("Failed to delete cached properties", slog.String("city", city), slog.Any("err", err))
	}
}
