package infrastructure

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisTokenStore backs refresh-token rotation with Redis so consumed JTIs
// stay consumed across processes.
type RedisTokenStore struct {
	client *redis.Client
}

// NewRedisTokenStore connects using redisURL. When the URL is empty or the
// connection fails it returns nil so the caller can fall back to the
// in-memory store.
func NewRedisTokenStore(redisURL string) *RedisTokenStore {
	if redisURL == "" {
		return nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, falling back to in-memory token store: %v", err)
		return nil
	}

	client := redis.NewClient(opt)
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection failed, falling back to in-memory token store: %v", err)
		return nil
	}

	log.Printf("Connected to Redis at %s", opt.Addr)
	return &RedisTokenStore{client: client}
}

func (s *RedisTokenStore) Save(ctx context.Context, jti, userId string, ttl time.Duration) error {
	return s.client.Set(ctx, refreshKey(jti), userId, ttl).Err()
}

func (s *RedisTokenStore) Consume(ctx context.Context, jti string) (bool, error) {
	// DEL is atomic: exactly one concurrent refresh with the same token wins.
	deleted, err := s.client.Del(ctx, refreshKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return deleted == 1, nil
}

func (s *RedisTokenStore) Close() error {
	return s.client.Close()
}

func refreshKey(jti string) string {
	return fmt.Sprintf("refresh:%s", jti)
}
