package session

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "admin_session:"

// RedisTokenStore shares sessions across restarts and replicas; expiry is
// native TTL, so nothing to evict.
type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(addr, password string) *RedisTokenStore {
	return &RedisTokenStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

func (s *RedisTokenStore) Save(ctx context.Context, token string, ttl time.Duration) error {
	return s.client.Set(ctx, redisKeyPrefix+token, "1", ttl).Err()
}

func (s *RedisTokenStore) Valid(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, redisKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisTokenStore) Revoke(ctx context.Context, token string) error {
	return s.client.Del(ctx, redisKeyPrefix+token).Err()
}
