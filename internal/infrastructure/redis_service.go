package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const tokenKeyPrefix = "token:"

// RedisService caches token lookups. A service built without a reachable
// server is disabled: writes are dropped and reads report a miss.
type RedisService struct {
	client *redis.Client
}

func NewRedisService(ctx context.Context, redisURL string, log logrus.FieldLogger) *RedisService {
	if redisURL == "" {
		log.Info("redis not configured, token cache disabled")
		return &RedisService{}
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.WithError(err).Warn("invalid REDIS_URL, token cache disabled")
		return &RedisService{}
	}

	client := redis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.WithError(err).Warn("redis connection failed, token cache disabled")
		client.Close()
		return &RedisService{}
	}

	log.WithField("addr", opt.Addr).Info("connected to redis")
	return &RedisService{client: client}
}

// NewRedisServiceWithClient wraps an existing client; nil disables the cache.
func NewRedisServiceWithClient(client *redis.Client) *RedisService {
	return &RedisService{client: client}
}

func (r *RedisService) Enabled() bool {
	return r.client != nil
}

func (r *RedisService) SetToken(ctx context.Context, token, userID string, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	return r.client.Set(ctx, tokenKeyPrefix+token, userID, ttl).Err()
}

func (r *RedisService) GetToken(ctx context.Context, token string) (string, error) {
	if r.client == nil {
		return "", redis.Nil
	}
	return r.client.Get(ctx, tokenKeyPrefix+token).Result()
}

func (r *RedisService) DeleteToken(ctx context.Context, token string) error {
	if r.client == nil {
		return nil
	}
	return r.client.Del(ctx, tokenKeyPrefix+token).Err()
}

func (r *RedisService) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}

// IsCacheMiss reports whether err only means the key was absent.
func IsCacheMiss(err error) bool {
	return errors.Is(err, redis.Nil)
}
