package cache

import (
	"context"
	"encoding/json"
	goerrors "errors"
	"time"

	"github.com/redis/go-redis/v9"

	"scheduler-callback-api/core/config"
	"scheduler-callback-api/core/logger"
)

// Cache is the keyed JSON store backing the pending-request correlation state.
type Cache interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Get unmarshals the stored value into dest. A missing key is not an
	// error; it returns (false, nil).
	Get(ctx context.Context, key string, dest any) (bool, error)
	// GetDel atomically reads and deletes in one command, so of any number
	// of racing callers exactly one sees the value. Missing key is
	// (false, nil) like Get.
	GetDel(ctx context.Context, key string, dest any) (bool, error)
	// Delete is idempotent; deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Client() *redis.Client
}

type redisCache struct {
	client *redis.Client
}

func NewRedisCache(cfg config.RedisConfig) Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &redisCache{client: client}
}

func (c *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Error("Cache:Set:Marshal:Error:", err)
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if goerrors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logger.Error("Cache:Get:Unmarshal:Error:", err)
		return false, err
	}
	return true, nil
}

func (c *redisCache) GetDel(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.GetDel(ctx, key).Bytes()
	if goerrors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logger.Error("Cache:GetDel:Unmarshal:Error:", err)
		return false, err
	}
	return true, nil
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

func (c *redisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *redisCache) Client() *redis.Client {
	return c.client
}
