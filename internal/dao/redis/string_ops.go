package redis

import (
	"context"
	"errors"
	"time"

	"school_hub_server/pkg/errorx"

	"github.com/redis/go-redis/v9"
)

// SetKeyEx stores a value with a TTL.
func SetKeyEx(ctx context.Context, key string, value string, timeout time.Duration) error {
	if redisClient == nil {
		return nil
	}
	if err := redisClient.Set(ctx, key, value, timeout).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "redis set key %s", key)
	}
	return nil
}

// GetKey reads a value; a missing key yields "" without error.
func GetKey(ctx context.Context, key string) (string, error) {
	if redisClient == nil {
		return "", nil
	}
	value, err := redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", errorx.Wrapf(err, errorx.CodeCacheError, "redis get key %s", key)
	}
	return value, nil
}

// GetKeyNilIsErr reads a value; a missing key is a CodeNotFound error, which
// lets cache readers distinguish "no entry" from "empty entry".
func GetKeyNilIsErr(ctx context.Context, key string) (string, error) {
	// Without a connected client every read is a miss.
	if redisClient == nil {
		return "", errorx.Newf(errorx.CodeNotFound, "redis key %s not found", key)
	}
	value, err := redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", errorx.Wrapf(err, errorx.CodeNotFound, "redis key %s not found", key)
		}
		return "", errorx.Wrapf(err, errorx.CodeCacheError, "redis get key %s", key)
	}
	return value, nil
}
