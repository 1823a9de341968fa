package redis

import (
	"context"

	"school_hub_server/pkg/errorx"
)

// DelKeyIfExists deletes a key when present. Absent keys are not an error.
func DelKeyIfExists(ctx context.Context, key string) error {
	if redisClient == nil {
		return nil
	}
	exists, err := redisClient.Exists(ctx, key).Result()
	if err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "redis exists key %s", key)
	}
	if exists == 1 {
		if err := redisClient.Unlink(ctx, key).Err(); err != nil {
			return errorx.Wrapf(err, errorx.CodeCacheError, "redis unlink key %s", key)
		}
	}
	return nil
}

// DelKeysWithPattern removes every key matching pattern using SCAN batches
// and UNLINK, so neither the scan nor the delete blocks Redis.
func DelKeysWithPattern(ctx context.Context, pattern string) error {
	if redisClient == nil {
		return nil
	}
	var cursor uint64
	for {
		var keys []string
		var err error
		keys, cursor, err = redisClient.Scan(ctx, cursor, pattern, 500).Result()
		if err != nil {
			return errorx.Wrapf(err, errorx.CodeCacheError, "redis scan pattern %s", pattern)
		}

		if len(keys) > 0 {
			if err := redisClient.Unlink(ctx, keys...).Err(); err != nil {
				return errorx.Wrapf(err, errorx.CodeCacheError, "redis unlink keys with pattern %s", pattern)
			}
		}
		if cursor == 0 {
			break
		}
	}
	return nil
}
