// Package redis wraps the cache: connection setup, string operations and an
// async worker pool for write-behind cache maintenance.
package redis

import (
	"strconv"

	"school_hub_server/internal/config"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

// Init connects the Redis client and starts the cache worker pool.
func Init() {
	conf := config.GetConfig()
	addr := conf.RedisConfig.Host + ":" + strconv.Itoa(conf.RedisConfig.Port)

	redisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: conf.RedisConfig.Password,
		DB:       conf.RedisConfig.Db,
		// Pool sized to cover the workers plus request handlers.
		PoolSize:     50,
		MinIdleConns: 15,
	})

	InitCacheWorker(15, 3000)
}
