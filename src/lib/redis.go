package lib

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	CACHE_KEY_DOCTORS = "rsud:doctors"
	CACHE_KEY_STATS   = "rsud:dashboard:stats"
)

var redisClient *redis.Client

// GetRedisClient returns nil when REDIS_HOST is unset; every cache helper
// treats a nil client as a miss.
func GetRedisClient() *redis.Client {
	if redisClient != nil {
		return redisClient
	}
	redisHost := os.Getenv("REDIS_HOST")
	if redisHost == "" {
		return nil
	}
	opt, err := redis.ParseURL(redisHost)
	if err != nil {
		log.Printf("[redis] Error parsing connection string: %s\n", err.Error())
		return nil
	}
	rdb := redis.NewClient(opt)
	redisClient = rdb
	return rdb
}

// NewRedisClient Replace redis instance with custom client implementation
func NewRedisClient(c *redis.Client) *redis.Client {
	redisClient = c
	return redisClient
}

func CacheGet(ctx context.Context, key string, dst any) bool {
	rd := GetRedisClient()
	if rd == nil {
		return false
	}
	val, err := rd.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[redis] Error reading key %s: %s\n", key, err.Error())
		}
		return false
	}
	if err := json.Unmarshal([]byte(val), dst); err != nil {
		log.Printf("[redis] Error decoding key %s: %s\n", key, err.Error())
		return false
	}
	return true
}

func CacheSet(ctx context.Context, key string, value any, ttl time.Duration) {
	rd := GetRedisClient()
	if rd == nil {
		return
	}
	b, err := json.Marshal(value)
	if err != nil {
		log.Printf("[redis] Error encoding key %s: %s\n", key, err.Error())
		return
	}
	if err := rd.Set(ctx, key, string(b), ttl).Err(); err != nil {
		log.Printf("[redis] Failed to set value for key %s: %s\n", key, err.Error())
	}
}

func CacheDel(ctx context.Context, keys ...string) {
	rd := GetRedisClient()
	if rd == nil {
		return
	}
	if err := rd.Del(ctx, keys...).Err(); err != nil {
		log.Printf("[redis] Failed to delete keys %v: %s\n", keys, err.Error())
	}
}
