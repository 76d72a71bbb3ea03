package database

import (
	"context"
	"log"
	"time"

	"listeden-backend/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

func ConnectRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr: config.AppConfig.RedisURL,
	})

	_, err := Redis.Ping(context.Background()).Result()
	if err != nil {
		log.Println("⚠️  Redis not available, running without cache:", err)
		Redis = nil
		return
	}

	log.Println("✅ Redis connected successfully")
}

// Cache helpers are nil-safe: every caller works unchanged when Redis is down.

func CacheGet(ctx context.Context, key string) (string, bool) {
	if Redis == nil {
		return "", false
	}
	val, err := Redis.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func CacheSet(ctx context.Context, key string, value string, ttl time.Duration) {
	if Redis == nil {
		return
	}
	if err := Redis.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Printf("⚠️  Redis SET failed for %s: %v", key, err)
	}
}

func CacheDel(ctx context.Context, keys ...string) {
	if Redis == nil || len(keys) == 0 {
		return
	}
	if err := Redis.Del(ctx, keys...).Err(); err != nil {
		log.Printf("⚠️  Redis DEL failed: %v", err)
	}
}
