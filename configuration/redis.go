package configuration

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to the redis server used as the doctor-directory cache.
// The cache is optional: an empty address returns a nil client and callers
// treat that as "cache disabled". Connection is retried a few times because
// redis tends to come up after the app in compose setups.
func InitRedis(cfg Config) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, running without cache")
		return nil
	}

	const maxRetries = 5
	const retryDelay = 5 * time.Second

	var client *redis.Client
	var err error
	for i := 0; i < maxRetries; i++ {
		client = redis.NewClient(&redis.Options{
			Network: "tcp",
			Addr:    cfg.RedisAddr,
		})
		_, err = client.Ping(context.Background()).Result()
		if err == nil {
			return client
		}
		log.Printf("failed to connect to redis (attempt %d/%d): %s", i+1, maxRetries, err)
		time.Sleep(retryDelay)
	}
	log.Printf("giving up on redis, running without cache: %s", err)
	return nil
}
