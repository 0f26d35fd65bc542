package cache

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/config"
)

const (
	defaultDashboardTTL = time.Minute
	unlinkBatchSize     = 100
	connectTimeout      = 5 * time.Second
)

// redisOptions prefers REDIS_URL and falls back to host/port/password/db.
func redisOptions(cfg config.CacheConfig) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		return opt, nil
	}

	host, port := cfg.RedisHost, cfg.RedisPort
	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = "6379"
	}

	return &redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, nil
}

func dashboardTTL(cfg config.CacheConfig) time.Duration {
	if cfg.DashboardTTLSeconds <= 0 {
		return defaultDashboardTTL
	}
	return time.Duration(cfg.DashboardTTLSeconds) * time.Second
}

// unlinkPrefix removes every key under prefix, unlinking in batches as the scan goes.
func unlinkPrefix(ctx context.Context, client *redis.Client, prefix string) error {
	iter := client.Scan(ctx, 0, prefix+"*", unlinkBatchSize).Iterator()

	batch := make([]string, 0, unlinkBatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := client.Unlink(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("redis unlink failed: %w", err)
		}
		batch = batch[:0]
		return nil
	}

	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == unlinkBatchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan failed: %w", err)
	}
	return flush()
}
