package kvstore

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"imobhub_backend/pkg/config"
	"imobhub_backend/pkg/database"
)

// Open builds the backend named by cfg.Driver.
func Open(cfg config.StoreConfig) (Backend, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return NewMemoryBackend(), nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("could not reach redis at %s: %w", cfg.RedisAddr, err)
		}
		return NewRedisBackend(client), nil

	case config.DriverPostgres:
		db, err := database.Open(config.DriverPostgres, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return NewGormBackend(db)

	case config.DriverSQLite:
		db, err := database.Open(config.DriverSQLite, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return NewGormBackend(db)
	}

	return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}
