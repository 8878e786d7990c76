package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"village/internal/config"
	"village/internal/database"
)

// redisKeyPrefix namespaces Village keys in a shared Redis database
const redisKeyPrefix = "village:"

// Open builds the LocalStorage backend selected by cfg.StorageDriver
func Open(ctx context.Context, cfg *config.Config) (LocalStorage, error) {
	driver := strings.ToLower(cfg.StorageDriver)

	switch driver {
	case "memory":
		log.Warn().Msg("using in-memory storage, sessions will not survive a restart")
		return NewMemoryStorage(), nil
	case "redis":
		storage, err := NewRedisStorage(ctx, &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, redisKeyPrefix)
		if err != nil {
			return nil, err
		}
		log.Info().Str("addr", cfg.RedisAddr).Int("db", cfg.RedisDB).Msg("redis storage connected")
		return storage, nil
	}

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.RunMigrations(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info().Str("driver", db.Dialect.DriverName()).Msg("database storage ready")
	return NewSQLStorage(db), nil
}
