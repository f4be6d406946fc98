package kv

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ediworks-controlplane/pkg/config"
)

var Module = fx.Module("kv",
	fx.Provide(New),
)

// New selects the configured backend. The store instance is constructed once
// and injected; nothing reaches for it through a package global.
func New(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (Store, error) {
	switch cfg.Store.Backend {
	case "memory":
		return NewMemory(), nil

	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("kv: redis ping: %w", err)
		}
		log.Info("[KV] connected to redis", zap.String("addr", cfg.Redis.Addr))
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return rdb.Close()
			},
		})
		return NewRedis(rdb), nil

	case "sqlite":
		db, err := gorm.Open(sqlite.Open(cfg.Store.Path), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err != nil {
			return nil, fmt.Errorf("kv: open sqlite: %w", err)
		}
		log.Info("[KV] opened sqlite store", zap.String("path", cfg.Store.Path))
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.Close()
			},
		})
		return NewGorm(db)

	default:
		return nil, fmt.Errorf("kv: unknown backend %q", cfg.Store.Backend)
	}
}
