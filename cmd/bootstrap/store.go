package bootstrap

import (
	"context"
	"log/slog"

	"sarmiento-f5/internal/infra/db"
	"sarmiento-f5/internal/infra/kvstore"
	"sarmiento-f5/internal/pkg/config"
	"sarmiento-f5/internal/pkg/errs"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewKVStore,
	),
)

// NewKVStore opens the backend selected by STORE_DRIVER and closes it when
// the app stops.
func NewKVStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (kvstore.Store, error) {
	ctx := context.Background()
	var (
		store   kvstore.Store
		cleanup func()
	)

	switch cfg.Store.Driver {
	case config.StoreDriverRedis:
		s, err := kvstore.NewRedisStore(ctx, cfg.Store.RedisAddr, cfg.Store.RedisPassword, cfg.Store.RedisDB, cfg.Store.KeyPrefix)
		if err != nil {
			return nil, err
		}
		store = s
	case config.StoreDriverSQLite:
		s, err := kvstore.NewSQLiteStore(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = s
	case config.StoreDriverPostgres:
		pool, closePool, err := db.Connect(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		s, err := kvstore.NewPostgresStore(ctx, pool)
		if err != nil {
			closePool()
			return nil, err
		}
		store, cleanup = s, closePool
	case config.StoreDriverMemory:
		store = kvstore.NewMemoryStore()
	default:
		return nil, errs.Wrapf(errs.New("unsupported store driver"), "driver %q", cfg.Store.Driver)
	}

	logger.Info("key-value store opened", "driver", cfg.Store.Driver)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			err := store.Close()
			if cleanup != nil {
				cleanup()
			}
			return err
		},
	})

	return kvstore.WithMetrics(store, cfg.Store.Driver), nil
}
