package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/skillforge/internal/config"
	"github.com/osse101/skillforge/internal/database"
	"github.com/osse101/skillforge/internal/database/filestore"
	"github.com/osse101/skillforge/internal/database/postgres"
	"github.com/osse101/skillforge/internal/database/sqlite"
	"github.com/osse101/skillforge/internal/handler"
	"github.com/osse101/skillforge/internal/profile"
)

// Storage is the profile repository chosen by configuration, plus the hooks
// the rest of the process needs from it.
type Storage struct {
	Repository profile.Repository
	// Readiness is nil for backends with nothing remote to probe
	Readiness handler.HealthChecker
	Close     func()
}

// InitializeStorage opens the configured backend (file, sqlite or postgres),
// applies migrations where the backend has them, and fronts it with the LRU
// profile cache unless the cache size is zero.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	st := &Storage{Close: func() {}}

	switch cfg.StorageBackend {
	case config.StorageFile:
		store, err := filestore.New(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStorage, err)
		}
		st.Repository = store

	case config.StorageSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStorage, err)
		}
		st.Repository = store
		st.Close = func() {
			if err := store.Close(); err != nil {
				slog.Error(LogMsgStorageCloseFailed, "error", err)
			}
		}

	case config.StoragePostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLife)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStorage, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStorage, err)
		}
		st.Repository = postgres.NewProfileRepository(pool)
		st.Readiness = handler.HealthCheckerFunc(pool.Ping)
		st.Close = pool.Close

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownBackend, cfg.StorageBackend)
	}

	slog.Info(LogMsgStorageInitialized, "backend", cfg.StorageBackend)

	if cfg.ProfileCacheSize > 0 {
		st.Repository = profile.NewCachedRepository(st.Repository, cfg.ProfileCacheSize, cfg.ProfileCacheTTL)
		slog.Info(LogMsgCacheEnabled, "size", cfg.ProfileCacheSize, "ttl", cfg.ProfileCacheTTL)
	}

	return st, nil
}
