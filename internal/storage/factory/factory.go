package factory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/monot5-input/internal/storage"
	"github.com/DjordjeVuckovic/monot5-input/internal/storage/cache"
	"github.com/DjordjeVuckovic/monot5-input/internal/storage/es"
	"github.com/DjordjeVuckovic/monot5-input/internal/storage/jsonl"
	"github.com/DjordjeVuckovic/monot5-input/internal/storage/pg"
)

// NewDocumentStore creates a storage.DocumentStore based on the storage type,
// wrapped in a Redis cache when one is configured.
func NewDocumentStore(ctx context.Context, cfg *StorageConfig) (storage.DocumentStore, error) {
	store, err := newBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Cache != nil {
		slog.Info("Caching documents in Redis", "addr", cfg.Cache.Addr, "ttl", cfg.Cache.TTL)
		client := cache.NewClient(*cfg.Cache)
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			store.Close()
			return nil, fmt.Errorf("failed to ping Redis: %w", err)
		}
		store = cache.NewStore(client, store, cfg.Cache.TTL)
	}

	return store, nil
}

func newBackend(ctx context.Context, cfg *StorageConfig) (storage.DocumentStore, error) {
	switch cfg.Type {
	case storage.JSONL:
		return jsonl.Open(cfg.Location)

	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		return es.NewStore(*cfg.Es)

	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		storeCfg := pg.StoreConfig{Table: cfg.Location}
		if cfg.PgStore != nil {
			storeCfg = *cfg.PgStore
		}
		return pg.NewStore(pool, storeCfg), nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStore), cfg.Type)
	}
}
