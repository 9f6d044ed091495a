package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/monot5-input/internal/storage"
	"github.com/DjordjeVuckovic/monot5-input/internal/storage/cache"
	"github.com/DjordjeVuckovic/monot5-input/internal/storage/es"
	"github.com/DjordjeVuckovic/monot5-input/internal/storage/pg"
	"github.com/DjordjeVuckovic/monot5-input/pkg/stringsutil"
)

type StorageConfig struct {
	storage.Type
	// Location is the collection path (jsonl), index name (es) or table name (pg).
	Location string
	Pg       *pg.PoolConfig
	PgStore  *pg.StoreConfig
	Es       *es.ClientConfig
	Cache    *cache.Config
}

// LoadEnv builds the document store configuration. storageType and location
// usually come from command line flags; an empty storageType falls back to
// INDEX_TYPE and then to jsonl.
func LoadEnv(storageType storage.Type, location string) (*StorageConfig, error) {
	if storageType == "" {
		storageType = storage.Type(os.Getenv("INDEX_TYPE"))
	}
	if storageType == "" {
		storageType = storage.JSONL
	}
	if !storageType.Valid() {
		slog.Error("Invalid index type", "value", storageType)
		return nil, fmt.Errorf(
			"invalid index type: %s, expected one of %v",
			storageType,
			[]storage.Type{storage.JSONL, storage.ES, storage.PG})
	}
	if location == "" {
		return nil, fmt.Errorf("index location is not set")
	}

	cfg := &StorageConfig{Type: storageType, Location: location}

	switch storageType {
	case storage.ES:
		cfg.Es = &es.ClientConfig{
			Addresses:     stringsutil.RemoveEmptyStrings(strings.Split(os.Getenv("ES_ADDRESSES"), ",")),
			IndexName:     location,
			Username:      os.Getenv("ES_USERNAME"),
			Password:      os.Getenv("ES_PASSWORD"),
			ContentsField: os.Getenv("ES_CONTENTS_FIELD"),
		}
		if len(cfg.Es.Addresses) == 0 {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", cfg.Es.Addresses)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: ES_ADDRESSES is missing")
		}

	case storage.PG:
		cfg.Pg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if cfg.Pg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
		timeout, err := durationEnv("PG_QUERY_TIMEOUT", 0)
		if err != nil {
			return nil, err
		}
		cfg.PgStore = &pg.StoreConfig{Table: location, QueryTimeout: timeout}
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		ttl, err := durationEnv("REDIS_TTL", cache.DefaultTTL)
		if err != nil {
			return nil, err
		}
		db := 0
		if raw := os.Getenv("REDIS_DB"); raw != "" {
			db, err = strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid REDIS_DB %q: %w", raw, err)
			}
		}
		cfg.Cache = &cache.Config{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       db,
			TTL:      ttl,
		}
	}

	return cfg, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}
