package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/monot5-input/internal/storage"
	"github.com/redis/go-redis/v9"
)

const (
	docKeyPrefix = "monot5:doc:" // Key for cached contents: monot5:doc:{doc_id}
	DefaultTTL   = 24 * time.Hour
)

type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Store is a read-through Redis cache in front of another document store.
// Misses are never cached.
type Store struct {
	client *redis.Client
	next   storage.DocumentStore
	ttl    time.Duration
}

func NewClient(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewStore(client *redis.Client, next storage.DocumentStore, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{client: client, next: next, ttl: ttl}
}

// Contents implements storage.DocumentStore
func (s *Store) Contents(ctx context.Context, docID string) (string, error) {
	key := docKey(docID)

	cached, err := s.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		return cached, nil
	case errors.Is(err, redis.Nil):
	default:
		slog.Warn("Document cache read failed", "doc_id", docID, "error", err)
	}

	contents, err := s.next.Contents(ctx, docID)
	if err != nil {
		return "", err
	}

	if err := s.client.Set(ctx, key, contents, s.ttl).Err(); err != nil {
		slog.Warn("Document cache write failed", "doc_id", docID, "error", err)
	}
	return contents, nil
}

func (s *Store) Close() error {
	nextErr := s.next.Close()
	if err := s.client.Close(); err != nil {
		return fmt.Errorf("close redis client: %w", err)
	}
	return nextErr
}

func docKey(docID string) string {
	return docKeyPrefix + docID
}

var _ storage.DocumentStore = (*Store)(nil)
