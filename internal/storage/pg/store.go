package pg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/monot5-input/internal/storage"
	"github.com/jackc/pgx/v5"
)

const DefaultTable = "documents"

type StoreConfig struct {
	// Table holds one row per document with text columns id and contents.
	Table        string
	QueryTimeout time.Duration
}

// Store reads document contents from a PostgreSQL table.
type Store struct {
	pool    *ConnectionPool
	query   string
	timeout time.Duration
}

func NewStore(pool *ConnectionPool, cfg StoreConfig) *Store {
	table := cfg.Table
	if table == "" {
		table = DefaultTable
	}
	slog.Info("Using PostgreSQL document store", "table", table)

	return &Store{
		pool:    pool,
		query:   contentsQuery(table),
		timeout: cfg.QueryTimeout,
	}
}

func contentsQuery(table string) string {
	return fmt.Sprintf("SELECT contents FROM %s WHERE id = $1", pgx.Identifier{table}.Sanitize())
}

// Contents implements storage.DocumentStore
func (s *Store) Contents(ctx context.Context, docID string) (string, error) {
	queryCtx, cancel := s.newQueryCtx(ctx)
	defer cancel()

	var contents *string
	err := s.pool.GetConn().QueryRow(queryCtx, s.query, docID).Scan(&contents)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", storage.ErrDocumentNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query document %q: %w", docID, err)
	}
	if contents == nil || *contents == "" {
		return "", storage.ErrDocumentNotFound
	}
	return *contents, nil
}

func (s *Store) newQueryCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(ctx, s.timeout)
	}
	return ctx, func() {
		// no-op
	}
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

var _ storage.DocumentStore = (*Store)(nil)
