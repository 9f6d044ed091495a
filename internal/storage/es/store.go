package es

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/DjordjeVuckovic/monot5-input/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

// Store reads document contents from an Elasticsearch index by document id.
type Store struct {
	client        *elasticsearch.TypedClient
	indexName     string
	contentsField string
}

func NewStore(config ClientConfig) (*Store, error) {
	if config.IndexName == "" {
		return nil, fmt.Errorf("elasticsearch index name is required")
	}

	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	field := config.ContentsField
	if field == "" {
		field = DefaultContentsField
	}

	slog.Info("Using Elasticsearch document store", "addresses", config.Addresses, "index", config.IndexName, "field", field)
	return &Store{
		client:        client,
		indexName:     config.IndexName,
		contentsField: field,
	}, nil
}

// Contents implements storage.DocumentStore
func (s *Store) Contents(ctx context.Context, docID string) (string, error) {
	res, err := s.client.Get(s.indexName, docID).Do(ctx)
	if err != nil {
		var esErr *types.ElasticsearchError
		if errors.As(err, &esErr) && esErr.Status == http.StatusNotFound {
			return "", storage.ErrDocumentNotFound
		}
		return "", fmt.Errorf("failed to get document %q: %w", docID, err)
	}
	if !res.Found || len(res.Source_) == 0 {
		return "", storage.ErrDocumentNotFound
	}

	return extractContents(res.Source_, s.contentsField)
}

func extractContents(source json.RawMessage, field string) (string, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(source, &doc); err != nil {
		return "", fmt.Errorf("failed to unmarshal document source: %w", err)
	}

	raw, ok := doc[field]
	if !ok || string(raw) == "null" {
		return "", storage.ErrDocumentNotFound
	}

	var contents string
	if err := json.Unmarshal(raw, &contents); err != nil {
		return "", fmt.Errorf("field %q is not a string: %w", field, err)
	}
	if contents == "" {
		return "", storage.ErrDocumentNotFound
	}
	return contents, nil
}

func (s *Store) Close() error {
	return nil
}

// Compile-time interface assertion
var _ storage.DocumentStore = (*Store)(nil)
