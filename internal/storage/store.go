package storage

import (
	"context"
	"errors"
)

// ErrDocumentNotFound is returned when a document id has no stored contents.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentStore fetches the raw contents of indexed documents. Contents hold
// the title on the first line and the body on the following lines.
type DocumentStore interface {
	Contents(ctx context.Context, docID string) (string, error)
	Close() error
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	JSONL Type = "jsonl"
)

func (t Type) Valid() bool {
	switch t {
	case ES, PG, JSONL:
		return true
	default:
		return false
	}
}

type StorerError string

const (
	ErrUnsupportedStore StorerError = "unsupported document store type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
