package jsonl

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/DjordjeVuckovic/monot5-input/internal/storage"
)

const maxLineSize = 64 << 20

// Document is a record of an Anserini JSON collection.
type Document struct {
	ID       string `json:"id"`
	Contents string `json:"contents"`
}

// Store keeps a JSON document collection in memory.
type Store struct {
	mu   sync.RWMutex
	docs map[string]string
}

func NewStore() *Store {
	return &Store{docs: make(map[string]string)}
}

// Open loads a collection from a single file or from every *.jsonl and
// *.json file below a directory.
func Open(path string) (*Store, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat collection: %w", err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = collectionFiles(path)
		if err != nil {
			return nil, err
		}
	}

	s := NewStore()
	for _, f := range files {
		if err := s.loadFile(f); err != nil {
			return nil, err
		}
	}

	slog.Info("Loaded document collection", "path", path, "files", len(files), "documents", s.Len())
	return s, nil
}

func collectionFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(p)) {
		case ".jsonl", ".json":
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk collection: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

func (s *Store) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open collection file: %w", err)
	}
	defer f.Close()

	if err := s.Load(f); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load reads documents from r, either a JSON array or one object per line.
func (s *Store) Load(r io.Reader) error {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}

	if first == '[' {
		var docs []Document
		if err := json.NewDecoder(br).Decode(&docs); err != nil {
			return fmt.Errorf("parse document array: %w", err)
		}
		for _, d := range docs {
			s.Put(d)
		}
		return nil
	}

	scanner := bufio.NewScanner(br)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var d Document
		if err := json.Unmarshal(line, &d); err != nil {
			return fmt.Errorf("parse document at line %d: %w", lineNo, err)
		}
		s.Put(d)
	}
	return scanner.Err()
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b, br.UnreadByte()
	}
}

func (s *Store) Put(d Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[d.ID] = d.Contents
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

func (s *Store) Contents(_ context.Context, docID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contents, ok := s.docs[docID]
	if !ok || contents == "" {
		return "", storage.ErrDocumentNotFound
	}
	return contents, nil
}

func (s *Store) Close() error {
	return nil
}

var _ storage.DocumentStore = (*Store)(nil)
