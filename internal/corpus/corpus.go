package corpus

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const docExt = ".json"

// Document is a per-document corpus file.
type Document struct {
	Metadata struct {
		Title string `json:"title"`
	} `json:"metadata"`
	Contexts []struct {
		Text string `json:"text"`
	} `json:"contexts"`
}

// Text joins the title and every context block with newlines.
func (d *Document) Text() string {
	parts := make([]string, 0, len(d.Contexts)+1)
	parts = append(parts, d.Metadata.Title)
	for _, c := range d.Contexts {
		parts = append(parts, c.Text)
	}
	return strings.Join(parts, "\n")
}

// Corpus resolves document ids to JSON files below a root directory.
type Corpus struct {
	root string
}

func New(root string) (*Corpus, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat corpus root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("corpus root %q is not a directory", root)
	}
	return &Corpus{root: root}, nil
}

// Resolve returns the file holding docID. The direct path {root}/{docID}.json
// is tried first, then the whole tree is searched for a file of that name.
// An empty path means no file matched. When several files match, a warning
// is logged and the first one in lexical order is used.
func (c *Corpus) Resolve(docID string) (string, error) {
	name := docID + docExt
	direct := filepath.Join(c.root, name)
	if info, err := os.Stat(direct); err == nil && !info.IsDir() {
		return direct, nil
	}

	matches, err := c.find(name)
	if err != nil {
		return "", err
	}

	switch len(matches) {
	case 0:
		slog.Warn("No corpus file found for document", "doc_id", docID, "root", c.root)
		return "", nil
	case 1:
		return matches[0], nil
	default:
		slog.Warn("Multiple corpus files found for document, using the first", "doc_id", docID, "matches", matches)
		return matches[0], nil
	}
}

func (c *Corpus) find(name string) ([]string, error) {
	var matches []string
	err := filepath.WalkDir(c.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == name {
			matches = append(matches, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("search corpus: %w", err)
	}
	sort.Strings(matches)
	return matches, nil
}

// Text returns the title and context text of docID. It returns an empty
// string without error when no file matches.
func (c *Corpus) Text(docID string) (string, error) {
	path, err := c.Resolve(docID)
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", nil
	}

	doc, err := ReadDocument(path)
	if err != nil {
		return "", err
	}
	return doc.Text(), nil
}

func ReadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse corpus file %s: %w", path, err)
	}
	return &doc, nil
}
