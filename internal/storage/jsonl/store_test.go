package jsonl

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/monot5-input/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("json lines", func(t *testing.T) {
		s := NewStore()
		data := `{"id": "d1", "contents": "Title\nBody."}

{"id": "d2", "contents": "Other"}
`
		require.NoError(t, s.Load(strings.NewReader(data)))
		assert.Equal(t, 2, s.Len())

		got, err := s.Contents(ctx, "d1")
		require.NoError(t, err)
		assert.Equal(t, "Title\nBody.", got)
	})

	t.Run("json array", func(t *testing.T) {
		s := NewStore()
		data := `  [{"id": "a", "contents": "x"}, {"id": "b", "contents": "y"}]`
		require.NoError(t, s.Load(strings.NewReader(data)))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("empty input", func(t *testing.T) {
		s := NewStore()
		require.NoError(t, s.Load(strings.NewReader("\n  \n")))
		assert.Equal(t, 0, s.Len())
	})

	t.Run("malformed line", func(t *testing.T) {
		s := NewStore()
		err := s.Load(strings.NewReader("{\"id\": \"a\"}\n{broken\n"))
		assert.ErrorContains(t, err, "line 2")
	})
}

func TestStore_Contents(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.Put(Document{ID: "full", Contents: "T\nB"})
	s.Put(Document{ID: "empty", Contents: ""})

	_, err := s.Contents(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)

	_, err = s.Contents(ctx, "empty")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)

	got, err := s.Contents(ctx, "full")
	require.NoError(t, err)
	assert.Equal(t, "T\nB", got)
	assert.NoError(t, s.Close())
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "part"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.jsonl"), []byte(`{"id": "d1", "contents": "one"}`+"\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "part", "b.json"), []byte(`[{"id": "d2", "contents": "two"}]`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))

	t.Run("directory", func(t *testing.T) {
		s, err := Open(dir)
		require.NoError(t, err)
		assert.Equal(t, 2, s.Len())
	})

	t.Run("single file", func(t *testing.T) {
		s, err := Open(filepath.Join(dir, "a.jsonl"))
		require.NoError(t, err)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := Open(filepath.Join(dir, "nope"))
		assert.ErrorContains(t, err, "stat collection")
	})
}
