package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const docJSON = `{
  "document_id": "abc",
  "metadata": {"title": "Masks and COVID"},
  "contexts": [
    {"text": "Masks reduce spread.", "start": 0},
    {"text": "Wear them indoors.", "start": 21}
  ]
}`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestCorpus_Text(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "abc.json"), docJSON)
	writeFile(t, filepath.Join(root, "shard1", "nested.json"), `{"metadata":{"title":"Nested"},"contexts":[{"text":"deep"}]}`)
	writeFile(t, filepath.Join(root, "a", "dup.json"), `{"metadata":{"title":"First"},"contexts":[]}`)
	writeFile(t, filepath.Join(root, "b", "dup.json"), `{"metadata":{"title":"Second"},"contexts":[]}`)
	writeFile(t, filepath.Join(root, "broken.json"), `{"metadata":`)

	c, err := New(root)
	require.NoError(t, err)

	t.Run("direct path", func(t *testing.T) {
		text, err := c.Text("abc")
		require.NoError(t, err)
		assert.Equal(t, "Masks and COVID\nMasks reduce spread.\nWear them indoors.", text)
	})

	t.Run("recursive fallback", func(t *testing.T) {
		text, err := c.Text("nested")
		require.NoError(t, err)
		assert.Equal(t, "Nested\ndeep", text)
	})

	t.Run("multiple matches use first", func(t *testing.T) {
		path, err := c.Resolve("dup")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "a", "dup.json"), path)

		text, err := c.Text("dup")
		require.NoError(t, err)
		assert.Equal(t, "First", text)
	})

	t.Run("no match returns empty text", func(t *testing.T) {
		text, err := c.Text("missing")
		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := c.Text("broken")
		assert.ErrorContains(t, err, "parse corpus file")
	})
}

func TestNew(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "f.json")
	writeFile(t, file, "{}")

	_, err := New(filepath.Join(root, "missing"))
	assert.ErrorContains(t, err, "stat corpus root")

	_, err = New(file)
	assert.ErrorContains(t, err, "not a directory")
}

func TestDocument_Text(t *testing.T) {
	var d Document
	d.Metadata.Title = "Only title"
	assert.Equal(t, "Only title", d.Text())
}
