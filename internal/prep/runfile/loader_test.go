package runfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/monot5-input/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("keeps file order", func(t *testing.T) {
		run, err := Parse(strings.NewReader("1 Q0 D1 1 0 run\n1 Q0 D2 2 0 run\n"))
		require.NoError(t, err)
		assert.Equal(t, []int{1}, run.QueryIDs())
		assert.Equal(t, []string{"D1", "D2"}, run.DocIDs(1))
	})

	t.Run("does not sort by rank", func(t *testing.T) {
		run, err := Parse(strings.NewReader("1 Q0 D2 2 0.5 run\n1 Q0 D1 1 0.9 run\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"D2", "D1"}, run.DocIDs(1))
	})

	t.Run("groups interleaved queries", func(t *testing.T) {
		data := "7 Q0 a 1 1 r\n3 Q0 b 1 1 r\n7 Q0 c 2 1 r\n"
		run, err := Parse(strings.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, []int{7, 3}, run.QueryIDs())
		assert.Equal(t, []string{"a", "c"}, run.DocIDs(7))
		assert.Equal(t, []string{"b"}, run.DocIDs(3))
		assert.Equal(t, 2, run.Len())
		assert.Equal(t, 3, run.Size())
	})

	t.Run("tabs and blank lines", func(t *testing.T) {
		run, err := Parse(strings.NewReader("1\tQ0\tD1\t1\t0\trun\n\n  \n1 Q0 D2 2 0 run"))
		require.NoError(t, err)
		assert.Equal(t, []string{"D1", "D2"}, run.DocIDs(1))
	})

	t.Run("keeps ranks", func(t *testing.T) {
		run, err := Parse(strings.NewReader("1 Q0 D1 4 0 run\n"))
		require.NoError(t, err)
		assert.Equal(t, []Candidate{{DocID: "D1", Rank: 4}}, run.Candidates(1))
	})

	t.Run("wrong field count", func(t *testing.T) {
		_, err := Parse(strings.NewReader("1 Q0 D1 1 0 run\n1 Q0 D2 2\n"))
		var ve *apperr.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Contains(t, ve.Error(), "run:2")
		assert.Contains(t, ve.Error(), "expected 6 fields, got 4")
	})

	t.Run("non integer query id", func(t *testing.T) {
		_, err := Parse(strings.NewReader("q1 Q0 D1 1 0 run\n"))
		assert.ErrorContains(t, err, "invalid query id")
	})

	t.Run("non integer rank", func(t *testing.T) {
		_, err := Parse(strings.NewReader("1 Q0 D1 first 0 run\n"))
		assert.ErrorContains(t, err, "invalid rank")
	})

	t.Run("empty input", func(t *testing.T) {
		run, err := Parse(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, 0, run.Len())
		assert.Empty(t, run.DocIDs(1))
	})
}

func TestRun_SortByRank(t *testing.T) {
	data := "1 Q0 D3 3 0 r\n1 Q0 D1 1 0 r\n1 Q0 D2 2 0 r\n1 Q0 D1b 1 0 r\n2 Q0 X 1 0 r\n"
	run, err := Parse(strings.NewReader(data))
	require.NoError(t, err)

	run.SortByRank()
	assert.Equal(t, []string{"D1", "D1b", "D2", "D3"}, run.DocIDs(1))
	assert.Equal(t, []string{"X"}, run.DocIDs(2))
	assert.Equal(t, []int{1, 2}, run.QueryIDs())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.trec")
	require.NoError(t, os.WriteFile(path, []byte("1 Q0 D1 1 0 run\nbad\n"), 0644))

	_, err := LoadFromFile(path)
	assert.ErrorContains(t, err, path+":2")

	_, err = LoadFromFile(filepath.Join(dir, "missing.trec"))
	assert.ErrorContains(t, err, "open run file")
}
