package segment

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/monot5-input/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wordSplitter treats every whitespace separated token as a sentence.
type wordSplitter struct{}

func (wordSplitter) Split(text string) []string {
	return strings.Fields(text)
}

func sentencesN(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("s%d", i)
	}
	return strings.Join(parts, " ")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "defaults", cfg: DefaultConfig()},
		{name: "equal stride and length", cfg: Config{Stride: 3, MaxLength: 3}},
		{name: "zero stride", cfg: Config{Stride: 0, MaxLength: 8}, wantErr: true},
		{name: "negative length", cfg: Config{Stride: 1, MaxLength: -1}, wantErr: true},
		{name: "stride beyond length", cfg: Config{Stride: 9, MaxLength: 8}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				var ve *apperr.ValidationError
				assert.True(t, errors.As(err, &ve))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSplitContents(t *testing.T) {
	t.Run("title and body", func(t *testing.T) {
		title, body, ok := SplitContents("Title\nFirst line.\n\nSecond   line.")
		assert.True(t, ok)
		assert.Equal(t, "Title", title)
		assert.Equal(t, "First line. Second line.", body)
	})

	t.Run("title only", func(t *testing.T) {
		title, body, ok := SplitContents("Only a title")
		assert.False(t, ok)
		assert.Equal(t, "Only a title", title)
		assert.Empty(t, body)
	})

	t.Run("empty body line", func(t *testing.T) {
		_, body, ok := SplitContents("Title\n")
		assert.True(t, ok)
		assert.Empty(t, body)
	})
}

func TestSegmenter_Segments(t *testing.T) {
	seg, err := New(wordSplitter{}, Config{Stride: 2, MaxLength: 4})
	require.NoError(t, err)

	t.Run("overlapping windows", func(t *testing.T) {
		segments, ok := seg.Segments("", sentencesN(7))
		assert.True(t, ok)
		assert.Equal(t, []Segment{
			{Offset: 0, Text: "s0 s1 s2 s3"},
			{Offset: 2, Text: "s2 s3 s4 s5"},
			{Offset: 4, Text: "s4 s5 s6"},
		}, segments)
	})

	t.Run("stops when window reaches end", func(t *testing.T) {
		segments, _ := seg.Segments("", sentencesN(6))
		require.Len(t, segments, 2)
		assert.Equal(t, "s2 s3 s4 s5", segments[1].Text)
	})

	t.Run("short body yields one window", func(t *testing.T) {
		segments, _ := seg.Segments("", sentencesN(3))
		assert.Equal(t, []Segment{{Offset: 0, Text: "s0 s1 s2"}}, segments)
	})

	t.Run("title prefix", func(t *testing.T) {
		segments, _ := seg.Segments("My Title", "a b")
		assert.Equal(t, []Segment{{Offset: 0, Text: "My Title. a b"}}, segments)
	})

	t.Run("leading dot stripped from title", func(t *testing.T) {
		segments, _ := seg.Segments(".Hidden", "a")
		assert.Equal(t, "Hidden. a", segments[0].Text)
	})

	t.Run("no sentences", func(t *testing.T) {
		segments, ok := seg.Segments("Title", "")
		assert.False(t, ok)
		assert.Equal(t, []Segment{{Offset: 0, Text: "Title. "}}, segments)
	})
}

func TestSegmenter_WindowInvariants(t *testing.T) {
	for stride := 1; stride <= 5; stride++ {
		for maxLen := stride; maxLen <= 6; maxLen++ {
			for n := 1; n <= 20; n++ {
				name := fmt.Sprintf("stride=%d,max=%d,n=%d", stride, maxLen, n)
				seg, err := New(wordSplitter{}, Config{Stride: stride, MaxLength: maxLen})
				require.NoError(t, err, name)

				segments, _ := seg.Segments("", sentencesN(n))
				require.NotEmpty(t, segments, name)

				reachesEnd := 0
				for i, s := range segments {
					assert.Equal(t, i*stride, s.Offset, name)
					words := strings.Fields(s.Text)
					assert.LessOrEqual(t, len(words), maxLen, name)
					if words[len(words)-1] == fmt.Sprintf("s%d", n-1) {
						reachesEnd++
					}
				}
				last := segments[len(segments)-1]
				assert.True(t, last.Offset+maxLen >= n, name)
				assert.Equal(t, 1, reachesEnd, name)
				if len(segments) > 1 {
					prev := segments[len(segments)-2]
					assert.Less(t, prev.Offset+maxLen, n, name)
				}
			}
		}
	}
}

func TestPunktSplitter(t *testing.T) {
	splitter, err := NewPunktSplitter()
	require.NoError(t, err)

	got := splitter.Split("The virus spreads quickly. Masks reduce transmission. Wash your hands.")
	assert.Equal(t, []string{
		"The virus spreads quickly.",
		"Masks reduce transmission.",
		"Wash your hands.",
	}, got)

	assert.Empty(t, splitter.Split("   "))
}
