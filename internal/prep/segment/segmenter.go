package segment

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/monot5-input/internal/apperr"
	"github.com/DjordjeVuckovic/monot5-input/pkg/stringsutil"
)

const (
	DefaultStride    = 4
	DefaultMaxLength = 8
)

type Config struct {
	// Stride is the number of sentences a window start advances by.
	Stride int
	// MaxLength caps the number of sentences in a window.
	MaxLength int
}

func DefaultConfig() Config {
	return Config{Stride: DefaultStride, MaxLength: DefaultMaxLength}
}

// Validate rejects windows that would skip sentences. With Stride larger
// than MaxLength the windows leave gaps and may never reach the last sentence.
func (c Config) Validate() error {
	if c.Stride <= 0 {
		return apperr.NewValidation(fmt.Sprintf("stride must be positive, got %d", c.Stride))
	}
	if c.MaxLength <= 0 {
		return apperr.NewValidation(fmt.Sprintf("max length must be positive, got %d", c.MaxLength))
	}
	if c.Stride > c.MaxLength {
		return apperr.NewValidation(fmt.Sprintf("stride %d exceeds max length %d", c.Stride, c.MaxLength))
	}
	return nil
}

type Segment struct {
	// Offset is the index of the first sentence in the window.
	Offset int
	Text   string
}

type Segmenter struct {
	splitter Splitter
	cfg      Config
}

func New(splitter Splitter, cfg Config) (*Segmenter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Segmenter{splitter: splitter, cfg: cfg}, nil
}

// SplitContents separates raw index contents into title and body. The first
// line is the title; ok is false when there is no line after it.
func SplitContents(contents string) (title, body string, ok bool) {
	sections := strings.Split(contents, "\n")
	if len(sections) < 2 {
		return sections[0], "", false
	}
	return sections[0], stringsutil.CollapseSpace(strings.Join(sections[1:], " ")), true
}

// Segments windows the sentences of body and prefixes each window with title.
// hasSentences reports whether the splitter found any sentence; when it did
// not, a single title-only segment is produced.
func (s *Segmenter) Segments(title, body string) (segments []Segment, hasSentences bool) {
	sentences := s.splitter.Split(body)
	hasSentences = len(sentences) > 0
	if !hasSentences {
		sentences = []string{""}
	}

	title = strings.TrimPrefix(title, ".")

	for i := 0; i < len(sentences); i += s.cfg.Stride {
		end := min(i+s.cfg.MaxLength, len(sentences))
		text := strings.TrimSpace(strings.Join(sentences[i:end], " "))
		if title != "" {
			text = title + ". " + text
		}
		segments = append(segments, Segment{Offset: i, Text: text})

		if i+s.cfg.MaxLength >= len(sentences) {
			break
		}
	}

	return segments, hasSentences
}
