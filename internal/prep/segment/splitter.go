package segment

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Splitter breaks text into sentences.
type Splitter interface {
	Split(text string) []string
}

type sentenceTokenizer interface {
	Tokenize(text string) []*sentences.Sentence
}

// PunktSplitter detects sentence boundaries with the pre-trained English
// Punkt model.
type PunktSplitter struct {
	tokenizer sentenceTokenizer
}

func NewPunktSplitter() (*PunktSplitter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load english sentence model: %w", err)
	}
	return &PunktSplitter{tokenizer: tokenizer}, nil
}

// Split returns the trimmed, non-empty sentences of text.
func (p *PunktSplitter) Split(text string) []string {
	var out []string
	for _, s := range p.tokenizer.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}

var _ Splitter = (*PunktSplitter)(nil)
