package topic

import (
	"fmt"
	"strconv"

	"github.com/DjordjeVuckovic/monot5-input/internal/apperr"
)

// Question ids carry a 2 character type prefix: "CQ" for consumer questions
// and "EQ" for expert questions.
const idPrefixLen = 2

type Field string

const (
	FieldQuestion Field = "question"
	FieldQuery    Field = "query"
)

const DefaultSeparator = " "

type Topic struct {
	QuestionID string `json:"question_id"`
	Question   string `json:"question"`
	Query      string `json:"query"`
}

// Options selects the text that stands for a topic in the model input.
type Options struct {
	Field Field
	// Combine joins question and query with Separator and overrides Field.
	Combine   bool
	Separator string
}

func (o Options) Validate() error {
	switch o.Field {
	case "", FieldQuestion, FieldQuery:
		return nil
	default:
		return apperr.NewValidation(fmt.Sprintf("unknown query field %q, expected %q or %q", o.Field, FieldQuestion, FieldQuery))
	}
}

func (o Options) text(t Topic) string {
	if o.Combine {
		sep := o.Separator
		if sep == "" {
			sep = DefaultSeparator
		}
		return t.Question + sep + t.Query
	}
	if o.Field == FieldQuery {
		return t.Query
	}
	return t.Question
}

// ParseID strips the type prefix from a question id and returns its integer part.
func ParseID(raw string) (int, error) {
	if len(raw) <= idPrefixLen {
		return 0, apperr.NewValidation(fmt.Sprintf("question id %q is too short", raw))
	}
	id, err := strconv.Atoi(raw[idPrefixLen:])
	if err != nil {
		return 0, apperr.NewValidationWrap(fmt.Sprintf("question id %q has no integer suffix", raw), err)
	}
	return id, nil
}

// Topics maps integer question ids to the selected query text.
type Topics struct {
	texts map[int]string
	order []int
}

func newTopics() *Topics {
	return &Topics{texts: make(map[int]string)}
}

func (t *Topics) set(id int, text string) {
	if _, ok := t.texts[id]; !ok {
		t.order = append(t.order, id)
	}
	t.texts[id] = text
}

func (t *Topics) Text(id int) (string, bool) {
	text, ok := t.texts[id]
	return text, ok
}

// IDs returns question ids in first-seen file order.
func (t *Topics) IDs() []int {
	ids := make([]int, len(t.order))
	copy(ids, t.order)
	return ids
}

func (t *Topics) Len() int {
	return len(t.order)
}
