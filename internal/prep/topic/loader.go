package topic

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

func LoadFromFile(path string, opts Options) (*Topics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read topics file: %w", err)
	}
	return Parse(data, opts)
}

func Parse(data []byte, opts Options) (*Topics, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var raw []Topic
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse topics JSON: %w", err)
	}

	topics := newTopics()
	for i, t := range raw {
		id, err := ParseID(t.QuestionID)
		if err != nil {
			return nil, fmt.Errorf("topic at index %d: %w", i, err)
		}
		topics.set(id, opts.text(t))
	}

	slog.Info("Loaded topics", "count", topics.Len(), "field", opts.Field, "combined", opts.Combine)
	return topics, nil
}
