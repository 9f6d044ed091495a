package report

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Stats counts what a pipeline run produced.
type Stats struct {
	Queries int `yaml:"queries"`
	Docs    int `yaml:"docs"`
	// Segments is the number of prompt lines written.
	Segments int `yaml:"segments"`
	// NoSegments counts documents whose body had no detectable sentence.
	NoSegments int `yaml:"no_segments"`
	// NoContent counts documents that were missing or had only a title.
	NoContent int `yaml:"no_content"`
	// Missing counts candidate ids the document source could not resolve.
	Missing int `yaml:"missing"`
}

type Report struct {
	RunID      uuid.UUID         `yaml:"run_id"`
	Pipeline   string            `yaml:"pipeline"`
	StartedAt  time.Time         `yaml:"started_at"`
	FinishedAt time.Time         `yaml:"finished_at"`
	Inputs     map[string]string `yaml:"inputs"`
	Stats      Stats             `yaml:"stats"`
}

func New(pipeline string, inputs map[string]string) *Report {
	return &Report{
		RunID:     uuid.New(),
		Pipeline:  pipeline,
		StartedAt: time.Now().UTC(),
		Inputs:    inputs,
	}
}

func (r *Report) Finish(stats Stats) {
	r.Stats = stats
	r.FinishedAt = time.Now().UTC()
}

// Log prints the run summary.
func Log(stats Stats) {
	slog.Info(fmt.Sprintf("%d examples with only title", stats.NoContent))
	slog.Info(fmt.Sprintf("Wrote %d segments from %d docs.", stats.Segments, stats.Docs))
	slog.Info(fmt.Sprintf("There were %d docs without segments/sentences.", stats.NoSegments))
	if stats.Missing > 0 {
		slog.Warn("Some candidate documents were not found", "missing", stats.Missing)
	}
	slog.Info("Done.", "queries", stats.Queries)
}

func WriteFile(r *Report, path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func ReadFile(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &r, nil
}
