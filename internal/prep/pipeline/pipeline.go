package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/monot5-input/internal/prep/report"
	"github.com/DjordjeVuckovic/monot5-input/internal/prep/runfile"
	"github.com/DjordjeVuckovic/monot5-input/internal/prep/topic"
	"github.com/schollz/progressbar/v3"
)

// Pipeline turns a run into monoT5 prompt and id lines.
type Pipeline interface {
	Run(ctx context.Context) (*report.Stats, error)
}

// PromptWriter receives one prompt line per call together with its id fields.
type PromptWriter interface {
	Write(query, document string, idFields ...string) error
}

// PipelineConfig defines configuration shared by the pipelines
type PipelineConfig struct {
	Name         string
	ShowProgress bool
	Progress     io.Writer
}

type PipelineOption func(cfg *PipelineConfig)

// WithProgress renders a progress bar over queries to w.
func WithProgress(w io.Writer) PipelineOption {
	return func(cfg *PipelineConfig) {
		cfg.ShowProgress = true
		cfg.Progress = w
	}
}

func WithName(name string) PipelineOption {
	return func(cfg *PipelineConfig) {
		cfg.Name = name
	}
}

func newConfig(name string, opts []PipelineOption) *PipelineConfig {
	cfg := &PipelineConfig{Name: name}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.ShowProgress && cfg.Progress == nil {
		cfg.Progress = os.Stderr
	}
	return cfg
}

// emitFunc writes the lines for one candidate document. It reports whether
// anything was written so repeated candidates can be skipped afterwards.
type emitFunc func(ctx context.Context, queryID int, query, docID string, stats *report.Stats) (bool, error)

// walk drives emit over every query of the run in file order.
func walk(
	ctx context.Context,
	cfg *PipelineConfig,
	topics *topic.Topics,
	run *runfile.Run,
	emit emitFunc,
) (*report.Stats, error) {
	slog.Info("Writing t5 input and ids", "pipeline", cfg.Name, "queries", run.Len())

	bar := newProgressBar(cfg, run.Len())
	stats := &report.Stats{}

	for _, queryID := range run.QueryIDs() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		query, ok := topics.Text(queryID)
		if !ok {
			return stats, fmt.Errorf("run query %d has no topic", queryID)
		}

		seen := make(map[string]struct{})
		for _, docID := range run.DocIDs(queryID) {
			if _, dup := seen[docID]; dup {
				continue
			}
			emitted, err := emit(ctx, queryID, query, docID, stats)
			if err != nil {
				return stats, fmt.Errorf("query %d doc %q: %w", queryID, docID, err)
			}
			if emitted {
				seen[docID] = struct{}{}
			}
		}

		stats.Queries++
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	return stats, nil
}

func newProgressBar(cfg *PipelineConfig, total int) *progressbar.ProgressBar {
	if !cfg.ShowProgress {
		return progressbar.DefaultSilent(int64(total), cfg.Name)
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(cfg.Progress),
		progressbar.OptionSetDescription(cfg.Name),
		progressbar.OptionShowCount(),
	)
}
