package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/monot5-input/internal/prep/pipeline"
	"github.com/DjordjeVuckovic/monot5-input/internal/prep/prompt"
	"github.com/DjordjeVuckovic/monot5-input/internal/prep/report"
	"github.com/DjordjeVuckovic/monot5-input/internal/prep/runfile"
	"github.com/DjordjeVuckovic/monot5-input/internal/prep/segment"
	"github.com/DjordjeVuckovic/monot5-input/internal/prep/topic"
	"github.com/DjordjeVuckovic/monot5-input/internal/storage"
	"github.com/DjordjeVuckovic/monot5-input/internal/storage/factory"
	"github.com/DjordjeVuckovic/monot5-input/pkg/config/env"
)

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		slog.Error("Invalid arguments", "error", err)
		os.Exit(2)
	}
	if cfg.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/index_input/.env"); err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Failed to create monoT5 input", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg cliConfig) error {
	rpt := report.New("index", cfg.inputs())

	topics, err := topic.LoadFromFile(cfg.Queries, cfg.topicOptions())
	if err != nil {
		return err
	}

	candidates, err := runfile.LoadFromFile(cfg.Run)
	if err != nil {
		return err
	}
	if cfg.SortByRank {
		candidates.SortByRank()
	}

	storageCfg, err := factory.LoadEnv(storage.Type(cfg.IndexType), cfg.Index)
	if err != nil {
		return err
	}
	store, err := factory.NewDocumentStore(ctx, storageCfg)
	if err != nil {
		return fmt.Errorf("open document index: %w", err)
	}
	defer store.Close()

	splitter, err := segment.NewPunktSplitter()
	if err != nil {
		return err
	}
	segmenter, err := segment.New(splitter, cfg.segmentConfig())
	if err != nil {
		return err
	}

	out, err := prompt.Create(cfg.T5Input, cfg.T5InputIDs)
	if err != nil {
		return err
	}

	var opts []pipeline.PipelineOption
	if !cfg.Quiet {
		opts = append(opts, pipeline.WithProgress(os.Stderr))
	}

	stats, err := pipeline.NewIndexPipeline(topics, candidates, store, segmenter, out, opts...).Run(ctx)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	report.Log(*stats)
	rpt.Finish(*stats)
	if cfg.Report != "" {
		if err := report.WriteFile(rpt, cfg.Report); err != nil {
			return err
		}
		slog.Info("Report written", "path", cfg.Report)
	}
	return nil
}
