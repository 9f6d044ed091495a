package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/DjordjeVuckovic/monot5-input/internal/prep/report"
	"github.com/DjordjeVuckovic/monot5-input/internal/prep/runfile"
	"github.com/DjordjeVuckovic/monot5-input/internal/prep/segment"
	"github.com/DjordjeVuckovic/monot5-input/internal/prep/topic"
	"github.com/DjordjeVuckovic/monot5-input/internal/storage"
)

// IndexPipeline emits one prompt per sentence window of documents fetched
// from a document store.
type IndexPipeline struct {
	topics    *topic.Topics
	run       *runfile.Run
	store     storage.DocumentStore
	segmenter *segment.Segmenter
	out       PromptWriter
	config    *PipelineConfig
}

func NewIndexPipeline(
	topics *topic.Topics,
	run *runfile.Run,
	store storage.DocumentStore,
	segmenter *segment.Segmenter,
	out PromptWriter,
	opts ...PipelineOption,
) *IndexPipeline {
	return &IndexPipeline{
		topics:    topics,
		run:       run,
		store:     store,
		segmenter: segmenter,
		out:       out,
		config:    newConfig("index", opts),
	}
}

func (p *IndexPipeline) Run(ctx context.Context) (*report.Stats, error) {
	return walk(ctx, p.config, p.topics, p.run, p.emit)
}

func (p *IndexPipeline) emit(ctx context.Context, queryID int, query, docID string, stats *report.Stats) (bool, error) {
	contents, err := p.store.Contents(ctx, docID)
	if errors.Is(err, storage.ErrDocumentNotFound) {
		slog.Warn("Doc id not found", "doc_id", docID)
		stats.Missing++
		stats.NoContent++
		return false, nil
	}
	if err != nil {
		return false, err
	}

	title, body, ok := segment.SplitContents(contents)
	stats.Docs++
	if !ok {
		stats.NoContent++
		return false, nil
	}

	segments, hasSentences := p.segmenter.Segments(title, body)
	if !hasSentences {
		stats.NoSegments++
	}

	qid := strconv.Itoa(queryID)
	for _, s := range segments {
		if err := p.out.Write(query, s.Text, qid, docID, strconv.Itoa(s.Offset)); err != nil {
			return false, err
		}
		stats.Segments++
	}
	return true, nil
}

var _ Pipeline = (*IndexPipeline)(nil)
