package pipeline

import (
	"context"
	"strconv"

	"github.com/DjordjeVuckovic/monot5-input/internal/prep/report"
	"github.com/DjordjeVuckovic/monot5-input/internal/prep/runfile"
	"github.com/DjordjeVuckovic/monot5-input/internal/prep/topic"
)

// TextSource returns the full text of a document, or an empty string when
// the document cannot be found.
type TextSource interface {
	Text(docID string) (string, error)
}

// CorpusPipeline emits one prompt per whole document read from a corpus
// directory.
type CorpusPipeline struct {
	topics *topic.Topics
	run    *runfile.Run
	source TextSource
	out    PromptWriter
	config *PipelineConfig
}

func NewCorpusPipeline(
	topics *topic.Topics,
	run *runfile.Run,
	source TextSource,
	out PromptWriter,
	opts ...PipelineOption,
) *CorpusPipeline {
	return &CorpusPipeline{
		topics: topics,
		run:    run,
		source: source,
		out:    out,
		config: newConfig("corpus", opts),
	}
}

func (p *CorpusPipeline) Run(ctx context.Context) (*report.Stats, error) {
	return walk(ctx, p.config, p.topics, p.run, p.emit)
}

func (p *CorpusPipeline) emit(_ context.Context, queryID int, query, docID string, stats *report.Stats) (bool, error) {
	text, err := p.source.Text(docID)
	if err != nil {
		return false, err
	}
	if text == "" {
		stats.Missing++
		stats.NoContent++
		return false, nil
	}

	stats.Docs++
	if err := p.out.Write(query, text, strconv.Itoa(queryID), docID); err != nil {
		return false, err
	}
	stats.Segments++
	return true, nil
}

var _ Pipeline = (*CorpusPipeline)(nil)
