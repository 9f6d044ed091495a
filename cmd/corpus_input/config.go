package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/DjordjeVuckovic/monot5-input/internal/prep/topic"
)

type cliConfig struct {
	Queries             string
	Run                 string
	Corpus              string
	T5Input             string
	T5InputIDs          string
	UseQuestionAndQuery bool
	QueryField          string
	Separator           string
	SortByRank          bool
	Report              string
	Quiet               bool
	Verbose             bool
}

func parseFlags(args []string, output io.Writer) (cliConfig, error) {
	cfg := cliConfig{}
	fs := flag.NewFlagSet("corpus_input", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cfg.Queries, "queries", "", "JSON file with topics (question_id, question, query)")
	fs.StringVar(&cfg.Run, "run", "", "TREC run file: <query_id> Q0 <doc_id> <rank> <score> <tag>")
	fs.StringVar(&cfg.Corpus, "corpus", "", "Directory searched recursively for <doc_id>.json files")
	fs.StringVar(&cfg.T5Input, "t5_input", "", "Path to store t5_input, txt format")
	fs.StringVar(&cfg.T5InputIDs, "t5_input_ids", "", "Path to store the query-doc ids of t5_input, tsv format")
	fs.BoolVar(&cfg.UseQuestionAndQuery, "use-question-and-query", false, "Use question and query concatenated as the t5 query; otherwise only --query-field")
	fs.StringVar(&cfg.QueryField, "query-field", string(topic.FieldQuestion), "Topic field used as the t5 query: question or query")
	fs.StringVar(&cfg.Separator, "separator", topic.DefaultSeparator, "Separator between question and query")
	fs.BoolVar(&cfg.SortByRank, "sort-by-rank", false, "Sort each query's candidates by rank instead of run file order")
	fs.StringVar(&cfg.Report, "report", "", "Optional path for a YAML run report")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Disable the progress bar")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, cfg.validate()
}

func (c cliConfig) validate() error {
	var errs []error
	required := []struct{ name, value string }{
		{"--queries", c.Queries},
		{"--run", c.Run},
		{"--corpus", c.Corpus},
		{"--t5_input", c.T5Input},
		{"--t5_input_ids", c.T5InputIDs},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("%s is required", r.name))
		}
	}
	if err := c.topicOptions().Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c cliConfig) topicOptions() topic.Options {
	return topic.Options{
		Field:     topic.Field(c.QueryField),
		Combine:   c.UseQuestionAndQuery,
		Separator: c.Separator,
	}
}

func (c cliConfig) inputs() map[string]string {
	return map[string]string{
		"queries":      c.Queries,
		"run":          c.Run,
		"corpus":       c.Corpus,
		"t5_input":     c.T5Input,
		"t5_input_ids": c.T5InputIDs,
	}
}
