package runfile

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/monot5-input/internal/apperr"
)

// TREC run line: query_id Q0 doc_id rank score tag
const runFields = 6

const maxLineSize = 1 << 20

func LoadFromFile(path string) (*Run, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open run file: %w", err)
	}
	defer f.Close()

	return parse(f, path)
}

func Parse(r io.Reader) (*Run, error) {
	return parse(r, "run")
}

func parse(r io.Reader, name string) (*Run, error) {
	slog.Info("Loading run...", "source", name)

	run := newRun()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != runFields {
			return nil, apperr.NewLineValidation(name, lineNo,
				fmt.Sprintf("expected %d fields, got %d", runFields, len(fields)), nil)
		}

		queryID, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, apperr.NewLineValidation(name, lineNo, "invalid query id", err)
		}
		rank, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, apperr.NewLineValidation(name, lineNo, "invalid rank", err)
		}

		run.add(queryID, Candidate{DocID: fields[2], Rank: rank})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read run: %w", err)
	}

	slog.Info("Loaded run", "queries", run.Len(), "candidates", run.Size())
	return run, nil
}
