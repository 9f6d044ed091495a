package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/monot5-input/pkg/stringsutil"
)

// Format renders a single monoT5 input line without the trailing newline.
func Format(query, document string) string {
	return "Query: " + stringsutil.SingleLine(query) + " Document: " + stringsutil.SingleLine(document) + " Relevant:"
}

// Writer appends prompt lines and their id lines in lockstep, so line N of
// the ids output always identifies line N of the text output.
type Writer struct {
	texts *bufio.Writer
	ids   *bufio.Writer
	lines int
}

func NewWriter(texts, ids io.Writer) *Writer {
	return &Writer{
		texts: bufio.NewWriter(texts),
		ids:   bufio.NewWriter(ids),
	}
}

// Write appends one prompt line and one tab separated id line built from idFields.
func (w *Writer) Write(query, document string, idFields ...string) error {
	if _, err := w.ids.WriteString(strings.Join(idFields, "\t") + "\n"); err != nil {
		return fmt.Errorf("write id line: %w", err)
	}
	if _, err := w.texts.WriteString(Format(query, document) + "\n"); err != nil {
		return fmt.Errorf("write prompt line: %w", err)
	}
	w.lines++
	return nil
}

func (w *Writer) Lines() int {
	return w.lines
}

func (w *Writer) Flush() error {
	if err := w.texts.Flush(); err != nil {
		return fmt.Errorf("flush prompts: %w", err)
	}
	if err := w.ids.Flush(); err != nil {
		return fmt.Errorf("flush ids: %w", err)
	}
	return nil
}

// FileWriter is a Writer backed by two files on disk.
type FileWriter struct {
	*Writer
	textFile *os.File
	idsFile  *os.File
}

func Create(textPath, idsPath string) (*FileWriter, error) {
	textFile, err := os.Create(textPath)
	if err != nil {
		return nil, fmt.Errorf("create t5 input file: %w", err)
	}
	idsFile, err := os.Create(idsPath)
	if err != nil {
		textFile.Close()
		return nil, fmt.Errorf("create t5 input ids file: %w", err)
	}

	return &FileWriter{
		Writer:   NewWriter(textFile, idsFile),
		textFile: textFile,
		idsFile:  idsFile,
	}, nil
}

func (fw *FileWriter) Close() error {
	flushErr := fw.Flush()
	textErr := fw.textFile.Close()
	idsErr := fw.idsFile.Close()

	if flushErr != nil {
		return flushErr
	}
	if textErr != nil {
		return fmt.Errorf("close t5 input file: %w", textErr)
	}
	if idsErr != nil {
		return fmt.Errorf("close t5 input ids file: %w", idsErr)
	}
	return nil
}
