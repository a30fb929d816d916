package report

import (
	"io"

	"github.com/nao1215/resumeparser/internal/model"
)

// Writer outputs parse results in one format.
// Implementations write to the io.Writer given at construction and
// report the number of bytes written.
type Writer interface {
	// Write outputs a single record.
	// Returns the number of bytes written and any error encountered.
	Write(r *model.ParsedResume) (int, error)

	// WriteBatch outputs the result of a directory run.
	WriteBatch(b *model.Batch) (int, error)
}

// MultiWriter writes to multiple Writers in turn.
// The batch command fills its JSON, Markdown and XLSX files through one
// MultiWriter.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the record to all configured Writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(r *model.ParsedResume) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(r)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteBatch outputs the batch to all configured Writers.
func (m *MultiWriter) WriteBatch(b *model.Batch) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteBatch(b)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// orDash returns "-" for empty table cells.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
