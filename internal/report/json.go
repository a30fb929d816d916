package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/resumeparser/internal/model"
)

// BatchIndent is the indentation of the batch output file.
const BatchIndent = "    "

// JSONWriter outputs records in JSON format.
// WriteBatch writes the successful records as one array, which is the
// format of the batch output file.
type JSONWriter struct {
	baseWriter

	indent       bool
	indentPrefix string
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
// Output is compact unless an indent option is given.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs one record.
func (w *JSONWriter) Write(r *model.ParsedResume) (int, error) {
	return w.writeJSON(r)
}

// WriteBatch outputs the batch records as a JSON array.
func (w *JSONWriter) WriteBatch(b *model.Batch) (int, error) {
	records := b.Records
	if records == nil {
		records = []*model.ParsedResume{}
	}
	return w.writeJSON(records)
}

// writeJSON marshals v and writes it followed by a newline.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	data = append(data, '\n')

	return w.output.Write(data)
}
