package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/resumeparser/internal/model"
)

const ruleWidth = 70

// SimpleWriter outputs human-readable text for the terminal.
// Empty sections are omitted unless WithShowEmpty is set.
type SimpleWriter struct {
	baseWriter

	// showEmpty prints list sections even when they have no entries.
	showEmpty bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs one record.
func (w *SimpleWriter) Write(r *model.ParsedResume) (int, error) {
	var sb strings.Builder

	title := "PARSED RESUME"
	if r.Filename != "" {
		title += ": " + r.Filename
	}
	w.writeBanner(&sb, title)

	if r.Failed() {
		fmt.Fprintf(&sb, "Status:  ERROR - %s\n\n", r.Error)
		w.writeFooter(&sb)
		return w.output.Write([]byte(sb.String()))
	}

	fmt.Fprintf(&sb, "Name:        %s\n", orDash(model.StringOrEmpty(r.Name)))
	fmt.Fprintf(&sb, "Email:       %s\n", orDash(model.StringOrEmpty(r.Email)))
	fmt.Fprintf(&sb, "Phone:       %s\n", orDash(model.StringOrEmpty(r.Phone)))
	fmt.Fprintf(&sb, "Characters:  %d\n\n", r.RawTextLength)

	w.writeSection(&sb, "PROFILE LINKS", r.URLs)
	w.writeSection(&sb, "SKILLS", r.Skills)
	w.writeSection(&sb, "ENTITIES", r.Entities)

	w.writeFooter(&sb)
	return w.output.Write([]byte(sb.String()))
}

// WriteBatch outputs counts and one line per document.
func (w *SimpleWriter) WriteBatch(b *model.Batch) (int, error) {
	var sb strings.Builder

	w.writeBanner(&sb, "RESUME BATCH")
	fmt.Fprintf(&sb, "Input Directory: %s\n", b.InputDir)
	fmt.Fprintf(&sb, "Parsed:          %d\n", len(b.Records))
	fmt.Fprintf(&sb, "Failed:          %d\n", len(b.Failures))
	fmt.Fprintf(&sb, "Duplicates:      %d\n", len(b.Duplicates))
	fmt.Fprintf(&sb, "Ignored:         %d\n\n", b.Ignored)

	if len(b.Records) > 0 || w.showEmpty {
		w.writeRule(&sb, "RESUMES")
		for _, r := range b.Records {
			fmt.Fprintf(&sb, "  [+] %s  %s\n", r.Filename, orDash(model.StringOrEmpty(r.Name)))
		}
		sb.WriteString("\n")
	}
	if len(b.Failures) > 0 || w.showEmpty {
		w.writeRule(&sb, "FAILURES")
		for _, f := range b.Failures {
			fmt.Fprintf(&sb, "  [!] %s  %s\n", f.Filename, f.Error)
		}
		sb.WriteString("\n")
	}

	w.writeFooter(&sb)
	return w.output.Write([]byte(sb.String()))
}

func (w *SimpleWriter) writeBanner(sb *strings.Builder, title string) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n\n")
}

func (w *SimpleWriter) writeRule(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n\n")
}

func (w *SimpleWriter) writeSection(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 && !w.showEmpty {
		return
	}
	w.writeRule(sb, title)
	if len(items) == 0 {
		sb.WriteString("  (none)\n")
	}
	for _, item := range items {
		fmt.Fprintf(sb, "  * %s\n", item)
	}
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
}
