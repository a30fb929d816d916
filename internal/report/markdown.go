package report

import (
	"io"
	"sort"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/resumeparser/internal/model"
)

// MaxChartSkills is the number of skills shown in the batch pie chart.
const MaxChartSkills = 10

// MarkdownWriter outputs records and batch summaries in Markdown.
//
// A record becomes a heading with a contact table and bullet lists. A
// batch becomes a counts table, a pie chart of the most frequent skills
// and a table of failed documents.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs one record.
func (w *MarkdownWriter) Write(r *model.ParsedResume) (int, error) {
	md := markdown.NewMarkdown(w.output)

	title := "Parsed Resume"
	if r.Filename != "" {
		title += ": " + r.Filename
	}
	md.H1(title)
	md.PlainText("")

	if r.Failed() {
		md.Cautionf("The document could not be parsed: %s", r.Error)
		md.PlainText("")
		w.writeFooter(md)
		return len(md.String()), md.Build()
	}

	md.Table(markdown.TableSet{
		Header: []string{"Field", "Value"},
		Rows: [][]string{
			{"Name", orDash(model.StringOrEmpty(r.Name))},
			{"Email", orDash(model.StringOrEmpty(r.Email))},
			{"Phone", orDash(model.StringOrEmpty(r.Phone))},
			{"Raw Text Length", strconv.Itoa(r.RawTextLength)},
		},
	})
	md.PlainText("")

	w.writeList(md, "Profile Links", r.URLs, "No LinkedIn or GitHub links found.")
	w.writeList(md, "Skills", r.Skills, "No catalog skills found.")
	w.writeList(md, "Entities", r.Entities, "No entities found.")

	w.writeFooter(md)
	return len(md.String()), md.Build()
}

// WriteBatch outputs a summary of a directory run.
func (w *MarkdownWriter) WriteBatch(b *model.Batch) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Resume Batch Summary")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Batch ID", "`" + b.ID + "`"},
			{"Input Directory", "`" + b.InputDir + "`"},
			{"Started", b.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Parsed", strconv.Itoa(len(b.Records))},
			{"Failed", strconv.Itoa(len(b.Failures))},
			{"Duplicates", strconv.Itoa(len(b.Duplicates))},
			{"Ignored", strconv.Itoa(b.Ignored)},
		},
	})
	md.PlainText("")

	switch {
	case b.Empty():
		md.Warningf("No resumes were parsed.")
	case len(b.Failures) > 0:
		md.Importantf("%d document(s) could not be parsed.", len(b.Failures))
	default:
		md.Tip("Every document was parsed.")
	}
	md.PlainText("")

	w.writeSkills(md, b)
	w.writeRecords(md, b)
	w.writeFailures(md, b)
	w.writeDuplicates(md, b)

	w.writeFooter(md)
	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeList(md *markdown.Markdown, title string, items []string, empty string) {
	md.H2(title)
	md.PlainText("")
	if len(items) == 0 {
		md.PlainText(empty)
	} else {
		md.BulletList(items...)
	}
	md.PlainText("")
}

// writeSkills writes the skill frequency table and a pie chart of the most
// common skills.
func (w *MarkdownWriter) writeSkills(md *markdown.Markdown, b *model.Batch) {
	md.H2("Skills")
	md.PlainText("")

	freq := b.SkillFrequencies()
	if len(freq) == 0 {
		md.PlainText("No catalog skills found.")
		md.PlainText("")
		return
	}

	top := freq
	if len(top) > MaxChartSkills {
		top = top[:MaxChartSkills]
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Most Common Skills"),
		piechart.WithShowData(true),
	)
	rows := make([][]string, len(top))
	for i, s := range top {
		chart.LabelAndIntValue(s.Skill, uint64(s.Count)) //nolint:gosec // counts are never negative
		rows[i] = []string{s.Skill, strconv.Itoa(s.Count)}
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Skill", "Resumes"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeRecords(md *markdown.Markdown, b *model.Batch) {
	if b.Empty() {
		return
	}

	md.H2("Resumes")
	md.PlainText("")

	rows := make([][]string, len(b.Records))
	for i, r := range b.Records {
		rows[i] = []string{
			r.Filename,
			orDash(model.StringOrEmpty(r.Name)),
			orDash(model.StringOrEmpty(r.Email)),
			orDash(model.StringOrEmpty(r.Phone)),
			strconv.Itoa(countContent(r.Skills)),
			strconv.Itoa(r.RawTextLength),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"File", "Name", "Email", "Phone", "Skills", "Characters"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeFailures(md *markdown.Markdown, b *model.Batch) {
	if len(b.Failures) == 0 {
		return
	}

	md.H2("Failures")
	md.PlainText("")

	rows := make([][]string, len(b.Failures))
	for i, f := range b.Failures {
		rows[i] = []string{f.Filename, f.Error}
	}
	md.Table(markdown.TableSet{
		Header: []string{"File", "Error"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeDuplicates(md *markdown.Markdown, b *model.Batch) {
	if len(b.Duplicates) == 0 {
		return
	}

	md.H2("Duplicates")
	md.PlainText("")

	names := make([]string, 0, len(b.Duplicates))
	for name := range b.Duplicates {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]string, len(names))
	for i, name := range names {
		items[i] = name + " (same content as " + b.Duplicates[name] + ")"
	}
	md.BulletList(items...)
	md.PlainText("")
}

func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [resumeparser](https://github.com/nao1215/resumeparser)*")
}

// countContent counts list entries that are not diagnostics.
func countContent(items []string) int {
	n := 0
	for _, s := range items {
		if !model.IsDiagnostic(s) {
			n++
		}
	}
	return n
}
