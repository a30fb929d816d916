package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/resumeparser/internal/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the XLSX export.
const (
	SheetResumes  = "Resumes"
	SheetSkills   = "Skills"
	SheetFailures = "Failures"
)

var resumeHeaders = []string{
	"File",
	"Name",
	"Email",
	"Phone",
	"Profile Links",
	"Skills",
	"Entities",
	"Characters",
}

// XLSXWriter exports records to a spreadsheet, one row per resume.
//
// The workbook has three sheets: SheetResumes with the parsed fields,
// SheetSkills with how many resumes mention each skill, and
// SheetFailures with the documents that could not be parsed. The first
// cell error aborts the export.
type XLSXWriter struct {
	baseWriter
}

// NewXLSXWriter creates an XLSXWriter that outputs to the given writer.
func NewXLSXWriter(output io.Writer) *XLSXWriter {
	return &XLSXWriter{baseWriter: newBaseWriter(output)}
}

// Write exports a single record.
func (w *XLSXWriter) Write(r *model.ParsedResume) (int, error) {
	b := model.NewBatch("", "")
	b.Add(r.Filename, r)
	return w.WriteBatch(b)
}

// WriteBatch exports the batch.
func (w *XLSXWriter) WriteBatch(b *model.Batch) (int, error) {
	f := excelize.NewFile()
	defer f.Close()

	// The default sheet is renamed so the workbook opens on the resumes.
	if err := f.SetSheetName("Sheet1", SheetResumes); err != nil {
		return 0, fmt.Errorf("xlsx sheet: %w", err)
	}
	for _, sheet := range []string{SheetSkills, SheetFailures} {
		if _, err := f.NewSheet(sheet); err != nil {
			return 0, fmt.Errorf("xlsx sheet: %w", err)
		}
	}

	if err := fillWorkbook(f, b); err != nil {
		return 0, fmt.Errorf("xlsx cells: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return 0, fmt.Errorf("xlsx write: %w", err)
	}
	return w.output.Write(buf.Bytes())
}

// fillWorkbook writes the three sheets of b into f.
func fillWorkbook(f *excelize.File, b *model.Batch) error {
	if err := writeRow(f, SheetResumes, 1, toCells(resumeHeaders)...); err != nil {
		return err
	}
	for i, r := range b.Records {
		err := writeRow(f, SheetResumes, i+2,
			r.Filename,
			model.StringOrEmpty(r.Name),
			model.StringOrEmpty(r.Email),
			model.StringOrEmpty(r.Phone),
			strings.Join(r.URLs, "\n"),
			strings.Join(r.Skills, ", "),
			strings.Join(r.Entities, "; "),
			r.RawTextLength,
		)
		if err != nil {
			return err
		}
	}

	if err := writeRow(f, SheetSkills, 1, "Skill", "Resumes"); err != nil {
		return err
	}
	for i, s := range b.SkillFrequencies() {
		if err := writeRow(f, SheetSkills, i+2, s.Skill, s.Count); err != nil {
			return err
		}
	}

	if err := writeRow(f, SheetFailures, 1, "File", "Error"); err != nil {
		return err
	}
	for i, fail := range b.Failures {
		if err := writeRow(f, SheetFailures, i+2, fail.Filename, fail.Error); err != nil {
			return err
		}
	}

	return setWidths(f, []colWidth{
		{SheetResumes, "A", "A", 28}, // file
		{SheetResumes, "B", "D", 24}, // contact
		{SheetResumes, "E", "E", 40}, // links
		{SheetResumes, "F", "G", 60}, // skills, entities
		{SheetSkills, "A", "A", 28},
		{SheetFailures, "A", "A", 28},
		{SheetFailures, "B", "B", 80},
	})
}

// writeRow fills row from column A onward and returns the first error.
func writeRow(f *excelize.File, sheet string, row int, values ...any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

type colWidth struct {
	sheet    string
	from, to string
	width    float64
}

func setWidths(f *excelize.File, widths []colWidth) error {
	for _, w := range widths {
		if err := f.SetColWidth(w.sheet, w.from, w.to, w.width); err != nil {
			return err
		}
	}
	return nil
}

func toCells(values []string) []any {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
