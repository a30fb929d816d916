package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/nao1215/resumeparser/internal/config"
	"github.com/nao1215/resumeparser/internal/extract"
	"github.com/nao1215/resumeparser/internal/model"
)

type parsedRecord struct {
	Name          *string  `json:"name"`
	Email         *string  `json:"email"`
	Phone         *string  `json:"phone"`
	URLs          []string `json:"urls"`
	Skills        []string `json:"skills"`
	Entities      []string `json:"entities"`
	RawTextLength int      `json:"raw_text_length"`
	Filename      string   `json:"filename"`
	Error         string   `json:"error"`
}

func TestRunParseCmd(t *testing.T) {
	t.Parallel()

	t.Run("prints the JSON record", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfgPath := writeTestConfig(t, dir)
		doc := writeDOCX(t, dir, "jane.docx", sampleLines...)

		stdout, _, err := runRoot(t, "parse", "-c", cfgPath, "--json", doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var r parsedRecord
		if err := json.Unmarshal([]byte(stdout), &r); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, stdout)
		}
		if model.StringOrEmpty(r.Name) != "Jane Doe" {
			t.Errorf("name = %q, want Jane Doe", model.StringOrEmpty(r.Name))
		}
		if model.StringOrEmpty(r.Email) != "jane.doe@example.com" {
			t.Errorf("email = %q", model.StringOrEmpty(r.Email))
		}
		if !reflect.DeepEqual(r.Skills, []string{"go", "python", "sql"}) {
			t.Errorf("skills = %v, want [go python sql]", r.Skills)
		}
		if r.Filename != "jane.docx" {
			t.Errorf("filename = %q, want jane.docx", r.Filename)
		}
	})

	t.Run("prints a readable summary by default", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfgPath := writeTestConfig(t, dir)
		doc := writeDOCX(t, dir, "jane.docx", sampleLines...)

		stdout, _, err := runRoot(t, "parse", "-c", cfgPath, doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stdout, "Jane Doe") || !strings.Contains(stdout, "python") {
			t.Errorf("unexpected output:\n%s", stdout)
		}
	})

	t.Run("writes a Markdown report to a file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfgPath := writeTestConfig(t, dir)
		doc := writeDOCX(t, dir, "jane.docx", sampleLines...)
		out := filepath.Join(dir, "reports", "jane.md")

		stdout, _, err := runRoot(t, "parse", "-c", cfgPath, "--markdown", "-o", out, doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stdout != "" {
			t.Errorf("expected nothing on stdout, got %q", stdout)
		}
		content, err := os.ReadFile(out)
		if err != nil {
			t.Fatalf("report not written: %v", err)
		}
		if !strings.Contains(string(content), "# Parsed Resume: jane.docx") {
			t.Errorf("unexpected report:\n%s", content)
		}
	})

	t.Run("reports unsupported documents and fails", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfgPath := writeTestConfig(t, dir)
		txt := filepath.Join(dir, "resume.txt")
		if err := os.WriteFile(txt, []byte("Jane Doe"), 0o600); err != nil {
			t.Fatal(err)
		}

		stdout, _, err := runRoot(t, "parse", "-c", cfgPath, "--json", txt)
		if err == nil || !strings.Contains(err.Error(), "1 of 1 documents") {
			t.Fatalf("expected a parse failure, got %v", err)
		}

		var r parsedRecord
		if err := json.Unmarshal([]byte(stdout), &r); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, stdout)
		}
		if r.Error != extract.ErrUnsupportedFormat.Error() {
			t.Errorf("error = %q, want %q", r.Error, extract.ErrUnsupportedFormat.Error())
		}
	})

	t.Run("degrades skills when the catalog is missing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfgPath := writeTestConfig(t, dir)
		doc := writeDOCX(t, dir, "jane.docx", sampleLines...)

		stdout, _, err := runRoot(t, "parse", "-c", cfgPath, "--skills", filepath.Join(dir, "missing.txt"), "--json", doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var r parsedRecord
		if err := json.Unmarshal([]byte(stdout), &r); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, stdout)
		}
		if !reflect.DeepEqual(r.Skills, []string{model.SkillCatalogMissing}) {
			t.Errorf("skills = %v, want the catalog warning", r.Skills)
		}
		if model.StringOrEmpty(r.Name) != "Jane Doe" {
			t.Errorf("name = %q, want Jane Doe", model.StringOrEmpty(r.Name))
		}
	})

	t.Run("rejects conflicting formats", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfgPath := writeTestConfig(t, dir)

		_, _, err := runRoot(t, "parse", "-c", cfgPath, "--json", "--markdown", "x.pdf")
		if !errors.Is(err, config.ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})

	t.Run("fails when the explicit config file is missing", func(t *testing.T) {
		t.Parallel()

		_, _, err := runRoot(t, "parse", "-c", filepath.Join(t.TempDir(), "nope.yaml"), "x.pdf")
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("requires at least one file", func(t *testing.T) {
		t.Parallel()

		if _, _, err := runRoot(t, "parse"); err == nil {
			t.Error("expected an argument error")
		}
	})
}
