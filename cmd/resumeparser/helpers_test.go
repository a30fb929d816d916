package main

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var sampleLines = []string{
	"Jane Doe",
	"jane.doe@example.com | 555-123-4567",
	"https://github.com/janedoe",
	"Software engineer at Acme Labs since June 2019",
	"Skills: Go, Python, SQL",
}

// writeDOCX writes a minimal word processing document with one paragraph
// per line.
func writeDOCX(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()

	var body strings.Builder
	for _, line := range lines {
		fmt.Fprintf(&body, "<w:p><w:r><w:t>%s</w:t></w:r></w:p>", line)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("failed to create zip entry: %v", err)
	}
	doc := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body.String() +
		`</w:body></w:document>`
	if _, err := w.Write([]byte(doc)); err != nil {
		t.Fatalf("failed to write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("failed to write docx: %v", err)
	}
	return path
}

// writeTestConfig writes a skill catalog and a configuration file that
// points at it, so tests never pick up a user configuration.
func writeTestConfig(t *testing.T, dir string) string {
	t.Helper()

	skills := filepath.Join(dir, "skills.txt")
	if err := os.WriteFile(skills, []byte("Go\nPython\nSQL\nRust\n"), 0o600); err != nil {
		t.Fatalf("failed to write skills: %v", err)
	}

	cfg := fmt.Sprintf("skills: %s\nmodel:\n  dir: %s\n", skills, filepath.Join(dir, "models"))
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(cfg), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// runRoot executes the root command with args and returns stdout and
// stderr.
func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
