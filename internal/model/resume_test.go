package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want Format
	}{
		{"resume.pdf", FormatPDF},
		{"RESUME.PDF", FormatPDF},
		{"dir/cv.Docx", FormatDOCX},
		{"notes.txt", FormatUnknown},
		{"resume.doc", FormatUnknown},
		{"pdf", FormatUnknown},
		{"", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestFormatSupported(t *testing.T) {
	t.Parallel()

	if !FormatPDF.Supported() || !FormatDOCX.Supported() {
		t.Error("expected pdf and docx to be supported")
	}
	if FormatUnknown.Supported() {
		t.Error("expected unknown format to be unsupported")
	}
	if FormatUnknown.String() != "unknown" {
		t.Errorf("expected %q, got %q", "unknown", FormatUnknown.String())
	}
	if !IsSupportedFile("a.docx") || IsSupportedFile("a.txt") {
		t.Error("IsSupportedFile returned the wrong answer")
	}
}

func TestParsedResumeJSON(t *testing.T) {
	t.Parallel()

	t.Run("successful record serializes every field", func(t *testing.T) {
		t.Parallel()

		email := "jane@example.com"
		r := NewParsedResume()
		r.Email = &email
		r.RawTextLength = 42

		data, err := json.Marshal(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got map[string]any
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, key := range []string{"name", "email", "phone", "urls", "skills", "entities", "raw_text_length"} {
			if _, ok := got[key]; !ok {
				t.Errorf("expected key %q in %s", key, data)
			}
		}
		if got["name"] != nil {
			t.Errorf("expected null name, got %v", got["name"])
		}
		if got["email"] != email {
			t.Errorf("expected email %q, got %v", email, got["email"])
		}
		if _, ok := got["error"]; ok {
			t.Error("expected no error key on success")
		}
		if urls, ok := got["urls"].([]any); !ok || len(urls) != 0 {
			t.Errorf("expected empty urls array, got %v", got["urls"])
		}
	})

	t.Run("nil slices serialize as empty arrays", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(&ParsedResume{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var got map[string]any
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := got["skills"].([]any); !ok {
			t.Errorf("expected skills array, got %v", got["skills"])
		}
	})

	t.Run("failed record serializes only the error", func(t *testing.T) {
		t.Parallel()

		name := "Jane Doe"
		r := NewParsedResume()
		r.Name = &name
		r.SetFailure(errors.New("unsupported file type"))

		data, err := json.Marshal(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var got map[string]any
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("expected only the error key, got %s", data)
		}
		if got["error"] != "unsupported file type" {
			t.Errorf("unexpected error value %v", got["error"])
		}
		if r.Name != nil {
			t.Error("expected fields to be cleared on failure")
		}
	})

	t.Run("failed record keeps the filename", func(t *testing.T) {
		t.Parallel()

		r := &ParsedResume{Filename: "a.pdf"}
		r.SetFailure(errors.New("boom"))

		data, err := json.Marshal(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"filename":"a.pdf","error":"boom"}`
		if string(data) != want {
			t.Errorf("got %s, want %s", data, want)
		}
	})
}

func TestParsedResumeFailure(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("not found")
	r := NewFailedResume(sentinel)

	if !r.Failed() {
		t.Error("expected record to be failed")
	}
	if !errors.Is(r.Failure(), sentinel) {
		t.Errorf("expected failure to wrap sentinel, got %v", r.Failure())
	}

	ok := NewParsedResume()
	ok.SetFailure(nil)
	if ok.Failed() {
		t.Error("SetFailure(nil) must not fail the record")
	}
}

func TestIsDiagnostic(t *testing.T) {
	t.Parallel()

	if !IsDiagnostic(SkillCatalogMissing) {
		t.Error("expected skills warning to be a diagnostic")
	}
	if !IsDiagnostic(EntityModelMissing) {
		t.Error("expected model error to be a diagnostic")
	}
	if IsDiagnostic("python") {
		t.Error("expected plain value not to be a diagnostic")
	}
}

func TestStringOrEmpty(t *testing.T) {
	t.Parallel()

	if StringOrEmpty(nil) != "" {
		t.Error("expected empty string for nil")
	}
	s := "x"
	if StringOrEmpty(&s) != "x" {
		t.Error("expected dereferenced value")
	}
}
