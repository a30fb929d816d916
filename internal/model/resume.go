package model

import (
	"encoding/json"
	"strings"
)

// Diagnostic strings placed in a field when the resource behind it is
// unavailable. They replace the field content; the rest of the record is
// still populated.
const (
	// SkillCatalogMissing replaces the skills list when the catalog cannot be read.
	SkillCatalogMissing = "WARNING: skills.txt missing. Cannot extract skills."

	// EntityModelMissing replaces the entities list when the model failed to load.
	EntityModelMissing = "ERROR: NLP model not loaded. Check setup."

	// NameExtractionFailed is returned as the name when neither the first line
	// nor the fallback pattern produced a candidate.
	NameExtractionFailed = "N/A (Failed Fallback)"
)

// ParsedResume is the structured record produced for one document.
//
// A record is either a success, with every field present (individual
// fields may be null or empty), or a failure, where only Error is set.
// MarshalJSON enforces this shape on the wire.
type ParsedResume struct {
	// Name is the candidate name, or nil when the document has no text.
	Name *string `json:"name"`

	// Email is the first email address found, or nil.
	Email *string `json:"email"`

	// Phone is the first phone number found, digits only, or nil.
	Phone *string `json:"phone"`

	// URLs are LinkedIn and GitHub links in document order.
	URLs []string `json:"urls"`

	// Skills are catalog entries found in the text. Order is not significant.
	Skills []string `json:"skills"`

	// Entities are formatted as "<text> (<LABEL>)", at most five.
	Entities []string `json:"entities"`

	// RawTextLength is the number of characters extracted before normalization.
	RawTextLength int `json:"raw_text_length"`

	// Filename is set by the batch driver to the source file name.
	Filename string `json:"filename,omitempty"`

	// Error is the document-level failure message.
	Error string `json:"error,omitempty"`

	failure error
}

// NewParsedResume returns an empty successful record.
// Slices are non-nil so that they serialize as [] rather than null.
func NewParsedResume() *ParsedResume {
	return &ParsedResume{
		URLs:     make([]string, 0),
		Skills:   make([]string, 0),
		Entities: make([]string, 0),
	}
}

// NewFailedResume returns an error-only record for a document-level failure.
func NewFailedResume(err error) *ParsedResume {
	r := &ParsedResume{}
	r.SetFailure(err)
	return r
}

// SetFailure turns the record into an error-only record.
// Every extracted field is cleared.
func (r *ParsedResume) SetFailure(err error) {
	if err == nil {
		return
	}
	filename := r.Filename
	*r = ParsedResume{
		Filename: filename,
		Error:    err.Error(),
		failure:  err,
	}
}

// Failed reports whether the record describes a document-level failure.
func (r *ParsedResume) Failed() bool {
	return r.Error != ""
}

// Failure returns the typed error behind Error, if any.
// It is not serialized and is only available in-process.
func (r *ParsedResume) Failure() error {
	return r.failure
}

// MarshalJSON writes only the error (and filename) for failed records.
func (r *ParsedResume) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		return json.Marshal(struct {
			Filename string `json:"filename,omitempty"`
			Error    string `json:"error"`
		}{
			Filename: r.Filename,
			Error:    r.Error,
		})
	}

	type plain ParsedResume
	out := plain(*r)
	if out.URLs == nil {
		out.URLs = []string{}
	}
	if out.Skills == nil {
		out.Skills = []string{}
	}
	if out.Entities == nil {
		out.Entities = []string{}
	}
	return json.Marshal(out)
}

// IsDiagnostic reports whether a field value is a degradation marker
// rather than extracted content.
func IsDiagnostic(value string) bool {
	return strings.HasPrefix(value, "WARNING: ") || strings.HasPrefix(value, "ERROR: ")
}

// StringOrEmpty dereferences an optional field for display.
func StringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
