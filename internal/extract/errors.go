package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nao1215/resumeparser/internal/model"
)

// Sentinel errors for document-level failures.
var (
	// ErrNotFound is returned when the source document does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrUnsupportedFormat is returned for extensions other than pdf and docx.
	ErrUnsupportedFormat = errors.New("unsupported file type: must be PDF or DOCX")

	// ErrExtraction is returned when the underlying format library fails.
	ErrExtraction = errors.New("text extraction failed")

	// ErrFileTooLarge is returned when a document exceeds the configured size limit.
	ErrFileTooLarge = errors.New("file exceeds maximum size")

	// errNoDocumentXML is returned for DOCX containers without a main document part.
	errNoDocumentXML = errors.New("word/document.xml not found in archive")
)

// Kind classifies an extraction failure.
type Kind int

const (
	// KindNotFound means the source file is absent.
	KindNotFound Kind = iota + 1
	// KindUnsupportedFormat means the extension is not pdf or docx.
	KindUnsupportedFormat
	// KindExtraction means the format library failed.
	KindExtraction
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindUnsupportedFormat:
		return "UnsupportedFormat"
	case KindExtraction:
		return "ExtractionError"
	default:
		return "Unknown"
	}
}

// Error describes why a document could not be turned into text.
type Error struct {
	// Kind classifies the failure.
	Kind Kind

	// Path is the document that failed.
	Path string

	// Format is the format derived from the extension.
	Format model.Format

	// Err is the underlying library error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return "file not found: " + e.Path
	case KindUnsupportedFormat:
		return ErrUnsupportedFormat.Error()
	default:
		return fmt.Sprintf("error extracting %s: %v", strings.ToUpper(e.Format.String()), e.Err)
	}
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	errs := []error{e.sentinel()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case KindNotFound:
		return ErrNotFound
	case KindUnsupportedFormat:
		return ErrUnsupportedFormat
	default:
		return ErrExtraction
	}
}

// KindOf returns the Kind of err, or 0 when err is not an extraction error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
