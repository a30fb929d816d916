package extract

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/nao1215/resumeparser/internal/model"
)

// DefaultMaxFileSize is the largest document accepted by default (32MB).
const DefaultMaxFileSize = 32 * 1024 * 1024

// Extractor turns documents into RawText.
// An Extractor holds no per-document state and is safe for concurrent use.
type Extractor struct {
	logger      *slog.Logger
	maxFileSize int64
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// WithMaxFileSize limits the size of documents. Zero or negative values
// keep the default.
func WithMaxFileSize(n int64) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.maxFileSize = n
		}
	}
}

// New creates an Extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		maxFileSize: DefaultMaxFileSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Extract reads the document at path and returns its text.
//
// The extension is checked before the file system is touched, so an
// unsupported path fails with KindUnsupportedFormat even when it does
// not exist.
func (e *Extractor) Extract(path string) (string, error) {
	format := model.FormatFromPath(path)
	if !format.Supported() {
		return "", &Error{Kind: KindUnsupportedFormat, Path: path, Format: format}
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &Error{Kind: KindNotFound, Path: path, Format: format, Err: err}
		}
		return "", &Error{Kind: KindExtraction, Path: path, Format: format, Err: err}
	}
	if info.IsDir() {
		return "", &Error{Kind: KindExtraction, Path: path, Format: format, Err: fmt.Errorf("%s is a directory", path)}
	}
	if info.Size() > e.maxFileSize {
		return "", &Error{
			Kind:   KindExtraction,
			Path:   path,
			Format: format,
			Err:    fmt.Errorf("%w: %d > %d bytes", ErrFileTooLarge, info.Size(), e.maxFileSize),
		}
	}

	var text string
	switch format {
	case model.FormatPDF:
		text, err = extractPDF(path, info.Size())
	case model.FormatDOCX:
		text, err = extractDOCX(path)
	}
	if err != nil {
		return "", &Error{Kind: KindExtraction, Path: path, Format: format, Err: err}
	}

	e.logger.Debug("extracted document text",
		"path", path,
		"format", format.String(),
		"lines", strings.Count(text, "\n")+1,
	)
	return text, nil
}
