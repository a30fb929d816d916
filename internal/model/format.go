package model

import (
	"path/filepath"
	"strings"
)

// Format identifies a supported document format.
type Format string

const (
	// FormatUnknown is returned for any extension other than pdf or docx.
	FormatUnknown Format = ""

	// FormatPDF is a Portable Document Format file.
	FormatPDF Format = "pdf"

	// FormatDOCX is an Office Open XML word processing document.
	FormatDOCX Format = "docx"
)

// FormatFromPath derives the document format from the file extension.
// The check is case-insensitive and never looks at the file content.
func FormatFromPath(path string) Format {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch Format(ext) {
	case FormatPDF:
		return FormatPDF
	case FormatDOCX:
		return FormatDOCX
	default:
		return FormatUnknown
	}
}

// Supported reports whether the format can be parsed.
func (f Format) Supported() bool {
	return f == FormatPDF || f == FormatDOCX
}

// String returns the format tag.
func (f Format) String() string {
	if f == FormatUnknown {
		return "unknown"
	}
	return string(f)
}

// IsSupportedFile reports whether name carries a pdf or docx extension.
func IsSupportedFile(name string) bool {
	return FormatFromPath(name).Supported()
}
