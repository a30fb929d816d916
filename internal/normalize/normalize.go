// Package normalize cleans extracted resume text into the canonical form
// used by the field extractors and the annotation model.
package normalize

import (
	"regexp"
	"strings"
)

// whitespace is the ASCII whitespace class shared by every step.
const whitespace = `[\t\n\v\f\r ]`

var (
	// reHyphenBreak matches a word split across lines by a hyphen.
	reHyphenBreak = regexp.MustCompile(`(?i)([a-z])-` + whitespace + `*\n` + whitespace + `*([a-z])`)

	// rePageNumber matches a line holding only a number.
	rePageNumber = regexp.MustCompile(`\n` + whitespace + `*\d+` + whitespace + `*\n`)

	// reNonPrintable matches anything outside printable ASCII except whitespace.
	reNonPrintable = regexp.MustCompile(`[^\t\n\v\f\r\x20-\x7E]+`)

	// reWhitespace matches runs of whitespace.
	reWhitespace = regexp.MustCompile(whitespace + `+`)
)

// Normalize returns the canonical form of raw text: hyphenated line breaks
// merged, page-number lines removed, non-printable runs replaced by a
// space, whitespace collapsed and trimmed, and everything lowercased.
//
// The first two steps need the original line breaks, so they run before
// whitespace is collapsed. Normalize is idempotent and maps "" to "".
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	text := reHyphenBreak.ReplaceAllString(raw, "${1}${2}")
	text = rePageNumber.ReplaceAllString(text, "\n")
	text = reNonPrintable.ReplaceAllString(text, " ")
	text = reWhitespace.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	return strings.ToLower(text)
}
