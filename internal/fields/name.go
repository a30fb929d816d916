package fields

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nao1215/resumeparser/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// maxNameTokens is the largest number of words accepted on the first line.
	maxNameTokens = 5

	// minNameLength is the shortest first line accepted as a name.
	minNameLength = 4
)

var (
	// nameSeparatorRegex removes separator punctuation from the first line.
	nameSeparatorRegex = regexp.MustCompile(`[|:,-]`)

	// titleCaseNameRegex finds two or three consecutive Title-Case words.
	titleCaseNameRegex = regexp.MustCompile(`[A-Z][a-z]+ [A-Z][a-z]+(?: [A-Z][a-z]+)?`)
)

// Name guesses the candidate name from raw (not normalized) text.
//
// The first non-empty line is used when, after separator punctuation is
// removed, it has at most five words and at least four characters.
// Otherwise the first Title-Case sequence of two or three words anywhere in
// the text is used, and when there is none model.NameExtractionFailed is
// returned. Text without any non-empty line yields nil.
func Name(raw string) *string {
	line, ok := firstNonEmptyLine(raw)
	if !ok {
		return nil
	}

	candidate := strings.TrimSpace(nameSeparatorRegex.ReplaceAllString(line, ""))
	if len(strings.Fields(candidate)) > maxNameTokens || utf8.RuneCountInString(candidate) < minNameLength {
		fallback := titleCaseNameRegex.FindString(raw)
		if fallback == "" {
			sentinel := model.NameExtractionFailed
			return &sentinel
		}
		name := titleCase(fallback)
		return &name
	}

	name := titleCase(candidate)
	return &name
}

// firstNonEmptyLine returns the first line holding a non-space character.
func firstNonEmptyLine(text string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			return line, true
		}
	}
	return "", false
}

// titleCase upper-cases the first letter of every run of cased letters and
// lower-cases the rest, so "O'NEIL" becomes "O'Neil". Any other rune ends a
// run. A new Caser is created per call because cases.Caser is not safe for
// concurrent use.
func titleCase(s string) string {
	caser := cases.Title(language.English)

	var b strings.Builder
	b.Grow(len(s))
	start := -1
	for i, r := range s {
		if isCased(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			b.WriteString(caser.String(s[start:i]))
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		b.WriteString(caser.String(s[start:]))
	}
	return b.String()
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}
