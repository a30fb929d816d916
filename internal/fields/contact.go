package fields

import (
	"regexp"
	"strings"
)

var (
	// emailRegex matches a local part and a domain made of word characters,
	// dots and hyphens.
	emailRegex = regexp.MustCompile(`[\w.-]+@[\w.-]+`)

	// phoneRegex matches NNN-NNN-NNNN with optional separators, a
	// parenthesized area code, or a bare run of 10-15 digits.
	phoneRegex = regexp.MustCompile(`\d{3}[-\s]?\d{3}[-\s]?\d{4}|\(\d{3}\)\s*\d{3}[-\s]?\d{4}|\d{10,15}`)

	// nonDigitRegex strips everything except digits from a phone candidate.
	nonDigitRegex = regexp.MustCompile(`\D`)

	// urlRegex is a permissive http(s) URL matcher.
	urlRegex = regexp.MustCompile(`https?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*\(\),]|(?:%[0-9a-fA-F][0-9a-fA-F]))+`)
)

// profileHosts are the substrings that make a URL worth keeping.
var profileHosts = []string{"linkedin", "github"}

const (
	minPhoneDigits = 10
	maxPhoneDigits = 15
)

// Email returns the first email address in text, or nil.
func Email(text string) *string {
	match := emailRegex.FindString(text)
	if match == "" {
		return nil
	}
	return &match
}

// Phone returns the digits of the first phone-shaped candidate holding
// between 10 and 15 digits, or nil.
func Phone(text string) *string {
	for _, candidate := range phoneRegex.FindAllString(text, -1) {
		digits := nonDigitRegex.ReplaceAllString(candidate, "")
		if len(digits) >= minPhoneDigits && len(digits) <= maxPhoneDigits {
			return &digits
		}
	}
	return nil
}

// URLs returns every LinkedIn or GitHub URL in text, in order.
// Duplicates are kept. The result is never nil.
func URLs(text string) []string {
	urls := make([]string, 0)
	for _, u := range urlRegex.FindAllString(text, -1) {
		lower := strings.ToLower(u)
		for _, host := range profileHosts {
			if strings.Contains(lower, host) {
				urls = append(urls, u)
				break
			}
		}
	}
	return urls
}
