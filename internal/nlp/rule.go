package nlp

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// tokenRegex splits text into words, keeping inner apostrophes and dots
// ("o'brien", "b.s") and treating "&" as a word of its own.
var tokenRegex = regexp.MustCompile(`[\p{L}\p{N}]+(?:['.][\p{L}\p{N}]+)*|&`)

// token is one word of the input.
type token struct {
	start int
	end   int
	lower string

	// boundary is true when punctuation separates this token from the
	// previous one. Organization names never cross a boundary.
	boundary bool
}

// RuleModel is a Model driven by an Artifact: a gazetteer and head words
// for organizations, regular expressions for dates, and phrases for
// education and experience sections.
//
// A RuleModel is immutable after construction.
type RuleModel struct {
	name    string
	version string

	orgLabel     string
	dateLabel    string
	sectionLabel string

	heads        map[string]struct{}
	connectors   map[string]struct{}
	stopwords    map[string]struct{}
	maxModifiers int

	known    []*regexp.Regexp
	dates    []*regexp.Regexp
	sections []*regexp.Regexp
}

// NewRuleModel compiles an artifact into a model.
func NewRuleModel(a *Artifact) (*RuleModel, error) {
	m := &RuleModel{
		name:         a.Name,
		version:      a.Version,
		orgLabel:     a.Organizations.Label,
		dateLabel:    a.Dates.Label,
		sectionLabel: a.Sections.Label,
		heads:        wordSet(a.Organizations.Heads),
		connectors:   wordSet(a.Organizations.Connectors),
		stopwords:    wordSet(a.Stopwords),
		maxModifiers: a.Organizations.MaxModifiers,
	}

	var err error
	if m.known, err = compilePhrases(a.Organizations.Known); err != nil {
		return nil, err
	}
	if m.sections, err = compilePhrases(a.Sections.Phrases); err != nil {
		return nil, err
	}
	for _, p := range a.Dates.Patterns {
		re, err := regexp.Compile(`(?i)` + p)
		if err != nil {
			return nil, fmt.Errorf("%w: date pattern %q: %w", ErrInvalidModel, p, err)
		}
		m.dates = append(m.dates, re)
	}
	return m, nil
}

// Name returns the model name.
func (m *RuleModel) Name() string {
	return m.name
}

// Version returns the artifact version.
func (m *RuleModel) Version() string {
	return m.version
}

// Annotate returns the labelled spans of text. When candidates overlap the
// longest one wins; ties go to the earlier span, then to DATE over ORG over
// SECTION.
func (m *RuleModel) Annotate(text string) []Span {
	tokens := tokenize(text)
	candidates := make([]Span, 0)

	collect := func(patterns []*regexp.Regexp, label string) {
		for _, re := range patterns {
			for _, loc := range re.FindAllStringIndex(text, -1) {
				candidates = append(candidates, Span{Start: loc[0], End: loc[1], Label: label})
			}
		}
	}
	collect(m.dates, m.dateLabel)
	collect(m.known, m.orgLabel)
	collect(m.sections, m.sectionLabel)

	for i := range tokens {
		if _, ok := m.heads[tokens[i].lower]; !ok {
			continue
		}
		first, last := m.growOrganization(tokens, i)
		candidates = append(candidates, Span{
			Start: tokens[first].start,
			End:   tokens[last].end,
			Label: m.orgLabel,
		})
	}

	rank := map[string]int{m.dateLabel: 0, m.orgLabel: 1, m.sectionLabel: 2}
	spans := resolveOverlaps(candidates, rank)
	for i := range spans {
		spans[i].Text = text[spans[i].Start:spans[i].End]
		spans[i].Tokens = countTokens(tokens, spans[i].Start, spans[i].End)
	}
	return spans
}

// growOrganization extends a head word to the left over modifiers and to
// the right over a connector and its object ("university of michigan").
// It returns the indexes of the first and last token of the name.
func (m *RuleModel) growOrganization(tokens []token, head int) (int, int) {
	first, last := head, head

	for j := head - 1; j >= 0 && head-j <= m.maxModifiers; j-- {
		if tokens[j+1].boundary || !m.modifier(tokens[j].lower) {
			break
		}
		first = j
	}

	next := head + 1
	if next+1 >= len(tokens) || tokens[next].boundary || tokens[next+1].boundary {
		return first, last
	}
	if _, ok := m.connectors[tokens[next].lower]; !ok {
		return first, last
	}
	for k := next + 1; k < len(tokens) && k-next <= m.maxModifiers; k++ {
		if (k > next+1 && tokens[k].boundary) || !m.modifier(tokens[k].lower) {
			break
		}
		last = k
	}
	return first, last
}

// modifier reports whether word may be part of an organization name.
func (m *RuleModel) modifier(word string) bool {
	if _, stop := m.stopwords[word]; stop {
		return false
	}
	return !isNumeric(word)
}

// tokenize splits text into tokens and marks punctuation boundaries.
func tokenize(text string) []token {
	locs := tokenRegex.FindAllStringIndex(text, -1)
	tokens := make([]token, len(locs))
	prev := 0
	for i, loc := range locs {
		tokens[i] = token{
			start:    loc[0],
			end:      loc[1],
			lower:    strings.ToLower(text[loc[0]:loc[1]]),
			boundary: i > 0 && strings.TrimSpace(text[prev:loc[0]]) != "",
		}
		prev = loc[1]
	}
	return tokens
}

// countTokens returns the number of tokens overlapping [start, end).
func countTokens(tokens []token, start, end int) int {
	n := 0
	for _, t := range tokens {
		if t.start < end && t.end > start {
			n++
		}
	}
	return n
}

// resolveOverlaps keeps a non-overlapping subset of candidates, preferring
// longer spans, and returns it ordered by position.
func resolveOverlaps(candidates []Span, rank map[string]int) []Span {
	sort.SliceStable(candidates, func(i, j int) bool {
		li := candidates[i].End - candidates[i].Start
		lj := candidates[j].End - candidates[j].Start
		if li != lj {
			return li > lj
		}
		if candidates[i].Start != candidates[j].Start {
			return candidates[i].Start < candidates[j].Start
		}
		return rank[candidates[i].Label] < rank[candidates[j].Label]
	})

	accepted := make([]Span, 0, len(candidates))
	for _, c := range candidates {
		overlaps := false
		for _, a := range accepted {
			if c.Start < a.End && a.Start < c.End {
				overlaps = true
				break
			}
		}
		if !overlaps {
			accepted = append(accepted, c)
		}
	}

	sort.Slice(accepted, func(i, j int) bool {
		return accepted[i].Start < accepted[j].Start
	})
	return accepted
}

// compilePhrases builds case-insensitive whole-word matchers. Words inside a
// phrase may be separated by any run of spaces.
func compilePhrases(phrases []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(phrases))
	for _, p := range phrases {
		words := strings.Fields(strings.ToLower(p))
		if len(words) == 0 {
			continue
		}
		for i, w := range words {
			words[i] = regexp.QuoteMeta(w)
		}
		re, err := regexp.Compile(`(?i)\b` + strings.Join(words, ` +`) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("%w: phrase %q: %w", ErrInvalidModel, p, err)
		}
		out = append(out, re)
	}
	return out, nil
}

func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

// isNumeric reports whether word consists of digits and dots only.
func isNumeric(word string) bool {
	digits := 0
	for _, r := range word {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '.':
		default:
			return false
		}
	}
	return digits > 0
}
