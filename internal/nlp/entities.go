package nlp

import (
	"fmt"
	"strings"
)

// MaxEntities caps the number of entities reported per resume.
const MaxEntities = 5

// ExtractEntities annotates text and returns up to MaxEntities entries of
// the form "<text> (<LABEL>)".
//
// Organizations and dates are kept, as is any span mentioning education or
// experience. Of those, only dates and spans of more than one token
// survive. Duplicates are dropped, first occurrence wins.
func ExtractEntities(m Model, text string) ([]string, error) {
	if m == nil {
		return nil, ErrModelUnavailable
	}

	entities := make([]string, 0, MaxEntities)
	seen := make(map[string]struct{})
	for _, span := range m.Annotate(text) {
		if !relevant(span) {
			continue
		}
		if span.Label != LabelDate && span.Tokens <= 1 {
			continue
		}
		entity := fmt.Sprintf("%s (%s)", span.Text, span.Label)
		if _, ok := seen[entity]; ok {
			continue
		}
		seen[entity] = struct{}{}
		entities = append(entities, entity)
		if len(entities) == MaxEntities {
			break
		}
	}
	return entities, nil
}

func relevant(span Span) bool {
	if span.Label == LabelOrg || span.Label == LabelDate {
		return true
	}
	lower := strings.ToLower(span.Text)
	return strings.Contains(lower, "education") || strings.Contains(lower, "experience")
}
