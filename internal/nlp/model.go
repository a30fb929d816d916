package nlp

// Entity labels produced by the built-in model.
const (
	LabelOrg     = "ORG"
	LabelDate    = "DATE"
	LabelSection = "SECTION"
)

// Span is an annotated region of the input text.
type Span struct {
	// Text is the covered text, as it appears in the input.
	Text string

	// Label is the entity category.
	Label string

	// Start and End are byte offsets into the input.
	Start int
	End   int

	// Tokens is the number of tokens covered by the span.
	Tokens int
}

// Model annotates text with labelled spans.
// Implementations must be safe for concurrent use after construction.
type Model interface {
	// Name returns the model identifier.
	Name() string

	// Annotate returns non-overlapping spans ordered by position.
	Annotate(text string) []Span
}
