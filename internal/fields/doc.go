// Package fields holds the rule-based extractors that fill individual
// fields of a parsed resume: email, phone, profile URLs, name and skills.
//
// Every extractor is a pure function of its input and never fails; a
// missing value is nil or an empty slice. Name works on raw text because
// casing and line layout matter there; the others expect normalized text.
// The skill Catalog is the only stateful piece and loads its file once.
package fields
