// Package nlp provides the annotation model used to find organizations,
// dates and education/experience mentions in resume text, and the entity
// filter that turns model output into the entities field.
//
// Models are identified by name. A model artifact is a YAML document that
// describes organization head words and a gazetteer, date patterns and
// section phrases; RuleModel applies it to text. The default artifact,
// en_resume_sm, is built into the binary, and a file with the same name in
// a search directory takes precedence:
//
//	<data dir>/resumeparser/models/en_resume_sm.yaml
//
// A Handle loads a model at most once and shares it read-only, so a single
// Handle can back any number of concurrent parses. When loading fails the
// Handle keeps returning ErrModelUnavailable and entity extraction
// degrades instead of aborting the parse.
package nlp
