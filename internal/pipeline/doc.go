// Package pipeline turns a document into a ParsedResume.
//
// Parsing is a fixed sequence of steps run by a Pipeline against a Job:
//
//  1. ExtractStep reads the PDF or DOCX text and records its length.
//  2. NormalizeStep produces the lowercased, cleaned text.
//  3. ContactStep fills email, phone and profile links.
//  4. NameStep guesses the candidate name from the raw text.
//  5. SkillStep matches the skill catalog.
//  6. EntityStep runs the annotation model.
//
// Each step reads what earlier steps left on the Job and writes its own
// field of Job.Result. Only extraction can fail a document. The other
// steps degrade their own field to a diagnostic entry and let the rest
// of the record through, so a missing catalog or model never costs the
// contact fields.
//
// Parser builds a fresh Pipeline per document and holds no per-document
// state, so one Parser is shared by the HTTP handler and every batch
// worker. BatchProcessor runs a DocumentParser over many documents with
// bounded concurrency and returns results in input order.
package pipeline
