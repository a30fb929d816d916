// Package model defines the data structures shared by the resume parser.
//
// This package contains the following main types:
//   - Format: the document format derived from a file extension
//   - ParsedResume: the structured record produced for one document
//   - Batch: the accumulated result of a directory scan
//
// Models live in their own package so that the extractor, the pipeline,
// the report writers and the HTTP server can share them without import
// cycles. All exported records serialize to JSON.
package model
