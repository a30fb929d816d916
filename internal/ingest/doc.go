// Package ingest finds resumes in a directory and runs them through the
// parser as one batch.
//
// The scan is not recursive. Subdirectories, hidden files and files that
// are not PDF or DOCX are ignored. Files with identical content are parsed
// once; later copies are reported as duplicates.
package ingest
