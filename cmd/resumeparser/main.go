// Package main provides the entry point for the resumeparser CLI.
//
// resumeparser turns PDF and DOCX resumes into structured records: name,
// contact details, profile links, catalog skills and a handful of
// annotated entities.
//
// Usage:
//
//	resumeparser parse resume.pdf
//	resumeparser batch --input test_files
//	resumeparser serve --addr 127.0.0.1:5000
//
// See --help for all available options.
package main

func main() {
	Execute()
}
