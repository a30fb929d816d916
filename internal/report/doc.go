// Package report writes parsed resumes and batch results.
//
// This package contains writers for different output formats:
//   - JSONWriter: the API response and batch output file format
//   - MarkdownWriter: a readable summary with a skills chart
//   - SimpleWriter: plain text for terminal display
//   - XLSXWriter: a spreadsheet export of a batch
//
// Every writer implements Writer, so the commands pick a format at run
// time and MultiWriter can fan one result out to several destinations.
// Record and batch types live in the model package; writers only decide
// how they look.
package report
