// Package extract converts PDF and DOCX documents into plain text.
//
// The format is chosen from the file extension only. PDF pages are read
// with github.com/ledongthuc/pdf; DOCX files are opened as zip containers
// and their body paragraphs are read from word/document.xml.
//
// Failures are returned as *Error values carrying a Kind, and match the
// package sentinels with errors.Is:
//
//	text, err := extract.New().Extract("resume.pdf")
//	if errors.Is(err, extract.ErrUnsupportedFormat) {
//	    // reject the upload
//	}
package extract
