package extract

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// documentPart is the main document part of a WordprocessingML package.
const documentPart = "word/document.xml"

// extractDOCX returns the body paragraphs of a DOCX file joined by newlines.
func extractDOCX(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", err
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != documentPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		defer rc.Close()

		paragraphs, err := readParagraphs(rc)
		if err != nil {
			return "", err
		}
		return strings.Join(paragraphs, "\n"), nil
	}
	return "", errNoDocumentXML
}

// readParagraphs walks document.xml and returns the text of every body
// paragraph in order. Empty paragraphs are kept as empty strings.
// Paragraphs inside tables and text boxes are not body paragraphs and are
// skipped, as are tab stop definitions in paragraph and run properties.
func readParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		paragraphs []string
		buf        strings.Builder
		inPara     bool
		inText     bool
		nested     int
		props      int
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl", "txbxContent":
				nested++
			case "pPr", "rPr":
				props++
			case "p":
				if nested == 0 {
					inPara = true
					buf.Reset()
				}
			case "t":
				inText = inPara && nested == 0
			case "tab":
				if inPara && nested == 0 && props == 0 {
					buf.WriteByte('\t')
				}
			case "br", "cr":
				if inPara && nested == 0 && props == 0 {
					buf.WriteByte('\n')
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl", "txbxContent":
				nested--
			case "pPr", "rPr":
				props--
			case "p":
				if inPara && nested == 0 {
					paragraphs = append(paragraphs, buf.String())
					inPara = false
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				buf.Write(t)
			}
		}
	}

	return paragraphs, nil
}
