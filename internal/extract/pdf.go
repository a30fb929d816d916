package extract

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pageSource is the page-level view of a PDF used by joinPages.
type pageSource interface {
	NumPage() int
	PageText(i int) (string, error)
}

// pdfPages adapts a pdf.Reader to pageSource. Page numbers are 1-based.
type pdfPages struct {
	r *pdf.Reader
}

func (p pdfPages) NumPage() int {
	return p.r.NumPage()
}

func (p pdfPages) PageText(i int) (string, error) {
	page := p.r.Page(i)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}

// extractPDF returns the text of every page that has a text layer.
func extractPDF(path string, size int64) (text string, err error) {
	f, err := os.Open(path) //nolint:gosec // path is chosen by the caller
	if err != nil {
		return "", err
	}
	defer f.Close()

	// The pdf package panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(f, size)
	if err != nil {
		return "", err
	}
	return joinPages(pdfPages{r: reader})
}

// joinPages walks pages in order, drops pages without text and joins the
// rest with a single newline. A document without any text yields "".
func joinPages(src pageSource) (string, error) {
	n := src.NumPage()
	pages := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		text, err := src.PageText(i)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, text)
	}
	return strings.Join(pages, "\n"), nil
}
