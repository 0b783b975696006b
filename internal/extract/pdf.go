package extract

import (
	"fmt"
	"log/slog"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Separator joins page texts in the concatenated extraction result.
const Separator = "\n\n"

// PDFExtractor reads page texts out of a local PDF file.
type PDFExtractor struct{}

// Pages returns the text of each page in order. A page with no
// extractable text layer contributes an empty string rather than
// aborting the whole document; only a document-level failure returns
// an error.
func (PDFExtractor) Pages(path string) ([]string, error) {
	// Validate the document before reading it page by page. A corrupt
	// or non-PDF file fails here with a usable error.
	pageCount, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document %s: %w", path, err)
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}
	defer f.Close()

	n := reader.NumPage()
	if n != pageCount {
		slog.Warn("Page count mismatch between validator and reader.", "path", path, "validator", pageCount, "reader", n)
	}

	pages := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			slog.Warn("No extractable text on page.", "path", path, "page", i, "error", err)
			text = ""
		}
		pages = append(pages, text)
	}
	return pages, nil
}
