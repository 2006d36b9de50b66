// Package pdfextract implements the catalog.TextExtractor interface for PDF
// documents.
package pdfextract

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extractor extracts plain text from PDF documents page by page.
type Extractor struct {
	logger *slog.Logger
}

// New creates a PDF text extractor.
func New(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// ExtractText reads every page of the PDF and returns the concatenated page
// text, newline-separated. Pages whose text cannot be extracted are skipped;
// a document that yields no text at all still returns successfully with an
// empty string, which downstream segmentation converts into the fallback
// catalog.
func (e *Extractor) ExtractText(ctx context.Context, r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			e.logger.WarnContext(ctx, "skipping unreadable PDF page",
				"page", i,
				"error", err)
			continue
		}

		b.WriteString(text)
		b.WriteString("\n")
	}

	return b.String(), nil
}
