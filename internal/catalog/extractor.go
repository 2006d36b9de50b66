package catalog

import (
	"context"
	"io"
)

// TextExtractor defines the boundary to whatever turns an opaque uploaded
// document into plain UTF-8 text. This interface keeps the segmenter free of
// any document-format dependency, following the hexagonal architecture
// pattern: the production implementation lives in platform/pdfextract.
//
// Implementations may fail; callers are expected to convert any failure into
// the empty-input path (and therefore the fallback catalog) rather than
// surfacing an error to the user.
type TextExtractor interface {
	// ExtractText reads the document from r and returns its concatenated
	// page text, newline-separated.
	ExtractText(ctx context.Context, r io.ReaderAt, size int64) (string, error)
}
