// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pageText extracts the plain text of one page. Declared as a var so
// tests can substitute implementations.
var pageText = func(page pdf.Page) (string, error) {
	return page.GetPlainText(nil)
}

// PDFStrategy extracts the embedded text layer of a PDF, page by page.
// Only the text layer is read; scanned (image-only) PDFs produce no
// output. No heading inference, no layout reconstruction: this is
// intentionally lossy, best-effort extraction.
type PDFStrategy struct{}

// Convert opens the PDF and joins the per-page plain text. Pages whose
// text is empty after trimming are skipped; the survivors are joined
// with a blank line, in page order.
func (s *PDFStrategy) Convert(ctx context.Context, path string) (markdown string, err error) {
	// The pdf library panics rather than erroring on some malformed
	// inputs; map those to conversion errors.
	defer func() {
		if r := recover(); r != nil {
			markdown = ""
			err = fmt.Errorf("extracting text from %s: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	var parts []string
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := pageText(page)
		if err != nil {
			return "", fmt.Errorf("extracting text from page %d: %w", i, err)
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	return strings.Join(parts, "\n\n"), nil
}
