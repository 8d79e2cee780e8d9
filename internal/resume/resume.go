// Package resume turns a résumé file into the plain text the interview works from.
package resume

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Load reads a résumé from disk. PDF files are converted to text page by
// page; anything else is read as UTF-8 text. The result may be empty.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read resume %s: %w", path, err)
	}

	var text string
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, err = FromPDF(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return "", fmt.Errorf("parse resume %s: %w", path, err)
		}
	} else {
		text = string(data)
	}

	return strings.TrimSpace(text), nil
}

// FromPDF extracts the plain text of every page.
func FromPDF(r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	return b.String(), nil
}
