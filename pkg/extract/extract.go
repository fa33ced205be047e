// Package extract converts uploaded files into plain text for analysis.
package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/clauseguard-server/internal/domain"
)

// Text extracts plain text from an uploaded file. The format is chosen by
// file extension; unknown extensions are treated as plain text. A file from
// which no usable text can be recovered yields domain.ErrNoText.
func Text(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return fromPDF(data)
	default:
		return fromPlain(data)
	}
}

func fromPlain(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("file is not valid UTF-8: %w", domain.ErrNoText)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", domain.ErrNoText
	}
	return text, nil
}

func fromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", domain.ErrNoText)
	}

	var sb strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			// Skip pages with broken content streams rather than
			// failing the whole document.
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", domain.ErrNoText
	}
	return text, nil
}
