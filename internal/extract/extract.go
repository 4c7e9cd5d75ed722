package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// ErrExtraction indicates the document could not be parsed. Callers treat
// this as non-fatal and surface a user-facing error.
var ErrExtraction = errors.New("extract: document unparsable")

// Text extracts plain text from an uploaded resume document. PDF pages are
// concatenated with newlines; .txt files pass through as-is. The result is
// normalized before return.
func Text(data []byte, fileName string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty document", ErrExtraction)
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		text, err := pdfText(data)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrExtraction, fileName, err)
		}
		return Normalize(text), nil
	case ".txt":
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: %s: invalid text encoding", ErrExtraction, fileName)
		}
		return Normalize(string(data)), nil
	default:
		return "", fmt.Errorf("%w: unsupported file type %q", ErrExtraction, filepath.Ext(fileName))
	}
}

func pdfText(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	pages := pdfReader.NumPage()
	for i := 1; i <= pages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		buf.WriteString(content)
		buf.WriteString("\n")
	}
	if buf.Len() == 0 {
		// Fall back to the reader-level extractor for PDFs whose pages
		// do not expose per-page content streams.
		plain, err := pdfReader.GetPlainText()
		if err != nil {
			return "", err
		}
		var all bytes.Buffer
		if _, err := io.Copy(&all, plain); err != nil {
			return "", err
		}
		return all.String(), nil
	}
	return buf.String(), nil
}
