package document

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextExtractor pulls plain text out of uploaded PDF files, page by page.
// Pages that cannot be decoded are skipped rather than failing the whole
// document.
type TextExtractor struct{}

func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

func (te *TextExtractor) ExtractFromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to create PDF reader: %w", err)
	}

	var (
		builder strings.Builder
		skipped int
	)
	numPages := reader.NumPage()

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			skipped++
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			skipped++
			continue
		}

		builder.WriteString(text)
		builder.WriteByte('\n')
	}

	if skipped > 0 {
		log.Printf("Skipped %d of %d PDF pages during extraction", skipped, numPages)
	}

	return builder.String(), nil
}
