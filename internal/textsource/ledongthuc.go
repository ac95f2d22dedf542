package textsource

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// defaultMaxTextSize bounds the total text gathered across all pages.
const defaultMaxTextSize = 10 * 1024 * 1024 // 10MB

// LedongthucSource extracts text with the pure-Go ledongthuc/pdf library.
// It needs no external tooling and is always available.
type LedongthucSource struct {
	maxTextSize int
}

// NewLedongthucSource creates a library-backed text source
func NewLedongthucSource() *LedongthucSource {
	return &LedongthucSource{
		maxTextSize: defaultMaxTextSize,
	}
}

// Type identifies the underlying strategy
func (s *LedongthucSource) Type() SourceType {
	return SourceLedongthuc
}

// Available always reports true: the library is compiled in
func (s *LedongthucSource) Available() bool {
	return true
}

// ExtractText returns the text content of every page, concatenated in page
// order. Pages that fail to decode are skipped; an error is returned only
// when no text at all could be extracted.
func (s *LedongthucSource) ExtractText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &SourceError{
			Source: SourceLedongthuc,
			Op:     "open",
			Err:    fmt.Errorf("failed to open PDF: %w", err),
		}
	}
	defer f.Close()

	var builder strings.Builder
	totalLength := 0

	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			// Continue with other pages even if one fails
			continue
		}

		if totalLength+len(content) > s.maxTextSize {
			remaining := s.maxTextSize - totalLength
			if remaining > 0 {
				builder.WriteString(content[:remaining])
			}
			break
		}

		builder.WriteString(content)
		totalLength += len(content)

		if pageNum < reader.NumPage() {
			builder.WriteString("\n")
		}
	}

	text := builder.String()
	if strings.TrimSpace(text) == "" {
		return "", &SourceError{
			Source: SourceLedongthuc,
			Op:     "extract_text",
			Err:    fmt.Errorf("no text content could be extracted from PDF"),
		}
	}

	return text, nil
}
