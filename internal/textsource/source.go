// Package textsource provides pluggable acquisition of plain text from
// report PDFs. Two implementations exist: one backed by the pure-Go
// ledongthuc/pdf library and one shelling out to the poppler pdftotext
// utility. A factory selects between them based on available tooling.
package textsource

import "fmt"

// SourceType identifies a text acquisition strategy
type SourceType string

const (
	SourceLedongthuc SourceType = "ledongthuc"
	SourcePdftotext  SourceType = "pdftotext"
	SourceAuto       SourceType = "auto" // Pick the best available source
)

// TextSource produces plain text given a report file path
type TextSource interface {
	// ExtractText returns the full text content of the PDF at path.
	ExtractText(path string) (string, error)

	// Type identifies the underlying strategy.
	Type() SourceType

	// Available reports whether the strategy can run on this host.
	Available() bool
}

// SourceError wraps failures of a specific text source
type SourceError struct {
	Source SourceType `json:"source"`
	Op     string     `json:"operation"`
	Err    error      `json:"error"`
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("text source %s error in %s: %v", e.Source, e.Op, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
