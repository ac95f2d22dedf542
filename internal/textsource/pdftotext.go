package textsource

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
)

// pdftotextBinary is the poppler utility invoked by PdftotextSource.
const pdftotextBinary = "pdftotext"

// PdftotextSource extracts text by running the poppler pdftotext utility.
// It generally produces better line structure for tabular reports than
// library extraction, so the factory prefers it when installed.
type PdftotextSource struct {
	binary string
}

// NewPdftotextSource creates a pdftotext-backed text source
func NewPdftotextSource() *PdftotextSource {
	return &PdftotextSource{
		binary: pdftotextBinary,
	}
}

// Type identifies the underlying strategy
func (s *PdftotextSource) Type() SourceType {
	return SourcePdftotext
}

// Available reports whether the pdftotext binary is on PATH
func (s *PdftotextSource) Available() bool {
	_, err := exec.LookPath(s.binary)
	return err == nil
}

// ExtractText runs `pdftotext <path> -` and returns its stdout. The "-"
// argument makes the utility write to stdout instead of a sibling file.
func (s *PdftotextSource) ExtractText(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", &SourceError{
			Source: SourcePdftotext,
			Op:     "extract_text",
			Err:    fmt.Errorf("file does not exist: %s", path),
		}
	}

	cmd := exec.Command(s.binary, path, "-")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if execErr, ok := err.(*exec.Error); ok {
			return "", &SourceError{
				Source: SourcePdftotext,
				Op:     "run",
				Err:    fmt.Errorf("pdftotext not found, install poppler utils: %w", execErr),
			}
		}
		msg := bytes.TrimSpace(stderr.Bytes())
		return "", &SourceError{
			Source: SourcePdftotext,
			Op:     "run",
			Err:    fmt.Errorf("pdftotext failed: %s: %w", msg, err),
		}
	}

	return stdout.String(), nil
}
