package pnl

import (
	"fmt"
	"os"

	"github.com/finlens/pnl-metrics/internal/textsource"
)

// DefaultMaxFileSize caps report files at 100MB unless configured otherwise
const DefaultMaxFileSize = 100 * 1024 * 1024

// Service orchestrates report validation, text acquisition and metric
// extraction. It holds no per-request state; calls are independent and may
// run concurrently across documents.
type Service struct {
	maxFileSize int64
	sources     *textsource.Factory
	extractor   *Extractor
	validator   *Validator
	search      *Search
}

// NewService creates a report service with the default catalog and sources
func NewService(maxFileSize int64) *Service {
	return NewServiceWithExtractor(maxFileSize, NewExtractor())
}

// NewServiceWithExtractor creates a report service around a custom
// extractor (custom catalog, window or selection strategy).
func NewServiceWithExtractor(maxFileSize int64, extractor *Extractor) *Service {
	return &Service{
		maxFileSize: maxFileSize,
		sources:     textsource.NewFactory(),
		extractor:   extractor,
		validator:   NewValidator(maxFileSize),
		search:      NewSearch(maxFileSize),
	}
}

// ExtractFile extracts P&L metrics from the report PDF named in the request
func (s *Service) ExtractFile(req PNLExtractFileRequest) (*PNLExtractFileResult, error) {
	text, source, err := s.acquireText(req.Path, req.Source)
	if err != nil {
		return nil, err
	}

	return &PNLExtractFileResult{
		Path:       req.Path,
		Metrics:    s.extractor.Extract(text),
		Source:     string(source),
		TextLength: len(text),
	}, nil
}

// ExtractText runs the core extraction over already-materialized text.
// Useful when the caller acquired the text itself (e.g. a tabular export).
func (s *Service) ExtractText(text string) map[string]float64 {
	return s.extractor.Extract(text)
}

// ReadFile returns the raw text acquired from a report, without extraction
func (s *Service) ReadFile(req PNLReadFileRequest) (*PNLReadFileResult, error) {
	text, source, err := s.acquireText(req.Path, req.Source)
	if err != nil {
		return nil, err
	}

	return &PNLReadFileResult{
		Path:    req.Path,
		Content: text,
		Source:  string(source),
	}, nil
}

// ValidateFile performs validation on a report PDF
func (s *Service) ValidateFile(req PNLValidateFileRequest) (*PNLValidateFileResult, error) {
	return s.validator.ValidateFile(req)
}

// SearchDirectory searches for report PDFs in a directory
func (s *Service) SearchDirectory(req PNLSearchDirectoryRequest) (*PNLSearchDirectoryResult, error) {
	return s.search.SearchDirectory(req)
}

// IsValidReport performs a quick validation check on a file
func (s *Service) IsValidReport(filePath string) bool {
	return s.validator.IsValidReport(filePath)
}

// GetMaxFileSize returns the maximum report file size limit
func (s *Service) GetMaxFileSize() int64 {
	return s.maxFileSize
}

// acquireText validates the file and runs the selected text source over it
func (s *Service) acquireText(path, sourceName string) (string, textsource.SourceType, error) {
	if path == "" {
		return "", "", fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", "", fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return "", "", fmt.Errorf("cannot access file: %w", err)
	}

	if err := s.validator.ValidateFileInfo(path, fileInfo); err != nil {
		return "", "", err
	}

	sourceType, err := textsource.ParseSourceType(sourceName)
	if err != nil {
		return "", "", err
	}

	source, err := s.sources.Create(sourceType)
	if err != nil {
		return "", "", err
	}

	text, err := source.ExtractText(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract text: %w", err)
	}

	return text, source.Type(), nil
}
