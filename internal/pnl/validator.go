package pnl

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Validator handles report PDF validation before text acquisition
type Validator struct {
	maxFileSize int64
	pdfcpuConf  *model.Configuration
}

// NewValidator creates a new report validator with the specified constraints
func NewValidator(maxFileSize int64) *Validator {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	return &Validator{
		maxFileSize: maxFileSize,
		pdfcpuConf:  conf,
	}
}

// ValidateFile performs comprehensive validation on a report PDF.
// Validation failures are reported through the result, not as an error.
func (v *Validator) ValidateFile(req PNLValidateFileRequest) (*PNLValidateFileResult, error) {
	result := &PNLValidateFileResult{
		Path:  req.Path,
		Valid: false,
	}

	err := v.validateReportFile(req.Path)
	if err != nil {
		result.Message = err.Error()
		return result, nil //nolint:nilerr // Return result with validation error, not a processing error
	}

	result.Valid = true
	return result, nil
}

// validateReportFile performs detailed validation on a report PDF
func (v *Validator) validateReportFile(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("path cannot be empty")
	}

	// Check if file exists and get basic info
	fileInfo, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", filePath)
	}
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}

	if err := v.ValidateFileInfo(filePath, fileInfo); err != nil {
		return err
	}

	// Structural validation via pdfcpu catches truncated or corrupt files
	// that a plain open would accept.
	if err := api.ValidateFile(filePath, v.pdfcpuConf); err != nil {
		return fmt.Errorf("invalid PDF structure: %w", err)
	}

	// Confirm the text-extraction library can open the file as well.
	f, _, err := pdf.Open(filePath)
	if err != nil {
		return fmt.Errorf("unreadable PDF file: %w", err)
	}
	defer f.Close()

	return nil
}

// IsValidReport performs a quick check to see if a file is a usable report PDF
func (v *Validator) IsValidReport(filePath string) bool {
	return v.validateReportFile(filePath) == nil
}

// ValidateFileInfo performs basic validation on file info without opening the PDF
func (v *Validator) ValidateFileInfo(filePath string, fileInfo os.FileInfo) error {
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	if !strings.HasSuffix(strings.ToLower(filePath), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", filePath)
	}

	if fileInfo.Size() == 0 {
		return fmt.Errorf("file is empty: %s", filePath)
	}

	if fileInfo.Size() > v.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), v.maxFileSize)
	}

	return nil
}
