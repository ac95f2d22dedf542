package pnl

// FileInfo represents information about a report PDF on disk
type FileInfo struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	ModifiedTime string `json:"modified_time"`
}

// Request Types

// PNLExtractFileRequest represents a request to extract metrics from a report
type PNLExtractFileRequest struct {
	Path   string `json:"path"`
	Source string `json:"source,omitempty"` // "auto", "ledongthuc", "pdftotext"
}

// PNLReadFileRequest represents a request for the raw extracted text of a report
type PNLReadFileRequest struct {
	Path   string `json:"path"`
	Source string `json:"source,omitempty"`
}

// PNLValidateFileRequest represents a request to validate a report PDF
type PNLValidateFileRequest struct {
	Path string `json:"path"`
}

// PNLSearchDirectoryRequest represents a request to search for report PDFs
type PNLSearchDirectoryRequest struct {
	Directory string `json:"directory"`
	Query     string `json:"query"`
}

// Response Types

// PNLExtractFileResult represents the outcome of a metric extraction run
type PNLExtractFileResult struct {
	Path       string             `json:"path"`
	Metrics    map[string]float64 `json:"metrics"`
	Source     string             `json:"source"`      // text source that produced the input
	TextLength int                `json:"text_length"` // characters of extracted text
}

// PNLReadFileResult represents the raw text acquired from a report
type PNLReadFileResult struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Source  string `json:"source"`
}

// PNLValidateFileResult represents the result of a report validation
type PNLValidateFileResult struct {
	Valid   bool   `json:"valid"`
	Path    string `json:"path"`
	Message string `json:"message,omitempty"`
}

// PNLSearchDirectoryResult represents the result of a directory search
type PNLSearchDirectoryResult struct {
	Files       []FileInfo `json:"files"`
	TotalCount  int        `json:"total_count"`
	Directory   string     `json:"directory"`
	SearchQuery string     `json:"search_query,omitempty"`
}
