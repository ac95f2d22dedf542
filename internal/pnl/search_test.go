package pnl

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSearch_SearchDirectory(t *testing.T) {
	search := NewSearch(1024 * 1024) // 1MB limit

	tempDir := t.TempDir()

	// Create test files
	testFiles := map[string][]byte{
		"pnl_q1_2026.pdf":       make([]byte, 1024),
		"pnl_q2_2026.pdf":       make([]byte, 2048),
		"balance_sheet.pdf":     make([]byte, 512),
		"commentary.txt":        []byte("not a pdf"),
		"empty.pdf":             {},                        // Empty file
		"oversized_archive.pdf": make([]byte, 2*1024*1024), // Too large
	}

	for filename, content := range testFiles {
		filePath := filepath.Join(tempDir, filename)
		if err := os.WriteFile(filePath, content, 0o644); err != nil {
			t.Fatalf("failed to create test file %s: %v", filename, err)
		}
	}

	// Hidden directories are skipped entirely
	hiddenDir := filepath.Join(tempDir, ".cache")
	if err := os.MkdirAll(hiddenDir, 0o755); err != nil {
		t.Fatalf("failed to create hidden dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(hiddenDir, "stale.pdf"), make([]byte, 256), 0o644); err != nil {
		t.Fatalf("failed to create hidden file: %v", err)
	}

	tests := []struct {
		name          string
		req           PNLSearchDirectoryRequest
		expectedCount int
		expectedError bool
	}{
		{
			name: "all valid reports",
			req: PNLSearchDirectoryRequest{
				Directory: tempDir,
			},
			expectedCount: 3, // q1, q2 and balance_sheet; empty, oversized and hidden excluded
		},
		{
			name: "substring query",
			req: PNLSearchDirectoryRequest{
				Directory: tempDir,
				Query:     "q2",
			},
			expectedCount: 1,
		},
		{
			name: "word-based query",
			req: PNLSearchDirectoryRequest{
				Directory: tempDir,
				Query:     "pnl 2026",
			},
			expectedCount: 2,
		},
		{
			name: "case insensitive query",
			req: PNLSearchDirectoryRequest{
				Directory: tempDir,
				Query:     "BALANCE",
			},
			expectedCount: 1,
		},
		{
			name: "no matches",
			req: PNLSearchDirectoryRequest{
				Directory: tempDir,
				Query:     "inventory",
			},
			expectedCount: 0,
		},
		{
			name: "empty directory argument",
			req: PNLSearchDirectoryRequest{
				Directory: "",
			},
			expectedError: true,
		},
		{
			name: "non-existent directory",
			req: PNLSearchDirectoryRequest{
				Directory: filepath.Join(tempDir, "missing"),
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := search.SearchDirectory(tt.req)

			if tt.expectedError {
				if err == nil {
					t.Fatalf("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.TotalCount != tt.expectedCount {
				t.Errorf("expected %d files but got %d", tt.expectedCount, result.TotalCount)
			}
			if len(result.Files) != tt.expectedCount {
				t.Errorf("expected %d file entries but got %d", tt.expectedCount, len(result.Files))
			}
			if result.SearchQuery != tt.req.Query {
				t.Errorf("expected query %q but got %q", tt.req.Query, result.SearchQuery)
			}

			for _, file := range result.Files {
				if file.Name == "" || file.Path == "" {
					t.Errorf("file entry missing name or path: %+v", file)
				}
				if file.Size == 0 {
					t.Errorf("file entry has zero size: %+v", file)
				}
				if file.ModifiedTime == "" {
					t.Errorf("file entry missing modified time: %+v", file)
				}
			}
		})
	}
}

func TestMatchesQuery(t *testing.T) {
	tests := []struct {
		filename string
		query    string
		expected bool
	}{
		{"pnl_q2_2026.pdf", "q2", true},
		{"pnl_q2_2026.pdf", "pnl 2026", true},
		{"pnl-report (final).pdf", "report final", true},
		{"balance_sheet.pdf", "balance", true},
		{"balance_sheet.pdf", "income", false},
		{"report.pdf", "", true},
	}

	for _, tt := range tests {
		if got := matchesQuery(tt.filename, tt.query); got != tt.expected {
			t.Errorf("matchesQuery(%q, %q) = %v, expected %v", tt.filename, tt.query, got, tt.expected)
		}
	}
}

func TestSplitIntoWords(t *testing.T) {
	words := splitIntoWords("pnl_q2-2026 (final)")
	expected := []string{"pnl", "q2", "2026", "final"}

	if len(words) != len(expected) {
		t.Fatalf("expected %v but got %v", expected, words)
	}
	for i, word := range expected {
		if words[i] != word {
			t.Errorf("expected word %q at %d but got %q", word, i, words[i])
		}
	}
}
