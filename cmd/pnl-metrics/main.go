package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/finlens/pnl-metrics/internal/pnl"
)

var (
	sourceName   = flag.String("source", "auto", "Text source: auto, ledongthuc, pdftotext")
	scanWindow   = flag.Int("window", pnl.DefaultScanWindow, "Lines scanned after a matched label")
	outputFormat = flag.String("format", "json", "Output format: json, text")
	verbose      = flag.Bool("verbose", false, "Enable verbose output")
	help         = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: P&L report PDF path required\n\n")
		printUsage()
		os.Exit(1)
	}

	reportPath := flag.Arg(0)
	if _, err := os.Stat(reportPath); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: File not found: %s\n", reportPath)
		os.Exit(1)
	}

	result, err := extractMetrics(reportPath)
	if err != nil {
		reportError(err)
		os.Exit(1)
	}

	if err := outputResults(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error outputting results: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("P&L Metrics - extract financial metrics from P&L report PDFs")
	fmt.Println()
	fmt.Println("Scans a profit and loss report for income, cost of goods sold, expenses,")
	fmt.Println("other expenses and net income, in English or Spanish, and derives total")
	fmt.Println("expenses and net profit margin from what it finds.")
	fmt.Println()
	printUsage()
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -source        Text source: auto (default), ledongthuc, pdftotext")
	fmt.Println("  -window        Lines scanned after a matched label (default 10)")
	fmt.Println("  -format        Output format: json (default), text")
	fmt.Println("  -verbose       Enable verbose output")
	fmt.Println("  -help          Show this help message")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  pnl-metrics report.pdf")
	fmt.Println("  pnl-metrics -source=pdftotext -format=text report.pdf")
	fmt.Println("  pnl-metrics -window=15 reports/2026-q2.pdf")
}

func printUsage() {
	fmt.Println("USAGE:")
	fmt.Println("  pnl-metrics [OPTIONS] <report_pdf>")
}

// ExtractionResult represents the complete result of a metric extraction run
type ExtractionResult struct {
	FilePath   string             `json:"file_path"`
	Source     string             `json:"source"`
	TextLength int                `json:"text_length"`
	Metrics    map[string]float64 `json:"metrics"`
}

func extractMetrics(reportPath string) (*ExtractionResult, error) {
	absPath, err := filepath.Abs(reportPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	if *scanWindow <= 0 {
		return nil, fmt.Errorf("scan window must be positive, got %d", *scanWindow)
	}

	extractor := pnl.NewExtractor()
	extractor.SetLocator(pnl.Locator{
		Window: *scanWindow,
		Select: pnl.SelectLargestMagnitude,
	})
	service := pnl.NewServiceWithExtractor(pnl.DefaultMaxFileSize, extractor)

	if *verbose {
		fmt.Fprintf(os.Stderr, "Analyzing report: %s\n", absPath)
	}

	req := pnl.PNLExtractFileRequest{Path: absPath, Source: *sourceName}
	extracted, err := service.ExtractFile(req)
	if err != nil {
		return nil, err
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "Text source: %s (%d characters)\n", extracted.Source, extracted.TextLength)
	}

	return &ExtractionResult{
		FilePath:   extracted.Path,
		Source:     extracted.Source,
		TextLength: extracted.TextLength,
		Metrics:    extracted.Metrics,
	}, nil
}

// reportError writes the failure to stderr, as a JSON object when the
// caller asked for JSON output so scripted consumers can parse it.
func reportError(err error) {
	if *outputFormat == "json" {
		payload, marshalErr := json.Marshal(map[string]string{"error": err.Error()})
		if marshalErr == nil {
			fmt.Fprintln(os.Stderr, string(payload))
			return
		}
	}
	fmt.Fprintf(os.Stderr, "Error extracting metrics: %v\n", err)
}

func outputResults(result *ExtractionResult) error {
	switch *outputFormat {
	case "json":
		return outputJSON(result)
	case "text":
		return outputText(result)
	default:
		return fmt.Errorf("unsupported output format: %s", *outputFormat)
	}
}

func outputJSON(result *ExtractionResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func outputText(result *ExtractionResult) error {
	fmt.Printf("Financial metrics for: %s\n", result.FilePath)
	fmt.Printf("Text source: %s\n", result.Source)

	if len(result.Metrics) == 0 {
		fmt.Println("\nNo financial metrics could be located in this report.")
		return nil
	}

	keys := make([]string, 0, len(result.Metrics))
	for key := range result.Metrics {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Println()
	for _, key := range keys {
		fmt.Printf("  %-16s %.2f\n", key, result.Metrics[key])
	}

	return nil
}

func init() {
	// Custom flag usage
	flag.Usage = func() {
		printHelp()
	}
}
