package pnl

import (
	"regexp"
	"strings"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// adjacencyMetrics are the metrics whose value reliably appears directly
// after the label on one logical line. Totals for COGS, expenses and other
// expenses are usually separated from their labels by intervening line
// items, so those always go through the line-scanning path.
var adjacencyMetrics = []MetricKey{MetricIncome, MetricNetIncome}

// Extractor extracts P&L metrics from the raw text of a financial report.
// It is a pure function of its input: no state survives between calls and
// malformed input degrades to a partial (possibly empty) result, never an
// error.
type Extractor struct {
	matcher *Matcher
	locator Locator
}

// NewExtractor creates an extractor over the default EN/ES label catalog.
func NewExtractor() *Extractor {
	return NewExtractorWithCatalog(nil)
}

// NewExtractorWithCatalog creates an extractor over a custom catalog.
// A nil catalog falls back to DefaultCatalog.
func NewExtractorWithCatalog(catalog Catalog) *Extractor {
	return &Extractor{matcher: NewMatcher(catalog)}
}

// SetLocator replaces the value locator, allowing a custom scan window or
// selection strategy. The default locator uses DefaultScanWindow and
// SelectLargestMagnitude.
func (e *Extractor) SetLocator(loc Locator) {
	e.locator = loc
}

// Extract resolves the five base metrics from the report text and computes
// the derived figures. Only resolved keys are present in the result:
//   - income and net_income appear whenever resolved, including zero
//     net_income
//   - cogs, expenses and other_expenses are suppressed when zero
//   - total_expenses appears when non-zero, margin when computable
func (e *Extractor) Extract(text string) map[string]float64 {
	resolved := make(map[MetricKey]float64)

	// Fast path: label and value adjacent on the flattened text.
	flat := whitespaceRuns.ReplaceAllString(text, " ")
	for _, key := range adjacencyMetrics {
		if value, ok := e.extractAdjacent(flat, key); ok {
			resolved[key] = value
		}
	}

	// Fallback: scan line by line for labels of still-unresolved metrics.
	if len(resolved) < len(AllMetrics) {
		e.scanLines(text, resolved)
	}

	return e.buildResult(resolved)
}

// extractAdjacent matches a label immediately followed by its value on the
// flattened text. Only compiled for adjacency metrics.
func (e *Extractor) extractAdjacent(flat string, key MetricKey) (float64, bool) {
	re, ok := e.matcher.inline[key]
	if !ok {
		return 0, false
	}
	match := re.FindStringSubmatch(flat)
	if match == nil {
		return 0, false
	}
	return ParseAmount(match[1])
}

// scanLines walks the original (non-flattened) text and, for every line
// matching an unresolved metric's label, locates a value in the forward
// window. A metric is attempted until its first success and skipped
// afterwards.
func (e *Extractor) scanLines(text string, resolved map[MetricKey]float64) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		for _, key := range AllMetrics {
			if _, done := resolved[key]; done {
				continue
			}
			if !e.matcher.Matches(line, key) {
				continue
			}
			if value, ok := e.locator.Locate(lines, i+1); ok {
				resolved[key] = value
			}
		}
	}
}

// buildResult applies the derived-metric formulas and the output
// suppression policy. Unresolved expense components count as zero toward
// total_expenses; margin requires resolved, non-zero income and a resolved
// net_income.
func (e *Extractor) buildResult(resolved map[MetricKey]float64) map[string]float64 {
	cogs := resolved[MetricCOGS]
	expenses := resolved[MetricExpenses]
	otherExpenses := resolved[MetricOtherExpenses]
	totalExpenses := cogs + expenses + otherExpenses

	result := make(map[string]float64)

	if income, ok := resolved[MetricIncome]; ok {
		result[string(MetricIncome)] = income
	}
	if cogs != 0 {
		result[string(MetricCOGS)] = cogs
	}
	if expenses != 0 {
		result[string(MetricExpenses)] = expenses
	}
	if otherExpenses != 0 {
		result[string(MetricOtherExpenses)] = otherExpenses
	}
	if netIncome, ok := resolved[MetricNetIncome]; ok {
		result[string(MetricNetIncome)] = netIncome
	}
	if totalExpenses != 0 {
		result[KeyTotalExpenses] = totalExpenses
	}

	income, incomeOK := resolved[MetricIncome]
	netIncome, netOK := resolved[MetricNetIncome]
	if incomeOK && income != 0 && netOK {
		result[KeyMargin] = netIncome / income * 100
	}

	return result
}
