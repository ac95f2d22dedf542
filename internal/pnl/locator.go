package pnl

import (
	"math"
	"strings"
)

// DefaultScanWindow is the number of lines examined after a matched label
// when searching for its value.
const DefaultScanWindow = 10

// SelectFunc chooses one value among the numeric candidates collected from
// a scan window. Candidates are ordered by occurrence; the slice is never
// empty when the function is called.
type SelectFunc func(candidates []float64) float64

// SelectLargestMagnitude returns the candidate with the greatest absolute
// value, ties broken by first occurrence. Totals are typically printed as
// the largest-magnitude figure in a cluster of line items, so this is the
// default policy. It can mis-select when a larger unrelated number falls
// inside the window; callers needing different behavior supply their own
// SelectFunc.
func SelectLargestMagnitude(candidates []float64) float64 {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if math.Abs(c) > math.Abs(best) {
			best = c
		}
	}
	return best
}

// Locator searches a bounded forward window of report lines for the numeric
// value belonging to a previously matched label.
type Locator struct {
	// Window is the number of lines scanned forward. Zero or negative
	// falls back to DefaultScanWindow.
	Window int

	// Select picks one value among all parsed candidates. Nil falls back
	// to SelectLargestMagnitude.
	Select SelectFunc
}

// Locate scans up to Window lines beginning at start, parses every token
// containing a digit, and returns the selected value. ok is false when the
// window holds no parseable numeric token.
func (l *Locator) Locate(lines []string, start int) (float64, bool) {
	window := l.Window
	if window <= 0 {
		window = DefaultScanWindow
	}

	end := start + window
	if end > len(lines) {
		end = len(lines)
	}
	if start < 0 {
		start = 0
	}

	var candidates []float64
	for i := start; i < end; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		line = currencyGlyphs.ReplaceAllString(line, "")
		for _, token := range strings.Fields(line) {
			if !containsDigit(token) {
				continue
			}
			if value, ok := ParseAmount(token); ok {
				candidates = append(candidates, value)
			}
		}
	}

	if len(candidates) == 0 {
		return 0, false
	}

	selector := l.Select
	if selector == nil {
		selector = SelectLargestMagnitude
	}
	return selector(candidates), true
}
