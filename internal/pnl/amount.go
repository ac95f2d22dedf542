package pnl

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	currencyGlyphs = regexp.MustCompile(`[\$€¥£]`)

	// European convention: period as thousands separator, comma as decimal,
	// e.g. "1.234,56". US-formatted tokens like "846,432.15" must not match.
	europeanNumber = regexp.MustCompile(`^-?\d{1,3}(?:\.\d{3})+,\d+$`)
)

// ParseAmount converts a textual numeric token into a float, resolving the
// thousands/decimal separator convention and stripping currency glyphs.
// It is a total function over strings: malformed input yields ok=false,
// never a panic or error.
func ParseAmount(token string) (float64, bool) {
	cleaned := currencyGlyphs.ReplaceAllString(strings.TrimSpace(token), "")

	if europeanNumber.MatchString(cleaned) {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	} else {
		// US convention: comma is a thousands separator.
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// containsDigit reports whether a token holds at least one ASCII digit.
// Tokens without digits never yield a value and are skipped before parsing.
func containsDigit(token string) bool {
	return strings.ContainsAny(token, "0123456789")
}
