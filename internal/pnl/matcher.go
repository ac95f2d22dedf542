package pnl

import (
	"regexp"
	"strings"
)

// leading punctuation tolerated before a label, e.g. "- Net Income" or
// "• Total de gastos".
const labelLeadCutset = " \t-–—•·*:"

// Matcher tests report lines against the label phrases of a catalog.
type Matcher struct {
	catalog Catalog

	// inline patterns match a phrase followed eventually by a numeric
	// literal on the same line, one compiled pattern per metric.
	inline map[MetricKey]*regexp.Regexp
}

// NewMatcher builds a matcher for the given catalog. A nil catalog falls
// back to DefaultCatalog.
func NewMatcher(catalog Catalog) *Matcher {
	if catalog == nil {
		catalog = DefaultCatalog()
	}

	m := &Matcher{
		catalog: catalog,
		inline:  make(map[MetricKey]*regexp.Regexp, len(catalog)),
	}
	for key := range catalog {
		if re := compileInlinePattern(catalog, key); re != nil {
			m.inline[key] = re
		}
	}
	return m
}

// Matches reports whether the line identifies the given metric: either the
// trimmed line starts with one of the metric's phrases, or a phrase appears
// anywhere on the line followed by a numeric literal.
func (m *Matcher) Matches(line string, key MetricKey) bool {
	trimmed := strings.TrimLeft(strings.TrimSpace(line), labelLeadCutset)
	lowered := strings.ToLower(trimmed)

	for _, phrase := range m.catalog.Phrases(key) {
		if strings.HasPrefix(lowered, phrase) {
			return true
		}
	}

	if re, ok := m.inline[key]; ok && re.MatchString(line) {
		return true
	}
	return false
}

// compileInlinePattern builds the label-then-number pattern for a metric:
// any accepted phrase, optional currency glyph, then a signed numeric
// literal with embedded separators. The literal is the first capture group.
func compileInlinePattern(catalog Catalog, key MetricKey) *regexp.Regexp {
	phrases := catalog.Phrases(key)
	if len(phrases) == 0 {
		return nil
	}

	quoted := make([]string, len(phrases))
	for i, p := range phrases {
		quoted[i] = regexp.QuoteMeta(p)
	}

	pattern := `(?i)(?:` + strings.Join(quoted, "|") + `)\s*[:]?\s*[\$€¥£]?\s*(-?[0-9][0-9.,]*)`
	re, err := regexp.Compile(pattern)
	if err != nil {
		// Phrases are quoted, so this only fires on an empty alternation.
		return nil
	}
	return re
}
