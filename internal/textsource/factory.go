package textsource

import "fmt"

// Factory creates text sources with a unified selection policy
type Factory struct {
	preferred SourceType
}

// NewFactory creates a factory preferring automatic source selection
func NewFactory() *Factory {
	return &Factory{
		preferred: SourceAuto,
	}
}

// NewFactoryWithPreference creates a factory with a fixed preferred source
func NewFactoryWithPreference(preferred SourceType) *Factory {
	return &Factory{
		preferred: preferred,
	}
}

// Create instantiates a text source of the specified type
func (f *Factory) Create(sourceType SourceType) (TextSource, error) {
	switch sourceType {
	case SourceLedongthuc:
		return NewLedongthucSource(), nil
	case SourcePdftotext:
		return NewPdftotextSource(), nil
	case SourceAuto:
		return f.CreateAuto(), nil
	default:
		return nil, &SourceError{
			Source: sourceType,
			Op:     "create",
			Err:    fmt.Errorf("unknown source type: %s", sourceType),
		}
	}
}

// CreateAuto picks the best source available on this host: pdftotext when
// the binary is installed, otherwise the compiled-in library source.
func (f *Factory) CreateAuto() TextSource {
	if f.preferred != SourceAuto && f.preferred != "" {
		if src, err := f.Create(f.preferred); err == nil && src.Available() {
			return src
		}
	}

	pdftotext := NewPdftotextSource()
	if pdftotext.Available() {
		return pdftotext
	}
	return NewLedongthucSource()
}

// ParseSourceType converts a configuration string into a SourceType
func ParseSourceType(s string) (SourceType, error) {
	switch SourceType(s) {
	case SourceLedongthuc, SourcePdftotext, SourceAuto:
		return SourceType(s), nil
	case "":
		return SourceAuto, nil
	default:
		return "", fmt.Errorf("unknown text source: %q (must be one of: auto, ledongthuc, pdftotext)", s)
	}
}

// SupportedSources returns every selectable source type
func SupportedSources() []SourceType {
	return []SourceType{
		SourceLedongthuc,
		SourcePdftotext,
		SourceAuto,
	}
}
