package i18n

import "strings"

// DefaultLang is the default language code used when the manifest does not
// specify one.
const DefaultLang = "ar"

// Direction is the text flow orientation of a language.
type Direction string

const (
	// DirectionLTR flows text left to right.
	DirectionLTR Direction = "ltr"
	// DirectionRTL flows text right to left.
	DirectionRTL Direction = "rtl"
)

// IsRTL reports whether the direction is right-to-left.
func (d Direction) IsRTL() bool {
	return d == DirectionRTL
}

// ParseDirection normalizes a direction string. Anything other than "rtl"
// (case-insensitive) is treated as left-to-right.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), string(DirectionRTL)) {
		return DirectionRTL
	}
	return DirectionLTR
}

// Language describes one supported language as published in the manifest.
// Immutable once loaded into a Registry.
type Language struct {
	// Code is the ISO-639-1-like identifier, unique within a registry.
	Code string `json:"code" yaml:"code"`

	// Name is the display name shown in the language switcher.
	Name string `json:"name" yaml:"name"`

	// Flag is the flag asset reference for the switcher entry.
	Flag string `json:"flag" yaml:"flag"`

	// Dir is the text direction applied when this language is active.
	Dir Direction `json:"dir" yaml:"dir"`
}

// IsRTL reports whether the language flows right-to-left.
func (l Language) IsRTL() bool {
	return l.Dir.IsRTL()
}

// FallbackLanguages returns the fixed two-entry list the registry falls back
// to when the manifest cannot be loaded. The returned slice is a fresh copy.
func FallbackLanguages() []Language {
	return []Language{
		{Code: "ar", Name: "العربية", Flag: "ar.svg", Dir: DirectionRTL},
		{Code: "en", Name: "English", Flag: "en.svg", Dir: DirectionLTR},
	}
}

// baseLanguage strips the region from a language tag (e.g., "en-US" → "en").
// Returns the input unchanged if there is no region.
func baseLanguage(lang string) string {
	if i := strings.IndexByte(lang, '-'); i > 0 {
		return lang[:i]
	}
	return lang
}

// normalizeCode lowercases and trims a language code. Returns "" when the
// result does not look like a language tag (letters with an optional
// dash-separated region).
func normalizeCode(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" || len(code) > maxLanguageCodeLength {
		return ""
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' {
			return ""
		}
	}
	return code
}

// maxLanguageCodeLength caps stored language codes; longest registered
// primary subtags plus region fit well within it.
const maxLanguageCodeLength = 35
