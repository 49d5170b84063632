package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rosetta/pkg/i18n"
)

func TestMatchAcceptLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		available []string
		expected  string
		ok        bool
	}{
		{
			name:      "empty header matches nothing",
			header:    "",
			available: []string{"ar", "en", "fr"},
			expected:  "",
			ok:        false,
		},
		{
			name:      "empty available matches nothing",
			header:    "en-US,en;q=0.9",
			available: []string{},
			expected:  "",
			ok:        false,
		},
		{
			name:      "exact match",
			header:    "fr",
			available: []string{"ar", "en", "fr"},
			expected:  "fr",
			ok:        true,
		},
		{
			name:      "quality values decide between matches",
			header:    "fr;q=0.5,ar;q=0.9,en;q=0.8",
			available: []string{"ar", "en", "fr"},
			expected:  "ar",
			ok:        true,
		},
		{
			name:      "regional variant matches base language",
			header:    "en-US",
			available: []string{"ar", "en"},
			expected:  "en",
			ok:        true,
		},
		{
			name:      "base language matches regional variant",
			header:    "en",
			available: []string{"en-US", "ar"},
			expected:  "en-US",
			ok:        true,
		},
		{
			name:      "arabic regional chain",
			header:    "ar-SA,ar;q=0.9,en;q=0.8",
			available: []string{"ar", "en", "fr"},
			expected:  "ar",
			ok:        true,
		},
		{
			name:      "unsupported languages are ignored not substituted",
			header:    "pl,uk,cs",
			available: []string{"ar", "en", "fr"},
			expected:  "",
			ok:        false,
		},
		{
			name:      "unsupported first choice falls through to supported one",
			header:    "pl,en-US;q=0.9,en;q=0.8",
			available: []string{"ar", "en"},
			expected:  "en",
			ok:        true,
		},
		{
			name:      "case insensitive matching",
			header:    "EN-us,AR;q=0.9",
			available: []string{"ar", "en"},
			expected:  "en",
			ok:        true,
		},
		{
			name:      "whitespace tolerated",
			header:    " en , ar ; q=0.9 , fr ; q=0.8 ",
			available: []string{"fr", "ar"},
			expected:  "ar",
			ok:        true,
		},
		{
			name:      "invalid quality value defaults to full weight",
			header:    "en;q=broken,ar;q=0.5",
			available: []string{"en", "ar"},
			expected:  "en",
			ok:        true,
		},
		{
			name:      "quality outside range defaults to full weight",
			header:    "en;q=2.5,ar;q=-0.5,fr;q=0.5",
			available: []string{"en", "ar", "fr"},
			expected:  "en",
			ok:        true,
		},
		{
			name:      "wildcard is ignored",
			header:    "*,en;q=0.5",
			available: []string{"en", "ar"},
			expected:  "en",
			ok:        true,
		},
		{
			name:      "wildcard alone matches nothing",
			header:    "*",
			available: []string{"ar", "en"},
			expected:  "",
			ok:        false,
		},
		{
			name:      "available order breaks quality ties",
			header:    "en,ar",
			available: []string{"ar", "en"},
			expected:  "ar",
			ok:        true,
		},
		{
			name:      "exact match preferred over partial at same quality",
			header:    "en-US,en;q=0.9",
			available: []string{"en", "en-US"},
			expected:  "en-US",
			ok:        true,
		},
		{
			name:      "oversized header truncated safely",
			header:    strings.Repeat("en,", 2000) + "ar",
			available: []string{"en", "ar", "fr"},
			expected:  "en",
			ok:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result, ok := i18n.MatchAcceptLanguage(tt.header, tt.available)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.expected, result)
		})
	}
}
