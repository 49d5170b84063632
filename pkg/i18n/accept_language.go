package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength bounds header parsing; anything past it is noise
// or abuse.
const maxAcceptLanguageLength = 4096

// languageTag is one parsed Accept-Language entry.
type languageTag struct {
	tag     string
	quality float64
}

// MatchAcceptLanguage parses an Accept-Language header and returns the
// available language best matching the visitor's preferences. It supports
// quality values (q=0.9) and partial matching on the primary subtag
// ("en-US" matches an available "en"). When nothing matches, ok is false:
// an unsupported browser language is ignored, not substituted.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
// Available: ["ar", "en", "fr"]
// Returns: "en", true
func MatchAcceptLanguage(header string, available []string) (string, bool) {
	if len(available) == 0 || header == "" {
		return "", false
	}

	tags := parseLanguageTags(header)

	best, bestQ, bestExact := "", -1.0, false
	for _, code := range available {
		norm := normalizeLanguageTag(code)
		for _, cand := range tags {
			if cand.tag == norm {
				if cand.quality > bestQ || (cand.quality == bestQ && !bestExact) {
					best, bestQ, bestExact = code, cand.quality, true
				}
				break
			}
			if matchesLanguage(cand.tag, code) {
				if !bestExact || cand.quality > bestQ {
					best, bestQ, bestExact = code, cand.quality, false
				}
				break
			}
		}
	}
	return best, best != ""
}

// parseLanguageTags splits the header into tags ordered by quality, highest
// first. Wildcards and malformed entries are dropped; ties keep the header's
// own order, which is the client's preference order.
func parseLanguageTags(header string) []languageTag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []languageTag
	for part := range strings.SplitSeq(header, ",") {
		lang, params, hasParams := strings.Cut(part, ";")
		lang = normalizeLanguageTag(lang)
		if lang == "" || lang == "*" {
			continue
		}

		quality := 1.0
		if hasParams {
			quality = parseQuality(params)
		}
		tags = append(tags, languageTag{tag: lang, quality: quality})
	}

	slices.SortStableFunc(tags, func(a, b languageTag) int {
		return cmp.Compare(b.quality, a.quality)
	})
	return tags
}

// parseQuality reads a ";q=0.8" parameter. Anything unparsable or outside
// the 0..1 range counts as full preference.
func parseQuality(params string) float64 {
	raw, ok := strings.CutPrefix(strings.TrimSpace(params), "q=")
	if !ok {
		return 1
	}
	q, err := strconv.ParseFloat(raw, 64)
	if err != nil || q < 0 || q > 1 {
		return 1
	}
	return q
}

// normalizeLanguageTag normalizes a language tag to lowercase.
func normalizeLanguageTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// matchesLanguage reports whether two tags share a primary subtag, so "en"
// pairs with "en-us" in either direction.
func matchesLanguage(requested, available string) bool {
	requested = normalizeLanguageTag(requested)
	available = normalizeLanguageTag(available)

	if requested == available {
		return true
	}
	return baseLanguage(requested) == baseLanguage(available)
}
