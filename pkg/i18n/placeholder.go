package i18n

import (
	"fmt"
	"maps"
	"strings"
)

// M carries values for {{name}} placeholders in translation strings.
type M map[string]any

// ReplacePlaceholders substitutes every {{name}} in template with the
// matching value from placeholders, rendered through fmt. Names without an
// entry stay as written, which keeps a missing value visible on the page
// instead of silently disappearing.
//
//	ReplacePlaceholders("مرحبا {{name}}", M{"name": "Omar"}) // "مرحبا Omar"
func ReplacePlaceholders(template string, placeholders M) string {
	out := template
	for name, value := range placeholders {
		out = strings.ReplaceAll(out, "{{"+name+"}}", fmt.Sprint(value))
	}
	return out
}

// replaceMergedPlaceholders folds the variadic maps left to right, later maps
// winning, before substituting.
func replaceMergedPlaceholders(template string, vars ...M) string {
	switch len(vars) {
	case 0:
		return template
	case 1:
		return ReplacePlaceholders(template, vars[0])
	}
	merged := maps.Clone(vars[0])
	for _, v := range vars[1:] {
		maps.Copy(merged, v)
	}
	return ReplacePlaceholders(template, merged)
}
