package i18n

import "strings"

// metaKey is the reserved top-level entry carrying bundle metadata.
const metaKey = "meta"

// Meta describes the bundle's own language and direction as declared by the
// document itself.
type Meta struct {
	Lang string
	Dir  Direction
}

// Bundle is the full translation document for one language: an arbitrarily
// nested mapping from string keys to strings, lists, or nested mappings.
// A bundle is immutable after construction and replaced wholesale on
// language change, never patched.
type Bundle struct {
	values map[string]any
	meta   Meta
}

// NewBundle wraps a decoded translation document. The reserved "meta" entry
// is parsed into Meta when present; its absence leaves Meta zero-valued and
// the caller decides the direction fallback.
func NewBundle(values map[string]any) *Bundle {
	b := &Bundle{values: values}
	if values == nil {
		b.values = map[string]any{}
	}

	if raw, ok := b.values[metaKey]; ok {
		if m, ok := raw.(map[string]any); ok {
			if lang, ok := m["lang"].(string); ok {
				b.meta.Lang = lang
			}
			if dir, ok := m["dir"].(string); ok {
				b.meta.Dir = ParseDirection(dir)
			}
		}
	}

	return b
}

// Meta returns the bundle's declared metadata. The zero value means the
// document carried no usable meta entry.
func (b *Bundle) Meta() Meta {
	return b.meta
}

// Len returns the number of top-level entries, the meta entry included.
func (b *Bundle) Len() int {
	return len(b.values)
}

// Lookup resolves a dot-separated key path over the nested document
// (e.g. "programs.data.x.title"). The second return value reports whether
// the full path resolved. The resolved value is a string for leaf keys, or
// the nested mapping/list itself when the path stops on a container.
func (b *Bundle) Lookup(key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	var current any = b.values
	for part := range strings.SplitSeq(key, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// String resolves a key path to a string leaf. Non-string leaves report
// false so callers can apply their missing-key policy.
func (b *Bundle) String(key string) (string, bool) {
	v, ok := b.Lookup(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Strings resolves a key path to a list leaf and returns its string items.
// Non-string items are skipped. Returns nil when the path does not resolve
// to a list.
func (b *Bundle) Strings(key string) []string {
	v, ok := b.Lookup(key)
	if !ok {
		return nil
	}

	items, ok := v.([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
