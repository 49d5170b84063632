package internal

// ExtractorSource pulls one candidate value out of the request.
// Returns the value and true when present, or ("", false) on a miss.
type ExtractorSource = func(Context) (string, bool)

// Extractor tries multiple sources in order. The locale middleware builds
// its language resolution chain from these; anything else that resolves a
// value from several request locations can reuse it.
type Extractor struct {
	sources []ExtractorSource
}

// NewExtractor creates an Extractor that consults sources in the given order.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return Extractor{sources: sources}
}

// Extract returns the first non-empty value any source yields.
// Returns ("", false) if every source misses.
func (e Extractor) Extract(c Context) (string, bool) {
	for _, src := range e.sources {
		v, ok := src(c)
		if ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// ExtractAll collects every non-empty value in source order, dropping
// duplicates. Use this when a later stage decides which candidate wins,
// such as the language manager validating candidates against its registry.
func (e Extractor) ExtractAll(c Context) []string {
	var out []string
	seen := make(map[string]struct{}, len(e.sources))
	for _, src := range e.sources {
		v, ok := src(c)
		if !ok || v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// lookupSource adapts a plain getter into an ExtractorSource, treating an
// empty string as a miss.
func lookupSource(get func(Context) string) ExtractorSource {
	return func(c Context) (string, bool) {
		v := get(c)
		return v, v != ""
	}
}

// FromHeader reads a request header.
func FromHeader(name string) ExtractorSource {
	return lookupSource(func(c Context) string { return c.Header(name) })
}

// FromQuery reads a query parameter.
func FromQuery(name string) ExtractorSource {
	return lookupSource(func(c Context) string { return c.Query(name) })
}

// FromCookie reads a plain cookie.
func FromCookie(name string) ExtractorSource {
	return lookupSource(func(c Context) string {
		v, err := c.Cookie(name)
		if err != nil {
			return ""
		}
		return v
	})
}

// FromParam reads a URL route parameter.
func FromParam(name string) ExtractorSource {
	return lookupSource(func(c Context) string { return c.Param(name) })
}

// FromForm reads a form field.
func FromForm(name string) ExtractorSource {
	return lookupSource(func(c Context) string { return c.Form(name) })
}
