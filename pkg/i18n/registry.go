package i18n

import (
	"context"
	"log/slog"
	"sync"
)

// Registry holds the list of languages the UI offers, independent of whether
// any bundle is currently loaded. It is constructed usable: before Load, and
// after any failed Load, it serves the fallback set, so callers never see an
// empty or broken registry.
type Registry struct {
	src ManifestSource
	log *slog.Logger

	fallbackLangs   []Language
	fallbackDefault string

	mu          sync.RWMutex
	languages   []Language
	byCode      map[string]Language
	defaultLang string
}

// RegistryOption configures a Registry during construction.
type RegistryOption func(*Registry) error

// NewRegistry creates a registry backed by src. A nil src is allowed and
// yields a registry that always serves the fallback set.
func NewRegistry(src ManifestSource, opts ...RegistryOption) (*Registry, error) {
	r := &Registry{
		src:             src,
		log:             slog.New(slog.DiscardHandler),
		fallbackLangs:   FallbackLanguages(),
		fallbackDefault: DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	r.install(r.fallbackLangs, r.fallbackDefault)

	return r, nil
}

// WithRegistryLogger sets the logger for recovered manifest failures.
func WithRegistryLogger(log *slog.Logger) RegistryOption {
	return func(r *Registry) error {
		if log != nil {
			r.log = log
		}
		return nil
	}
}

// WithDefaultLanguage sets the default language used when the manifest does
// not name one, and the default of the fallback set.
func WithDefaultLanguage(code string) RegistryOption {
	return func(r *Registry) error {
		code = normalizeCode(code)
		if code == "" {
			return ErrEmptyLanguage
		}
		r.fallbackDefault = code
		return nil
	}
}

// WithFallbackLanguages replaces the fixed set served when the manifest is
// unavailable.
func WithFallbackLanguages(langs ...Language) RegistryOption {
	return func(r *Registry) error {
		if len(langs) == 0 {
			return ErrEmptyManifest
		}
		r.fallbackLangs = langs
		return nil
	}
}

// Load fetches the manifest and installs its languages. On any failure the
// current set stays in place (the fallback set, or the last good manifest on
// a reload) and the failure is logged, never returned: the registry always
// leaves callers with at least one usable language.
func (r *Registry) Load(ctx context.Context) {
	if r.src == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	m, err := r.src.Manifest(ctx)
	if err != nil {
		r.log.WarnContext(ctx, "language manifest unavailable, keeping current set",
			slog.Any("error", err),
			slog.Int("languages", len(r.Languages())),
		)
		return
	}

	langs := make([]Language, 0, len(m.Languages))
	seen := make(map[string]bool, len(m.Languages))
	for _, l := range m.Languages {
		code := normalizeCode(l.Code)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		l.Code = code
		l.Dir = ParseDirection(string(l.Dir))
		langs = append(langs, l)
	}

	if len(langs) == 0 {
		r.log.WarnContext(ctx, "language manifest has no usable entries, keeping current set")
		return
	}

	def := normalizeCode(m.DefaultLang)
	if def == "" || !seen[def] {
		def = r.fallbackDefault
	}

	r.install(langs, def)
}

// install swaps the served language set. def falls back to the first entry
// when it is not part of the set.
func (r *Registry) install(langs []Language, def string) {
	byCode := make(map[string]Language, len(langs))
	list := make([]Language, 0, len(langs))
	for _, l := range langs {
		code := normalizeCode(l.Code)
		if code == "" {
			continue
		}
		if _, dup := byCode[code]; dup {
			continue
		}
		l.Code = code
		byCode[code] = l
		list = append(list, l)
	}

	if _, ok := byCode[def]; !ok && len(list) > 0 {
		def = list[0].Code
	}

	r.mu.Lock()
	r.languages = list
	r.byCode = byCode
	r.defaultLang = def
	r.mu.Unlock()
}

// Languages returns the supported languages in manifest order. The returned
// slice is a copy.
func (r *Registry) Languages() []Language {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Language, len(r.languages))
	copy(out, r.languages)
	return out
}

// Codes returns the supported language codes in manifest order.
func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.languages))
	for i, l := range r.languages {
		out[i] = l.Code
	}
	return out
}

// Default returns the descriptor of the default language.
func (r *Registry) Default() Language {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if l, ok := r.byCode[r.defaultLang]; ok {
		return l
	}
	if len(r.languages) > 0 {
		return r.languages[0]
	}
	return Language{}
}

// Get returns the descriptor for code, matching the exact code first and the
// primary subtag second ("en-US" finds "en").
func (r *Registry) Get(code string) (Language, bool) {
	code = normalizeCode(code)
	if code == "" {
		return Language{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if l, ok := r.byCode[code]; ok {
		return l, true
	}
	if base := baseLanguage(code); base != code {
		if l, ok := r.byCode[base]; ok {
			return l, true
		}
	}
	return Language{}, false
}

// Supported reports whether code (or its primary subtag) is in the registry.
func (r *Registry) Supported(code string) bool {
	_, ok := r.Get(code)
	return ok
}
