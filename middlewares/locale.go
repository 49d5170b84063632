package middlewares

import (
	"strings"

	"github.com/dmitrymomot/rosetta/internal"
	"github.com/dmitrymomot/rosetta/pkg/i18n"
	"github.com/dmitrymomot/rosetta/pkg/logger"
)

// LocaleConfig configures the Locale middleware.
type LocaleConfig struct {
	Extractor      internal.Extractor
	ManagerOptions []i18n.Option
	extractorSet   bool
}

// LocaleOption configures LocaleConfig.
type LocaleOption func(*LocaleConfig)

// WithLocaleExtractor replaces the default candidate chain.
//
// Example, language-per-host deployment:
//
//	middlewares.Locale(registry, loader,
//	    middlewares.WithLocaleExtractor(rosetta.NewExtractor(
//	        middlewares.FromSubdomain(),
//	        rosetta.FromQuery("lang"),
//	        middlewares.FromAcceptLanguage(registry),
//	    )),
//	)
func WithLocaleExtractor(ext internal.Extractor) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Extractor = ext
		cfg.extractorSet = true
	}
}

// WithManagerOptions appends options to every per-request manager, such as
// i18n.WithMissingKeyHandler for collecting untranslated keys.
func WithManagerOptions(opts ...i18n.Option) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.ManagerOptions = append(cfg.ManagerOptions, opts...)
	}
}

// FromAcceptLanguage returns an ExtractorSource that parses the
// Accept-Language header with q-values and yields the best match among the
// registry's current languages.
func FromAcceptLanguage(registry *i18n.Registry) internal.ExtractorSource {
	return func(c internal.Context) (string, bool) {
		header := c.Header("Accept-Language")
		if header == "" {
			return "", false
		}
		return i18n.MatchAcceptLanguage(header, registry.Codes())
	}
}

// FromSubdomain returns an ExtractorSource that reads the leftmost host
// label, so ar.example.com yields "ar". Requires WithBaseDomain on the app.
func FromSubdomain() internal.ExtractorSource {
	return func(c internal.Context) (string, bool) {
		sub := c.Subdomain()
		if sub == "" {
			return "", false
		}
		if i := strings.IndexByte(sub, '.'); i > 0 {
			sub = sub[:i]
		}
		return sub, true
	}
}

// Locale returns middleware that resolves the request's language and stores
// a ready translation manager in the context, where the Context locale
// surface (T, Lang, Dir, IsRTL) and the binder pick it up.
//
// Resolution order: the visitor's saved preference always wins (the manager
// consults the preference binding first), then the extractor chain supplies
// detection candidates, by default the lang query parameter followed by
// Accept-Language. Every candidate is passed along, so an unsupported query
// value falls through to a supported header match instead of losing the
// request to the default language.
//
// The response's Content-Language is stamped at first write with whatever
// language the request ended on, which stays correct when a handler
// switches language mid-request.
//
// A failed Init is logged and the request continues: lookups then fall back
// to the key itself, which keeps pages serving while the origin is down.
func Locale(registry *i18n.Registry, loader i18n.Loader, opts ...LocaleOption) internal.Middleware {
	cfg := &LocaleConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.extractorSet {
		cfg.Extractor = internal.NewExtractor(
			internal.FromQuery("lang"),
			FromAcceptLanguage(registry),
		)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			mopts := append([]i18n.Option{
				i18n.WithPreferences(c.Preferences()),
				i18n.WithLogger(c.Logger()),
			}, cfg.ManagerOptions...)

			m, err := i18n.New(registry, loader, mopts...)
			if err != nil {
				return err
			}

			candidates := cfg.Extractor.ExtractAll(c)
			if err := m.Init(c, candidates...); err != nil {
				c.LogError("language init failed", logger.Error(err))
			}

			c.Set(internal.ManagerKey{}, m)

			rw := c.ResponseWriter()
			rw.OnBeforeWrite(func() {
				if lang := m.Lang(); lang != "" {
					rw.Header().Set("Content-Language", lang)
				}
			})

			c.LogDebug("language resolved",
				logger.Lang(m.Lang()),
				logger.Dir(m.Dir()),
			)

			return next(c)
		}
	}
}

// GetManager extracts the translation manager from the context.
// Returns nil if the Locale middleware is not used.
func GetManager(c internal.Context) *i18n.Manager {
	if v, ok := c.Get(internal.ManagerKey{}).(*i18n.Manager); ok {
		return v
	}
	return nil
}

// GetLanguage extracts the resolved language from the context.
// Returns an empty string if the Locale middleware is not used.
func GetLanguage(c internal.Context) string {
	if m := GetManager(c); m != nil {
		return m.Lang()
	}
	return ""
}
