package middlewares

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/rosetta/internal"
)

// DefaultCORSMaxAge is the preflight cache lifetime browsers are told to use.
const DefaultCORSMaxAge = 12 * time.Hour

// DefaultCORSConfig is the configuration CORS starts from: every origin may
// read, the common methods and headers are accepted, and preflight answers
// are cached for DefaultCORSMaxAge.
var DefaultCORSConfig = CORSConfig{
	AllowOrigins: []string{"*"},
	AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
	AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	MaxAge:       DefaultCORSMaxAge,
}

// CORSConfig controls cross-origin access to the app's routes. The
// canonical case here is the /i18n/ manifest and bundle routes, fetched
// from pages served by sibling language hosts.
type CORSConfig struct {
	// AllowOrigins lists the origins allowed to read responses. "*" admits
	// every origin and cannot be combined with credentials.
	AllowOrigins []string

	// AllowOriginFunc decides per origin. When set, AllowOrigins is not
	// consulted at all.
	AllowOriginFunc func(origin string) bool

	// AllowMethods is advertised in preflight answers.
	AllowMethods []string

	// AllowHeaders is advertised in preflight answers.
	AllowHeaders []string

	// ExposeHeaders names response headers scripts may read, such as
	// Content-Language.
	ExposeHeaders []string

	// AllowCredentials permits cookies on cross-origin requests. The
	// allowed origin is then echoed back, never "*".
	AllowCredentials bool

	// MaxAge bounds how long browsers may cache a preflight answer.
	MaxAge time.Duration
}

// CORSOption configures CORSConfig.
type CORSOption func(*CORSConfig)

// WithAllowOrigins replaces the allowed origin list.
func WithAllowOrigins(origins ...string) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowOrigins = origins
	}
}

// WithAllowOriginFunc installs a per-origin decision function. The static
// origin list is ignored while one is set.
func WithAllowOriginFunc(fn func(origin string) bool) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowOriginFunc = fn
	}
}

// WithAllowMethods replaces the methods advertised to preflights.
func WithAllowMethods(methods ...string) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowMethods = methods
	}
}

// WithAllowHeaders replaces the request headers advertised to preflights.
func WithAllowHeaders(headers ...string) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowHeaders = headers
	}
}

// WithExposeHeaders names response headers cross-origin scripts may read.
func WithExposeHeaders(headers ...string) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.ExposeHeaders = headers
	}
}

// WithAllowCredentials permits cookies on cross-origin requests. The
// allowed origin is echoed instead of "*" from then on.
func WithAllowCredentials() CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowCredentials = true
	}
}

// WithMaxAge sets the preflight cache lifetime.
func WithMaxAge(duration time.Duration) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.MaxAge = duration
	}
}

// CORS returns middleware that answers preflight requests and stamps
// cross-origin headers on responses. A translation origin needs it when
// sibling language hosts fetch the manifest and bundles under /i18n/ from
// the browser.
func CORS(opts ...CORSOption) internal.Middleware {
	cfg := DefaultCORSConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	p := newCORSPolicy(&cfg)

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			origin := c.Header("Origin")
			if origin == "" || !p.allows(origin) {
				// Same-origin traffic and rejected origins pass through
				// bare; withholding the headers is what blocks the read.
				return next(c)
			}

			h := c.Response().Header()
			h.Add("Vary", "Origin")
			h.Set("Access-Control-Allow-Origin", p.allowOriginValue(origin))
			if cfg.AllowCredentials {
				h.Set("Access-Control-Allow-Credentials", "true")
			}
			if p.exposeHeaders != "" {
				h.Set("Access-Control-Expose-Headers", p.exposeHeaders)
			}

			if c.Request().Method == http.MethodOptions {
				return p.answerPreflight(c, h)
			}
			return next(c)
		}
	}
}

// corsPolicy is the per-middleware precomputed state: joined header values
// and the origin decision, built once instead of per request.
type corsPolicy struct {
	cfg           *CORSConfig
	wildcard      bool
	allowMethods  string
	allowHeaders  string
	exposeHeaders string
	maxAge        string
}

func newCORSPolicy(cfg *CORSConfig) *corsPolicy {
	return &corsPolicy{
		cfg:           cfg,
		wildcard:      slices.Contains(cfg.AllowOrigins, "*"),
		allowMethods:  strings.Join(cfg.AllowMethods, ", "),
		allowHeaders:  strings.Join(cfg.AllowHeaders, ", "),
		exposeHeaders: strings.Join(cfg.ExposeHeaders, ", "),
		maxAge:        strconv.Itoa(int(cfg.MaxAge.Seconds())),
	}
}

func (p *corsPolicy) allows(origin string) bool {
	if p.cfg.AllowOriginFunc != nil {
		return p.cfg.AllowOriginFunc(origin)
	}
	return p.wildcard || slices.Contains(p.cfg.AllowOrigins, origin)
}

// allowOriginValue picks between echoing the origin and the wildcard.
// Credentials and explicit origin lists both require the echo form.
func (p *corsPolicy) allowOriginValue(origin string) string {
	if p.cfg.AllowCredentials || !p.wildcard {
		return origin
	}
	return "*"
}

// answerPreflight completes an OPTIONS request without reaching the
// handler chain.
func (p *corsPolicy) answerPreflight(c internal.Context, h http.Header) error {
	h.Add("Vary", "Access-Control-Request-Method")
	h.Add("Vary", "Access-Control-Request-Headers")
	h.Set("Access-Control-Allow-Methods", p.allowMethods)
	h.Set("Access-Control-Allow-Headers", p.allowHeaders)
	if p.cfg.MaxAge > 0 {
		h.Set("Access-Control-Max-Age", p.maxAge)
	}
	return c.NoContent(http.StatusNoContent)
}
