package internal

import (
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/rosetta/pkg/logger"
	"github.com/dmitrymomot/rosetta/pkg/prefs"
)

// Option configures the application.
type Option func(*App)

// WithMiddleware adds global middleware, applied in the order given.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithHandlers registers handlers; each handler's Routes method runs
// during setup.
func WithHandlers(h ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, h...)
	}
}

// WithStaticFiles mounts a static file handler at the given pattern.
// Directory listings are blocked. Responses carry cache headers suitable
// for assets that change with deployments, such as flag icons and CSS.
//
// Example:
//
//	//go:embed public
//	var assets embed.FS
//
//	rosetta.New(
//	    rosetta.WithStaticFiles("/assets/", assets, "public"),
//	)
func WithStaticFiles(pattern string, fsys fs.FS, subDir string) Option {
	return func(a *App) {
		a.staticRoutes = append(a.staticRoutes, staticRoute{staticHandler(pattern, fsys, subDir), pattern})
	}
}

// staticHandler serves subDir of fsys with asset cache headers and no
// directory listings. chi's Mount leaves the URL path intact, so the mount
// prefix is stripped before the file server sees it.
func staticHandler(pattern string, fsys fs.FS, subDir string) http.Handler {
	subFS, err := fs.Sub(fsys, subDir)
	if err != nil {
		panic(err)
	}
	files := http.FileServerFS(subFS)

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		files.ServeHTTP(w, r)
	})
	return http.StripPrefix(strings.TrimSuffix(pattern, "/"), h)
}

// WithErrorHandler sets the handler invoked when a route handler returns
// a non-nil error.
//
// Example:
//
//	rosetta.WithErrorHandler(func(c rosetta.Context, err error) error {
//	    if he := rosetta.AsHTTPError(err); he != nil {
//	        return c.String(he.Code, c.T("errors."+he.ErrorCode))
//	    }
//	    return c.String(http.StatusInternalServerError, c.T("errors.internal"))
//	})
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		a.errorHandler = h
	}
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.notFoundHandler = h
	}
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.methodNotAllowedHandler = h
	}
}

// WithHealthChecks enables the health endpoints.
// Liveness answers OK while the process runs; readiness runs the
// configured probes.
//
// Example:
//
//	rosetta.WithHealthChecks(
//	    rosetta.WithReadinessCheck("i18n_origin", originCheck),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return func(a *App) {
		cfg := &healthConfig{
			livenessPath:  defaultLivenessPath,
			readinessPath: defaultReadinessPath,
		}
		for _, opt := range opts {
			opt(cfg)
		}
		a.healthConfig = cfg
	}
}

// WithLogger builds the application logger with a component tag and
// optional context extractors, so request-scoped values like the request
// ID appear on every line.
//
// Example:
//
//	rosetta.New(
//	    rosetta.WithLogger("web", middlewares.RequestIDExtractor()),
//	)
func WithLogger(component string, extractors ...logger.ContextExtractor) Option {
	return func(a *App) {
		a.logger = logger.New(logger.WithContextExtractors(extractors...)).
			With(logger.Component(component))
	}
}

// WithCustomLogger sets a fully custom logger.
//
// Example:
//
//	rosetta.New(
//	    rosetta.WithCustomLogger(logger.NewWithSentry(cfg)),
//	)
func WithCustomLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l == nil {
			return
		}
		a.logger = l
	}
}

// WithBaseDomain sets the base domain for Subdomain extraction, enabling
// language-per-host deployments where ar.example.com selects Arabic.
func WithBaseDomain(domain string) Option {
	return func(a *App) {
		a.baseDomain = domain
	}
}

// WithPreferences configures the language preference cookie.
//
// Example:
//
//	rosetta.New(
//	    rosetta.WithPreferences(
//	        prefs.WithName("site_lang"),
//	        prefs.WithSecure(true),
//	    ),
//	)
func WithPreferences(opts ...prefs.CookieOption) Option {
	return func(a *App) {
		a.prefsOpts = append(a.prefsOpts, opts...)
	}
}
