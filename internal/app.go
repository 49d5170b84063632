package internal

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/rosetta/pkg/health"
	"github.com/dmitrymomot/rosetta/pkg/logger"
	"github.com/dmitrymomot/rosetta/pkg/prefs"
)

// Server limits, fixed rather than configurable.
const (
	defaultReadHeaderTimeout = 5 * time.Second
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultShutdownTimeout   = 30 * time.Second
	defaultMaxHeaderBytes    = 1 << 20 // 1MB
)

// App wires routing, middleware, preference cookies, and graceful
// shutdown around a set of handlers. App is immutable after New.
type App struct {
	router                  chi.Router
	errorHandler            ErrorHandler
	notFoundHandler         HandlerFunc
	methodNotAllowedHandler HandlerFunc
	healthConfig            *healthConfig
	logger                  *slog.Logger
	prefs                   *prefs.Cookie
	baseDomain              string
	middlewares             []Middleware
	handlers                []Handler
	staticRoutes            []staticRoute
	prefsOpts               []prefs.CookieOption
}

// staticRoute pairs a mount pattern with its file handler.
type staticRoute struct {
	handler http.Handler
	pattern string
}

// New creates an application from the given options.
//
// Example:
//
//	app := rosetta.New(
//	    rosetta.WithMiddleware(middlewares.Locale(registry, loader)),
//	    rosetta.WithHandlers(handlers.NewPages(bnd)),
//	)
func New(opts ...Option) *App {
	a := &App{
		router: chi.NewRouter(),
		logger: logger.NewNope(),
	}

	for _, opt := range opts {
		opt(a)
	}

	// Built after the options so the store logs through the configured
	// application logger.
	a.prefs = prefs.NewCookie(append([]prefs.CookieOption{prefs.WithLogger(a.logger)}, a.prefsOpts...)...)

	a.setupRoutes()
	return a
}

// Router exposes the underlying chi.Router for host-based composition.
func (a *App) Router() chi.Router {
	return a.router
}

// ServeHTTP makes the App an http.Handler, so it drops into httptest
// servers and custom runtimes without Run.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Run starts a single-domain HTTP server and blocks until shutdown.
//
// Example:
//
//	err := app.Run(":8080", rosetta.Logger(log))
func (a *App) Run(addr string, opts ...RunOption) error {
	return runServer(a.router, addr, buildRunConfig(opts...))
}

// setupRoutes assembles the router from the configured pieces.
func (a *App) setupRoutes() {
	if a.notFoundHandler != nil {
		a.router.NotFound(a.wrapHandler(a.notFoundHandler))
	}
	if a.methodNotAllowedHandler != nil {
		a.router.MethodNotAllowed(a.wrapHandler(a.methodNotAllowedHandler))
	}

	for _, mw := range a.middlewares {
		a.router.Use(a.adaptMiddleware(mw))
	}

	for _, sr := range a.staticRoutes {
		a.router.Mount(sr.pattern, sr.handler)
	}

	if a.healthConfig != nil {
		a.router.Get(a.healthConfig.livenessPath, health.LivenessHandler())
		a.router.Get(a.healthConfig.readinessPath,
			health.ReadinessHandler(a.healthConfig.checks, health.WithLogger(a.logger)))
	}

	r := &routerAdapter{router: a.router, app: a}
	for _, h := range a.handlers {
		h.Routes(r)
	}
}

// wrapHandler converts a HandlerFunc to http.HandlerFunc with error
// handling attached.
func (a *App) wrapHandler(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := newContext(w, r, a)
		if err := h(c); err != nil {
			a.handleError(c, err)
		}
	}
}

// handleError routes handler errors through the configured error handler.
func (a *App) handleError(c Context, err error) {
	if c.Written() {
		return
	}
	if a.errorHandler != nil {
		_ = a.errorHandler(c, err)
		return
	}
	if he := AsHTTPError(err); he != nil {
		http.Error(c.Response(), he.Message, he.Code)
		return
	}
	http.Error(c.Response(), "Internal Server Error", http.StatusInternalServerError)
}

// healthConfig collects the probe endpoints and their checks.
type healthConfig struct {
	checks        health.Checks
	livenessPath  string
	readinessPath string
}

// Probe endpoint defaults.
const (
	defaultLivenessPath  = "/health/live"
	defaultReadinessPath = "/health/ready"
)

// HealthOption configures the health endpoints.
type HealthOption func(*healthConfig)

// WithLivenessPath moves the liveness endpoint off "/health/live".
func WithLivenessPath(path string) HealthOption {
	return func(c *healthConfig) {
		if path != "" {
			c.livenessPath = path
		}
	}
}

// WithReadinessPath moves the readiness endpoint off "/health/ready".
func WithReadinessPath(path string) HealthOption {
	return func(c *healthConfig) {
		if path != "" {
			c.readinessPath = path
		}
	}
}

// WithReadinessCheck adds a named readiness probe. Probes run in
// parallel on every readiness request.
//
// Example:
//
//	rosetta.WithReadinessCheck("i18n_origin", func(ctx context.Context) error {
//	    _, err := src.Manifest(ctx)
//	    return err
//	})
func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return func(c *healthConfig) {
		if c.checks == nil {
			c.checks = health.Checks{}
		}
		c.checks[name] = fn
	}
}
