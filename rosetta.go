package rosetta

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/rosetta/internal"
	"github.com/dmitrymomot/rosetta/pkg/health"
	"github.com/dmitrymomot/rosetta/pkg/hostrouter"
	"github.com/dmitrymomot/rosetta/pkg/i18n"
	"github.com/dmitrymomot/rosetta/pkg/logger"
	"github.com/dmitrymomot/rosetta/pkg/prefs"
)

// Aliases re-exported from internal packages so applications only ever
// import rosetta itself.
type (
	// App is an immutable HTTP application: routes, middleware, and
	// lifecycle bundled into one value.
	App = internal.App

	// Router registers routes inside a Handler's Routes method.
	Router = internal.Router

	// Context is the per-request surface handlers work against. Beyond
	// request and response access it carries the resolved language:
	// c.T translates keys, c.Lang and c.Dir report what was resolved.
	Context = internal.Context

	// Handler groups related routes behind a single Routes method.
	Handler = internal.Handler

	// HandlerFunc handles one route.
	HandlerFunc = internal.HandlerFunc

	// Middleware decorates a HandlerFunc with cross-cutting behavior.
	Middleware = internal.Middleware

	// ErrorHandler turns errors returned by handlers into responses.
	ErrorHandler = internal.ErrorHandler

	// Option configures New.
	Option = internal.Option

	// RunOption configures Run.
	RunOption = internal.RunOption

	// Component renders itself into a response body. templ-generated
	// components satisfy it as-is.
	Component = internal.Component

	// ResponseWriter is the instrumented http.ResponseWriter handlers see.
	ResponseWriter = internal.ResponseWriter

	// HealthOption configures WithHealthChecks.
	HealthOption = internal.HealthOption

	// ContextExtractor pulls one slog attribute out of a request context,
	// stamping values such as the request ID onto every log line.
	ContextExtractor = logger.ContextExtractor

	// PreferenceOption shapes the language preference cookie.
	PreferenceOption = prefs.CookieOption

	// HTTPError is a structured error carrying an HTTP status code.
	// Handlers return it; the error handler renders it.
	HTTPError = internal.HTTPError

	// HTTPErrorOption fills the optional HTTPError fields.
	HTTPErrorOption = internal.HTTPErrorOption

	// Extractor walks an ordered chain of request sources until one
	// yields a non-empty value.
	Extractor = internal.Extractor

	// ExtractorSource reads one candidate value from a request.
	ExtractorSource = internal.ExtractorSource

	// HostRoutes maps host patterns, exact ("ar.example.com") or
	// wildcard ("*.example.com"), to handlers.
	HostRoutes = hostrouter.Routes

	// Registry is the language catalog locales are resolved against.
	Registry = i18n.Registry

	// Language is one catalog entry: code, native name, direction.
	Language = i18n.Language

	// Manager translates keys for a single resolved language.
	Manager = i18n.Manager

	// M supplies {{name}} placeholder values to translations.
	M = i18n.M
)

// New assembles an application from the given options. The returned App
// is immutable; everything is decided here.
//
//	app := rosetta.New(
//	    rosetta.WithMiddleware(middlewares.Locale(registry, source)),
//	    rosetta.WithHandlers(
//	        handlers.NewPages(),
//	        handlers.NewSwitcher(),
//	    ),
//	)
//
//	err := app.Run(":8080")
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// Run serves several Apps behind one listener, dispatched by Host header,
// and blocks until shutdown. This is how one site per language is hosted:
//
//	err := rosetta.Run(
//	    rosetta.Domain("ar.acme.com", arabic),
//	    rosetta.Fallback(site),
//	    rosetta.Address(":8080"),
//	)
func Run(opts ...RunOption) error {
	return internal.Run(opts...)
}

// NewRegistry builds a language registry over a manifest source. The
// registry serves a built-in fallback catalog until the first Load, so it
// is usable immediately.
func NewRegistry(src i18n.ManifestSource, opts ...i18n.RegistryOption) (*Registry, error) {
	return i18n.NewRegistry(src, opts...)
}

// App options, consumed by New.

// WithMiddleware appends global middleware, applied in the order given.
func WithMiddleware(mw ...Middleware) Option {
	return internal.WithMiddleware(mw...)
}

// WithHandlers registers handlers; each one's Routes method runs during
// setup.
func WithHandlers(h ...Handler) Option {
	return internal.WithHandlers(h...)
}

// WithStaticFiles serves files from fsys under the given route pattern,
// without directory listings and with default cache headers.
//
//	//go:embed public
//	var assets embed.FS
//
//	rosetta.New(
//	    rosetta.WithStaticFiles("/static/", assets, "public"),
//	)
func WithStaticFiles(pattern string, fsys fs.FS, subDir string) Option {
	return internal.WithStaticFiles(pattern, fsys, subDir)
}

// WithErrorHandler replaces the default rendering of handler errors.
func WithErrorHandler(h ErrorHandler) Option {
	return internal.WithErrorHandler(h)
}

// WithNotFoundHandler replaces the default 404 response.
func WithNotFoundHandler(h HandlerFunc) Option {
	return internal.WithNotFoundHandler(h)
}

// WithMethodNotAllowedHandler replaces the default 405 response.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return internal.WithMethodNotAllowedHandler(h)
}

// WithHealthChecks mounts the probe endpoints: liveness answers OK while
// the process runs, readiness runs every configured check.
//
//	rosetta.WithHealthChecks(
//	    rosetta.WithReadinessCheck("i18n_origin", func(ctx context.Context) error {
//	        _, err := source.Manifest(ctx)
//	        return err
//	    }),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return internal.WithHealthChecks(opts...)
}

// WithLogger builds the app logger with a component name stamped on every
// entry. Extractors add request-scoped attributes such as the request ID:
//
//	rosetta.New(
//	    rosetta.WithLogger("site", middlewares.RequestIDExtractor()),
//	)
func WithLogger(component string, extractors ...ContextExtractor) Option {
	return internal.WithLogger(component, extractors...)
}

// WithCustomLogger installs a prepared logger instead of building one,
// for setups that already wire their own handlers:
//
//	log := logger.NewWithSentry(cfg.Sentry, logger.WithService("site", cfg.Env))
//	rosetta.New(
//	    rosetta.WithCustomLogger(log),
//	)
func WithCustomLogger(l *slog.Logger) Option {
	return internal.WithCustomLogger(l)
}

// WithBaseDomain names the apex domain so c.Subdomain can split it off
// the Host header. "ar.example.com" under base "example.com" yields "ar",
// which is what language-per-host detection reads.
func WithBaseDomain(domain string) Option {
	return internal.WithBaseDomain(domain)
}

// WithPreferences shapes the cookie that remembers a visitor's language
// choice.
//
//	rosetta.New(
//	    rosetta.WithPreferences(
//	        rosetta.WithPreferenceCookieName("locale"),
//	        rosetta.WithPreferenceSecure(true),
//	    ),
//	)
func WithPreferences(opts ...PreferenceOption) Option {
	return internal.WithPreferences(opts...)
}

// Preference cookie options, consumed by WithPreferences.

// WithPreferenceCookieName sets the cookie name. Defaults to "lang".
func WithPreferenceCookieName(name string) PreferenceOption {
	return prefs.WithName(name)
}

// WithPreferenceMaxAge sets the cookie lifetime in seconds.
func WithPreferenceMaxAge(seconds int) PreferenceOption {
	return prefs.WithMaxAge(seconds)
}

// WithPreferenceDomain sets the cookie domain, so the choice is shared
// across language subdomains.
func WithPreferenceDomain(domain string) PreferenceOption {
	return prefs.WithDomain(domain)
}

// WithPreferencePath sets the cookie path. Defaults to "/".
func WithPreferencePath(path string) PreferenceOption {
	return prefs.WithPath(path)
}

// WithPreferenceSecure sets the Secure flag.
func WithPreferenceSecure(secure bool) PreferenceOption {
	return prefs.WithSecure(secure)
}

// WithPreferenceSameSite sets the SameSite attribute.
func WithPreferenceSameSite(ss http.SameSite) PreferenceOption {
	return prefs.WithSameSite(ss)
}

// Health check options, consumed by WithHealthChecks.

// WithLivenessPath moves the liveness endpoint off "/health/live".
func WithLivenessPath(path string) HealthOption {
	return internal.WithLivenessPath(path)
}

// WithReadinessPath moves the readiness endpoint off "/health/ready".
func WithReadinessPath(path string) HealthOption {
	return internal.WithReadinessPath(path)
}

// WithReadinessCheck adds a named check; all checks run in parallel on
// each readiness probe.
func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return internal.WithReadinessCheck(name, fn)
}

// Run options, consumed by Run and App.Run.

// Address sets the listen address. Defaults to ":8080".
func Address(addr string) RunOption {
	return internal.Address(addr)
}

// Logger sets the runtime logger; nil disables runtime logging.
func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

// ShutdownTimeout bounds graceful shutdown, covering both the HTTP server
// drain and the shutdown hooks. Defaults to 30 seconds.
func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// StartupHook runs fn after the port is bound and before requests are
// served; a failing hook aborts startup. Hooks run in registration order.
// Preloading the language catalog is the typical use:
//
//	rosetta.StartupHook(func(ctx context.Context) error {
//	    registry.Load(ctx)
//	    if len(registry.Codes()) == 0 {
//	        return errors.New("no languages available")
//	    }
//	    return nil
//	})
func StartupHook(fn func(context.Context) error) RunOption {
	return internal.StartupHook(fn)
}

// ShutdownHook runs fn during shutdown under the shutdown timeout. Hooks
// run in registration order.
//
//	rosetta.ShutdownHook(watcher.Stop)
func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// Domain routes requests whose Host matches pattern to app. Exact
// patterns beat wildcards:
//
//	rosetta.Run(
//	    rosetta.Domain("ar.acme.com", arabicApp),
//	    rosetta.Domain("*.acme.com", siteApp),
//	)
func Domain(pattern string, app *App) RunOption {
	return internal.Domain(pattern, app)
}

// Fallback names the App for requests no domain pattern claims. With no
// domains configured at all, the fallback simply is the server.
func Fallback(app *App) RunOption {
	return internal.Fallback(app)
}

// WithContext replaces context.Background as the base for signal
// handling, mainly so tests can stop the server.
func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}

// Typed request helpers.

// ContextValue reads a typed value set on the request context, returning
// T's zero value when the key is absent or holds a different type.
//
//	type visitorKey struct{}
//
//	visitorID := rosetta.ContextValue[string](c, visitorKey{})
func ContextValue[T any](c Context, key any) T {
	return internal.ContextValue[T](c, key)
}

// Param reads a typed route parameter, returning T's zero value when the
// parameter is missing or fails to parse.
//
//	// route: POST /lang/{code}
//	code := rosetta.Param[string](c, "code")
func Param[T ~string | ~int | ~int64 | ~float64 | ~bool](c Context, name string) T {
	return internal.Param[T](c, name)
}

// Query reads a typed query parameter, returning T's zero value when the
// parameter is missing or fails to parse.
func Query[T ~string | ~int | ~int64 | ~float64 | ~bool](c Context, name string) T {
	return internal.Query[T](c, name)
}

// QueryDefault reads a typed query parameter, falling back to
// defaultValue when it is missing or fails to parse.
func QueryDefault[T ~string | ~int | ~int64 | ~float64 | ~bool](c Context, name string, defaultValue T) T {
	return internal.QueryDefault[T](c, name, defaultValue)
}

// Extractors, the building blocks of locale resolution.

// NewExtractor chains sources in priority order; the first non-empty
// value wins. The Locale middleware resolves language candidates with one.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return internal.NewExtractor(sources...)
}

// FromHeader reads a request header.
func FromHeader(name string) ExtractorSource {
	return internal.FromHeader(name)
}

// FromQuery reads a query parameter.
func FromQuery(name string) ExtractorSource {
	return internal.FromQuery(name)
}

// FromCookie reads a cookie value.
func FromCookie(name string) ExtractorSource {
	return internal.FromCookie(name)
}

// FromParam reads a route parameter.
func FromParam(name string) ExtractorSource {
	return internal.FromParam(name)
}

// FromForm reads a form field.
func FromForm(name string) ExtractorSource {
	return internal.FromForm(name)
}

// Errors.

// NewHTTPError creates an HTTPError with the given status code and
// message.
func NewHTTPError(code int, message string) *HTTPError {
	return internal.NewHTTPError(code, message)
}

// Convenience error constructors.
func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrBadRequest(message, opts...)
}

func ErrUnauthorized(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrUnauthorized(message, opts...)
}

func ErrForbidden(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrForbidden(message, opts...)
}

func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrNotFound(message, opts...)
}

func ErrConflict(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrConflict(message, opts...)
}

func ErrUnprocessable(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrUnprocessable(message, opts...)
}

func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrInternal(message, opts...)
}

func ErrServiceUnavailable(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrServiceUnavailable(message, opts...)
}

// WithErrorTitle sets a short human-readable title.
func WithErrorTitle(title string) HTTPErrorOption {
	return internal.WithTitle(title)
}

// WithErrorDetail sets an extended description.
func WithErrorDetail(detail string) HTTPErrorOption {
	return internal.WithDetail(detail)
}

// WithErrorCode sets a machine-readable code, typically a translation key
// like "errors.not_found".
func WithErrorCode(code string) HTTPErrorOption {
	return internal.WithErrorCode(code)
}

// WithErrorRequestID attaches the request ID for correlation.
func WithErrorRequestID(id string) HTTPErrorOption {
	return internal.WithRequestID(id)
}

// WithErrorCause attaches the underlying error for errors.Is and As.
func WithErrorCause(err error) HTTPErrorOption {
	return internal.WithError(err)
}

// IsHTTPError reports whether err is or wraps an *HTTPError.
func IsHTTPError(err error) bool {
	return internal.IsHTTPError(err)
}

// AsHTTPError extracts the *HTTPError from err, or nil.
func AsHTTPError(err error) *HTTPError {
	return internal.AsHTTPError(err)
}
