package internal

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/rosetta/pkg/hostrouter"
	"github.com/dmitrymomot/rosetta/pkg/htmx"
	"github.com/dmitrymomot/rosetta/pkg/i18n"
	"github.com/dmitrymomot/rosetta/pkg/prefs"
)

// ManagerKey is the context key under which the Locale middleware stores
// the per-request *i18n.Manager.
type ManagerKey struct{}

// Component is anything that can render itself into the response body.
// templ-generated components satisfy it as-is.
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

// Context is the request-scoped surface handlers receive. Beyond plain
// request/response access it carries the locale machinery: the active
// translation manager, the visitor's saved preference, and helpers that
// render translated components. It also implements context.Context by
// delegating to the request context, so it can be passed straight into
// loaders and other blocking calls.
type Context interface {
	context.Context

	// Request returns the inbound *http.Request.
	Request() *http.Request

	// Response returns the response writer handlers write through.
	Response() http.ResponseWriter

	// ResponseWriter returns the wrapped writer with status and hook
	// access.
	ResponseWriter() *ResponseWriter

	// Context returns the request's context.Context.
	Context() context.Context

	// Param returns the named route parameter, or "".
	Param(name string) string

	// Query returns the named query parameter, or "".
	Query(name string) string

	// QueryDefault returns the named query parameter, or defaultValue
	// when the parameter is absent or empty.
	QueryDefault(name, defaultValue string) string

	// Form returns the named form field, parsing the form on first use.
	Form(name string) string

	// FormFile returns the first uploaded file under the given key.
	FormFile(name string) (multipart.File, *multipart.FileHeader, error)

	// Header returns a request header value.
	Header(name string) string

	// Domain returns the request host with any port stripped.
	Domain() string

	// Subdomain returns the label left of the configured base domain, or
	// "" when no base domain is set or the host falls outside it.
	// Language-per-host deployments (ar.example.com) read candidates here.
	Subdomain() string

	// Lang returns the active language code, or "" without a manager.
	Lang() string

	// Dir returns the active text direction. Defaults to LTR without a
	// manager.
	Dir() i18n.Direction

	// IsRTL reports whether the active language reads right-to-left.
	IsRTL() bool

	// T translates key through the active manager, falling back to the
	// key itself when the Locale middleware is not installed.
	T(key string, placeholders ...i18n.M) string

	// Manager returns the per-request translation manager placed in
	// context by the Locale middleware, or nil when absent.
	Manager() *i18n.Manager

	// Preference returns the visitor's saved language choice, if any.
	Preference() (string, bool)

	// SavePreference persists the visitor's language choice. Writes made
	// during this request are visible to later Preference calls.
	SavePreference(code string)

	// Preferences returns the per-request preference binding. The Locale
	// middleware hands it to the manager as its PreferenceStore.
	Preferences() *prefs.Binding

	// SetHeader sets a response header.
	SetHeader(name, value string)

	// JSON writes v as a JSON response with the given status.
	JSON(code int, v any) error

	// String writes a plain-text response with the given status.
	String(code int, s string) error

	// HTML writes an HTML response with the given status. This is the
	// usual exit for binder output.
	HTML(code int, body []byte) error

	// NoContent writes a bodyless response.
	NoContent(code int) error

	// Redirect sends the client to url, switching to HX-Redirect for
	// HTMX requests so the browser performs a full page load.
	Redirect(code int, url string) error

	// Render writes a component with the given status. Render options
	// set HTMX response headers on HTMX requests and are ignored
	// otherwise.
	Render(code int, component Component, opts ...htmx.RenderOption) error

	// RenderPartial writes partial for HTMX requests and fullPage for
	// everyone else. Render options apply only on the HTMX path.
	RenderPartial(code int, fullPage, partial Component, opts ...htmx.RenderOption) error

	// Error builds an HTTPError without writing anything; return it from
	// the handler to hand it to the error handler.
	Error(code int, message string, opts ...HTTPErrorOption) *HTTPError

	// IsHTMX reports whether the request carries the HX-Request header.
	IsHTMX() bool

	// Written reports whether a response has been written.
	Written() bool

	// Cookie returns the named cookie's value.
	Cookie(name string) (string, error)

	// SetCookie sets an HttpOnly cookie scoped to "/".
	SetCookie(name, value string, maxAge int)

	// DeleteCookie expires the named cookie.
	DeleteCookie(name string)

	// Set stores a value on the request context, readable through Get or
	// c.Context().Value(key).
	Set(key any, value any)

	// Get retrieves a value stored with Set, or nil.
	Get(key any) any

	// Logger returns the request logger.
	Logger() *slog.Logger

	// LogDebug, LogInfo, LogWarn, and LogError log through the request
	// logger with the request context attached.
	LogDebug(msg string, attrs ...any)
	LogInfo(msg string, attrs ...any)
	LogWarn(msg string, attrs ...any)
	LogError(msg string, attrs ...any)
}

// requestContext is the concrete Context built for every request.
type requestContext struct {
	req   *http.Request
	rw    *ResponseWriter
	log   *slog.Logger
	prefs *prefs.Binding
	base  string
}

var _ Context = (*requestContext)(nil)

func newContext(w http.ResponseWriter, r *http.Request, app *App) *requestContext {
	rw := NewResponseWriter(w, htmx.IsHTMX(r))
	return &requestContext{
		req:   r,
		rw:    rw,
		log:   app.logger,
		prefs: app.prefs.Bind(rw, r),
		base:  app.baseDomain,
	}
}

// ctx is the live request context. Set swaps the request out under us,
// so every read goes through here instead of caching the value.
func (c *requestContext) ctx() context.Context { return c.req.Context() }

func (c *requestContext) Request() *http.Request          { return c.req }
func (c *requestContext) Response() http.ResponseWriter   { return c.rw }
func (c *requestContext) ResponseWriter() *ResponseWriter { return c.rw }
func (c *requestContext) Context() context.Context        { return c.ctx() }

// context.Context delegation.
func (c *requestContext) Deadline() (time.Time, bool) { return c.ctx().Deadline() }
func (c *requestContext) Done() <-chan struct{}       { return c.ctx().Done() }
func (c *requestContext) Err() error                  { return c.ctx().Err() }
func (c *requestContext) Value(key any) any           { return c.ctx().Value(key) }

func (c *requestContext) Param(name string) string { return chi.URLParam(c.req, name) }
func (c *requestContext) Query(name string) string { return c.req.URL.Query().Get(name) }

func (c *requestContext) QueryDefault(name, defaultValue string) string {
	if v := c.Query(name); v != "" {
		return v
	}
	return defaultValue
}

func (c *requestContext) Form(name string) string { return c.req.FormValue(name) }

func (c *requestContext) FormFile(name string) (multipart.File, *multipart.FileHeader, error) {
	return c.req.FormFile(name)
}

func (c *requestContext) Header(name string) string { return c.req.Header.Get(name) }

func (c *requestContext) Domain() string { return hostrouter.GetDomain(c.req) }

func (c *requestContext) Subdomain() string {
	if c.base == "" {
		return ""
	}
	return hostrouter.GetSubdomain(c.req, c.base)
}

func (c *requestContext) Manager() *i18n.Manager {
	m, _ := c.Get(ManagerKey{}).(*i18n.Manager)
	return m
}

func (c *requestContext) T(key string, placeholders ...i18n.M) string {
	m := c.Manager()
	if m == nil {
		return key
	}
	return m.T(key, placeholders...)
}

func (c *requestContext) Lang() string {
	m := c.Manager()
	if m == nil {
		return ""
	}
	return m.Lang()
}

func (c *requestContext) Dir() i18n.Direction {
	m := c.Manager()
	if m == nil {
		return i18n.DirectionLTR
	}
	return m.Dir()
}

func (c *requestContext) IsRTL() bool { return c.Dir().IsRTL() }

func (c *requestContext) Preference() (string, bool)  { return c.prefs.Get() }
func (c *requestContext) SavePreference(code string)  { c.prefs.Set(code) }
func (c *requestContext) Preferences() *prefs.Binding { return c.prefs }

func (c *requestContext) SetHeader(name, value string) { c.rw.Header().Set(name, value) }

func (c *requestContext) JSON(code int, v any) error {
	c.rw.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.rw.WriteHeader(code)
	return json.NewEncoder(c.rw).Encode(v)
}

func (c *requestContext) String(code int, s string) error {
	return c.blob(code, "text/plain; charset=utf-8", []byte(s))
}

func (c *requestContext) HTML(code int, body []byte) error {
	return c.blob(code, "text/html; charset=utf-8", body)
}

func (c *requestContext) blob(code int, contentType string, body []byte) error {
	c.rw.Header().Set("Content-Type", contentType)
	c.rw.WriteHeader(code)
	_, err := c.rw.Write(body)
	return err
}

func (c *requestContext) NoContent(code int) error {
	c.rw.WriteHeader(code)
	return nil
}

func (c *requestContext) Redirect(code int, url string) error {
	htmx.RedirectWithStatus(c.rw, c.req, url, code)
	return nil
}

func (c *requestContext) Render(code int, component Component, opts ...htmx.RenderOption) error {
	c.rw.Header().Set("Content-Type", "text/html; charset=utf-8")

	var cfg *htmx.Config
	if len(opts) > 0 && c.IsHTMX() {
		cfg = htmx.NewConfig(opts...)
		cfg.ApplyHeaders(c.rw)
	}

	c.rw.WriteHeader(code)
	if err := component.Render(c.ctx(), c.rw); err != nil {
		return err
	}
	if cfg == nil {
		return nil
	}

	// Out-of-band fragments ride along after the primary component.
	for _, oob := range cfg.OOBComponents {
		if err := oob.Render(c.ctx(), c.rw); err != nil {
			return err
		}
	}
	return nil
}

func (c *requestContext) RenderPartial(code int, fullPage, partial Component, opts ...htmx.RenderOption) error {
	if c.IsHTMX() {
		return c.Render(code, partial, opts...)
	}
	return c.Render(code, fullPage)
}

func (c *requestContext) Error(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return newHTTPError(code, message, opts)
}

func (c *requestContext) IsHTMX() bool  { return htmx.IsHTMX(c.req) }
func (c *requestContext) Written() bool { return c.rw.Written() }

func (c *requestContext) Cookie(name string) (string, error) {
	ck, err := c.req.Cookie(name)
	if err != nil {
		return "", err
	}
	return ck.Value, nil
}

func (c *requestContext) SetCookie(name, value string, maxAge int) {
	http.SetCookie(c.rw, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		SameSite: http.SameSiteLaxMode,
		HttpOnly: true,
	})
}

func (c *requestContext) DeleteCookie(name string) {
	http.SetCookie(c.rw, &http.Cookie{Name: name, Path: "/", MaxAge: -1})
}

func (c *requestContext) Set(key, value any) {
	c.req = c.req.WithContext(context.WithValue(c.ctx(), key, value))
}

func (c *requestContext) Get(key any) any { return c.ctx().Value(key) }

func (c *requestContext) Logger() *slog.Logger { return c.log }

func (c *requestContext) LogDebug(msg string, attrs ...any) { c.log.DebugContext(c.ctx(), msg, attrs...) }
func (c *requestContext) LogInfo(msg string, attrs ...any)  { c.log.InfoContext(c.ctx(), msg, attrs...) }
func (c *requestContext) LogWarn(msg string, attrs ...any)  { c.log.WarnContext(c.ctx(), msg, attrs...) }
func (c *requestContext) LogError(msg string, attrs ...any) { c.log.ErrorContext(c.ctx(), msg, attrs...) }
