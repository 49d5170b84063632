package middlewares_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/dmitrymomot/rosetta/internal"
	"github.com/dmitrymomot/rosetta/pkg/hostrouter"
	"github.com/dmitrymomot/rosetta/pkg/htmx"
	"github.com/dmitrymomot/rosetta/pkg/i18n"
	"github.com/dmitrymomot/rosetta/pkg/prefs"
)

// testContext implements internal.Context for unit-testing middleware in
// isolation. Responses go through a real internal.ResponseWriter so
// before-write hooks fire, and preferences go through a real cookie
// binding.
type testContext struct {
	rw         *internal.ResponseWriter
	request    *http.Request
	binding    *prefs.Binding
	params     map[string]string
	logger     *slog.Logger
	baseDomain string
}

func newTestContext(w http.ResponseWriter, r *http.Request) *testContext {
	rw := internal.NewResponseWriter(w, htmx.IsHTMX(r))
	return &testContext{
		rw:      rw,
		request: r,
		binding: prefs.NewCookie().Bind(rw, r),
		params:  make(map[string]string),
		logger:  slog.New(slog.DiscardHandler),
	}
}

func (c *testContext) Request() *http.Request        { return c.request }
func (c *testContext) Response() http.ResponseWriter { return c.rw }
func (c *testContext) Context() context.Context      { return c.request.Context() }
func (c *testContext) Param(name string) string      { return c.params[name] }

func (c *testContext) Query(name string) string {
	return c.request.URL.Query().Get(name)
}

func (c *testContext) QueryDefault(name, defaultValue string) string {
	if v := c.request.URL.Query().Get(name); v != "" {
		return v
	}
	return defaultValue
}

func (c *testContext) Form(name string) string {
	return c.request.FormValue(name)
}

func (c *testContext) FormFile(name string) (multipart.File, *multipart.FileHeader, error) {
	return nil, nil, http.ErrMissingFile
}

func (c *testContext) Domain() string {
	return hostrouter.GetDomain(c.request)
}

func (c *testContext) Subdomain() string {
	if c.baseDomain == "" {
		return ""
	}
	return hostrouter.GetSubdomain(c.request, c.baseDomain)
}

func (c *testContext) Header(name string) string    { return c.request.Header.Get(name) }
func (c *testContext) SetHeader(name, value string) { c.rw.Header().Set(name, value) }

func (c *testContext) JSON(code int, v any) error {
	c.rw.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.rw.WriteHeader(code)
	return json.NewEncoder(c.rw).Encode(v)
}

func (c *testContext) String(code int, s string) error {
	c.rw.WriteHeader(code)
	_, err := c.rw.Write([]byte(s))
	return err
}

func (c *testContext) HTML(code int, body []byte) error {
	c.rw.Header().Set("Content-Type", "text/html; charset=utf-8")
	c.rw.WriteHeader(code)
	_, err := c.rw.Write(body)
	return err
}

func (c *testContext) NoContent(code int) error {
	c.rw.WriteHeader(code)
	return nil
}

func (c *testContext) Redirect(code int, url string) error {
	htmx.RedirectWithStatus(c.rw, c.request, url, code)
	return nil
}

func (c *testContext) Error(code int, message string, opts ...internal.HTTPErrorOption) *internal.HTTPError {
	err := internal.NewHTTPError(code, message)
	for _, opt := range opts {
		opt(err)
	}
	return err
}

func (c *testContext) IsHTMX() bool { return htmx.IsHTMX(c.request) }

func (c *testContext) Render(code int, component internal.Component, opts ...htmx.RenderOption) error {
	c.rw.WriteHeader(code)
	return component.Render(c.request.Context(), c.rw)
}

func (c *testContext) RenderPartial(code int, fullPage, partial internal.Component, opts ...htmx.RenderOption) error {
	if htmx.IsHTMX(c.request) {
		return c.Render(code, partial, opts...)
	}
	return c.Render(code, fullPage)
}

func (c *testContext) Written() bool { return c.rw.Written() }

func (c *testContext) Logger() *slog.Logger { return c.logger }

func (c *testContext) LogDebug(msg string, attrs ...any) {
	c.logger.DebugContext(c.request.Context(), msg, attrs...)
}

func (c *testContext) LogInfo(msg string, attrs ...any) {
	c.logger.InfoContext(c.request.Context(), msg, attrs...)
}

func (c *testContext) LogWarn(msg string, attrs ...any) {
	c.logger.WarnContext(c.request.Context(), msg, attrs...)
}

func (c *testContext) LogError(msg string, attrs ...any) {
	c.logger.ErrorContext(c.request.Context(), msg, attrs...)
}

func (c *testContext) Set(key, value any) {
	ctx := context.WithValue(c.request.Context(), key, value)
	c.request = c.request.WithContext(ctx)
}

func (c *testContext) Get(key any) any {
	return c.request.Context().Value(key)
}

func (c *testContext) Cookie(name string) (string, error) {
	ck, err := c.request.Cookie(name)
	if err != nil {
		return "", err
	}
	return ck.Value, nil
}

func (c *testContext) SetCookie(name, value string, maxAge int) {
	http.SetCookie(c.rw, &http.Cookie{Name: name, Value: value, Path: "/", MaxAge: maxAge})
}

func (c *testContext) DeleteCookie(name string) {
	http.SetCookie(c.rw, &http.Cookie{Name: name, Path: "/", MaxAge: -1})
}

func (c *testContext) Preference() (string, bool) { return c.binding.Get() }
func (c *testContext) SavePreference(code string) { c.binding.Set(code) }
func (c *testContext) Preferences() *prefs.Binding {
	return c.binding
}

func (c *testContext) Manager() *i18n.Manager {
	if m, ok := c.Get(internal.ManagerKey{}).(*i18n.Manager); ok {
		return m
	}
	return nil
}

func (c *testContext) T(key string, placeholders ...i18n.M) string {
	if m := c.Manager(); m != nil {
		return m.T(key, placeholders...)
	}
	return key
}

func (c *testContext) Lang() string {
	if m := c.Manager(); m != nil {
		return m.Lang()
	}
	return ""
}

func (c *testContext) Dir() i18n.Direction {
	if m := c.Manager(); m != nil {
		return m.Dir()
	}
	return i18n.DirectionLTR
}

func (c *testContext) IsRTL() bool { return c.Dir().IsRTL() }

func (c *testContext) ResponseWriter() *internal.ResponseWriter { return c.rw }

func (c *testContext) Deadline() (time.Time, bool) { return c.request.Context().Deadline() }
func (c *testContext) Done() <-chan struct{}       { return c.request.Context().Done() }
func (c *testContext) Err() error                  { return c.request.Context().Err() }
func (c *testContext) Value(key any) any           { return c.request.Context().Value(key) }
