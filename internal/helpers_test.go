package internal_test

import (
	"context"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rosetta/internal"
	"github.com/dmitrymomot/rosetta/pkg/htmx"
	"github.com/dmitrymomot/rosetta/pkg/i18n"
	"github.com/dmitrymomot/rosetta/pkg/prefs"
)

// stubContext serves canned route params and query strings so the typed
// helpers can run without a server.
type stubContext struct {
	params map[string]string
	req    *http.Request
	vals   map[any]any
}

var _ internal.Context = (*stubContext)(nil)

func stubWithParams(params map[string]string) *stubContext {
	return &stubContext{
		params: params,
		req:    httptest.NewRequest(http.MethodGet, "/", nil),
		vals:   map[any]any{},
	}
}

func stubWithQuery(rawQuery string) *stubContext {
	c := stubWithParams(nil)
	c.req.URL.RawQuery = rawQuery
	return c
}

func (c *stubContext) Param(name string) string { return c.params[name] }
func (c *stubContext) Query(name string) string { return c.req.URL.Query().Get(name) }
func (c *stubContext) Set(key, value any)       { c.vals[key] = value }
func (c *stubContext) Get(key any) any          { return c.vals[key] }

func (c *stubContext) Request() *http.Request   { return c.req }
func (c *stubContext) Context() context.Context { return c.req.Context() }

// context.Context plumbing.
func (c *stubContext) Deadline() (time.Time, bool) { return c.req.Context().Deadline() }
func (c *stubContext) Done() <-chan struct{}       { return c.req.Context().Done() }
func (c *stubContext) Err() error                  { return c.req.Context().Err() }
func (c *stubContext) Value(key any) any           { return c.req.Context().Value(key) }

// The helpers under test never reach the rest of the surface.
func (c *stubContext) QueryDefault(string, string) string { return "" }
func (c *stubContext) Form(string) string                 { return "" }
func (c *stubContext) FormFile(string) (multipart.File, *multipart.FileHeader, error) {
	return nil, nil, http.ErrMissingFile
}
func (c *stubContext) Domain() string                           { return "" }
func (c *stubContext) Subdomain() string                        { return "" }
func (c *stubContext) Header(string) string                     { return "" }
func (c *stubContext) SetHeader(string, string)                 {}
func (c *stubContext) JSON(int, any) error                      { return nil }
func (c *stubContext) String(int, string) error                 { return nil }
func (c *stubContext) HTML(int, []byte) error                   { return nil }
func (c *stubContext) NoContent(int) error                      { return nil }
func (c *stubContext) Redirect(int, string) error               { return nil }
func (c *stubContext) IsHTMX() bool                             { return false }
func (c *stubContext) Written() bool                            { return false }
func (c *stubContext) Logger() *slog.Logger                     { return slog.Default() }
func (c *stubContext) LogDebug(string, ...any)                  {}
func (c *stubContext) LogInfo(string, ...any)                   {}
func (c *stubContext) LogWarn(string, ...any)                   {}
func (c *stubContext) LogError(string, ...any)                  {}
func (c *stubContext) Cookie(string) (string, error)            { return "", http.ErrNoCookie }
func (c *stubContext) SetCookie(string, string, int)            {}
func (c *stubContext) DeleteCookie(string)                      {}
func (c *stubContext) Preference() (string, bool)               { return "", false }
func (c *stubContext) SavePreference(string)                    {}
func (c *stubContext) Preferences() *prefs.Binding              { return nil }
func (c *stubContext) Manager() *i18n.Manager                   { return nil }
func (c *stubContext) T(key string, _ ...i18n.M) string         { return key }
func (c *stubContext) Lang() string                             { return "" }
func (c *stubContext) Dir() i18n.Direction                      { return i18n.DirectionLTR }
func (c *stubContext) IsRTL() bool                              { return false }
func (c *stubContext) ResponseWriter() *internal.ResponseWriter { return nil }
func (c *stubContext) Response() http.ResponseWriter            { return httptest.NewRecorder() }

func (c *stubContext) Error(code int, message string, _ ...internal.HTTPErrorOption) *internal.HTTPError {
	return internal.NewHTTPError(code, message)
}

func (c *stubContext) Render(int, internal.Component, ...htmx.RenderOption) error { return nil }
func (c *stubContext) RenderPartial(int, internal.Component, internal.Component, ...htmx.RenderOption) error {
	return nil
}

func wantParam[T ~string | ~int | ~int64 | ~float64 | ~bool](t *testing.T, raw string, want T) {
	t.Helper()
	c := stubWithParams(map[string]string{"v": raw})
	require.Equal(t, want, internal.Param[T](c, "v"))
}

func TestParam(t *testing.T) {
	t.Parallel()

	t.Run("string passes through", func(t *testing.T) {
		t.Parallel()
		wantParam(t, "ar", "ar")
		wantParam(t, "pt-BR", "pt-BR")
		wantParam(t, "", "")
	})

	t.Run("int parses or zeroes", func(t *testing.T) {
		t.Parallel()
		wantParam(t, "42", 42)
		wantParam(t, "-7", -7)
		wantParam(t, "0", 0)
		wantParam(t, "abc", 0)
		wantParam(t, "3.14", 0)
		wantParam(t, "", 0)
	})

	t.Run("wide integers", func(t *testing.T) {
		t.Parallel()
		wantParam(t, "9999999999", int64(9999999999))
	})

	t.Run("floats", func(t *testing.T) {
		t.Parallel()
		wantParam(t, "3.14", 3.14)
	})

	t.Run("bool accepts ParseBool forms", func(t *testing.T) {
		t.Parallel()
		wantParam(t, "true", true)
		wantParam(t, "TRUE", true)
		wantParam(t, "1", true)
		wantParam(t, "false", false)
		wantParam(t, "maybe", false)
		wantParam(t, "", false)
	})

	t.Run("absent name yields the zero value", func(t *testing.T) {
		t.Parallel()
		c := stubWithParams(nil)
		require.Empty(t, internal.Param[string](c, "code"))
		require.Zero(t, internal.Param[int](c, "code"))
		require.False(t, internal.Param[bool](c, "code"))
	})
}

func wantQuery[T ~string | ~int | ~int64 | ~float64 | ~bool](t *testing.T, rawQuery string, want T) {
	t.Helper()
	c := stubWithQuery(rawQuery)
	require.Equal(t, want, internal.Query[T](c, "q"))
}

func TestQuery(t *testing.T) {
	t.Parallel()

	t.Run("string", func(t *testing.T) {
		t.Parallel()
		wantQuery(t, "q=fr", "fr")
		wantQuery(t, "q=", "")
		wantQuery(t, "", "")
	})

	t.Run("int", func(t *testing.T) {
		t.Parallel()
		wantQuery(t, "q=5", 5)
		wantQuery(t, "q=0", 0)
		wantQuery(t, "q=-1", -1)
		wantQuery(t, "q=abc", 0)
		wantQuery(t, "", 0)
	})

	t.Run("bool", func(t *testing.T) {
		t.Parallel()
		wantQuery(t, "q=true", true)
		wantQuery(t, "q=1", true)
		wantQuery(t, "q=false", false)
		wantQuery(t, "q=yes", false)
		wantQuery(t, "", false)
	})
}

func TestQueryDefault(t *testing.T) {
	t.Parallel()

	t.Run("present values win", func(t *testing.T) {
		t.Parallel()

		c := stubWithQuery("page=5&lang=uk&rtl=false")
		require.Equal(t, 5, internal.QueryDefault[int](c, "page", 1))
		require.Equal(t, "uk", internal.QueryDefault[string](c, "lang", "en"))
		require.False(t, internal.QueryDefault[bool](c, "rtl", true))
	})

	t.Run("fallback covers absent, empty, and unparseable", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, 1, internal.QueryDefault[int](stubWithQuery(""), "page", 1))
		require.Equal(t, "en", internal.QueryDefault[string](stubWithQuery(""), "lang", "en"))
		require.Equal(t, 1, internal.QueryDefault[int](stubWithQuery("page="), "page", 1))
		require.Equal(t, 1, internal.QueryDefault[int](stubWithQuery("page=abc"), "page", 1))
		require.True(t, internal.QueryDefault[bool](stubWithQuery(""), "rtl", true))
	})
}

func TestContextValue(t *testing.T) {
	t.Parallel()

	type langKey struct{}

	t.Run("typed read", func(t *testing.T) {
		t.Parallel()

		c := stubWithParams(nil)
		c.Set(langKey{}, "fr")
		require.Equal(t, "fr", internal.ContextValue[string](c, langKey{}))
	})

	t.Run("type mismatch yields the zero value", func(t *testing.T) {
		t.Parallel()

		c := stubWithParams(nil)
		c.Set(langKey{}, 42)
		require.Empty(t, internal.ContextValue[string](c, langKey{}))
	})

	t.Run("absent key yields the zero value", func(t *testing.T) {
		t.Parallel()

		c := stubWithParams(nil)
		require.Empty(t, internal.ContextValue[string](c, langKey{}))
		require.Zero(t, internal.ContextValue[int](c, langKey{}))
	})

	t.Run("struct payloads survive", func(t *testing.T) {
		t.Parallel()

		type visit struct {
			Lang string
			Hits int
		}
		c := stubWithParams(nil)
		c.Set(langKey{}, visit{Lang: "ar", Hits: 3})
		require.Equal(t, visit{Lang: "ar", Hits: 3}, internal.ContextValue[visit](c, langKey{}))
	})
}
