package middlewares_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rosetta/internal"
	"github.com/dmitrymomot/rosetta/middlewares"
)

func TestLogging(t *testing.T) {
	t.Parallel()

	t.Run("writes one line per request", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		req := httptest.NewRequest(http.MethodGet, "/pricing", nil)
		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, req)
		ctx.logger = slog.New(slog.NewTextHandler(&buf, nil))

		mw := middlewares.Logging()
		handler := mw(func(c internal.Context) error {
			return c.String(http.StatusOK, "ok")
		})

		require.NoError(t, handler(ctx))

		line := buf.String()
		require.Contains(t, line, "msg=request")
		require.Contains(t, line, "method=GET")
		require.Contains(t, line, "path=/pricing")
		require.Contains(t, line, "status=200")
		require.Contains(t, line, "duration=")
	})

	t.Run("includes the resolved language", func(t *testing.T) {
		t.Parallel()

		registry, loader := localeFixture(t)

		var buf bytes.Buffer
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "ar")
		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, req)
		ctx.logger = slog.New(slog.NewTextHandler(&buf, nil))

		logging := middlewares.Logging()
		locale := middlewares.Locale(registry, loader)
		handler := logging(locale(func(c internal.Context) error {
			return c.NoContent(http.StatusNoContent)
		}))

		require.NoError(t, handler(ctx))
		require.Contains(t, buf.String(), "lang=ar")
	})

	t.Run("skips configured paths", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, req)
		ctx.logger = slog.New(slog.NewTextHandler(&buf, nil))

		mw := middlewares.Logging(middlewares.WithLoggingSkipPaths("/health/live", "/health/ready"))
		handler := mw(func(c internal.Context) error {
			return c.String(http.StatusOK, "OK")
		})

		require.NoError(t, handler(ctx))
		require.Empty(t, buf.String())
	})

	t.Run("failed requests log at error with the response status", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, req)
		ctx.logger = slog.New(slog.NewTextHandler(&buf, nil))

		mw := middlewares.Logging()
		handler := mw(func(c internal.Context) error {
			return internal.ErrNotFound("missing page")
		})

		err := handler(ctx)
		require.Error(t, err)

		line := buf.String()
		require.Contains(t, line, "level=ERROR")
		require.Contains(t, line, "msg=\"request failed\"")
		require.Contains(t, line, "status=404")
		require.Contains(t, line, "missing page")
	})

	t.Run("plain errors log as internal failures", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, req)
		ctx.logger = slog.New(slog.NewTextHandler(&buf, nil))

		mw := middlewares.Logging()
		handler := mw(func(c internal.Context) error {
			return http.ErrHandlerTimeout
		})

		require.Error(t, handler(ctx))
		require.Contains(t, buf.String(), "status=500")
	})
}
