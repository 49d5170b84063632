package htmx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rosetta/pkg/htmx"
)

func TestIsHTMX(t *testing.T) {
	t.Parallel()

	t.Run("true when HX-Request is true", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/lang/ar", nil)
		req.Header.Set("HX-Request", "true")

		assert.True(t, htmx.IsHTMX(req))
	})

	t.Run("false when header is missing", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/lang/ar", nil)

		assert.False(t, htmx.IsHTMX(req))
	})

	t.Run("false when header is false", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/lang/ar", nil)
		req.Header.Set("HX-Request", "false")

		assert.False(t, htmx.IsHTMX(req))
	})

	t.Run("value is case-sensitive", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/lang/ar", nil)
		req.Header.Set("HX-Request", "True")

		assert.False(t, htmx.IsHTMX(req))
	})
}

func TestIsBoosted(t *testing.T) {
	t.Parallel()

	t.Run("true when HX-Boosted is true", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("HX-Request", "true")
		req.Header.Set("HX-Boosted", "true")

		assert.True(t, htmx.IsBoosted(req))
	})

	t.Run("false for plain HTMX requests", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("HX-Request", "true")

		assert.False(t, htmx.IsBoosted(req))
	})
}

func TestCurrentURL(t *testing.T) {
	t.Parallel()

	t.Run("returns the browser URL", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/lang/en", nil)
		req.Header.Set("HX-Request", "true")
		req.Header.Set("HX-Current-URL", "https://example.com/?section=news")

		assert.Equal(t, "https://example.com/?section=news", htmx.CurrentURL(req))
	})

	t.Run("empty for plain requests", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/lang/en", nil)

		assert.Empty(t, htmx.CurrentURL(req))
	})
}
