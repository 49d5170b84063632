package htmx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rosetta/pkg/htmx"
)

func TestLocation(t *testing.T) {
	t.Parallel()

	t.Run("sets HX-Location for HTMX requests", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()

		htmx.Location(rec, req, "/admissions")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/admissions", rec.Header().Get("HX-Location"))
	})

	t.Run("issues a 302 for plain requests", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		htmx.Location(rec, req, "/admissions")

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/admissions", rec.Header().Get("Location"))
		assert.Empty(t, rec.Header().Get("HX-Location"))
	})
}

func TestLocationTarget(t *testing.T) {
	t.Parallel()

	t.Run("carries path and target as JSON", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()

		htmx.LocationTarget(rec, req, "/news", "#content")

		var opts htmx.LocationOptions
		require.NoError(t, json.Unmarshal([]byte(rec.Header().Get("HX-Location")), &opts))
		assert.Equal(t, "/news", opts.Path)
		assert.Equal(t, "#content", opts.Target)
	})

	t.Run("redirects plain requests to the path", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		htmx.LocationTarget(rec, req, "/news", "#content")

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/news", rec.Header().Get("Location"))
	})
}

func TestLocationWithOptions(t *testing.T) {
	t.Parallel()

	t.Run("serializes the full option set", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()

		htmx.LocationWithOptions(rec, req, htmx.LocationOptions{
			Path:   "/",
			Target: "#main",
			Swap:   string(htmx.SwapInnerHTML),
			Values: map[string]string{"lang": "ar"},
		})

		var opts htmx.LocationOptions
		require.NoError(t, json.Unmarshal([]byte(rec.Header().Get("HX-Location")), &opts))
		assert.Equal(t, "/", opts.Path)
		assert.Equal(t, "#main", opts.Target)
		assert.Equal(t, "innerHTML", opts.Swap)
		assert.Equal(t, "ar", opts.Values["lang"])
	})

	t.Run("omits empty fields from the payload", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()

		htmx.LocationWithOptions(rec, req, htmx.LocationOptions{Path: "/contact"})

		payload := rec.Header().Get("HX-Location")
		assert.Contains(t, payload, `"path":"/contact"`)
		assert.NotContains(t, payload, "target")
		assert.NotContains(t, payload, "swap")
	})

	t.Run("redirects plain requests to the path", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		htmx.LocationWithOptions(rec, req, htmx.LocationOptions{Path: "/contact", Target: "#main"})

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/contact", rec.Header().Get("Location"))
	})
}
