package htmx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rosetta/pkg/htmx"
)

func TestRedirect(t *testing.T) {
	t.Parallel()

	t.Run("sets HX-Redirect for HTMX requests", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/lang/ar", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()

		htmx.Redirect(rec, req, "/")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("HX-Redirect"))
		assert.Empty(t, rec.Header().Get("Location"))
	})

	t.Run("issues a 302 for plain requests", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/lang/ar", nil)
		rec := httptest.NewRecorder()

		htmx.Redirect(rec, req, "/")

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.Empty(t, rec.Header().Get("HX-Redirect"))
	})
}

func TestRedirectWithStatus(t *testing.T) {
	t.Parallel()

	t.Run("custom status applies to the plain path", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/old", nil)
		rec := httptest.NewRecorder()

		htmx.RedirectWithStatus(rec, req, "/new", http.StatusMovedPermanently)

		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "/new", rec.Header().Get("Location"))
	})

	t.Run("HTMX path stays 200 regardless", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/old", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()

		htmx.RedirectWithStatus(rec, req, "/new", http.StatusMovedPermanently)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/new", rec.Header().Get("HX-Redirect"))
	})
}

func TestRedirectBack(t *testing.T) {
	t.Parallel()

	t.Run("uses the redirect query parameter", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/lang/en?redirect=%2Fadmissions", nil)
		rec := httptest.NewRecorder()

		htmx.RedirectBack(rec, req, "/")

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/admissions", rec.Header().Get("Location"))
	})

	t.Run("falls back when the parameter is absent", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/lang/en", nil)
		rec := httptest.NewRecorder()

		htmx.RedirectBack(rec, req, "/")

		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("honors HTMX on the way back", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/lang/en?redirect=%2Fnews", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()

		htmx.RedirectBack(rec, req, "/")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/news", rec.Header().Get("HX-Redirect"))
	})
}
