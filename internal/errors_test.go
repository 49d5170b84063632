package internal_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rosetta/internal"
)

func TestIsHTTPError(t *testing.T) {
	t.Parallel()

	missing := internal.ErrNotFound("language not supported")

	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"plain HTTPError", missing, true},
		{"wrapped once", fmt.Errorf("resolve locale: %w", missing), true},
		{"wrapped twice", fmt.Errorf("handler: %w", fmt.Errorf("load bundle: %w", missing)), true},
		{"ordinary error", errors.New("catalog refresh failed"), false},
		{"nil", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, internal.IsHTTPError(tc.err))
		})
	}
}

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("recovers the typed error", func(t *testing.T) {
		t.Parallel()
		got := internal.AsHTTPError(internal.ErrUnprocessable("malformed locale cookie"))
		require.NotNil(t, got)
		require.Equal(t, http.StatusUnprocessableEntity, got.Code)
		require.Equal(t, "malformed locale cookie", got.Message)
	})

	t.Run("fields survive wrapping", func(t *testing.T) {
		t.Parallel()
		src := internal.ErrForbidden("locale admin only",
			internal.WithTitle("Access Denied"),
			internal.WithErrorCode("errors.locale_admin"),
		)
		got := internal.AsHTTPError(fmt.Errorf("dashboard: %w", src))
		require.NotNil(t, got)
		require.Equal(t, http.StatusForbidden, got.Code)
		require.Equal(t, "locale admin only", got.Message)
		require.Equal(t, "Access Denied", got.Title)
		require.Equal(t, "errors.locale_admin", got.ErrorCode)
	})

	t.Run("no HTTPError in the chain", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, internal.AsHTTPError(errors.New("disk full")))
		require.Nil(t, internal.AsHTTPError(nil))
	})
}

func TestConvenienceConstructors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ctor func(string, ...internal.HTTPErrorOption) *internal.HTTPError
		code int
	}{
		{"bad request", internal.ErrBadRequest, http.StatusBadRequest},
		{"unauthorized", internal.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", internal.ErrForbidden, http.StatusForbidden},
		{"not found", internal.ErrNotFound, http.StatusNotFound},
		{"conflict", internal.ErrConflict, http.StatusConflict},
		{"unprocessable", internal.ErrUnprocessable, http.StatusUnprocessableEntity},
		{"internal", internal.ErrInternal, http.StatusInternalServerError},
		{"service unavailable", internal.ErrServiceUnavailable, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.ctor("boom")
			require.Equal(t, tc.code, err.Code)
			require.Equal(t, "boom", err.Message)
			require.Equal(t, http.StatusText(tc.code), err.StatusText())
		})
	}

	t.Run("options populate optional fields", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("manifest fetch failed")
		err := internal.ErrServiceUnavailable("translations unavailable",
			internal.WithTitle("Service Unavailable"),
			internal.WithDetail("the translation origin did not respond"),
			internal.WithErrorCode("errors.origin_down"),
			internal.WithRequestID("01JX3GVY4D4Q"),
			internal.WithError(cause),
		)

		require.Equal(t, "Service Unavailable", err.Title)
		require.Equal(t, "the translation origin did not respond", err.Detail)
		require.Equal(t, "errors.origin_down", err.ErrorCode)
		require.Equal(t, "01JX3GVY4D4Q", err.RequestID)
		require.ErrorIs(t, err, cause)
	})

	t.Run("unwrap exposes the cause", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("boom")
		err := internal.ErrInternal("wrapped", internal.WithError(cause))
		require.Equal(t, cause, errors.Unwrap(err))
	})
}
