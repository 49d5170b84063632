package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/rosetta/internal"
)

// DefaultTimeout applies when Timeout is handed a non-positive duration.
const DefaultTimeout = 30 * time.Second

// TimeoutConfig carries the effective request deadline.
type TimeoutConfig struct {
	Timeout time.Duration
}

// TimeoutOption adjusts TimeoutConfig before the middleware is built.
type TimeoutOption func(*TimeoutConfig)

// Timeout caps how long a request may run, returning a *TimeoutError to the
// application's error handler once the deadline passes. This keeps a slow
// translation origin from hanging page loads indefinitely.
//
// The handler goroutine keeps running after the deadline. Translation
// loaders receive the context and abort on their own; long-running work in
// handlers should watch GetTimeoutContext's Done channel.
func Timeout(timeout time.Duration, opts ...TimeoutOption) internal.Middleware {
	cfg := &TimeoutConfig{Timeout: timeout}
	for _, opt := range opts {
		opt(cfg)
	}
	d := cfg.Timeout
	if d <= 0 {
		d = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), d)
			defer cancel()
			c.Set(timeoutContextKey{}, ctx)

			// The handler gets its own goroutine so a cancellation that is
			// not the deadline still lets it finish normally.
			done := make(chan error, 1)
			go func() { done <- next(c) }()

			select {
			case err := <-done:
				return err
			case <-ctx.Done():
			}

			if err := ctx.Err(); !errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			c.LogWarn("request timeout", "timeout", d.String())
			return &TimeoutError{Duration: d}
		}
	}
}

// timeoutContextKey is used to store the timeout context.
type timeoutContextKey struct{}

// GetTimeoutContext retrieves the deadline-bearing context if the Timeout
// middleware is installed, or the plain request context otherwise. Pass it
// to loaders and other blocking calls so they observe the deadline.
func GetTimeoutContext(c internal.Context) context.Context {
	if ctx, ok := c.Get(timeoutContextKey{}).(context.Context); ok {
		return ctx
	}
	return c.Context()
}
