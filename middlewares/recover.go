package middlewares

import (
	"runtime"

	"github.com/dmitrymomot/rosetta/internal"
)

// DefaultStackSize caps captured stack traces at 4KB.
const DefaultStackSize = 4096

// RecoverConfig configures the recover middleware.
type RecoverConfig struct {
	StackSize         int  // Stack trace capture limit in bytes
	DisablePrintStack bool // Skip stack capture entirely
}

// RecoverOption configures RecoverConfig.
type RecoverOption func(*RecoverConfig)

// WithRecoverStackSize caps captured stack traces at size bytes.
func WithRecoverStackSize(size int) RecoverOption {
	return func(cfg *RecoverConfig) {
		cfg.StackSize = size
	}
}

// WithRecoverDisablePrintStack turns off stack capture, leaving only the
// panic value in logs and in the resulting PanicError.
func WithRecoverDisablePrintStack() RecoverOption {
	return func(cfg *RecoverConfig) {
		cfg.DisablePrintStack = true
	}
}

// Recover converts handler panics into a *PanicError for the application's
// error handler, so a bad placeholder map or a nil component never takes the
// whole server down. The panic and its stack are logged through the request
// context before the error is returned.
func Recover(opts ...RecoverOption) internal.Middleware {
	cfg := &RecoverConfig{StackSize: DefaultStackSize}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				var stack []byte
				if !cfg.DisablePrintStack {
					stack = captureStack(cfg.StackSize)
				}

				attrs := []any{"panic", r}
				if stack != nil {
					attrs = append(attrs, "stack", string(stack))
				}
				c.LogError("panic recovered", attrs...)

				err = &PanicError{Value: r, Stack: stack}
			}()

			return next(c)
		}
	}
}

func captureStack(limit int) []byte {
	buf := make([]byte, limit)
	return buf[:runtime.Stack(buf, false)]
}
