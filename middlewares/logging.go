package middlewares

import (
	"slices"
	"time"

	"github.com/dmitrymomot/rosetta/internal"
	"github.com/dmitrymomot/rosetta/pkg/logger"
)

// LoggingConfig configures the logging middleware.
type LoggingConfig struct {
	// SkipPaths lists exact request paths that are not logged.
	// Health probes belong here, they fire every few seconds.
	SkipPaths []string
}

// LoggingOption configures LoggingConfig.
type LoggingOption func(*LoggingConfig)

// WithLoggingSkipPaths sets the request paths excluded from the request log.
func WithLoggingSkipPaths(paths ...string) LoggingOption {
	return func(cfg *LoggingConfig) {
		cfg.SkipPaths = paths
	}
}

// Logging returns middleware that writes one structured log line per
// request: method, path, status, duration, and the resolved language when
// the Locale middleware ran. Failed requests log at error level with the
// handler's error attached.
//
// Place it outside Locale so the resolved language is available by the time
// the line is written:
//
//	rosetta.WithMiddleware(
//	    middlewares.RequestID(),
//	    middlewares.Logging(middlewares.WithLoggingSkipPaths("/health/live", "/health/ready")),
//	    middlewares.Locale(registry, loader),
//	)
func Logging(opts ...LoggingOption) internal.Middleware {
	cfg := &LoggingConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			path := c.Request().URL.Path
			if slices.Contains(cfg.SkipPaths, path) {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			elapsed := time.Since(start)

			attrs := []any{
				"method", c.Request().Method,
				"path", path,
				logger.Duration(elapsed),
			}
			if lang := GetLanguage(c); lang != "" {
				attrs = append(attrs, logger.Lang(lang))
			}

			if err != nil {
				// The error handler has not written yet, so report the
				// status the response will carry instead of the writer's.
				status := 500
				if he := internal.AsHTTPError(err); he != nil {
					status = he.Code
				}
				attrs = append(attrs, "status", status, logger.Error(err))
				c.LogError("request failed", attrs...)
				return err
			}

			attrs = append(attrs, "status", c.ResponseWriter().Status())
			c.LogInfo("request", attrs...)
			return err
		}
	}
}
