package middlewares

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/rosetta/internal"
	"github.com/dmitrymomot/rosetta/pkg/id"
	"github.com/dmitrymomot/rosetta/pkg/logger"
)

type requestIDKey struct{}

// RequestIDKey is the context key under which the request ID is stored.
// Exposed for logger.WithContextValue wiring; prefer RequestIDExtractor.
var RequestIDKey = requestIDKey{}

// DefaultRequestIDHeaders lists the inbound headers consulted, in order, for
// an ID assigned by an upstream proxy or gateway.
var DefaultRequestIDHeaders = []string{"X-Request-ID", "X-Request-Id", "X-Correlation-ID"}

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	Generator      func() string // Produces an ID when no inbound header carries one
	ResponseHeader string        // Header echoed back to the client
	Headers        []string      // Inbound headers consulted in order
}

// RequestIDOption configures RequestIDConfig.
type RequestIDOption func(*RequestIDConfig)

// WithRequestIDHeaders replaces the inbound header list.
func WithRequestIDHeaders(headers ...string) RequestIDOption {
	return func(cfg *RequestIDConfig) {
		cfg.Headers = headers
	}
}

// WithRequestIDGenerator replaces the ID generator.
func WithRequestIDGenerator(gen func() string) RequestIDOption {
	return func(cfg *RequestIDConfig) {
		cfg.Generator = gen
	}
}

// WithRequestIDResponseHeader renames the response header.
func WithRequestIDResponseHeader(header string) RequestIDOption {
	return func(cfg *RequestIDConfig) {
		cfg.ResponseHeader = header
	}
}

// RequestID tags every request with an ID, reusing one handed down by an
// upstream proxy when present and minting a ULID otherwise. The ID lands in
// the request context and on the response so a log line and a client report
// can be matched up.
func RequestID(opts ...RequestIDOption) internal.Middleware {
	cfg := &RequestIDConfig{
		Generator:      id.NewULID,
		ResponseHeader: "X-Request-ID",
		Headers:        DefaultRequestIDHeaders,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			reqID := resolveRequestID(c, cfg)
			c.Set(requestIDKey{}, reqID)
			c.SetHeader(cfg.ResponseHeader, reqID)
			return next(c)
		}
	}
}

// resolveRequestID reuses the first non-empty inbound header value, earlier
// headers winning, so an upstream tracing ID survives a proxy that stamps
// its own correlation header further down the chain. With no inbound ID it
// mints a fresh one.
func resolveRequestID(c internal.Context, cfg *RequestIDConfig) string {
	for _, header := range cfg.Headers {
		if v := c.Header(header); v != "" {
			return v
		}
	}
	return cfg.Generator()
}

// GetRequestID extracts the request ID from the context, or "" when the
// middleware is not installed.
func GetRequestID(c internal.Context) string {
	v, _ := c.Get(requestIDKey{}).(string)
	return v
}

// RequestIDExtractor returns a ContextExtractor for WithLogger that stamps
// "request_id" on every log entry written through the request context.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		v, ok := ctx.Value(requestIDKey{}).(string)
		if !ok || v == "" {
			return slog.Attr{}, false
		}
		return slog.String("request_id", v), true
	}
}
