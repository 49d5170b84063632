package health

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

const (
	defaultTimeout = 5 * time.Second

	// StatusHealthy means every check passed.
	StatusHealthy = "healthy"
	// StatusUnhealthy means at least one check failed.
	StatusUnhealthy = "unhealthy"
)

// CheckFunc probes one dependency, such as the translation origin or the
// bundle filesystem.
type CheckFunc func(ctx context.Context) error

// Checks maps check names to probes.
type Checks map[string]CheckFunc

// Response is the aggregated result of a readiness pass.
type Response struct {
	Checks map[string]Check `json:"checks,omitempty"`
	Status string           `json:"status"`
}

// Check is the outcome of a single probe.
type Check struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type config struct {
	logger  *slog.Logger
	timeout time.Duration
}

// Option configures check execution.
type Option func(*config)

// WithTimeout bounds the whole readiness pass. Non-positive values are
// ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger for failed probes.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		timeout: defaultTimeout,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

type outcome struct {
	name  string
	check Check
}

// runChecks executes all probes in parallel under one deadline and gathers
// the results into a single Response.
func runChecks(ctx context.Context, checks Checks, cfg *config) *Response {
	if len(checks) == 0 {
		return &Response{Status: StatusHealthy}
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	outcomes := make(chan outcome, len(checks))
	for name, check := range checks {
		go func() {
			outcomes <- outcome{name: name, check: probe(ctx, name, check, cfg.logger)}
		}()
	}

	resp := &Response{
		Status: StatusHealthy,
		Checks: make(map[string]Check, len(checks)),
	}
	for range len(checks) {
		o := <-outcomes
		resp.Checks[o.name] = o.check
		if o.check.Status == StatusUnhealthy {
			resp.Status = StatusUnhealthy
		}
	}
	return resp
}

// probe runs one check. A probe that exceeds the shared timeout reports
// ErrCheckTimeout instead of a raw context error.
func probe(ctx context.Context, name string, check CheckFunc, log *slog.Logger) Check {
	err := check(ctx)
	if err == nil {
		return Check{Status: StatusHealthy}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		err = ErrCheckTimeout
	}
	log.WarnContext(ctx, "health check failed",
		slog.String("check", name),
		slog.Any("error", err),
	)
	return Check{Status: StatusUnhealthy, Error: err.Error()}
}
