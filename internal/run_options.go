package internal

import (
	"context"
	"log/slog"
	"time"
)

// RunOption configures the server runtime behind Run and App.Run.
type RunOption func(*runConfig)

// runConfig is the assembled runtime configuration.
type runConfig struct {
	addr         string
	log          *slog.Logger
	drainTimeout time.Duration
	onStart      []func(context.Context) error
	onStop       []func(context.Context) error
	hosts        map[string]*App
	fallback     *App
	base         context.Context
}

// buildRunConfig folds the options over the defaults.
func buildRunConfig(opts ...RunOption) *runConfig {
	cfg := &runConfig{
		hosts:        map[string]*App{},
		drainTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Address sets the listen address, ":8080" when left empty.
func Address(addr string) RunOption {
	return func(c *runConfig) {
		if addr != "" {
			c.addr = addr
		}
	}
}

// Logger sets the logger for server lifecycle messages. Without one the
// runtime stays silent.
func Logger(l *slog.Logger) RunOption {
	return func(c *runConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// ShutdownTimeout bounds the graceful drain, covering the HTTP server and
// the shutdown hooks together. Defaults to 30 seconds.
func ShutdownTimeout(d time.Duration) RunOption {
	return func(c *runConfig) {
		if d > 0 {
			c.drainTimeout = d
		}
	}
}

// StartupHook registers a function to run after the listener is bound but
// before the server accepts requests. A non-nil error aborts startup.
// Hooks are called in the order they were registered.
//
// Example:
//
//	rosetta.StartupHook(func(ctx context.Context) error {
//	    registry.Load(ctx)
//	    if len(registry.Codes()) == 0 {
//	        return errors.New("no languages available")
//	    }
//	    return nil
//	})
func StartupHook(fn func(context.Context) error) RunOption {
	return func(c *runConfig) {
		if fn != nil {
			c.onStart = append(c.onStart, fn)
		}
	}
}

// ShutdownHook registers a cleanup function for the drain phase. Hooks run
// in registration order, each under the shutdown timeout.
//
// Example:
//
//	rosetta.ShutdownHook(watcher.Stop)
func ShutdownHook(fn func(context.Context) error) RunOption {
	return func(c *runConfig) {
		if fn != nil {
			c.onStop = append(c.onStop, fn)
		}
	}
}

// Domain serves the given App for hosts matching pattern: an exact host
// ("ar.example.com") or a wildcard ("*.example.com").
//
// Example:
//
//	rosetta.Run(
//	    rosetta.Domain("ar.acme.com", arabicApp),
//	    rosetta.Domain("*.acme.com", siteApp),
//	)
func Domain(pattern string, app *App) RunOption {
	return func(c *runConfig) {
		if pattern != "" && app != nil {
			c.hosts[pattern] = app
		}
	}
}

// Fallback routes requests no domain pattern claims. With no domains
// configured at all, the fallback serves everything.
//
// Example:
//
//	rosetta.Run(
//	    rosetta.Domain("ar.acme.com", arabicApp),
//	    rosetta.Fallback(siteApp),
//	)
func Fallback(app *App) RunOption {
	return func(c *runConfig) {
		if app == nil {
			return
		}
		c.fallback = app
	}
}

// WithContext replaces the base context the signal handler derives from,
// so shutdown can be driven by a parent context instead of only signals.
// Defaults to context.Background().
func WithContext(ctx context.Context) RunOption {
	return func(c *runConfig) {
		if ctx != nil {
			c.base = ctx
		}
	}
}
