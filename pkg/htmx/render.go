package htmx

import (
	"context"
	"io"
	"net/http"
	"strings"
)

// Renderable is anything that writes itself as markup. The web shell's
// Component satisfies it, so out-of-band fragments ride along with any
// response.
type Renderable interface {
	Render(ctx context.Context, w io.Writer) error
}

// Config collects the HTMX response headers and out-of-band fragments a
// handler wants on its response.
type Config struct {
	Retarget            string
	Reselect            string
	Reswap              SwapStrategy
	PushURL             string
	ReplaceURL          string
	Refresh             bool
	Triggers            []string
	TriggersAfterSwap   []string
	TriggersAfterSettle []string
	OOBComponents       []Renderable
}

// RenderOption configures a Config.
type RenderOption func(*Config)

// NewConfig builds a Config from options.
func NewConfig(opts ...RenderOption) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// ApplyHeaders writes the configured headers. Must run before WriteHeader.
func (c *Config) ApplyHeaders(w http.ResponseWriter) {
	if c == nil {
		return
	}

	h := w.Header()
	setIf := func(header, value string) {
		if value != "" {
			h.Set(header, value)
		}
	}

	setIf(HeaderHXRetarget, c.Retarget)
	setIf(HeaderHXReswap, string(c.Reswap))
	setIf(HeaderHXReselect, c.Reselect)
	setIf(HeaderHXPushURL, c.PushURL)
	setIf(HeaderHXReplaceURL, c.ReplaceURL)
	setIf(HeaderHXTrigger, strings.Join(c.Triggers, ", "))
	setIf(HeaderHXTriggerAfterSwap, strings.Join(c.TriggersAfterSwap, ", "))
	setIf(HeaderHXTriggerAfterSettle, strings.Join(c.TriggersAfterSettle, ", "))
	if c.Refresh {
		h.Set(HeaderHXRefresh, "true")
	}
}

// WithOOB appends out-of-band fragments rendered after the main component.
// Each must carry its own id and hx-swap-oob attributes.
func WithOOB(components ...Renderable) RenderOption {
	return func(c *Config) {
		c.OOBComponents = append(c.OOBComponents, components...)
	}
}

// WithRetarget redirects the swap to another element.
func WithRetarget(selector string) RenderOption {
	return func(c *Config) {
		c.Retarget = selector
	}
}

// WithReswap overrides the swap strategy.
func WithReswap(strategy SwapStrategy) RenderOption {
	return func(c *Config) {
		c.Reswap = strategy
	}
}

// WithReselect swaps only the matching subset of the response.
func WithReselect(selector string) RenderOption {
	return func(c *Config) {
		c.Reselect = selector
	}
}

// WithPushURL adds a history entry for the given URL, "false" suppresses it.
func WithPushURL(url string) RenderOption {
	return func(c *Config) {
		c.PushURL = url
	}
}

// WithReplaceURL replaces the current history entry, "false" suppresses it.
func WithReplaceURL(url string) RenderOption {
	return func(c *Config) {
		c.ReplaceURL = url
	}
}

// WithTrigger fires client-side events once the response lands.
func WithTrigger(events ...string) RenderOption {
	return func(c *Config) {
		c.Triggers = append(c.Triggers, events...)
	}
}

// WithTriggerAfterSwap fires events after the swap completes.
func WithTriggerAfterSwap(events ...string) RenderOption {
	return func(c *Config) {
		c.TriggersAfterSwap = append(c.TriggersAfterSwap, events...)
	}
}

// WithTriggerAfterSettle fires events after the settle phase.
func WithTriggerAfterSettle(events ...string) RenderOption {
	return func(c *Config) {
		c.TriggersAfterSettle = append(c.TriggersAfterSettle, events...)
	}
}

// WithRefresh forces a full page reload.
func WithRefresh() RenderOption {
	return func(c *Config) {
		c.Refresh = true
	}
}
