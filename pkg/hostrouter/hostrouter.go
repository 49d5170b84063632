package hostrouter

import (
	"net/http"
	"strings"
)

// Routes maps host patterns to handlers. A pattern is either an exact
// host ("ar.example.com") or a wildcard ("*.example.com") covering any
// direct subdomain.
type Routes map[string]http.Handler

// Router picks a handler by request host.
type Router struct {
	exact    map[string]http.Handler
	wildcard map[string]http.Handler // keyed by the pattern minus "*."
	fallback http.Handler
}

// New builds a Router from routes. Requests matching no pattern go to
// fallback. Patterns are lowercased; empty ones are skipped.
func New(routes Routes, fallback http.Handler) *Router {
	r := &Router{
		exact:    make(map[string]http.Handler, len(routes)),
		wildcard: make(map[string]http.Handler),
		fallback: fallback,
	}

	for pattern, h := range routes {
		pattern = strings.ToLower(strings.TrimSpace(pattern))
		if pattern == "" {
			continue
		}
		if base, ok := strings.CutPrefix(pattern, "*."); ok {
			r.wildcard[base] = h
		} else {
			r.exact[pattern] = h
		}
	}

	return r
}

// ServeHTTP dispatches to the handler whose pattern matches the request
// host. Exact patterns win over wildcards; unmatched hosts go to the
// fallback.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	host := normalizeHost(req.Host)

	if h, ok := r.exact[host]; ok {
		h.ServeHTTP(w, req)
		return
	}

	// "ar.example.com" matches "*.example.com" via its base "example.com".
	if _, base, ok := strings.Cut(host, "."); ok {
		if h, ok := r.wildcard[base]; ok {
			h.ServeHTTP(w, req)
			return
		}
	}

	r.fallback.ServeHTTP(w, req)
}

// normalizeHost lowercases host and strips a trailing :port, leaving
// bracketed IPv6 literals intact.
func normalizeHost(host string) string {
	if i := strings.LastIndexByte(host, ':'); i >= 0 && !strings.Contains(host[i:], "]") {
		host = host[:i]
	}
	return strings.ToLower(host)
}
