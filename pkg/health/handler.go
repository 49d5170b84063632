package health

import (
	"encoding/json"
	"net/http"
	"strings"
)

// LivenessHandler answers OK unconditionally: the process is up. Wire it to
// the liveness probe.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, http.StatusOK, &Response{Status: StatusHealthy})
	}
}

// ReadinessHandler runs the probes on every request and answers 503 when
// any fails. Wire it to the readiness probe so traffic holds off until the
// translation origin and friends respond.
func ReadinessHandler(checks Checks, opts ...Option) http.HandlerFunc {
	cfg := newConfig(opts...)
	return func(w http.ResponseWriter, r *http.Request) {
		resp := runChecks(r.Context(), checks, cfg)
		respond(w, r, statusCode(resp), resp)
	}
}

// statusCode maps the report to the HTTP code probes act on.
func statusCode(resp *Response) int {
	if resp.Status == StatusUnhealthy {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

// respond picks the representation: the full JSON report when asked for it,
// a terse text body otherwise.
func respond(w http.ResponseWriter, r *http.Request, status int, resp *Response) {
	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	w.WriteHeader(status)
	body := "OK"
	if resp.Status != StatusHealthy {
		body = "Service Unavailable"
	}
	_, _ = w.Write([]byte(body))
}

// wantsJSON honors both the format query parameter and the Accept header,
// the parameter winning for curl-friendliness.
func wantsJSON(r *http.Request) bool {
	if r.URL.Query().Get("format") == "json" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
