package internal

import (
	"bufio"
	"net"
	"net/http"
	"sync"
)

// ResponseWriter wraps http.ResponseWriter with write tracking, hooks that
// run before the first byte goes out, and HTMX status handling: HTMX only
// swaps 2xx responses, so error statuses are rewritten to 200 on HTMX
// requests and the real status travels in the rendered fragment instead.
type ResponseWriter struct {
	http.ResponseWriter

	mu        sync.Mutex
	committed bool
	code      int
	bytes     int64
	hooks     []func()
	htmx      bool
}

// NewResponseWriter wraps w. Set isHTMX from the request so error
// statuses degrade correctly for fragment swaps.
func NewResponseWriter(w http.ResponseWriter, isHTMX bool) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w, code: http.StatusOK, htmx: isHTMX}
}

// OnBeforeWrite registers a hook to run once, immediately before the first
// header or body write. Hooks run in registration order. The locale
// middleware uses this window to stamp Content-Language with whatever
// language finished the request, since handlers can switch mid-flight.
func (w *ResponseWriter) OnBeforeWrite(fn func()) {
	w.mu.Lock()
	w.hooks = append(w.hooks, fn)
	w.mu.Unlock()
}

// commit performs the one-time transition to the written state: it records
// the status, drains the registered hooks, and emits the header. Later
// calls are no-ops.
func (w *ResponseWriter) commit(code int) {
	w.mu.Lock()
	if w.committed {
		w.mu.Unlock()
		return
	}
	w.committed = true
	w.code = code
	pending := w.hooks
	w.hooks = nil
	w.mu.Unlock()

	for _, fn := range pending {
		fn()
	}

	if w.htmx && code != http.StatusOK {
		code = http.StatusOK
	}
	w.ResponseWriter.WriteHeader(code)
}

// WriteHeader sends the response header. For HTMX requests any non-200
// status is rewritten to 200; Status still reports the original.
func (w *ResponseWriter) WriteHeader(code int) {
	w.commit(code)
}

// Write writes body bytes, emitting the header first if it has not gone
// out yet.
func (w *ResponseWriter) Write(b []byte) (int, error) {
	w.commit(w.code)
	n, err := w.ResponseWriter.Write(b)
	w.bytes += int64(n)
	return n, err
}

// Status returns the status code the handler set, before any HTMX rewrite.
func (w *ResponseWriter) Status() int { return w.code }

// Size returns the number of body bytes written so far.
func (w *ResponseWriter) Size() int64 { return w.bytes }

// Written reports whether any part of the response has gone out.
func (w *ResponseWriter) Written() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.committed
}

// Flush implements http.Flusher.
func (w *ResponseWriter) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Hijack implements http.Hijacker.
func (w *ResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := w.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, http.ErrNotSupported
}

// Push implements http.Pusher.
func (w *ResponseWriter) Push(target string, opts *http.PushOptions) error {
	if pusher, ok := w.ResponseWriter.(http.Pusher); ok {
		return pusher.Push(target, opts)
	}
	return http.ErrNotSupported
}

// Unwrap returns the wrapped ResponseWriter.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
