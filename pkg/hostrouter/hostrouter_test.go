package hostrouter_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrymomot/rosetta/pkg/hostrouter"
)

func bodyHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	})
}

// serveHost pushes a request with the given Host through the router.
func serveHost(router http.Handler, host string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = host
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func checkHost(t *testing.T, router http.Handler, host, wantBody string, wantCode int) {
	t.Helper()
	rec := serveHost(router, host)
	if rec.Code != wantCode {
		t.Errorf("host %q: status = %d, want %d", host, rec.Code, wantCode)
	}
	if got := rec.Body.String(); got != wantBody {
		t.Errorf("host %q: body = %q, want %q", host, got, wantBody)
	}
}

func TestRouter_ExactHost(t *testing.T) {
	router := hostrouter.New(hostrouter.Routes{
		"ar.acme.io": bodyHandler("arabic"),
		"en.acme.io": bodyHandler("english"),
	}, http.NotFoundHandler())

	tests := []struct {
		name     string
		host     string
		wantBody string
		wantCode int
	}{
		{"arabic host", "ar.acme.io", "arabic", 200},
		{"english host", "en.acme.io", "english", 200},
		{"case insensitive", "AR.Acme.IO", "arabic", 200},
		{"port stripped", "ar.acme.io:8080", "arabic", 200},
		{"unknown host", "de.acme.io", "404 page not found\n", 404},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkHost(t, router, tt.host, tt.wantBody, tt.wantCode)
		})
	}
}

func TestRouter_WildcardHost(t *testing.T) {
	router := hostrouter.New(hostrouter.Routes{
		"*.acme.io":  bodyHandler("detect"),
		"ar.acme.io": bodyHandler("arabic"),
	}, http.NotFoundHandler())

	tests := []struct {
		name     string
		host     string
		wantBody string
		wantCode int
	}{
		{"exact beats wildcard", "ar.acme.io", "arabic", 200},
		{"wildcard english", "en.acme.io", "detect", 200},
		{"wildcard ukrainian", "uk.acme.io", "detect", 200},
		{"wildcard case insensitive", "EN.Acme.IO", "detect", 200},
		{"root domain misses wildcard", "acme.io", "404 page not found\n", 404},
		{"nested subdomain misses wildcard", "ar.docs.acme.io", "404 page not found\n", 404},
		{"other domain", "other.io", "404 page not found\n", 404},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkHost(t, router, tt.host, tt.wantBody, tt.wantCode)
		})
	}
}

func TestRouter_Fallback(t *testing.T) {
	router := hostrouter.New(hostrouter.Routes{
		"ar.acme.io": bodyHandler("arabic"),
	}, bodyHandler("detect"))

	checkHost(t, router, "ar.acme.io", "arabic", 200)
	checkHost(t, router, "www.acme.io", "detect", 200)
	checkHost(t, router, "other.io", "detect", 200)
}

func TestRouter_EmptyRoutes(t *testing.T) {
	router := hostrouter.New(hostrouter.Routes{}, bodyHandler("fallback"))
	checkHost(t, router, "acme.io", "fallback", 200)
}

func TestRouter_IPv6Host(t *testing.T) {
	router := hostrouter.New(hostrouter.Routes{
		"[::1]": bodyHandler("loopback"),
	}, http.NotFoundHandler())

	checkHost(t, router, "[::1]", "loopback", 200)
	checkHost(t, router, "[::1]:8080", "loopback", 200)
}
