package htmx

import "net/http"

// IsHTMX reports whether the request was issued by HTMX.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true"
}

// IsBoosted reports whether the request came from an hx-boost element.
// Boosted requests expect full pages, not fragments.
func IsBoosted(r *http.Request) bool {
	return r.Header.Get(HeaderHXBoosted) == "true"
}

// CurrentURL returns the browser URL the request was made from, empty for
// non-HTMX requests.
func CurrentURL(r *http.Request) string {
	return r.Header.Get(HeaderHXCurrentURL)
}
