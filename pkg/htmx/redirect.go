package htmx

import "net/http"

// Redirect navigates to url for both HTMX and plain requests. HTMX requests
// get the HX-Redirect header with status 200, the client performs the
// navigation itself; plain requests get a 302.
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	RedirectWithStatus(w, r, url, http.StatusFound)
}

// RedirectWithStatus is Redirect with a caller-chosen status for the plain
// path. The HTMX path always answers 200.
func RedirectWithStatus(w http.ResponseWriter, r *http.Request, targetURL string, status int) {
	if IsHTMX(r) {
		w.Header().Set(HeaderHXRedirect, targetURL)
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, targetURL, status)
}

// RedirectBack navigates to the "redirect" query parameter when present,
// else to fallback.
func RedirectBack(w http.ResponseWriter, r *http.Request, fallback string) {
	redirectURL := r.URL.Query().Get("redirect")
	if redirectURL == "" {
		redirectURL = fallback
	}

	Redirect(w, r, redirectURL)
}
