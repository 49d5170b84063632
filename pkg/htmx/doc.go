// Package htmx detects HTMX requests and drives the client through HTMX
// response headers.
//
// The language-switch flow leans on it: a switch endpoint answers a plain
// request with a redirect and an HTMX request with a partial plus trigger
// events, and both paths go through the same helpers.
//
// # Request Detection
//
//	func switchLanguage(w http.ResponseWriter, r *http.Request) {
//		if htmx.IsHTMX(r) {
//			// re-render the affected fragments only
//		}
//	}
//
// # Navigation
//
// Redirect and Location pick the right mechanism per request kind: response
// headers for HTMX, a 302 otherwise:
//
//	htmx.Redirect(w, r, "/")
//	htmx.LocationTarget(w, r, "/news", "#content")
//
// # Response Headers
//
// NewConfig collects headers through options, ApplyHeaders writes them:
//
//	cfg := htmx.NewConfig(
//		htmx.WithTrigger("rosetta:lang-changed"),
//		htmx.WithPushURL("/?lang=ar"),
//	)
//	cfg.ApplyHeaders(w)
//
// Swap strategies, retargeting, URL history control, and out-of-band
// fragments follow the HTMX header protocol one to one.
package htmx
