// Package prefs persists the visitor's language preference.
//
// Stores never fail: a missing or mangled value reads as "no preference",
// and writes of anything that does not look like a language code are
// dropped. That keeps the preference layer from ever taking the language
// pipeline down. Dropped reads and writes surface through the store's
// logger, so degraded visitors remain visible in the logs.
//
// # Cookie Store
//
// The cookie store is the production backend. It is configured once and
// bound per request:
//
//	import (
//		"net/http"
//
//		"github.com/dmitrymomot/rosetta/pkg/prefs"
//	)
//
//	store := prefs.NewCookie(
//		prefs.WithSecure(true),
//		prefs.WithMaxAge(180 * 24 * 60 * 60),
//	)
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		p := store.Bind(w, r)
//		if code, ok := p.Get(); ok {
//			// returning visitor with a saved language
//		}
//		p.Set("ar") // visible to p.Get() for the rest of the request
//	}
//
// A Binding satisfies the translation manager's preference-store contract,
// so it plugs straight into i18n.WithPreferences.
//
// # Memory Store
//
// Memory backs tests and embedders without an HTTP surface:
//
//	p := prefs.NewMemory()
//	p.Set("en")
//	code, ok := p.Get() // "en", true
//
// # Configuration
//
// Cookie attributes are set with options:
//   - [WithName]: cookie name (default: "lang")
//   - [WithDomain]: cookie domain
//   - [WithPath]: cookie path (default: "/")
//   - [WithMaxAge]: lifetime in seconds (default: one year)
//   - [WithSecure]: Secure flag
//   - [WithHTTPOnly]: HttpOnly flag (default: true)
//   - [WithSameSite]: SameSite attribute (default: Lax)
//   - [WithLogger]: logger for dropped reads and writes (default: discard)
package prefs
