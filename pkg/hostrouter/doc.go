// Package hostrouter dispatches HTTP requests by Host header.
//
// Multilingual sites often pin one language per host: ar.example.com
// serves Arabic, en.example.com serves English, and the bare domain
// detects the visitor's language. Each host maps to its own handler.
//
// # Host Patterns
//
// Two pattern forms are recognized:
//
//   - Exact: "ar.example.com" matches that host alone
//   - Wildcard: "*.example.com" matches any direct subdomain
//     (ar.example.com, en.example.com, but not ar.docs.example.com)
//
// Exact patterns win over wildcards. Matching is case-insensitive and
// ignores the port.
//
// # Usage
//
//	routes := hostrouter.Routes{
//	    "ar.example.com": arabicSite,
//	    "*.example.com":  detectingSite,
//	}
//	router := hostrouter.New(routes, fallbackSite)
//	http.ListenAndServe(":8080", router)
//
// Bracketed IPv6 hosts like "[::1]:8080" are handled; the brackets
// survive normalization so "[::1]" is a valid exact pattern.
package hostrouter
