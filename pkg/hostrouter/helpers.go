package hostrouter

import (
	"net/http"
	"strings"
)

// GetDomain returns the request host normalized for comparison: port
// stripped, lowercased. Bracketed IPv6 literals keep their brackets.
func GetDomain(r *http.Request) string {
	return normalizeHost(r.Host)
}

// GetSubdomain returns the labels of the request host left of
// baseDomain, or "" when the host is the base itself or belongs to a
// different domain. With base "example.com":
//
//	ar.example.com      -> "ar"
//	ar.docs.example.com -> "ar.docs"
//	example.com         -> ""
//	other.com           -> ""
func GetSubdomain(r *http.Request, baseDomain string) string {
	host := normalizeHost(r.Host)
	base := strings.ToLower(baseDomain)

	if host == base {
		return ""
	}

	sub, ok := strings.CutSuffix(host, "."+base)
	if !ok {
		return ""
	}
	return sub
}
