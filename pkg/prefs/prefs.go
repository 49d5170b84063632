package prefs

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
)

// DefaultCookieName is the cookie carrying the visitor's language choice.
const DefaultCookieName = "lang"

// defaultMaxAge keeps the preference for a year.
const defaultMaxAge = 365 * 24 * 60 * 60

// Cookie persists the language preference in a browser cookie. Reads and
// writes never fail: a missing, expired, or mangled cookie reads as "no
// preference", and values that do not look like language codes are ignored
// on both ends.
type Cookie struct {
	name     string
	domain   string
	path     string
	maxAge   int
	secure   bool
	httpOnly bool
	sameSite http.SameSite
	log      *slog.Logger
}

// CookieOption configures a Cookie store.
type CookieOption func(*Cookie)

// NewCookie creates a cookie-backed preference store.
func NewCookie(opts ...CookieOption) *Cookie {
	c := &Cookie{
		name:     DefaultCookieName,
		path:     "/",
		maxAge:   defaultMaxAge,
		httpOnly: true,
		sameSite: http.SameSiteLaxMode,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithName sets the cookie name.
func WithName(name string) CookieOption {
	return func(c *Cookie) {
		if name != "" {
			c.name = name
		}
	}
}

// WithDomain sets the cookie domain.
func WithDomain(domain string) CookieOption {
	return func(c *Cookie) {
		c.domain = domain
	}
}

// WithPath sets the cookie path.
func WithPath(path string) CookieOption {
	return func(c *Cookie) {
		if path != "" {
			c.path = path
		}
	}
}

// WithMaxAge sets the cookie lifetime in seconds.
func WithMaxAge(seconds int) CookieOption {
	return func(c *Cookie) {
		if seconds > 0 {
			c.maxAge = seconds
		}
	}
}

// WithSecure sets the Secure flag.
func WithSecure(secure bool) CookieOption {
	return func(c *Cookie) {
		c.secure = secure
	}
}

// WithHTTPOnly sets the HttpOnly flag. On by default; switch it off when a
// client-side switcher needs to read the cookie.
func WithHTTPOnly(httpOnly bool) CookieOption {
	return func(c *Cookie) {
		c.httpOnly = httpOnly
	}
}

// WithSameSite sets the SameSite attribute.
func WithSameSite(ss http.SameSite) CookieOption {
	return func(c *Cookie) {
		c.sameSite = ss
	}
}

// WithLogger sets the logger for dropped reads and writes, so degraded
// operations stay visible without breaking the no-fail contract.
func WithLogger(log *slog.Logger) CookieOption {
	return func(c *Cookie) {
		if log != nil {
			c.log = log
		}
	}
}

// Get reads the saved language code from the request. False when no valid
// preference is stored.
func (c *Cookie) Get(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(c.name)
	if err != nil {
		return "", false
	}

	code := sanitizeCode(cookie.Value)
	if code == "" {
		c.log.Debug("stored language preference unreadable, treating as unset",
			slog.String("cookie", c.name),
		)
		return "", false
	}
	return code, true
}

// Set writes the language code to the response. Values that do not look
// like language codes are dropped.
func (c *Cookie) Set(w http.ResponseWriter, code string) {
	clean := sanitizeCode(code)
	if clean == "" {
		c.log.Warn("language preference dropped, not a language code",
			slog.String("value", code),
		)
		return
	}
	http.SetCookie(w, c.cookie(clean, c.maxAge))
}

// Clear removes the stored preference.
func (c *Cookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, c.cookie("", -1))
}

func (c *Cookie) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     c.name,
		Value:    value,
		Path:     c.path,
		Domain:   c.domain,
		MaxAge:   maxAge,
		Secure:   c.secure,
		HttpOnly: c.httpOnly,
		SameSite: c.sameSite,
	}
}

// Bind ties the store to one request/response pair. The returned Binding
// reads from the request cookie, writes through to the response, and keeps
// writes visible to later reads within the same request.
func (c *Cookie) Bind(w http.ResponseWriter, r *http.Request) *Binding {
	return &Binding{cookie: c, w: w, r: r}
}

// Binding is a per-request view of a Cookie store. It satisfies the
// preference-store contract of the translation manager: Get and Set never
// fail.
type Binding struct {
	cookie *Cookie
	w      http.ResponseWriter
	r      *http.Request

	mu      sync.Mutex
	value   string
	written bool
}

// Get returns the language saved for this visitor: the value written
// earlier in this request, or the request cookie.
func (b *Binding) Get() (string, bool) {
	b.mu.Lock()
	if b.written {
		v := b.value
		b.mu.Unlock()
		return v, true
	}
	b.mu.Unlock()

	return b.cookie.Get(b.r)
}

// Set saves the language for this visitor and makes it visible to later
// Get calls in the same request. Invalid codes are dropped.
func (b *Binding) Set(code string) {
	clean := sanitizeCode(code)
	if clean == "" {
		b.cookie.log.Warn("language preference dropped, not a language code",
			slog.String("value", code),
		)
		return
	}

	b.mu.Lock()
	b.value = clean
	b.written = true
	b.mu.Unlock()

	http.SetCookie(b.w, b.cookie.cookie(clean, b.cookie.maxAge))
}

// sanitizeCode lowercases and validates a stored value as a language code.
// Returns "" for anything else, so junk cookies degrade to "no preference".
func sanitizeCode(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" || len(code) > 35 {
		return ""
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' {
			return ""
		}
	}
	return code
}
