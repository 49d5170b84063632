package handlers

import (
	"bytes"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/dmitrymomot/rosetta"
	"github.com/dmitrymomot/rosetta/pkg/binder"
	"github.com/dmitrymomot/rosetta/pkg/i18n"
)

// Pages serves the landing page and its language-dependent fragments.
// The page itself is a static document; every response is bound against
// the request's resolved language before it leaves.
type Pages struct {
	index []byte
	bind  *binder.Binder
	langs *i18n.Registry
}

// NewPages creates the page handler for the given raw index document.
func NewPages(index []byte, bind *binder.Binder, langs *i18n.Registry) *Pages {
	return &Pages{index: index, bind: bind, langs: langs}
}

// Routes declares all routes for the landing site.
func (h *Pages) Routes(r rosetta.Router) {
	r.GET("/", h.home)
	r.GET("/lang/{code}", h.switchLanguage)
	r.POST("/lang/{code}", h.switchLanguage)
	r.GET("/partials/ticker", h.ticker)
}

// home binds the index document against the active language and serves it.
func (h *Pages) home(c rosetta.Context) error {
	page, err := h.bind.BindHTML(bytes.NewReader(h.index), c.Manager())
	if err != nil {
		return err
	}
	return c.HTML(http.StatusOK, page)
}

// switchLanguage activates the requested language and sends the visitor
// back to the page. The switcher links are plain anchors, so GET covers
// browsers with no JavaScript; HTMX clients get an HX-Redirect instead.
// Codes outside the registry are rejected up front; a known code whose
// bundle fails to load still succeeds through the manager's fallback.
func (h *Pages) switchLanguage(c rosetta.Context) error {
	code := rosetta.Param[string](c, "code")
	if !h.langs.Supported(code) {
		return rosetta.ErrBadRequest("unknown language",
			rosetta.WithErrorCode("errors.unknown_language"))
	}
	if err := c.Manager().SetLanguage(c, code); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// ticker renders the scrolling news strip as an HTMX fragment: headline
// items straight from the bundle, then the tuition fee and acceptance
// rate formatted with the active locale's digits.
func (h *Pages) ticker(c rosetta.Context) error {
	m := c.Manager()
	format := i18n.FormatFor(m.Lang())

	var sb strings.Builder
	sb.WriteString(`<ul class="ticker-track">`)
	for _, item := range m.Strings("ticker.items") {
		fmt.Fprintf(&sb, `<li>%s</li>`, html.EscapeString(item))
	}
	if amount, ok := lookupNumber(m, "ticker.tuition.amount"); ok {
		fmt.Fprintf(&sb, `<li class="ticker-fee">%s: %s</li>`,
			html.EscapeString(m.T("ticker.tuition.label")),
			format.FormatCurrency(amount),
		)
	}
	if rate, ok := lookupNumber(m, "ticker.acceptance.rate"); ok {
		fmt.Fprintf(&sb, `<li class="ticker-fee">%s: %s</li>`,
			html.EscapeString(m.T("ticker.acceptance.label")),
			format.FormatPercent(rate),
		)
	}
	sb.WriteString(`</ul>`)

	return c.HTML(http.StatusOK, []byte(sb.String()))
}

// lookupNumber reads a numeric bundle value. JSON numbers arrive as
// float64; anything else means the bundle author made a typo.
func lookupNumber(m *i18n.Manager, key string) (float64, bool) {
	v, ok := m.Lookup(key)
	if !ok {
		return 0, false
	}
	n, ok := v.(float64)
	return n, ok
}
