package binder

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/net/html"

	"github.com/dmitrymomot/rosetta/pkg/i18n"
)

// Marker attributes recognized by Bind. The attribute value is the
// translation key.
const (
	// AttrText replaces the element's text content.
	AttrText = "data-i18n"
	// AttrHTML replaces the element's children with sanitized markup.
	AttrHTML = "data-i18n-html"
	// AttrMarkdown renders the translation as markdown, sanitizes the
	// result, and replaces the element's children with it.
	AttrMarkdown = "data-i18n-md"
	// AttrPlaceholder writes the translation into the placeholder attribute.
	AttrPlaceholder = "data-i18n-placeholder"
	// AttrTitle writes the translation into the title attribute.
	AttrTitle = "data-i18n-title"
	// AttrSwitcher marks the language switcher container. Bind replaces its
	// children with one entry per registry language.
	AttrSwitcher = "data-i18n-switcher"
)

// DefaultFlagBase prefixes relative flag asset references from the registry.
const DefaultFlagBase = "/assets/flags"

// Translator is the narrow read surface Bind needs. *i18n.Manager
// satisfies it.
type Translator interface {
	T(key string, placeholders ...i18n.M) string
	Lang() string
	Dir() i18n.Direction
	Languages() []i18n.Language
}

// Binder rewrites parsed HTML documents from the active translation bundle.
// A single Binder is safe for concurrent use and is meant to be built once
// and shared across requests; the per-request state lives in the Translator
// passed to each call.
type Binder struct {
	policy    *bluemonday.Policy
	md        goldmark.Markdown
	switchURL func(code string) string
	flagBase  string
	log       *slog.Logger
}

// Option configures a Binder.
type Option func(*Binder) error

// New creates a binder. Without options it sanitizes trusted markup with
// bluemonday's UGC policy, renders markdown with GFM extensions, links
// switcher entries to "/lang/{code}", and resolves relative flags under
// DefaultFlagBase.
func New(opts ...Option) (*Binder, error) {
	b := &Binder{
		policy:    bluemonday.UGCPolicy(),
		md:        goldmark.New(goldmark.WithExtensions(extension.GFM)),
		switchURL: func(code string) string { return "/lang/" + code },
		flagBase:  DefaultFlagBase,
		log:       slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// WithPolicy sets the sanitizer applied to AttrHTML and AttrMarkdown values.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(b *Binder) error {
		if policy == nil {
			return ErrNilPolicy
		}
		b.policy = policy
		return nil
	}
}

// WithMarkdown sets the renderer for AttrMarkdown values.
func WithMarkdown(md goldmark.Markdown) Option {
	return func(b *Binder) error {
		if md == nil {
			return ErrNilMarkdown
		}
		b.md = md
		return nil
	}
}

// WithSwitchURL sets the link target builder for switcher entries.
func WithSwitchURL(build func(code string) string) Option {
	return func(b *Binder) error {
		if build == nil {
			return ErrNilSwitchURL
		}
		b.switchURL = build
		return nil
	}
}

// WithFlagBase sets the URL prefix for relative flag asset references.
// Absolute references from the registry are used as-is.
func WithFlagBase(base string) Option {
	return func(b *Binder) error {
		if strings.TrimSpace(base) == "" {
			return ErrEmptyFlagBase
		}
		b.flagBase = base
		return nil
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(log *slog.Logger) Option {
	return func(b *Binder) error {
		if log != nil {
			b.log = log
		}
		return nil
	}
}

// Bind rewrites doc in place: marker-tagged elements get their content or
// attributes replaced with translations, the root element's lang and dir
// attributes follow the active language, and switcher containers are
// rebuilt from the registry list. Keys the bundle cannot resolve stay
// visible as the key string. Per-element failures degrade to plain text
// and never abort the pass.
func (b *Binder) Bind(doc *goquery.Document, tr Translator) error {
	if doc == nil {
		return ErrNilDocument
	}
	if tr == nil {
		return ErrNilTranslator
	}

	if lang := tr.Lang(); lang != "" {
		root := doc.Find("html")
		root.SetAttr("lang", lang)
		root.SetAttr("dir", string(tr.Dir()))
	}

	doc.Find(attrSelector(AttrText)).Each(func(_ int, s *goquery.Selection) {
		if key, ok := markerKey(s, AttrText); ok {
			s.SetText(tr.T(key))
		}
	})

	doc.Find(attrSelector(AttrHTML)).Each(func(_ int, s *goquery.Selection) {
		if key, ok := markerKey(s, AttrHTML); ok {
			s.SetHtml(b.policy.Sanitize(tr.T(key)))
		}
	})

	doc.Find(attrSelector(AttrMarkdown)).Each(func(_ int, s *goquery.Selection) {
		key, ok := markerKey(s, AttrMarkdown)
		if !ok {
			return
		}
		val := tr.T(key)
		rendered, err := b.renderMarkdown(val)
		if err != nil {
			b.log.Warn("markdown translation failed",
				slog.String("key", key),
				slog.Any("error", err))
			s.SetText(val)
			return
		}
		s.SetHtml(rendered)
	})

	doc.Find(attrSelector(AttrPlaceholder)).Each(func(_ int, s *goquery.Selection) {
		if key, ok := markerKey(s, AttrPlaceholder); ok {
			s.SetAttr("placeholder", tr.T(key))
		}
	})

	doc.Find(attrSelector(AttrTitle)).Each(func(_ int, s *goquery.Selection) {
		if key, ok := markerKey(s, AttrTitle); ok {
			s.SetAttr("title", tr.T(key))
		}
	})

	doc.Find(attrSelector(AttrSwitcher)).Each(func(_ int, s *goquery.Selection) {
		s.SetHtml(b.switcherHTML(tr))
	})

	return nil
}

// BindHTML parses a full document from r, binds it, and returns the
// serialized result including the doctype.
func (b *Binder) BindHTML(r io.Reader, tr Translator) ([]byte, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("binder: parse document: %w", err)
	}
	if err := b.Bind(doc, tr); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := goquery.Render(&buf, doc.Selection); err != nil {
		return nil, fmt.Errorf("binder: render document: %w", err)
	}
	return buf.Bytes(), nil
}

// BindFragment binds body-level markup, such as an HTMX partial, and
// returns it without the document wrapper the HTML parser adds. Elements
// the parser relocates into the head are dropped.
func (b *Binder) BindFragment(src string, tr Translator) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return "", fmt.Errorf("binder: parse fragment: %w", err)
	}
	if err := b.Bind(doc, tr); err != nil {
		return "", err
	}

	out, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("binder: render fragment: %w", err)
	}
	return out, nil
}

// renderMarkdown converts src and sanitizes the result. A single-paragraph
// rendering is unwrapped so inline elements can carry markdown values
// without gaining block content.
func (b *Binder) renderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := b.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}

	out := strings.TrimSpace(b.policy.Sanitize(buf.String()))
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return out, nil
}

func attrSelector(attr string) string {
	return "[" + attr + "]"
}

func markerKey(s *goquery.Selection, attr string) (string, bool) {
	key := strings.TrimSpace(s.AttrOr(attr, ""))
	return key, key != ""
}

func escape(s string) string {
	return html.EscapeString(s)
}
