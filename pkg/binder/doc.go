// Package binder rewrites server-rendered HTML from the active translation
// bundle. Pages stay plain HTML with data attributes marking what to
// translate; the binder walks a parsed document, resolves each marker
// through a Translator, and writes the results back in place.
//
// Build one Binder at startup and share it; pass the per-request manager to
// each call:
//
//	b, err := binder.New(
//		binder.WithSwitchURL(func(code string) string { return "/lang/" + code }),
//	)
//	if err != nil {
//		return err
//	}
//
//	out, err := b.BindHTML(f, m) // m is the request's *i18n.Manager
//
// # Markers
//
// The marker attribute names the target, its value is the translation key:
//
//	<h1 data-i18n="hero.title">هنا يبدأ مستقبلك</h1>
//	<div data-i18n-html="about.body"></div>
//	<p data-i18n-md="admission.note"></p>
//	<input data-i18n-placeholder="search.hint">
//	<button data-i18n-title="nav.menu">☰</button>
//
// data-i18n replaces text content. data-i18n-html and data-i18n-md replace
// children with markup, sanitized through the configured bluemonday policy;
// the markdown variant renders through goldmark first and unwraps a
// single-paragraph result so inline elements keep inline content. Keys the
// bundle cannot resolve stay visible as the key itself, matching the
// manager's missing-key policy. The root element's lang and dir attributes
// track the active language, so CSS direction rules follow a switch
// automatically.
//
// # Language Switcher
//
// A container marked data-i18n-switcher is rebuilt on every bind: one
// anchor per registry language with its flag and display name, the active
// language marked with an "active" class. The children are replaced, not
// appended to, so binding after every switch keeps exactly one entry per
// language:
//
//	<nav data-i18n-switcher></nav>
//
//	<!-- becomes -->
//	<nav data-i18n-switcher>
//		<a class="lang-option active" href="/lang/ar" data-lang="ar">...</a>
//		<a class="lang-option" href="/lang/en" data-lang="en">...</a>
//	</nav>
//
// # Fragments
//
// BindFragment translates body-level markup without wrapping it in a full
// document, for HTMX partials and other fragment responses:
//
//	out, err := b.BindFragment(`<section data-i18n="news.title"></section>`, m)
package binder
