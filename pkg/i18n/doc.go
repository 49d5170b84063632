// Package i18n implements the translation pipeline for multi-language
// sites: a language registry fed by a published manifest, per-language
// bundle loading with cache busting, and a per-visitor manager that
// resolves, activates, and serves translations with safe fallbacks.
//
// The pipeline never takes a page down. A missing manifest leaves a fixed
// fallback registry in place, a missing bundle falls back to the default
// language exactly once, a missing key comes back as the key itself, and
// every recovered failure is logged through the configured slog.Logger so
// nothing fails silently without a trace.
//
// # Basic Usage
//
// Point a source at the origin publishing languages.json and the
// per-language bundles, then build a manager per visitor:
//
//	src, err := i18n.NewHTTPSource("https://example.com/i18n")
//	if err != nil {
//		return err
//	}
//
//	registry, err := i18n.NewRegistry(src)
//	if err != nil {
//		return err
//	}
//	registry.Load(ctx) // never fails: falls back to [ar, en]
//
//	m, err := i18n.New(registry, src,
//		i18n.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//
//	if err := m.Init(ctx, "en-US"); err != nil {
//		// Even the default language failed to load; lookups still
//		// return keys and the page stays up.
//	}
//
//	title := m.T("hero.title")
//	dir := m.Dir() // "rtl" when the active bundle says so
//
// # Language Resolution
//
// Init picks the first supported code from: the saved preference (when a
// PreferenceStore is attached), then the detected candidates in order, then
// the registry default. Candidates carry primary-subtag matching, so
// "en-US" activates "en". On the web side, candidates come from the
// Accept-Language header via MatchAcceptLanguage.
//
// # Switching And Fallback
//
//	err := m.SetLanguage(ctx, "fr")
//
// A failed load of a non-default language retries the default exactly once.
// A failed load of the default keeps the previous bundle active, so the
// page keeps its last good translations rather than blanking. Success swaps
// the bundle, language, and direction as one unit, persists the preference,
// and notifies subscribers:
//
//	changes, _ := m.Subscribe(ctx)
//	go func() {
//		for c := range changes {
//			rebuildTicker(c.Lang, c.Dir)
//		}
//	}()
//
// # Structured Content
//
// Bundles are arbitrarily nested documents. T resolves dot-separated paths
// to display strings; Lookup and Strings expose nested structures for
// consumers that derive their own presentation:
//
//	heading := m.T("programs.data.medicine.title")
//	items := m.Strings("ticker.items")
//
// # Bundles On Disk
//
// FSSource serves the same layout from any fs.FS, embedded files included:
//
//	//go:embed translations
//	var translations embed.FS
//
//	sub, _ := fs.Sub(translations, "translations")
//	src, err := i18n.NewFSSource(sub)
//
// File convention: languages.json plus {lang}.json (or .yaml/.yml) at the
// source root.
//
// # Locale Formatting
//
// LocaleFormat renders numbers, prices, and percentages in the locale's own
// digits, Arabic-Indic included:
//
//	f := i18n.FormatFor(m.Lang())
//	price := f.FormatCurrency(12500) // "١٢٬٥٠٠٫٠٠ $" under "ar"
package i18n
