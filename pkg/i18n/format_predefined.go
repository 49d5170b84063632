package i18n

// FormatFor returns a LocaleFormat preconfigured for the given language
// code, falling back to a plain formatter for the tag when no preset exists.
func FormatFor(lang string) *LocaleFormat {
	switch baseLanguage(normalizeLanguageTag(lang)) {
	case "ar":
		return FormatAr()
	case "fr":
		return FormatFr()
	case "de":
		return FormatDe()
	case "es":
		return FormatEs()
	case "en":
		return FormatEnUS()
	default:
		return NewLocaleFormat(lang)
	}
}

// FormatAr returns a LocaleFormat configured for Arabic: Arabic-Indic
// digits, symbol after the amount.
func FormatAr() *LocaleFormat {
	return NewLocaleFormat("ar",
		WithCurrencyPosition("after"),
		WithDateFormat("02/01/2006"),
		WithTimeFormat("15:04"),
		WithDateTimeFormat("02/01/2006 15:04"),
	)
}

// FormatEnUS returns a LocaleFormat configured for US English (en-US).
func FormatEnUS() *LocaleFormat {
	return NewLocaleFormat("en-US")
}

// FormatEnGB returns a LocaleFormat configured for British English (en-GB).
func FormatEnGB() *LocaleFormat {
	return NewLocaleFormat("en-GB",
		WithCurrencySymbol("£"),
		WithDateFormat("02/01/2006"),
		WithTimeFormat("15:04"),
		WithDateTimeFormat("02/01/2006 15:04"),
	)
}

// FormatFr returns a LocaleFormat configured for French (fr-FR).
func FormatFr() *LocaleFormat {
	return NewLocaleFormat("fr",
		WithCurrencySymbol("€"),
		WithCurrencyPosition("after"),
		WithDateFormat("02/01/2006"),
		WithTimeFormat("15:04"),
		WithDateTimeFormat("02/01/2006 15:04"),
	)
}

// FormatDe returns a LocaleFormat configured for German (de-DE).
func FormatDe() *LocaleFormat {
	return NewLocaleFormat("de",
		WithCurrencySymbol("€"),
		WithCurrencyPosition("after"),
		WithDateFormat("02.01.2006"),
		WithTimeFormat("15:04"),
		WithDateTimeFormat("02.01.2006 15:04"),
	)
}

// FormatEs returns a LocaleFormat configured for Spanish (es-ES).
func FormatEs() *LocaleFormat {
	return NewLocaleFormat("es",
		WithCurrencySymbol("€"),
		WithCurrencyPosition("after"),
		WithDateFormat("02/01/2006"),
		WithTimeFormat("15:04"),
		WithDateTimeFormat("02/01/2006 15:04"),
	)
}
