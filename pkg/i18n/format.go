package i18n

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// LocaleFormat renders numbers, currency amounts, percentages, and
// timestamps the way one locale writes them. Digit shape and grouping come
// from the CLDR data for the language tag (Arabic-Indic digits included);
// currency symbol and placement are configured per locale.
type LocaleFormat struct {
	printer          *message.Printer
	dateFormat       string
	timeFormat       string
	dateTimeFormat   string
	currencySymbol   string
	currencyPosition string
}

// LocaleFormatOption configures a LocaleFormat.
type LocaleFormatOption func(*LocaleFormat)

// NewLocaleFormat creates a formatter for the given language tag. An
// unparseable tag falls back to English formatting. The defaults are
// US-flavored; the With* options and the Format* presets adjust them.
func NewLocaleFormat(lang string, opts ...LocaleFormatOption) *LocaleFormat {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	lf := &LocaleFormat{
		printer:          message.NewPrinter(tag),
		dateFormat:       "01/02/2006",
		timeFormat:       "3:04 PM",
		dateTimeFormat:   "01/02/2006 3:04 PM",
		currencySymbol:   "$",
		currencyPosition: "before",
	}
	for _, opt := range opts {
		opt(lf)
	}
	return lf
}

// WithCurrencySymbol replaces the currency symbol.
func WithCurrencySymbol(symbol string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.currencySymbol = symbol
	}
}

// WithCurrencyPosition puts the symbol "before" or "after" the amount.
// Anything else keeps the current placement.
func WithCurrencyPosition(position string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		if position == "before" || position == "after" {
			lf.currencyPosition = position
		}
	}
}

// WithDateFormat overrides the date layout (Go reference time).
func WithDateFormat(format string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.dateFormat = format
	}
}

// WithTimeFormat overrides the clock layout (Go reference time).
func WithTimeFormat(format string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.timeFormat = format
	}
}

// WithDateTimeFormat overrides the combined layout (Go reference time).
func WithDateTimeFormat(format string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.dateTimeFormat = format
	}
}

// FormatNumber formats a number with the locale's digits and grouping.
func (lf *LocaleFormat) FormatNumber(n float64) string {
	return lf.printer.Sprint(number.Decimal(n, number.MaxFractionDigits(2)))
}

// FormatCurrency formats an amount with two fraction digits, the locale's
// digits, and the configured symbol placement.
func (lf *LocaleFormat) FormatCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign, amount = "-", -amount
	}
	num := lf.printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))

	if lf.currencyPosition == "after" {
		return sign + num + " " + lf.currencySymbol
	}
	if tightSymbol(lf.currencySymbol) {
		return sign + lf.currencySymbol + num
	}
	return sign + lf.currencySymbol + " " + num
}

// tightSymbol reports whether the symbol attaches to the amount without a
// space, as $, £, ¥, and ₩ conventionally do.
func tightSymbol(sym string) bool {
	switch sym {
	case "$", "¥", "£", "₩":
		return true
	}
	return strings.HasSuffix(sym, "$")
}

// FormatPercent formats a fraction as a percentage (0.155 becomes 15.5%
// in the locale's digits and percent sign).
func (lf *LocaleFormat) FormatPercent(n float64) string {
	return lf.printer.Sprint(number.Percent(n, number.MaxFractionDigits(1)))
}

// FormatDate, FormatTime, and FormatDateTime render t with the locale's
// configured layouts.
func (lf *LocaleFormat) FormatDate(t time.Time) string     { return t.Format(lf.dateFormat) }
func (lf *LocaleFormat) FormatTime(t time.Time) string     { return t.Format(lf.timeFormat) }
func (lf *LocaleFormat) FormatDateTime(t time.Time) string { return t.Format(lf.dateTimeFormat) }
