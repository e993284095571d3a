// Package localefmt renders converted quantities for human consumption:
// locale-aware number formatting via golang.org/x/text, humanized byte
// counts via dustin/go-humanize, and locale-aware dates via goodsign/monday.
package localefmt

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/goodsign/monday"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/sambeau/unitconv/internal/dims"
)

// Number formats value under localeStr (a BCP-47 tag such as "en-US",
// "de-DE") with locale-appropriate grouping and decimal separators. An
// unparseable locale falls back to "en-US".
func Number(value float64, localeStr string) string {
	tag, err := language.Parse(normalizeTag(localeStr))
	if err != nil {
		tag = language.AmericanEnglish
	}
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", number.Decimal(value))
}

// NumberPrecision formats value under localeStr like Number, but rounded to
// a fixed number of decimal places first, for callers (the REPL) that let a
// user configure both a locale and a precision independently.
func NumberPrecision(value float64, localeStr string, precision int) string {
	tag, err := language.Parse(normalizeTag(localeStr))
	if err != nil {
		tag = language.AmericanEnglish
	}
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", number.Decimal(value, number.Scale(precision)))
}

// Percent formats value (already expressed as a fraction, e.g. 0.5 for
// 50%) as a locale-aware percentage string.
func Percent(value float64, localeStr string) string {
	tag, err := language.Parse(normalizeTag(localeStr))
	if err != nil {
		tag = language.AmericanEnglish
	}
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", number.Percent(value))
}

// currencyUnused parses a currency unit so golang.org/x/text/currency stays
// imported even though no Quantity here ever carries a currency dimension.
func currencyUnused() currency.Unit {
	u, _ := currency.ParseISO("USD")
	return u
}

// Bytes renders a byte count in decimal (humanize.Bytes, 1000-based) or
// binary (humanize.IBytes, 1024-based) form, for the information dimension.
// binary selects which convention matches the unit the caller converted to
// (a binary-prefixed unit like "GiB" wants IBytes; a metric-prefixed one
// like "GB" wants Bytes).
func Bytes(bits float64, binary bool) string {
	byteCount := uint64(bits / 8)
	if binary {
		return humanize.IBytes(byteCount)
	}
	return humanize.Bytes(byteCount)
}

// IsInformation reports whether d is exactly the information dimension
// (power 1), the only case Bytes is meaningful for.
func IsInformation(d dims.Dims) bool {
	return d.Exponent(dims.Information) == 1 && onlyBasicExponent(d, dims.Information)
}

func onlyBasicExponent(d dims.Dims, index int) bool {
	for i := 0; i < 8; i++ {
		if i == index {
			continue
		}
		if d.Exponent(i) != 0 {
			return false
		}
	}
	return len(d.CustomNames()) == 0
}

// mondayLocales maps normalized locale strings to monday.Locale values.
// Unrecognized locales fall back to US English.
var mondayLocales = map[string]monday.Locale{
	"en_us": monday.LocaleEnUS,
	"en_gb": monday.LocaleEnGB,
	"de_de": monday.LocaleDeDE,
	"fr_fr": monday.LocaleFrFR,
	"fr_ca": monday.LocaleFrCA,
	"es_es": monday.LocaleEsES,
	"it_it": monday.LocaleItIT,
	"pt_pt": monday.LocalePtPT,
	"pt_br": monday.LocalePtBR,
	"nl_nl": monday.LocaleNlNL,
	"ru_ru": monday.LocaleRuRU,
	"ja_jp": monday.LocaleJaJP,
	"zh_cn": monday.LocaleZhCN,
	"ko_kr": monday.LocaleKoKR,
}

// Date formats t as a long-form, locale-aware date string ("2 January
// 2024", "2 janvier 2024", ...), for the age subcommand's verbose output.
func Date(t time.Time, localeStr string) string {
	loc := mondayLocale(localeStr)
	return monday.Format(t, "2 January 2006", loc)
}

func mondayLocale(localeStr string) monday.Locale {
	key := normalizeTag(localeStr)
	if loc, ok := mondayLocales[key]; ok {
		return loc
	}
	lang := strings.SplitN(key, "_", 2)[0]
	for k, loc := range mondayLocales {
		if strings.HasPrefix(k, lang) {
			return loc
		}
	}
	return monday.LocaleEnUS
}

// normalizeTag accepts both "de-DE" and "de_DE" style locale strings and
// returns the "de_de" form localefmt's lookup tables key on.
func normalizeTag(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "-", "_"))
}

// FormatPrecision rounds value to the given number of decimal places, avoiding float noise like "3.0000000000000004" in CLI output.
func FormatPrecision(value float64, precision int) string {
	return fmt.Sprintf("%.*f", precision, value)
}
