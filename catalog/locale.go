package catalog

import (
	"strings"

	"golang.org/x/text/language"
)

// CanonicalLocale returns the BCP 47 canonical form of a locale ("zh-hans" becomes "zh-Hans").
// Unparseable input is returned trimmed but otherwise untouched.
func CanonicalLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return ""
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return locale
	}

	return tag.String()
}

// SameLocale reports whether two locale identifiers name the same tag.
func SameLocale(a string, b string) bool {
	return CanonicalLocale(a) == CanonicalLocale(b)
}

// LocaleFromURL infers an item's locale from its permalink: a leading path segment naming
// one of the known locales wins, anything else belongs to the default locale.
func LocaleFromURL(url string, knownLocales []string, defaultLocale string) string {
	trimmed := strings.TrimPrefix(url, "/")
	segment, _, _ := strings.Cut(trimmed, "/")
	if segment != "" && strings.Contains(trimmed, "/") {
		for _, known := range knownLocales {
			if SameLocale(segment, known) {
				return CanonicalLocale(known)
			}
		}
	}

	return CanonicalLocale(defaultLocale)
}
