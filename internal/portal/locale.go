package portal

import "golang.org/x/text/language"

const DefaultLocale = "uz"

// Locales are the site languages in URL form. "kr" is the Cyrillic script
// variant of Uzbek.
var Locales = []string{"uz", "kr"}

var localeMatcher = language.NewMatcher([]language.Tag{
	language.MustParse("uz-Latn"),
	language.MustParse("uz-Cyrl"),
	language.Russian,
})

func IsLocale(s string) bool {
	for _, l := range Locales {
		if l == s {
			return true
		}
	}
	return false
}

// NegotiateLocale picks a site locale from an Accept-Language header.
// Cyrillic Uzbek and Russian readers get "kr".
func NegotiateLocale(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}

	_, idx, conf := localeMatcher.Match(tags...)
	if conf == language.No {
		return DefaultLocale
	}
	if idx == 0 {
		return "uz"
	}
	return "kr"
}
