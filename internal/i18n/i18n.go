// Package i18n holds the message catalog for user-facing texts. Message keys
// are the English texts; Spanish is the default locale of the backoffice.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// DefaultLocale is used when LOCALE is empty or unsupported.
var DefaultLocale = language.Spanish

var (
	supported = []language.Tag{language.Spanish, language.English}
	matcher   = language.NewMatcher(supported)
	cat       = buildCatalog()
)

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, e := range spanish {
		if err := b.SetString(language.Spanish, e.key, e.msg); err != nil {
			panic(err)
		}
	}
	return b
}

// Tag resolves a locale string such as "es", "es-AR" or "en-US" to one of
// the supported tags.
func Tag(locale string) language.Tag {
	if locale == "" {
		return DefaultLocale
	}
	desired, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(desired) == 0 {
		return DefaultLocale
	}
	_, idx, conf := matcher.Match(desired...)
	if conf == language.No {
		return DefaultLocale
	}
	return supported[idx]
}

// Printer returns a printer for the given locale backed by the catalog.
func Printer(locale string) *message.Printer {
	return message.NewPrinter(Tag(locale), message.Catalog(cat))
}
