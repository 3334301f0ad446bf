package templates

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Localizer provides translated strings for template filters.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T returns a translated string or a key-derived fallback.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	if keyString, ok := key.(string); ok {
		if len(args) > 0 {
			return fmt.Sprintf(keyString, args...)
		}
		return keyString
	}
	return ""
}

// DefaultLanguage is used when no supported language matches a request.
var DefaultLanguage = language.AmericanEnglish

var supportedLanguages = []language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
}

var (
	defaultCatalog = mustBuildCatalog()
	languageMatch  = language.NewMatcher(supportedLanguages)
)

// Supported returns the languages the filter catalog translates.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supportedLanguages...)
}

// NewLocalizer returns a printer for tag backed by the filter catalog.
func NewLocalizer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(defaultCatalog))
}

// DefaultLocalizer returns the printer for DefaultLanguage.
func DefaultLocalizer() *message.Printer {
	return NewLocalizer(DefaultLanguage)
}

// MatchLanguage picks the best supported language for an Accept-Language
// header value, falling back to DefaultLanguage.
func MatchLanguage(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}
	_, index, confidence := languageMatch.Match(tags...)
	if confidence == language.No {
		return DefaultLanguage
	}
	return supportedLanguages[index]
}

func mustBuildCatalog() catalog.Catalog {
	cat, err := buildCatalog()
	if err != nil {
		panic(fmt.Sprintf("build filter catalog: %v", err))
	}
	return cat
}
