// Package translate renders user-visible messages in the user's locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer     *message.Printer
	printerOnce sync.Once
)

// supported lists the catalogs registered in catalog.go, en-US first.
var supported = []language.Tag{
	language.AmericanEnglish,
	language.Russian,
}

func setup() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("ucode: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = For(locales...)
}

// For returns a printer for the best catalog match of the given BCP 47
// locale names.
func For(locales ...string) *message.Printer {
	matcher := language.NewMatcher(supported)
	_, index := language.MatchStrings(matcher, locales...)
	return message.NewPrinter(supported[index])
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	printerOnce.Do(setup)
	return printer.Sprintf(key, args...)
}
