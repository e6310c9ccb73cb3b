// Package translate localizes the user-visible strings of the simulator.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("docore: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From formats a message for the user's locale. The key is the en-US
// Sprintf() format used throughout the simulator.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
