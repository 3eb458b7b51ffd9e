package engine

import (
	"fmt"

	"github.com/tartampluch/go-age/internal/config"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numberLocale = language.MustParse(config.NumberLocale)

// FormatCount renders n with en-US thousands grouping ("214,368").
func FormatCount(n int) string {
	return message.NewPrinter(numberLocale).Sprintf("%d", n)
}

// Subtitle renders the months and days remainder ("5 months and 14 days").
func (r AgeResult) Subtitle() string {
	return fmt.Sprintf(config.FormatSubtitle, r.Months, r.Days)
}
