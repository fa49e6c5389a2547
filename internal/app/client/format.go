package client

import (
	"github.com/HoangNobi25/thuchi/internal/model"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var czech = message.NewPrinter(language.Czech)

// FormatCZK formats an amount the way cs-CZ shows koruna: "1 234,50 Kč".
func FormatCZK(a model.Amount) string {
	return czech.Sprintf("%.2f Kč", a.Round(2).InexactFloat64())
}
