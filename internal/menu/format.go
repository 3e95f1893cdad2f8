package menu

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var viPrinter = message.NewPrinter(language.Vietnamese)

// FormatVND renders a price with Vietnamese digit grouping,
// e.g. 25000 -> "25.000₫".
func FormatVND(price float64) string {
	return viPrinter.Sprintf("%d", int64(math.Round(price))) + "₫"
}
