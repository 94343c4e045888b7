package display

import (
	"strings"

	"github.com/hammamikhairi/bistro/internal/domain"
)

// Separator sits between dishes in a plain menu listing.
const Separator = "-------------------"

// FormatDish returns the plain display text of a dish, one
// "Label: value" line per field.
func FormatDish(d domain.Dish) string {
	var b strings.Builder
	for _, det := range d.Details() {
		b.WriteString(det.Label)
		b.WriteString(": ")
		b.WriteString(det.Value)
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatMenu returns every dish's display text, separated by blank
// lines and framed by Separator.
func FormatMenu(dishes []domain.Dish) string {
	var b strings.Builder
	b.WriteString(Separator)
	b.WriteByte('\n')
	for i, d := range dishes {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(FormatDish(d))
	}
	b.WriteString(Separator)
	b.WriteByte('\n')
	return b.String()
}
