package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/bistro/internal/domain"
)

// ── Output styles (soft palette) ─────────────────────────────────

var (
	// BannerStyle: muted slate for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// Dish name: soft mint.
	dishNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)

	// Field labels: dimmed zinc.
	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	// Field values: light zinc.
	fieldValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	// Report headings and totals: soft sky blue.
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd")).
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#52525b")).
			Padding(0, 1)
)

// kindBadge colours the variant tag on a dish card.
var kindBadge = map[domain.Kind]lipgloss.Style{
	domain.KindAppetizer:  lipgloss.NewStyle().Foreground(lipgloss.Color("#fde68a")),
	domain.KindMainCourse: lipgloss.NewStyle().Foreground(lipgloss.Color("#fca5a5")),
	domain.KindDessert:    lipgloss.NewStyle().Foreground(lipgloss.Color("#f5d0fe")),
}

// RenderDish renders a dish as a bordered card for the terminal.
func RenderDish(d domain.Dish) string {
	details := d.Details()
	width := 0
	for _, det := range details {
		width = max(width, len(det.Label))
	}

	var lines []string
	header := dishNameStyle.Render(d.Common().Name) + "  " + kindBadge[d.Kind()].Render(d.Kind().String())
	lines = append(lines, header)
	for _, det := range details[1:] {
		label := fmt.Sprintf("%-*s", width, det.Label)
		lines = append(lines, fieldLabelStyle.Render(label)+"  "+fieldValueStyle.Render(det.Value))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

// RenderMenu renders every dish card, or a hint when there are none.
func RenderMenu(dishes []domain.Dish) string {
	if len(dishes) == 0 {
		return fieldLabelStyle.Render("  (the kitchen is empty)")
	}
	cards := make([]string, len(dishes))
	for i, d := range dishes {
		cards[i] = RenderDish(d)
	}
	return strings.Join(cards, "\n")
}

// RenderReport styles the plain report text: tallies dimmed, the two
// summary lines highlighted.
func RenderReport(report string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(report, "\n"), "\n") {
		switch {
		case line == "":
		case strings.HasPrefix(line, "AVERAGE"), strings.HasPrefix(line, "ELABORATE"):
			b.WriteString(headingStyle.Render(line))
		default:
			name, count, _ := strings.Cut(line, ": ")
			b.WriteString(fieldLabelStyle.Render(fmt.Sprintf("%-9s", name+":")) + " " + fieldValueStyle.Render(count))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
