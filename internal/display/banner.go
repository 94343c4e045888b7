package display

import (
	_ "embed"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
)

//go:embed banner.txt
var bannerRaw string

// Tagline is printed under the banner art.
const Tagline = "a kitchen for appetizers, main courses and desserts"

// RenderBanner returns the banner art and tagline centred for the
// current terminal width.
func RenderBanner() string {
	lines := strings.Split(strings.TrimRight(bannerRaw, "\n"), "\n")
	lines = append(lines, "", Tagline)
	return centre(lines, termWidth())
}

// centre pads every line so the block sits in the middle of width
// columns. Lines keep their relative alignment.
func centre(lines []string, width int) string {
	block := 0
	for _, l := range lines {
		block = max(block, len(l))
	}

	pad := ""
	if width > block {
		pad = strings.Repeat(" ", (width-block)/2)
	}

	var b strings.Builder
	for _, l := range lines {
		if l != "" {
			b.WriteString(pad)
			b.WriteString(BannerStyle.Render(l))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// termWidth returns the current terminal column count, or 80 as fallback.
func termWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
