package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// Glyphs drawn on notes.
const (
	glyphClose  = "×"
	glyphHandle = "◢"
	glyphGrip   = "≡"
	glyphPlay   = "▶"
	glyphPause  = "‖"
	glyphBarOn  = "━"
	glyphBarOff = "─"
)

// fit truncates or pads plain text to exactly width cells.
func fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if xansi.StringWidth(text) > width {
		text = xansi.Truncate(text, width, "…")
	}
	if n := xansi.StringWidth(text); n < width {
		text += strings.Repeat(" ", width-n)
	}
	return text
}

// line renders a row of the given width with overlays at fixed columns.
// Overlays are single cells; later ones win.
type overlay struct {
	col   int
	glyph string
	style lipgloss.Style
}

func line(fill lipgloss.Style, text string, width int, overlays ...overlay) string {
	cells := []rune(fit(text, width))
	var b strings.Builder
	start := 0
	for col := 0; col < width && col < len(cells); col++ {
		ov, ok := overlayAt(overlays, col)
		if !ok {
			continue
		}
		b.WriteString(fill.Render(string(cells[start:col])))
		b.WriteString(ov.style.Inherit(fill).Render(ov.glyph))
		start = col + 1
	}
	if start < len(cells) {
		b.WriteString(fill.Render(string(cells[start:])))
	}
	return b.String()
}

func overlayAt(overlays []overlay, col int) (overlay, bool) {
	found, ok := overlay{}, false
	for _, ov := range overlays {
		if ov.col == col {
			found, ok = ov, true
		}
	}
	return found, ok
}
