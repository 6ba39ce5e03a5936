package canvas

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// Layer is a rendered block placed at a terminal cell. Col and Row may be
// negative or past the viewport; the block is clipped.
type Layer struct {
	Col, Row int
	Content  string
}

// Compose paints layers onto a blank width x height viewport in order, so
// later layers cover earlier ones.
func Compose(width, height int, layers []Layer) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	blank := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = blank
	}
	for _, l := range layers {
		paint(lines, width, l)
	}
	return strings.Join(lines, "\n")
}

func paint(lines []string, width int, l Layer) {
	fgLines := strings.Split(l.Content, "\n")
	fgW := 0
	for _, ln := range fgLines {
		if n := xansi.StringWidth(ln); n > fgW {
			fgW = n
		}
	}
	if fgW == 0 || l.Col >= width || l.Col+fgW <= 0 {
		return
	}

	// Visible horizontal slice of the block.
	skip := max(0, -l.Col)
	x := max(0, l.Col)
	visW := min(fgW-skip, width-x)

	for i, fgLine := range fgLines {
		y := l.Row + i
		if y < 0 {
			continue
		}
		if y >= len(lines) {
			break
		}
		if n := xansi.StringWidth(fgLine); n < fgW {
			fgLine += strings.Repeat(" ", fgW-n)
		}
		fgLine = xansi.Cut(fgLine, skip, skip+visW)

		bg := lines[y]
		lines[y] = xansi.Cut(bg, 0, x) + fgLine + xansi.Cut(bg, x+visW, width)
	}
}
