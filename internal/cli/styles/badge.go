package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ZoomBadge renders the board zoom level.
func (t *Theme) ZoomBadge(percent int) string {
	return t.Badge.Render(fmt.Sprintf("%s %d%%", IconZoom, percent))
}

// CountBadge renders a note count badge.
func (t *Theme) CountBadge(count int) string {
	text := fmt.Sprintf("%d notes", count)
	if count == 1 {
		text = "1 note"
	}
	return t.BadgeMuted.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// StatusBadge renders a status badge with custom colors.
func (t *Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return style.Render(text)
}
