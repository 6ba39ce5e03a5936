package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/corkboard/internal/domain/build"
)

// AboutRenderer renders build info next to a small board logo.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

type aboutRow struct {
	icon  string
	key   string
	value string
}

// Render renders build info with the logo on the left.
func (r *AboutRenderer) Render(info build.Info) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, r.renderLogo(), "   ", r.renderRows(info))
}

func (r *AboutRenderer) renderLogo() string {
	paper := lipgloss.NewStyle().Foreground(r.theme.Warning)
	pin := lipgloss.NewStyle().Foreground(r.theme.Error).Bold(true)

	logo := strings.Join([]string{
		"  " + pin.Render("●"),
		paper.Render("▛▀▀▀▀▜"),
		paper.Render("▌ ≡≡ ▐"),
		paper.Render("▌ ≡  ▐"),
		paper.Render("▙▄▄▄▄▟"),
	}, "\n")
	return lipgloss.NewStyle().MarginTop(1).MarginLeft(2).Render(logo)
}

func (r *AboutRenderer) renderRows(info build.Info) string {
	rows := []aboutRow{
		{IconVersion, "Version", info.Version},
		{IconGitBranch, "Commit", info.Commit},
		{IconCalendar, "Built", info.BuildDate},
		{IconGo, "Go", info.GoVersion},
		{},
		{IconGithub, build.RepoURL(), ""},
		{IconHeart, "Made with love by", strings.Join(build.Contributors(), ", ")},
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	title := r.theme.Title.Render("corkboard")
	lines := []string{title, r.theme.Subtle.Render(strings.Repeat("─", lipgloss.Width(title)))}
	for _, row := range rows {
		if row.key == "" {
			lines = append(lines, "")
			continue
		}
		parts := []string{iconStyle.Render(row.icon), r.theme.Subtle.Render(row.key)}
		if row.value != "" {
			parts = append(parts, r.theme.Highlight.Render(row.value))
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n")
}
