package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/wring/internal/domain/build"
)

// AboutRenderer lays out build info next to the logo, fastfetch style.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a renderer drawing with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render returns the logo column and the info column joined side by
// side.
func (r *AboutRenderer) Render(info build.Info) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, r.logo(), "   ", r.details(info))
}

func (r *AboutRenderer) logo() string {
	style := lipgloss.NewStyle().Foreground(r.theme.Highlight).Bold(true)

	// Block-character W
	art := `██   ██
██   ██
██ █ ██
███ ███
██▀ ▀██`

	return style.MarginTop(1).MarginLeft(2).Render(art)
}

func (r *AboutRenderer) details(info build.Info) string {
	rows := []string{
		r.row(IconVersion, "Version", info.Version),
		r.row(IconGitBranch, "Commit", info.Commit),
		r.row(IconCalendar, "Built", info.BuildDate),
		r.row(IconGo, "Go", info.GoVersion),
		"",
		r.theme.Accent.Render(IconGithub) + " " + r.theme.Subtle.Render(build.RepoURL()),
		r.row(IconHeart, "Made with love by", strings.Join(build.Contributors(), ", ")),
	}
	return strings.Join(rows, "\n")
}

func (r *AboutRenderer) row(icon, key, val string) string {
	return r.theme.Accent.Render(icon) + " " + r.theme.Subtle.Render(key) + " " + r.theme.Normal.Render(val)
}
