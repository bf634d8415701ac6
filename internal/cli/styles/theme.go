// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/wring/internal/infrastructure/config"
)

// Theme holds lipgloss colors and styles derived from the color scheme.
//
// The scheme maps onto the playground the way a bar renderer would use it:
// background behind everything, foreground_1 for chrome, foreground_2 for
// occupied-but-unfocused markers, foreground_3 for text, highlight for the
// focused element and urgent for windows demanding attention.
type Theme struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Occupied   lipgloss.Color
	Text       lipgloss.Color
	Highlight  lipgloss.Color
	Urgent     lipgloss.Color

	// Text styles
	Title     lipgloss.Style
	Normal    lipgloss.Style
	Subtle    lipgloss.Style
	Accent    lipgloss.Style
	ErrorText lipgloss.Style

	// Workspace bar buttons
	FocusedWorkspace  lipgloss.Style
	OccupiedWorkspace lipgloss.Style
	EmptyWorkspace    lipgloss.Style
	UrgentWorkspace   lipgloss.Style

	// Client stack lines
	FocusedClient lipgloss.Style
	NormalClient  lipgloss.Style
	UrgentClient  lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	Box       lipgloss.Style
	StatusBar lipgloss.Style
}

// NewTheme creates a Theme from config, falling back to the stock scheme.
func NewTheme(cfg *config.Config) *Theme {
	var s config.ColorScheme
	if cfg != nil && cfg.Appearance.ColorScheme.Background != "" {
		s = cfg.Appearance.ColorScheme
	} else {
		s = config.DefaultConfig().Appearance.ColorScheme
	}

	return NewThemeFromScheme(s)
}

// NewThemeFromScheme creates a Theme from a ColorScheme.
func NewThemeFromScheme(s config.ColorScheme) *Theme {
	t := &Theme{
		Background: lipgloss.Color(s.Background),
		Surface:    lipgloss.Color(s.Foreground1),
		Occupied:   lipgloss.Color(s.Foreground2),
		Text:       lipgloss.Color(s.Foreground3),
		Highlight:  lipgloss.Color(s.Highlight),
		Urgent:     lipgloss.Color(s.Urgent),
	}

	t.buildStyles()
	return t
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Occupied)

	t.Accent = lipgloss.NewStyle().
		Foreground(t.Highlight).
		Bold(true)

	t.ErrorText = lipgloss.NewStyle().
		Foreground(t.Urgent)

	// Workspace bar
	t.FocusedWorkspace = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Highlight).
		Padding(0, 1).
		Bold(true)

	t.OccupiedWorkspace = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Occupied).
		Padding(0, 1)

	t.EmptyWorkspace = lipgloss.NewStyle().
		Foreground(t.Occupied).
		Background(t.Surface).
		Padding(0, 1)

	t.UrgentWorkspace = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Urgent).
		Padding(0, 1).
		Bold(true)

	// Client stack
	t.FocusedClient = lipgloss.NewStyle().
		Foreground(t.Highlight).
		Bold(true)

	t.NormalClient = lipgloss.NewStyle().
		Foreground(t.Text)

	t.UrgentClient = lipgloss.NewStyle().
		Foreground(t.Urgent).
		Bold(true)

	t.Badge = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Highlight).
		Padding(0, 1)

	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		Padding(0, 1)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Highlight)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Occupied)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Surface).
		Padding(1, 2)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		Padding(0, 1)
}
