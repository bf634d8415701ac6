package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// PlaygroundKeyMap defines keybindings for the interactive playground.
type PlaygroundKeyMap struct {
	CycleNext     key.Binding
	CyclePrev     key.Binding
	DragNext      key.Binding
	DragPrev      key.Binding
	RotateFwd     key.Binding
	RotateBack    key.Binding
	PrevWorkspace key.Binding
	NextWorkspace key.Binding
	Workspace     key.Binding
	MapClient     key.Binding
	RemoveClient  key.Binding
	MoveClient    key.Binding
	ToggleUrgent  key.Binding
	Filter        key.Binding
	Save          key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PlaygroundKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CycleNext, k.CyclePrev, k.MapClient, k.Filter, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k PlaygroundKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.CycleNext, k.CyclePrev, k.DragNext, k.DragPrev},
		{k.RotateFwd, k.RotateBack, k.PrevWorkspace, k.NextWorkspace, k.Workspace},
		{k.MapClient, k.RemoveClient, k.MoveClient, k.ToggleUrgent},
		{k.Filter, k.Save, k.Help, k.Quit},
	}
}

// DefaultPlaygroundKeyMap returns the default playground keybindings.
func DefaultPlaygroundKeyMap() PlaygroundKeyMap {
	return PlaygroundKeyMap{
		CycleNext: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j", "focus next"),
		),
		CyclePrev: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k", "focus prev"),
		),
		DragNext: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "drag down"),
		),
		DragPrev: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "drag up"),
		),
		RotateFwd: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rotate"),
		),
		RotateBack: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "rotate back"),
		),
		PrevWorkspace: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h", "prev workspace"),
		),
		NextWorkspace: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l", "next workspace"),
		),
		Workspace: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "focus workspace"),
		),
		MapClient: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "map window"),
		),
		RemoveClient: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close window"),
		),
		MoveClient: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "move to next workspace"),
		),
		ToggleUrgent: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "toggle urgent"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "fuzzy focus"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save snapshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Highlight)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Occupied)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Surface)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Highlight)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Surface)
	return h
}

// NewFilterInput creates the fuzzy-focus text input.
func NewFilterInput(theme *Theme) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "class or title..."
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Occupied)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Highlight)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Highlight)
	ti.Prompt = "/ "
	ti.CharLimit = 64
	return ti
}
