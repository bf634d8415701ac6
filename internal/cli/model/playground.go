// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/wring/internal/application/usecase"
	"github.com/bnema/wring/internal/cli/styles"
	"github.com/bnema/wring/internal/domain/entity"
	"github.com/bnema/wring/internal/infrastructure/config"
	"github.com/bnema/wring/internal/logging"
	"github.com/bnema/wring/pkg/ring"
)

// syntheticWindows is the bank of fake windows the n key maps, cycled in
// order. The classes line up with the stock floating_classes so floating
// detection is visible in the demo.
var syntheticWindows = []struct{ class, title string }{
	{"firefox", "Mozilla Firefox"},
	{"kitty", "~/src/wring"},
	{"emacs", "ring.go"},
	{"mpv", "talk.mkv"},
	{"signal", "Signal"},
	{"dunst", "notification"},
}

// PlaygroundModel is the Bubble Tea model for the interactive playground.
type PlaygroundModel struct {
	// UI components
	help   help.Model
	keys   styles.PlaygroundKeyMap
	filter textinput.Model

	// State
	filtering bool
	status    string
	nextID    uint32
	width     int
	height    int

	floatingClasses []string

	// Dependencies
	desktop      *entity.Desktop
	clientsUC    *usecase.ManageClientsUseCase
	workspacesUC *usecase.ManageWorkspacesUseCase
	searchUC     *usecase.SearchClientsUseCase
	snapshotUC   *usecase.SnapshotStateUseCase // nil when no store is wired
	maxSnapshots int

	ctx   context.Context
	theme *styles.Theme
}

// PlaygroundConfig holds dependencies for the playground model.
type PlaygroundConfig struct {
	Desktop         *entity.Desktop
	ClientsUC       *usecase.ManageClientsUseCase
	WorkspacesUC    *usecase.ManageWorkspacesUseCase
	SearchUC        *usecase.SearchClientsUseCase
	SnapshotUC      *usecase.SnapshotStateUseCase
	FloatingClasses []string
	MaxSnapshots    int // autosaves beyond this count are pruned; 0 keeps all
}

// NewPlaygroundModel creates a new playground model.
func NewPlaygroundModel(ctx context.Context, theme *styles.Theme, cfg PlaygroundConfig) PlaygroundModel {
	filter := styles.NewFilterInput(theme)

	var maxID uint32
	for _, c := range cfg.Desktop.Clients() {
		if uint32(c.ID) > maxID {
			maxID = uint32(c.ID)
		}
	}

	return PlaygroundModel{
		help:            styles.NewStyledHelp(theme),
		keys:            styles.DefaultPlaygroundKeyMap(),
		filter:          filter,
		nextID:          maxID + 1,
		width:           80,
		height:          24,
		floatingClasses: cfg.FloatingClasses,
		desktop:         cfg.Desktop,
		clientsUC:       cfg.ClientsUC,
		workspacesUC:    cfg.WorkspacesUC,
		searchUC:        cfg.SearchUC,
		snapshotUC:      cfg.SnapshotUC,
		maxSnapshots:    cfg.MaxSnapshots,
		ctx:             ctx,
		theme:           theme,
	}
}

// ConfigReloadedMsg re-themes the playground after a config change. The
// demo command sends it from the config watcher callback.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// AutosaveTickMsg asks the model to write an autosave snapshot. The demo
// command sends one per autosave interval. The save itself runs inside
// Update; the desktop is not safe to touch from other goroutines.
type AutosaveTickMsg struct{}

// AutosaveLabel is the label autosave ticks write to, overwritten on
// each tick. Manual saves get timestamped labels instead.
const AutosaveLabel = "autosave"

// Init implements tea.Model.
func (m PlaygroundModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m PlaygroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKey(msg)
		}
		return m.handleKeyMsg(msg)

	case ConfigReloadedMsg:
		m.theme = styles.NewTheme(msg.Config)
		m.help = styles.NewStyledHelp(m.theme)
		m.floatingClasses = msg.Config.FloatingClasses
		value := m.filter.Value()
		m.filter = styles.NewFilterInput(m.theme)
		m.filter.SetValue(value)
		if m.filtering {
			m.filter.Focus()
		}
		m.status = "config reloaded"
		return m, nil

	case AutosaveTickMsg:
		return m.autosave(), nil
	}

	return m, nil
}

func (m PlaygroundModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filter.Reset()
		m.filter.Blur()
		return m, nil

	case "enter":
		query := m.filter.Value()
		m.filtering = false
		m.filter.Reset()
		m.filter.Blur()
		return m.applyFilter(query), nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

// applyFilter focuses the best fuzzy match for query.
func (m PlaygroundModel) applyFilter(query string) PlaygroundModel {
	if strings.TrimSpace(query) == "" {
		return m
	}
	match, ok := m.searchUC.Best(m.ctx, query)
	if !ok {
		m.status = fmt.Sprintf("no window matches %q", query)
		return m
	}
	if _, ok := m.clientsUC.Focus(m.ctx, match.ID); ok {
		m.status = fmt.Sprintf("focused %s (%s)", match.ID, match.Class)
	}
	return m
}

func (m PlaygroundModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filter.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.CycleNext):
		if c, ok := m.clientsUC.CycleFocus(m.ctx, ring.Forward); ok {
			m.status = fmt.Sprintf("focused %s", c.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.CyclePrev):
		if c, ok := m.clientsUC.CycleFocus(m.ctx, ring.Backward); ok {
			m.status = fmt.Sprintf("focused %s", c.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.DragNext):
		if c, ok := m.clientsUC.Drag(m.ctx, ring.Forward); ok {
			m.status = fmt.Sprintf("dragged %s down", c.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.DragPrev):
		if c, ok := m.clientsUC.Drag(m.ctx, ring.Backward); ok {
			m.status = fmt.Sprintf("dragged %s up", c.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.RotateFwd):
		m.clientsUC.Rotate(m.ctx, ring.Forward)
		m.status = "rotated stack"
		return m, nil

	case key.Matches(msg, m.keys.RotateBack):
		m.clientsUC.Rotate(m.ctx, ring.Backward)
		m.status = "rotated stack back"
		return m, nil

	case key.Matches(msg, m.keys.PrevWorkspace):
		if w, ok := m.workspacesUC.Cycle(m.ctx, ring.Backward); ok {
			m.status = fmt.Sprintf("workspace %s", w.Name())
		}
		return m, nil

	case key.Matches(msg, m.keys.NextWorkspace):
		if w, ok := m.workspacesUC.Cycle(m.ctx, ring.Forward); ok {
			m.status = fmt.Sprintf("workspace %s", w.Name())
		}
		return m, nil

	case key.Matches(msg, m.keys.Workspace):
		index, err := strconv.Atoi(msg.String())
		if err != nil {
			return m, nil
		}
		if w, ok := m.workspacesUC.Focus(m.ctx, ring.Index[*entity.Workspace](index-1)); ok {
			m.status = fmt.Sprintf("workspace %s", w.Name())
		}
		return m, nil

	case key.Matches(msg, m.keys.MapClient):
		return m.mapSyntheticWindow(), nil

	case key.Matches(msg, m.keys.RemoveClient):
		if c, ok := m.clientsUC.Remove(m.ctx, ring.Focused[entity.ClientID]()); ok {
			m.status = fmt.Sprintf("closed %s", c.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.MoveClient):
		return m.moveFocusedToNextWorkspace(), nil

	case key.Matches(msg, m.keys.ToggleUrgent):
		if c, ok := m.desktop.FocusedClient(); ok {
			m.clientsUC.SetUrgent(m.ctx, c.ID, !c.Urgent)
			m.status = fmt.Sprintf("urgent %v on %s", c.Urgent, c.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Save):
		return m.saveSnapshot(), nil
	}

	return m, nil
}

// mapSyntheticWindow fakes a map request the way a WM would receive one.
// Floating windows arrive with a staggered position.
func (m PlaygroundModel) mapSyntheticWindow() PlaygroundModel {
	win := syntheticWindows[int(m.nextID)%len(syntheticWindows)]
	floating := m.isFloatingClass(win.class)
	var geo entity.Region
	if floating {
		step := m.nextID % 8
		geo = entity.NewRegion(64+32*step, 48+24*step, 480, 320)
	}
	c, err := m.clientsUC.Map(m.ctx, usecase.MapClientInput{
		ID:       entity.ClientID(m.nextID),
		Class:    win.class,
		Title:    win.title,
		Geometry: geo,
		Floating: floating,
	})
	if err != nil {
		m.status = fmt.Sprintf("map failed: %v", err)
		return m
	}
	m.nextID++
	m.status = fmt.Sprintf("mapped %s (%s)", c.ID, c.Class)
	return m
}

func (m PlaygroundModel) isFloatingClass(class string) bool {
	for _, fc := range m.floatingClasses {
		if strings.EqualFold(fc, class) {
			return true
		}
	}
	return false
}

func (m PlaygroundModel) moveFocusedToNextWorkspace() PlaygroundModel {
	c, ok := m.desktop.FocusedClient()
	if !ok {
		return m
	}
	target := (m.desktop.FocusedWorkspaceIndex() + 1) % m.desktop.WorkspaceCount()
	if err := m.clientsUC.MoveToWorkspace(m.ctx, c.ID, target); err != nil {
		m.status = fmt.Sprintf("move failed: %v", err)
		return m
	}
	m.status = fmt.Sprintf("moved %s to workspace %d", c.ID, target+1)
	return m
}

func (m PlaygroundModel) saveSnapshot() PlaygroundModel {
	if m.snapshotUC == nil {
		m.status = "no snapshot store available"
		return m
	}
	label := "demo-" + time.Now().Format("20060102-150405")
	if _, err := m.snapshotUC.Save(m.ctx, label); err != nil {
		logging.FromContext(m.ctx).Error().Err(err).Msg("manual snapshot failed")
		m.status = fmt.Sprintf("save failed: %v", err)
		return m
	}
	m.status = fmt.Sprintf("snapshot %q saved", label)
	return m
}

// autosave overwrites the autosave snapshot and trims the store down to
// the configured retention.
func (m PlaygroundModel) autosave() PlaygroundModel {
	if m.snapshotUC == nil {
		return m
	}
	log := logging.FromContext(m.ctx)
	if _, err := m.snapshotUC.Save(m.ctx, AutosaveLabel); err != nil {
		log.Error().Err(err).Msg("autosave failed")
		m.status = fmt.Sprintf("autosave failed: %v", err)
		return m
	}
	if m.maxSnapshots > 0 {
		if _, err := m.snapshotUC.Prune(m.ctx, m.maxSnapshots); err != nil {
			log.Warn().Err(err).Msg("snapshot prune failed")
		}
	}
	return m
}

// Status returns the current status line, for tests and the demo command.
func (m PlaygroundModel) Status() string {
	return m.status
}

// View implements tea.Model.
func (m PlaygroundModel) View() string {
	t := m.theme
	var b strings.Builder

	title := t.Accent.Render(styles.IconWorkspace) + t.Title.MarginLeft(1).Render("wring playground")
	b.WriteString(title)
	b.WriteString("\n\n")

	b.WriteString(m.renderWorkspaceBar())
	b.WriteString("\n\n")

	b.WriteString(m.renderStack())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(t.StatusBar.Render(m.status))
		b.WriteString("\n")
	}

	if m.filtering {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// renderWorkspaceBar draws one button per workspace the way a WM bar would.
func (m PlaygroundModel) renderWorkspaceBar() string {
	t := m.theme
	focused := m.desktop.FocusedWorkspaceIndex()

	parts := make([]string, 0, m.desktop.WorkspaceCount())
	for i, w := range m.desktop.Workspaces() {
		style := t.EmptyWorkspace
		switch {
		case i == focused:
			style = t.FocusedWorkspace
		case m.workspaceHasUrgent(w):
			style = t.UrgentWorkspace
		case w.Len() > 0:
			style = t.OccupiedWorkspace
		}
		parts = append(parts, style.Render(w.Name()))
	}
	return strings.Join(parts, " ")
}

func (m PlaygroundModel) workspaceHasUrgent(w *entity.Workspace) bool {
	for _, id := range w.ClientIDs() {
		if c, ok := m.desktop.Client(id); ok && c.Urgent {
			return true
		}
	}
	return false
}

// renderStack draws the focused workspace's client stack, top first.
func (m PlaygroundModel) renderStack() string {
	t := m.theme
	w := m.desktop.FocusedWorkspace()

	if w.Len() == 0 {
		return t.Subtle.Render("  no windows here. press n to map one.")
	}

	var b strings.Builder
	focusedIndex := w.FocusedIndex()
	for i, id := range w.ClientIDs() {
		c, ok := m.desktop.Client(id)
		if !ok {
			continue
		}

		focused := i == focusedIndex
		cursor := "  "
		if focused {
			cursor = t.Accent.Render(styles.IconCursor) + " "
		}

		style := t.NormalClient
		switch c.Border(focused) {
		case entity.BorderUrgent:
			style = t.UrgentClient
		case entity.BorderFocused:
			style = t.FocusedClient
		}

		marks := ""
		if c.Floating {
			marks += " " + t.Subtle.Render(styles.IconFloating)
			if !c.Geometry.IsZero() {
				marks += " " + t.Subtle.Render(c.Geometry.String())
			}
		}
		if c.Urgent {
			marks += " " + t.ErrorText.Render(styles.IconUrgent)
		}

		line := fmt.Sprintf("%s%s  %-10s %s%s",
			cursor,
			style.Render(c.ID.String()),
			style.Render(c.Class),
			t.Subtle.Render(c.Title),
			marks,
		)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Ensure interface compliance at compile time.
var _ tea.Model = (*PlaygroundModel)(nil)
