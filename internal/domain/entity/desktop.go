package entity

import (
	"errors"
	"fmt"

	"github.com/bnema/wring/pkg/ring"
)

var (
	// ErrNoWorkspaces is returned when a desktop would have no workspaces.
	ErrNoWorkspaces = errors.New("desktop: at least one workspace is required")
	// ErrDuplicateClient is returned when mapping an already managed id.
	ErrDuplicateClient = errors.New("desktop: client already managed")
	// ErrUnknownClient is returned for operations on unmanaged ids.
	ErrUnknownClient = errors.New("desktop: unknown client")
	// ErrUnknownWorkspace is returned for out-of-range workspace indices.
	ErrUnknownWorkspace = errors.New("desktop: unknown workspace")
)

// Desktop is the aggregate a window manager drives: a ring of workspaces
// plus the clients distributed across them. All state changes go through
// it so order, focus and the client index stay consistent.
//
// Desktop is not safe for concurrent use; the embedding event loop owns
// serialization.
type Desktop struct {
	workspaces *ring.Ring[*Workspace]
	clients    map[ClientID]*Client
}

// NewDesktop creates a desktop with the given workspace names, focused on
// the first workspace. At least one name is required.
func NewDesktop(workspaceNames ...string) (*Desktop, error) {
	if len(workspaceNames) == 0 {
		return nil, ErrNoWorkspaces
	}
	workspaces := make([]*Workspace, 0, len(workspaceNames))
	for _, name := range workspaceNames {
		workspaces = append(workspaces, NewWorkspace(name))
	}
	return &Desktop{
		workspaces: ring.New(workspaces...),
		clients:    make(map[ClientID]*Client),
	}, nil
}

// resolveWorkspace maps external-id selections to the workspace containing
// that client.
func (d *Desktop) resolveWorkspace(s ring.Selector[*Workspace]) ring.Selector[*Workspace] {
	return s.Resolve(func(id uint64) func(*Workspace) bool {
		return func(w *Workspace) bool { return w.Contains(ClientID(id)) }
	})
}

func (d *Desktop) workspaceAt(index int) (*Workspace, bool) {
	return d.workspaces.Element(ring.Index[*Workspace](index))
}

// WorkspaceCount returns the number of workspaces.
func (d *Desktop) WorkspaceCount() int {
	return d.workspaces.Len()
}

// WorkspaceNames returns the workspace names in ring order.
func (d *Desktop) WorkspaceNames() []string {
	names := make([]string, 0, d.workspaces.Len())
	for _, w := range d.workspaces.Elements() {
		names = append(names, w.Name())
	}
	return names
}

// Workspaces returns the workspaces in ring order.
func (d *Desktop) Workspaces() []*Workspace {
	return d.workspaces.Elements()
}

// Workspace returns the workspace matched by s. External-id selections
// resolve to the workspace containing that client.
func (d *Desktop) Workspace(s ring.Selector[*Workspace]) (*Workspace, bool) {
	return d.workspaces.Element(d.resolveWorkspace(s))
}

// FocusedWorkspace returns the workspace holding the focus. A desktop
// always has at least one workspace, so this never returns nil.
func (d *Desktop) FocusedWorkspace() *Workspace {
	w, _ := d.workspaces.Focused()
	return w
}

// FocusedWorkspaceIndex returns the position of the focused workspace.
func (d *Desktop) FocusedWorkspaceIndex() int {
	return d.workspaces.FocusedIndex()
}

// FocusWorkspace moves the workspace focus and returns the newly focused
// workspace. When nothing matches the focus stays put.
func (d *Desktop) FocusWorkspace(s ring.Selector[*Workspace]) (*Workspace, bool) {
	return d.workspaces.Focus(d.resolveWorkspace(s))
}

// CycleWorkspace moves the workspace focus one step, wrapping at the ends.
func (d *Desktop) CycleWorkspace(dir ring.Direction) (*Workspace, bool) {
	return d.workspaces.CycleFocus(dir)
}

// Client returns the managed client with the given id.
func (d *Desktop) Client(id ClientID) (*Client, bool) {
	c, ok := d.clients[id]
	return c, ok
}

// ClientCount returns the number of managed clients.
func (d *Desktop) ClientCount() int {
	return len(d.clients)
}

// Clients returns all managed clients in workspace order then stack order.
func (d *Desktop) Clients() []*Client {
	out := make([]*Client, 0, len(d.clients))
	for _, w := range d.workspaces.Elements() {
		for _, id := range w.ClientIDs() {
			if c, ok := d.clients[id]; ok {
				out = append(out, c)
			}
		}
	}
	return out
}

// FocusedClient returns the focused client of the focused workspace.
func (d *Desktop) FocusedClient() (*Client, bool) {
	id, ok := d.FocusedWorkspace().FocusedClient()
	if !ok {
		return nil, false
	}
	c, ok := d.clients[id]
	return c, ok
}

// MapClient starts managing c: it joins the focused workspace at the top
// of the stack and takes focus.
func (d *Desktop) MapClient(c *Client) error {
	if _, exists := d.clients[c.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateClient, c.ID)
	}
	c.Workspace = d.workspaces.FocusedIndex()
	c.Mapped = true
	d.clients[c.ID] = c
	d.FocusedWorkspace().AddClient(c.ID)
	return nil
}

// RemoveClient stops managing the client matched by s and returns it.
// Focused, index and condition selections search the focused workspace;
// external-id selections search the whole desktop.
func (d *Desktop) RemoveClient(s ring.Selector[ClientID]) (*Client, bool) {
	if rawID, isExternal := s.ID(); isExternal {
		id := ClientID(rawID)
		c, exists := d.clients[id]
		if !exists {
			return nil, false
		}
		if w, ok := d.workspaceAt(c.Workspace); ok {
			w.RemoveClient(s)
		}
		delete(d.clients, id)
		c.Mapped = false
		return c, true
	}

	id, ok := d.FocusedWorkspace().RemoveClient(s)
	if !ok {
		return nil, false
	}
	c, exists := d.clients[id]
	delete(d.clients, id)
	if !exists {
		return nil, false
	}
	c.Mapped = false
	return c, true
}

// FocusClient gives the client the focus, switching the workspace focus
// first when it lives on another workspace.
func (d *Desktop) FocusClient(id ClientID) (*Client, bool) {
	c, ok := d.clients[id]
	if !ok {
		return nil, false
	}
	if c.Workspace != d.workspaces.FocusedIndex() {
		if _, ok := d.workspaces.Focus(ring.Index[*Workspace](c.Workspace)); !ok {
			return nil, false
		}
	}
	if _, ok := d.FocusedWorkspace().FocusClient(ring.ExternalID[ClientID](uint64(id))); !ok {
		return nil, false
	}
	return c, true
}

// MoveClientToWorkspace reattaches the client to the workspace at target.
// The workspace focus does not follow; the client lands at the bottom of
// the target stack without stealing its focus.
func (d *Desktop) MoveClientToWorkspace(id ClientID, target int) error {
	c, ok := d.clients[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownClient, id)
	}
	dst, ok := d.workspaceAt(target)
	if !ok {
		return fmt.Errorf("%w: index %d", ErrUnknownWorkspace, target)
	}
	if c.Workspace == target {
		return nil
	}
	if src, ok := d.workspaceAt(c.Workspace); ok {
		src.RemoveClient(ring.ExternalID[ClientID](uint64(id)))
	}
	dst.AttachClient(id)
	c.Workspace = target
	return nil
}

// CycleClient moves the client focus one step on the focused workspace.
func (d *Desktop) CycleClient(dir ring.Direction) (*Client, bool) {
	id, ok := d.FocusedWorkspace().CycleClient(dir)
	if !ok {
		return nil, false
	}
	c, ok := d.clients[id]
	return c, ok
}

// DragClient moves the focused client one step through its stack.
func (d *Desktop) DragClient(dir ring.Direction) (*Client, bool) {
	id, ok := d.FocusedWorkspace().DragClient(dir)
	if !ok {
		return nil, false
	}
	c, ok := d.clients[id]
	return c, ok
}

// RotateClients permutes the focused workspace's stack under a fixed
// focus position.
func (d *Desktop) RotateClients(dir ring.Direction) {
	d.FocusedWorkspace().RotateClients(dir)
}
