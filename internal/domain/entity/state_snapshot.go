package entity

import (
	"fmt"
	"time"

	"github.com/bnema/wring/pkg/ring"
)

// StateSnapshotVersion is the current schema version for desktop state.
// Increment when making breaking changes to the serialization format.
const StateSnapshotVersion = 1

// StateSnapshot represents a complete snapshot of desktop state.
// This is serialized to JSON and stored in the database.
type StateSnapshot struct {
	Version          int                 `json:"version"`
	FocusedWorkspace int                 `json:"focused_workspace"`
	Workspaces       []WorkspaceSnapshot `json:"workspaces"`
	SavedAt          time.Time           `json:"saved_at"`
}

// WorkspaceSnapshot captures one workspace's client stack and focus.
type WorkspaceSnapshot struct {
	Name          string           `json:"name"`
	FocusedClient int              `json:"focused_client"`
	Clients       []ClientSnapshot `json:"clients"`
}

// ClientSnapshot captures the essential state of a client. The mapped
// flag is deliberately absent: whether a window still exists is only
// knowable from the display server at restore time.
type ClientSnapshot struct {
	ID       ClientID `json:"id"`
	Class    string   `json:"class,omitempty"`
	Title    string   `json:"title,omitempty"`
	Geometry Region   `json:"geometry,omitzero"`
	Floating bool     `json:"floating,omitempty"`
	Urgent   bool     `json:"urgent,omitempty"`
}

// SnapshotInfo summarizes a stored snapshot for listings.
type SnapshotInfo struct {
	ID             int64     `json:"id"`
	Label          string    `json:"label"`
	WorkspaceCount int       `json:"workspace_count"`
	ClientCount    int       `json:"client_count"`
	SavedAt        time.Time `json:"saved_at"`
}

// Summarize builds the listing info for this snapshot. The row id comes
// from the store.
func (s *StateSnapshot) Summarize(id int64, label string) SnapshotInfo {
	info := SnapshotInfo{ID: id, Label: label, SavedAt: s.SavedAt}
	info.WorkspaceCount = len(s.Workspaces)
	for _, ws := range s.Workspaces {
		info.ClientCount += len(ws.Clients)
	}
	return info
}

// SnapshotFromDesktop creates a StateSnapshot from a live desktop.
func SnapshotFromDesktop(d *Desktop) *StateSnapshot {
	snap := &StateSnapshot{
		Version: StateSnapshotVersion,
		SavedAt: time.Now(),
	}
	if d == nil {
		return snap
	}

	snap.FocusedWorkspace = d.FocusedWorkspaceIndex()
	snap.Workspaces = make([]WorkspaceSnapshot, 0, d.WorkspaceCount())
	for _, w := range d.workspaces.Elements() {
		ws := WorkspaceSnapshot{
			Name:          w.Name(),
			FocusedClient: w.FocusedIndex(),
			Clients:       make([]ClientSnapshot, 0, w.Len()),
		}
		for _, id := range w.ClientIDs() {
			cs := ClientSnapshot{ID: id}
			if c, ok := d.clients[id]; ok {
				cs.Class = c.Class
				cs.Title = c.Title
				cs.Geometry = c.Geometry
				cs.Floating = c.Floating
				cs.Urgent = c.Urgent
			}
			ws.Clients = append(ws.Clients, cs)
		}
		snap.Workspaces = append(snap.Workspaces, ws)
	}
	return snap
}

// DesktopFromSnapshot reconstructs a desktop from a snapshot. Restored
// clients come back unmapped; the embedder re-maps the windows that still
// exist.
func DesktopFromSnapshot(snap *StateSnapshot) (*Desktop, error) {
	if snap == nil || len(snap.Workspaces) == 0 {
		return nil, ErrNoWorkspaces
	}

	names := make([]string, 0, len(snap.Workspaces))
	for _, ws := range snap.Workspaces {
		names = append(names, ws.Name)
	}
	d, err := NewDesktop(names...)
	if err != nil {
		return nil, err
	}

	for i, ws := range snap.Workspaces {
		w, ok := d.workspaceAt(i)
		if !ok {
			return nil, fmt.Errorf("%w: index %d", ErrUnknownWorkspace, i)
		}
		for _, cs := range ws.Clients {
			if _, dup := d.clients[cs.ID]; dup {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateClient, cs.ID)
			}
			c := NewClient(cs.ID, cs.Class, cs.Title)
			c.Workspace = i
			c.Geometry = cs.Geometry
			c.Floating = cs.Floating
			c.Urgent = cs.Urgent
			d.clients[cs.ID] = c
			// Appending preserves the snapshot's stack order.
			w.AttachClient(cs.ID)
		}
		if len(ws.Clients) > 0 {
			w.FocusClient(ring.Index[ClientID](clampIndex(ws.FocusedClient, len(ws.Clients))))
		}
	}

	d.workspaces.Focus(ring.Index[*Workspace](clampIndex(snap.FocusedWorkspace, len(snap.Workspaces))))
	return d, nil
}

// Restore replaces the desktop's contents with the snapshot's. The
// receiver stays valid, so holders of the pointer see the restored state.
func (d *Desktop) Restore(snap *StateSnapshot) error {
	fresh, err := DesktopFromSnapshot(snap)
	if err != nil {
		return err
	}
	*d = *fresh
	return nil
}

// clampIndex bounds i to [0, n).
func clampIndex(i, n int) int {
	if i < 0 || n == 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
