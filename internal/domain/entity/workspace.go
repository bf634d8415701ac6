package entity

import "github.com/bnema/wring/pkg/ring"

// Workspace is a named, ordered stack of clients with one focused client.
//
// It wraps a client-id ring and is the layer where external-id selectors
// gain meaning: every selector passes through Resolve before reaching the
// ring, turning a window handle into an id equality predicate. Callers can
// therefore select clients by handle, position, predicate or current focus
// with the same Selector type.
type Workspace struct {
	name    string
	clients *ring.Ring[ClientID]
}

// NewWorkspace creates an empty workspace.
func NewWorkspace(name string) *Workspace {
	return &Workspace{name: name, clients: ring.New[ClientID]()}
}

// resolve translates external-id selections into id equality predicates.
func (w *Workspace) resolve(s ring.Selector[ClientID]) ring.Selector[ClientID] {
	return s.Resolve(func(id uint64) func(ClientID) bool {
		return func(c ClientID) bool { return uint64(c) == id }
	})
}

// Name returns the workspace name.
func (w *Workspace) Name() string {
	return w.name
}

// SetName renames the workspace.
func (w *Workspace) SetName(name string) {
	w.name = name
}

// Len returns the number of clients on the workspace.
func (w *Workspace) Len() int {
	return w.clients.Len()
}

// ClientIDs returns the client ids in stack order.
func (w *Workspace) ClientIDs() []ClientID {
	return w.clients.Elements()
}

// Contains reports whether the workspace holds the given client.
func (w *Workspace) Contains(id ClientID) bool {
	_, ok := w.Client(ring.ExternalID[ClientID](uint64(id)))
	return ok
}

// FocusedClient returns the focused client id.
func (w *Workspace) FocusedClient() (ClientID, bool) {
	return w.clients.Focused()
}

// FocusedIndex returns the focus position in the stack.
func (w *Workspace) FocusedIndex() int {
	return w.clients.FocusedIndex()
}

// AddClient pushes id onto the top of the stack and focuses it.
func (w *Workspace) AddClient(id ClientID) {
	w.clients.Insert(0, id)
	w.clients.Focus(ring.Index[ClientID](0))
}

// AttachClient appends id to the bottom of the stack without moving
// focus. Used when moving clients between workspaces and when restoring
// saved state.
func (w *Workspace) AttachClient(id ClientID) {
	w.clients.Insert(w.clients.Len(), id)
}

// Client returns the client id matched by s.
func (w *Workspace) Client(s ring.Selector[ClientID]) (ClientID, bool) {
	return w.clients.Element(w.resolve(s))
}

// FocusClient moves the focus to the client matched by s and returns it.
// When nothing matches the focus stays put.
func (w *Workspace) FocusClient(s ring.Selector[ClientID]) (ClientID, bool) {
	return w.clients.Focus(w.resolve(s))
}

// RemoveClient takes the client matched by s off the stack.
func (w *Workspace) RemoveClient(s ring.Selector[ClientID]) (ClientID, bool) {
	return w.clients.Remove(w.resolve(s))
}

// CycleClient moves the focus one step through the stack, wrapping at the
// ends.
func (w *Workspace) CycleClient(dir ring.Direction) (ClientID, bool) {
	return w.clients.CycleFocus(dir)
}

// DragClient moves the focused client one step through the stack with the
// focus following it.
func (w *Workspace) DragClient(dir ring.Direction) (ClientID, bool) {
	return w.clients.DragFocused(dir)
}

// RotateClients permutes the stack while the focus position stays put.
func (w *Workspace) RotateClients(dir ring.Direction) {
	w.clients.Rotate(dir)
}

// WouldWrap reports whether cycling focus in dir would wrap the stack.
func (w *Workspace) WouldWrap(dir ring.Direction) bool {
	return w.clients.WouldWrap(dir)
}
