package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/wring/internal/domain/entity"
	"github.com/bnema/wring/pkg/ring"
)

func newTestDesktop(t *testing.T) *entity.Desktop {
	t.Helper()
	d, err := entity.NewDesktop("1", "2", "3")
	require.NoError(t, err)
	return d
}

func TestNewDesktop_RequiresAWorkspace(t *testing.T) {
	_, err := entity.NewDesktop()
	assert.ErrorIs(t, err, entity.ErrNoWorkspaces)
}

func TestDesktop_MapClient(t *testing.T) {
	d := newTestDesktop(t)

	c := entity.NewClient(0x2a, "firefox", "Mozilla Firefox")
	require.NoError(t, d.MapClient(c))

	assert.Equal(t, 1, d.ClientCount())
	assert.True(t, c.Mapped)
	assert.Equal(t, 0, c.Workspace)

	focused, ok := d.FocusedClient()
	require.True(t, ok)
	assert.Equal(t, entity.ClientID(0x2a), focused.ID)

	err := d.MapClient(entity.NewClient(0x2a, "firefox", "again"))
	assert.ErrorIs(t, err, entity.ErrDuplicateClient)
}

func TestDesktop_MapStacksNewestFirst(t *testing.T) {
	d := newTestDesktop(t)

	require.NoError(t, d.MapClient(entity.NewClient(1, "a", "")))
	require.NoError(t, d.MapClient(entity.NewClient(2, "b", "")))

	assert.Equal(t, []entity.ClientID{2, 1}, d.FocusedWorkspace().ClientIDs())
	focused, ok := d.FocusedClient()
	require.True(t, ok)
	assert.Equal(t, entity.ClientID(2), focused.ID)
}

func TestDesktop_FocusClientSwitchesWorkspace(t *testing.T) {
	d := newTestDesktop(t)
	require.NoError(t, d.MapClient(entity.NewClient(1, "term", "")))

	_, ok := d.FocusWorkspace(ring.Index[*entity.Workspace](1))
	require.True(t, ok)
	require.NoError(t, d.MapClient(entity.NewClient(2, "editor", "")))
	assert.Equal(t, 1, d.FocusedWorkspaceIndex())

	c, ok := d.FocusClient(1)
	require.True(t, ok)
	assert.Equal(t, entity.ClientID(1), c.ID)
	assert.Equal(t, 0, d.FocusedWorkspaceIndex())

	focused, ok := d.FocusedClient()
	require.True(t, ok)
	assert.Equal(t, entity.ClientID(1), focused.ID)

	_, ok = d.FocusClient(42)
	assert.False(t, ok)
}

func TestDesktop_WorkspaceByExternalID(t *testing.T) {
	d := newTestDesktop(t)
	require.NoError(t, d.MapClient(entity.NewClient(7, "mpv", "")))
	_, ok := d.FocusWorkspace(ring.Index[*entity.Workspace](2))
	require.True(t, ok)
	require.NoError(t, d.MapClient(entity.NewClient(8, "term", "")))

	w, ok := d.Workspace(ring.ExternalID[*entity.Workspace](7))
	require.True(t, ok)
	assert.Equal(t, "1", w.Name())

	w, ok = d.Workspace(ring.ExternalID[*entity.Workspace](8))
	require.True(t, ok)
	assert.Equal(t, "3", w.Name())

	_, ok = d.Workspace(ring.ExternalID[*entity.Workspace](99))
	assert.False(t, ok)
}

func TestDesktop_RemoveFocusedClient(t *testing.T) {
	d := newTestDesktop(t)
	require.NoError(t, d.MapClient(entity.NewClient(1, "a", "")))
	require.NoError(t, d.MapClient(entity.NewClient(2, "b", "")))

	removed, ok := d.RemoveClient(ring.Focused[entity.ClientID]())
	require.True(t, ok)
	assert.Equal(t, entity.ClientID(2), removed.ID)
	assert.False(t, removed.Mapped)
	assert.Equal(t, 1, d.ClientCount())

	focused, ok := d.FocusedClient()
	require.True(t, ok)
	assert.Equal(t, entity.ClientID(1), focused.ID)
}

func TestDesktop_RemoveClientByExternalIDAcrossWorkspaces(t *testing.T) {
	d := newTestDesktop(t)
	require.NoError(t, d.MapClient(entity.NewClient(1, "a", "")))
	_, ok := d.FocusWorkspace(ring.Index[*entity.Workspace](1))
	require.True(t, ok)
	require.NoError(t, d.MapClient(entity.NewClient(2, "b", "")))

	// Client 1 lives on workspace 0 while workspace 1 has the focus.
	removed, ok := d.RemoveClient(ring.ExternalID[entity.ClientID](1))
	require.True(t, ok)
	assert.Equal(t, entity.ClientID(1), removed.ID)
	assert.Equal(t, 1, d.ClientCount())

	w, ok := d.Workspace(ring.Index[*entity.Workspace](0))
	require.True(t, ok)
	assert.Equal(t, 0, w.Len())

	_, ok = d.RemoveClient(ring.ExternalID[entity.ClientID](1))
	assert.False(t, ok)
}

func TestDesktop_MoveClientToWorkspace(t *testing.T) {
	d := newTestDesktop(t)
	require.NoError(t, d.MapClient(entity.NewClient(1, "a", "")))
	require.NoError(t, d.MapClient(entity.NewClient(2, "b", "")))

	require.NoError(t, d.MoveClientToWorkspace(2, 1))

	assert.Equal(t, []entity.ClientID{1}, d.FocusedWorkspace().ClientIDs())
	target, ok := d.Workspace(ring.Index[*entity.Workspace](1))
	require.True(t, ok)
	assert.Equal(t, []entity.ClientID{2}, target.ClientIDs())

	c, ok := d.Client(2)
	require.True(t, ok)
	assert.Equal(t, 1, c.Workspace)
	assert.Equal(t, 0, d.FocusedWorkspaceIndex(), "workspace focus must not follow the client")

	// Moving onto its own workspace is a no-op.
	require.NoError(t, d.MoveClientToWorkspace(2, 1))

	assert.ErrorIs(t, d.MoveClientToWorkspace(42, 1), entity.ErrUnknownClient)
	assert.ErrorIs(t, d.MoveClientToWorkspace(2, 9), entity.ErrUnknownWorkspace)
}

func TestDesktop_CycleWorkspaceWraps(t *testing.T) {
	d := newTestDesktop(t)

	w, ok := d.CycleWorkspace(ring.Backward)
	require.True(t, ok)
	assert.Equal(t, "3", w.Name())

	w, ok = d.CycleWorkspace(ring.Forward)
	require.True(t, ok)
	assert.Equal(t, "1", w.Name())
}

func TestDesktop_ClientsInWorkspaceOrder(t *testing.T) {
	d := newTestDesktop(t)
	require.NoError(t, d.MapClient(entity.NewClient(1, "a", "")))
	require.NoError(t, d.MapClient(entity.NewClient(2, "b", "")))
	_, ok := d.FocusWorkspace(ring.Index[*entity.Workspace](2))
	require.True(t, ok)
	require.NoError(t, d.MapClient(entity.NewClient(3, "c", "")))

	ids := make([]entity.ClientID, 0, 3)
	for _, c := range d.Clients() {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []entity.ClientID{2, 1, 3}, ids)
}

func TestDesktop_EmptyWorkspaceOperations(t *testing.T) {
	d := newTestDesktop(t)

	_, ok := d.FocusedClient()
	assert.False(t, ok)
	_, ok = d.CycleClient(ring.Forward)
	assert.False(t, ok)
	_, ok = d.DragClient(ring.Backward)
	assert.False(t, ok)
	d.RotateClients(ring.Forward)
	_, ok = d.RemoveClient(ring.Focused[entity.ClientID]())
	assert.False(t, ok)
}
