package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/wring/internal/domain/entity"
	"github.com/bnema/wring/pkg/ring"
)

func populatedDesktop(t *testing.T) *entity.Desktop {
	t.Helper()
	d, err := entity.NewDesktop("web", "code", "misc")
	require.NoError(t, err)

	require.NoError(t, d.MapClient(entity.NewClient(1, "firefox", "Mozilla Firefox")))
	require.NoError(t, d.MapClient(entity.NewClient(2, "foot", "fish /home")))

	_, ok := d.FocusWorkspace(ring.Index[*entity.Workspace](1))
	require.True(t, ok)
	c := entity.NewClient(3, "emacs", "init.el")
	c.Floating = true
	c.Geometry = entity.NewRegion(100, 80, 640, 400)
	require.NoError(t, d.MapClient(c))

	urgent := entity.NewClient(4, "signal", "Signal")
	urgent.Urgent = true
	require.NoError(t, d.MapClient(urgent))

	// Leave the focus somewhere non-trivial.
	_, ok = d.CycleClient(ring.Forward)
	require.True(t, ok)
	return d
}

func TestSnapshotFromDesktop_CapturesOrderAndFocus(t *testing.T) {
	d := populatedDesktop(t)

	snap := entity.SnapshotFromDesktop(d)
	require.NotNil(t, snap)
	assert.Equal(t, entity.StateSnapshotVersion, snap.Version)
	assert.False(t, snap.SavedAt.IsZero())
	assert.Equal(t, 1, snap.FocusedWorkspace)
	require.Len(t, snap.Workspaces, 3)

	web := snap.Workspaces[0]
	assert.Equal(t, "web", web.Name)
	require.Len(t, web.Clients, 2)
	assert.Equal(t, entity.ClientID(2), web.Clients[0].ID)
	assert.Equal(t, entity.ClientID(1), web.Clients[1].ID)
	assert.Equal(t, "firefox", web.Clients[1].Class)

	code := snap.Workspaces[1]
	require.Len(t, code.Clients, 2)
	assert.Equal(t, entity.ClientID(4), code.Clients[0].ID)
	assert.True(t, code.Clients[0].Urgent)
	assert.True(t, code.Clients[1].Floating)
	assert.Equal(t, entity.NewRegion(100, 80, 640, 400), code.Clients[1].Geometry)
	assert.Equal(t, 1, code.FocusedClient)
}

func TestDesktopFromSnapshot_RoundTrip(t *testing.T) {
	d := populatedDesktop(t)
	snap := entity.SnapshotFromDesktop(d)

	restored, err := entity.DesktopFromSnapshot(snap)
	require.NoError(t, err)

	assert.Equal(t, d.WorkspaceNames(), restored.WorkspaceNames())
	assert.Equal(t, d.FocusedWorkspaceIndex(), restored.FocusedWorkspaceIndex())
	assert.Equal(t, d.ClientCount(), restored.ClientCount())

	for i, want := range d.Workspaces() {
		got, ok := restored.Workspace(ring.Index[*entity.Workspace](i))
		require.True(t, ok)
		assert.Equal(t, want.ClientIDs(), got.ClientIDs(), "workspace %d stack order", i)
		assert.Equal(t, want.FocusedIndex(), got.FocusedIndex(), "workspace %d focus", i)
	}

	c, ok := restored.Client(3)
	require.True(t, ok)
	assert.Equal(t, "emacs", c.Class)
	assert.True(t, c.Floating)
	assert.Equal(t, entity.NewRegion(100, 80, 640, 400), c.Geometry, "floating geometry survives restore")
	assert.False(t, c.Mapped, "restored clients come back unmapped")

	focused, ok := restored.FocusedClient()
	require.True(t, ok)
	assert.Equal(t, entity.ClientID(3), focused.ID)
}

func TestDesktopFromSnapshot_SurvivesJSON(t *testing.T) {
	snap := entity.SnapshotFromDesktop(populatedDesktop(t))

	data, err := json.Marshal(snap)
	require.NoError(t, err)

	var decoded entity.StateSnapshot
	require.NoError(t, json.Unmarshal(data, &decoded))

	restored, err := entity.DesktopFromSnapshot(&decoded)
	require.NoError(t, err)
	assert.Equal(t, []string{"web", "code", "misc"}, restored.WorkspaceNames())
	assert.Equal(t, 4, restored.ClientCount())
}

func TestDesktopFromSnapshot_RejectsEmpty(t *testing.T) {
	_, err := entity.DesktopFromSnapshot(nil)
	assert.ErrorIs(t, err, entity.ErrNoWorkspaces)

	_, err = entity.DesktopFromSnapshot(&entity.StateSnapshot{Version: entity.StateSnapshotVersion})
	assert.ErrorIs(t, err, entity.ErrNoWorkspaces)
}

func TestDesktopFromSnapshot_ClampsCorruptFocus(t *testing.T) {
	snap := &entity.StateSnapshot{
		Version:          entity.StateSnapshotVersion,
		FocusedWorkspace: 99,
		Workspaces: []entity.WorkspaceSnapshot{
			{Name: "only", FocusedClient: -3, Clients: []entity.ClientSnapshot{{ID: 1}, {ID: 2}}},
		},
	}

	restored, err := entity.DesktopFromSnapshot(snap)
	require.NoError(t, err)
	assert.Equal(t, 0, restored.FocusedWorkspaceIndex())

	focused, ok := restored.FocusedClient()
	require.True(t, ok)
	assert.Equal(t, entity.ClientID(1), focused.ID)
}

func TestDesktopFromSnapshot_RejectsDuplicateIDs(t *testing.T) {
	snap := &entity.StateSnapshot{
		Version:          entity.StateSnapshotVersion,
		FocusedWorkspace: 0,
		Workspaces: []entity.WorkspaceSnapshot{
			{Name: "a", Clients: []entity.ClientSnapshot{{ID: 1}}},
			{Name: "b", Clients: []entity.ClientSnapshot{{ID: 1}}},
		},
	}

	_, err := entity.DesktopFromSnapshot(snap)
	assert.ErrorIs(t, err, entity.ErrDuplicateClient)
}
