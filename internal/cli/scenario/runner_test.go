package scenario_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/wring/internal/application/usecase"
	"github.com/bnema/wring/internal/cli/scenario"
	"github.com/bnema/wring/internal/logging"
)

func testCtx() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

func mustParse(t *testing.T, doc string) *scenario.Scenario {
	t.Helper()
	sc, err := scenario.Parse([]byte(doc))
	require.NoError(t, err)
	return sc
}

func TestRunner_EndToEnd(t *testing.T) {
	sc := mustParse(t, `
name: smoke
workspaces: ["web", "code"]
clients:
  - {id: 1, class: firefox, title: Mozilla Firefox}
  - {id: 2, class: kitty, title: scratch}
ops:
  - {op: cycle-focus, dir: forward}
  - {op: map-client, id: 3, class: emacs, title: ring.go}
  - {op: move-to-workspace, id: 3, target: 1}
  - {op: focus-workspace, name: code}
  - {op: focus-class, query: fox}
expect:
  focused_workspace: web
  focused_client: 1
  workspaces:
    - {name: web, clients: [1, 2]}
    - {name: code, clients: [3]}
`)

	rep, err := scenario.NewRunner(nil).Run(testCtx(), sc)
	require.NoError(t, err)

	assert.True(t, rep.OK())
	assert.Equal(t, 5, rep.Completed)
	assert.Empty(t, rep.Failures)

	assert.Equal(t, "web", rep.FocusedWorkspace)
	require.NotNil(t, rep.FocusedClient)
	assert.Equal(t, uint32(1), *rep.FocusedClient)

	require.Len(t, rep.Workspaces, 2)
	assert.Equal(t, []uint32{1, 2}, rep.Workspaces[0].Clients)
	assert.Equal(t, []uint32{3}, rep.Workspaces[1].Clients)

	require.Len(t, rep.Results, 5)
	assert.Contains(t, rep.Results[1].Detail, "0x3")
	assert.Contains(t, rep.Results[4].Detail, "firefox")
}

func TestRunner_SoftMissesKeepGoing(t *testing.T) {
	sc := mustParse(t, `
name: soft
workspaces: ["solo"]
ops:
  - {op: cycle-focus}
  - {op: remove-client}
  - {op: focus-client, id: 7}
  - {op: map-client, id: 1, class: kitty}
expect:
  focused_client: 1
`)

	rep, err := scenario.NewRunner(nil).Run(testCtx(), sc)
	require.NoError(t, err)

	assert.True(t, rep.OK())
	assert.Equal(t, 4, rep.Completed)

	require.Len(t, rep.Results, 4)
	assert.True(t, rep.Results[0].OK)
	assert.Equal(t, "nothing to cycle", rep.Results[0].Detail)
	assert.Equal(t, "no client matched", rep.Results[1].Detail)
	assert.Equal(t, "no client matched", rep.Results[2].Detail)
}

func TestRunner_StopsOnHardError(t *testing.T) {
	sc := mustParse(t, `
name: bad-dir
workspaces: ["a"]
clients:
  - {id: 1, class: kitty}
ops:
  - {op: cycle-focus, dir: forward}
  - {op: rotate, dir: sideways}
  - {op: map-client, id: 2, class: mpv}
`)

	rep, err := scenario.NewRunner(nil).Run(testCtx(), sc)
	require.NoError(t, err)

	assert.False(t, rep.OK())
	assert.Equal(t, 1, rep.Completed)
	require.Len(t, rep.Results, 2)
	assert.False(t, rep.Results[1].OK)
	require.Len(t, rep.Failures, 1)
	assert.Contains(t, rep.Failures[0], "step 2 (rotate)")

	// the third op never ran
	assert.Equal(t, 1, len(rep.Workspaces[0].Clients))
}

func TestRunner_ExpectMismatch(t *testing.T) {
	sc := mustParse(t, `
name: mismatch
workspaces: ["a", "b"]
clients:
  - {id: 1, class: kitty}
  - {id: 2, class: mpv}
ops:
  - {op: cycle-focus, dir: forward}
expect:
  focused_client: 1
`)

	rep, err := scenario.NewRunner(nil).Run(testCtx(), sc)
	require.NoError(t, err)

	assert.False(t, rep.OK())
	assert.Equal(t, rep.Steps, rep.Completed)
	require.Len(t, rep.Failures, 1)
	assert.Contains(t, rep.Failures[0], "focused client 0x2, expected 0x1")
}

func TestRunner_DragRotateAndIndex(t *testing.T) {
	sc := mustParse(t, `
name: shuffle
workspaces: ["main"]
clients:
  - {id: 1, class: a}
  - {id: 2, class: b}
  - {id: 3, class: c}
ops:
  - {op: focus-index, index: 2}
  - {op: drag-client, dir: backward}
  - {op: rotate, dir: forward}
  - {op: set-urgent, id: 1}
expect:
  focused_client: 1
  workspaces:
    - {name: main, clients: [2, 1, 3]}
`)

	rep, err := scenario.NewRunner(nil).Run(testCtx(), sc)
	require.NoError(t, err)

	assert.True(t, rep.OK(), "failures: %v", rep.Failures)
	require.NotNil(t, rep.Workspaces[0].Focused)
	assert.Equal(t, uint32(1), *rep.Workspaces[0].Focused)
	assert.Contains(t, rep.Results[3].Detail, "urgent=true")
}

func TestRunner_SeedOrderAndFocus(t *testing.T) {
	sc := mustParse(t, `
name: seed
workspaces: ["web", "code"]
clients:
  - {id: 1, class: firefox}
  - {id: 2, class: kitty, workspace: 1}
  - {id: 3, class: emacs, workspace: 1}
expect:
  focused_workspace: web
  focused_client: 1
  workspaces:
    - {name: web, clients: [1]}
    - {name: code, clients: [2, 3]}
`)

	rep, err := scenario.NewRunner(nil).Run(testCtx(), sc)
	require.NoError(t, err)

	assert.True(t, rep.OK(), "failures: %v", rep.Failures)
	require.NotNil(t, rep.Workspaces[1].Focused)
	assert.Equal(t, uint32(2), *rep.Workspaces[1].Focused)
}

func TestRunner_SaveSnapshot(t *testing.T) {
	doc := `
name: snap
workspaces: ["a"]
clients:
  - {id: 1, class: kitty}
ops:
  - {op: save-snapshot, label: final}
`

	repo := usecase.NewMockStateRepository()
	rep, err := scenario.NewRunner(repo).Run(testCtx(), mustParse(t, doc))
	require.NoError(t, err)

	assert.True(t, rep.OK())
	require.Len(t, repo.SaveCalls, 1)
	assert.Equal(t, "final", repo.SaveCalls[0].Label)
	assert.Contains(t, rep.Results[0].Detail, `snapshot "final"`)

	// without a store the op is a hard failure
	rep, err = scenario.NewRunner(nil).Run(testCtx(), mustParse(t, doc))
	require.NoError(t, err)
	assert.False(t, rep.OK())
	assert.Contains(t, rep.Results[0].Error, "no snapshot store")
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: from-file\nops:\n  - {op: rotate}\n"), 0o644))

	sc, err := scenario.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", sc.Name)
	require.Len(t, sc.Ops, 1)

	_, err = scenario.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestParse_DefaultWorkspaces(t *testing.T) {
	sc, err := scenario.Parse([]byte("name: bare\n"))
	require.NoError(t, err)
	require.Len(t, sc.Workspaces, 9)
	assert.Equal(t, "1", sc.Workspaces[0])
	assert.Equal(t, "9", sc.Workspaces[8])
}

func TestParse_Rejects(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "unknown op",
			doc:  "ops:\n  - {op: teleport}\n",
			want: "unknown op",
		},
		{
			name: "zero client id",
			doc:  "clients:\n  - {class: kitty}\n",
			want: "id is required",
		},
		{
			name: "duplicate client id",
			doc:  "clients:\n  - {id: 1}\n  - {id: 1}\n",
			want: "duplicate id",
		},
		{
			name: "workspace out of range",
			doc:  "workspaces: [\"a\"]\nclients:\n  - {id: 1, workspace: 3}\n",
			want: "out of range",
		},
		{
			name: "snapshot without label",
			doc:  "ops:\n  - {op: save-snapshot}\n",
			want: "needs a label",
		},
		{
			name: "bad yaml",
			doc:  "ops: [",
			want: "decode yaml",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(tc.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
