package scenario

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/bnema/wring/internal/application/usecase"
	"github.com/bnema/wring/internal/domain/entity"
	"github.com/bnema/wring/internal/domain/repository"
	"github.com/bnema/wring/internal/logging"
	"github.com/bnema/wring/pkg/ring"
)

// Runner executes scenarios. Every run gets a fresh desktop, so one
// runner can serve any number of scenario files.
type Runner struct {
	stateRepo repository.StateRepository
}

// NewRunner creates a scenario runner. stateRepo backs the save-snapshot
// op and may be nil when no store is open.
func NewRunner(stateRepo repository.StateRepository) *Runner {
	return &Runner{stateRepo: stateRepo}
}

// StepResult records the outcome of one op. Soft no-matches come back
// with OK set and a detail; Error is only set for hard failures.
type StepResult struct {
	Step   int    `yaml:"step" json:"step"`
	Op     string `yaml:"op" json:"op"`
	OK     bool   `yaml:"ok" json:"ok"`
	Detail string `yaml:"detail,omitempty" json:"detail,omitempty"`
	Error  string `yaml:"error,omitempty" json:"error,omitempty"`
}

// WorkspaceState is the final stack of one workspace, top first.
type WorkspaceState struct {
	Name    string   `yaml:"name" json:"name"`
	Clients []uint32 `yaml:"clients" json:"clients"`
	Focused *uint32  `yaml:"focused,omitempty" json:"focused,omitempty"`
}

// Report is the full outcome of a scenario run.
type Report struct {
	Scenario         string           `yaml:"scenario" json:"scenario"`
	Steps            int              `yaml:"steps" json:"steps"`
	Completed        int              `yaml:"completed" json:"completed"`
	Results          []StepResult     `yaml:"results" json:"results"`
	Failures         []string         `yaml:"failures,omitempty" json:"failures,omitempty"`
	FocusedWorkspace string           `yaml:"focused_workspace" json:"focused_workspace"`
	FocusedClient    *uint32          `yaml:"focused_client,omitempty" json:"focused_client,omitempty"`
	Workspaces       []WorkspaceState `yaml:"workspaces" json:"workspaces"`
}

// OK reports whether every op ran and every expectation held.
func (r *Report) OK() bool {
	return r.Completed == r.Steps && len(r.Failures) == 0
}

// runEnv carries the per-run desktop and its use cases.
type runEnv struct {
	desktop    *entity.Desktop
	clients    *usecase.ManageClientsUseCase
	workspaces *usecase.ManageWorkspacesUseCase
	search     *usecase.SearchClientsUseCase
	snapshots  *usecase.SnapshotStateUseCase
}

// Run seeds the desktop, applies the ops in order and checks the expect
// block. Ops stop at the first hard error; soft no-matches keep going.
func (r *Runner) Run(ctx context.Context, sc *Scenario) (*Report, error) {
	ctx = logging.WithComponent(ctx, "scenario")
	log := logging.FromContext(ctx)

	env, err := r.setup(ctx, sc)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		Scenario: sc.Name,
		Steps:    len(sc.Ops),
		Results:  make([]StepResult, 0, len(sc.Ops)),
	}

	for i, op := range sc.Ops {
		res := r.step(ctx, env, i+1, op)
		rep.Results = append(rep.Results, res)
		if res.Error != "" {
			rep.Failures = append(rep.Failures, fmt.Sprintf("step %d (%s): %s", res.Step, res.Op, res.Error))
			break
		}
		rep.Completed++
	}

	if rep.Completed == rep.Steps && sc.Expect != nil {
		rep.Failures = append(rep.Failures, checkExpect(env.desktop, sc.Expect)...)
	}

	captureState(env.desktop, rep)

	log.Info().
		Str("scenario", sc.Name).
		Int("steps", rep.Steps).
		Int("completed", rep.Completed).
		Int("failures", len(rep.Failures)).
		Msg("scenario finished")

	return rep, nil
}

func (r *Runner) setup(ctx context.Context, sc *Scenario) (*runEnv, error) {
	d, err := entity.NewDesktop(sc.Workspaces...)
	if err != nil {
		return nil, fmt.Errorf("build desktop: %w", err)
	}

	env := &runEnv{
		desktop:    d,
		clients:    usecase.NewManageClientsUseCase(d),
		workspaces: usecase.NewManageWorkspacesUseCase(d),
		search:     usecase.NewSearchClientsUseCase(d),
	}
	if r.stateRepo != nil {
		env.snapshots = usecase.NewSnapshotStateUseCase(d, r.stateRepo)
	}

	if err := seedClients(ctx, env, sc); err != nil {
		return nil, err
	}
	return env, nil
}

// seedClients places the initial clients. Mapping always lands on top of
// the focused workspace, so each workspace's specs are mapped last
// listed first; the file's order then reads top to bottom.
func seedClients(ctx context.Context, env *runEnv, sc *Scenario) error {
	byWorkspace := make(map[int][]ClientSpec)
	for _, cs := range sc.Clients {
		byWorkspace[cs.Workspace] = append(byWorkspace[cs.Workspace], cs)
	}

	for ws := 0; ws < env.desktop.WorkspaceCount(); ws++ {
		specs := byWorkspace[ws]
		if len(specs) == 0 {
			continue
		}
		env.workspaces.Focus(ctx, ring.Index[*entity.Workspace](ws))
		for i := len(specs) - 1; i >= 0; i-- {
			cs := specs[i]
			_, err := env.clients.Map(ctx, usecase.MapClientInput{
				ID:       entity.ClientID(cs.ID),
				Class:    cs.Class,
				Title:    cs.Title,
				Floating: cs.Floating,
			})
			if err != nil {
				return fmt.Errorf("seed client %d: %w", cs.ID, err)
			}
		}
	}

	env.workspaces.Focus(ctx, ring.Index[*entity.Workspace](0))
	return nil
}

func (r *Runner) step(ctx context.Context, env *runEnv, n int, op Op) StepResult {
	res := StepResult{Step: n, Op: op.Op, OK: true}

	fail := func(err error) StepResult {
		res.OK = false
		res.Error = err.Error()
		return res
	}
	done := func(detail string) StepResult {
		res.Detail = detail
		return res
	}

	switch op.Op {
	case "map-client":
		c, err := env.clients.Map(ctx, usecase.MapClientInput{
			ID:    entity.ClientID(op.ID),
			Class: op.Class,
			Title: op.Title,
		})
		if err != nil {
			return fail(err)
		}
		return done(fmt.Sprintf("mapped %s (%s)", c.ID, c.Class))

	case "remove-client":
		sel := ring.Focused[entity.ClientID]()
		if op.ID != 0 {
			sel = ring.ExternalID[entity.ClientID](uint64(op.ID))
		}
		c, ok := env.clients.Remove(ctx, sel)
		if !ok {
			return done("no client matched")
		}
		return done(fmt.Sprintf("removed %s", c.ID))

	case "focus-client":
		c, ok := env.clients.Focus(ctx, entity.ClientID(op.ID))
		if !ok {
			return done("no client matched")
		}
		return done(fmt.Sprintf("focused %s", c.ID))

	case "focus-index":
		id, ok := env.desktop.FocusedWorkspace().FocusClient(ring.Index[entity.ClientID](op.Index))
		if !ok {
			return done("no client at index")
		}
		return done(fmt.Sprintf("focused %s", id))

	case "focus-class":
		c, ok := env.search.Best(ctx, op.Query)
		if !ok {
			return done("no match for query")
		}
		env.clients.Focus(ctx, c.ID)
		return done(fmt.Sprintf("focused %s (%s)", c.ID, c.Class))

	case "cycle-focus":
		dir, err := parseDir(op.Dir)
		if err != nil {
			return fail(err)
		}
		c, ok := env.clients.CycleFocus(ctx, dir)
		if !ok {
			return done("nothing to cycle")
		}
		return done(fmt.Sprintf("focused %s", c.ID))

	case "drag-client":
		dir, err := parseDir(op.Dir)
		if err != nil {
			return fail(err)
		}
		c, ok := env.clients.Drag(ctx, dir)
		if !ok {
			return done("nothing to drag")
		}
		return done(fmt.Sprintf("dragged %s", c.ID))

	case "rotate":
		dir, err := parseDir(op.Dir)
		if err != nil {
			return fail(err)
		}
		env.clients.Rotate(ctx, dir)
		return done(fmt.Sprintf("rotated %s", dir))

	case "focus-workspace":
		sel := ring.Index[*entity.Workspace](op.Index)
		if op.Name != "" {
			sel = ring.Condition(func(w *entity.Workspace) bool { return w.Name() == op.Name })
		}
		w, ok := env.workspaces.Focus(ctx, sel)
		if !ok {
			return done("no workspace matched")
		}
		return done(fmt.Sprintf("workspace %q", w.Name()))

	case "cycle-workspace":
		dir, err := parseDir(op.Dir)
		if err != nil {
			return fail(err)
		}
		w, ok := env.workspaces.Cycle(ctx, dir)
		if !ok {
			return done("no workspace to cycle")
		}
		return done(fmt.Sprintf("workspace %q", w.Name()))

	case "move-to-workspace":
		id := entity.ClientID(op.ID)
		if op.ID == 0 {
			c, ok := env.desktop.FocusedClient()
			if !ok {
				return done("no focused client")
			}
			id = c.ID
		}
		if err := env.clients.MoveToWorkspace(ctx, id, op.Target); err != nil {
			return fail(err)
		}
		return done(fmt.Sprintf("moved %s to workspace %d", id, op.Target))

	case "set-urgent":
		urgent := true
		if op.Urgent != nil {
			urgent = *op.Urgent
		}
		c, ok := env.clients.SetUrgent(ctx, entity.ClientID(op.ID), urgent)
		if !ok {
			return done("no client matched")
		}
		return done(fmt.Sprintf("%s urgent=%t", c.ID, c.Urgent))

	case "save-snapshot":
		if env.snapshots == nil {
			return fail(errors.New("no snapshot store configured"))
		}
		id, err := env.snapshots.Save(ctx, op.Label)
		if err != nil {
			return fail(err)
		}
		return done(fmt.Sprintf("snapshot %q (id %d)", op.Label, id))

	default:
		// validate() rejects unknown ops at parse time.
		return fail(fmt.Errorf("unknown op %q", op.Op))
	}
}

// parseDir maps an op's dir field to a ring direction. Empty means
// forward.
func parseDir(s string) (ring.Direction, error) {
	if s == "" {
		return ring.Forward, nil
	}
	return ring.ParseDirection(s)
}

// checkExpect compares the final desktop state against the expect block
// and returns one message per mismatch.
func checkExpect(d *entity.Desktop, exp *Expect) []string {
	var failures []string

	if exp.FocusedWorkspace != "" {
		got := d.FocusedWorkspace().Name()
		if got != exp.FocusedWorkspace {
			failures = append(failures, fmt.Sprintf("focused workspace %q, expected %q", got, exp.FocusedWorkspace))
		}
	}

	if exp.FocusedClient != nil {
		want := entity.ClientID(*exp.FocusedClient)
		c, ok := d.FocusedClient()
		switch {
		case !ok:
			failures = append(failures, fmt.Sprintf("no focused client, expected %s", want))
		case c.ID != want:
			failures = append(failures, fmt.Sprintf("focused client %s, expected %s", c.ID, want))
		}
	}

	for _, ew := range exp.Workspaces {
		name := ew.Name
		w, ok := d.Workspace(ring.Condition(func(cand *entity.Workspace) bool { return cand.Name() == name }))
		if !ok {
			failures = append(failures, fmt.Sprintf("workspace %q not found", name))
			continue
		}
		got := rawIDs(w.ClientIDs())
		if !slices.Equal(got, ew.Clients) {
			failures = append(failures, fmt.Sprintf("workspace %q stack %v, expected %v", name, got, ew.Clients))
		}
	}

	return failures
}

// captureState records the final desktop layout on the report.
func captureState(d *entity.Desktop, rep *Report) {
	rep.FocusedWorkspace = d.FocusedWorkspace().Name()
	if c, ok := d.FocusedClient(); ok {
		id := uint32(c.ID)
		rep.FocusedClient = &id
	}

	rep.Workspaces = make([]WorkspaceState, 0, d.WorkspaceCount())
	for _, w := range d.Workspaces() {
		ws := WorkspaceState{Name: w.Name(), Clients: rawIDs(w.ClientIDs())}
		if id, ok := w.FocusedClient(); ok {
			fid := uint32(id)
			ws.Focused = &fid
		}
		rep.Workspaces = append(rep.Workspaces, ws)
	}
}

func rawIDs(ids []entity.ClientID) []uint32 {
	out := make([]uint32, len(ids))
	for i, id := range ids {
		out[i] = uint32(id)
	}
	return out
}
