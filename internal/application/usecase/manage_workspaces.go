package usecase

import (
	"context"

	"github.com/bnema/wring/internal/domain/entity"
	"github.com/bnema/wring/internal/logging"
	"github.com/bnema/wring/pkg/ring"
)

// ManageWorkspacesUseCase handles workspace focus and inspection.
type ManageWorkspacesUseCase struct {
	desktop *entity.Desktop
}

// NewManageWorkspacesUseCase creates a new ManageWorkspacesUseCase.
func NewManageWorkspacesUseCase(desktop *entity.Desktop) *ManageWorkspacesUseCase {
	return &ManageWorkspacesUseCase{desktop: desktop}
}

// WorkspaceInfo describes one workspace for listings and status bars.
type WorkspaceInfo struct {
	Index        int
	Name         string
	ClientCount  int
	Focused      bool
	FocusedLabel string // label of the workspace's focused client, if any
}

// Focus moves the workspace focus to the workspace matched by the
// selector. External-id selections resolve to the workspace containing
// that client.
func (uc *ManageWorkspacesUseCase) Focus(ctx context.Context, s ring.Selector[*entity.Workspace]) (*entity.Workspace, bool) {
	log := logging.FromContext(ctx)

	w, ok := uc.desktop.FocusWorkspace(s)
	if !ok {
		log.Debug().Msg("workspace focus matched nothing")
		return nil, false
	}

	log.Debug().
		Str("workspace", w.Name()).
		Msg("focused workspace")

	return w, true
}

// Cycle moves the workspace focus one step, wrapping at the ends.
func (uc *ManageWorkspacesUseCase) Cycle(ctx context.Context, dir ring.Direction) (*entity.Workspace, bool) {
	w, ok := uc.desktop.CycleWorkspace(dir)
	if !ok {
		return nil, false
	}

	logging.FromContext(ctx).Debug().
		Str("workspace", w.Name()).
		Stringer("direction", dir).
		Msg("cycled workspace focus")

	return w, true
}

// List returns the workspaces in ring order with their occupancy.
func (uc *ManageWorkspacesUseCase) List(ctx context.Context) []WorkspaceInfo {
	focusedIndex := uc.desktop.FocusedWorkspaceIndex()

	workspaces := uc.desktop.Workspaces()
	infos := make([]WorkspaceInfo, 0, len(workspaces))
	for i, w := range workspaces {
		info := WorkspaceInfo{
			Index:       i,
			Name:        w.Name(),
			ClientCount: w.Len(),
			Focused:     i == focusedIndex,
		}
		if id, ok := w.FocusedClient(); ok {
			if c, found := uc.desktop.Client(id); found {
				info.FocusedLabel = c.Label()
			}
		}
		infos = append(infos, info)
	}

	logging.FromContext(ctx).Debug().
		Int("workspaces", len(infos)).
		Msg("listed workspaces")

	return infos
}
