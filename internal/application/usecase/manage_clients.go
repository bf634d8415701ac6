package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/wring/internal/domain/entity"
	"github.com/bnema/wring/internal/logging"
	"github.com/bnema/wring/pkg/ring"
)

// ManageClientsUseCase handles the lifecycle and focus of managed windows.
type ManageClientsUseCase struct {
	desktop *entity.Desktop
}

// NewManageClientsUseCase creates a new ManageClientsUseCase.
func NewManageClientsUseCase(desktop *entity.Desktop) *ManageClientsUseCase {
	return &ManageClientsUseCase{desktop: desktop}
}

// MapClientInput contains the parameters for mapping a new window.
type MapClientInput struct {
	ID       entity.ClientID
	Class    string
	Title    string
	Geometry entity.Region // window position at map time; zero when unknown
	Floating bool
}

// Map starts managing a window. It joins the focused workspace at the top
// of the stack and takes focus.
func (uc *ManageClientsUseCase) Map(ctx context.Context, input MapClientInput) (*entity.Client, error) {
	log := logging.FromContext(ctx)

	c := entity.NewClient(input.ID, input.Class, input.Title)
	c.Geometry = input.Geometry
	c.Floating = input.Floating

	if err := uc.desktop.MapClient(c); err != nil {
		return nil, fmt.Errorf("map client: %w", err)
	}

	log.Info().
		Stringer("client", c.ID).
		Str("class", c.Class).
		Int("workspace", c.Workspace).
		Bool("floating", c.Floating).
		Msg("mapped client")

	return c, nil
}

// Remove stops managing the client matched by the selector and returns it.
// Nothing matching is not an error; the desktop is left untouched.
func (uc *ManageClientsUseCase) Remove(ctx context.Context, s ring.Selector[entity.ClientID]) (*entity.Client, bool) {
	log := logging.FromContext(ctx)

	c, ok := uc.desktop.RemoveClient(s)
	if !ok {
		log.Debug().Msg("remove matched no client")
		return nil, false
	}

	log.Info().
		Stringer("client", c.ID).
		Str("label", c.Label()).
		Msg("removed client")

	return c, true
}

// Focus gives the client the input focus, switching workspaces when needed.
func (uc *ManageClientsUseCase) Focus(ctx context.Context, id entity.ClientID) (*entity.Client, bool) {
	log := logging.FromContext(ctx)

	c, ok := uc.desktop.FocusClient(id)
	if !ok {
		log.Debug().Stringer("client", id).Msg("focus target not managed")
		return nil, false
	}

	log.Debug().
		Stringer("client", c.ID).
		Int("workspace", c.Workspace).
		Msg("focused client")

	return c, true
}

// CycleFocus moves the focus one step through the focused workspace's stack.
func (uc *ManageClientsUseCase) CycleFocus(ctx context.Context, dir ring.Direction) (*entity.Client, bool) {
	c, ok := uc.desktop.CycleClient(dir)
	if !ok {
		return nil, false
	}

	logging.FromContext(ctx).Debug().
		Stringer("client", c.ID).
		Stringer("direction", dir).
		Msg("cycled focus")

	return c, true
}

// Drag moves the focused client one step through the stack, keeping the
// focus on it.
func (uc *ManageClientsUseCase) Drag(ctx context.Context, dir ring.Direction) (*entity.Client, bool) {
	c, ok := uc.desktop.DragClient(dir)
	if !ok {
		return nil, false
	}

	logging.FromContext(ctx).Debug().
		Stringer("client", c.ID).
		Stringer("direction", dir).
		Msg("dragged client")

	return c, true
}

// Rotate permutes the focused workspace's stack under a fixed focus
// position.
func (uc *ManageClientsUseCase) Rotate(ctx context.Context, dir ring.Direction) {
	uc.desktop.RotateClients(dir)

	logging.FromContext(ctx).Debug().
		Stringer("direction", dir).
		Msg("rotated stack")
}

// MoveToWorkspace reattaches the client to the workspace at target without
// moving the focus there.
func (uc *ManageClientsUseCase) MoveToWorkspace(ctx context.Context, id entity.ClientID, target int) error {
	log := logging.FromContext(ctx)

	if err := uc.desktop.MoveClientToWorkspace(id, target); err != nil {
		return fmt.Errorf("move client to workspace: %w", err)
	}

	log.Info().
		Stringer("client", id).
		Int("workspace", target).
		Msg("moved client to workspace")

	return nil
}

// SetUrgent sets or clears the urgency hint on a managed client.
func (uc *ManageClientsUseCase) SetUrgent(ctx context.Context, id entity.ClientID, urgent bool) (*entity.Client, bool) {
	c, ok := uc.desktop.Client(id)
	if !ok {
		return nil, false
	}
	c.Urgent = urgent

	logging.FromContext(ctx).Debug().
		Stringer("client", id).
		Bool("urgent", urgent).
		Msg("updated urgency hint")

	return c, true
}
