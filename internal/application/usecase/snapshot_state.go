package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/wring/internal/domain/entity"
	"github.com/bnema/wring/internal/domain/repository"
	"github.com/bnema/wring/internal/logging"
)

// ErrSnapshotNotFound is returned when a restore or delete names a label
// with no stored snapshot.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStateUseCase handles saving and restoring desktop state.
type SnapshotStateUseCase struct {
	desktop   *entity.Desktop
	stateRepo repository.StateRepository
}

// NewSnapshotStateUseCase creates a new SnapshotStateUseCase.
func NewSnapshotStateUseCase(desktop *entity.Desktop, stateRepo repository.StateRepository) *SnapshotStateUseCase {
	return &SnapshotStateUseCase{desktop: desktop, stateRepo: stateRepo}
}

// Save stores the current desktop state under the given label and returns
// the stored row id. Saving an existing label overwrites it.
func (uc *SnapshotStateUseCase) Save(ctx context.Context, label string) (int64, error) {
	log := logging.FromContext(ctx)

	if label == "" {
		return 0, fmt.Errorf("snapshot label required")
	}

	snap := entity.SnapshotFromDesktop(uc.desktop)

	log.Debug().
		Str("label", label).
		Int("workspaces", len(snap.Workspaces)).
		Int("clients", uc.desktop.ClientCount()).
		Msg("saving state snapshot")

	id, err := uc.stateRepo.Save(ctx, label, snap)
	if err != nil {
		return 0, fmt.Errorf("save state snapshot: %w", err)
	}

	return id, nil
}

// Restore replaces the live desktop state with the snapshot stored under
// label.
func (uc *SnapshotStateUseCase) Restore(ctx context.Context, label string) error {
	log := logging.FromContext(ctx)

	snap, err := uc.stateRepo.Get(ctx, label)
	if err != nil {
		return fmt.Errorf("load state snapshot: %w", err)
	}
	if snap == nil {
		return fmt.Errorf("%w: %q", ErrSnapshotNotFound, label)
	}

	if err := uc.desktop.Restore(snap); err != nil {
		return fmt.Errorf("restore state snapshot: %w", err)
	}

	log.Info().
		Str("label", label).
		Int("workspaces", len(snap.Workspaces)).
		Msg("restored state snapshot")

	return nil
}

// RestoreLatest replaces the live desktop state with the most recent
// snapshot. It reports whether a snapshot existed to restore.
func (uc *SnapshotStateUseCase) RestoreLatest(ctx context.Context) (bool, error) {
	log := logging.FromContext(ctx)

	snap, err := uc.stateRepo.Latest(ctx)
	if err != nil {
		return false, fmt.Errorf("load latest snapshot: %w", err)
	}
	if snap == nil {
		log.Debug().Msg("no snapshot to restore")
		return false, nil
	}

	if err := uc.desktop.Restore(snap); err != nil {
		return false, fmt.Errorf("restore latest snapshot: %w", err)
	}

	log.Info().
		Time("saved_at", snap.SavedAt).
		Msg("restored latest snapshot")

	return true, nil
}

// List returns summaries of all stored snapshots, newest first.
func (uc *SnapshotStateUseCase) List(ctx context.Context) ([]entity.SnapshotInfo, error) {
	infos, err := uc.stateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return infos, nil
}

// Get returns the snapshot stored under label without touching the live
// desktop.
func (uc *SnapshotStateUseCase) Get(ctx context.Context, label string) (*entity.StateSnapshot, error) {
	snap, err := uc.stateRepo.Get(ctx, label)
	if err != nil {
		return nil, fmt.Errorf("load state snapshot: %w", err)
	}
	if snap == nil {
		return nil, fmt.Errorf("%w: %q", ErrSnapshotNotFound, label)
	}
	return snap, nil
}

// Delete removes the snapshot stored under label.
func (uc *SnapshotStateUseCase) Delete(ctx context.Context, label string) error {
	log := logging.FromContext(ctx)

	if err := uc.stateRepo.Delete(ctx, label); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}

	log.Info().Str("label", label).Msg("deleted snapshot")
	return nil
}

// Prune deletes all but the keep most recent snapshots and returns how
// many were removed.
func (uc *SnapshotStateUseCase) Prune(ctx context.Context, keep int) (int64, error) {
	log := logging.FromContext(ctx)

	if keep < 0 {
		return 0, fmt.Errorf("keep must not be negative")
	}

	removed, err := uc.stateRepo.Prune(ctx, keep)
	if err != nil {
		return 0, fmt.Errorf("prune snapshots: %w", err)
	}

	log.Info().
		Int("keep", keep).
		Int64("removed", removed).
		Msg("pruned snapshots")

	return removed, nil
}

const (
	hoursPerDay = 24
	daysPerWeek = 7
)

// GetRelativeTime returns a human-readable relative time string.
func GetRelativeTime(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return formatAgo(int(diff.Minutes()), "m")
	case diff < hoursPerDay*time.Hour:
		return formatAgo(int(diff.Hours()), "h")
	case diff < daysPerWeek*hoursPerDay*time.Hour:
		return formatAgo(int(diff.Hours()/hoursPerDay), "d")
	default:
		return formatAgo(int(diff.Hours()/hoursPerDay/daysPerWeek), "w")
	}
}

func formatAgo(n int, unit string) string {
	return fmt.Sprintf("%d%s ago", n, unit)
}
