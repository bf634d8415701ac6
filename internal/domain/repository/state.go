package repository

import (
	"context"

	"github.com/bnema/wring/internal/domain/entity"
)

// StateRepository persists desktop state snapshots.
type StateRepository interface {
	// Save stores a snapshot under the given label and returns its id.
	// Saving an existing label overwrites the previous snapshot.
	Save(ctx context.Context, label string, snapshot *entity.StateSnapshot) (int64, error)

	// Get returns the snapshot stored under label.
	Get(ctx context.Context, label string) (*entity.StateSnapshot, error)

	// Latest returns the most recently saved snapshot, or nil when none exist.
	Latest(ctx context.Context) (*entity.StateSnapshot, error)

	// List returns summaries of all stored snapshots, newest first.
	List(ctx context.Context) ([]entity.SnapshotInfo, error)

	// Delete removes the snapshot stored under label.
	Delete(ctx context.Context, label string) error

	// Prune deletes all but the keep most recent snapshots and reports
	// how many rows were removed.
	Prune(ctx context.Context, keep int) (int64, error)
}
