package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/wring/internal/domain/entity"
	"github.com/bnema/wring/internal/domain/repository"
	"github.com/bnema/wring/internal/logging"
)

type stateRepo struct {
	db *sql.DB
}

// NewStateRepository creates a snapshot store backed by the given database.
func NewStateRepository(db *sql.DB) repository.StateRepository {
	return &stateRepo{db: db}
}

// Save stores a snapshot under the given label, overwriting any previous
// snapshot with the same label. Returns the row id.
func (r *stateRepo) Save(ctx context.Context, label string, snapshot *entity.StateSnapshot) (int64, error) {
	log := logging.FromContext(ctx)
	if snapshot == nil {
		return 0, errors.New("snapshot cannot be nil")
	}

	stateJSON, err := json.Marshal(snapshot)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal state snapshot")
		return 0, err
	}

	log.Debug().
		Str("label", label).
		Int("workspace_count", len(snapshot.Workspaces)).
		Msg("saving state snapshot")

	var id int64
	err = r.db.QueryRowContext(ctx, `
		INSERT INTO state_snapshots (label, state, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(label) DO UPDATE SET
			state = excluded.state,
			created_at = excluded.created_at
		RETURNING id`,
		label, string(stateJSON), snapshot.SavedAt.UTC(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("save snapshot %q: %w", label, err)
	}

	return id, nil
}

// Get returns the snapshot stored under label, or nil when absent.
func (r *stateRepo) Get(ctx context.Context, label string) (*entity.StateSnapshot, error) {
	var stateJSON string
	err := r.db.QueryRowContext(ctx,
		`SELECT state FROM state_snapshots WHERE label = ?`, label,
	).Scan(&stateJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var snap entity.StateSnapshot
	if err := json.Unmarshal([]byte(stateJSON), &snap); err != nil {
		logging.FromContext(ctx).Error().Err(err).
			Str("label", label).
			Msg("failed to unmarshal state snapshot")
		return nil, err
	}

	return &snap, nil
}

// Latest returns the most recently saved snapshot, or nil when the store
// is empty.
func (r *stateRepo) Latest(ctx context.Context) (*entity.StateSnapshot, error) {
	var stateJSON string
	err := r.db.QueryRowContext(ctx, `
		SELECT state FROM state_snapshots
		ORDER BY created_at DESC, id DESC
		LIMIT 1`,
	).Scan(&stateJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var snap entity.StateSnapshot
	if err := json.Unmarshal([]byte(stateJSON), &snap); err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("failed to unmarshal state snapshot")
		return nil, err
	}

	return &snap, nil
}

// List returns summary info for all snapshots, newest first.
func (r *stateRepo) List(ctx context.Context) ([]entity.SnapshotInfo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, label, state FROM state_snapshots
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			logging.FromContext(ctx).Debug().Err(closeErr).Msg("closing snapshot rows")
		}
	}()

	infos := make([]entity.SnapshotInfo, 0)
	for rows.Next() {
		var (
			id        int64
			label     string
			stateJSON string
		)
		if err := rows.Scan(&id, &label, &stateJSON); err != nil {
			return nil, err
		}

		var snap entity.StateSnapshot
		if err := json.Unmarshal([]byte(stateJSON), &snap); err != nil {
			logging.FromContext(ctx).Warn().Err(err).
				Str("label", label).
				Msg("skipping corrupted state snapshot")
			continue
		}
		infos = append(infos, snap.Summarize(id, label))
	}

	return infos, rows.Err()
}

// Delete removes the snapshot stored under label. Deleting an absent label
// is not an error.
func (r *stateRepo) Delete(ctx context.Context, label string) error {
	logging.FromContext(ctx).Debug().Str("label", label).Msg("deleting state snapshot")
	_, err := r.db.ExecContext(ctx, `DELETE FROM state_snapshots WHERE label = ?`, label)
	return err
}

// Prune deletes all but the keep newest snapshots and returns how many
// rows were removed.
func (r *stateRepo) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		return 0, fmt.Errorf("keep must be non-negative, got %d", keep)
	}

	res, err := r.db.ExecContext(ctx, `
		DELETE FROM state_snapshots
		WHERE id NOT IN (
			SELECT id FROM state_snapshots
			ORDER BY created_at DESC, id DESC
			LIMIT ?
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("prune snapshots: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		logging.FromContext(ctx).Info().
			Int64("deleted", deleted).
			Int("kept", keep).
			Msg("pruned old state snapshots")
	}

	return deleted, nil
}
