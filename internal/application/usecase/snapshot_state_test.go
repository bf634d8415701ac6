package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/wring/internal/application/usecase"
	"github.com/bnema/wring/internal/domain/entity"
)

func TestSnapshotStateUseCase_Save_CapturesDesktop(t *testing.T) {
	ctx := testContext()
	desktop := testDesktop(t, "web", "code")
	clients := usecase.NewManageClientsUseCase(desktop)

	_, err := clients.Map(ctx, usecase.MapClientInput{ID: 1, Class: "firefox"})
	require.NoError(t, err)

	repo := usecase.NewMockStateRepository()
	repo.SaveFunc = func(_ context.Context, label string, snap *entity.StateSnapshot) (int64, error) {
		require.Equal(t, "before-restart", label)
		require.Len(t, snap.Workspaces, 2)
		require.Len(t, snap.Workspaces[0].Clients, 1)
		require.Equal(t, entity.ClientID(1), snap.Workspaces[0].Clients[0].ID)
		return 7, nil
	}

	uc := usecase.NewSnapshotStateUseCase(desktop, repo)

	id, err := uc.Save(ctx, "before-restart")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Len(t, repo.SaveCalls, 1)
}

func TestSnapshotStateUseCase_Save_RequiresLabel(t *testing.T) {
	ctx := testContext()
	desktop := testDesktop(t)
	repo := usecase.NewMockStateRepository()
	uc := usecase.NewSnapshotStateUseCase(desktop, repo)

	_, err := uc.Save(ctx, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "label required")
	assert.Empty(t, repo.SaveCalls)
}

func TestSnapshotStateUseCase_Restore_SwapsLiveState(t *testing.T) {
	ctx := testContext()

	// Build the state to restore from a second desktop.
	saved := testDesktop(t, "mail", "irc")
	savedClients := usecase.NewManageClientsUseCase(saved)
	_, err := savedClients.Map(ctx, usecase.MapClientInput{ID: 9, Class: "thunderbird"})
	require.NoError(t, err)
	snap := entity.SnapshotFromDesktop(saved)

	repo := usecase.NewMockStateRepository()
	repo.GetFunc = func(_ context.Context, label string) (*entity.StateSnapshot, error) {
		if label == "evening" {
			return snap, nil
		}
		return nil, nil
	}

	live := testDesktop(t, "scratch")
	uc := usecase.NewSnapshotStateUseCase(live, repo)

	require.NoError(t, uc.Restore(ctx, "evening"))

	assert.Equal(t, []string{"mail", "irc"}, live.WorkspaceNames())
	c, ok := live.Client(9)
	require.True(t, ok)
	assert.Equal(t, "thunderbird", c.Class)
	// Restored clients wait for the embedder to re-map their windows.
	assert.False(t, c.Mapped)
}

func TestSnapshotStateUseCase_Restore_NotFound(t *testing.T) {
	ctx := testContext()
	desktop := testDesktop(t)
	repo := usecase.NewMockStateRepository()
	uc := usecase.NewSnapshotStateUseCase(desktop, repo)

	err := uc.Restore(ctx, "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrSnapshotNotFound)
}

func TestSnapshotStateUseCase_RestoreLatest(t *testing.T) {
	ctx := testContext()

	saved := testDesktop(t, "alpha")
	snap := entity.SnapshotFromDesktop(saved)

	repo := usecase.NewMockStateRepository()
	repo.LatestFunc = func(context.Context) (*entity.StateSnapshot, error) {
		return snap, nil
	}

	live := testDesktop(t, "scratch")
	uc := usecase.NewSnapshotStateUseCase(live, repo)

	restored, err := uc.RestoreLatest(ctx)
	require.NoError(t, err)
	assert.True(t, restored)
	assert.Equal(t, []string{"alpha"}, live.WorkspaceNames())
}

func TestSnapshotStateUseCase_RestoreLatest_NoSnapshots(t *testing.T) {
	ctx := testContext()
	desktop := testDesktop(t)
	repo := usecase.NewMockStateRepository()
	uc := usecase.NewSnapshotStateUseCase(desktop, repo)

	restored, err := uc.RestoreLatest(ctx)
	require.NoError(t, err)
	assert.False(t, restored)
	// The live desktop is untouched.
	assert.Equal(t, []string{"1", "2", "3"}, desktop.WorkspaceNames())
}

func TestSnapshotStateUseCase_RepositoryErrorsPropagate(t *testing.T) {
	ctx := testContext()
	desktop := testDesktop(t)
	repo := usecase.NewMockStateRepository()
	dbErr := errors.New("disk full")
	repo.SaveFunc = func(context.Context, string, *entity.StateSnapshot) (int64, error) {
		return 0, dbErr
	}

	uc := usecase.NewSnapshotStateUseCase(desktop, repo)

	_, err := uc.Save(ctx, "doomed")
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestSnapshotStateUseCase_Prune(t *testing.T) {
	ctx := testContext()
	desktop := testDesktop(t)
	repo := usecase.NewMockStateRepository()
	repo.PruneFunc = func(_ context.Context, keep int) (int64, error) {
		return 4, nil
	}

	uc := usecase.NewSnapshotStateUseCase(desktop, repo)

	removed, err := uc.Prune(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)
	assert.Equal(t, []int{10}, repo.PruneCalls)

	_, err = uc.Prune(ctx, -1)
	require.Error(t, err)
	assert.Empty(t, repo.PruneCalls[1:])
}

func TestSnapshotStateUseCase_Delete(t *testing.T) {
	ctx := testContext()
	desktop := testDesktop(t)
	repo := usecase.NewMockStateRepository()
	uc := usecase.NewSnapshotStateUseCase(desktop, repo)

	require.NoError(t, uc.Delete(ctx, "stale"))
	assert.Equal(t, []string{"stale"}, repo.DeleteCalls)
}
