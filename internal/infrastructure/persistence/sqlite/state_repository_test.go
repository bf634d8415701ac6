package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/wring/internal/domain/entity"
	"github.com/bnema/wring/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/wring/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func openTestDB(t *testing.T, ctx context.Context) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "wring.db")
	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })
	return db
}

func snapshotWith(t *testing.T, savedAt time.Time, workspaces ...string) *entity.StateSnapshot {
	t.Helper()
	d, err := entity.NewDesktop(workspaces...)
	require.NoError(t, err)
	snap := entity.SnapshotFromDesktop(d)
	snap.SavedAt = savedAt
	return snap
}

func TestStateRepository_CRUD(t *testing.T) {
	ctx := testCtx()
	db := openTestDB(t, ctx)
	repo := sqlite.NewStateRepository(db)

	d, err := entity.NewDesktop("web", "code")
	require.NoError(t, err)
	require.NoError(t, d.MapClient(entity.NewClient(7, "firefox", "Mozilla Firefox")))

	id, err := repo.Save(ctx, "work", entity.SnapshotFromDesktop(d))
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	got, err := repo.Get(ctx, "work")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.StateSnapshotVersion, got.Version)
	require.Len(t, got.Workspaces, 2)
	assert.Equal(t, "web", got.Workspaces[0].Name)
	require.Len(t, got.Workspaces[0].Clients, 1)
	assert.Equal(t, entity.ClientID(7), got.Workspaces[0].Clients[0].ID)
	assert.Equal(t, "firefox", got.Workspaces[0].Clients[0].Class)

	missing, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.Delete(ctx, "work"))
	gone, err := repo.Get(ctx, "work")
	require.NoError(t, err)
	assert.Nil(t, gone)

	// Deleting an absent label is a no-op.
	require.NoError(t, repo.Delete(ctx, "work"))
}

func TestStateRepository_SaveOverwritesLabel(t *testing.T) {
	ctx := testCtx()
	db := openTestDB(t, ctx)
	repo := sqlite.NewStateRepository(db)

	base := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	first, err := repo.Save(ctx, "work", snapshotWith(t, base, "one"))
	require.NoError(t, err)
	second, err := repo.Save(ctx, "work", snapshotWith(t, base.Add(time.Minute), "one", "two"))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	infos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "work", infos[0].Label)
	assert.Equal(t, 2, infos[0].WorkspaceCount)
}

func TestStateRepository_Latest(t *testing.T) {
	ctx := testCtx()
	db := openTestDB(t, ctx)
	repo := sqlite.NewStateRepository(db)

	none, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, none)

	base := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	_, err = repo.Save(ctx, "old", snapshotWith(t, base, "one"))
	require.NoError(t, err)
	_, err = repo.Save(ctx, "new", snapshotWith(t, base.Add(time.Hour), "one", "two", "three"))
	require.NoError(t, err)

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Len(t, latest.Workspaces, 3)

	// Re-saving an older label with a newer timestamp promotes it.
	_, err = repo.Save(ctx, "old", snapshotWith(t, base.Add(2*time.Hour), "one"))
	require.NoError(t, err)
	latest2, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest2)
	assert.Len(t, latest2.Workspaces, 1)
}

func TestStateRepository_ListNewestFirst(t *testing.T) {
	ctx := testCtx()
	db := openTestDB(t, ctx)
	repo := sqlite.NewStateRepository(db)

	base := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	for i, label := range []string{"a", "b", "c"} {
		_, err := repo.Save(ctx, label, snapshotWith(t, base.Add(time.Duration(i)*time.Minute), "main"))
		require.NoError(t, err)
	}

	infos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 3)
	assert.Equal(t, "c", infos[0].Label)
	assert.Equal(t, "b", infos[1].Label)
	assert.Equal(t, "a", infos[2].Label)
}

func TestStateRepository_Prune(t *testing.T) {
	ctx := testCtx()
	db := openTestDB(t, ctx)
	repo := sqlite.NewStateRepository(db)

	base := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	for i, label := range []string{"a", "b", "c", "d"} {
		_, err := repo.Save(ctx, label, snapshotWith(t, base.Add(time.Duration(i)*time.Minute), "main"))
		require.NoError(t, err)
	}

	deleted, err := repo.Prune(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	infos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "d", infos[0].Label)
	assert.Equal(t, "c", infos[1].Label)

	// Keeping more than exist removes nothing.
	deleted, err = repo.Prune(ctx, 10)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	_, err = repo.Prune(ctx, -1)
	require.Error(t, err)
}

func TestMigrationStatus(t *testing.T) {
	ctx := testCtx()
	db := openTestDB(t, ctx)

	version, err := sqlite.GetMigrationStatus(db)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, version, int64(1))
}
