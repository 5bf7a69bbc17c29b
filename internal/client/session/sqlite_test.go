package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:sessiontest?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_SetGetRoundTrip(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, []byte("t1")))

	got, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("t1"), got)
}

func TestSQLiteRepository_SetOverwrites(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, []byte("t1")))
	require.NoError(t, repo.Set(ctx, KeyToken, []byte("t2")))

	got, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("t2"), got)
}

func TestSQLiteRepository_GetMissingReturnsNil(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)

	got, err := repo.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteRepository_Delete(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, []byte("t1")))
	require.NoError(t, repo.Delete(ctx, KeyToken))

	got, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteRepository_Clear(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "a", []byte("1")))
	require.NoError(t, repo.Set(ctx, "b", []byte("2")))
	require.NoError(t, repo.Clear(ctx))

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInitDatabase_RunsMigrations(t *testing.T) {
	db, repo, err := InitDatabase(context.Background(), "file:sessioninit?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, KeyToken, []byte("t1")))

	got, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("t1"), got)
}
