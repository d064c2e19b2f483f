package users

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/daykeeper/internal/common"
	"github.com/dmitrijs2005/daykeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  password TEXT NOT NULL,
  avatar_url TEXT
);
`)
	require.NoError(t, err)

	return db
}

func TestCreate_AndFindByCredentials(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	u := &models.User{Id: "u1", Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, r.Create(ctx, u, "s3cret"))

	got, err := r.FindByCredentials(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.Id)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Empty(t, got.AvatarUrl)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.User{Id: "u1", Name: "Alice", Email: "a@x.com"}, "pw"))

	err := r.Create(ctx, &models.User{Id: "u2", Name: "Other", Email: "a@x.com"}, "pw2")
	require.ErrorIs(t, err, common.ErrEmailTaken)
}

func TestFindByCredentials_NoMatch(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.User{Id: "u1", Name: "Alice", Email: "a@x.com"}, "pw"))

	_, err := r.FindByCredentials(ctx, "unknown@x.com", "pw")
	require.ErrorIs(t, err, common.ErrNotFound)

	_, err = r.FindByCredentials(ctx, "a@x.com", "wrong")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestCreate_StoresAvatarUrl(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	u := &models.User{Id: "u1", Name: "Alice", Email: "a@x.com", AvatarUrl: "https://example.com/a.png"}
	require.NoError(t, r.Create(ctx, u, "pw"))

	got, err := r.FindByCredentials(ctx, "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.png", got.AvatarUrl)
}
