package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/models"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := OpenSQLite(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSQLiteStore_MissingKeysReadAsAbsent(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	token, err := st.GetToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	user, err := st.GetUserData(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSQLiteStore_TokenRoundtrip(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	require.NoError(t, st.SetToken(ctx, "tok-1"))
	// Last writer wins.
	require.NoError(t, st.SetToken(ctx, "tok-2"))

	token, err := st.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)
}

func TestSQLiteStore_UserDataRoundtrip(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	email := "an.le@mswt.vn"
	in := &models.User{
		UserID:   "U001",
		UserName: "anle",
		FullName: "Lê Văn An",
		Email:    &email,
		RoleID:   models.RoleIDWorker,
		Role:     models.RoleWorker,
	}
	require.NoError(t, st.SetUserData(ctx, in))

	out, err := st.GetUserData(ctx)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in.UserID, out.UserID)
	assert.Equal(t, in.FullName, out.FullName)
	require.NotNil(t, out.Email)
	assert.Equal(t, email, *out.Email)
	assert.Equal(t, models.RoleWorker, out.Role)
}

func TestSQLiteStore_Clear(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	require.NoError(t, st.SetToken(ctx, "tok"))
	require.NoError(t, st.SetUserData(ctx, &models.User{UserID: "U001"}))
	require.NoError(t, st.Clear(ctx))

	token, err := st.GetToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	user, err := st.GetUserData(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	st, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, st.SetToken(ctx, "persistent-tok"))
	require.NoError(t, st.Close())

	st2, err := OpenSQLite(path)
	require.NoError(t, err)
	defer st2.Close()

	token, err := st2.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "persistent-tok", token)
}

func TestMemoryStore_Isolation(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	in := &models.User{UserID: "U1", FullName: "A"}
	require.NoError(t, st.SetUserData(ctx, in))
	in.FullName = "mutated"

	out, err := st.GetUserData(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A", out.FullName, "store must hold its own copy")
}
