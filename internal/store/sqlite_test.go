package store

import (
	"path/filepath"
	"testing"

	"github.com/darshan27122006-bit/Equilearn/internal/model"
	"github.com/darshan27122006-bit/Equilearn/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T, path string) *Store {
	t.Helper()
	db, err := database.InitSQLite(path)
	require.NoError(t, err)
	backend, err := NewSQLiteBackend(db)
	require.NoError(t, err)
	return New(backend, "test")
}

func TestSQLiteBackendRoundTrip(t *testing.T) {
	st := newSQLiteStore(t, filepath.Join(t.TempDir(), "store.db"))
	defer st.Close()

	require.NoError(t, st.Users().Add(model.User{ID: "u1", Email: "u1@example.com"}))

	// Upsert path: rewriting the collection replaces the row.
	found, err := st.Users().Update("u1", map[string]any{"name": "Renamed"})
	require.NoError(t, err)
	require.True(t, found)

	u, ok := st.Users().Find("u1")
	require.True(t, ok)
	assert.Equal(t, "Renamed", u.Name)

	// Absent keys read as empty, never error.
	assert.Empty(t, st.Content().GetAll())
}

func TestSQLiteBackendSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")

	st := newSQLiteStore(t, path)
	require.NoError(t, st.Users().Add(model.User{ID: "u1", Email: "u1@example.com"}))
	require.NoError(t, st.SetCurrentUser(model.User{ID: "u1"}))
	require.NoError(t, st.Close())

	reopened := newSQLiteStore(t, path)
	defer reopened.Close()

	assert.Len(t, reopened.Users().GetAll(), 1)
	cur := reopened.CurrentUser()
	require.NotNil(t, cur)
	assert.Equal(t, "u1", cur.ID)
}
