package service

import (
	"testing"
	"time"

	"github.com/darshan27122006-bit/Equilearn/internal/model"
	"github.com/darshan27122006-bit/Equilearn/internal/store"
	"github.com/darshan27122006-bit/Equilearn/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProgressFixtures(t *testing.T) (*ProgressService, *store.Store) {
	t.Helper()
	st := store.New(store.NewMemoryBackend(), "test")
	require.NoError(t, st.Users().Add(model.User{
		ID: "student-1", Email: "s@example.com", Role: model.Student,
	}))
	require.NoError(t, st.Content().Add(model.Content{
		ContentID: "content-1", Topic: "Fractions", Approved: true,
	}))
	return NewProgressService(st), st
}

func TestOpenCreatesThenRefreshes(t *testing.T) {
	svc, st := seedProgressFixtures(t)

	first, err := svc.Open("student-1", "content-1")
	require.NoError(t, err)
	assert.Equal(t, "Fractions", first.Topic)
	assert.Equal(t, 0, first.Completion)
	require.Len(t, st.Progress().GetAll(), 1)

	// A second open refreshes lastAccessed instead of adding a row.
	again, err := svc.Open("student-1", "content-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Len(t, st.Progress().GetAll(), 1)
}

func TestOpenUnknownReferences(t *testing.T) {
	svc, _ := seedProgressFixtures(t)

	_, err := svc.Open("ghost", "content-1")
	assert.ErrorIs(t, err, util.ErrNotFound)

	_, err = svc.Open("student-1", "ghost")
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestRecordClampsCompletion(t *testing.T) {
	svc, st := seedProgressFixtures(t)
	p, err := svc.Open("student-1", "content-1")
	require.NoError(t, err)

	tests := []struct {
		name string
		in   int
		want int
	}{
		{"below range", -10, 0},
		{"in range", 55, 55},
		{"above range", 250, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := svc.Record(p.ID, tt.in, 80)
			require.NoError(t, err)
			require.True(t, found)

			stored, ok := st.Progress().Find(p.ID)
			require.True(t, ok)
			assert.Equal(t, tt.want, stored.Completion)
		})
	}
}

func TestRecordUnknownID(t *testing.T) {
	svc, _ := seedProgressFixtures(t)

	found, err := svc.Record("ghost", 50, 50)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestForStudentFilters(t *testing.T) {
	svc, st := seedProgressFixtures(t)
	require.NoError(t, st.Progress().Add(model.Progress{
		ID: "p-other", StudentID: "student-2", ContentID: "content-1",
		LastAccessed: time.Now(),
	}))
	_, err := svc.Open("student-1", "content-1")
	require.NoError(t, err)

	mine := svc.ForStudent("student-1")
	require.Len(t, mine, 1)
	assert.Equal(t, "student-1", mine[0].StudentID)
	assert.Len(t, svc.All(), 2)
}
