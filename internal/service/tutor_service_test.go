package service

import (
	"context"
	"testing"

	"github.com/darshan27122006-bit/Equilearn/internal/config"
	"github.com/darshan27122006-bit/Equilearn/internal/model"
	"github.com/darshan27122006-bit/Equilearn/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTutorFixtures(t *testing.T) (*TutorService, *store.Store) {
	t.Helper()
	st := store.New(store.NewMemoryBackend(), "test")
	ai := NewAIService(config.AIConfig{BaseURL: fakeAIBackend(t).URL})
	return NewTutorService(st, ai), st
}

func TestAskLogsQuestion(t *testing.T) {
	svc, st := newTutorFixtures(t)
	student := &model.User{ID: "student-1", Role: model.Student, Language: "hi"}

	entry, err := svc.Ask(context.Background(), "", student, "content-1", "what is a fraction?")
	require.NoError(t, err)
	assert.Equal(t, "answer to: what is a fraction?", entry.Answer)
	assert.Equal(t, "student-1", entry.StudentID)

	logged := st.Questions().GetAll()
	require.Len(t, logged, 1)
	assert.Equal(t, entry.ID, logged[0].ID)
}

func TestHistoryIsPerStudent(t *testing.T) {
	svc, _ := newTutorFixtures(t)
	a := &model.User{ID: "student-1", Role: model.Student, Language: "en"}
	b := &model.User{ID: "student-2", Role: model.Student, Language: "en"}

	_, err := svc.Ask(context.Background(), "", a, "", "first")
	require.NoError(t, err)
	_, err = svc.Ask(context.Background(), "", b, "", "other")
	require.NoError(t, err)
	_, err = svc.Ask(context.Background(), "", a, "", "second")
	require.NoError(t, err)

	mine := svc.History("student-1")
	require.Len(t, mine, 2)
	for _, q := range mine {
		assert.Equal(t, "student-1", q.StudentID)
	}
	assert.Empty(t, svc.History("ghost"))
}
