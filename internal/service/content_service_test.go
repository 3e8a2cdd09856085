package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darshan27122006-bit/Equilearn/internal/config"
	"github.com/darshan27122006-bit/Equilearn/internal/model"
	"github.com/darshan27122006-bit/Equilearn/internal/store"
	"github.com/darshan27122006-bit/Equilearn/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAIBackend answers the AI endpoints with canned responses.
func fakeAIBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/ai/translate_text", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text            string   `json:"text"`
			TargetLanguage  string   `json:"targetLanguage"`
			TargetLanguages []string `json:"targetLanguages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if len(req.TargetLanguages) > 0 {
			translations := map[string]any{}
			for _, lang := range req.TargetLanguages {
				translations[lang] = map[string]any{"text": "[" + lang + "] " + req.Text}
			}
			json.NewEncoder(w).Encode(map[string]any{
				"success":      true,
				"translations": translations,
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success":        true,
			"translatedText": "[" + req.TargetLanguage + "] " + req.Text,
		})
	})
	mux.HandleFunc("/ai/simplify_text", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success":        true,
			"simplifiedText": "simple version",
		})
	})
	mux.HandleFunc("/ai/generate_audio", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success":   true,
			"audio_url": "/audio/lesson.mp3",
		})
	})
	mux.HandleFunc("/ai/generate_quiz", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success":   true,
			"questions": []map[string]any{{"question": "2+2?", "answer": "4"}},
		})
	})
	mux.HandleFunc("/ai/chatbot_query", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Question string `json:"question"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(map[string]any{
			"success":  true,
			"response": "answer to: " + req.Question,
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newContentFixtures(t *testing.T) (*ContentService, *store.Store) {
	t.Helper()
	st := store.New(store.NewMemoryBackend(), "test")
	ai := NewAIService(config.AIConfig{BaseURL: fakeAIBackend(t).URL})
	return NewContentService(st, ai), st
}

func teacherUser() *model.User {
	return &model.User{ID: "teacher-1", Role: model.Teacher, Language: "en"}
}

func adminUser() *model.User {
	return &model.User{ID: "admin-1", Role: model.Admin, Language: "en"}
}

func studentUser() *model.User {
	return &model.User{ID: "student-1", Role: model.Student, Language: "hi"}
}

func TestUploadApprovalByRole(t *testing.T) {
	svc, _ := newContentFixtures(t)

	byTeacher, err := svc.Upload(teacherUser(), UploadContentInput{Topic: "Algebra", Text: "x"})
	require.NoError(t, err)
	assert.False(t, byTeacher.Approved)

	byAdmin, err := svc.Upload(adminUser(), UploadContentInput{Topic: "Geometry", Text: "y"})
	require.NoError(t, err)
	assert.True(t, byAdmin.Approved)
}

func TestStudentsOnlySeeApprovedContent(t *testing.T) {
	svc, _ := newContentFixtures(t)

	pending, err := svc.Upload(teacherUser(), UploadContentInput{Topic: "Pending", Text: "x"})
	require.NoError(t, err)
	live, err := svc.Upload(adminUser(), UploadContentInput{Topic: "Live", Text: "y"})
	require.NoError(t, err)

	student := studentUser()
	visible := svc.ListFor(student)
	require.Len(t, visible, 1)
	assert.Equal(t, live.ContentID, visible[0].ContentID)
	assert.Len(t, svc.ListFor(teacherUser()), 2)

	// The gate also holds on single fetches.
	_, err = svc.GetFor(student, pending.ContentID)
	assert.ErrorIs(t, err, util.ErrNotFound)
	_, err = svc.GetFor(teacherUser(), pending.ContentID)
	assert.NoError(t, err)
}

func TestApproveMakesContentVisible(t *testing.T) {
	svc, _ := newContentFixtures(t)
	pending, err := svc.Upload(teacherUser(), UploadContentInput{Topic: "Pending", Text: "x"})
	require.NoError(t, err)

	found, err := svc.Approve(pending.ContentID)
	require.NoError(t, err)
	require.True(t, found)

	got, err := svc.GetFor(studentUser(), pending.ContentID)
	require.NoError(t, err)
	assert.True(t, got.Approved)
}

func TestRejectRemovesContent(t *testing.T) {
	svc, st := newContentFixtures(t)
	pending, err := svc.Upload(teacherUser(), UploadContentInput{Topic: "Pending", Text: "x"})
	require.NoError(t, err)

	found, err := svc.Reject(pending.ContentID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, st.Content().GetAll())

	found, err = svc.Reject("ghost")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTranslateStoresTranslation(t *testing.T) {
	svc, st := newContentFixtures(t)
	content, err := svc.Upload(adminUser(), UploadContentInput{Topic: "T", Text: "hello", Language: "en"})
	require.NoError(t, err)

	translation, err := svc.Translate(context.Background(), "", content.ContentID, "hi")
	require.NoError(t, err)
	assert.Equal(t, "[hi] hello", translation.Text)

	stored, ok := st.Content().Find(content.ContentID)
	require.True(t, ok)
	assert.Equal(t, "[hi] hello", stored.Translations["hi"].Text)
}

func TestTranslateAllMergesTranslations(t *testing.T) {
	svc, st := newContentFixtures(t)
	content, err := svc.Upload(adminUser(), UploadContentInput{Topic: "T", Text: "hello", Language: "en"})
	require.NoError(t, err)

	// An existing single translation survives the batch merge.
	_, err = svc.Translate(context.Background(), "", content.ContentID, "sw")
	require.NoError(t, err)

	translations, err := svc.TranslateAll(context.Background(), "", content.ContentID, []string{"hi", "ta"})
	require.NoError(t, err)
	assert.Equal(t, "[hi] hello", translations["hi"].Text)
	assert.Equal(t, "[ta] hello", translations["ta"].Text)

	stored, ok := st.Content().Find(content.ContentID)
	require.True(t, ok)
	assert.Len(t, stored.Translations, 3)
	assert.Equal(t, "[sw] hello", stored.Translations["sw"].Text)
}

func TestSimplifyStoresText(t *testing.T) {
	svc, st := newContentFixtures(t)
	content, err := svc.Upload(adminUser(), UploadContentInput{Topic: "T", Text: "dense prose"})
	require.NoError(t, err)

	simplified, err := svc.Simplify(context.Background(), "", content.ContentID, "beginner")
	require.NoError(t, err)
	assert.Equal(t, "simple version", simplified)

	stored, ok := st.Content().Find(content.ContentID)
	require.True(t, ok)
	assert.Equal(t, "simple version", stored.SimplifiedText)
}

func TestSynthesizeStoresAudioURL(t *testing.T) {
	svc, st := newContentFixtures(t)
	content, err := svc.Upload(adminUser(), UploadContentInput{Topic: "T", Text: "hello", Language: "en"})
	require.NoError(t, err)

	audioURL, err := svc.Synthesize(context.Background(), "", content.ContentID, "en")
	require.NoError(t, err)
	assert.Equal(t, "/audio/lesson.mp3", audioURL)

	stored, ok := st.Content().Find(content.ContentID)
	require.True(t, ok)
	assert.Equal(t, "/audio/lesson.mp3", stored.AudioURL)
}

func TestCacheForOfflinePrefersStudentLanguage(t *testing.T) {
	svc, st := newContentFixtures(t)
	content, err := svc.Upload(adminUser(), UploadContentInput{Topic: "T", Text: "hello", Language: "en"})
	require.NoError(t, err)
	_, err = svc.Translate(context.Background(), "", content.ContentID, "hi")
	require.NoError(t, err)

	lesson, err := svc.CacheForOffline(studentUser(), content.ContentID)
	require.NoError(t, err)
	assert.Equal(t, "hi", lesson.Language)
	assert.Equal(t, "[hi] hello", lesson.Text)

	// Caching again replaces the snapshot instead of duplicating it.
	_, err = svc.CacheForOffline(studentUser(), content.ContentID)
	require.NoError(t, err)
	assert.Len(t, st.CachedLessons(), 1)
}

func TestCacheForOfflineFallsBackToOriginal(t *testing.T) {
	svc, _ := newContentFixtures(t)
	content, err := svc.Upload(adminUser(), UploadContentInput{Topic: "T", Text: "hello", Language: "en"})
	require.NoError(t, err)

	lesson, err := svc.CacheForOffline(studentUser(), content.ContentID)
	require.NoError(t, err)
	assert.Equal(t, "en", lesson.Language)
	assert.Equal(t, "hello", lesson.Text)
}
