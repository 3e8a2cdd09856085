package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/darshan27122006-bit/Equilearn/internal/model"
	"github.com/darshan27122006-bit/Equilearn/internal/store"
	"github.com/darshan27122006-bit/Equilearn/internal/util"
	"github.com/darshan27122006-bit/Equilearn/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ContentService struct {
	Store *store.Store
	AI    *AIService
}

func NewContentService(st *store.Store, ai *AIService) *ContentService {
	return &ContentService{Store: st, AI: ai}
}

type UploadContentInput struct {
	Subject     string
	Topic       string
	Level       model.ContentLevel
	Language    string
	Text        string
	ClassroomID string
	MediaURL    string
	MediaType   string
	OriginalURL string
}

// Upload creates a lesson. Admin uploads are live immediately;
// teacher uploads stay pending until an admin approves them.
func (s *ContentService) Upload(uploader *model.User, in UploadContentInput) (model.Content, error) {
	content := model.Content{
		ContentID:    "content-" + uuid.New().String(),
		Subject:      in.Subject,
		Topic:        in.Topic,
		Level:        in.Level,
		Language:     in.Language,
		Text:         in.Text,
		UploadedBy:   uploader.ID,
		Approved:     uploader.Role == model.Admin,
		Translations: map[string]model.TranslationData{},
		ClassroomID:  in.ClassroomID,
		MediaURL:     in.MediaURL,
		MediaType:    in.MediaType,
		OriginalFile: in.OriginalURL,
		CreatedAt:    time.Now(),
	}
	if err := s.Store.Content().Add(content); err != nil {
		return model.Content{}, err
	}
	return content, nil
}

// ListFor applies the visibility gate: students only ever see approved
// content; teachers and admins see everything.
func (s *ContentService) ListFor(user *model.User) []model.Content {
	all := s.Store.Content().GetAll()
	if user.Role != model.Student {
		return all
	}
	visible := make([]model.Content, 0, len(all))
	for _, c := range all {
		if c.Approved {
			visible = append(visible, c)
		}
	}
	return visible
}

// GetFor fetches one lesson, honoring the approval gate for students.
func (s *ContentService) GetFor(user *model.User, contentID string) (model.Content, error) {
	content, ok := s.Store.Content().Find(contentID)
	if !ok {
		return model.Content{}, util.ErrNotFound
	}
	if user.Role == model.Student && !content.Approved {
		return model.Content{}, util.ErrNotFound
	}
	return content, nil
}

// Approve flips the visibility gate open.
func (s *ContentService) Approve(contentID string) (bool, error) {
	return s.Store.Content().Update(contentID, map[string]any{"approved": true})
}

// Reject removes a pending lesson outright.
func (s *ContentService) Reject(contentID string) (bool, error) {
	return s.Store.Content().Delete(contentID)
}

// Translate asks the AI backend for the target-language rendering and
// merges it into the lesson's translations map.
func (s *ContentService) Translate(ctx context.Context, token string, contentID, targetLanguage string) (model.TranslationData, error) {
	content, ok := s.Store.Content().Find(contentID)
	if !ok {
		return model.TranslationData{}, util.ErrNotFound
	}

	translation, err := s.AI.Translate(ctx, token, content.Text, targetLanguage)
	if err != nil {
		return model.TranslationData{}, err
	}

	translations := content.Translations
	if translations == nil {
		translations = map[string]model.TranslationData{}
	}
	translations[targetLanguage] = translation

	if _, err := s.Store.Content().Update(contentID, map[string]any{"translations": translations}); err != nil {
		return model.TranslationData{}, err
	}
	return translation, nil
}

// TranslateAll renders the lesson into several languages in one AI
// round trip and merges the results into the stored translations.
func (s *ContentService) TranslateAll(ctx context.Context, token string, contentID string, targetLanguages []string) (map[string]model.TranslationData, error) {
	content, ok := s.Store.Content().Find(contentID)
	if !ok {
		return nil, util.ErrNotFound
	}

	fresh, err := s.AI.TranslateAll(ctx, token, content.Text, targetLanguages)
	if err != nil {
		return nil, err
	}

	translations := content.Translations
	if translations == nil {
		translations = map[string]model.TranslationData{}
	}
	for lang, t := range fresh {
		translations[lang] = t
	}

	if _, err := s.Store.Content().Update(contentID, map[string]any{"translations": translations}); err != nil {
		return nil, err
	}
	return fresh, nil
}

// Simplify asks the AI backend for an easier rendering and stores it
// on the lesson.
func (s *ContentService) Simplify(ctx context.Context, token string, contentID, level string) (string, error) {
	content, ok := s.Store.Content().Find(contentID)
	if !ok {
		return "", util.ErrNotFound
	}

	simplified, err := s.AI.Simplify(ctx, token, content.Text, level)
	if err != nil {
		return "", err
	}

	if _, err := s.Store.Content().Update(contentID, map[string]any{"simplifiedText": simplified}); err != nil {
		return "", err
	}
	return simplified, nil
}

// Synthesize asks the AI backend for a spoken rendering of the lesson
// (or of one of its translations) and stores the audio URL.
func (s *ContentService) Synthesize(ctx context.Context, token string, contentID, language string) (string, error) {
	content, ok := s.Store.Content().Find(contentID)
	if !ok {
		return "", util.ErrNotFound
	}

	text := content.Text
	patch := map[string]any{}
	if t, ok := content.Translations[language]; ok && language != content.Language {
		text = t.Text
	}

	audioURL, err := s.AI.GenerateAudio(ctx, token, text, language)
	if err != nil {
		return "", err
	}

	if t, ok := content.Translations[language]; ok && language != content.Language {
		t.AudioURL = audioURL
		content.Translations[language] = t
		patch["translations"] = content.Translations
	} else {
		patch["audioUrl"] = audioURL
	}
	if _, err := s.Store.Content().Update(contentID, patch); err != nil {
		return "", err
	}
	return audioURL, nil
}

// Quiz returns AI-generated questions for the lesson. Nothing is
// stored; the question schema belongs to the AI backend.
func (s *ContentService) Quiz(ctx context.Context, token string, contentID, level string) (json.RawMessage, error) {
	content, ok := s.Store.Content().Find(contentID)
	if !ok {
		return nil, util.ErrNotFound
	}
	return s.AI.GenerateQuiz(ctx, token, content.Text, level)
}

// CacheForOffline snapshots a lesson into the cached-lessons
// collection, in the student's language when a translation exists.
func (s *ContentService) CacheForOffline(user *model.User, contentID string) (model.CachedLesson, error) {
	content, err := s.GetFor(user, contentID)
	if err != nil {
		return model.CachedLesson{}, err
	}

	lesson := model.CachedLesson{
		ContentID: content.ContentID,
		Topic:     content.Topic,
		Language:  content.Language,
		Text:      content.Text,
		AudioURL:  content.AudioURL,
		CachedAt:  time.Now(),
	}
	if t, ok := content.Translations[user.Language]; ok {
		lesson.Language = user.Language
		lesson.Text = t.Text
		if t.AudioURL != "" {
			lesson.AudioURL = t.AudioURL
		}
	}

	if err := s.Store.CacheLesson(lesson); err != nil {
		return model.CachedLesson{}, err
	}
	logger.Log.Debug("lesson cached for offline use",
		zap.String("contentId", content.ContentID), zap.String("language", lesson.Language))
	return lesson, nil
}

func (s *ContentService) CachedLessons() []model.CachedLesson {
	return s.Store.CachedLessons()
}
