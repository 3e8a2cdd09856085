package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/darshan27122006-bit/Equilearn/internal/config"
	"github.com/darshan27122006-bit/Equilearn/internal/model"
)

// AIService is the JSON-over-HTTP client for the external AI backend.
// Translation, simplification, speech and quiz generation all happen
// remotely; this client only moves payloads and the caller's bearer
// token, and it never retries.
type AIService struct {
	cfg    config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		cfg:    cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (s *AIService) post(ctx context.Context, path, token string, payload, out any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if s.cfg.APIKey != "" {
		req.Header.Set("X-API-Key", s.cfg.APIKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("AI backend error (status %d): %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// Translate renders the text into one target language.
func (s *AIService) Translate(ctx context.Context, token, text, targetLanguage string) (model.TranslationData, error) {
	var resp struct {
		Success        bool   `json:"success"`
		TranslatedText string `json:"translatedText"`
		Error          string `json:"error"`
	}
	err := s.post(ctx, "/ai/translate_text", token, map[string]any{
		"text":           text,
		"targetLanguage": targetLanguage,
	}, &resp)
	if err != nil {
		return model.TranslationData{}, err
	}
	if !resp.Success {
		return model.TranslationData{}, fmt.Errorf("translation failed: %s", resp.Error)
	}
	return model.TranslationData{Text: resp.TranslatedText}, nil
}

// TranslateAll renders the text into several target languages in one
// round trip.
func (s *AIService) TranslateAll(ctx context.Context, token, text string, targetLanguages []string) (map[string]model.TranslationData, error) {
	var resp struct {
		Success      bool                             `json:"success"`
		Translations map[string]model.TranslationData `json:"translations"`
		Error        string                           `json:"error"`
	}
	err := s.post(ctx, "/ai/translate_text", token, map[string]any{
		"text":            text,
		"targetLanguages": targetLanguages,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("translation failed: %s", resp.Error)
	}
	return resp.Translations, nil
}

// Simplify rewrites the text at the requested reading level.
func (s *AIService) Simplify(ctx context.Context, token, text, level string) (string, error) {
	var resp struct {
		Success        bool   `json:"success"`
		SimplifiedText string `json:"simplifiedText"`
		Error          string `json:"error"`
	}
	err := s.post(ctx, "/ai/simplify_text", token, map[string]any{
		"text":  text,
		"level": level,
	}, &resp)
	if err != nil {
		return "", err
	}
	if !resp.Success {
		return "", fmt.Errorf("simplification failed: %s", resp.Error)
	}
	return resp.SimplifiedText, nil
}

// GenerateAudio asks the backend for a spoken rendering and returns
// the audio URL.
func (s *AIService) GenerateAudio(ctx context.Context, token, text, language string) (string, error) {
	var resp struct {
		Success  bool   `json:"success"`
		AudioURL string `json:"audio_url"`
		Error    string `json:"error"`
	}
	err := s.post(ctx, "/ai/generate_audio", token, map[string]any{
		"text":     text,
		"language": language,
	}, &resp)
	if err != nil {
		return "", err
	}
	if !resp.Success {
		return "", fmt.Errorf("audio generation failed: %s", resp.Error)
	}
	return resp.AudioURL, nil
}

// GenerateQuiz returns the backend's quiz questions for the given
// lesson text. The question schema is the backend's own; it is passed
// through opaquely.
func (s *AIService) GenerateQuiz(ctx context.Context, token, text, level string) (json.RawMessage, error) {
	var resp struct {
		Success   bool            `json:"success"`
		Questions json.RawMessage `json:"questions"`
		Error     string          `json:"error"`
	}
	err := s.post(ctx, "/ai/generate_quiz", token, map[string]any{
		"text":  text,
		"level": level,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("quiz generation failed: %s", resp.Error)
	}
	return resp.Questions, nil
}

// Answer sends a tutoring question, optionally grounded in a lesson.
func (s *AIService) Answer(ctx context.Context, token, question, contentID, language string) (string, error) {
	var resp struct {
		Success  bool   `json:"success"`
		Response string `json:"response"`
		Error    string `json:"error"`
	}
	err := s.post(ctx, "/ai/chatbot_query", token, map[string]any{
		"question":  question,
		"contentId": contentID,
		"language":  language,
	}, &resp)
	if err != nil {
		return "", err
	}
	if !resp.Success {
		return "", fmt.Errorf("chatbot query failed: %s", resp.Error)
	}
	return resp.Response, nil
}
