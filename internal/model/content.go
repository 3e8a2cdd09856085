package model

import (
	"time"
)

type ContentLevel string

const (
	Beginner     ContentLevel = "beginner"
	Intermediate ContentLevel = "intermediate"
	Advanced     ContentLevel = "advanced"
)

// TranslationData is one language's rendering of a piece of content,
// produced by the external AI backend.
type TranslationData struct {
	Text        string `json:"text"`
	Simplified  string `json:"simplified,omitempty"`
	Explanation string `json:"explanation,omitempty"`
	AudioURL    string `json:"audioUrl,omitempty"`
}

// swagger:model Content
type Content struct {
	ContentID      string                     `json:"contentId"`
	Subject        string                     `json:"subject"`
	Topic          string                     `json:"topic"`
	Level          ContentLevel               `json:"level"`
	Language       string                     `json:"language"`
	Text           string                     `json:"text"`
	SimplifiedText string                     `json:"simplifiedText"`
	AudioURL       string                     `json:"audioUrl,omitempty"`
	UploadedBy     string                     `json:"uploadedBy"`
	Approved       bool                       `json:"approved"`
	Translations   map[string]TranslationData `json:"translations"`
	ClassroomID    string                     `json:"classroomId,omitempty"`
	MediaURL       string                     `json:"mediaUrl,omitempty"`
	MediaType      string                     `json:"mediaType,omitempty"`
	OriginalFile   string                     `json:"originalFileUrl,omitempty"`
	CreatedAt      time.Time                  `json:"createdAt"`
}

// CachedLesson is the offline-readable snapshot of a lesson, keyed by
// contentId in the cached-lessons collection.
type CachedLesson struct {
	ContentID string    `json:"contentId"`
	Topic     string    `json:"topic"`
	Language  string    `json:"language"`
	Text      string    `json:"text"`
	AudioURL  string    `json:"audioUrl,omitempty"`
	CachedAt  time.Time `json:"cachedAt"`
}
