package model

import (
	"time"
)

// swagger:model Progress
type Progress struct {
	ID           string    `json:"id"`
	StudentID    string    `json:"studentId"`
	ContentID    string    `json:"contentId"`
	Topic        string    `json:"topic"`
	Completion   int       `json:"completion"` // clamped to [0,100]
	Score        int       `json:"score"`
	LastAccessed time.Time `json:"lastAccessed"`
}

// ClampCompletion forces the completion percentage into [0,100].
func ClampCompletion(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
