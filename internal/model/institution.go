package model

import (
	"time"
)

// swagger:model Institution
type Institution struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	SupportedLanguages []string  `json:"supportedLanguages"`
	AdminID            string    `json:"adminId"`
	CreatedAt          time.Time `json:"createdAt"`
}

// Question is one entry of the append-only AI-tutor log: a student's
// question against a lesson plus the answer that came back.
type Question struct {
	ID        string    `json:"id"`
	StudentID string    `json:"studentId"`
	ContentID string    `json:"contentId"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Timestamp time.Time `json:"timestamp"`
}
