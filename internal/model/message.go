package model

import (
	"time"
)

// DirectMessage is one private message between two users. Content may
// be empty when the message only carries a media attachment.
type DirectMessage struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Content    string    `json:"content,omitempty"`
	MediaURL   string    `json:"mediaUrl,omitempty"`
	MediaType  string    `json:"mediaType,omitempty"` // image, video, document
	Read       bool      `json:"read"`
	Timestamp  time.Time `json:"timestamp"`
}

// DoubtThread is a classroom question thread opened by a student.
type DoubtThread struct {
	ID          string         `json:"id"`
	ClassroomID string         `json:"classroomId"`
	StudentID   string         `json:"studentId"`
	Title       string         `json:"title"`
	Resolved    bool           `json:"resolved"`
	Messages    []DoubtMessage `json:"messages"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type DoubtMessage struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"senderId"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
