package model

import (
	"time"
)

// Quiz question kinds.
const (
	QuestionMCQ         = "mcq"
	QuestionShortAnswer = "short_answer"
	QuestionRiddle      = "riddle"
)

// swagger:model Quiz
type Quiz struct {
	ID          string         `json:"id"`
	ClassroomID string         `json:"classroomId"`
	ContentID   string         `json:"contentId,omitempty"` // lesson the quiz was generated from
	Topic       string         `json:"topic"`
	TeacherID   string         `json:"teacherId"`
	Questions   []QuizQuestion `json:"questions"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type QuizQuestion struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Type          string   `json:"type"` // mcq, short_answer, riddle
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
}

// QuizAttempt is one student's graded run through a quiz.
type QuizAttempt struct {
	ID          string    `json:"id"`
	QuizID      string    `json:"quizId"`
	StudentID   string    `json:"studentId"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	CompletedAt time.Time `json:"completedAt"`
}
