package model

import (
	"time"
)

// swagger:model Assignment
type Assignment struct {
	ID          string     `json:"id"`
	ClassroomID string     `json:"classroomId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	FileURL     string     `json:"fileUrl,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Submission statuses.
const (
	SubmissionSubmitted = "submitted"
	SubmissionGraded    = "graded"
)

// Submission is one student's handed-in work for an assignment.
type Submission struct {
	ID           string    `json:"id"`
	AssignmentID string    `json:"assignmentId"`
	StudentID    string    `json:"studentId"`
	FileURL      string    `json:"fileUrl"`
	Status       string    `json:"status"` // submitted, graded
	Grade        string    `json:"grade,omitempty"`
	Feedback     string    `json:"feedback,omitempty"`
	SubmittedAt  time.Time `json:"submittedAt"`
}
