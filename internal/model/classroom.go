package model

import (
	"time"
)

// swagger:model Classroom
type Classroom struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Subject          string    `json:"subject"`
	Description      string    `json:"description,omitempty"`
	TeacherID        string    `json:"teacherId,omitempty"` // lead teacher
	TeacherIDs       []string  `json:"teacherIds,omitempty"`
	StudentIDs       []string  `json:"studentIds,omitempty"`
	AllowedLanguages []string  `json:"allowedLanguages,omitempty"`
	CreatedByAdminID string    `json:"createdByAdminId,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// HasStudent reports whether the student is enrolled.
func (c *Classroom) HasStudent(studentID string) bool {
	for _, id := range c.StudentIDs {
		if id == studentID {
			return true
		}
	}
	return false
}

// HasTeacher reports whether the teacher leads or is assigned to the
// classroom.
func (c *Classroom) HasTeacher(teacherID string) bool {
	if c.TeacherID == teacherID {
		return true
	}
	for _, id := range c.TeacherIDs {
		if id == teacherID {
			return true
		}
	}
	return false
}
