package service

import (
	"sort"
	"time"

	"github.com/darshan27122006-bit/Equilearn/internal/model"
	"github.com/darshan27122006-bit/Equilearn/internal/store"
	"github.com/darshan27122006-bit/Equilearn/internal/util"

	"github.com/google/uuid"
)

// AssignmentService covers classroom assignments and student
// submissions.
type AssignmentService struct {
	Store *store.Store
}

func NewAssignmentService(st *store.Store) *AssignmentService {
	return &AssignmentService{Store: st}
}

type CreateAssignmentInput struct {
	ClassroomID string
	Title       string
	Description string
	FileURL     string
	DueDate     *time.Time
}

// Create stores an assignment. The caller must teach the target
// classroom.
func (s *AssignmentService) Create(caller *model.User, in CreateAssignmentInput) (model.Assignment, error) {
	classroom, ok := s.Store.Classrooms().Find(in.ClassroomID)
	if !ok {
		return model.Assignment{}, util.ErrNotFound
	}
	if !manages(caller, &classroom) {
		return model.Assignment{}, util.ErrPermissionDenied
	}
	assignment := model.Assignment{
		ID:          "assignment-" + uuid.New().String(),
		ClassroomID: in.ClassroomID,
		Title:       in.Title,
		Description: in.Description,
		FileURL:     in.FileURL,
		DueDate:     in.DueDate,
		CreatedAt:   time.Now(),
	}
	if err := s.Store.Assignments().Add(assignment); err != nil {
		return model.Assignment{}, err
	}
	return assignment, nil
}

// ForClassroom lists the classroom's assignments, newest first.
func (s *AssignmentService) ForClassroom(classroomID string) []model.Assignment {
	mine := make([]model.Assignment, 0)
	for _, a := range s.Store.Assignments().GetAll() {
		if a.ClassroomID == classroomID {
			mine = append(mine, a)
		}
	}
	sort.Slice(mine, func(i, j int) bool { return mine[i].CreatedAt.After(mine[j].CreatedAt) })
	return mine
}

// Submit records the student's handed-in file. The student must be
// enrolled in the assignment's classroom.
func (s *AssignmentService) Submit(student *model.User, assignmentID, fileURL string) (model.Submission, error) {
	assignment, ok := s.Store.Assignments().Find(assignmentID)
	if !ok {
		return model.Submission{}, util.ErrNotFound
	}
	classroom, ok := s.Store.Classrooms().Find(assignment.ClassroomID)
	if !ok || !classroom.HasStudent(student.ID) {
		return model.Submission{}, util.ErrNotEnrolled
	}
	submission := model.Submission{
		ID:           "submission-" + uuid.New().String(),
		AssignmentID: assignmentID,
		StudentID:    student.ID,
		FileURL:      fileURL,
		Status:       model.SubmissionSubmitted,
		SubmittedAt:  time.Now(),
	}
	if err := s.Store.Submissions().Add(submission); err != nil {
		return model.Submission{}, err
	}
	return submission, nil
}

// Submissions lists an assignment's submissions for a teacher of its
// classroom.
func (s *AssignmentService) Submissions(caller *model.User, assignmentID string) ([]model.Submission, error) {
	assignment, ok := s.Store.Assignments().Find(assignmentID)
	if !ok {
		return nil, util.ErrNotFound
	}
	classroom, ok := s.Store.Classrooms().Find(assignment.ClassroomID)
	if !ok || !manages(caller, &classroom) {
		return nil, util.ErrPermissionDenied
	}
	subs := make([]model.Submission, 0)
	for _, sub := range s.Store.Submissions().GetAll() {
		if sub.AssignmentID == assignmentID {
			subs = append(subs, sub)
		}
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].SubmittedAt.After(subs[j].SubmittedAt) })
	return subs, nil
}

// Grade records a grade and feedback on a submission. Only a teacher
// of the classroom (or an admin) may grade.
func (s *AssignmentService) Grade(caller *model.User, submissionID, grade, feedback string) (model.Submission, error) {
	submission, ok := s.Store.Submissions().Find(submissionID)
	if !ok {
		return model.Submission{}, util.ErrNotFound
	}
	assignment, ok := s.Store.Assignments().Find(submission.AssignmentID)
	if !ok {
		return model.Submission{}, util.ErrNotFound
	}
	classroom, ok := s.Store.Classrooms().Find(assignment.ClassroomID)
	if !ok || !manages(caller, &classroom) {
		return model.Submission{}, util.ErrPermissionDenied
	}
	if _, err := s.Store.Submissions().Update(submissionID, map[string]any{
		"grade":    grade,
		"feedback": feedback,
		"status":   model.SubmissionGraded,
	}); err != nil {
		return model.Submission{}, err
	}
	submission.Grade = grade
	submission.Feedback = feedback
	submission.Status = model.SubmissionGraded
	return submission, nil
}
