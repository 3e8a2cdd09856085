package service

import (
	"sort"
	"strings"
	"time"

	"github.com/darshan27122006-bit/Equilearn/internal/model"
	"github.com/darshan27122006-bit/Equilearn/internal/store"
	"github.com/darshan27122006-bit/Equilearn/internal/util"

	"github.com/google/uuid"
)

// QuizService covers teacher-authored quizzes and graded student
// attempts.
type QuizService struct {
	Store *store.Store
}

func NewQuizService(st *store.Store) *QuizService {
	return &QuizService{Store: st}
}

type QuizQuestionInput struct {
	Text          string
	Type          string
	Options       []string
	CorrectAnswer string
	Explanation   string
}

type CreateQuizInput struct {
	ClassroomID string
	ContentID   string
	Topic       string
	Questions   []QuizQuestionInput
}

// Create stores a quiz with its questions. The caller must teach the
// target classroom (admins may author anywhere).
func (s *QuizService) Create(caller *model.User, in CreateQuizInput) (model.Quiz, error) {
	classroom, ok := s.Store.Classrooms().Find(in.ClassroomID)
	if !ok {
		return model.Quiz{}, util.ErrNotFound
	}
	if !manages(caller, &classroom) {
		return model.Quiz{}, util.ErrPermissionDenied
	}

	quiz := model.Quiz{
		ID:          "quiz-" + uuid.New().String(),
		ClassroomID: in.ClassroomID,
		ContentID:   in.ContentID,
		Topic:       in.Topic,
		TeacherID:   caller.ID,
		Questions:   make([]model.QuizQuestion, 0, len(in.Questions)),
		CreatedAt:   time.Now(),
	}
	for _, q := range in.Questions {
		qType := q.Type
		if qType == "" {
			qType = model.QuestionMCQ
		}
		quiz.Questions = append(quiz.Questions, model.QuizQuestion{
			ID:            uuid.New().String(),
			Text:          q.Text,
			Type:          qType,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}
	if err := s.Store.Quizzes().Add(quiz); err != nil {
		return model.Quiz{}, err
	}
	return quiz, nil
}

// sanitizeQuiz strips the answer key so students can take the quiz
// without seeing the solutions.
func sanitizeQuiz(quiz model.Quiz) model.Quiz {
	questions := make([]model.QuizQuestion, len(quiz.Questions))
	for i, q := range quiz.Questions {
		q.CorrectAnswer = ""
		q.Explanation = ""
		questions[i] = q
	}
	quiz.Questions = questions
	return quiz
}

// Get returns one quiz. Students receive it without the answer key.
func (s *QuizService) Get(caller *model.User, quizID string) (model.Quiz, error) {
	quiz, ok := s.Store.Quizzes().Find(quizID)
	if !ok {
		return model.Quiz{}, util.ErrNotFound
	}
	if caller.Role == model.Student {
		quiz = sanitizeQuiz(quiz)
	}
	return quiz, nil
}

// ForClassroom lists the classroom's quizzes, newest first. Students
// never see the answer key.
func (s *QuizService) ForClassroom(caller *model.User, classroomID string) []model.Quiz {
	mine := make([]model.Quiz, 0)
	for _, q := range s.Store.Quizzes().GetAll() {
		if q.ClassroomID != classroomID {
			continue
		}
		if caller.Role == model.Student {
			q = sanitizeQuiz(q)
		}
		mine = append(mine, q)
	}
	sort.Slice(mine, func(i, j int) bool { return mine[i].CreatedAt.After(mine[j].CreatedAt) })
	return mine
}

// Attempt grades the student's answers (keyed by question id) against
// the answer key, case-insensitively, and records the result. The
// student must be enrolled in the quiz's classroom.
func (s *QuizService) Attempt(student *model.User, quizID string, answers map[string]string) (model.QuizAttempt, error) {
	quiz, ok := s.Store.Quizzes().Find(quizID)
	if !ok {
		return model.QuizAttempt{}, util.ErrNotFound
	}
	if quiz.ClassroomID != "" {
		classroom, ok := s.Store.Classrooms().Find(quiz.ClassroomID)
		if !ok || !classroom.HasStudent(student.ID) {
			return model.QuizAttempt{}, util.ErrNotEnrolled
		}
	}

	score := 0
	for _, q := range quiz.Questions {
		if ans := answers[q.ID]; ans != "" && strings.EqualFold(ans, q.CorrectAnswer) {
			score++
		}
	}
	attempt := model.QuizAttempt{
		ID:          "attempt-" + uuid.New().String(),
		QuizID:      quiz.ID,
		StudentID:   student.ID,
		Score:       score,
		Total:       len(quiz.Questions),
		CompletedAt: time.Now(),
	}
	if err := s.Store.QuizAttempts().Add(attempt); err != nil {
		return model.QuizAttempt{}, err
	}
	return attempt, nil
}

// Attempts lists a quiz's recorded attempts. Only a teacher of the
// classroom (or an admin) may review them.
func (s *QuizService) Attempts(caller *model.User, quizID string) ([]model.QuizAttempt, error) {
	quiz, ok := s.Store.Quizzes().Find(quizID)
	if !ok {
		return nil, util.ErrNotFound
	}
	if quiz.ClassroomID != "" {
		classroom, ok := s.Store.Classrooms().Find(quiz.ClassroomID)
		if !ok || !manages(caller, &classroom) {
			return nil, util.ErrPermissionDenied
		}
	} else if caller.Role == model.Student {
		return nil, util.ErrPermissionDenied
	}

	attempts := make([]model.QuizAttempt, 0)
	for _, a := range s.Store.QuizAttempts().GetAll() {
		if a.QuizID == quizID {
			attempts = append(attempts, a)
		}
	}
	sort.Slice(attempts, func(i, j int) bool { return attempts[i].CompletedAt.After(attempts[j].CompletedAt) })
	return attempts, nil
}
