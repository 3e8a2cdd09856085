package service

import (
	"testing"

	"github.com/darshan27122006-bit/Equilearn/internal/model"
	"github.com/darshan27122006-bit/Equilearn/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuizFixtures(t *testing.T) (*QuizService, model.Classroom) {
	t.Helper()
	classrooms, st := newClassroomFixtures(t)
	room, err := classrooms.Create(classroomTeacher("teacher-1"),
		CreateClassroomInput{Name: "Maths 101", Subject: "maths"})
	require.NoError(t, err)
	require.NoError(t, classrooms.Enroll(classroomTeacher("teacher-1"), room.ID, "student-1"))
	return NewQuizService(st), room
}

func seedQuiz(t *testing.T, svc *QuizService, classroomID string) model.Quiz {
	t.Helper()
	quiz, err := svc.Create(classroomTeacher("teacher-1"), CreateQuizInput{
		ClassroomID: classroomID,
		Topic:       "fractions",
		Questions: []QuizQuestionInput{
			{Text: "1/2 + 1/2 = ?", Type: model.QuestionMCQ, Options: []string{"1", "2"}, CorrectAnswer: "1"},
			{Text: "Name the top number of a fraction", Type: model.QuestionShortAnswer, CorrectAnswer: "Numerator"},
		},
	})
	require.NoError(t, err)
	return quiz
}

func TestCreateQuizRequiresManagingTeacher(t *testing.T) {
	svc, room := newQuizFixtures(t)

	_, err := svc.Create(classroomTeacher("teacher-2"), CreateQuizInput{
		ClassroomID: room.ID,
		Topic:       "fractions",
		Questions:   []QuizQuestionInput{{Text: "q", CorrectAnswer: "a"}},
	})
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	_, err = svc.Create(classroomTeacher("teacher-1"), CreateQuizInput{
		ClassroomID: "ghost-room",
		Topic:       "fractions",
	})
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestQuizHidesAnswersFromStudents(t *testing.T) {
	svc, room := newQuizFixtures(t)
	quiz := seedQuiz(t, svc, room.ID)

	forStudent, err := svc.Get(&model.User{ID: "student-1", Role: model.Student}, quiz.ID)
	require.NoError(t, err)
	for _, q := range forStudent.Questions {
		assert.Empty(t, q.CorrectAnswer)
		assert.Empty(t, q.Explanation)
	}
	// Options survive sanitizing.
	assert.Equal(t, []string{"1", "2"}, forStudent.Questions[0].Options)

	forTeacher, err := svc.Get(classroomTeacher("teacher-1"), quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, "1", forTeacher.Questions[0].CorrectAnswer)

	listed := svc.ForClassroom(&model.User{ID: "student-1", Role: model.Student}, room.ID)
	require.Len(t, listed, 1)
	assert.Empty(t, listed[0].Questions[0].CorrectAnswer)
}

func TestAttemptGradesCaseInsensitively(t *testing.T) {
	svc, room := newQuizFixtures(t)
	quiz := seedQuiz(t, svc, room.ID)
	student := &model.User{ID: "student-1", Role: model.Student}

	attempt, err := svc.Attempt(student, quiz.ID, map[string]string{
		quiz.Questions[0].ID: "1",
		quiz.Questions[1].ID: "numerator",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, attempt.Score)
	assert.Equal(t, 2, attempt.Total)

	// Wrong and missing answers score zero.
	attempt, err = svc.Attempt(student, quiz.ID, map[string]string{
		quiz.Questions[0].ID: "2",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, attempt.Score)
	assert.Equal(t, 2, attempt.Total)
}

func TestAttemptRequiresEnrollment(t *testing.T) {
	svc, room := newQuizFixtures(t)
	quiz := seedQuiz(t, svc, room.ID)

	_, err := svc.Attempt(&model.User{ID: "student-2", Role: model.Student}, quiz.ID, nil)
	assert.ErrorIs(t, err, util.ErrNotEnrolled)

	_, err = svc.Attempt(&model.User{ID: "student-1", Role: model.Student}, "ghost-quiz", nil)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestQuizAttemptsVisibleToManagingTeacherOnly(t *testing.T) {
	svc, room := newQuizFixtures(t)
	quiz := seedQuiz(t, svc, room.ID)
	student := &model.User{ID: "student-1", Role: model.Student}

	_, err := svc.Attempt(student, quiz.ID, map[string]string{quiz.Questions[0].ID: "1"})
	require.NoError(t, err)

	attempts, err := svc.Attempts(classroomTeacher("teacher-1"), quiz.ID)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, 1, attempts[0].Score)

	_, err = svc.Attempts(classroomTeacher("teacher-2"), quiz.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
	_, err = svc.Attempts(student, quiz.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
}
