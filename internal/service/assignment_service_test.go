package service

import (
	"testing"

	"github.com/darshan27122006-bit/Equilearn/internal/model"
	"github.com/darshan27122006-bit/Equilearn/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssignmentFixtures(t *testing.T) (*AssignmentService, model.Classroom) {
	t.Helper()
	classrooms, st := newClassroomFixtures(t)
	room, err := classrooms.Create(classroomTeacher("teacher-1"),
		CreateClassroomInput{Name: "Maths 101", Subject: "maths"})
	require.NoError(t, err)
	require.NoError(t, classrooms.Enroll(classroomTeacher("teacher-1"), room.ID, "student-1"))
	return NewAssignmentService(st), room
}

func TestCreateAssignmentRequiresManagingTeacher(t *testing.T) {
	svc, room := newAssignmentFixtures(t)

	_, err := svc.Create(classroomTeacher("teacher-2"), CreateAssignmentInput{
		ClassroomID: room.ID, Title: "Worksheet 1",
	})
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	created, err := svc.Create(classroomTeacher("teacher-1"), CreateAssignmentInput{
		ClassroomID: room.ID, Title: "Worksheet 1", FileURL: "/uploads/ws1.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, room.ID, created.ClassroomID)

	listed := svc.ForClassroom(room.ID)
	require.Len(t, listed, 1)
	assert.Equal(t, "Worksheet 1", listed[0].Title)
}

func TestSubmitRequiresEnrollment(t *testing.T) {
	svc, room := newAssignmentFixtures(t)
	assignment, err := svc.Create(classroomTeacher("teacher-1"), CreateAssignmentInput{
		ClassroomID: room.ID, Title: "Worksheet 1",
	})
	require.NoError(t, err)

	_, err = svc.Submit(&model.User{ID: "student-2", Role: model.Student}, assignment.ID, "/uploads/sub.pdf")
	assert.ErrorIs(t, err, util.ErrNotEnrolled)

	sub, err := svc.Submit(&model.User{ID: "student-1", Role: model.Student}, assignment.ID, "/uploads/sub.pdf")
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionSubmitted, sub.Status)

	_, err = svc.Submit(&model.User{ID: "student-1", Role: model.Student}, "ghost", "/uploads/sub.pdf")
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestGradeSubmission(t *testing.T) {
	svc, room := newAssignmentFixtures(t)
	assignment, err := svc.Create(classroomTeacher("teacher-1"), CreateAssignmentInput{
		ClassroomID: room.ID, Title: "Worksheet 1",
	})
	require.NoError(t, err)
	sub, err := svc.Submit(&model.User{ID: "student-1", Role: model.Student}, assignment.ID, "/uploads/sub.pdf")
	require.NoError(t, err)

	// Teachers outside the classroom cannot grade.
	_, err = svc.Grade(classroomTeacher("teacher-2"), sub.ID, "A", "good")
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	graded, err := svc.Grade(classroomTeacher("teacher-1"), sub.ID, "A", "good")
	require.NoError(t, err)
	assert.Equal(t, "A", graded.Grade)
	assert.Equal(t, model.SubmissionGraded, graded.Status)

	subs, err := svc.Submissions(classroomTeacher("teacher-1"), assignment.ID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "good", subs[0].Feedback)

	_, err = svc.Submissions(&model.User{ID: "student-1", Role: model.Student}, assignment.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
}
