package service

import (
	"time"

	"github.com/darshan27122006-bit/Equilearn/internal/model"
	"github.com/darshan27122006-bit/Equilearn/internal/store"
	"github.com/darshan27122006-bit/Equilearn/internal/util"

	"github.com/google/uuid"
)

type ClassroomService struct {
	Store *store.Store
}

func NewClassroomService(st *store.Store) *ClassroomService {
	return &ClassroomService{Store: st}
}

type CreateClassroomInput struct {
	Name             string
	Subject          string
	Description      string
	TeacherID        string
	AllowedLanguages []string
}

func (s *ClassroomService) Create(creator *model.User, in CreateClassroomInput) (model.Classroom, error) {
	classroom := model.Classroom{
		ID:               "class-" + uuid.New().String(),
		Name:             in.Name,
		Subject:          in.Subject,
		Description:      in.Description,
		TeacherID:        in.TeacherID,
		AllowedLanguages: in.AllowedLanguages,
		CreatedAt:        time.Now(),
	}
	if creator.Role == model.Admin {
		classroom.CreatedByAdminID = creator.ID
	}
	if classroom.TeacherID == "" && creator.Role == model.Teacher {
		classroom.TeacherID = creator.ID
	}
	if err := s.Store.Classrooms().Add(classroom); err != nil {
		return model.Classroom{}, err
	}
	return classroom, nil
}

// ListFor scopes classrooms by role: students see the rooms they are
// enrolled in, teachers the rooms they teach, admins everything.
func (s *ClassroomService) ListFor(user *model.User) []model.Classroom {
	all := s.Store.Classrooms().GetAll()
	if user.Role == model.Admin {
		return all
	}
	mine := make([]model.Classroom, 0, len(all))
	for _, c := range all {
		switch user.Role {
		case model.Teacher:
			if c.HasTeacher(user.ID) {
				mine = append(mine, c)
			}
		case model.Student:
			if c.HasStudent(user.ID) {
				mine = append(mine, c)
			}
		}
	}
	return mine
}

func (s *ClassroomService) Get(classroomID string) (model.Classroom, error) {
	classroom, ok := s.Store.Classrooms().Find(classroomID)
	if !ok {
		return model.Classroom{}, util.ErrNotFound
	}
	return classroom, nil
}

// manages reports whether the caller may change the classroom's
// membership: admins always, teachers only for rooms they teach.
func manages(caller *model.User, classroom *model.Classroom) bool {
	if caller.Role == model.Admin {
		return true
	}
	return caller.Role == model.Teacher && classroom.HasTeacher(caller.ID)
}

// Enroll adds a student to the classroom. Only a teacher of the
// classroom (or an admin) may enroll; enrolling twice is a no-op.
func (s *ClassroomService) Enroll(caller *model.User, classroomID, studentID string) error {
	classroom, ok := s.Store.Classrooms().Find(classroomID)
	if !ok {
		return util.ErrNotFound
	}
	if !manages(caller, &classroom) {
		return util.ErrPermissionDenied
	}
	student, ok := s.Store.Users().Find(studentID)
	if !ok || student.Role != model.Student {
		return util.ErrNotFound
	}
	if classroom.HasStudent(studentID) {
		return nil
	}
	_, err := s.Store.Classrooms().Update(classroomID, map[string]any{
		"studentIds": append(classroom.StudentIDs, studentID),
	})
	return err
}

// AssignTeacher adds a co-teacher to the classroom. Assigning teachers
// is an admin operation.
func (s *ClassroomService) AssignTeacher(caller *model.User, classroomID, teacherID string) error {
	if caller.Role != model.Admin {
		return util.ErrPermissionDenied
	}
	teacher, ok := s.Store.Users().Find(teacherID)
	if !ok || teacher.Role != model.Teacher {
		return util.ErrNotFound
	}
	classroom, ok := s.Store.Classrooms().Find(classroomID)
	if !ok {
		return util.ErrNotFound
	}
	if classroom.HasTeacher(teacherID) {
		return nil
	}
	_, err := s.Store.Classrooms().Update(classroomID, map[string]any{
		"teacherIds": append(classroom.TeacherIDs, teacherID),
	})
	return err
}
