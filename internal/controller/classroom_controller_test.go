package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/darshan27122006-bit/Equilearn/internal/config"
	"github.com/darshan27122006-bit/Equilearn/internal/middleware"
	"github.com/darshan27122006-bit/Equilearn/internal/model"
	"github.com/darshan27122006-bit/Equilearn/internal/service"
	"github.com/darshan27122006-bit/Equilearn/internal/store"
	"github.com/darshan27122006-bit/Equilearn/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newClassroomRouter wires the classroom routes the way the
// application does, auth and role gates included.
func newClassroomRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(store.NewMemoryBackend(), "test")
	auth := service.NewAuthService(st)
	require.NoError(t, auth.Bootstrap())

	classrooms := NewClassroomController(service.NewClassroomService(st))

	router := gin.New()
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(auth, &config.Config{}))
	api.POST("/classrooms/:id/students", middleware.RoleMiddleware(model.Teacher), classrooms.Enroll)
	api.POST("/classrooms/:id/teachers", middleware.RoleMiddleware(model.Admin), classrooms.AssignTeacher)
	return router, st
}

func postJSON(router *gin.Engine, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedClassroom(t *testing.T, st *store.Store, teacherID string) model.Classroom {
	t.Helper()
	room := model.Classroom{ID: "class-1", Name: "Maths 101", Subject: "maths", TeacherID: teacherID}
	require.NoError(t, st.Classrooms().Add(room))
	return room
}

func TestEnrollRouteRejectsStudents(t *testing.T) {
	router, st := newClassroomRouter(t)
	room := seedClassroom(t, st, service.SeedTeacherID)

	token := util.EncodeSessionToken(service.SeedStudentID)
	w := postJSON(router, "/api/classrooms/"+room.ID+"/students", token,
		`{"studentId":"`+service.SeedStudentID+`"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	stored, ok := st.Classrooms().Find(room.ID)
	require.True(t, ok)
	assert.Empty(t, stored.StudentIDs)
}

func TestEnrollRouteRejectsForeignTeacher(t *testing.T) {
	router, st := newClassroomRouter(t)
	room := seedClassroom(t, st, "teacher-elsewhere")
	require.NoError(t, st.Users().Add(model.User{ID: "teacher-elsewhere", Role: model.Teacher}))

	// Seed teacher does not manage this room.
	token := util.EncodeSessionToken(service.SeedTeacherID)
	w := postJSON(router, "/api/classrooms/"+room.ID+"/students", token,
		`{"studentId":"`+service.SeedStudentID+`"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	stored, _ := st.Classrooms().Find(room.ID)
	assert.Empty(t, stored.StudentIDs)
}

func TestEnrollRouteAllowsManagingTeacher(t *testing.T) {
	router, st := newClassroomRouter(t)
	room := seedClassroom(t, st, service.SeedTeacherID)

	token := util.EncodeSessionToken(service.SeedTeacherID)
	w := postJSON(router, "/api/classrooms/"+room.ID+"/students", token,
		`{"studentId":"`+service.SeedStudentID+`"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	stored, _ := st.Classrooms().Find(room.ID)
	assert.Equal(t, []string{service.SeedStudentID}, stored.StudentIDs)
}

func TestAssignTeacherRouteIsAdminOnly(t *testing.T) {
	router, st := newClassroomRouter(t)
	room := seedClassroom(t, st, service.SeedTeacherID)
	require.NoError(t, st.Users().Add(model.User{ID: "teacher-2", Role: model.Teacher}))

	body := `{"teacherId":"teacher-2"}`
	path := "/api/classrooms/" + room.ID + "/teachers"

	w := postJSON(router, path, util.EncodeSessionToken(service.SeedTeacherID), body)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = postJSON(router, path, util.EncodeSessionToken(service.SeedStudentID), body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = postJSON(router, path, util.EncodeSessionToken(service.SeedAdminID), body)
	assert.Equal(t, http.StatusOK, w.Code)
	stored, _ := st.Classrooms().Find(room.ID)
	assert.True(t, stored.HasTeacher("teacher-2"))
}
