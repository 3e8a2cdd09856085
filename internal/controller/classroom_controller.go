package controller

import (
	"errors"

	"github.com/darshan27122006-bit/Equilearn/internal/model"
	"github.com/darshan27122006-bit/Equilearn/internal/service"
	"github.com/darshan27122006-bit/Equilearn/internal/util"

	"github.com/gin-gonic/gin"
)

type ClassroomController struct {
	ClassroomService *service.ClassroomService
}

func NewClassroomController(classroomService *service.ClassroomService) *ClassroomController {
	return &ClassroomController{ClassroomService: classroomService}
}

type CreateClassroomRequest struct {
	Name             string   `json:"name" binding:"required"`
	Subject          string   `json:"subject" binding:"required"`
	Description      string   `json:"description"`
	TeacherID        string   `json:"teacherId"`
	AllowedLanguages []string `json:"allowedLanguages"`
}

// Create godoc
// @Summary Create a classroom
// @Description Teachers create their own rooms; admins may assign any teacher
// @Tags classrooms
// @Security ApiKeyAuth
// @Param   body body CreateClassroomRequest true "classroom details"
// @Success 201 {object} util.Response{data=model.Classroom}
// @Failure 403 {object} util.Response
// @Router /api/classrooms [post]
func (c *ClassroomController) Create(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	if user.Role == model.Student {
		util.Forbidden(ctx)
		return
	}

	var req CreateClassroomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	classroom, err := c.ClassroomService.Create(user, service.CreateClassroomInput{
		Name:             req.Name,
		Subject:          req.Subject,
		Description:      req.Description,
		TeacherID:        req.TeacherID,
		AllowedLanguages: req.AllowedLanguages,
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, classroom)
}

// List godoc
// @Summary List classrooms visible to the caller
// @Tags classrooms
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Classroom}
// @Router /api/classrooms [get]
func (c *ClassroomController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.ClassroomService.ListFor(user))
}

// Get godoc
// @Summary Fetch one classroom
// @Tags classrooms
// @Security ApiKeyAuth
// @Param   id path string true "classroom id"
// @Success 200 {object} util.Response{data=model.Classroom}
// @Failure 404 {object} util.Response
// @Router /api/classrooms/{id} [get]
func (c *ClassroomController) Get(ctx *gin.Context) {
	classroom, err := c.ClassroomService.Get(ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, classroom)
}

type EnrollRequest struct {
	StudentID string `json:"studentId" binding:"required"`
}

// Enroll godoc
// @Summary Enroll a student
// @Description Only a teacher of the classroom or an admin may enroll; re-enrolling is a no-op
// @Tags classrooms
// @Security ApiKeyAuth
// @Param   id path string true "classroom id"
// @Param   body body EnrollRequest true "student to enroll"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/classrooms/{id}/students [post]
func (c *ClassroomController) Enroll(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ClassroomService.Enroll(user, ctx.Param("id"), req.StudentID); err != nil {
		switch {
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		case errors.Is(err, util.ErrNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

type AssignTeacherRequest struct {
	TeacherID string `json:"teacherId" binding:"required"`
}

// AssignTeacher godoc
// @Summary Assign a co-teacher
// @Description Admin-only operation
// @Tags classrooms
// @Security ApiKeyAuth
// @Param   id path string true "classroom id"
// @Param   body body AssignTeacherRequest true "teacher to assign"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/classrooms/{id}/teachers [post]
func (c *ClassroomController) AssignTeacher(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AssignTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ClassroomService.AssignTeacher(user, ctx.Param("id"), req.TeacherID); err != nil {
		switch {
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		case errors.Is(err, util.ErrNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}
