package controller

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/darshan27122006-bit/Equilearn/internal/service"
	"github.com/darshan27122006-bit/Equilearn/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AssignmentController struct {
	AssignmentService *service.AssignmentService
	StorageService    *service.StorageService
}

func NewAssignmentController(assignmentService *service.AssignmentService, storageService *service.StorageService) *AssignmentController {
	return &AssignmentController{AssignmentService: assignmentService, StorageService: storageService}
}

// storeFormFile saves a multipart file under a fresh name and returns
// its serving URL.
func (c *AssignmentController) storeFormFile(ctx *gin.Context, field string) (string, error) {
	file, err := ctx.FormFile(field)
	if err != nil || file == nil {
		return "", err
	}
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	stored := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(file.Filename))
	return c.StorageService.Provider.Upload(ctx.Request.Context(), stored, src,
		file.Size, file.Header.Get("Content-Type"))
}

type CreateAssignmentRequest struct {
	ClassroomID string `form:"classroomId" binding:"required"`
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	DueDate     string `form:"dueDate"`
}

// Create godoc
// @Summary Create an assignment
// @Description Only a teacher of the classroom may post assignments; an attachment is optional
// @Tags assignments
// @Security ApiKeyAuth
// @Accept  multipart/form-data
// @Param   classroomId formData string true "classroom id"
// @Param   title formData string true "title"
// @Param   description formData string false "description"
// @Param   dueDate formData string false "RFC 3339 due date"
// @Param   file formData file false "attachment"
// @Success 201 {object} util.Response{data=model.Assignment}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/assignments [post]
func (c *AssignmentController) Create(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateAssignmentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	in := service.CreateAssignmentInput{
		ClassroomID: req.ClassroomID,
		Title:       req.Title,
		Description: req.Description,
	}
	if req.DueDate != "" {
		due, err := time.Parse(time.RFC3339, req.DueDate)
		if err != nil {
			util.BadRequest(ctx, "dueDate must be RFC 3339")
			return
		}
		in.DueDate = &due
	}
	if url, err := c.storeFormFile(ctx, "file"); err == nil && url != "" {
		in.FileURL = url
	}

	assignment, err := c.AssignmentService.Create(user, in)
	if err != nil {
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
	util.Created(ctx, assignment)
}

// ForClassroom godoc
// @Summary List a classroom's assignments
// @Tags assignments
// @Security ApiKeyAuth
// @Param   classroomId path string true "classroom id"
// @Success 200 {object} util.Response{data=[]model.Assignment}
// @Router /api/assignments/classroom/{classroomId} [get]
func (c *AssignmentController) ForClassroom(ctx *gin.Context) {
	util.Success(ctx, c.AssignmentService.ForClassroom(ctx.Param("classroomId")))
}

// Submit godoc
// @Summary Hand in work for an assignment
// @Description The file is required and the student must be enrolled in the classroom
// @Tags assignments
// @Security ApiKeyAuth
// @Accept  multipart/form-data
// @Param   id path string true "assignment id"
// @Param   file formData file true "submission file"
// @Success 200 {object} util.Response{data=model.Submission}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/assignments/{id}/submit [post]
func (c *AssignmentController) Submit(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	url, err := c.storeFormFile(ctx, "file")
	if err != nil || url == "" {
		util.BadRequest(ctx, "file required")
		return
	}

	submission, err := c.AssignmentService.Submit(user, ctx.Param("id"), url)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNotEnrolled):
			util.Forbidden(ctx)
		case errors.Is(err, util.ErrNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, submission)
}

// Submissions godoc
// @Summary List an assignment's submissions
// @Description Only a teacher of the classroom or an admin may review submissions
// @Tags assignments
// @Security ApiKeyAuth
// @Param   id path string true "assignment id"
// @Success 200 {object} util.Response{data=[]model.Submission}
// @Failure 403 {object} util.Response
// @Router /api/assignments/{id}/submissions [get]
func (c *AssignmentController) Submissions(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	subs, err := c.AssignmentService.Submissions(user, ctx.Param("id"))
	if err != nil {
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
	util.Success(ctx, subs)
}

type GradeSubmissionRequest struct {
	Grade    string `json:"grade" binding:"required"`
	Feedback string `json:"feedback"`
}

// Grade godoc
// @Summary Grade a submission
// @Description Only a teacher of the classroom or an admin may grade
// @Tags assignments
// @Security ApiKeyAuth
// @Param   id path string true "submission id"
// @Param   body body GradeSubmissionRequest true "grade and feedback"
// @Success 200 {object} util.Response{data=model.Submission}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/submissions/{id}/grade [put]
func (c *AssignmentController) Grade(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req GradeSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	submission, err := c.AssignmentService.Grade(user, ctx.Param("id"), req.Grade, req.Feedback)
	if err != nil {
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
	util.Success(ctx, submission)
}
