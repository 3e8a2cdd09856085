package controller

import (
	"errors"

	"github.com/darshan27122006-bit/Equilearn/internal/model"
	"github.com/darshan27122006-bit/Equilearn/internal/service"
	"github.com/darshan27122006-bit/Equilearn/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

type OpenProgressRequest struct {
	ContentID string `json:"contentId" binding:"required"`
}

// Open godoc
// @Summary Open a lesson for tracking
// @Description Creates a progress row on first open, refreshes lastAccessed afterwards
// @Tags progress
// @Security ApiKeyAuth
// @Param   body body OpenProgressRequest true "lesson to open"
// @Success 200 {object} util.Response{data=model.Progress}
// @Failure 404 {object} util.Response
// @Router /api/progress/open [post]
func (c *ProgressController) Open(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req OpenProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.ProgressService.Open(user.ID, req.ContentID)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, progress)
}

type RecordProgressRequest struct {
	Completion int `json:"completion"`
	Score      int `json:"score"`
}

// Record godoc
// @Summary Record progress on a lesson
// @Description Completion is clamped to the 0..100 range
// @Tags progress
// @Security ApiKeyAuth
// @Param   id path string true "progress id"
// @Param   body body RecordProgressRequest true "completion and score"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/progress/{id} [put]
func (c *ProgressController) Record(ctx *gin.Context) {
	var req RecordProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	found, err := c.ProgressService.Record(ctx.Param("id"), req.Completion, req.Score)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if !found {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, nil)
}

// List godoc
// @Summary List progress
// @Description Students get their own rows; teachers and admins get everything
// @Tags progress
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Progress}
// @Router /api/progress [get]
func (c *ProgressController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if user.Role == model.Student {
		util.Success(ctx, c.ProgressService.ForStudent(user.ID))
		return
	}
	util.Success(ctx, c.ProgressService.All())
}
