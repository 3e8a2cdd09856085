package controller

import (
	"errors"

	"github.com/darshan27122006-bit/Equilearn/internal/model"
	"github.com/darshan27122006-bit/Equilearn/internal/service"
	"github.com/darshan27122006-bit/Equilearn/internal/util"

	"github.com/gin-gonic/gin"
)

type TutorController struct {
	TutorService *service.TutorService
}

func NewTutorController(tutorService *service.TutorService) *TutorController {
	return &TutorController{TutorService: tutorService}
}

type AskRequest struct {
	Question  string `json:"question" binding:"required"`
	ContentID string `json:"contentId"`
}

// Ask godoc
// @Summary Ask the AI tutor
// @Description Answers the question and appends it to the student's question log
// @Tags questions
// @Security ApiKeyAuth
// @Param   body body AskRequest true "question"
// @Success 200 {object} util.Response{data=model.Question}
// @Router /api/questions/ask [post]
func (c *TutorController) Ask(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	if user.Role != model.Student {
		util.Forbidden(ctx)
		return
	}

	var req AskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.TutorService.Ask(ctx.Request.Context(),
		util.GetTokenFromContext(ctx), user, req.ContentID, req.Question)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, question)
}

// History godoc
// @Summary Question history
// @Description The caller's past questions, newest first
// @Tags questions
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Question}
// @Router /api/questions [get]
func (c *TutorController) History(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.TutorService.History(user.ID))
}
