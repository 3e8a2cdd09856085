package controller

import (
	"errors"

	"github.com/darshan27122006-bit/Equilearn/internal/model"
	"github.com/darshan27122006-bit/Equilearn/internal/service"
	"github.com/darshan27122006-bit/Equilearn/internal/util"

	"github.com/gin-gonic/gin"
)

type MessageController struct {
	MessageService *service.MessageService
}

func NewMessageController(messageService *service.MessageService) *MessageController {
	return &MessageController{MessageService: messageService}
}

type SendMessageRequest struct {
	ReceiverID string `json:"receiverId" binding:"required"`
	Content    string `json:"content" binding:"required"`
	MediaURL   string `json:"mediaUrl"`
	MediaType  string `json:"mediaType"`
}

// Send godoc
// @Summary Send a direct message
// @Tags messages
// @Security ApiKeyAuth
// @Param   body body SendMessageRequest true "message"
// @Success 201 {object} util.Response{data=model.DirectMessage}
// @Failure 404 {object} util.Response "receiver not found"
// @Router /api/messages [post]
func (c *MessageController) Send(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	msg, err := c.MessageService.Send(user.ID, service.SendMessageInput{
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
		MediaURL:   req.MediaURL,
		MediaType:  req.MediaType,
	})
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, msg)
}

// Conversation godoc
// @Summary Conversation with a peer
// @Description Returns both directions oldest first and marks received messages read
// @Tags messages
// @Security ApiKeyAuth
// @Param   userId path string true "peer user id"
// @Success 200 {object} util.Response{data=[]model.DirectMessage}
// @Router /api/messages/{userId} [get]
func (c *MessageController) Conversation(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	conv, err := c.MessageService.Conversation(user.ID, ctx.Param("userId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, conv)
}

// UnreadCount godoc
// @Summary Count unread messages
// @Tags messages
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/messages/unread/count [get]
func (c *MessageController) UnreadCount(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, gin.H{"unread": c.MessageService.UnreadCount(user.ID)})
}

type OpenDoubtRequest struct {
	ClassroomID string `json:"classroomId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
}

// OpenDoubt godoc
// @Summary Open a doubt thread
// @Description The caller must be enrolled in the classroom
// @Tags doubts
// @Security ApiKeyAuth
// @Param   body body OpenDoubtRequest true "doubt"
// @Success 201 {object} util.Response{data=model.DoubtThread}
// @Failure 403 {object} util.Response "not enrolled"
// @Failure 404 {object} util.Response
// @Router /api/doubts [post]
func (c *MessageController) OpenDoubt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	if user.Role != model.Student {
		util.Forbidden(ctx)
		return
	}

	var req OpenDoubtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	thread, err := c.MessageService.OpenDoubt(user.ID, req.ClassroomID, req.Title, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNotEnrolled):
			util.Error(ctx, 403, err.Error())
		case errors.Is(err, util.ErrNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, thread)
}

type ReplyDoubtRequest struct {
	Content string `json:"content" binding:"required"`
}

// ReplyDoubt godoc
// @Summary Reply in a doubt thread
// @Tags doubts
// @Security ApiKeyAuth
// @Param   id path string true "thread id"
// @Param   body body ReplyDoubtRequest true "reply"
// @Success 200 {object} util.Response{data=model.DoubtThread}
// @Failure 404 {object} util.Response
// @Router /api/doubts/{id}/replies [post]
func (c *MessageController) ReplyDoubt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ReplyDoubtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	thread, err := c.MessageService.ReplyDoubt(ctx.Param("id"), user.ID, req.Content)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, thread)
}

// ResolveDoubt godoc
// @Summary Mark a doubt thread answered
// @Tags doubts
// @Security ApiKeyAuth
// @Param   id path string true "thread id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/doubts/{id}/resolve [post]
func (c *MessageController) ResolveDoubt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	if user.Role == model.Student {
		util.Forbidden(ctx)
		return
	}

	found, err := c.MessageService.ResolveDoubt(ctx.Param("id"))
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

// ClassroomDoubts godoc
// @Summary List a classroom's doubt threads
// @Tags doubts
// @Security ApiKeyAuth
// @Param   classroomId path string true "classroom id"
// @Success 200 {object} util.Response{data=[]model.DoubtThread}
// @Router /api/doubts/{classroomId} [get]
func (c *MessageController) ClassroomDoubts(ctx *gin.Context) {
	util.Success(ctx, c.MessageService.DoubtsForClassroom(ctx.Param("classroomId")))
}
