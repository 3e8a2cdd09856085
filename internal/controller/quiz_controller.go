package controller

import (
	"errors"

	"github.com/darshan27122006-bit/Equilearn/internal/service"
	"github.com/darshan27122006-bit/Equilearn/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

type QuizQuestionRequest struct {
	Text          string   `json:"text" binding:"required"`
	Type          string   `json:"type" binding:"omitempty,oneof=mcq short_answer riddle"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer" binding:"required"`
	Explanation   string   `json:"explanation"`
}

type CreateQuizRequest struct {
	ClassroomID string                `json:"classroomId" binding:"required"`
	ContentID   string                `json:"contentId"`
	Topic       string                `json:"topic" binding:"required"`
	Questions   []QuizQuestionRequest `json:"questions" binding:"required,min=1,dive"`
}

// Create godoc
// @Summary Create a quiz
// @Description Only a teacher of the classroom may author quizzes for it
// @Tags quizzes
// @Security ApiKeyAuth
// @Param   body body CreateQuizRequest true "quiz with questions"
// @Success 201 {object} util.Response{data=model.Quiz}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes [post]
func (c *QuizController) Create(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	in := service.CreateQuizInput{
		ClassroomID: req.ClassroomID,
		ContentID:   req.ContentID,
		Topic:       req.Topic,
	}
	for _, q := range req.Questions {
		in.Questions = append(in.Questions, service.QuizQuestionInput{
			Text:          q.Text,
			Type:          q.Type,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}

	quiz, err := c.QuizService.Create(user, in)
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
	util.Created(ctx, quiz)
}

// Get godoc
// @Summary Fetch one quiz
// @Description Students receive the quiz without the answer key
// @Tags quizzes
// @Security ApiKeyAuth
// @Param   id path string true "quiz id"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [get]
func (c *QuizController) Get(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	quiz, err := c.QuizService.Get(user, ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, quiz)
}

// ForClassroom godoc
// @Summary List a classroom's quizzes
// @Tags quizzes
// @Security ApiKeyAuth
// @Param   classroomId path string true "classroom id"
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Router /api/quizzes/classroom/{classroomId} [get]
func (c *QuizController) ForClassroom(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.QuizService.ForClassroom(user, ctx.Param("classroomId")))
}

type AttemptQuizRequest struct {
	Answers map[string]string `json:"answers" binding:"required"`
}

// Attempt godoc
// @Summary Submit quiz answers for grading
// @Description Answers are keyed by question id and graded case-insensitively
// @Tags quizzes
// @Security ApiKeyAuth
// @Param   id path string true "quiz id"
// @Param   body body AttemptQuizRequest true "answers keyed by question id"
// @Success 200 {object} util.Response{data=model.QuizAttempt}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id}/attempt [post]
func (c *QuizController) Attempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AttemptQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.QuizService.Attempt(user, ctx.Param("id"), req.Answers)
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
	util.Success(ctx, attempt)
}

// Attempts godoc
// @Summary List a quiz's graded attempts
// @Description Only a teacher of the classroom or an admin may review attempts
// @Tags quizzes
// @Security ApiKeyAuth
// @Param   id path string true "quiz id"
// @Success 200 {object} util.Response{data=[]model.QuizAttempt}
// @Failure 403 {object} util.Response
// @Router /api/quizzes/{id}/attempts [get]
func (c *QuizController) Attempts(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	attempts, err := c.QuizService.Attempts(user, ctx.Param("id"))
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
	util.Success(ctx, attempts)
}
