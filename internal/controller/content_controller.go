package controller

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/darshan27122006-bit/Equilearn/internal/model"
	"github.com/darshan27122006-bit/Equilearn/internal/service"
	"github.com/darshan27122006-bit/Equilearn/internal/util"
	"github.com/darshan27122006-bit/Equilearn/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ContentController struct {
	ContentService *service.ContentService
	StorageService *service.StorageService
}

func NewContentController(contentService *service.ContentService, storageService *service.StorageService) *ContentController {
	return &ContentController{ContentService: contentService, StorageService: storageService}
}

type UploadContentRequest struct {
	Subject     string `form:"subject" json:"subject" binding:"required"`
	Topic       string `form:"topic" json:"topic" binding:"required"`
	Level       string `form:"level" json:"level" binding:"required,oneof=beginner intermediate advanced"`
	Language    string `form:"language" json:"language" binding:"required"`
	Text        string `form:"text" json:"text" binding:"required"`
	ClassroomID string `form:"classroomId" json:"classroomId"`
}

// Upload godoc
// @Summary Upload a lesson
// @Description Accepts lesson text plus an optional media file; teacher uploads await approval
// @Tags content
// @Security ApiKeyAuth
// @Accept  multipart/form-data
// @Produce  json
// @Param   subject formData string true "subject"
// @Param   topic formData string true "topic"
// @Param   level formData string true "beginner, intermediate or advanced"
// @Param   language formData string true "language code"
// @Param   text formData string true "lesson body"
// @Param   media formData file false "audio or video attachment"
// @Success 201 {object} util.Response{data=model.Content}
// @Failure 400 {object} util.Response
// @Router /api/content [post]
func (c *ContentController) Upload(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	if user.Role == model.Student {
		util.Forbidden(ctx)
		return
	}

	var req UploadContentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	in := service.UploadContentInput{
		Subject:     req.Subject,
		Topic:       req.Topic,
		Level:       model.ContentLevel(req.Level),
		Language:    req.Language,
		Text:        req.Text,
		ClassroomID: req.ClassroomID,
	}

	if file, err := ctx.FormFile("media"); err == nil && file != nil {
		src, err := file.Open()
		if err != nil {
			util.BadRequest(ctx, "cannot read uploaded file")
			return
		}
		defer src.Close()

		ext := filepath.Ext(file.Filename)
		stored := fmt.Sprintf("%s%s", uuid.New().String(), ext)
		url, err := c.StorageService.Provider.Upload(ctx.Request.Context(), stored, src,
			file.Size, file.Header.Get("Content-Type"))
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		in.MediaURL = url
		in.MediaType = mediaTypeForExt(ext)
		in.OriginalURL = file.Filename

		// Probe is best-effort and only possible when the file landed
		// on local disk.
		if in.MediaType == "video" {
			if lp, ok := c.StorageService.Provider.(*service.LocalStorageProvider); ok {
				if info, err := util.ProbeVideo(filepath.Join(lp.Config.LocalPath, stored)); err == nil {
					logger.Log.Debug("probed uploaded video",
						zap.String("file", stored),
						zap.Float64("duration", info.Duration))
				}
			}
		}
	}

	content, err := c.ContentService.Upload(user, in)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, content)
}

func mediaTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".mp3", ".wav", ".ogg", ".m4a":
		return "audio"
	case ".mp4", ".webm", ".mov", ".mkv":
		return "video"
	default:
		return "file"
	}
}

// List godoc
// @Summary List lessons
// @Description Students only see approved lessons
// @Tags content
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Content}
// @Router /api/content [get]
func (c *ContentController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.ContentService.ListFor(user))
}

// Get godoc
// @Summary Fetch one lesson
// @Tags content
// @Security ApiKeyAuth
// @Param   id path string true "content id"
// @Success 200 {object} util.Response{data=model.Content}
// @Failure 404 {object} util.Response
// @Router /api/content/{id} [get]
func (c *ContentController) Get(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	content, err := c.ContentService.GetFor(user, ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, content)
}

type TranslateRequest struct {
	TargetLanguage  string   `json:"targetLanguage"`
	TargetLanguages []string `json:"targetLanguages"`
}

// Translate godoc
// @Summary Translate a lesson
// @Description Produces and stores a translation; pass targetLanguage for one language or targetLanguages for a batch
// @Tags content
// @Security ApiKeyAuth
// @Param   id path string true "content id"
// @Param   body body TranslateRequest true "target language(s)"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/content/{id}/translate [post]
func (c *ContentController) Translate(ctx *gin.Context) {
	var req TranslateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.TargetLanguage == "" && len(req.TargetLanguages) == 0 {
		util.BadRequest(ctx, "targetLanguage or targetLanguages required")
		return
	}

	if len(req.TargetLanguages) > 0 {
		translations, err := c.ContentService.TranslateAll(ctx.Request.Context(),
			util.GetTokenFromContext(ctx), ctx.Param("id"), req.TargetLanguages)
		if err != nil {
			if errors.Is(err, util.ErrNotFound) {
				util.NotFound(ctx)
			} else {
				util.LogInternalError(ctx, err)
			}
			return
		}
		util.Success(ctx, gin.H{"translations": translations})
		return
	}

	translation, err := c.ContentService.Translate(ctx.Request.Context(),
		util.GetTokenFromContext(ctx), ctx.Param("id"), req.TargetLanguage)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, translation)
}

type SimplifyRequest struct {
	Level string `json:"level" binding:"required,oneof=beginner intermediate advanced"`
}

// Simplify godoc
// @Summary Simplify a lesson
// @Tags content
// @Security ApiKeyAuth
// @Param   id path string true "content id"
// @Param   body body SimplifyRequest true "difficulty level"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/content/{id}/simplify [post]
func (c *ContentController) Simplify(ctx *gin.Context) {
	var req SimplifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	simplified, err := c.ContentService.Simplify(ctx.Request.Context(),
		util.GetTokenFromContext(ctx), ctx.Param("id"), req.Level)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"simplifiedText": simplified})
}

type SynthesizeRequest struct {
	Language string `json:"language" binding:"required"`
}

// Synthesize godoc
// @Summary Generate audio for a lesson
// @Description Produces a spoken rendering and stores the audio URL
// @Tags content
// @Security ApiKeyAuth
// @Param   id path string true "content id"
// @Param   body body SynthesizeRequest true "language"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/content/{id}/audio [post]
func (c *ContentController) Synthesize(ctx *gin.Context) {
	var req SynthesizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	audioURL, err := c.ContentService.Synthesize(ctx.Request.Context(),
		util.GetTokenFromContext(ctx), ctx.Param("id"), req.Language)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"audioUrl": audioURL})
}

type QuizRequest struct {
	Level string `json:"level" binding:"required,oneof=beginner intermediate advanced"`
}

// Quiz godoc
// @Summary Generate quiz questions for a lesson
// @Tags content
// @Security ApiKeyAuth
// @Param   id path string true "content id"
// @Param   body body QuizRequest true "difficulty level"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/content/{id}/quiz [post]
func (c *ContentController) Quiz(ctx *gin.Context) {
	var req QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	questions, err := c.ContentService.Quiz(ctx.Request.Context(),
		util.GetTokenFromContext(ctx), ctx.Param("id"), req.Level)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"questions": questions})
}

// Cache godoc
// @Summary Cache a lesson for offline use
// @Description Snapshots the lesson, preferring the caller's language
// @Tags content
// @Security ApiKeyAuth
// @Param   id path string true "content id"
// @Success 200 {object} util.Response{data=model.CachedLesson}
// @Failure 404 {object} util.Response
// @Router /api/content/{id}/cache [post]
func (c *ContentController) Cache(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	lesson, err := c.ContentService.CacheForOffline(user, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, lesson)
}

// CachedLessons godoc
// @Summary List cached lessons
// @Tags content
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.CachedLesson}
// @Router /api/lessons/cached [get]
func (c *ContentController) CachedLessons(ctx *gin.Context) {
	util.Success(ctx, c.ContentService.CachedLessons())
}
