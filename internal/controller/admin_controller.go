package controller

import (
	"github.com/darshan27122006-bit/Equilearn/internal/model"
	"github.com/darshan27122006-bit/Equilearn/internal/service"
	"github.com/darshan27122006-bit/Equilearn/internal/store"
	"github.com/darshan27122006-bit/Equilearn/internal/util"

	"github.com/gin-gonic/gin"
)

// AdminController groups the management endpoints behind the admin
// role gate.
type AdminController struct {
	Store          *store.Store
	ContentService *service.ContentService
}

func NewAdminController(st *store.Store, contentService *service.ContentService) *AdminController {
	return &AdminController{Store: st, ContentService: contentService}
}

// ListUsers godoc
// @Summary List all users
// @Tags admin
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /api/admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	users := c.Store.Users().GetAll()
	sanitized := make([]model.User, 0, len(users))
	for _, u := range users {
		sanitized = append(sanitized, u.Sanitized())
	}
	util.Success(ctx, sanitized)
}

// GetUser godoc
// @Summary Fetch one user
// @Tags admin
// @Security ApiKeyAuth
// @Param   id path string true "user id"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /api/admin/users/{id} [get]
func (c *AdminController) GetUser(ctx *gin.Context) {
	user, ok := c.Store.Users().Find(ctx.Param("id"))
	if !ok {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, user.Sanitized())
}

type UpdateUserRequest struct {
	Name          string `json:"name"`
	Role          string `json:"role" binding:"omitempty,oneof=student teacher admin"`
	Language      string `json:"language"`
	InstitutionID string `json:"institutionId"`
}

// UpdateUser godoc
// @Summary Update a user
// @Description Merges the provided fields into the stored record
// @Tags admin
// @Security ApiKeyAuth
// @Param   id path string true "user id"
// @Param   body body UpdateUserRequest true "fields to change"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/users/{id} [put]
func (c *AdminController) UpdateUser(ctx *gin.Context) {
	var req UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	patch := map[string]any{}
	if req.Name != "" {
		patch["name"] = req.Name
	}
	if req.Role != "" {
		patch["role"] = req.Role
	}
	if req.Language != "" {
		patch["language"] = req.Language
	}
	if req.InstitutionID != "" {
		patch["institutionId"] = req.InstitutionID
	}

	found, err := c.Store.Users().Update(ctx.Param("id"), patch)
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

// DeleteUser godoc
// @Summary Delete a user
// @Tags admin
// @Security ApiKeyAuth
// @Param   id path string true "user id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/users/{id} [delete]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	found, err := c.Store.Users().Delete(ctx.Param("id"))
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

// ApproveContent godoc
// @Summary Approve a pending lesson
// @Tags admin
// @Security ApiKeyAuth
// @Param   id path string true "content id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/content/{id}/approve [post]
func (c *AdminController) ApproveContent(ctx *gin.Context) {
	found, err := c.ContentService.Approve(ctx.Param("id"))
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

// RejectContent godoc
// @Summary Reject and remove a lesson
// @Tags admin
// @Security ApiKeyAuth
// @Param   id path string true "content id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/content/{id} [delete]
func (c *AdminController) RejectContent(ctx *gin.Context) {
	found, err := c.ContentService.Reject(ctx.Param("id"))
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

type UpdateLanguagesRequest struct {
	SupportedLanguages []string `json:"supportedLanguages" binding:"required,min=1"`
}

// UpdateInstitutionLanguages godoc
// @Summary Update an institution's supported languages
// @Tags admin
// @Security ApiKeyAuth
// @Param   id path string true "institution id"
// @Param   body body UpdateLanguagesRequest true "language codes"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/institutions/{id}/languages [put]
func (c *AdminController) UpdateInstitutionLanguages(ctx *gin.Context) {
	var req UpdateLanguagesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	found, err := c.Store.Institutions().Update(ctx.Param("id"), map[string]any{
		"supportedLanguages": req.SupportedLanguages,
	})
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
