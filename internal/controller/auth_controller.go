package controller

import (
	"github.com/darshan27122006-bit/Equilearn/internal/model"
	"github.com/darshan27122006-bit/Equilearn/internal/service"
	"github.com/darshan27122006-bit/Equilearn/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6"`
	Role          string `json:"role" binding:"required,oneof=student teacher"`
	Language      string `json:"language" binding:"required"`
	InstitutionID string `json:"institutionId"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user account; the email must not be taken
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "registration payload"
// @Success 201 {object} util.Response{data=service.AuthResult}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response "email already registered"
// @Router /api/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result := c.AuthService.Register(req.Name, req.Email, req.Password,
		model.UserRole(req.Role), req.Language, req.InstitutionID)
	if !result.Success {
		if result.Error == util.ErrDuplicateEmail.Error() {
			util.Error(ctx, 409, result.Error)
		} else {
			util.Error(ctx, 500, result.Error)
		}
		return
	}

	util.Created(ctx, result)
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and returns the session token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "credentials"
// @Success 200 {object} util.Response{data=service.AuthResult}
// @Failure 401 {object} util.Response "invalid email or password"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result := c.AuthService.Login(req.Email, req.Password)
	if !result.Success {
		util.Error(ctx, 401, result.Error)
		return
	}

	util.Success(ctx, result)
}

// Logout godoc
// @Summary Log out
// @Description Clears the current session slot
// @Tags auth
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.AuthService.Logout(); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// GetProfile godoc
// @Summary Current user profile
// @Tags auth
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response
// @Router /api/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, user)
}

type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Language string `json:"language"`
}

// UpdateProfile godoc
// @Summary Update own profile
// @Description Merges the provided fields into the stored user
// @Tags auth
// @Security ApiKeyAuth
// @Param   body body UpdateProfileRequest true "fields to change"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/user/profile [put]
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	patch := map[string]any{}
	if req.Name != "" {
		patch["name"] = req.Name
	}
	if req.Language != "" {
		patch["language"] = req.Language
	}

	found, err := c.AuthService.UpdateProfile(user.ID, patch)
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
