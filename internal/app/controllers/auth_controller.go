package controllers

import (
	"errors"
	"net/http"

	"github.com/careerguide/backend/internal/app/models/dto"
	"github.com/careerguide/backend/internal/app/services"
	"github.com/careerguide/backend/internal/middleware"
	"github.com/careerguide/backend/internal/pkg/apperrors"
	"github.com/gin-gonic/gin"
)

// AuthController handles student registration and login
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register handles student registration
// @Summary Register a student
// @Description Creates a student account. Premium is false and no tests are completed yet.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Student information"
// @Success 200 {object} dto.APIResponse{data=dto.RegisterResponse} "Student registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or email already exists (RES_004)"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	id, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		// a taken email is reported as 400 with the conflict code
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			middleware.HandleAPIErrorWithStatus(ctx, http.StatusBadRequest, err)
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.RegisterResponse{
		ID:      id,
		Message: "Student registered successfully",
	}))
}

// Login handles student and admin login
// @Summary Log in
// @Description Checks the credentials against students first, then admins, and returns the matched role with an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
