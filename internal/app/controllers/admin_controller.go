package controllers

import (
	"context"
	"net/http"

	"github.com/careerguide/backend/internal/app/models/dto"
	"github.com/careerguide/backend/internal/app/services"
	"github.com/careerguide/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ProfileAuthorizer decides whether an authenticated admin may edit a profile
type ProfileAuthorizer interface {
	ValidateProfileUpdate(ctx context.Context, requesterID, targetID int64) error
}

// AdminController handles the admin profile and student listing
type AdminController struct {
	adminService services.AdminService
	authz        ProfileAuthorizer
}

// NewAdminController creates a new AdminController. authz is consulted only
// for requests that passed JWT authentication and may be nil.
func NewAdminController(adminService services.AdminService, authz ProfileAuthorizer) *AdminController {
	return &AdminController{
		adminService: adminService,
		authz:        authz,
	}
}

// ListStudents lists students
// @Summary List students
// @Description Lists every student, optionally filtered by a case-sensitive first name substring and sorted
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param search query string false "First name substring"
// @Param sort_by query string false "Sort column" Enums(id, first_name, last_name, grade, country, email) default(id)
// @Param order query string false "Sort direction" Enums(asc, desc) default(asc)
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid sort parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students [get]
func (c *AdminController) ListStudents(ctx *gin.Context) {
	var query dto.ListStudentsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	students, err := c.adminService.ListStudents(ctx.Request.Context(), &query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students))
}

// GetAdmin returns an admin profile
// @Summary Get admin profile
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Admin} "Admin retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid admin ID"
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/{id} [get]
func (c *AdminController) GetAdmin(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "admin")
	if !ok {
		return
	}

	admin, err := c.adminService.GetProfile(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(admin))
}

// UpdateAdmin updates an admin profile
// @Summary Update admin profile
// @Description Applies the supplied fields. Email cannot be changed; a new password is rehashed.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID" Format(int64) minimum(1)
// @Param request body dto.UpdateAdminRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Admin} "Admin updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Not your profile"
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/{id} [put]
func (c *AdminController) UpdateAdmin(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "admin")
	if !ok {
		return
	}

	if requesterID, ok := ctx.Get(middleware.ContextKeyUserID); ok && c.authz != nil {
		if err := c.authz.ValidateProfileUpdate(ctx.Request.Context(), requesterID.(int64), id); err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
	}

	var req dto.UpdateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	admin, err := c.adminService.UpdateProfile(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(admin))
}
