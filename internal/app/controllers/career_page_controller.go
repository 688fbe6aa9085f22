package controllers

import (
	"net/http"

	"github.com/careerguide/backend/internal/app/models/dto"
	"github.com/careerguide/backend/internal/app/services"
	"github.com/careerguide/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CareerPageController handles the career page library
type CareerPageController struct {
	pageService services.CareerPageService
}

// NewCareerPageController creates a new CareerPageController
func NewCareerPageController(pageService services.CareerPageService) *CareerPageController {
	return &CareerPageController{
		pageService: pageService,
	}
}

// UploadPage creates a page from a multipart form
// @Summary Create a career page
// @Description Creates a page. The optional thumbnail is stored under its uploaded file name.
// @Tags career-pages
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Page title"
// @Param slug formData string true "Unique URL key"
// @Param content formData string false "Page body"
// @Param riasec_tags formData string false "Comma-separated RIASEC tags"
// @Param parent_id formData int false "Parent page ID"
// @Param thumbnail formData file false "Thumbnail image"
// @Success 200 {object} dto.APIResponse{data=models.CareerPage} "Page created"
// @Failure 400 {object} dto.ErrorResponse "Invalid form data or unknown parent"
// @Failure 409 {object} dto.ErrorResponse "Title or slug already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /career-pages/upload [post]
func (c *CareerPageController) UploadPage(ctx *gin.Context) {
	var form dto.CreateCareerPageForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	page, err := c.pageService.CreatePage(ctx.Request.Context(), &form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(page))
}

// ListPages lists career pages
// @Summary List career pages
// @Tags career-pages
// @Produce json
// @Param parent_id query int false "Only children of this page"
// @Param roots query bool false "Only pages without a parent"
// @Success 200 {object} dto.APIResponse{data=[]models.CareerPage} "Pages retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /career-pages [get]
func (c *CareerPageController) ListPages(ctx *gin.Context) {
	var query dto.ListCareerPagesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	pages, err := c.pageService.ListPages(ctx.Request.Context(), &query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(pages))
}

// GetPage returns one page
// @Summary Get a career page
// @Tags career-pages
// @Produce json
// @Param slug path string true "Page slug"
// @Success 200 {object} dto.APIResponse{data=models.CareerPage} "Page retrieved"
// @Failure 404 {object} dto.ErrorResponse "Page not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /career-pages/{slug} [get]
func (c *CareerPageController) GetPage(ctx *gin.Context) {
	page, err := c.pageService.GetPage(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(page))
}

// ListChildren returns the direct children of a page
// @Summary List child pages
// @Tags career-pages
// @Produce json
// @Param slug path string true "Parent page slug"
// @Success 200 {object} dto.APIResponse{data=[]models.CareerPage} "Children retrieved"
// @Failure 404 {object} dto.ErrorResponse "Page not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /career-pages/{slug}/children [get]
func (c *CareerPageController) ListChildren(ctx *gin.Context) {
	pages, err := c.pageService.ListChildren(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(pages))
}

// UpdatePage updates a page from a multipart form
// @Summary Update a career page
// @Description Overwrites title, content, tags and parent. new_slug renames the page; a new thumbnail gets a generated file name.
// @Tags career-pages
// @Accept multipart/form-data
// @Produce json
// @Param slug path string true "Current page slug"
// @Param title formData string true "Page title"
// @Param content formData string false "Page body"
// @Param riasec_tags formData string false "Comma-separated RIASEC tags"
// @Param parent_id formData int false "Parent page ID; omit to detach"
// @Param new_slug formData string false "New slug"
// @Param thumbnail formData file false "Replacement thumbnail"
// @Success 200 {object} dto.APIResponse{data=models.CareerPage} "Page updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid form data, unknown parent or parent cycle"
// @Failure 404 {object} dto.ErrorResponse "Page not found"
// @Failure 409 {object} dto.ErrorResponse "Title or slug already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /career-pages/{slug}/update [put]
func (c *CareerPageController) UpdatePage(ctx *gin.Context) {
	var form dto.UpdateCareerPageForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	page, err := c.pageService.UpdatePage(ctx.Request.Context(), ctx.Param("slug"), &form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(page))
}

// DeletePage deletes a page; its children become roots
// @Summary Delete a career page
// @Tags career-pages
// @Produce json
// @Param slug path string true "Page slug"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Page deleted"
// @Failure 404 {object} dto.ErrorResponse "Page not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /career-pages/{slug} [delete]
func (c *CareerPageController) DeletePage(ctx *gin.Context) {
	if err := c.pageService.DeletePage(ctx.Request.Context(), ctx.Param("slug")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Career page deleted"}))
}
