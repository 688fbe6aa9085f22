package controllers

import (
	"net/http"

	"github.com/careerguide/backend/internal/app/models/dto"
	"github.com/careerguide/backend/internal/app/services"
	"github.com/careerguide/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CareerTestController handles career test administration
type CareerTestController struct {
	testService services.CareerTestService
}

// NewCareerTestController creates a new CareerTestController
func NewCareerTestController(testService services.CareerTestService) *CareerTestController {
	return &CareerTestController{
		testService: testService,
	}
}

// CreateTest creates a test with its questions
// @Summary Create a career test
// @Description Creates a test and its questions in one transaction. Questions keep the order they are sent in.
// @Tags career-tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CareerTestRequest true "Test with questions"
// @Success 200 {object} dto.APIResponse{data=models.CareerTest} "Test created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Test name already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests/create [post]
func (c *CareerTestController) CreateTest(ctx *gin.Context) {
	var req dto.CareerTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	test, err := c.testService.CreateTest(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(test))
}

// ListTests lists every test with its questions
// @Summary List career tests
// @Tags career-tests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.CareerTest} "Tests retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests [get]
func (c *CareerTestController) ListTests(ctx *gin.Context) {
	tests, err := c.testService.ListTests(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(tests))
}

// GetTest returns one test
// @Summary Get a career test
// @Tags career-tests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.CareerTest} "Test retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid test ID"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests/{id} [get]
func (c *CareerTestController) GetTest(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "test")
	if !ok {
		return
	}

	test, err := c.testService.GetTest(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(test))
}

// UpdateTest replaces a test and all of its questions
// @Summary Replace a career test
// @Description Overwrites the test fields and replaces the whole question list
// @Tags career-tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID" Format(int64) minimum(1)
// @Param request body dto.CareerTestRequest true "New test state"
// @Success 200 {object} dto.APIResponse{data=models.CareerTest} "Test updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 409 {object} dto.ErrorResponse "Test name already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests/{id}/update [put]
func (c *CareerTestController) UpdateTest(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "test")
	if !ok {
		return
	}

	var req dto.CareerTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	test, err := c.testService.UpdateTest(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(test))
}

// DuplicateTest copies a test and its questions
// @Summary Duplicate a career test
// @Description Copies the test under the name "<name> (Copy)" with fresh question ids
// @Tags career-tests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.DuplicateCareerTestResponse} "Test duplicated"
// @Failure 400 {object} dto.ErrorResponse "Invalid test ID"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 409 {object} dto.ErrorResponse "A copy with this name already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests/{id}/duplicate [post]
func (c *CareerTestController) DuplicateTest(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "test")
	if !ok {
		return
	}

	newID, err := c.testService.DuplicateTest(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.DuplicateCareerTestResponse{
		Message: "Test duplicated",
		NewID:   newID,
	}))
}

// DeleteTest deletes a test and its questions
// @Summary Delete a career test
// @Tags career-tests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Test deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid test ID"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests/{id} [delete]
func (c *CareerTestController) DeleteTest(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "test")
	if !ok {
		return
	}

	if err := c.testService.DeleteTest(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Career test deleted"}))
}
