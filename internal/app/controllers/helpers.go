package controllers

import (
	"net/http"
	"strconv"

	"github.com/careerguide/backend/internal/app/models/dto"
	"github.com/gin-gonic/gin"
)

// parseIDParam reads a positive int64 path parameter. It answers 400 and returns false on failure.
func parseIDParam(ctx *gin.Context, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+label+" ID").
			WithField(name).
			WithDetails(label + " ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
