package controllers

import (
	"net/http"

	"github.com/careerguide/backend/internal/app/models/dto"
	"github.com/gin-gonic/gin"
)

// HomepageController serves the static landing content
type HomepageController struct {
	content dto.HomepageResponse
}

// NewHomepageController creates a new HomepageController
func NewHomepageController() *HomepageController {
	return &HomepageController{
		content: dto.HomepageResponse{
			Slogan:       "Explore Your Future",
			Services:     []string{"Career Test", "Skill Report", "Career Library"},
			Reviews:      []string{"Amazing platform!", "Helped me choose my path!"},
			ContactEmail: "support@careerguidance.com",
		},
	}
}

// GetHomepage returns the landing page content
// @Summary Homepage content
// @Tags homepage
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.HomepageResponse}
// @Router /homepage [get]
func (c *HomepageController) GetHomepage(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.content))
}
