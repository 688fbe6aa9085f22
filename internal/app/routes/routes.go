package routes

import (
	"github.com/careerguide/backend/internal/app/controllers"
	"github.com/careerguide/backend/internal/app/models"
	"github.com/careerguide/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Controllers groups the HTTP handlers mounted by SetupRouter
type Controllers struct {
	Homepage   *controllers.HomepageController
	Auth       *controllers.AuthController
	Admin      *controllers.AdminController
	CareerTest *controllers.CareerTestController
	CareerPage *controllers.CareerPageController
}

// SetupRouter configures all application routes.
// With protectAdmin set, every /admin route requires an admin bearer token.
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware, protectAdmin bool) {
	router.GET("/homepage", c.Homepage.GetHomepage)

	// --- Public auth routes ---
	router.POST("/register", c.Auth.Register)
	router.POST("/login", c.Auth.Login)

	// --- Admin routes ---
	admin := router.Group("/admin")
	if protectAdmin {
		admin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleAdmin)))
	}
	{
		admin.GET("/students", c.Admin.ListStudents)

		tests := admin.Group("/tests")
		{
			tests.GET("", c.CareerTest.ListTests)
			tests.POST("/create", c.CareerTest.CreateTest)
			tests.GET("/:id", c.CareerTest.GetTest)
			tests.PUT("/:id/update", c.CareerTest.UpdateTest)
			tests.POST("/:id/duplicate", c.CareerTest.DuplicateTest)
			tests.DELETE("/:id", c.CareerTest.DeleteTest)
		}

		// profile routes last; static segments above take precedence over :id
		admin.GET("/:id", c.Admin.GetAdmin)
		admin.PUT("/:id", c.Admin.UpdateAdmin)
	}

	// --- Career page routes ---
	pages := router.Group("/career-pages")
	{
		pages.GET("", c.CareerPage.ListPages)
		pages.POST("/upload", c.CareerPage.UploadPage)
		pages.GET("/:slug", c.CareerPage.GetPage)
		pages.GET("/:slug/children", c.CareerPage.ListChildren)
		pages.PUT("/:slug/update", c.CareerPage.UpdatePage)
		pages.DELETE("/:slug", c.CareerPage.DeletePage)
	}
}
