package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/studentvault/backend/internal/app/controllers"
	"github.com/studentvault/backend/internal/app/models/dto"
	"github.com/studentvault/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	recordController *controllers.RecordController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	users := v1.Group("/users")
	{
		users.POST("/register", authController.Register)
		users.POST("/login", authController.Login)
		users.POST("/refresh-token", authController.Refresh)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/users/logout", authController.Logout)
		authenticated.GET("/users/me", userController.GetProfile)
		authenticated.PATCH("/users/update", userController.UpdateProfile)
		authenticated.PATCH("/users/image", userController.UpdateProfileImage)

		placements := authenticated.Group("/placements")
		{
			placements.POST("/:slot", userController.AttachPlacement)
			placements.PATCH("/:id", userController.UpdatePlacement)
		}

		records := authenticated.Group("/records")
		{
			records.POST("/internships", recordController.CreateInternship)
			records.PATCH("/internships/:id", recordController.UpdateInternship)

			records.POST("/higher-educations", recordController.CreateHigherEducation)
			records.PATCH("/higher-educations/:id", recordController.UpdateHigherEducation)

			records.POST("/projects", recordController.CreateProject)
			records.PATCH("/projects/:id", recordController.UpdateProject)

			records.POST("/awards", recordController.CreateAward)
			records.PATCH("/awards/:id", recordController.UpdateAward)

			records.POST("/exams", recordController.CreateExam)
			records.PATCH("/exams/:id", recordController.UpdateExam)
		}
	}

	// Health check endpoint (public)
	v1.GET("/ping", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
