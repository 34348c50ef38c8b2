package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rezaali07/NextLearn-backend/internal/delivery/http/controllers"
	authctl "github.com/rezaali07/NextLearn-backend/internal/delivery/http/controllers/auth"
	categoryctl "github.com/rezaali07/NextLearn-backend/internal/delivery/http/controllers/category"
	coursectl "github.com/rezaali07/NextLearn-backend/internal/delivery/http/controllers/course"
	"github.com/rezaali07/NextLearn-backend/internal/delivery/http/controllers/middleware"
	progressctl "github.com/rezaali07/NextLearn-backend/internal/delivery/http/controllers/progress"
	"github.com/rezaali07/NextLearn-backend/internal/models"
	"github.com/rezaali07/NextLearn-backend/internal/service"
	"github.com/rezaali07/NextLearn-backend/pkg/logger"
)

func InitRoutes(l logger.Log, u service.Collection) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	config := cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	r.Use(cors.New(config))

	authProvider := middleware.NewAuthMiddlewareProvider(l, u.Auth)

	statusController := controllers.NewStatusHandler()
	authController := authctl.NewAuthHandler(l, u.Auth)
	managementController := coursectl.NewManagementHandler(l, u.Management)
	queryController := coursectl.NewQueryHandler(l, u.Query)
	engagementController := coursectl.NewEngagementHandler(l, u.Engagement)
	purchaseController := coursectl.NewPurchaseHandler(l, u.Purchase)
	accessController := coursectl.NewAccessHandler(l, u.Access)
	earningsController := coursectl.NewEarningsHandler(l, u.Earnings)
	progressController := progressctl.NewProgressHandler(l, u.Progress)
	categoryController := categoryctl.NewCategoryHandler(l, u.Category)

	v1 := r.Group("/v1", middleware.LoggingMiddleware(l))
	{
		v1.GET("/status", statusController.Status)

		v1.GET("/me", authProvider.AuthMiddleware, authController.Me)

		auth := v1.Group("/auth")
		{
			auth.POST("/login", authController.Login)
			auth.POST("/register", authController.Register)
			auth.POST("/refresh", authController.Refresh)
		}

		courses := v1.Group("/courses")
		{
			courses.GET("", queryController.ListCourses)
			courses.GET("/search", queryController.SearchCourses)
			courses.GET("/:course_id", queryController.CourseByID)

			admin := courses.Group("", authProvider.AuthMiddleware, middleware.RequireRoles(models.AdminRole))
			{
				admin.POST("", managementController.CreateCourse)
				admin.PATCH("/:course_id", managementController.UpdateCourse)
				admin.DELETE("/:course_id", managementController.DeleteCourse)
				admin.PUT("/:course_id/image", managementController.UploadCourseImage)

				admin.POST("/:course_id/lessons", managementController.AddLesson)
				admin.PUT("/:course_id/lessons/:lesson_id", managementController.UpdateLesson)
				admin.DELETE("/:course_id/lessons/:lesson_id", managementController.DeleteLesson)

				admin.POST("/:course_id/quizzes", managementController.AddQuiz)
				admin.PUT("/:course_id/quizzes/:quiz_id", managementController.UpdateQuiz)
				admin.DELETE("/:course_id/quizzes/:quiz_id", managementController.DeleteQuiz)

				admin.GET("/:course_id/purchasers", purchaseController.Purchasers)
			}

			client := courses.Group("", authProvider.AuthMiddleware)
			{
				client.GET("/:course_id/lessons", queryController.CourseLessons)
				client.GET("/:course_id/quizzes", queryController.CourseQuizzes)
				client.GET("/:course_id/access", accessController.CourseAccess)

				client.POST("/:course_id/like", engagementController.LikeCourse)
				client.DELETE("/:course_id/like", engagementController.UnlikeCourse)
				client.POST("/:course_id/favorite", engagementController.FavoriteCourse)
				client.DELETE("/:course_id/favorite", engagementController.UnfavoriteCourse)

				client.GET("/liked", engagementController.LikedCourses)
				client.GET("/favorited", engagementController.FavoritedCourses)
				client.GET("/purchased", purchaseController.PurchasedCourses)

				client.POST("/:course_id/purchase", purchaseController.PurchaseCourse)

				client.POST("/:course_id/lessons/:lesson_id/completion", progressController.ToggleLessonCompletion)
				client.GET("/:course_id/completed-lessons", progressController.CompletedLessons)
			}
		}

		progress := v1.Group("/progress", authProvider.AuthMiddleware)
		{
			progress.POST("/quiz", progressController.RecordQuizAttempt)
			progress.GET("/quiz", progressController.QuizProgress)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", categoryController.ListCategories)
			categories.POST("", authProvider.AuthMiddleware, middleware.RequireRoles(models.AdminRole), categoryController.CreateCategory)
		}

		earnings := v1.Group("/earnings", authProvider.AuthMiddleware, middleware.RequireRoles(models.AdminRole))
		{
			earnings.GET("/summary", earningsController.Summary)
		}
	}
	return r
}
