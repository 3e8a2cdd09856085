package app

import (
	"github.com/darshan27122006-bit/Equilearn/docs"
	"github.com/darshan27122006-bit/Equilearn/internal/config"
	"github.com/darshan27122006-bit/Equilearn/internal/middleware"
	"github.com/darshan27122006-bit/Equilearn/internal/model"
	"github.com/darshan27122006-bit/Equilearn/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(a.services.auth, cfg))
	{
		a.registerUserRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerUserRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.POST("/logout", c.auth.Logout)
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/user/profile", c.auth.UpdateProfile)

	// Lessons
	rg.POST("/content", c.content.Upload)
	rg.GET("/content", c.content.List)
	rg.GET("/content/:id", c.content.Get)
	rg.POST("/content/:id/translate", c.content.Translate)
	rg.POST("/content/:id/simplify", c.content.Simplify)
	rg.POST("/content/:id/audio", c.content.Synthesize)
	rg.POST("/content/:id/quiz", c.content.Quiz)
	rg.POST("/content/:id/cache", c.content.Cache)
	rg.GET("/lessons/cached", c.content.CachedLessons)

	// Progress
	rg.POST("/progress/open", c.progress.Open)
	rg.PUT("/progress/:id", c.progress.Record)
	rg.GET("/progress", c.progress.List)
	rg.GET("/teacher/students/progress",
		middleware.RoleMiddleware(model.Teacher), c.progress.List)

	// AI tutor
	rg.POST("/questions/ask", c.tutor.Ask)
	rg.GET("/questions", c.tutor.History)

	// Classrooms
	rg.POST("/classrooms", c.classroom.Create)
	rg.GET("/classrooms", c.classroom.List)
	rg.GET("/classrooms/:id", c.classroom.Get)
	rg.POST("/classrooms/:id/students",
		middleware.RoleMiddleware(model.Teacher), c.classroom.Enroll)
	rg.POST("/classrooms/:id/teachers",
		middleware.RoleMiddleware(model.Admin), c.classroom.AssignTeacher)

	// Quizzes
	rg.POST("/quizzes",
		middleware.RoleMiddleware(model.Teacher), c.quiz.Create)
	rg.GET("/quizzes/classroom/:classroomId", c.quiz.ForClassroom)
	rg.GET("/quizzes/:id", c.quiz.Get)
	rg.POST("/quizzes/:id/attempt",
		middleware.RoleMiddleware(model.Student), c.quiz.Attempt)
	rg.GET("/quizzes/:id/attempts", c.quiz.Attempts)

	// Assignments
	rg.POST("/assignments",
		middleware.RoleMiddleware(model.Teacher), c.assign.Create)
	rg.GET("/assignments/classroom/:classroomId", c.assign.ForClassroom)
	rg.POST("/assignments/:id/submit",
		middleware.RoleMiddleware(model.Student), c.assign.Submit)
	rg.GET("/assignments/:id/submissions", c.assign.Submissions)
	rg.PUT("/submissions/:id/grade",
		middleware.RoleMiddleware(model.Teacher), c.assign.Grade)

	// Direct messages and doubt threads
	rg.POST("/messages", c.message.Send)
	rg.GET("/messages/unread/count", c.message.UnreadCount)
	rg.GET("/messages/:userId", c.message.Conversation)
	rg.POST("/doubts", c.message.OpenDoubt)
	rg.GET("/doubts/:classroomId", c.message.ClassroomDoubts)
	rg.POST("/doubts/:id/replies", c.message.ReplyDoubt)
	rg.POST("/doubts/:id/resolve", c.message.ResolveDoubt)
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.admin.ListUsers)
		admin.GET("/users/:id", c.admin.GetUser)
		admin.PUT("/users/:id", c.admin.UpdateUser)
		admin.DELETE("/users/:id", c.admin.DeleteUser)

		admin.POST("/content/:id/approve", c.admin.ApproveContent)
		admin.DELETE("/content/:id", c.admin.RejectContent)

		admin.PUT("/institutions/:id/languages", c.admin.UpdateInstitutionLanguages)
	}
}
