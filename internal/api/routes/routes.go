package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"campus-collab-backend/internal/api/handlers"
	"campus-collab-backend/internal/api/middleware"
	"campus-collab-backend/internal/auth"
	"campus-collab-backend/internal/config"
	"campus-collab-backend/internal/logger"
	"campus-collab-backend/internal/mailer"
	"campus-collab-backend/internal/repository"
	"campus-collab-backend/internal/service"
)

// SetupRoutes wires repositories, services and handlers onto a router
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()
	log := logger.New()

	// Repositories
	studentRepo := repository.NewStudentRepository(db)
	mentorRepo := repository.NewMentorRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Shared infrastructure
	authService := auth.NewService(cfg.JWTSecret, cfg.JWTExpiryHours, cfg.CookieSecure)
	authMiddleware := auth.NewMiddleware(authService)
	mail := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.FromEmail, log)

	// Services
	studentService := service.NewStudentService(studentRepo, authService, mail, validate, log)
	mentorService := service.NewMentorService(mentorRepo, authService, mail, validate, log)
	adminService := service.NewAdminService(adminRepo, authService, validate, cfg.AdminSecurityCode)
	teamService := service.NewTeamService(teamRepo, studentRepo, mentorRepo, validate, log)
	projectService := service.NewProjectService(projectRepo, teamRepo, validate)
	resourceService := service.NewResourceService(resourceRepo, teamRepo, projectRepo, mentorRepo, validate, log)
	commentService := service.NewCommentService(commentRepo, projectRepo, validate)
	githubService := service.NewGitHubService(cfg.GitHubToken, teamRepo, projectRepo, mentorRepo, log)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	studentAuthHandler := handlers.NewStudentAuthHandler(studentService, authService)
	mentorAuthHandler := handlers.NewMentorAuthHandler(mentorService, authService)
	adminHandler := handlers.NewAdminHandler(adminService, teamService, mentorService, authService)
	teamHandler := handlers.NewTeamHandler(teamService)
	projectHandler := handlers.NewProjectHandler(projectService)
	resourceHandler := handlers.NewResourceHandler(resourceService)
	commentHandler := handlers.NewCommentHandler(commentService)
	mentorHandler := handlers.NewMentorHandler(teamService, githubService)

	// Health and docs
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	// Authentication
	authGroup := api.Group("/auth")
	{
		student := authGroup.Group("/student")
		student.POST("/signup", studentAuthHandler.SignUp)
		student.POST("/login", studentAuthHandler.Login)
		student.POST("/logout", studentAuthHandler.Logout)
		student.POST("/verify-email", studentAuthHandler.VerifyEmail)

		mentor := authGroup.Group("/mentor")
		mentor.POST("/signup", mentorAuthHandler.SignUp)
		mentor.POST("/login", mentorAuthHandler.Login)
		mentor.POST("/logout", mentorAuthHandler.Logout)
		mentor.POST("/verify-email", mentorAuthHandler.VerifyEmail)

		admin := authGroup.Group("/admin")
		admin.POST("/setup", adminHandler.Setup)
		admin.POST("/login", adminHandler.Login)
		admin.POST("/logout", adminHandler.Logout)
	}

	// Team registry (students)
	team := api.Group("/team")
	team.Use(authMiddleware.RequireAuth())
	{
		team.GET("", teamHandler.List)
		team.GET("/:teamId", teamHandler.Get)

		students := team.Group("")
		students.Use(authMiddleware.RequireRole(auth.RoleStudent))
		students.POST("/create", teamHandler.Create)
		students.POST("/request", teamHandler.Request)
		students.POST("/manage-request", teamHandler.ManageRequest)
		students.POST("/join-code", teamHandler.JoinByCode)
		students.POST("/leave", teamHandler.Leave)
		students.POST("/remove-member", teamHandler.RemoveMember)
		students.DELETE("/delete", teamHandler.Delete)
		students.POST("/edit", teamHandler.Edit)
		students.POST("/check", teamHandler.Check)
	}

	// Admin operations
	admin := api.Group("/admin")
	admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(auth.RoleAdmin))
	{
		admin.GET("/teams", adminHandler.GetAllTeams)
		admin.GET("/mentors", adminHandler.GetAllMentors)
		admin.POST("/assign-mentor", adminHandler.AssignMentor)
	}

	// Mentor views
	mentor := api.Group("/mentor")
	mentor.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(auth.RoleMentor, auth.RoleAdmin))
	{
		mentor.GET("/:mentorId/teams", mentorHandler.AssignedTeams)
		mentor.GET("/:mentorId/github-stats", mentorHandler.AllTeamsGitHubStats)
		mentor.GET("/teams/:teamId/github-stats", mentorHandler.TeamGitHubStats)
	}

	// Project catalog
	projects := api.Group("/projects")
	{
		projects.GET("", projectHandler.List)
		projects.GET("/:projectId", projectHandler.Get)
		projects.GET("/team/:teamId", projectHandler.GetByTeam)

		owners := projects.Group("")
		owners.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(auth.RoleStudent))
		owners.POST("/create", projectHandler.Create)
		owners.PUT("/:projectId", projectHandler.Update)
		owners.DELETE("/:projectId", projectHandler.Delete)
	}

	// Resource catalog and matching
	resources := api.Group("/resources")
	{
		resources.GET("", resourceHandler.List)
		resources.GET("/:resourceId", resourceHandler.Get)

		matching := resources.Group("")
		matching.Use(authMiddleware.RequireAuth())
		matching.GET("/team/:teamId", resourceHandler.MatchForTeam)
		matching.POST("/generate/team/:teamId", resourceHandler.GenerateForTeam)
		matching.POST("/generate/project/:projectId", resourceHandler.GenerateForProject)

		mentorsOnly := resources.Group("")
		mentorsOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(auth.RoleMentor))
		mentorsOnly.POST("", resourceHandler.Create)
		mentorsOnly.PUT("/:resourceId", resourceHandler.Update)
		mentorsOnly.DELETE("/:resourceId", resourceHandler.Delete)
	}

	// Discussion boards
	comments := api.Group("/comments")
	{
		comments.GET("/:projectId", commentHandler.List)

		authed := comments.Group("")
		authed.Use(authMiddleware.RequireAuth())
		authed.POST("", commentHandler.Post)
		authed.DELETE("/:id", commentHandler.Delete)
	}

	return router
}
