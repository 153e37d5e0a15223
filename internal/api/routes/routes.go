package routes

import (
	"hackconnect-backend/internal/api/handlers"
	"hackconnect-backend/internal/api/middleware"
	"hackconnect-backend/internal/appwrite"
	"hackconnect-backend/internal/config"
	"hackconnect-backend/internal/repository"
	"hackconnect-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(client *appwrite.Client, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize Appwrite services
	db := appwrite.NewDatabases(client, cfg.AppwriteDatabaseID)
	users := appwrite.NewUsers(client)

	// Initialize repositories
	teamRepo := repository.NewTeamRepository(db, cfg.CollectionTeams)
	hackathonRepo := repository.NewHackathonRepository(db, cfg.CollectionHackathons)
	submissionRepo := repository.NewSubmissionRepository(db, cfg.CollectionSubmissions)
	scoreRepo := repository.NewScoreRepository(db, cfg.CollectionScores)
	announcementRepo := repository.NewAnnouncementRepository(db, cfg.CollectionAnnouncements)
	userRepo := repository.NewUserRepository(db, cfg.CollectionUsers)
	directory := repository.NewDirectory(users)

	// Initialize services
	teamService := service.NewTeamService(teamRepo, directory, validator)
	hackathonService := service.NewHackathonService(hackathonRepo, validator)
	submissionService := service.NewSubmissionService(submissionRepo, teamRepo, validator)
	judgingService := service.NewJudgingService(scoreRepo, validator)
	organizerService := service.NewOrganizerService(userRepo, teamRepo, submissionRepo, announcementRepo, validator)
	userService := service.NewUserService(userRepo, directory, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, cfg)
	teamHandler := handlers.NewTeamHandler(teamService)
	hackathonHandler := handlers.NewHackathonHandler(hackathonService, teamService)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	judgingHandler := handlers.NewJudgingHandler(judgingService)
	organizerHandler := handlers.NewOrganizerHandler(organizerService)
	userHandler := handlers.NewUserHandler(userService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := router.Group("/api")
	{
		hackathons := api.Group("/hackathons")
		{
			hackathons.POST("/", hackathonHandler.CreateHackathon)
			hackathons.GET("/", hackathonHandler.ListHackathons)
			hackathons.POST("/recommendations", hackathonHandler.Recommend)
			hackathons.GET("/:id", hackathonHandler.GetHackathon)
			hackathons.GET("/:id/teams", hackathonHandler.ListHackathonTeams)
		}

		teams := api.Group("/teams")
		{
			teams.POST("/", teamHandler.CreateTeam)
			teams.GET("/", teamHandler.ListTeams)
			teams.POST("/join", teamHandler.JoinTeam)
			teams.POST("/approve", teamHandler.ApproveRequest)
			teams.POST("/reject", teamHandler.RejectRequest)
			teams.POST("/leave", teamHandler.LeaveTeam)
			teams.DELETE("/delete", teamHandler.DeleteTeam)
		}

		submissions := api.Group("/submissions")
		{
			submissions.POST("/", submissionHandler.CreateSubmission)
			submissions.GET("/:hackathonId", submissionHandler.ListSubmissions)
		}

		judging := api.Group("/judging")
		{
			judging.POST("/score", judgingHandler.SubmitScore)
		}

		organizer := api.Group("/organizer")
		{
			organizer.GET("/:hackathonId/stats", organizerHandler.GetStats)
			organizer.POST("/:hackathonId/announce", organizerHandler.Announce)
		}

		users := api.Group("/users")
		{
			users.GET("/:id", userHandler.GetProfile)
			users.PUT("/:id", userHandler.UpdateProfile)
		}
	}

	return router
}
