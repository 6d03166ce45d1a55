package routes

import (
	"log"

	"guard-roster-backend/internal/api/handlers"
	"guard-roster-backend/internal/api/middleware"
	"guard-roster-backend/internal/config"
	"guard-roster-backend/internal/repository"
	"guard-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	siteRepo := repository.NewSiteRepository(db)
	userRepo := repository.NewUserRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	absenceRepo := repository.NewAbsenceRepository(db)
	clearanceRepo := repository.NewClearanceRepository(db)

	// Initialize roster planning services
	shiftService := service.NewShiftService(shiftRepo, siteRepo, validator)
	absenceService := service.NewAbsenceService(absenceRepo, userRepo, validator)
	assignmentService := service.NewAssignmentService(assignmentRepo, shiftRepo, userRepo, validator)
	clearanceService := service.NewClearanceService(clearanceRepo, userRepo, siteRepo, validator)

	// Initialize the staffing intelligence core
	weights, err := service.LoadScoringWeights(cfg.ScoringWeightsFile)
	if err != nil {
		log.Printf("Warning: invalid scoring weights, using defaults: %v", err)
		weights = service.DefaultScoringWeights()
	}
	teamStats := service.NewRosterTeamStats(shiftRepo, userRepo)
	scoringService := service.NewScoringService(shiftRepo, assignmentRepo, userRepo, teamStats, weights, cfg.RestPeriodHours)
	availabilityService := service.NewAvailabilityService(assignmentRepo, absenceRepo, clearanceRepo)
	rankingService := service.NewRankingService(shiftRepo, userRepo, availabilityService, scoringService)
	conflictService := service.NewConflictService(shiftRepo, clearanceRepo, cfg.RestPeriodHours, cfg.MaxWeeklyHours, cfg.ConflictWindowHours)
	autoFillService := service.NewAutoFillService(shiftRepo, assignmentRepo, rankingService, cfg.AutoFillMinScore)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	shiftHandler := handlers.NewShiftHandler(shiftService)
	absenceHandler := handlers.NewAbsenceHandler(absenceService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	clearanceHandler := handlers.NewClearanceHandler(clearanceService)
	staffingHandler := handlers.NewStaffingHandler(rankingService, scoringService, shiftRepo)
	conflictHandler := handlers.NewConflictHandler(conflictService)
	autoFillHandler := handlers.NewAutoFillHandler(autoFillService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Shift routes
		shifts := v1.Group("/shifts")
		{
			shifts.POST("", shiftHandler.CreateShift)
			shifts.GET("/:id", shiftHandler.GetShift)
			shifts.PUT("/:id", shiftHandler.UpdateShift)
			shifts.DELETE("/:id", shiftHandler.DeleteShift)
			shifts.GET("/:id/assignments", assignmentHandler.GetShiftAssignments)
			shifts.GET("/:id/candidates", staffingHandler.GetShiftCandidates)
			shifts.GET("/:id/candidates/:user_id/score", staffingHandler.GetCandidateScore)
			shifts.GET("/:id/conflicts", conflictHandler.GetShiftConflicts)
		}

		// Site sub-resource routes
		sites := v1.Group("/sites")
		{
			sites.GET("/:id/shifts", shiftHandler.GetShiftsBySite)
			sites.GET("/:id/clearances", clearanceHandler.GetSiteClearances)
		}

		// Absence routes
		absences := v1.Group("/absences")
		{
			absences.POST("", absenceHandler.CreateAbsence)
			absences.GET("/:id", absenceHandler.GetAbsence)
			absences.POST("/:id/approve", absenceHandler.ApproveAbsence)
			absences.POST("/:id/reject", absenceHandler.RejectAbsence)
			absences.POST("/:id/cancel", absenceHandler.CancelAbsence)
		}

		// User sub-resource routes
		users := v1.Group("/users")
		{
			users.GET("/:id/absences", absenceHandler.GetUserAbsences)
		}

		// Assignment routes
		assignments := v1.Group("/assignments")
		{
			assignments.POST("", assignmentHandler.CreateAssignment)
			assignments.POST("/:id/confirm", assignmentHandler.ConfirmAssignment)
			assignments.POST("/:id/cancel", assignmentHandler.CancelAssignment)
		}

		// Clearance routes
		clearances := v1.Group("/clearances")
		{
			clearances.POST("", clearanceHandler.GrantClearance)
			clearances.POST("/:id/activate", clearanceHandler.ActivateClearance)
			clearances.POST("/:id/revoke", clearanceHandler.RevokeClearance)
		}

		// Conflict analysis routes
		v1.GET("/conflicts", conflictHandler.AnalyzeConflicts)

		// Auto-fill routes
		autoFill := v1.Group("/auto-fill")
		{
			autoFill.POST("", autoFillHandler.AutoFill)
			autoFill.POST("/preview", autoFillHandler.PreviewAutoFill)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
