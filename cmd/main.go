package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/huyphan2705/hireflow/config"
	"github.com/huyphan2705/hireflow/database"
	_ "github.com/huyphan2705/hireflow/docs" // Swagger docs - auto-generated
	"github.com/huyphan2705/hireflow/internal/controller"
	candidatectrl "github.com/huyphan2705/hireflow/internal/controller/candidate"
	recruiterctrl "github.com/huyphan2705/hireflow/internal/controller/recruiter"
	"github.com/huyphan2705/hireflow/internal/logger"
	"github.com/huyphan2705/hireflow/internal/model"
	"github.com/huyphan2705/hireflow/internal/repository"
	"github.com/huyphan2705/hireflow/internal/service"
)

// @title Hireflow Interview API
// @version 1.0
// @description AI-graded screening interviews for the Hireflow recruiting platform: template generation, invitations, candidate sessions, and background grading.
// @contact.name API Support
// @contact.email support@hireflow.dev
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories layer
		fx.Provide(
			repository.NewJobRepository,
			repository.NewApplicationRepository,
			repository.NewTemplateRepository,
			repository.NewInterviewRepository,
			repository.NewAnswerRepository,
		),

		// Services layer
		fx.Provide(
			service.NewOwnershipService,
			service.NewGeminiLLMService,
			service.NewTemplateService,
			service.NewInvitationService,
			service.NewSessionService,
			service.NewGradingService,
			service.NewResultService,
			service.NewGradingSweeper,
		),

		// API controllers layer
		fx.Provide(
			recruiterctrl.NewRecruiterInterviewController,
			candidatectrl.NewCandidateInterviewController,
		),

		fx.Invoke(MigrateAndSeedDB),
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(StartGradingSweeper),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Actor-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	recruiterCtrl *recruiterctrl.RecruiterInterviewController,
	candidateCtrl *candidatectrl.CandidateInterviewController,
) {
	// Recruiter routes (prefixed with /api/v1/recruiter)
	recruiterGroup := router.Group("/api/v1/recruiter")
	recruiterGroup.Use(controller.RequireActor())
	{
		recruiterGroup.POST("/templates", recruiterCtrl.CreateTemplate)
		recruiterGroup.GET("/templates", recruiterCtrl.ListTemplates)
		recruiterGroup.POST("/invitations", recruiterCtrl.SendInvite)
		recruiterGroup.POST("/interviews/:interview_id/grade", recruiterCtrl.RequestGrading)
		recruiterGroup.GET("/results", recruiterCtrl.ListResults)
		recruiterGroup.GET("/results/:interview_id", recruiterCtrl.GetResultDetail)
	}

	// Candidate routes (prefixed with /api/v1)
	candidateGroup := router.Group("/api/v1")
	candidateGroup.Use(controller.RequireActor())
	{
		candidateGroup.GET("/interviews/:interview_id", candidateCtrl.GetInterview)
		candidateGroup.POST("/interviews/:interview_id/start", candidateCtrl.StartInterview)
		candidateGroup.POST("/interviews/:interview_id/submit", candidateCtrl.SubmitInterview)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Hireflow interview API starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func MigrateAndSeedDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Job{},
		&model.JobApplication{},
		&model.InterviewTemplate{},
		&model.InterviewQuestion{},
		&model.StudentInterview{},
		&model.StudentAnswer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")

	return database.SeedDemoData(db)
}

func StartGradingSweeper(lc fx.Lifecycle, sweeper *service.GradingSweeper) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return sweeper.Start()
		},
		OnStop: func(ctx context.Context) error {
			sweeper.Stop()
			return nil
		},
	})
}
