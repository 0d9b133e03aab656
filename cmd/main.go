package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sheetscan/omr-backend/config"
	"github.com/sheetscan/omr-backend/database"
	_ "github.com/sheetscan/omr-backend/docs" // Swagger docs
	evaluatectrl "github.com/sheetscan/omr-backend/internal/controller/evaluate"
	paperctrl "github.com/sheetscan/omr-backend/internal/controller/paper"
	"github.com/sheetscan/omr-backend/internal/dto"
	"github.com/sheetscan/omr-backend/internal/logger"
	"github.com/sheetscan/omr-backend/internal/model"
	"github.com/sheetscan/omr-backend/internal/repository"
	"github.com/sheetscan/omr-backend/internal/service"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title OMR Evaluation System API
// @version 1.0
// @description API for automated OMR sheet evaluation and scoring
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
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
			repository.NewQuestionPaperRepository,
			repository.NewResultRepository,
		),

		// Services layer
		fx.Provide(
			service.NewQuestionPaperService,
			service.NewResultService,
			service.NewSheetStorageService,
			service.NewRandomSheetScorer,
			service.NewEvaluationService,
		),

		// API controllers layer
		fx.Provide(
			paperctrl.NewQuestionPaperController,
			evaluatectrl.NewEvaluationController,
		),

		fx.Invoke(EnsureUploadDir),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Route Gin request logging through zerolog
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
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
	paperCtrl *paperctrl.QuestionPaperController,
	evalCtrl *evaluatectrl.EvaluationController,
) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "healthy", Message: "OMR Evaluation System API"})
	})

	api := router.Group("/api/v1")
	{
		questions := api.Group("/questions")
		questions.POST("", paperCtrl.CreateQuestionPaper)
		questions.GET("", paperCtrl.GetQuestionPapers)
		questions.GET("/:question_paper_id", paperCtrl.GetQuestionPaper)
		questions.PUT("/:question_paper_id", paperCtrl.UpdateQuestionPaper)
		questions.DELETE("/:question_paper_id", paperCtrl.DeleteQuestionPaper)

		evaluate := api.Group("/evaluate")
		evaluate.POST("", evalCtrl.EvaluateSheet)
		evaluate.GET("/results", evalCtrl.GetResults)
		evaluate.GET("/results/:result_id", evalCtrl.GetResult)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("OMR evaluation API server starting on port %s", cfg.Server.Port)
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

// EnsureUploadDir creates the transient upload staging directory if absent.
func EnsureUploadDir(storage service.SheetStorageService) error {
	if err := storage.EnsureDir(); err != nil {
		log.Error().Err(err).Msg("Failed to create upload directory")
		return err
	}
	return nil
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.QuestionPaper{},
		&model.Result{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
