package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quizdeck/config"
	"github.com/quizdeck/quizdeck/database"
	"github.com/quizdeck/quizdeck/internal/auth"
	"github.com/quizdeck/quizdeck/internal/cache"
	adminctrl "github.com/quizdeck/quizdeck/internal/controller/admin"
	userctrl "github.com/quizdeck/quizdeck/internal/controller/user"
	"github.com/quizdeck/quizdeck/internal/logger"
	"github.com/quizdeck/quizdeck/internal/model"
	"github.com/quizdeck/quizdeck/internal/repository"
	"github.com/quizdeck/quizdeck/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const leaderboardCacheTTL = 3 * time.Second

func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewRedisClient,
			NewLeaderboardCache,
			NewGinEngine,
		),

		// Repositories layer
		fx.Provide(
			repository.NewQuizRepository,
			repository.NewResultRepository,
			repository.NewStudentRepository,
		),

		// Services layer
		fx.Provide(
			service.NewQuizService,
			service.NewLeaderboardService,
			service.NewAttemptService,
			service.NewCodeRunnerService,
			service.NewAdminQuizService,
			service.NewStudentService,
		),

		// API controllers layer
		fx.Provide(
			userctrl.NewQuizController,
			userctrl.NewAttemptController,
			userctrl.NewLeaderboardController,
			userctrl.NewCodeController,
			adminctrl.NewAdminQuizController,
			adminctrl.NewAdminStudentController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
	})
}

func NewLeaderboardCache(client *redis.Client) *cache.LeaderboardCache {
	return cache.NewLeaderboardCache(client, leaderboardCacheTTL)
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Route gin's request log through zerolog.
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

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server
// lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	quizCtrl *userctrl.QuizController,
	attemptCtrl *userctrl.AttemptController,
	leaderboardCtrl *userctrl.LeaderboardController,
	codeCtrl *userctrl.CodeController,
	adminQuizCtrl *adminctrl.AdminQuizController,
	adminStudentCtrl *adminctrl.AdminStudentController,
) {
	authRequired := auth.Middleware(cfg.JWTSecret)

	userAPIGroup := router.Group("/api/v1")
	userAPIGroup.Use(authRequired)
	{
		userAPIGroup.GET("/quizzes", quizCtrl.GetQuizzes)
		userAPIGroup.GET("/quizzes/:quiz_id", quizCtrl.GetQuiz)

		userAPIGroup.POST("/attempts/check", attemptCtrl.CheckAttempt)
		userAPIGroup.POST("/attempts", attemptCtrl.SubmitAttempt)

		userAPIGroup.GET("/leaderboard/:quiz_id", leaderboardCtrl.GetLeaderboard)

		userAPIGroup.POST("/run-code", codeCtrl.RunCode)
		userAPIGroup.POST("/run-tests", codeCtrl.RunTests)
	}

	adminAPIGroup := router.Group("/api/v1/admin")
	adminAPIGroup.Use(authRequired, auth.RequireAdmin())
	{
		adminAPIGroup.POST("/quizzes", adminQuizCtrl.CreateQuiz)
		adminAPIGroup.GET("/quizzes", adminQuizCtrl.ListQuizzes)
		adminAPIGroup.DELETE("/quizzes/:quiz_id", adminQuizCtrl.DeleteQuiz)
		adminAPIGroup.GET("/quizzes/:quiz_id/report", adminQuizCtrl.GetReport)

		adminAPIGroup.POST("/students", adminStudentCtrl.CreateStudent)
		adminAPIGroup.GET("/students", adminStudentCtrl.ListStudents)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Quiz API server starting on port %s", cfg.Server.Port)
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

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Quiz{},
		&model.Question{},
		&model.Option{},
		&model.TestCase{},
		&model.Result{},
		&model.Student{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
