package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	analyticsHttp "session-analytics-service/internal/analytics/adapters/http/fiber"
	analyticsPg "session-analytics-service/internal/analytics/adapters/postgres"
	analyticsRedis "session-analytics-service/internal/analytics/adapters/redis"
	"session-analytics-service/internal/analytics/adapters/similarity"
	"session-analytics-service/internal/analytics/core/engine"
	"session-analytics-service/internal/analytics/core/ports"
	analyticsUsecase "session-analytics-service/internal/analytics/core/usecase"

	trackingHttp "session-analytics-service/internal/tracking/adapters/http/fiber"
	trackingPg "session-analytics-service/internal/tracking/adapters/postgres"
	trackingUsecase "session-analytics-service/internal/tracking/core/usecase"

	"session-analytics-service/internal/platform/logger"
	"session-analytics-service/internal/platform/postgres"
	"session-analytics-service/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "session-analytics-service/docs"
)

// @title Session Analytics Service API
// @version 1.0
// @description Funnel, retention, journey and sentiment analytics over user sessions.
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(cfg.App.ServiceName, cfg.App.Env, cfg.App.LogLevel)

	// DB connection
	db, err := postgres.Open(context.Background(), &cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres unavailable")
	}
	defer db.Close()

	// Adapter-level DB wrapper, shared by both contexts
	sqlDB := analyticsPg.NewSQLDB(db)

	// Stores
	eventStore := analyticsPg.NewEventStore(sqlDB)
	sentimentStore := analyticsPg.NewSentimentStore(sqlDB)
	interactionRepository := trackingPg.NewInteractionRepository(sqlDB)

	// Optional adapters
	var dashboardCache ports.DashboardCachePort
	if cfg.Redis.Enabled {
		client, err := analyticsRedis.NewClient(context.Background(), &cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, dashboard cache disabled")
		} else {
			defer client.Close()
			dashboardCache = analyticsRedis.NewDashboardCache(client, cfg.Redis.TTL)
		}
	}

	var similarityPort ports.SimilarityPort
	if cfg.Similarity.BaseURL != "" {
		similarityPort = similarity.NewClient(cfg.Similarity.BaseURL, cfg.Similarity.Timeout)
	} else {
		log.Info().Msg("SIMILARITY_URL not set, similar users endpoint disabled")
	}

	scoring := engine.DefaultScoringConfig()
	scoring.RapidClickWindow = cfg.Sentiment.RapidClickWindow()
	scoring.LongPauseWindow = cfg.Sentiment.PauseWindow()
	scoring.LabelThreshold = cfg.Sentiment.LabelThreshold
	scorer := engine.NewScorer(scoring)

	// Usecases
	analytics := analyticsHttp.AnalyticsUseCases{
		Funnel:    analyticsUsecase.NewFunnelUseCase(eventStore, logger.Component("funnel")),
		Dropoff:   analyticsUsecase.NewDropoffUseCase(eventStore, logger.Component("dropoff")),
		Trends:    analyticsUsecase.NewTrendsUseCase(eventStore, logger.Component("trends")),
		Cohort:    analyticsUsecase.NewCohortUseCase(eventStore, logger.Component("cohort")),
		Journey:   analyticsUsecase.NewJourneyUseCase(eventStore, logger.Component("journey")),
		Dashboard: analyticsUsecase.NewDashboardUseCase(eventStore, scorer, dashboardCache, logger.Component("dashboard")),
	}
	behaviorUC := analyticsUsecase.NewUserBehaviorUseCase(eventStore, sentimentStore, logger.Component("user_behavior"))
	similarUC := analyticsUsecase.NewSimilarUsersUseCase(eventStore, similarityPort, logger.Component("similar_users"))
	sentimentUC := analyticsUsecase.NewSentimentUseCase(eventStore, scorer, logger.Component("sentiment"))
	backfillUC := analyticsUsecase.NewSentimentBackfillUseCase(eventStore, sentimentStore, scorer, cfg.Sentiment.RecentWindow(), logger.Component("sentiment_backfill"))
	recordUC := trackingUsecase.NewRecordInteractionUseCase(interactionRepository, logger.Component("tracking"))

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{AppName: cfg.App.ServiceName})
	app.Use(recover.New())

	app.Get("/health", analyticsHttp.Health(cfg.App.ServiceName))

	// tracking endpoints
	interactionHandler := trackingHttp.NewInteractionHandler(recordUC)
	app.Post("/interactions", interactionHandler.RecordInteraction)
	app.Post("/interactions/bulk", interactionHandler.BulkRecordInteractions)

	// analytics endpoints
	analyticsHandler := analyticsHttp.NewAnalyticsHandler(analytics)
	app.Get("/dashboard/metrics", analyticsHandler.GetDashboard)
	app.Get("/funnel/analysis", analyticsHandler.GetFunnel)
	app.Get("/funnel/dropoff", analyticsHandler.GetDropoffs)
	app.Get("/analytics/conversion-trends", analyticsHandler.GetConversionTrends)
	app.Get("/analytics/cohort", analyticsHandler.GetCohorts)
	app.Get("/analytics/user-journey", analyticsHandler.GetJourneys)

	// user endpoints; /users/similar must win over /users/:user_id
	userHandler := analyticsHttp.NewUserHandler(behaviorUC, similarUC)
	sentimentHandler := analyticsHttp.NewSentimentHandler(sentimentUC, backfillUC)
	app.Get("/users/similar/:user_id", userHandler.GetSimilar)
	app.Get("/users/:user_id/behavior", userHandler.GetBehavior)
	app.Get("/users/:user_id/sentiment", sentimentHandler.GetUserSentiment)

	// sentiment endpoints
	app.Get("/sentiment/analysis", sentimentHandler.GetPageSentiments)
	app.Get("/sentiment/trends", sentimentHandler.GetSentimentTrends)
	app.Post("/sentiment/backfill", sentimentHandler.RunBackfill)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	addr := cfg.Server.Addr()
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Error().Err(err).Msg("fiber stopped")
		}
	}()

	log.Info().Str("addr", addr).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info().Msg("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("fiber shutdown error")
	}

	log.Info().Msg("server exiting")
}
