package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/vuhoang/roastline/adapters/audio_storage"
	"github.com/vuhoang/roastline/adapters/event"
	httpAdapter "github.com/vuhoang/roastline/adapters/http"
	"github.com/vuhoang/roastline/adapters/llm"
	"github.com/vuhoang/roastline/adapters/persistence"
	"github.com/vuhoang/roastline/adapters/scraper"
	"github.com/vuhoang/roastline/adapters/tts"
	feedbackUC "github.com/vuhoang/roastline/internal/application/usecase/feedback"
	profilefetchUC "github.com/vuhoang/roastline/internal/application/usecase/profilefetch"
	roastUC "github.com/vuhoang/roastline/internal/application/usecase/roast"
	"github.com/vuhoang/roastline/internal/config"
	"github.com/vuhoang/roastline/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting Roastline API Server...")

	// Long-lived clients, constructed once and passed down.
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Provider adapters
	profileScraper, err := scraper.NewRapidAPIAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init scraper adapter", err)
	}
	llmService, err := llm.NewOpenAILLMAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init LLM adapter", err)
	}
	synthesizer, err := tts.NewElevenLabsAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init TTS adapter", err)
	}
	artifactStore, err := audio_storage.NewLocalArtifactStore(cfg.Audio.Dir, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init audio storage", err)
	}

	// Repositories
	profileCache := persistence.NewRedisProfileCache(redisClient, appLogger)
	feedbackRepo := persistence.NewPostgresFeedbackRepo(dbPool, appLogger)
	roastRecordRepo := persistence.NewPostgresRoastRecordRepo(dbPool, appLogger)

	// Use cases
	fetchProfileUC := profilefetchUC.NewFetchProfileUseCase(profileCache, profileScraper, appLogger)
	composer := roastUC.NewComposer(llmService, appLogger)
	generateRoastUC := roastUC.NewGenerateRoastUseCase(
		fetchProfileUC, composer, synthesizer, artifactStore,
		roastRecordRepo, kafkaClient, appLogger,
	)
	submitFeedbackUC := feedbackUC.NewSubmitFeedbackUseCase(feedbackRepo, kafkaClient, appLogger)
	submitRatingUC := feedbackUC.NewSubmitRatingUseCase(feedbackRepo, kafkaClient, appLogger)

	// HTTP surface
	roastHandler := httpAdapter.NewRoastHandler(generateRoastUC, appLogger)
	audioHandler := httpAdapter.NewAudioHandler(artifactStore, appLogger)
	feedbackHandler := httpAdapter.NewFeedbackHandler(submitFeedbackUC, submitRatingUC, appLogger)

	router := httpAdapter.NewRouter(roastHandler, audioHandler, feedbackHandler, cfg.CORS.Origins, appLogger)

	appLogger.Info("Server running", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
