package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/vuhoang/roastline/adapters/audio_storage"
	"github.com/vuhoang/roastline/adapters/event"
	"github.com/vuhoang/roastline/adapters/persistence"
	"github.com/vuhoang/roastline/internal/application/service"
	"github.com/vuhoang/roastline/internal/config"
	"github.com/vuhoang/roastline/internal/domain/roast"
	"github.com/vuhoang/roastline/pkg/logger"
)

// The worker drains roast.created events, offloads the local audio
// artifact to Cloudinary and records the CDN URL on the archive row.
// Nothing here is on the request path; every failure only logs.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting Roastline Worker...")

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	offloader, err := audio_storage.NewCloudinaryOffloader(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init Cloudinary offloader", err)
	}

	recordRepo := persistence.NewPostgresRoastRecordRepo(dbPool, appLogger)

	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicRoastEvents,
		GroupID:  "audio-offload-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicRoastEvents))

	ctx := context.Background()
	for {
		// FetchMessage so offsets commit only after a successful offload.
		msg, err := consumer.FetchMessage(ctx)
		if err != nil {
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		var payload event.RoastEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			appLogger.Error("Failed to unmarshal event, skipping", err,
				zap.String("key", string(msg.Key)))
			commitMessage(consumer, msg, appLogger)
			continue
		}

		if err := offload(ctx, cfg, recordRepo, offloader, payload, appLogger); err != nil {
			appLogger.Error("Failed to offload audio", err,
				zap.String("request_id", payload.RequestID.String()))
			continue
		}

		commitMessage(consumer, msg, appLogger)
	}
}

func offload(
	ctx context.Context,
	cfg config.Config,
	records roast.Repository,
	offloader service.Offloader,
	payload event.RoastEventPayload,
	appLogger logger.Logger,
) error {
	path := filepath.Join(cfg.Audio.Dir, filepath.Base(payload.AudioFilename))
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	url, err := offloader.Upload(ctx, f, "roasts/audio", payload.RequestID.String())
	if err != nil {
		return err
	}

	if err := records.SetCDNUrl(ctx, payload.RequestID, url); err != nil {
		return err
	}

	appLogger.Info("Audio offloaded",
		zap.String("request_id", payload.RequestID.String()), zap.String("cdn_url", url))
	return nil
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message, appLogger logger.Logger) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		appLogger.Error("Failed to commit message", err)
	}
}
