package roast

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vuhoang/roastline/adapters/event"
	"github.com/vuhoang/roastline/internal/application/service"
	"github.com/vuhoang/roastline/internal/application/usecase/profilefetch"
	"github.com/vuhoang/roastline/internal/domain/roast"
	"github.com/vuhoang/roastline/pkg/apperror"
	"github.com/vuhoang/roastline/pkg/logger"
)

// GenerateRoastUseCase sequences validate, fetch, compose, synthesize and
// respond. Each stage short-circuits on its own error kind; the already
// committed cache entry is deliberately kept when a later stage fails.
type GenerateRoastUseCase struct {
	fetcher     *profilefetch.FetchProfileUseCase
	composer    *Composer
	synthesizer service.SpeechSynthesizer
	artifacts   service.ArtifactStore
	records     roast.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewGenerateRoastUseCase(
	fetcher *profilefetch.FetchProfileUseCase,
	composer *Composer,
	synthesizer service.SpeechSynthesizer,
	artifacts service.ArtifactStore,
	records roast.Repository,
	kafkaClient *event.KafkaProducerClient,
	log logger.Logger,
) *GenerateRoastUseCase {
	return &GenerateRoastUseCase{
		fetcher:     fetcher,
		composer:    composer,
		synthesizer: synthesizer,
		artifacts:   artifacts,
		records:     records,
		kafkaClient: kafkaClient,
		logger:      log,
	}
}

type GenerateRoastInput struct {
	ProfileURL string
	Style      roast.Style
}

func (uc *GenerateRoastUseCase) Execute(ctx context.Context, input GenerateRoastInput) (*roast.Result, error) {
	if !strings.HasPrefix(input.ProfileURL, "http") {
		return nil, apperror.NewInvalidInput("Valid LinkedIn URL is required", nil)
	}

	l := uc.logger.With(zap.String("profile_url", input.ProfileURL), zap.String("style", string(input.Style)))

	doc, err := uc.fetcher.Execute(ctx, input.ProfileURL)
	if err != nil {
		return nil, err
	}

	text, err := uc.composer.Compose(ctx, doc, input.Style)
	if err != nil {
		return nil, err
	}

	speech, err := uc.synthesizer.Synthesize(ctx, text)
	if err != nil {
		return nil, err
	}

	filename, err := uc.artifacts.Save(ctx, speech.Data, speech.Format)
	if err != nil {
		return nil, err
	}

	result := &roast.Result{
		Text:      text,
		Lines:     roast.SplitLines(text),
		AudioFile: filename,
		RequestID: uuid.New(),
		CreatedAt: time.Now().UTC(),
	}

	uc.archive(ctx, input, result)

	l.Info("Roast generated", zap.String("request_id", result.RequestID.String()),
		zap.String("audio_file", filename))
	return result, nil
}

// archive persists the record and publishes the created event. Both are
// best effort: the roast is already complete, so failures only log.
func (uc *GenerateRoastUseCase) archive(ctx context.Context, input GenerateRoastInput, result *roast.Result) {
	if uc.records != nil {
		rec := &roast.Record{
			ID:            result.RequestID,
			ProfileURL:    input.ProfileURL,
			Style:         input.Style,
			Text:          result.Text,
			AudioFilename: result.AudioFile,
			CreatedAt:     result.CreatedAt,
		}
		if err := uc.records.Save(ctx, rec); err != nil {
			uc.logger.Warn("Failed to archive roast record",
				zap.String("request_id", result.RequestID.String()), zap.Error(err))
		}
	}

	if uc.kafkaClient != nil {
		go func() {
			payload := event.RoastEventPayload{
				EventType:     event.RoastEventTypeCreated,
				RequestID:     result.RequestID,
				ProfileURL:    input.ProfileURL,
				Style:         string(input.Style),
				AudioFilename: result.AudioFile,
				CreatedAt:     result.CreatedAt,
			}
			if err := uc.kafkaClient.PublishRoastEvent(context.Background(), payload); err != nil {
				uc.logger.Warn("Failed to publish Kafka 'roast.created' event",
					zap.String("request_id", result.RequestID.String()), zap.Error(err))
			}
		}()
	}
}
