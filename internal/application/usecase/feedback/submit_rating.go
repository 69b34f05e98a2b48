package feedback

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vuhoang/roastline/adapters/event"
	"github.com/vuhoang/roastline/internal/domain/feedback"
	"github.com/vuhoang/roastline/pkg/logger"
)

// SubmitRatingUseCase mirrors SubmitFeedbackUseCase for the independent
// "Rate Us" write path.
type SubmitRatingUseCase struct {
	repo        feedback.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewSubmitRatingUseCase(repo feedback.Repository, kafkaClient *event.KafkaProducerClient, log logger.Logger) *SubmitRatingUseCase {
	return &SubmitRatingUseCase{repo: repo, kafkaClient: kafkaClient, logger: log}
}

type SubmitRatingInput struct {
	Rating       int
	FeedbackText string
}

func (uc *SubmitRatingUseCase) Execute(ctx context.Context, input SubmitRatingInput) {
	rec := &feedback.Rating{
		ID:           uuid.New(),
		Rating:       input.Rating,
		FeedbackText: input.FeedbackText,
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.repo.SaveRating(ctx, rec); err != nil {
		uc.logger.Warn("Failed to store rating", zap.Int("rating", input.Rating), zap.Error(err))
		return
	}

	uc.logger.Info("Rating received", zap.Int("rating", input.Rating))

	if uc.kafkaClient == nil {
		return
	}
	go func() {
		payload := event.FeedbackEventPayload{
			EventType: event.FeedbackEventTypeReceived,
			RecordID:  rec.ID,
			Rating:    rec.Rating,
			CreatedAt: rec.CreatedAt,
		}
		if err := uc.kafkaClient.PublishFeedbackEvent(context.Background(), payload); err != nil {
			uc.logger.Warn("Failed to publish Kafka 'feedback.received' event", zap.Error(err))
		}
	}()
}
