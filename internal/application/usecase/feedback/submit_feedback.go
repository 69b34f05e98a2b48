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

// SubmitFeedbackUseCase is a best-effort write path: storage failures are
// logged and swallowed so feedback loss never surfaces to the caller.
type SubmitFeedbackUseCase struct {
	repo        feedback.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewSubmitFeedbackUseCase(repo feedback.Repository, kafkaClient *event.KafkaProducerClient, log logger.Logger) *SubmitFeedbackUseCase {
	return &SubmitFeedbackUseCase{repo: repo, kafkaClient: kafkaClient, logger: log}
}

type SubmitFeedbackInput struct {
	Rating    int
	Comment   string
	Timestamp string
}

func (uc *SubmitFeedbackUseCase) Execute(ctx context.Context, input SubmitFeedbackInput) {
	rec := &feedback.Feedback{
		ID:        uuid.New(),
		Rating:    input.Rating,
		Comment:   input.Comment,
		Timestamp: input.Timestamp,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.repo.SaveFeedback(ctx, rec); err != nil {
		uc.logger.Warn("Failed to store feedback", zap.Int("rating", input.Rating), zap.Error(err))
		return
	}

	uc.logger.Info("Feedback received", zap.Int("rating", input.Rating))
	uc.publish(rec)
}

func (uc *SubmitFeedbackUseCase) publish(rec *feedback.Feedback) {
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
