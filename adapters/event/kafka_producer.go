package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/vuhoang/roastline/internal/config"
)

const (
	TopicRoastEvents    = "roast.events"
	TopicFeedbackEvents = "feedback.events"
)

const (
	RoastEventTypeCreated     = "roast.created"
	FeedbackEventTypeReceived = "feedback.received"
)

type RoastEventPayload struct {
	EventType     string    `json:"event_type"`
	RequestID     uuid.UUID `json:"request_id"`
	ProfileURL    string    `json:"profile_url"`
	Style         string    `json:"style"`
	AudioFilename string    `json:"audio_filename"`
	CreatedAt     time.Time `json:"created_at"`
}

type FeedbackEventPayload struct {
	EventType string    `json:"event_type"`
	RecordID  uuid.UUID `json:"record_id"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

type KafkaProducerClient struct {
	RoastEventsWriter    *kafka.Writer
	FeedbackEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	roastWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicRoastEvents,
		Balancer: &kafka.LeastBytes{},
	}

	feedbackWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicFeedbackEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		RoastEventsWriter:    roastWriter,
		FeedbackEventsWriter: feedbackWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishRoastEvent(ctx context.Context, payload RoastEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal roast event: %w", err)
	}
	return c.RoastEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.RequestID.String()),
		Value: value,
	})
}

func (c *KafkaProducerClient) PublishFeedbackEvent(ctx context.Context, payload FeedbackEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal feedback event: %w", err)
	}
	return c.FeedbackEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.RecordID.String()),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.RoastEventsWriter != nil {
		c.RoastEventsWriter.Close()
	}
	if c.FeedbackEventsWriter != nil {
		c.FeedbackEventsWriter.Close()
	}
}
