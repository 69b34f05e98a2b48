package feedback

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Feedback and Rating are two unrelated append-only records. Neither is
// ever updated or deleted.

type Feedback struct {
	ID        uuid.UUID
	Rating    int
	Comment   string
	Timestamp string
	CreatedAt time.Time
}

type Rating struct {
	ID           uuid.UUID
	Rating       int
	FeedbackText string
	CreatedAt    time.Time
}

type Repository interface {
	SaveFeedback(ctx context.Context, f *Feedback) error
	SaveRating(ctx context.Context, r *Rating) error
}
