package http

import (
	"time"

	"github.com/vuhoang/roastline/internal/domain/roast"
)

type RoastRequest struct {
	LinkedinURL string `json:"linkedin_url" binding:"required"`
	RoastStyle  string `json:"roast_style"`
}

type RoastResponse struct {
	RoastText  string    `json:"roast_text"`
	RoastLines []string  `json:"roast_lines"`
	AudioURL   string    `json:"audio_url"`
	RequestID  string    `json:"request_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToRoastResponse(r *roast.Result) RoastResponse {
	return RoastResponse{
		RoastText:  r.Text,
		RoastLines: r.Lines,
		AudioURL:   "/api/audio/" + r.AudioFile,
		RequestID:  r.RequestID.String(),
		CreatedAt:  r.CreatedAt,
	}
}

type FeedbackRequest struct {
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
	Timestamp string `json:"timestamp" binding:"required"`
}

type RatingRequest struct {
	Rating       int    `json:"rating" binding:"required"`
	FeedbackText string `json:"feedback_text"`
}

type AckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
