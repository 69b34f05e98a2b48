package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	feedbackUC "github.com/vuhoang/roastline/internal/application/usecase/feedback"
	"github.com/vuhoang/roastline/pkg/logger"
)

type FeedbackHandler struct {
	submitFeedbackUC *feedbackUC.SubmitFeedbackUseCase
	submitRatingUC   *feedbackUC.SubmitRatingUseCase
	logger           logger.Logger
}

func NewFeedbackHandler(
	submitFeedbackUC *feedbackUC.SubmitFeedbackUseCase,
	submitRatingUC *feedbackUC.SubmitRatingUseCase,
	log logger.Logger,
) *FeedbackHandler {
	return &FeedbackHandler{
		submitFeedbackUC: submitFeedbackUC,
		submitRatingUC:   submitRatingUC,
		logger:           log,
	}
}

// SubmitFeedback always acknowledges success. The write path is best
// effort and malformed payloads are the only thing it declines to record,
// still with a thank-you.
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err == nil {
		h.submitFeedbackUC.Execute(c.Request.Context(), feedbackUC.SubmitFeedbackInput{
			Rating:    req.Rating,
			Comment:   req.Comment,
			Timestamp: req.Timestamp,
		})
	}

	c.JSON(http.StatusOK, AckResponse{Status: "success", Message: "Thank you for your feedback!"})
}

func (h *FeedbackHandler) SubmitRating(c *gin.Context) {
	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err == nil {
		h.submitRatingUC.Execute(c.Request.Context(), feedbackUC.SubmitRatingInput{
			Rating:       req.Rating,
			FeedbackText: req.FeedbackText,
		})
	}

	c.JSON(http.StatusOK, AckResponse{Status: "success", Message: "Thank you for your feedback!"})
}
