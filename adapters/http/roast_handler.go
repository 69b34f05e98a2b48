package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	roastUC "github.com/vuhoang/roastline/internal/application/usecase/roast"
	"github.com/vuhoang/roastline/internal/domain/roast"
	"github.com/vuhoang/roastline/pkg/apperror"
	"github.com/vuhoang/roastline/pkg/logger"
)

type RoastHandler struct {
	generateUC *roastUC.GenerateRoastUseCase
	logger     logger.Logger
}

func NewRoastHandler(uc *roastUC.GenerateRoastUseCase, log logger.Logger) *RoastHandler {
	return &RoastHandler{generateUC: uc, logger: log}
}

// GenerateRoast validates the request shape before any external call is
// made: the URL must carry an http(s) scheme and the style must be one of
// the four known values. An omitted style defaults to mix.
func (h *RoastHandler) GenerateRoast(c *gin.Context) {
	var req RoastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	if !strings.HasPrefix(req.LinkedinURL, "http") {
		c.Error(apperror.NewInvalidInput("Valid LinkedIn URL is required", nil))
		return
	}

	style := roast.StyleMix
	if req.RoastStyle != "" {
		parsed, ok := roast.ParseStyle(req.RoastStyle)
		if !ok {
			c.Error(apperror.NewInvalidInput("Invalid roast style", nil))
			return
		}
		style = parsed
	}

	result, err := h.generateUC.Execute(c.Request.Context(), roastUC.GenerateRoastInput{
		ProfileURL: req.LinkedinURL,
		Style:      style,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToRoastResponse(result))
}
