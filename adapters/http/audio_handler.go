package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vuhoang/roastline/internal/application/service"
	"github.com/vuhoang/roastline/pkg/logger"
)

type AudioHandler struct {
	artifacts service.ArtifactStore
	logger    logger.Logger
}

func NewAudioHandler(store service.ArtifactStore, log logger.Logger) *AudioHandler {
	return &AudioHandler{artifacts: store, logger: log}
}

func (h *AudioHandler) GetAudio(c *gin.Context) {
	filename := c.Param("filename")

	reader, size, err := h.artifacts.Open(c.Request.Context(), filename)
	if err != nil {
		c.Error(err)
		return
	}
	defer reader.Close()

	c.DataFromReader(http.StatusOK, size, mediaType(filename), reader, map[string]string{
		"Content-Disposition": `inline; filename="` + filename + `"`,
	})
}

func mediaType(filename string) string {
	switch {
	case strings.HasSuffix(filename, ".wav"):
		return "audio/wav"
	default:
		return "audio/mpeg"
	}
}
