package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vuhoang/roastline/pkg/logger"
)

// NewRouter wires middleware and routes. Shared between cmd/server and
// the handler tests so both exercise the same surface.
func NewRouter(
	roastHandler *RoastHandler,
	audioHandler *AudioHandler,
	feedbackHandler *FeedbackHandler,
	corsOrigins []string,
	log logger.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CORSMiddleware(corsOrigins))
	router.Use(IdentityMiddleware(log))
	router.Use(ErrorMiddleware(log))

	api := router.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "LinkedIn Roaster API"})
		})
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "UP"})
		})

		api.POST("/generate-roast", roastHandler.GenerateRoast)
		api.GET("/audio/:filename", audioHandler.GetAudio)

		api.POST("/feedback", feedbackHandler.SubmitFeedback)
		api.POST("/submit-rating", feedbackHandler.SubmitRating)
	}

	return router
}
