package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vuhoang/roastline/pkg/apperror"
	"github.com/vuhoang/roastline/pkg/identity"
	"github.com/vuhoang/roastline/pkg/logger"
)

const GinContextKeyCaller = "caller"

// ErrorMiddleware renders the last error a handler attached via c.Error.
// AppError kinds map to their HTTP status; anything else is an opaque 500.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status := apperror.ToHTTPStatus(appErr)
			if status >= http.StatusInternalServerError {
				log.Error("Request failed", appErr, zap.String("path", c.Request.URL.Path))
			} else {
				log.Warn("Request rejected", zap.String("path", c.Request.URL.Path), zap.Error(appErr))
			}
			c.JSON(status, appErr.ToJSON())
			return
		}

		log.Error("Unhandled error", err, zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   apperror.ErrInternal.Error(),
			"message": "An error occurred while processing the request. Please try again.",
		})
	}
}

// IdentityMiddleware tags every request log with a best-effort caller
// identity pulled from an unverified bearer token.
func IdentityMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := identity.FromAuthHeader(c.GetHeader("Authorization"))
		c.Set(GinContextKeyCaller, caller)

		start := time.Now()
		c.Next()

		log.Info("Request handled",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.String("caller", caller),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

func CORSMiddleware(origins []string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	if len(origins) == 0 {
		// AllowAllOrigins cannot be combined with credentials; an
		// origin func that accepts everything can.
		corsConfig.AllowOriginFunc = func(string) bool { return true }
	} else {
		corsConfig.AllowOrigins = origins
	}
	return cors.New(corsConfig)
}
