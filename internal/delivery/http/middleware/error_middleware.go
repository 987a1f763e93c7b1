package middleware

import (
	"errors"
	"net/http"

	"go-studio-backend/internal/delivery/http/response"
	"go-studio-backend/pkg/apperror"
	"go-studio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Code >= http.StatusInternalServerError {
					logger.Log.Error("Request failed",
						"path", c.Request.URL.Path,
						"error", appErr.Err,
						"request_id", c.GetString("RequestID"),
					)
				}
				response.Error(c, appErr.Code, appErr.Message)
			} else {
				// Never expose internal error details to clients. Log the
				// actual error server-side and send the generic body.
				logger.Log.Error("Unhandled error",
					"path", c.Request.URL.Path,
					"error", err,
					"request_id", c.GetString("RequestID"),
				)
				response.Error(c, http.StatusInternalServerError, "Internal Server Error")
			}
		}
	}
}
