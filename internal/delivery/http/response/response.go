package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the flat error shape every failure responds with.
// The frontend only distinguishes failures by status code.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON sends a success payload as-is.
func JSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}
