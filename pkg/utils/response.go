package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The mobile app consumes a fixed envelope: {status, data} on success and
// {status, error} on failure, with the status field mirroring the HTTP code.

// SuccessResponse sends a standard success JSON response
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"data":   data,
	})
}

// MessageResponse sends a success envelope carrying a plain message
func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"data":   message,
	})
}

// ErrorResponse sends a standard error JSON response
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"status": statusCode,
		"error":  message,
	})
}
