package common

import "github.com/gin-gonic/gin"

// ErrorBody is the error response shape used across the API.
type ErrorBody struct {
	Error string `json:"error"`
}

// ErrorResponse sends an error response
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}
