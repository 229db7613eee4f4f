package httpapi

import "github.com/gin-gonic/gin"

// Response is the JSON envelope used by every endpoint.
type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{Message: message, Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Response{Message: message})
}
