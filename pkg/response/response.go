package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the standard API response envelope.
type Body struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// OK sends a 200 JSON response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Body{Success: true, Data: data})
}

// Fail sends a 200 with success:false. Validation failures use this shape
// rather than a 4xx status; scanner and form clients key off the success
// flag, not the HTTP status.
func Fail(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Body{Success: false, Message: msg})
}

// BadRequest sends 400 with a message.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Body{Success: false, Message: msg})
}

// Unauthorized sends 401.
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, Body{Success: false, Message: msg})
}

// NotFound sends 404.
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, Body{Success: false, Message: msg})
}

// Internal sends 500. The underlying error is logged by the caller, never
// echoed to the client.
func Internal(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, Body{Success: false, Message: msg})
}
