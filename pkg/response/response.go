package response

import (
	"log"
	"net/http"

	"github.com/franciscozv/iglesia-admin/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// Envelope is the uniform body written by every endpoint.
type Envelope struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	ResponseObject any    `json:"responseObject"`
	StatusCode     int    `json:"statusCode"`
}

// Success writes a success envelope with the given status code.
func Success(c *gin.Context, code int, message string, obj any) {
	c.JSON(code, Envelope{
		Success:        true,
		Message:        message,
		ResponseObject: obj,
		StatusCode:     code,
	})
}

// Error writes a failure envelope, mapping err to an HTTP status code.
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		// Log internal errors, keep the body generic
		log.Printf("[Internal Error]: %v", err)
		message = apperror.ErrInternal.Error()
	}

	c.JSON(code, Envelope{
		Success:        false,
		Message:        message,
		ResponseObject: nil,
		StatusCode:     code,
	})
}

// BadRequest writes a 400 failure envelope with an explicit message,
// used for binding/validation failures before the service runs.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{
		Success:        false,
		Message:        message,
		ResponseObject: nil,
		StatusCode:     http.StatusBadRequest,
	})
}
