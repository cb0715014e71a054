// Package response defines the JSON envelope used by handlers that set it
// explicitly. Read routes that historically returned raw records bypass it.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Thanh-Phuog/CRUD-BackEnd/internal/shared/apperr"
)

// Body is the response envelope: {status, message, data?, details?}.
// Details carries the raw persistence error text on 500 responses.
type Body struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Details string `json:"details,omitempty"`
}

// JSON writes an enveloped response without data.
func JSON(c *gin.Context, status int, message string) {
	c.JSON(status, Body{Status: status, Message: message})
}

// JSONData writes an enveloped response carrying data.
func JSONData(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Body{Status: status, Message: message, Data: data})
}

// Error translates an application error into the envelope. Classified
// errors keep their message and mapped status; anything else becomes a 500
// with the error text in details.
func Error(c *gin.Context, err error) {
	status := apperr.Status(err)
	var e *apperr.Error
	if errors.As(err, &e) {
		body := Body{Status: status, Message: e.Message}
		if e.Err != nil {
			body.Details = e.Err.Error()
		}
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusInternalServerError, Body{
		Status:  http.StatusInternalServerError,
		Message: "internal server error",
		Details: err.Error(),
	})
}
