package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/logger"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

var messages = map[string]string{
	CodeNotFound:              "Record not found.",
	CodeSlotConflict:          "The selected date and time is already booked. Please choose another slot.",
	CodeInvalidTimeWindow:     "The shop is only open from 6:00 AM to 5:00 PM.",
	CodePastDateTime:          "Cannot book an appointment for a date or time that has already passed.",
	CodeInvalidDateTime:       "Invalid date or time.",
	CodeInvalidService:        "One or more selected services do not exist.",
	CodeEmptyServiceSelection: "Please select at least one service.",
	CodeDuplicateName:         "A record with that name already exists.",
	CodeInvalidState:          "The operation is not allowed in the current status.",
	CodeUnauthorized:          "You are not allowed to perform this action.",
	CodeInvalidRequest:        "Invalid request.",
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func StatusFor(code string) int {
	switch code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeSlotConflict, CodeDuplicateName, CodeInvalidState:
		return http.StatusConflict
	case CodeUnauthorized:
		return http.StatusForbidden
	case CodeInvalidTimeWindow, CodePastDateTime, CodeInvalidDateTime,
		CodeInvalidService, CodeEmptyServiceSelection, CodeInvalidRequest:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

// Respond writes a use case error. Anything that is not a BusinessError is a storage fault.
func Respond(c *gin.Context, err error) {
	if be, ok := AsBusiness(err); ok {
		msg := messages[be.Code]
		if msg == "" {
			msg = be.Error()
		}
		if be.Code == CodeNotFound && be.Detail != "" {
			msg = be.Detail + " not found."
		}
		Write(c, StatusFor(be.Code), be.Code, msg)
		return
	}

	logger.Error("request failed", "path", c.FullPath(), "error", err)
	Internal(c, "internal_error", "Unexpected error.")
}
