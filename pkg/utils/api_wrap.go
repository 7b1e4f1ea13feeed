package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps the error taxonomy onto HTTP statuses. The message
// is always derived from the underlying cause.
func HandleServiceError(c *gin.Context, err error) {
	traceID := c.GetString("trace_id")

	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUpstreamTransport),
		errors.Is(err, ErrUpstreamEmptyResponse),
		errors.Is(err, ErrUpstreamInvalidJSON),
		errors.Is(err, ErrInvalidAgentResponse),
		errors.Is(err, ErrLocationNotFound),
		errors.Is(err, ErrNoWeatherData):
		log.Error().Err(err).Str("trace_id", traceID).Msg("upstream failure")
		RespondError(c, http.StatusBadGateway, err.Error())
	default:
		log.Error().Err(err).Str("trace_id", traceID).Msg("unhandled service error")
		RespondError(c, http.StatusInternalServerError, err.Error())
	}
}
