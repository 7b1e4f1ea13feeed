package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveError(t *testing.T, err error) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set("trace_id", "trace-1")

	HandleServiceError(c, err)

	var body APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHandleServiceError_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "invalid input", err: InvalidInput("days must be positive"), code: http.StatusBadRequest},
		{name: "transport", err: Classify(ErrUpstreamTransport, errors.New("dial tcp")), code: http.StatusBadGateway},
		{name: "invalid json", err: ErrUpstreamInvalidJSON, code: http.StatusBadGateway},
		{name: "agent response", err: InvalidAgentResponse("HotelAgent", "hotels must be an array"), code: http.StatusBadGateway},
		{name: "location", err: ErrLocationNotFound, code: http.StatusBadGateway},
		{name: "other", err: errors.New("boom"), code: http.StatusInternalServerError},
		{name: "database", err: Classify(ErrDatabaseError, errors.New("conn refused")), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := serveError(t, tt.err)
			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, "error", body.Status)
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.err.Error(), body.Message)
			assert.Equal(t, "trace-1", body.TraceID)
		})
	}
}

func TestClassify(t *testing.T) {
	cause := errors.New("socket closed")
	err := Classify(ErrUpstreamTransport, cause)
	assert.ErrorIs(t, err, ErrUpstreamTransport)
	assert.ErrorIs(t, err, cause)

	assert.Same(t, err, Classify(ErrUpstreamTransport, err))
	assert.Equal(t, ErrDatabaseError, Classify(ErrDatabaseError, nil))
}
