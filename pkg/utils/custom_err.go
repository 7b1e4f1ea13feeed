package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrUpstreamEmptyResponse = errors.New("empty response from model")
	ErrUpstreamInvalidJSON   = errors.New("model returned invalid JSON")
	ErrUpstreamTransport     = errors.New("upstream request failed")
	ErrModelOverloaded       = errors.New("model overloaded")
	ErrInvalidAgentResponse  = errors.New("invalid agent response")
	ErrLocationNotFound      = errors.New("location not found")
	ErrNoWeatherData         = errors.New("no weather data available for that date")
	ErrDatabaseError         = errors.New("database error")
)

// Classify tags cause with a taxonomy sentinel while keeping both reachable through errors.Is.
func Classify(kind, cause error) error {
	if cause == nil {
		return kind
	}
	if errors.Is(cause, kind) {
		return cause
	}
	return fmt.Errorf("%w: %w", kind, cause)
}

// InvalidInput builds an ErrInvalidInput carrying a caller-facing reason.
func InvalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// InvalidAgentResponse builds an ErrInvalidAgentResponse naming the agent at fault.
func InvalidAgentResponse(agent, reason string) error {
	return fmt.Errorf("%w from %s: %s", ErrInvalidAgentResponse, agent, reason)
}
