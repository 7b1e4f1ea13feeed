package services

import (
	"context"
	"encoding/json"
	"strconv"

	"tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

// requestObject runs one model exchange and insists on a JSON object reply.
func requestObject(ctx context.Context, invoker utils.ModelInvokerInterface, agent, prompt, systemInstruction string) (json.RawMessage, error) {
	raw, err := invoker.GenerateStructured(ctx, prompt, systemInstruction)
	if err != nil {
		return nil, err
	}
	if !response_models.IsObject(raw) {
		return nil, utils.InvalidAgentResponse(agent, "expected a JSON object")
	}
	return raw, nil
}

// formatAmount renders a number the way it is shown to travellers: no
// trailing zeros and no exponent.
func formatAmount(v float64) string {
	return strconv.FormatFloat(finite(v), 'f', -1, 64)
}

func mustMarshalIndent(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
