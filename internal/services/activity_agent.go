package services

import (
	"context"
	"encoding/json"
	"fmt"

	"tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

type ActivityAgentInterface interface {
	// Suggest returns activity candidates. budget <= 0 means no per-activity hint.
	Suggest(ctx context.Context, destination string, budget float64) ([]response_models.ActivityEntry, error)
}

type ActivityAgent struct {
	invoker utils.ModelInvokerInterface
}

func NewActivityAgent(invoker utils.ModelInvokerInterface) ActivityAgentInterface {
	return &ActivityAgent{invoker: invoker}
}

func (a *ActivityAgent) Suggest(ctx context.Context, destination string, budget float64) ([]response_models.ActivityEntry, error) {
	budgetText := "No strict budget constraint."
	if budget > 0 {
		budgetText = fmt.Sprintf("BUDGET CONSTRAINT: about %s INR per activity if possible.", formatAmount(budget))
	}

	prompt := fmt.Sprintf(`
DESTINATION: %[1]s
%[2]s

Return JSON ONLY with this exact structure:

{
  "activities": [
    {
      "name": "Activity name specific to %[1]s",
      "price": 0,
      "category": "sightseeing | cultural | nature | adventure | food | shopping",
      "duration": "2-3 hours" ,
      "type": "guided | self-guided | free",
      "description": "Brief description"
    }
  ]
}

Rules:
- Include 5-8 activities.
- Mix of free and paid.
- Prices realistic for %[1]s in INR.
- Include famous attractions and some local experiences.
`, destination, budgetText)

	raw, err := requestObject(ctx, a.invoker, "ActivityAgent", prompt,
		"You are a travel activities expert with knowledge of attractions and experiences worldwide. "+
			"Always return valid JSON only. Provide realistic prices in INR.")
	if err != nil {
		return nil, err
	}

	var payload struct {
		Activities json.RawMessage `json:"activities"`
	}
	_ = json.Unmarshal(raw, &payload)

	activities, ok := response_models.DecodeList[response_models.ActivityEntry](payload.Activities)
	if !ok {
		return nil, utils.InvalidAgentResponse("ActivityAgent", "activities must be an array")
	}
	return activities, nil
}
