package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

type PlacesAgentInterface interface {
	Recommend(ctx context.Context, destination string, days int) (response_models.PlacesRecommendation, error)
}

type PlacesAgent struct {
	invoker utils.ModelInvokerInterface
}

func NewPlacesAgent(invoker utils.ModelInvokerInterface) PlacesAgentInterface {
	return &PlacesAgent{invoker: invoker}
}

// Recommend never fails on missing sub-lists; each defaults to empty.
func (a *PlacesAgent) Recommend(ctx context.Context, destination string, days int) (response_models.PlacesRecommendation, error) {
	prompt := fmt.Sprintf(`
You are a Travel Places Recommendation AI Agent.

Destination: %[1]s
Number of days: %[2]d

Return JSON ONLY with this exact structure:

{
  "placesToVisit": [
    {
      "name": "Place name",
      "category": "historical | museum | nature | adventure | food | cultural",
      "description": "Brief description",
      "visitDuration": "e.g., 2-3 hours",
      "bestTimeToVisit": "morning | afternoon | evening",
      "entryFee": 0,
      "priority": "must-see | recommended | optional"
    }
  ],
  "dayWisePlan": [
    {
      "day": 1,
      "places": ["Place 1", "Place 2"],
      "activities": ["Activity 1", "Activity 2"]
    }
  ],
  "cheapFacilities": [
    {
      "name": "Facility name",
      "type": "restaurant | transport | accommodation",
      "description": "Why it's budget-friendly",
      "cost": 0
    }
  ]
}

Rules:
- Include at least 8-12 placesToVisit for a typical multi-day trip.
- Make dayWisePlan realistic: 2-4 main places per day depending on type.
- Use INR for any cost fields (entryFee, cost) and keep numbers realistic for %[1]s.
`, destination, days)

	raw, err := requestObject(ctx, a.invoker, "PlacesAgent", prompt,
		"You are a travel places recommendation assistant. Always return valid JSON only, no extra explanations.")
	if err != nil {
		return response_models.PlacesRecommendation{}, errors.Wrap(err, "failed to generate places recommendations")
	}

	var places response_models.PlacesRecommendation
	if err := json.Unmarshal(raw, &places); err != nil {
		return response_models.PlacesRecommendation{}, utils.InvalidAgentResponse("PlacesAgent", err.Error())
	}
	return places, nil
}
