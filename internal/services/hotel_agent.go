package services

import (
	"context"
	"encoding/json"
	"fmt"

	"tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

type HotelAgentInterface interface {
	// Suggest returns hotel candidates. budgetPerNight <= 0 means no per-night hint.
	Suggest(ctx context.Context, destination string, budgetPerNight float64) ([]response_models.HotelOption, error)
}

type HotelAgent struct {
	invoker utils.ModelInvokerInterface
}

func NewHotelAgent(invoker utils.ModelInvokerInterface) HotelAgentInterface {
	return &HotelAgent{invoker: invoker}
}

func (a *HotelAgent) Suggest(ctx context.Context, destination string, budgetPerNight float64) ([]response_models.HotelOption, error) {
	budgetText := "No strict per-night budget."
	if budgetPerNight > 0 {
		budgetText = fmt.Sprintf("Try to respect a per-night budget around %s INR when possible.", formatAmount(budgetPerNight))
	}

	prompt := fmt.Sprintf(`
DESTINATION: %[1]s
%[2]s

Return JSON ONLY with this exact structure:

{
  "hotels": [
    {
      "name": "Hotel name realistic for %[1]s",
      "pricePerNight": 0,
      "rating": 0.0,
      "amenities": ["Free WiFi", "Breakfast included"],
      "location": "Specific location description",
      "type": "budget | mid-range | luxury",
      "description": "Brief description of the hotel"
    }
  ]
}

Rules:
- Include 3-5 hotels across budget, mid-range, and luxury.
- Prices realistic for %[1]s in INR.
`, destination, budgetText)

	raw, err := requestObject(ctx, a.invoker, "HotelAgent", prompt,
		"You are a travel accommodation expert with knowledge of hotel prices and amenities worldwide. "+
			"Always return valid JSON only and prices in INR.")
	if err != nil {
		return nil, err
	}

	var payload struct {
		Hotels json.RawMessage `json:"hotels"`
	}
	_ = json.Unmarshal(raw, &payload)

	hotels, ok := response_models.DecodeList[response_models.HotelOption](payload.Hotels)
	if !ok {
		return nil, utils.InvalidAgentResponse("HotelAgent", "hotels must be an array")
	}
	return hotels, nil
}
