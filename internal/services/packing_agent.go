package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

type PackingAgentInterface interface {
	Generate(ctx context.Context, req request_models.PackingRequest) (response_models.PackingList, error)
}

type PackingAgent struct {
	invoker utils.ModelInvokerInterface
}

func NewPackingAgent(invoker utils.ModelInvokerInterface) PackingAgentInterface {
	return &PackingAgent{invoker: invoker}
}

func (a *PackingAgent) Generate(ctx context.Context, req request_models.PackingRequest) (response_models.PackingList, error) {
	preferences := req.Preferences
	if strings.TrimSpace(preferences) == "" {
		preferences = "none specified"
	}

	prompt := fmt.Sprintf(`
You are a travel assistant creating a packing checklist.

Destination: %s
Trip type: %s
Dates: %s to %s
Traveler preferences: %s

Using up-to-date climate and travel norms, create a concise packing list tailored
to this trip. Consider:
- Typical weather and temperature for those dates at that destination.
- Local culture/dress norms.
- Trip type (business vs leisure vs adventure).
- The fact this is an international traveler.

Return a SHORT JSON object ONLY in this exact shape, no extra text:

{
  "essentials": ["item1", "item2", ...],
  "clothing": ["item1", "item2", ...],
  "electronics": ["item1", "item2", ...],
  "documents": ["item1", "item2", ...],
  "extras": ["item1", "item2", ...]
}
`, req.Destination, req.TripType, req.StartDate, req.EndDate, preferences)

	raw, err := requestObject(ctx, a.invoker, "PackingListAgent", prompt,
		"You are a travel packing assistant. Always return valid JSON only.")
	if err != nil {
		return response_models.PackingList{}, err
	}

	var list response_models.PackingList
	if err := json.Unmarshal(raw, &list); err != nil {
		return response_models.PackingList{}, utils.InvalidAgentResponse("PackingListAgent", err.Error())
	}
	list.Essentials = response_models.OrEmpty(list.Essentials)
	list.Clothing = response_models.OrEmpty(list.Clothing)
	list.Electronics = response_models.OrEmpty(list.Electronics)
	list.Documents = response_models.OrEmpty(list.Documents)
	list.Extras = response_models.OrEmpty(list.Extras)
	return list, nil
}
