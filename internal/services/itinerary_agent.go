package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

const (
	flexActivityName  = "Free day / Self‑exploration"
	flexCategory      = "flex"
	flexActivityNotes = "Buffer/free time in case user wants to rest or add custom plans"
)

type ItineraryAgentInterface interface {
	Generate(ctx context.Context, destination string, days int) (response_models.Itinerary, error)
}

type ItineraryAgent struct {
	invoker utils.ModelInvokerInterface
}

func NewItineraryAgent(invoker utils.ModelInvokerInterface) ItineraryAgentInterface {
	return &ItineraryAgent{invoker: invoker}
}

func (a *ItineraryAgent) Generate(ctx context.Context, destination string, days int) (response_models.Itinerary, error) {
	if strings.TrimSpace(destination) == "" {
		return response_models.Itinerary{}, utils.InvalidInput("destination is required")
	}
	if days < 1 {
		return response_models.Itinerary{}, utils.InvalidInput("days must be a number greater than 0")
	}

	raw, err := requestObject(ctx, a.invoker, "ItineraryAgent", itineraryPrompt(destination, days),
		"You are a travel itinerary planner. Always return valid JSON only, no extra text.")
	if err != nil {
		return response_models.Itinerary{}, err
	}

	var itinerary response_models.Itinerary
	if err := json.Unmarshal(raw, &itinerary); err != nil {
		return response_models.Itinerary{}, utils.InvalidAgentResponse("ItineraryAgent", err.Error())
	}

	itinerary.Activities = ensureDayCoverage(itinerary.Activities, days)
	return itinerary, nil
}

// ensureDayCoverage groups activities by day, drops entries outside
// [1, days], and inserts a zero-cost flex entry for every uncovered day.
func ensureDayCoverage(activities []response_models.ActivityEntry, days int) []response_models.ActivityEntry {
	byDay := make(map[int][]response_models.ActivityEntry, days)
	for _, act := range activities {
		d := int(act.Day)
		if d < 1 || d > days {
			continue
		}
		byDay[d] = append(byDay[d], act)
	}

	for d := 1; d <= days; d++ {
		if _, ok := byDay[d]; !ok {
			byDay[d] = []response_models.ActivityEntry{{
				Name:     flexActivityName,
				Price:    0,
				Day:      response_models.DayNumber(d),
				Category: flexCategory,
				Notes:    flexActivityNotes,
			}}
		}
	}

	keys := make([]int, 0, len(byDay))
	for d := range byDay {
		keys = append(keys, d)
	}
	sort.Ints(keys)

	fixed := make([]response_models.ActivityEntry, 0, len(activities)+days)
	for _, d := range keys {
		fixed = append(fixed, byDay[d]...)
	}
	return fixed
}

func itineraryPrompt(destination string, days int) string {
	return fmt.Sprintf(`
You are a Travel Itinerary AI Agent.

DESTINATION: %[1]s
NUMBER OF DAYS: %[2]d

Return JSON ONLY with this exact structure:

{
  "hotels": [
    {
      "name": "Hotel name",
      "pricePerNight": 0,
      "nights": 0,
      "area": "neighbourhood or locality",
      "category": "budget | mid-range | premium"
    }
  ],
  "activities": [
    {
      "name": "Activity or place to visit",
      "price": 0,
      "day": 1,
      "category": "sightseeing | culture | nature | adventure | food",
      "notes": "short note about what/why"
    }
  ],
  "transportKm": 0
}

Rules for HOTELS:
- Always provide between 2 and 3 distinct hotel options.
- All hotels must be realistically located in or very near %[1]s.
- Use realistic INR prices per night for the destination and category.
- Set "nights" so that the total nights roughly matches NUMBER OF DAYS.
- Use a mix of categories if possible (e.g., one budget, one mid-range, one premium).

Rules for ACTIVITIES:
- Create activities for EVERY day from 1 to %[2]d inclusive.
- Each day must have AT LEAST 3 and AT MOST 5 activities.
- Use integer day numbers only (1,2,3,...).
- Use realistic INR prices; set price 0 for free attractions like public beaches, viewpoints, temples without entry fee, etc.
- Make sure you cover the MAIN must-visit attractions and typical experiences in %[1]s
  (e.g., famous landmarks, viewpoints, local markets, important temples/churches/heritage sites, key beaches, signature local experiences).
- Avoid repeating the same attraction on different days unless it clearly makes sense.

Rules for TRANSPORT:
- "transportKm" is the approximate total local travel distance for the whole trip in km.
- Use a realistic but rough estimate based on typical sightseeing patterns in %[1]s.

Return ONLY the JSON object, no explanation or markdown. Ensure it is strictly valid JSON.
`, destination, days)
}
