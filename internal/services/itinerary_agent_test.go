package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

const goaItinerary = "```json\n" + `{
  "hotels": [
    {"name": "Beach Shack Inn", "pricePerNight": 2500, "nights": 3, "area": "Baga", "category": "budget"},
    {"name": "Fort View Resort", "pricePerNight": 6500, "nights": 3, "area": "Candolim", "category": "premium"}
  ],
  "activities": [
    {"name": "Baga Beach", "price": 0, "day": 1, "category": "nature"},
    {"name": "Dudhsagar Falls", "price": 1500, "day": 3, "category": "adventure"},
    {"name": "Aguada Fort", "price": 50, "day": 1, "category": "culture"}
  ],
  "transportKm": 80
}` + "\n```"

func activitiesOnDay(acts []response_models.ActivityEntry, day int) []response_models.ActivityEntry {
	var out []response_models.ActivityEntry
	for _, a := range acts {
		if int(a.Day) == day {
			out = append(out, a)
		}
	}
	return out
}

func TestItineraryAgent_FillsMissingDays(t *testing.T) {
	agent := NewItineraryAgent(newFakeInvoker(goaItinerary))

	it, err := agent.Generate(context.Background(), "Goa", 3)
	require.NoError(t, err)

	for day := 1; day <= 3; day++ {
		assert.NotEmpty(t, activitiesOnDay(it.Activities, day), "day %d has no activity", day)
	}

	day2 := activitiesOnDay(it.Activities, 2)
	require.Len(t, day2, 1)
	assert.Equal(t, "flex", day2[0].Category)
	assert.Equal(t, response_models.Amount(0), day2[0].Price)
	assert.Equal(t, "Free day / Self\u2011exploration", day2[0].Name)

	require.Len(t, it.Hotels, 2)
	assert.Equal(t, "Beach Shack Inn", it.Hotels[0].Name)
	assert.Equal(t, response_models.Amount(2500), it.Hotels[0].PricePerNight)
	assert.Equal(t, "Fort View Resort", it.Hotels[1].Name)
	assert.Equal(t, response_models.Amount(80), it.TransportKm)
}

func TestItineraryAgent_PassesModelElementsThrough(t *testing.T) {
	hotels := `[
		{"name": "Taj", "pricePerNight": "5000", "nights": 3, "address": "MG Road", "rating": "4.5"},
		{"name": 123, "pricePerNight": 100, "nights": 1}
	]`
	activities := `[
		{"name": "Fort", "price": 200, "day": 1, "ticketUrl": "https://example.org/fort"},
		{"name": "Beach", "price": "free", "day": 2}
	]`
	reply := `{"hotels": ` + hotels + `, "activities": ` + activities + `, "transportKm": 12}`

	it, err := NewItineraryAgent(newFakeInvoker(reply)).Generate(context.Background(), "Goa", 3)
	require.NoError(t, err)

	gotHotels, err := json.Marshal(it.Hotels)
	require.NoError(t, err)
	assert.JSONEq(t, hotels, string(gotHotels))

	gotActivities, err := json.Marshal(it.Activities)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"name": "Fort", "price": 200, "day": 1, "ticketUrl": "https://example.org/fort"},
		{"name": "Beach", "price": "free", "day": 2},
		{"name": "Free day / Self\u2011exploration", "price": 0, "day": 3, "category": "flex",
		 "notes": "Buffer/free time in case user wants to rest or add custom plans"}
	]`, string(gotActivities))

	// mistyped numbers still cost as 0
	assert.Equal(t, 100.0, HotelCost(it.Hotels))
	assert.Equal(t, 200.0, ActivityCost(it.Activities))
}

func TestItineraryAgent_OrdersByDayAndDropsOutOfRange(t *testing.T) {
	reply := `{"hotels": [], "activities": [
		{"name": "late", "price": 10, "day": 2},
		{"name": "early", "price": 10, "day": 1},
		{"name": "too late", "price": 10, "day": 7},
		{"name": "no day", "price": 10}
	], "transportKm": 0}`
	agent := NewItineraryAgent(newFakeInvoker(reply))

	it, err := agent.Generate(context.Background(), "Jaipur", 2)
	require.NoError(t, err)

	names := make([]string, 0, len(it.Activities))
	for _, a := range it.Activities {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"early", "late"}, names)
}

func TestItineraryAgent_InvalidInput(t *testing.T) {
	invoker := newFakeInvoker(goaItinerary)
	agent := NewItineraryAgent(invoker)

	_, err := agent.Generate(context.Background(), "", 3)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = agent.Generate(context.Background(), "Goa", 0)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	assert.Empty(t, invoker.prompts)
}

func TestItineraryAgent_RejectsNonObject(t *testing.T) {
	agent := NewItineraryAgent(newFakeInvoker(`[1, 2, 3]`))

	_, err := agent.Generate(context.Background(), "Goa", 2)
	assert.ErrorIs(t, err, utils.ErrInvalidAgentResponse)
}

func TestItineraryAgent_PropagatesModelFailure(t *testing.T) {
	invoker := newFakeInvoker("")
	invoker.err = utils.Classify(utils.ErrUpstreamTransport, assert.AnError)

	_, err := NewItineraryAgent(invoker).Generate(context.Background(), "Goa", 2)
	assert.ErrorIs(t, err, utils.ErrUpstreamTransport)
}
