package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

func sampleItinerary() response_models.Itinerary {
	return response_models.Itinerary{
		Hotels:      []response_models.HotelOption{{Name: "Grand", PricePerNight: 8000, Nights: 3}},
		Activities:  []response_models.ActivityEntry{{Name: "Cruise", Price: 4000, Day: 1}, {Name: "Beach", Price: 0, Day: 2}},
		TransportKm: 100,
	}
}

func TestBudgetAgent_Optimize(t *testing.T) {
	reply := `{
		"optimizedItinerary": {
			"hotels": [{"name": "Budget Stay", "pricePerNight": 2500, "nights": 3}],
			"activities": [{"name": "Beach", "price": 0, "day": 1}],
			"transportKm": 60
		},
		"finalCost": 8400,
		"warnings": "Cruise removed to fit the budget"
	}`
	invoker := newFakeInvoker(reply)
	base := sampleItinerary()

	result, err := NewBudgetAgent(invoker).Optimize(context.Background(), &base, 10000)
	require.NoError(t, err)

	assert.Equal(t, 8400.0, result.FinalCost)
	assert.Equal(t, 29500.0, result.InitialCost)
	assert.Equal(t, response_models.StringList{"Cruise removed to fit the budget"}, result.Warnings)
	require.Len(t, result.OptimizedItinerary.Hotels, 1)
	assert.Equal(t, "Budget Stay", result.OptimizedItinerary.Hotels[0].Name)

	prompt := invoker.lastPrompt()
	assert.Contains(t, prompt, "Total Budget: ₹10000")
	assert.Contains(t, prompt, "Current Estimated Cost: ₹29500")
}

func TestBudgetAgent_WarningsDefaultToEmpty(t *testing.T) {
	invoker := newFakeInvoker(`{"optimizedItinerary": {"hotels": [], "activities": []}, "finalCost": 0}`)
	base := sampleItinerary()

	result, err := NewBudgetAgent(invoker).Optimize(context.Background(), &base, 5000)
	require.NoError(t, err)
	assert.NotNil(t, result.Warnings)
	assert.Empty(t, result.Warnings)
}

func TestBudgetAgent_RequiresStructure(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{name: "missing itinerary", reply: `{"finalCost": 100}`},
		{name: "itinerary not object", reply: `{"optimizedItinerary": [], "finalCost": 100}`},
		{name: "final cost not number", reply: `{"optimizedItinerary": {}, "finalCost": "cheap"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := sampleItinerary()
			_, err := NewBudgetAgent(newFakeInvoker(tt.reply)).Optimize(context.Background(), &base, 5000)
			require.Error(t, err)
			assert.ErrorIs(t, err, utils.ErrInvalidAgentResponse)
			assert.Contains(t, err.Error(), "failed to optimize budget")
		})
	}
}

func TestBudgetAgent_NilItinerary(t *testing.T) {
	_, err := NewBudgetAgent(newFakeInvoker(`{}`)).Optimize(context.Background(), nil, 5000)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
