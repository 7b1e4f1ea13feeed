package response_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotelOption_WithTotalCostKeepsModelFields(t *testing.T) {
	var hotel HotelOption
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Taj", "pricePerNight": 5000, "address": "MG Road", "rating": "4.5"}`), &hotel))

	annotated := hotel.WithTotalCost(15000)
	assert.Equal(t, Amount(15000), annotated.TotalCost)

	out, err := json.Marshal(annotated)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "Taj", "pricePerNight": 5000, "address": "MG Road", "rating": "4.5", "totalCost": 15000}`, string(out))

	original, err := json.Marshal(hotel)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "Taj", "pricePerNight": 5000, "address": "MG Road", "rating": "4.5"}`, string(original))
}

func TestHotelOption_BuiltInCodeMarshalsTypedFields(t *testing.T) {
	out, err := json.Marshal(HotelOption{Name: "Ibis", PricePerNight: 3000, Nights: 2}.WithTotalCost(6000))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "Ibis", "pricePerNight": 3000, "nights": 2, "totalCost": 6000}`, string(out))
}

func TestPlacesRecommendation_KeepsMistypedElements(t *testing.T) {
	raw := `{
		"placesToVisit": [
			{"name": "Louvre", "priority": "must-see", "entryFee": "varies", "rating": 4.8},
			{"name": "Eiffel Tower", "priority": "must-see", "visitDuration": 2},
			"Notre-Dame"
		],
		"dayWisePlan": [{"day": 1, "places": ["Louvre"], "meal": "Bistro"}],
		"cheapFacilities": [{"name": "Metro", "cost": "1.90 EUR"}]
	}`

	var places PlacesRecommendation
	require.NoError(t, json.Unmarshal([]byte(raw), &places))

	require.Len(t, places.PlacesToVisit, 3)
	mustSee := places.MustSee()
	require.Len(t, mustSee, 2)
	assert.Equal(t, "Eiffel Tower", mustSee[1].Name)
	assert.Equal(t, Amount(0), places.CheapFacilities[0].Cost)

	out, err := json.Marshal(places)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestDecodeList_NotAnArray(t *testing.T) {
	list, ok := DecodeList[HotelOption](json.RawMessage(`{"name": "Taj"}`))
	assert.False(t, ok)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
