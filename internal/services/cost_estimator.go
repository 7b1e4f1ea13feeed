package services

import (
	"math"

	"github.com/samber/lo"

	"tripmate/internal/models/response_models"
)

// TransportRatePerKm is the flat local transport rate in currency units.
const TransportRatePerKm = 15.0

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// HotelCost sums nightly rate × nights. A hotel without pricePerNight uses price.
func HotelCost(hotels []response_models.HotelOption) float64 {
	return finite(lo.SumBy(hotels, func(h response_models.HotelOption) float64 {
		return finite(h.NightlyRate() * h.Nights.Float())
	}))
}

func ActivityCost(activities []response_models.ActivityEntry) float64 {
	return finite(lo.SumBy(activities, func(a response_models.ActivityEntry) float64 {
		return finite(a.Price.Float())
	}))
}

func TransportCost(km float64) float64 {
	return finite(finite(km) * TransportRatePerKm)
}

func TotalCost(hotels, activities, transport float64) float64 {
	return finite(hotels + activities + transport)
}

// ItineraryCosts is the hotel, activity and transport split of an itinerary.
type ItineraryCosts struct {
	Hotels     float64
	Activities float64
	Transport  float64
	Total      float64
}

func EstimateItinerary(it response_models.Itinerary) ItineraryCosts {
	c := ItineraryCosts{
		Hotels:     HotelCost(it.Hotels),
		Activities: ActivityCost(it.Activities),
		Transport:  TransportCost(it.TransportKm.Float()),
	}
	c.Total = TotalCost(c.Hotels, c.Activities, c.Transport)
	return c
}

// LodgingAndActivities is the breakdown shown next to budget plans; it leaves transport out.
func LodgingAndActivities(it response_models.Itinerary) response_models.CostBreakdown {
	hotels := HotelCost(it.Hotels)
	activities := ActivityCost(it.Activities)
	return response_models.CostBreakdown{
		Hotels:     hotels,
		Activities: activities,
		Total:      hotels + activities,
	}
}
