package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"

	"tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

const (
	hotelShare          = 0.4
	activityShare       = 0.3
	plannedKmPerDay     = 50.0
	upgradeSurplusShare = 0.2
)

type BudgetConstraintAgentInterface interface {
	Allocate(ctx context.Context, destination string, days int, budget float64) (response_models.BudgetConstraintResult, error)
}

// BudgetConstraintAgent selects hotels and activities against a fixed budget
// split without asking the model to optimize anything.
type BudgetConstraintAgent struct {
	hotels     HotelAgentInterface
	activities ActivityAgentInterface
}

func NewBudgetConstraintAgent(hotels HotelAgentInterface, activities ActivityAgentInterface) BudgetConstraintAgentInterface {
	return &BudgetConstraintAgent{hotels: hotels, activities: activities}
}

func (a *BudgetConstraintAgent) Allocate(ctx context.Context, destination string, days int, budget float64) (response_models.BudgetConstraintResult, error) {
	if strings.TrimSpace(destination) == "" || days <= 0 {
		return response_models.BudgetConstraintResult{}, utils.InvalidInput("destination and days are required, days must be > 0")
	}
	if budget <= 0 || math.IsNaN(budget) || math.IsInf(budget, 0) {
		return response_models.BudgetConstraintResult{}, utils.InvalidInput("budget must be a number greater than 0")
	}

	dailyBudget := budget / float64(days)
	hotelBudgetPerNight := dailyBudget * hotelShare
	activityBudgetPerDay := dailyBudget * activityShare

	hotels, err := a.hotels.Suggest(ctx, destination, hotelBudgetPerNight)
	if err != nil {
		return response_models.BudgetConstraintResult{}, err
	}
	activities, err := a.activities.Suggest(ctx, destination, activityBudgetPerDay)
	if err != nil {
		return response_models.BudgetConstraintResult{}, err
	}

	selectedHotels, err := selectHotels(hotels, activities, days, budget)
	if err != nil {
		return response_models.BudgetConstraintResult{}, err
	}

	hotelCost := selectedHotels[0].TotalCost.Float()

	transportKm := float64(days) * plannedKmPerDay
	transportCost := TransportCost(transportKm)
	perDayActivityBudget := (budget - hotelCost - transportCost) / float64(days)

	selectedActivities := selectActivities(activities, perDayActivityBudget)
	activityCost := ActivityCost(selectedActivities) * float64(days)

	finalCost := hotelCost + transportCost + activityCost
	remaining := budget - finalCost

	return response_models.BudgetConstraintResult{
		DailyBudget:          dailyBudget,
		HotelBudgetPerNight:  hotelBudgetPerNight,
		ActivityBudgetPerDay: activityBudgetPerDay,
		BudgetBreakdown: response_models.AllocationBreakdown{
			Hotel:      hotelCost,
			Transport:  transportCost,
			Activities: activityCost,
			Total:      finalCost,
			Remaining:  remaining,
		},
		Recommendations: response_models.BudgetRecommendations{
			Hotels:      selectedHotels,
			Activities:  selectedActivities,
			TransportKm: transportKm,
			Suggestions: []response_models.Suggestion{budgetSuggestion(budget, remaining)},
		},
	}, nil
}

// selectHotels keeps hotels that leave room for the cheapest activity every
// day, falling back to the single cheapest hotel (first minimum wins).
func selectHotels(hotels []response_models.HotelOption, activities []response_models.ActivityEntry, days int, budget float64) ([]response_models.HotelOption, error) {
	if len(hotels) == 0 {
		return nil, utils.InvalidAgentResponse("BudgetConstraintAgent", "no hotel candidates returned")
	}

	priced := lo.Map(hotels, func(h response_models.HotelOption, _ int) response_models.HotelOption {
		return h.WithTotalCost(h.PricePerNight.Float() * float64(days))
	})

	minActivity := math.Inf(1)
	if len(activities) > 0 {
		minActivity = lo.Min(lo.Map(activities, func(act response_models.ActivityEntry, _ int) float64 {
			return act.Price.Float()
		}))
	}
	reserve := minActivity * float64(days)

	affordable := lo.Filter(priced, func(h response_models.HotelOption, _ int) bool {
		return budget-h.TotalCost.Float() >= reserve
	})
	if len(affordable) > 0 {
		return affordable, nil
	}

	cheapest := lo.MinBy(priced, func(a, b response_models.HotelOption) bool {
		return a.PricePerNight < b.PricePerNight
	})
	return []response_models.HotelOption{cheapest}, nil
}

// selectActivities takes every free activity, then paid ones first-fit in
// their given order while they fit the per-day ceiling.
func selectActivities(activities []response_models.ActivityEntry, perDayBudget float64) []response_models.ActivityEntry {
	selected := lo.Filter(activities, func(act response_models.ActivityEntry, _ int) bool {
		return act.Price == 0
	})

	remaining := perDayBudget
	for _, act := range activities {
		price := act.Price.Float()
		if price <= 0 {
			continue
		}
		if price <= remaining {
			selected = append(selected, act)
			remaining -= price
		}
	}
	return selected
}

func budgetSuggestion(budget, remaining float64) response_models.Suggestion {
	switch {
	case remaining < 0:
		return response_models.Suggestion{
			Type:    response_models.SuggestionWarning,
			Message: fmt.Sprintf("Budget exceeded by ₹%s. Consider reducing days or selecting cheaper options.", formatAmount(math.Abs(remaining))),
		}
	case remaining > budget*upgradeSurplusShare:
		return response_models.Suggestion{
			Type:    response_models.SuggestionOpportunity,
			Message: fmt.Sprintf("You have ₹%s remaining. Consider upgrading accommodation or adding more activities.", formatAmount(remaining)),
		}
	default:
		return response_models.Suggestion{
			Type:    response_models.SuggestionSuccess,
			Message: fmt.Sprintf("Perfect! Your trip fits within budget with ₹%s remaining for emergencies.", formatAmount(remaining)),
		}
	}
}
