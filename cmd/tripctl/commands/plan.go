package commands

import (
	"github.com/spf13/cobra"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
)

var PlanCmd = &cobra.Command{
	Use:   "plan <destination>",
	Short: "Generate a base itinerary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")

		invoker, err := newInvoker(cmd.Context())
		if err != nil {
			return err
		}
		itinerary, err := services.NewItineraryAgent(invoker).Generate(cmd.Context(), args[0], days)
		if err != nil {
			return err
		}
		return printJSON(itinerary)
	},
}

var BudgetCmd = &cobra.Command{
	Use:   "budget <destination>",
	Short: "Generate an itinerary and optimize it for a total budget",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		budget, _ := cmd.Flags().GetFloat64("budget")

		invoker, err := newInvoker(cmd.Context())
		if err != nil {
			return err
		}
		base, err := services.NewItineraryAgent(invoker).Generate(cmd.Context(), args[0], days)
		if err != nil {
			return err
		}
		optimized, err := services.NewBudgetAgent(invoker).Optimize(cmd.Context(), &base, budget)
		if err != nil {
			return err
		}
		return printJSON(optimized)
	},
}

var DailyBudgetCmd = &cobra.Command{
	Use:   "daily-budget <destination>",
	Short: "Fit an itinerary under a daily spending limit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		limit, _ := cmd.Flags().GetFloat64("limit")

		invoker, err := newInvoker(cmd.Context())
		if err != nil {
			return err
		}
		base, err := services.NewItineraryAgent(invoker).Generate(cmd.Context(), args[0], days)
		if err != nil {
			return err
		}
		plan, err := services.NewDynamicBudgetAgent(invoker).Simulate(cmd.Context(), args[0], days, limit, base)
		if err != nil {
			return err
		}
		return printJSON(plan)
	},
}

var ComprehensiveCmd = &cobra.Command{
	Use:   "comprehensive <destination>",
	Short: "Run every agent and print the full plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		budget, _ := cmd.Flags().GetFloat64("budget")
		nationality, _ := cmd.Flags().GetString("nationality")
		origin, _ := cmd.Flags().GetString("origin")
		tripType, _ := cmd.Flags().GetString("trip-type")

		invoker, err := newInvoker(cmd.Context())
		if err != nil {
			return err
		}

		req := request_models.PlanRequest{
			Destination: args[0],
			Days:        days,
			Nationality: nationality,
			Meta: request_models.PlanMeta{
				TripType: tripType,
				Origin:   origin,
			},
		}
		if budget > 0 {
			req.Budget = &budget
		}

		plan, err := newOrchestrator(invoker).CreateComprehensivePlan(cmd.Context(), req)
		if err != nil {
			return err
		}
		return printJSON(plan)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{PlanCmd, BudgetCmd, DailyBudgetCmd, ComprehensiveCmd} {
		cmd.Flags().IntP("days", "d", 3, "number of days")
	}
	BudgetCmd.Flags().Float64P("budget", "b", 0, "total budget")
	DailyBudgetCmd.Flags().Float64P("limit", "l", 0, "daily budget limit")

	ComprehensiveCmd.Flags().Float64P("budget", "b", 0, "total budget (0 for none)")
	ComprehensiveCmd.Flags().String("nationality", "", "traveler nationality for the visa lookup")
	ComprehensiveCmd.Flags().String("origin", "", "departure city for the flight quote")
	ComprehensiveCmd.Flags().String("trip-type", "leisure", "trip type hint for the packing list")
}
