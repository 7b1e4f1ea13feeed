package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tripmate/cmd/tripctl/commands"
)

var rootCmd = &cobra.Command{
	Use:   "tripctl",
	Short: "Run trip planning pipelines locally",
	Long: `tripctl runs the itinerary, budget and live lookup pipelines against
the configured model and data providers and prints the result as JSON.
Nothing is saved to the history store.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return commands.LoadConfig()
	},
}

func main() {
	rootCmd.AddCommand(commands.PlanCmd)
	rootCmd.AddCommand(commands.BudgetCmd)
	rootCmd.AddCommand(commands.DailyBudgetCmd)
	rootCmd.AddCommand(commands.ComprehensiveCmd)
	rootCmd.AddCommand(commands.FlightsCmd)
	rootCmd.AddCommand(commands.WeatherCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
