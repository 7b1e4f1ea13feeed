package commands

import (
	"github.com/spf13/cobra"
)

var FlightsCmd = &cobra.Command{
	Use:   "flights <origin> <destination> <date>",
	Short: "Search live flight offers between two IATA codes",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := newFlightSearch().Search(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var WeatherCmd = &cobra.Command{
	Use:   "weather <city> <date>",
	Short: "Fetch the daily forecast for a city",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := newWeatherAgent().Forecast(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return printJSON(report)
	},
}
