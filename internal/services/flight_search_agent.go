package services

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

const airlineLookupConcurrency = 5

type FlightSearchAgentInterface interface {
	Search(ctx context.Context, origin, destination, date string) (response_models.FlightSearchResult, error)
}

type FlightSearchAgent struct {
	amadeus AmadeusServiceInterface
}

func NewFlightSearchAgent(amadeus AmadeusServiceInterface) FlightSearchAgentInterface {
	return &FlightSearchAgent{amadeus: amadeus}
}

// Search treats origin and destination as IATA codes. No offers is a valid
// result with a nil cheapest flight and average price.
func (a *FlightSearchAgent) Search(ctx context.Context, origin, destination, date string) (response_models.FlightSearchResult, error) {
	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" || strings.TrimSpace(date) == "" {
		return response_models.FlightSearchResult{}, utils.InvalidInput("origin, destination and date are required")
	}
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return response_models.FlightSearchResult{}, utils.InvalidInput("date must be formatted YYYY-MM-DD")
	}

	originIata := strings.ToUpper(strings.TrimSpace(origin))
	destIata := strings.ToUpper(strings.TrimSpace(destination))

	result := response_models.FlightSearchResult{
		Origin:      origin,
		OriginIata:  originIata,
		Destination: destination,
		DestIata:    destIata,
		SearchDate:  date,
		AllFlights:  []response_models.LiveFlight{},
	}

	offers, err := a.amadeus.SearchOffers(ctx, originIata, destIata, date)
	if err != nil {
		return response_models.FlightSearchResult{}, err
	}
	if len(offers) == 0 {
		log.Info().Str("origin", originIata).Str("destination", destIata).Msg("no flight offers found")
		return result, nil
	}

	a.enrich(ctx, offers)

	sort.SliceStable(offers, func(i, j int) bool { return offers[i].Price < offers[j].Price })
	avg := math.Round(lo.SumBy(offers, func(f response_models.LiveFlight) float64 { return f.Price }) / float64(len(offers)))
	cheapest := offers[0]

	result.TotalFlights = len(offers)
	result.AllFlights = offers
	result.CheapestFlight = &cheapest
	result.AveragePrice = &avg
	return result, nil
}

// enrich attaches airline names and baggage. Lookups never fail the search.
func (a *FlightSearchAgent) enrich(ctx context.Context, offers []response_models.LiveFlight) {
	codes := lo.Uniq(lo.Map(offers, func(f response_models.LiveFlight, _ int) string { return f.CarrierCode }))
	names := make([]string, len(codes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(airlineLookupConcurrency)
	for i, code := range codes {
		g.Go(func() error {
			names[i] = a.amadeus.AirlineName(gctx, code)
			return nil
		})
	}
	_ = g.Wait()

	byCode := make(map[string]string, len(codes))
	for i, code := range codes {
		byCode[code] = names[i]
	}
	for i := range offers {
		offers[i].AirlineName = orDefault(byCode[offers[i].CarrierCode], offers[i].CarrierCode)
		offers[i].Baggage = BaggageFor(offers[i].CarrierCode)
	}
}
