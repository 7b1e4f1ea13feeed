package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

type WeatherConfig struct {
	GeocodeURL  string
	ForecastURL string
	Timeout     time.Duration
}

type WeatherAgentInterface interface {
	Forecast(ctx context.Context, city, date string) (response_models.WeatherReport, error)
}

type WeatherAgent struct {
	cfg    WeatherConfig
	client *resty.Client
}

func NewWeatherAgent(cfg WeatherConfig) WeatherAgentInterface {
	if cfg.GeocodeURL == "" {
		cfg.GeocodeURL = "https://geocoding-api.open-meteo.com/v1/search"
	}
	if cfg.ForecastURL == "" {
		cfg.ForecastURL = "https://api.open-meteo.com/v1/forecast"
	}
	client := resty.New()
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	return &WeatherAgent{cfg: cfg, client: client}
}

type geoLocation struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

func (a *WeatherAgent) geocode(ctx context.Context, city string) (geoLocation, error) {
	var result struct {
		Results []geoLocation `json:"results"`
	}
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"name": city, "count": "1"}).
		SetResult(&result).
		Get(a.cfg.GeocodeURL)
	if err != nil {
		return geoLocation{}, utils.Classify(utils.ErrUpstreamTransport, errors.Wrap(err, "geocoding request"))
	}
	if resp.IsError() {
		return geoLocation{}, utils.Classify(utils.ErrUpstreamTransport, fmt.Errorf("geocoding error (%d)", resp.StatusCode()))
	}
	if len(result.Results) == 0 {
		return geoLocation{}, fmt.Errorf("%w: could not find location for city: %s", utils.ErrLocationNotFound, city)
	}
	return result.Results[0], nil
}

func (a *WeatherAgent) Forecast(ctx context.Context, city, date string) (response_models.WeatherReport, error) {
	if strings.TrimSpace(city) == "" || strings.TrimSpace(date) == "" {
		return response_models.WeatherReport{}, utils.InvalidInput("city and date (YYYY-MM-DD) are required")
	}

	loc, err := a.geocode(ctx, city)
	if err != nil {
		return response_models.WeatherReport{}, err
	}

	var result struct {
		Daily struct {
			Time             []string   `json:"time"`
			TemperatureMax   []*float64 `json:"temperature_2m_max"`
			TemperatureMin   []*float64 `json:"temperature_2m_min"`
			PrecipitationSum []*float64 `json:"precipitation_sum"`
			WindspeedMax     []*float64 `json:"windspeed_10m_max"`
			WeatherCode      []*int     `json:"weathercode"`
		} `json:"daily"`
	}
	params := map[string]string{
		"latitude":   strconv.FormatFloat(loc.Latitude, 'f', -1, 64),
		"longitude":  strconv.FormatFloat(loc.Longitude, 'f', -1, 64),
		"start_date": date,
		"end_date":   date,
		"daily":      "temperature_2m_max,temperature_2m_min,precipitation_sum,windspeed_10m_max,weathercode",
	}
	if loc.Timezone != "" {
		params["timezone"] = loc.Timezone
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&result).
		Get(a.cfg.ForecastURL)
	if err != nil {
		return response_models.WeatherReport{}, utils.Classify(utils.ErrUpstreamTransport, errors.Wrap(err, "forecast request"))
	}
	if resp.IsError() {
		return response_models.WeatherReport{}, utils.Classify(utils.ErrUpstreamTransport, fmt.Errorf("forecast error (%d): %s", resp.StatusCode(), resp.String()))
	}

	daily := result.Daily
	if len(daily.Time) == 0 {
		return response_models.WeatherReport{}, utils.ErrNoWeatherData
	}

	return response_models.WeatherReport{
		City:            loc.Name,
		Country:         loc.Country,
		Date:            daily.Time[0],
		Timezone:        loc.Timezone,
		MaxTemp:         first(daily.TemperatureMax),
		MinTemp:         first(daily.TemperatureMin),
		PrecipitationMm: first(daily.PrecipitationSum),
		MaxWindSpeed:    first(daily.WindspeedMax),
		WeatherCode:     first(daily.WeatherCode),
	}, nil
}

func first[T any](values []*T) *T {
	if len(values) == 0 {
		return nil
	}
	return values[0]
}
