package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"tripmate/internal/models/response_models"
	"tripmate/pkg/memcache"
	"tripmate/pkg/utils"
)

const (
	amadeusTokenKey   = "amadeus:token"
	airlineNamePrefix = "amadeus:airline:"
	airlineNameTTL    = 24 * time.Hour
	tokenExpirySlack  = 30 * time.Second
	maxOffers         = 20
)

type AmadeusConfig struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	Currency     string
	Timeout      time.Duration
}

type AmadeusServiceInterface interface {
	SearchOffers(ctx context.Context, originIata, destIata, date string) ([]response_models.LiveFlight, error)
	// AirlineName resolves a carrier code, returning the code itself on any failure.
	AirlineName(ctx context.Context, carrierCode string) string
}

type AmadeusService struct {
	cfg    AmadeusConfig
	client *resty.Client
	cache  memcache.TTLStore
}

func NewAmadeusService(cfg AmadeusConfig, cache memcache.TTLStore) AmadeusServiceInterface {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://test.api.amadeus.com"
	}
	if cfg.Currency == "" {
		cfg.Currency = "INR"
	}
	client := resty.New().SetBaseURL(cfg.BaseURL)
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	return &AmadeusService{cfg: cfg, client: client, cache: cache}
}

type amadeusErrorBody struct {
	Errors []struct {
		Detail string `json:"detail"`
		Title  string `json:"title"`
	} `json:"errors"`
	ErrorDescription string `json:"error_description"`
}

func amadeusError(resp *resty.Response) error {
	var body amadeusErrorBody
	msg := string(resp.Body())
	if json.Unmarshal(resp.Body(), &body) == nil {
		switch {
		case len(body.Errors) > 0 && body.Errors[0].Detail != "":
			msg = body.Errors[0].Detail
		case len(body.Errors) > 0 && body.Errors[0].Title != "":
			msg = body.Errors[0].Title
		case body.ErrorDescription != "":
			msg = body.ErrorDescription
		}
	}
	return utils.Classify(utils.ErrUpstreamTransport, fmt.Errorf("amadeus error (%d): %s", resp.StatusCode(), msg))
}

func (s *AmadeusService) accessToken(ctx context.Context) (string, error) {
	if token, ok := s.cache.Get(amadeusTokenKey); ok {
		return token, nil
	}
	if s.cfg.ClientID == "" || s.cfg.ClientSecret == "" {
		return "", utils.Classify(utils.ErrUpstreamTransport, errors.New("AMADEUS_CLIENT_ID/SECRET missing"))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    "client_credentials",
			"client_id":     s.cfg.ClientID,
			"client_secret": s.cfg.ClientSecret,
		}).
		SetResult(&result).
		Post("/v1/security/oauth2/token")
	if err != nil {
		return "", utils.Classify(utils.ErrUpstreamTransport, errors.Wrap(err, "amadeus token request"))
	}
	if resp.StatusCode() != http.StatusOK {
		return "", amadeusError(resp)
	}
	if result.AccessToken == "" {
		return "", utils.Classify(utils.ErrUpstreamTransport, errors.New("amadeus token response had no access_token"))
	}

	ttl := time.Duration(result.ExpiresIn)*time.Second - tokenExpirySlack
	if ttl > 0 {
		s.cache.Set(amadeusTokenKey, result.AccessToken, ttl)
	}
	return result.AccessToken, nil
}

type amadeusOffer struct {
	ID          string `json:"id"`
	Itineraries []struct {
		Duration string `json:"duration"`
		Segments []struct {
			CarrierCode string `json:"carrierCode"`
			Number      string `json:"number"`
			Departure   struct {
				At string `json:"at"`
			} `json:"departure"`
			Arrival struct {
				At string `json:"at"`
			} `json:"arrival"`
		} `json:"segments"`
	} `json:"itineraries"`
	Price struct {
		Total    string `json:"total"`
		Currency string `json:"currency"`
	} `json:"price"`
}

func (s *AmadeusService) SearchOffers(ctx context.Context, originIata, destIata, date string) ([]response_models.LiveFlight, error) {
	token, err := s.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	var result struct {
		Data []json.RawMessage `json:"data"`
	}
	log.Debug().Str("origin", originIata).Str("destination", destIata).Str("date", date).Msg("calling flight-offers")
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParams(map[string]string{
			"originLocationCode":      originIata,
			"destinationLocationCode": destIata,
			"departureDate":           date,
			"adults":                  "1",
			"max":                     strconv.Itoa(maxOffers),
			"currencyCode":            s.cfg.Currency,
		}).
		SetResult(&result).
		Get("/v2/shopping/flight-offers")
	if err != nil {
		return nil, utils.Classify(utils.ErrUpstreamTransport, errors.Wrap(err, "amadeus flight-offers request"))
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		s.cache.Delete(amadeusTokenKey)
	}
	if resp.IsError() {
		return nil, amadeusError(resp)
	}

	flights := make([]response_models.LiveFlight, 0, len(result.Data))
	for _, raw := range result.Data {
		var offer amadeusOffer
		if err := json.Unmarshal(raw, &offer); err != nil {
			log.Warn().Err(err).Msg("skipping unreadable flight offer")
			continue
		}
		if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
			continue
		}
		it := offer.Itineraries[0]
		seg := it.Segments[0]
		price, _ := strconv.ParseFloat(offer.Price.Total, 64)

		flights = append(flights, response_models.LiveFlight{
			ID:           offer.ID,
			CarrierCode:  seg.CarrierCode,
			FlightNumber: seg.Number,
			Departure:    seg.Departure.At,
			Arrival:      seg.Arrival.At,
			Duration:     it.Duration,
			Price:        finite(price),
			Currency:     offer.Price.Currency,
			Stops:        len(it.Segments) - 1,
			RawOffer:     raw,
		})
	}
	return flights, nil
}

func (s *AmadeusService) AirlineName(ctx context.Context, carrierCode string) string {
	if carrierCode == "" {
		return carrierCode
	}
	if name, ok := s.cache.Get(airlineNamePrefix + carrierCode); ok {
		return name
	}

	token, err := s.accessToken(ctx)
	if err != nil {
		return carrierCode
	}

	var result struct {
		Data []struct {
			BusinessName string `json:"businessName"`
			CommonName   string `json:"commonName"`
		} `json:"data"`
	}
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParam("airlineCodes", carrierCode).
		SetResult(&result).
		Get("/v1/reference-data/airlines")
	if err != nil || resp.IsError() || len(result.Data) == 0 {
		log.Debug().Str("carrier", carrierCode).Msg("airline lookup failed, using carrier code")
		return carrierCode
	}

	name := orDefault(result.Data[0].BusinessName, result.Data[0].CommonName)
	if name == "" {
		return carrierCode
	}
	s.cache.Set(airlineNamePrefix+carrierCode, name, airlineNameTTL)
	return name
}
