package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

// fakeTripService implements only what each test sets; any other call panics.
type fakeTripService struct {
	services.TripServiceInterface
	planTrip func(request_models.QuickTripRequest) (response_models.QuickTripResult, error)
	weather  func(request_models.WeatherQuery) (response_models.WeatherResult, error)
	reviews  func(request_models.CityReviewQuery) (response_models.CityReviewResult, error)
}

func (f *fakeTripService) PlanTrip(_ context.Context, req request_models.QuickTripRequest) (response_models.QuickTripResult, error) {
	return f.planTrip(req)
}

func (f *fakeTripService) Weather(_ context.Context, req request_models.WeatherQuery) (response_models.WeatherResult, error) {
	return f.weather(req)
}

func (f *fakeTripService) CityReviews(_ context.Context, req request_models.CityReviewQuery) (response_models.CityReviewResult, error) {
	return f.reviews(req)
}

func newTestRouter(svc services.TripServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	trips := NewTripController(svc)
	weather := NewWeatherController(svc)
	reviews := NewReviewController(svc)

	r.POST("/api/trip/plan", trips.PlanTrip)
	r.GET("/api/weather", weather.GetWeather)
	r.POST("/api/weather", weather.LookupWeather)
	r.GET("/api/reviews", reviews.CityReviews)
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestPlanTrip_Success(t *testing.T) {
	id := "trip-1"
	svc := &fakeTripService{planTrip: func(req request_models.QuickTripRequest) (response_models.QuickTripResult, error) {
		assert.Equal(t, "Goa", req.Destination)
		assert.Equal(t, 3, req.Days)
		return response_models.QuickTripResult{Saved: true, TripID: &id}, nil
	}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trip/plan", strings.NewReader(`{"destination":"Goa","days":3,"userId":"u1"}`))
	req.Header.Set("Content-Type", "application/json")
	newTestRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "success", body["status"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, true, data["saved"])
	assert.Equal(t, "trip-1", data["tripId"])
}

func TestPlanTrip_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "invalid input", err: utils.InvalidInput("missing required field: destination"), code: http.StatusBadRequest},
		{name: "agent response", err: utils.InvalidAgentResponse("ItineraryAgent", "hotels missing"), code: http.StatusBadGateway},
		{name: "database", err: utils.ErrDatabaseError, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeTripService{planTrip: func(request_models.QuickTripRequest) (response_models.QuickTripResult, error) {
				return response_models.QuickTripResult{}, tt.err
			}}

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/trip/plan", strings.NewReader(`{"destination":"","days":3,"userId":"u1"}`))
			req.Header.Set("Content-Type", "application/json")
			newTestRouter(svc).ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
			body := decode(t, w)
			assert.Equal(t, "error", body["status"])
			assert.Equal(t, tt.err.Error(), body["message"])
		})
	}
}

func TestPlanTrip_MalformedBody(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trip/plan", strings.NewReader(`{"days":"three"`))
	req.Header.Set("Content-Type", "application/json")
	newTestRouter(&fakeTripService{}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request payload", decode(t, w)["message"])
}

func TestWeather_RequiresCityAndDate(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(&fakeTripService{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/weather?city=Goa", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "city and date (YYYY-MM-DD) are required", decode(t, w)["message"])
}

func TestWeather_PostFallsBackToBody(t *testing.T) {
	svc := &fakeTripService{weather: func(q request_models.WeatherQuery) (response_models.WeatherResult, error) {
		assert.Equal(t, "Goa", q.City)
		assert.Equal(t, "2025-12-01", q.Date)
		return response_models.WeatherResult{Weather: response_models.WeatherReport{City: q.City}}, nil
	}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/weather", strings.NewReader(`{"city":"Goa","date":"2025-12-01","userId":"u1"}`))
	req.Header.Set("Content-Type", "application/json")
	newTestRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWeather_LocationNotFound(t *testing.T) {
	svc := &fakeTripService{weather: func(request_models.WeatherQuery) (response_models.WeatherResult, error) {
		return response_models.WeatherResult{}, utils.ErrLocationNotFound
	}}

	w := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/weather?city=Atlantis&date=2025-12-01&userId=u1", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestCityReviews_RequiresCity(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(&fakeTripService{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/reviews", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "City is required", decode(t, w)["message"])
}

func TestCityReviews_Success(t *testing.T) {
	svc := &fakeTripService{reviews: func(q request_models.CityReviewQuery) (response_models.CityReviewResult, error) {
		return response_models.CityReviewResult{Insights: response_models.ReviewInsights{City: q.City, Summary: "Lively"}}, nil
	}}

	w := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/reviews?city=Lisbon&userId=u1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	insights := data["insights"].(map[string]interface{})
	assert.Equal(t, "Lisbon", insights["city"])
	assert.Equal(t, "Lively", insights["summary"])
}
