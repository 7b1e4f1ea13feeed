package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type WeatherController struct {
	tripService services.TripServiceInterface
}

func NewWeatherController(tripService services.TripServiceInterface) *WeatherController {
	return &WeatherController{
		tripService: tripService,
	}
}

// GetWeather serves GET ?city=&date=&userId=.
func (w *WeatherController) GetWeather(c *gin.Context) {
	var query request_models.WeatherQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}
	w.respond(c, query)
}

// LookupWeather reads the query string first and falls back to a JSON body.
func (w *WeatherController) LookupWeather(c *gin.Context) {
	var query request_models.WeatherQuery
	_ = c.ShouldBindQuery(&query)
	if query.City == "" && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&query); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
			return
		}
	}
	w.respond(c, query)
}

func (w *WeatherController) respond(c *gin.Context, query request_models.WeatherQuery) {
	if query.City == "" || query.Date == "" {
		utils.RespondError(c, http.StatusBadRequest, "city and date (YYYY-MM-DD) are required")
		return
	}

	result, err := w.tripService.Weather(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Weather fetched successfully")
}
