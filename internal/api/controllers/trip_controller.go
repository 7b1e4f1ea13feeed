package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

func (t *TripController) PlanTrip(c *gin.Context) {
	var req request_models.QuickTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := t.tripService.PlanTrip(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Trip planned successfully")
}

func (t *TripController) PlanWithBudget(c *gin.Context) {
	var req request_models.BudgetTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := t.tripService.PlanWithBudget(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Budget plan created successfully")
}

func (t *TripController) ComprehensivePlan(c *gin.Context) {
	var req request_models.ComprehensiveTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := t.tripService.ComprehensivePlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Comprehensive plan created successfully")
}

func (t *TripController) TravelOnMyBudget(c *gin.Context) {
	var req request_models.DailyBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := t.tripService.TravelOnMyBudget(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Budget simulation completed")
}

func (t *TripController) FlightOptions(c *gin.Context) {
	var req request_models.FlightOptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := t.tripService.FlightOptions(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Flight options fetched successfully")
}

func (t *TripController) RealFlights(c *gin.Context) {
	var req request_models.RealFlightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := t.tripService.RealFlights(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Flights fetched successfully")
}

func (t *TripController) Visa(c *gin.Context) {
	var req request_models.VisaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := t.tripService.Visa(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Visa information fetched successfully")
}

func (t *TripController) PackingList(c *gin.Context) {
	var req request_models.PackingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := t.tripService.PackingList(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Packing list generated successfully")
}

func (t *TripController) SearchHistory(c *gin.Context) {
	var req request_models.HistoryQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	history, err := t.tripService.SearchHistory(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, history, "Search history fetched successfully")
}
