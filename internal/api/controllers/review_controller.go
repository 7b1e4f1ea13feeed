package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type ReviewController struct {
	tripService services.TripServiceInterface
}

func NewReviewController(tripService services.TripServiceInterface) *ReviewController {
	return &ReviewController{
		tripService: tripService,
	}
}

func (r *ReviewController) CityReviews(c *gin.Context) {
	var query request_models.CityReviewQuery
	if err := c.ShouldBindQuery(&query); err != nil || query.City == "" {
		utils.RespondError(c, http.StatusBadRequest, "City is required")
		return
	}

	result, err := r.tripService.CityReviews(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "City reviews fetched successfully")
}
