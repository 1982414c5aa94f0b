package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type TripsController struct {
	tripService services.TripServiceInterface
}

func NewTripsController(tripService services.TripServiceInterface) *TripsController {
	return &TripsController{
		tripService: tripService,
	}
}

func (t *TripsController) CreateTripHandler(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID := c.GetString("user_id")

	trip, err := t.tripService.CreateTrip(c.Request.Context(), req, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip created")
}

func (t *TripsController) GetTripHandler(c *gin.Context) {
	tripID := c.Param("id")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "trip id is required")
		return
	}

	trip, err := t.tripService.GetTripById(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched")
}

func (t *TripsController) GeneratePlanHandler(c *gin.Context) {
	tripID := c.Param("id")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "trip id is required")
		return
	}

	plan, err := t.tripService.GeneratePlanForTrip(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Travel plan created successfully")
}
