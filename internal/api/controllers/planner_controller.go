package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
	}
}

// PreviewPlanHandler generates a plan without a target trip: cached and
// coalesced by the normalized request, never persisted.
func (p *PlannerController) PreviewPlanHandler(c *gin.Context) {
	var req request_models.TripPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	req.TripID = ""

	plan, err := p.plannerService.GeneratePlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Travel plan created successfully")
}
