package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"venuehub/internal/models/request_models"
	"venuehub/internal/services"
	"venuehub/pkg/utils"
)

// AdminController holds the operator surface: embedding backfills and
// venue moderation. Routes mounting it must require the admin role.
type AdminController struct {
	backfillService services.BackfillServiceInterface
	venueService    services.VenueServiceInterface
}

func NewAdminController(
	backfillService services.BackfillServiceInterface,
	venueService services.VenueServiceInterface,
) *AdminController {
	return &AdminController{
		backfillService: backfillService,
		venueService:    venueService,
	}
}

func (a *AdminController) BackfillVenues(c *gin.Context) {
	report, err := a.backfillService.BackfillVenues(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Venue backfill completed")
}

func (a *AdminController) BackfillReviews(c *gin.Context) {
	report, err := a.backfillService.BackfillReviews(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Review backfill completed")
}

func (a *AdminController) SetVenueStatus(c *gin.Context) {
	venueId, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid venue ID")
		return
	}

	var req request_models.SetVenueStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Status must be one of: pending, approved, rejected")
		return
	}

	if err := a.venueService.SetVenueStatus(c.Request.Context(), venueId, req.Status); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Venue status updated successfully")
}
