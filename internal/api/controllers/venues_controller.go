package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"venuehub/internal/models/request_models"
	"venuehub/internal/services"
	"venuehub/pkg/utils"
)

type VenuesController struct {
	venueService services.VenueServiceInterface
}

func NewVenuesController(venueService services.VenueServiceInterface) *VenuesController {
	return &VenuesController{
		venueService: venueService,
	}
}

func (v *VenuesController) GetVenueById(c *gin.Context) {
	venueId := c.Param("id")
	if venueId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Venue ID is required")
		return
	}

	venue, err := v.venueService.GetVenueByID(c.Request.Context(), venueId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, venue, "Venue fetched successfully")
}

func (v *VenuesController) ListVenues(c *gin.Context) {
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	status := c.DefaultQuery("status", "approved")

	venues, err := v.venueService.ListVenues(c.Request.Context(), page, pageSize, status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, venues, "Venues fetched successfully")
}

func (v *VenuesController) CreateVenue(c *gin.Context) {
	var req request_models.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := v.venueService.CreateVenue(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Venue created successfully")
}

func (v *VenuesController) UpdateVenue(c *gin.Context) {
	venueId, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid venue ID")
		return
	}

	var req request_models.UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.ID = venueId

	if err := v.venueService.UpdateVenue(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Venue updated successfully")
}

func (v *VenuesController) DeleteVenue(c *gin.Context) {
	venueId, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid venue ID")
		return
	}

	if err := v.venueService.DeleteVenue(c.Request.Context(), venueId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Venue deleted successfully")
}

func parsePagination(c *gin.Context) (int, int, bool) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return 0, 0, false
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return 0, 0, false
	}

	return page, pageSize, true
}
