package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"venuehub/internal/models/request_models"
	"venuehub/internal/services"
	"venuehub/pkg/utils"
)

type ReviewsController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewsController(reviewService services.ReviewServiceInterface) *ReviewsController {
	return &ReviewsController{
		reviewService: reviewService,
	}
}

func (r *ReviewsController) ListByVenue(c *gin.Context) {
	venueId, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid venue ID")
		return
	}

	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	reviews, err := r.reviewService.ListByVenue(c.Request.Context(), venueId, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
}

func (r *ReviewsController) CreateReview(c *gin.Context) {
	venueId, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid venue ID")
		return
	}

	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := r.reviewService.CreateReview(c.Request.Context(), venueId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Review created successfully")
}
