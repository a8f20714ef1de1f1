package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"venuehub/internal/models/db_models"
	"venuehub/internal/models/request_models"
	"venuehub/internal/models/response_models"
	"venuehub/internal/repositories"
	"venuehub/pkg/utils"
)

type ReviewServiceInterface interface {
	ListByVenue(ctx context.Context, venueID uuid.UUID, page, pageSize int) ([]response_models.Review, error)
	CreateReview(ctx context.Context, venueID uuid.UUID, req request_models.CreateReviewRequest) (string, error)
}

type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	venueRepo  repositories.VenueRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, venueRepo repositories.VenueRepository) ReviewServiceInterface {
	return &ReviewService{
		reviewRepo: reviewRepo,
		venueRepo:  venueRepo,
	}
}

func (s *ReviewService) ListByVenue(ctx context.Context, venueID uuid.UUID, page, pageSize int) ([]response_models.Review, error) {
	reviews, err := s.reviewRepo.ListByVenue(ctx, venueID, page, pageSize)
	if err != nil {
		log.Printf("Error listing reviews: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.Review, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, ToReviewResponse(&reviews[i]))
	}
	return responses, nil
}

// CreateReview stores the review, re-derives the venue's aggregate rating
// and invalidates the venue's embedding (rating feeds the embedding text).
func (s *ReviewService) CreateReview(ctx context.Context, venueID uuid.UUID, req request_models.CreateReviewRequest) (string, error) {
	venue, err := s.venueRepo.GetByID(ctx, venueID.String())
	if err != nil {
		log.Printf("Error fetching venue: %v", err)
		return "", utils.ErrDatabaseError
	}
	if venue == nil {
		return "", utils.ErrVenueNotFound
	}

	review := &db_models.Review{
		VenueID: venueID,
		Author:  req.Author,
		Comment: req.Comment,
		Rating:  req.Rating,
	}
	id, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		log.Printf("Error creating review: %v", err)
		return "", utils.ErrDatabaseError
	}

	avg, count, err := s.reviewRepo.RatingStats(ctx, venueID)
	if err != nil {
		log.Printf("Error computing rating stats for venue %s: %v", venueID, err)
		return id.String(), nil
	}
	if err := s.venueRepo.UpdateRatingStats(ctx, venueID, avg, count); err != nil {
		log.Printf("Error updating rating stats for venue %s: %v", venueID, err)
	}

	return id.String(), nil
}
