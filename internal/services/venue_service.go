package services

import (
	"context"
	"log"
	"slices"

	"github.com/google/uuid"

	"venuehub/internal/models/db_models"
	"venuehub/internal/models/request_models"
	"venuehub/internal/models/response_models"
	"venuehub/internal/repositories"
	"venuehub/pkg/utils"
)

type VenueServiceInterface interface {
	GetVenueByID(ctx context.Context, id string) (response_models.Venue, error)
	ListVenues(ctx context.Context, page, pageSize int, status string) ([]response_models.Venue, error)
	CreateVenue(ctx context.Context, req request_models.CreateVenueRequest) (string, error)
	UpdateVenue(ctx context.Context, req request_models.UpdateVenueRequest) error
	DeleteVenue(ctx context.Context, id uuid.UUID) error
	SetVenueStatus(ctx context.Context, id uuid.UUID, status string) error
}

type VenueService struct {
	venueRepo repositories.VenueRepository
}

func NewVenueService(venueRepo repositories.VenueRepository) VenueServiceInterface {
	return &VenueService{venueRepo: venueRepo}
}

func (s *VenueService) GetVenueByID(ctx context.Context, id string) (response_models.Venue, error) {
	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching venue: %v", err)
		return response_models.Venue{}, utils.ErrDatabaseError
	}
	if venue == nil {
		return response_models.Venue{}, utils.ErrVenueNotFound
	}
	return ToVenueResponse(venue), nil
}

func (s *VenueService) ListVenues(ctx context.Context, page, pageSize int, status string) ([]response_models.Venue, error) {
	venues, err := s.venueRepo.List(ctx, page, pageSize, status)
	if err != nil {
		log.Printf("Error listing venues: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.Venue, 0, len(venues))
	for i := range venues {
		responses = append(responses, ToVenueResponse(&venues[i]))
	}
	return responses, nil
}

func (s *VenueService) CreateVenue(ctx context.Context, req request_models.CreateVenueRequest) (string, error) {
	venue := &db_models.Venue{
		Name:             req.Name,
		Description:      req.Description,
		Category:         req.Category,
		Address:          req.Address,
		City:             req.City,
		State:            req.State,
		ZipCode:          req.ZipCode,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		SeatedCapacity:   req.SeatedCapacity,
		StandingCapacity: req.StandingCapacity,
		HourlyPrice:      req.HourlyPrice,
		DailyPrice:       req.DailyPrice,
		Amenities:        req.Amenities,
		Images:           req.Images,
		Featured:         req.Featured,
		Availability:     req.Availability,
		Status:           db_models.VenueStatusPending,
	}

	id, err := s.venueRepo.Create(ctx, venue)
	if err != nil {
		log.Printf("Error creating venue: %v", err)
		return "", utils.ErrDatabaseError
	}
	return id.String(), nil
}

func (s *VenueService) UpdateVenue(ctx context.Context, req request_models.UpdateVenueRequest) error {
	existing, err := s.venueRepo.GetByID(ctx, req.ID.String())
	if err != nil {
		log.Printf("Error fetching venue: %v", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrVenueNotFound
	}

	stale := embeddedFieldsChanged(existing, req)

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Category = req.Category
	existing.Address = req.Address
	existing.City = req.City
	existing.State = req.State
	existing.ZipCode = req.ZipCode
	existing.Latitude = req.Latitude
	existing.Longitude = req.Longitude
	existing.SeatedCapacity = req.SeatedCapacity
	existing.StandingCapacity = req.StandingCapacity
	existing.HourlyPrice = req.HourlyPrice
	existing.DailyPrice = req.DailyPrice
	existing.Amenities = req.Amenities
	existing.Images = req.Images
	existing.Featured = req.Featured
	existing.Availability = req.Availability

	// Any edit to a field that feeds the embedding text invalidates the
	// stored vector; the backfill job regenerates it.
	if stale {
		existing.ClearEmbedding()
	}

	if err := s.venueRepo.Update(ctx, existing); err != nil {
		log.Printf("Error updating venue: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *VenueService) DeleteVenue(ctx context.Context, id uuid.UUID) error {
	existing, err := s.venueRepo.GetByID(ctx, id.String())
	if err != nil {
		log.Printf("Error fetching venue: %v", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrVenueNotFound
	}

	if err := s.venueRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting venue: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *VenueService) SetVenueStatus(ctx context.Context, id uuid.UUID, status string) error {
	switch status {
	case db_models.VenueStatusPending, db_models.VenueStatusApproved, db_models.VenueStatusRejected:
	default:
		return utils.ErrInvalidInput
	}

	if err := s.venueRepo.SetStatus(ctx, id, status); err != nil {
		log.Printf("Error setting venue status: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func embeddedFieldsChanged(existing *db_models.Venue, req request_models.UpdateVenueRequest) bool {
	return existing.Name != req.Name ||
		existing.Description != req.Description ||
		existing.Category != req.Category ||
		existing.City != req.City ||
		existing.State != req.State ||
		existing.SeatedCapacity != req.SeatedCapacity ||
		existing.StandingCapacity != req.StandingCapacity ||
		existing.HourlyPrice != req.HourlyPrice ||
		existing.DailyPrice != req.DailyPrice ||
		existing.Featured != req.Featured ||
		!slices.Equal([]string(existing.Amenities), req.Amenities)
}
