package services

import (
	"venuehub/internal/models/db_models"
	"venuehub/internal/models/response_models"
)

func ToVenueResponse(venue *db_models.Venue) response_models.Venue {
	return response_models.Venue{
		ID:          venue.ID.String(),
		Name:        venue.Name,
		Description: venue.Description,
		Location: response_models.Location{
			Address:   venue.Address,
			City:      venue.City,
			State:     venue.State,
			ZipCode:   venue.ZipCode,
			Latitude:  venue.Latitude,
			Longitude: venue.Longitude,
		},
		Capacity: response_models.Capacity{
			Seated:   venue.SeatedCapacity,
			Standing: venue.StandingCapacity,
		},
		Price: response_models.Price{
			Hourly: float64(venue.HourlyPrice) / 100,
			Daily:  float64(venue.DailyPrice) / 100,
		},
		Amenities:    venue.Amenities,
		Images:       venue.Images,
		Category:     venue.Category,
		Rating:       venue.Rating,
		Reviews:      venue.ReviewsCount,
		Availability: venue.Availability,
		Featured:     venue.Featured,
		Status:       venue.Status,
	}
}

// ToAgentVenue strips images and carries the similarity score only when
// the semantic step produced one.
func ToAgentVenue(venue *db_models.Venue, similarityScore *float32) response_models.AgentVenue {
	return response_models.AgentVenue{
		ID:          venue.ID.String(),
		Name:        venue.Name,
		Description: venue.Description,
		Location: response_models.Location{
			Address:   venue.Address,
			City:      venue.City,
			State:     venue.State,
			ZipCode:   venue.ZipCode,
			Latitude:  venue.Latitude,
			Longitude: venue.Longitude,
		},
		Capacity: response_models.Capacity{
			Seated:   venue.SeatedCapacity,
			Standing: venue.StandingCapacity,
		},
		Price: response_models.Price{
			Hourly: float64(venue.HourlyPrice) / 100,
			Daily:  float64(venue.DailyPrice) / 100,
		},
		Amenities:       venue.Amenities,
		Category:        venue.Category,
		Rating:          venue.Rating,
		Reviews:         venue.ReviewsCount,
		Availability:    venue.Availability,
		Featured:        venue.Featured,
		SimilarityScore: similarityScore,
	}
}

func ToReviewResponse(review *db_models.Review) response_models.Review {
	return response_models.Review{
		ID:      review.ID.String(),
		VenueID: review.VenueID.String(),
		Author:  review.Author,
		Comment: review.Comment,
		Rating:  review.Rating,
	}
}
