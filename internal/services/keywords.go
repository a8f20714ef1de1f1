package services

import "venuehub/internal/models/db_models"

// Keyword expansion for embedding text. Each bucket maps a categorical or
// numeric tier onto words a searcher would actually type, which pulls the
// document vectors toward plausible queries.

var categoryKeywords = map[string]string{
	db_models.CategoryWedding:    "wedding ceremony reception bridal romantic elegant beautiful",
	db_models.CategoryCorporate:  "business meeting conference professional office boardroom",
	db_models.CategoryParty:      "celebration birthday anniversary fun festive entertainment",
	db_models.CategoryOutdoor:    "nature garden park scenic natural fresh air landscape",
	db_models.CategoryHistoric:   "heritage vintage classic traditional architecture historical",
	db_models.CategoryModern:     "contemporary sleek minimalist urban chic stylish",
	db_models.CategoryConference: "meeting presentation seminar workshop training business",
	db_models.CategoryExhibition: "display showcase gallery museum art culture",
}

func CategoryKeywords(category string) string {
	return categoryKeywords[category]
}

func CapacityKeywords(seatedCapacity int) string {
	switch {
	case seatedCapacity > 200:
		return "large spacious grand ballroom massive"
	case seatedCapacity > 100:
		return "medium sized comfortable roomy"
	default:
		return "intimate cozy small private boutique"
	}
}

// PriceKeywords buckets by the hourly rate. priceInCents is the stored
// value; the tiers are in dollars per hour.
func PriceKeywords(priceInCents int) string {
	pricePerHour := priceInCents / 100
	switch {
	case pricePerHour > 1000:
		return "luxury premium upscale exclusive high-end"
	case pricePerHour > 500:
		return "upscale quality refined elegant"
	default:
		return "affordable budget-friendly value economical"
	}
}

func RatingKeywords(rating float64) string {
	switch {
	case rating >= 5:
		return "excellent outstanding perfect amazing exceptional"
	case rating >= 4:
		return "great good quality recommended solid"
	case rating >= 3:
		return "decent okay average acceptable"
	default:
		return "poor disappointing issues problems"
	}
}

func FeaturedKeywords(featured bool) string {
	if !featured {
		return ""
	}
	return "featured recommended popular top-rated premier"
}
