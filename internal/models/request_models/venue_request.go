package request_models

import "github.com/google/uuid"

type CreateVenueRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required"`

	Address   string   `json:"address"`
	City      string   `json:"city" binding:"required"`
	State     string   `json:"state" binding:"required"`
	ZipCode   string   `json:"zip_code"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	SeatedCapacity   int `json:"seated_capacity"`
	StandingCapacity int `json:"standing_capacity"`
	// Prices in cents.
	HourlyPrice int `json:"hourly_price"`
	DailyPrice  int `json:"daily_price"`

	Amenities []string `json:"amenities"`
	Images    []string `json:"images"`

	Featured     bool `json:"featured"`
	Availability bool `json:"availability"`
}

type UpdateVenueRequest struct {
	// Set from the URL path, not the body.
	ID uuid.UUID `json:"-"`

	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`

	Address   string   `json:"address"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	ZipCode   string   `json:"zip_code"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	SeatedCapacity   int `json:"seated_capacity"`
	StandingCapacity int `json:"standing_capacity"`
	HourlyPrice      int `json:"hourly_price"`
	DailyPrice       int `json:"daily_price"`

	Amenities []string `json:"amenities"`
	Images    []string `json:"images"`

	Featured     bool `json:"featured"`
	Availability bool `json:"availability"`
}

type SetVenueStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}
