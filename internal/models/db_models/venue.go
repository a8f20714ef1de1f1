package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

const (
	VenueStatusPending  = "pending"
	VenueStatusApproved = "approved"
	VenueStatusRejected = "rejected"
)

// Venue categories known to the keyword generator. Unknown categories are
// still stored, they just get no synonym expansion.
const (
	CategoryWedding    = "wedding"
	CategoryCorporate  = "corporate"
	CategoryParty      = "party"
	CategoryConference = "conference"
	CategoryExhibition = "exhibition"
	CategoryOutdoor    = "outdoor"
	CategoryHistoric   = "historic"
	CategoryModern     = "modern"
)

type Venue struct {
	BaseModel
	Name        string `gorm:"not null"`
	Description string
	Category    string `gorm:"index"`

	Address string
	City    string `gorm:"index"`
	State   string `gorm:"index"`
	ZipCode string
	// Optional geocoordinates, filled by an external geocoder.
	Latitude  *float64
	Longitude *float64

	SeatedCapacity   int
	StandingCapacity int
	// Prices are stored in cents.
	HourlyPrice int
	DailyPrice  int

	Amenities pq.StringArray `gorm:"type:text[]"`
	Images    pq.StringArray `gorm:"type:text[]"`

	Rating       float64
	ReviewsCount int

	Featured     bool
	Availability bool
	Status       string `gorm:"index;default:pending"`

	OwnerID *string

	// Embedding is null until the backfill job has processed the venue.
	// EmbeddingText keeps the exact text the vector was generated from.
	Embedding          *pgvector.Vector `gorm:"type:vector(1024)"`
	EmbeddingText      string
	EmbeddingUpdatedAt *time.Time

	Reviews []Review `gorm:"foreignKey:VenueID"`
}

// ClearEmbedding marks the stored vector stale after an edit to any field
// that feeds the embedding text.
func (v *Venue) ClearEmbedding() {
	v.Embedding = nil
	v.EmbeddingText = ""
	v.EmbeddingUpdatedAt = nil
}
