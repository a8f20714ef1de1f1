package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type Review struct {
	BaseModel
	VenueID uuid.UUID `gorm:"type:uuid;index;not null"`
	Author  string
	Comment string
	Rating  int `gorm:"check:rating >= 1 AND rating <= 5"`

	Embedding          *pgvector.Vector `gorm:"type:vector(1024)"`
	EmbeddingUpdatedAt *time.Time
}
