package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"venuehub/internal/models/db_models"
)

// CandidateFilter is the exact-match predicate set applied before (or
// instead of) the semantic step. Status and availability predicates are
// always on and not expressed here.
type CandidateFilter struct {
	Category    string
	City        string
	State       string
	MinCapacity int     // standing_capacity >= N
	MaxPrice    int     // hourly_price <= N, in cents
	Featured    *bool
	MinRating   float64
	Limit       int // candidate pool cap, defaults to 200
}

// VenueVector is the slim projection the similarity search ranks over.
type VenueVector struct {
	VenueID     uuid.UUID
	Name        string
	Description string
	City        string
	State       string
	Category    string
	Embedding   pgvector.Vector
}

const defaultCandidateLimit = 200

type VenueRepository interface {
	Create(ctx context.Context, venue *db_models.Venue) (uuid.UUID, error)
	Update(ctx context.Context, venue *db_models.Venue) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.Venue, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Venue, error)
	List(ctx context.Context, page, pageSize int, status string) ([]db_models.Venue, error)
	FilterCandidates(ctx context.Context, filter CandidateFilter) ([]db_models.Venue, error)

	SetStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdateRatingStats(ctx context.Context, id uuid.UUID, rating float64, reviewsCount int) error

	ListMissingEmbeddings(ctx context.Context) ([]db_models.Venue, error)
	SaveEmbedding(ctx context.Context, id uuid.UUID, embedding pgvector.Vector, text string) error
	ListEmbedded(ctx context.Context) ([]VenueVector, error)
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) Create(ctx context.Context, venue *db_models.Venue) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(venue).Error; err != nil {
		return uuid.Nil, err
	}
	return venue.ID, nil
}

func (r *venueRepository) Update(ctx context.Context, venue *db_models.Venue) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(venue)
		if result.Error != nil {
			return fmt.Errorf("failed to update venue: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *venueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Venue{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// ────────────────────────────────────────────────────────────────
// Read helpers follow the same pattern: default value + nil error
// when no rows are found.
// ────────────────────────────────────────────────────────────────

func (r *venueRepository) GetByID(ctx context.Context, id string) (*db_models.Venue, error) {
	var venue db_models.Venue
	err := r.db.WithContext(ctx).First(&venue, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &venue, nil
}

// GetByIDs is the enricher lookup: one batched query, missing ids are
// simply absent from the result.
func (r *venueRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Venue, error) {
	if len(ids) == 0 {
		return []db_models.Venue{}, nil
	}

	var venues []db_models.Venue
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) List(ctx context.Context, page, pageSize int, status string) ([]db_models.Venue, error) {
	var venues []db_models.Venue
	offset := (page - 1) * pageSize

	query := r.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	err := query.
		Order("featured DESC").
		Order("rating DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

// FilterCandidates builds the candidate pool for hybrid search: always-on
// approved/available predicates plus the caller's exact-match filters,
// best-rated first, capped.
func (r *venueRepository) FilterCandidates(ctx context.Context, filter CandidateFilter) ([]db_models.Venue, error) {
	query := r.db.WithContext(ctx).
		Where("status = ?", db_models.VenueStatusApproved).
		Where("availability = ?", true)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.State != "" {
		query = query.Where("state = ?", filter.State)
	}
	if filter.MinCapacity > 0 {
		query = query.Where("standing_capacity >= ?", filter.MinCapacity)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("hourly_price <= ?", filter.MaxPrice)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.MinRating > 0 {
		query = query.Where("rating >= ?", filter.MinRating)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultCandidateLimit
	}

	var venues []db_models.Venue
	err := query.
		Order("rating DESC").
		Limit(limit).
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.Venue{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateRatingStats rewrites the venue's aggregate rating and clears the
// embedding: rating feeds the embedding text, so the vector is stale now.
func (r *venueRepository) UpdateRatingStats(ctx context.Context, id uuid.UUID, rating float64, reviewsCount int) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Venue{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"rating":               rating,
			"reviews_count":        reviewsCount,
			"embedding":            nil,
			"embedding_text":       "",
			"embedding_updated_at": nil,
		}).Error
}

func (r *venueRepository) ListMissingEmbeddings(ctx context.Context) ([]db_models.Venue, error) {
	var venues []db_models.Venue
	err := r.db.WithContext(ctx).
		Where("embedding IS NULL").
		Where("status = ?", db_models.VenueStatusApproved).
		Order("created_at").
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) SaveEmbedding(ctx context.Context, id uuid.UUID, embedding pgvector.Vector, text string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&db_models.Venue{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"embedding":            embedding,
			"embedding_text":       text,
			"embedding_updated_at": now,
		}).Error
}

// ListEmbedded returns every approved venue that has a vector, in storage
// order. Storage order is what makes tie-breaking in the ranker stable.
func (r *venueRepository) ListEmbedded(ctx context.Context) ([]VenueVector, error) {
	var results []VenueVector
	err := r.db.WithContext(ctx).Raw(`
		SELECT id AS venue_id, name, description, city, state, category, embedding
		FROM venues
		WHERE embedding IS NOT NULL
		  AND status = ?
		  AND deleted_at IS NULL
		ORDER BY created_at, id
	`, db_models.VenueStatusApproved).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
