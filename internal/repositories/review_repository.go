package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"venuehub/internal/models/db_models"
)

// ReviewVector pairs a review's vector with the venue it belongs to, which
// is all the ranker needs to fold review matches into venue scores.
type ReviewVector struct {
	ReviewID  uuid.UUID
	VenueID   uuid.UUID
	Embedding pgvector.Vector
}

type ReviewRepository interface {
	Create(ctx context.Context, review *db_models.Review) (uuid.UUID, error)
	ListByVenue(ctx context.Context, venueID uuid.UUID, page, pageSize int) ([]db_models.Review, error)
	RatingStats(ctx context.Context, venueID uuid.UUID) (avg float64, count int, err error)

	ListMissingEmbeddings(ctx context.Context) ([]db_models.Review, error)
	SaveEmbedding(ctx context.Context, id uuid.UUID, embedding pgvector.Vector) error
	ListEmbedded(ctx context.Context) ([]ReviewVector, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *db_models.Review) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return uuid.Nil, err
	}
	return review.ID, nil
}

func (r *reviewRepository) ListByVenue(ctx context.Context, venueID uuid.UUID, page, pageSize int) ([]db_models.Review, error) {
	var reviews []db_models.Review
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) RatingStats(ctx context.Context, venueID uuid.UUID) (float64, int, error) {
	var stats struct {
		Avg   float64
		Count int
	}
	err := r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("venue_id = ?", venueID).
		Scan(&stats).Error
	if err != nil {
		return 0, 0, err
	}
	return stats.Avg, stats.Count, nil
}

func (r *reviewRepository) ListMissingEmbeddings(ctx context.Context) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).
		Where("embedding IS NULL").
		Order("created_at").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) SaveEmbedding(ctx context.Context, id uuid.UUID, embedding pgvector.Vector) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"embedding":            embedding,
			"embedding_updated_at": now,
		}).Error
}

func (r *reviewRepository) ListEmbedded(ctx context.Context) ([]ReviewVector, error) {
	var results []ReviewVector
	err := r.db.WithContext(ctx).Raw(`
		SELECT id AS review_id, venue_id, embedding
		FROM reviews
		WHERE embedding IS NOT NULL
		  AND deleted_at IS NULL
		ORDER BY created_at, id
	`).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
