package services

import (
	"context"
	"log"
	"time"

	"github.com/pgvector/pgvector-go"

	"venuehub/internal/repositories"
	"venuehub/pkg/utils"
)

// DefaultBackfillDelay spaces out embedding requests. This is courtesy to
// the provider's rate limits, not a correctness requirement.
const DefaultBackfillDelay = 150 * time.Millisecond

// BackfillReport counts the outcome of one batch run. A bad row is counted
// and skipped, it never aborts the job.
type BackfillReport struct {
	Success int `json:"success"`
	Errors  int `json:"errors"`
	Total   int `json:"total"`
}

type BackfillServiceInterface interface {
	BackfillVenues(ctx context.Context) (BackfillReport, error)
	BackfillReviews(ctx context.Context) (BackfillReport, error)
}

// BackfillService fills in embeddings for rows that don't have one yet.
// Re-running it is safe: only null-embedding rows are ever touched, so a
// second pass over unchanged data writes nothing.
type BackfillService struct {
	venueRepo        repositories.VenueRepository
	reviewRepo       repositories.ReviewRepository
	embeddingService EmbeddingServiceInterface
	delay            time.Duration
}

func NewBackfillService(
	venueRepo repositories.VenueRepository,
	reviewRepo repositories.ReviewRepository,
	embeddingService EmbeddingServiceInterface,
	delay time.Duration,
) BackfillServiceInterface {
	if delay <= 0 {
		delay = DefaultBackfillDelay
	}
	return &BackfillService{
		venueRepo:        venueRepo,
		reviewRepo:       reviewRepo,
		embeddingService: embeddingService,
		delay:            delay,
	}
}

func (s *BackfillService) BackfillVenues(ctx context.Context) (BackfillReport, error) {
	venues, err := s.venueRepo.ListMissingEmbeddings(ctx)
	if err != nil {
		log.Printf("Error fetching venues without embeddings: %v", err)
		return BackfillReport{}, utils.ErrDatabaseError
	}

	report := BackfillReport{Total: len(venues)}
	for i := range venues {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		venue := &venues[i]

		text := s.embeddingService.BuildVenueText(venue)
		embedding := s.embeddingService.EmbedDocument(ctx, text)
		if embedding == nil {
			log.Printf("Could not generate embedding for venue %s, skipping", venue.Name)
			report.Errors++
			s.wait(ctx)
			continue
		}

		if err := s.venueRepo.SaveEmbedding(ctx, venue.ID, pgvector.NewVector(embedding), text); err != nil {
			log.Printf("Error saving embedding for venue %s: %v", venue.Name, err)
			report.Errors++
		} else {
			log.Printf("Generated embedding for venue: %s", venue.Name)
			report.Success++
		}

		s.wait(ctx)
	}

	return report, nil
}

func (s *BackfillService) BackfillReviews(ctx context.Context) (BackfillReport, error) {
	reviews, err := s.reviewRepo.ListMissingEmbeddings(ctx)
	if err != nil {
		log.Printf("Error fetching reviews without embeddings: %v", err)
		return BackfillReport{}, utils.ErrDatabaseError
	}

	report := BackfillReport{Total: len(reviews)}
	for i := range reviews {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		review := &reviews[i]

		text := s.embeddingService.BuildReviewText(review)
		embedding := s.embeddingService.EmbedDocument(ctx, text)
		if embedding == nil {
			log.Printf("Could not generate embedding for review %s, skipping", review.ID)
			report.Errors++
			s.wait(ctx)
			continue
		}

		if err := s.reviewRepo.SaveEmbedding(ctx, review.ID, pgvector.NewVector(embedding)); err != nil {
			log.Printf("Error saving embedding for review %s: %v", review.ID, err)
			report.Errors++
		} else {
			report.Success++
		}

		s.wait(ctx)
	}

	return report, nil
}

func (s *BackfillService) wait(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-time.After(s.delay):
	}
}
