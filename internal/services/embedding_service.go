package services

import (
	"context"
	"log"
	"strings"

	"venuehub/internal/models/db_models"
	"venuehub/pkg/utils"
)

// EmbeddingServiceInterface turns venue and review records into embedding
// vectors. Generation is pure: nothing here touches storage.
//
// A nil vector means "no embedding available" (provider down, malformed
// response, empty text). Callers skip or defer the record; they never see
// an error for provider failures.
type EmbeddingServiceInterface interface {
	BuildVenueText(venue *db_models.Venue) string
	BuildReviewText(review *db_models.Review) string

	EmbedDocument(ctx context.Context, text string) []float32
	EmbedQuery(ctx context.Context, text string) []float32

	Dimensions() int
}

type EmbeddingService struct {
	client utils.EmbeddingClientInterface
}

func NewEmbeddingService(client utils.EmbeddingClientInterface) EmbeddingServiceInterface {
	return &EmbeddingService{client: client}
}

// BuildVenueText concatenates the venue's descriptive fields with the
// derived keyword tiers. The exact string is persisted next to the vector
// so a reindex can tell whether the source text changed.
func (s *EmbeddingService) BuildVenueText(venue *db_models.Venue) string {
	parts := []string{
		venue.Name,
		venue.Description,
		venue.Category,
		venue.City,
		venue.State,
		CategoryKeywords(venue.Category),
		CapacityKeywords(venue.SeatedCapacity),
		PriceKeywords(venue.HourlyPrice),
		RatingKeywords(venue.Rating),
		FeaturedKeywords(venue.Featured),
		strings.Join(venue.Amenities, " "),
	}
	return joinNonEmpty(parts)
}

func (s *EmbeddingService) BuildReviewText(review *db_models.Review) string {
	parts := []string{
		review.Comment,
		RatingKeywords(float64(review.Rating)),
	}
	return joinNonEmpty(parts)
}

func (s *EmbeddingService) EmbedDocument(ctx context.Context, text string) []float32 {
	return s.embed(ctx, text, utils.EmbeddingModeDocument)
}

func (s *EmbeddingService) EmbedQuery(ctx context.Context, text string) []float32 {
	return s.embed(ctx, text, utils.EmbeddingModeQuery)
}

func (s *EmbeddingService) embed(ctx context.Context, text string, mode utils.EmbeddingMode) []float32 {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	vector, err := s.client.Embed(ctx, text, mode)
	if err != nil {
		log.Printf("Error generating %s embedding: %v", mode, err)
		return nil
	}
	if len(vector) != s.client.Dimensions() {
		log.Printf("Embedding provider returned %d dimensions, expected %d", len(vector), s.client.Dimensions())
		return nil
	}
	return vector
}

func (s *EmbeddingService) Dimensions() int {
	return s.client.Dimensions()
}

func joinNonEmpty(parts []string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
