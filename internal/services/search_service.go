package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"venuehub/internal/models/response_models"
	"venuehub/internal/repositories"
	"venuehub/pkg/utils"
)

const (
	// MaxMatchCount caps results server-side no matter what the caller asks
	// for.
	MaxMatchCount = 50

	DefaultMatchCount = 10

	// DefaultMatchThreshold is the one default used everywhere. Callers
	// wanting stricter matches pass their own.
	DefaultMatchThreshold float32 = 0.4
)

type SearchParams struct {
	QueryEmbedding []float32
	MatchThreshold float32
	MatchCount     int
	IncludeReviews bool

	// RestrictTo narrows the search to a candidate pool (hybrid search).
	// Nil means every embedded venue is eligible.
	RestrictTo []uuid.UUID
}

// VenueMatch is a ranked hit: the venue's best similarity across its own
// vector and its reviews', plus how many reviews individually cleared the
// threshold.
type VenueMatch struct {
	VenueID     uuid.UUID
	Name        string
	Description string
	City        string
	State       string
	Category    string

	Similarity    float32
	ReviewMatches int
}

type SearchServiceInterface interface {
	Search(ctx context.Context, params SearchParams) ([]VenueMatch, error)
	Enrich(ctx context.Context, matches []VenueMatch) ([]response_models.SearchResult, error)
}

type SearchService struct {
	venueRepo  repositories.VenueRepository
	reviewRepo repositories.ReviewRepository
	dimensions int
}

func NewSearchService(
	venueRepo repositories.VenueRepository,
	reviewRepo repositories.ReviewRepository,
	dimensions int,
) SearchServiceInterface {
	return &SearchService{
		venueRepo:  venueRepo,
		reviewRepo: reviewRepo,
		dimensions: dimensions,
	}
}

// Search ranks stored venue vectors against the query vector by cosine
// similarity. Results are sorted descending; ties keep storage order.
func (s *SearchService) Search(ctx context.Context, params SearchParams) ([]VenueMatch, error) {
	if len(params.QueryEmbedding) != s.dimensions {
		return nil, fmt.Errorf("%w: expected %d, got %d",
			utils.ErrInvalidEmbedding, s.dimensions, len(params.QueryEmbedding))
	}
	if params.MatchThreshold < 0 || params.MatchThreshold > 1 {
		return nil, fmt.Errorf("%w: match_threshold must be in [0,1]", utils.ErrInvalidInput)
	}

	matchCount := params.MatchCount
	if matchCount <= 0 {
		matchCount = DefaultMatchCount
	}
	if matchCount > MaxMatchCount {
		matchCount = MaxMatchCount
	}

	venueVectors, err := s.venueRepo.ListEmbedded(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrSearchUnavailable, err)
	}

	var reviewsByVenue map[uuid.UUID][]repositories.ReviewVector
	if params.IncludeReviews {
		reviewVectors, err := s.reviewRepo.ListEmbedded(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrSearchUnavailable, err)
		}
		reviewsByVenue = make(map[uuid.UUID][]repositories.ReviewVector, len(reviewVectors))
		for _, rv := range reviewVectors {
			reviewsByVenue[rv.VenueID] = append(reviewsByVenue[rv.VenueID], rv)
		}
	}

	var restrict map[uuid.UUID]bool
	if params.RestrictTo != nil {
		restrict = make(map[uuid.UUID]bool, len(params.RestrictTo))
		for _, id := range params.RestrictTo {
			restrict[id] = true
		}
	}

	matches := rankVenues(params.QueryEmbedding, venueVectors, reviewsByVenue, restrict, params.MatchThreshold)

	if len(matches) > matchCount {
		matches = matches[:matchCount]
	}
	return matches, nil
}

// rankVenues is the pure ranking core: per-venue max similarity across the
// venue vector and its review vectors, threshold cut, stable descending
// sort.
func rankVenues(
	query []float32,
	venues []repositories.VenueVector,
	reviewsByVenue map[uuid.UUID][]repositories.ReviewVector,
	restrict map[uuid.UUID]bool,
	threshold float32,
) []VenueMatch {
	matches := make([]VenueMatch, 0, len(venues))

	for _, vv := range venues {
		if restrict != nil && !restrict[vv.VenueID] {
			continue
		}

		maxSimilarity := utils.CosineSimilarity(query, vv.Embedding.Slice())
		reviewMatches := 0

		for _, rv := range reviewsByVenue[vv.VenueID] {
			similarity := utils.CosineSimilarity(query, rv.Embedding.Slice())
			if similarity >= threshold {
				reviewMatches++
			}
			if similarity > maxSimilarity {
				maxSimilarity = similarity
			}
		}

		if maxSimilarity < threshold {
			continue
		}

		matches = append(matches, VenueMatch{
			VenueID:       vv.VenueID,
			Name:          vv.Name,
			Description:   vv.Description,
			City:          vv.City,
			State:         vv.State,
			Category:      vv.Category,
			Similarity:    maxSimilarity,
			ReviewMatches: reviewMatches,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	return matches
}

// Enrich joins matches back to full venue records in one batched lookup,
// preserving the search order and scores. Venues deleted since indexing
// are dropped silently.
func (s *SearchService) Enrich(ctx context.Context, matches []VenueMatch) ([]response_models.SearchResult, error) {
	ids := make([]uuid.UUID, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.VenueID)
	}

	venues, err := s.venueRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	byID := make(map[uuid.UUID]int, len(venues))
	for i := range venues {
		byID[venues[i].ID] = i
	}

	results := make([]response_models.SearchResult, 0, len(matches))
	for _, m := range matches {
		i, ok := byID[m.VenueID]
		if !ok {
			continue
		}
		details := ToVenueResponse(&venues[i])
		results = append(results, response_models.SearchResult{
			VenueID:          m.VenueID.String(),
			VenueName:        m.Name,
			VenueDescription: m.Description,
			City:             m.City,
			State:            m.State,
			Category:         m.Category,
			SimilarityScore:  m.Similarity,
			ReviewMatches:    m.ReviewMatches,
			VenueDetails:     &details,
		})
	}
	return results, nil
}
