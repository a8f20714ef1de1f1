package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"venuehub/internal/models/db_models"
	"venuehub/internal/models/request_models"
	"venuehub/internal/models/response_models"
	"venuehub/internal/repositories"
	"venuehub/pkg/memcache"
	"venuehub/pkg/utils"
)

const queryEmbeddingTTL = 10 * time.Minute

type HybridSearchServiceInterface interface {
	Search(ctx context.Context, req request_models.HybridSearchRequest) (*response_models.HybridSearchResponse, error)
}

// HybridSearchService runs the SQL-filter-then-semantic-rerank pipeline:
// exact-match predicates build a candidate pool, an optional semantic query
// reranks inside that pool. A failing semantic step degrades to the
// SQL-only pool, it never fails the request.
type HybridSearchService struct {
	venueRepo        repositories.VenueRepository
	embeddingService EmbeddingServiceInterface
	searchService    SearchServiceInterface
	queryCache       memcache.QueryEmbeddingCache
}

func NewHybridSearchService(
	venueRepo repositories.VenueRepository,
	embeddingService EmbeddingServiceInterface,
	searchService SearchServiceInterface,
	queryCache memcache.QueryEmbeddingCache,
) HybridSearchServiceInterface {
	return &HybridSearchService{
		venueRepo:        venueRepo,
		embeddingService: embeddingService,
		searchService:    searchService,
		queryCache:       queryCache,
	}
}

func (s *HybridSearchService) Search(ctx context.Context, req request_models.HybridSearchRequest) (*response_models.HybridSearchResponse, error) {
	matchThreshold := DefaultMatchThreshold
	if req.MatchThreshold != nil {
		matchThreshold = *req.MatchThreshold
	}
	if matchThreshold < 0 || matchThreshold > 1 {
		return nil, utils.ErrInvalidInput
	}

	matchCount := req.MatchCount
	if matchCount <= 0 {
		matchCount = DefaultMatchCount
	}
	if matchCount > MaxMatchCount {
		matchCount = MaxMatchCount
	}

	includeReviews := true
	if req.IncludeReviews != nil {
		includeReviews = *req.IncludeReviews
	}

	// Step 1: candidate pool. Always-on predicates live in the repository.
	pool, err := s.venueRepo.FilterCandidates(ctx, toCandidateFilter(req.SQLFilters))
	if err != nil {
		log.Printf("Error filtering candidate venues: %v", err)
		return nil, utils.ErrDatabaseError
	}

	response := &response_models.HybridSearchResponse{
		Success:           true,
		SemanticQuery:     strings.TrimSpace(req.SemanticQuery),
		SQLFiltersApplied: req.SQLFilters.Describe(),
		FilteredCount:     len(pool),
	}

	// Step 2: semantic rerank inside the pool, if a query was given.
	if response.SemanticQuery != "" && len(pool) > 0 {
		venues, ok := s.semanticRerank(ctx, response.SemanticQuery, pool, matchThreshold, matchCount, includeReviews)
		if ok {
			response.Venues = venues
			response.TotalResults = len(venues)
			return response, nil
		}
		log.Printf("Semantic step failed, falling back to SQL-filtered results")
	}

	// Step 3: no semantic query (or degraded): top-N of the rating-sorted
	// pool, no similarity scores.
	if len(pool) > matchCount {
		pool = pool[:matchCount]
	}
	venues := make([]response_models.AgentVenue, 0, len(pool))
	for i := range pool {
		venues = append(venues, ToAgentVenue(&pool[i], nil))
	}
	response.Venues = venues
	response.TotalResults = len(venues)
	return response, nil
}

// semanticRerank returns ok=false on any failure so the caller can degrade
// to SQL-only results.
func (s *HybridSearchService) semanticRerank(
	ctx context.Context,
	query string,
	pool []db_models.Venue,
	matchThreshold float32,
	matchCount int,
	includeReviews bool,
) ([]response_models.AgentVenue, bool) {
	queryEmbedding := s.queryEmbedding(ctx, query)
	if queryEmbedding == nil {
		return nil, false
	}

	poolIDs := make([]uuid.UUID, 0, len(pool))
	poolByID := make(map[uuid.UUID]int, len(pool))
	for i := range pool {
		poolIDs = append(poolIDs, pool[i].ID)
		poolByID[pool[i].ID] = i
	}

	// Over-fetch 2x: pool intersection can drop matches that came from
	// outside the candidate set.
	matches, err := s.searchService.Search(ctx, SearchParams{
		QueryEmbedding: queryEmbedding,
		MatchThreshold: matchThreshold,
		MatchCount:     matchCount * 2,
		IncludeReviews: includeReviews,
		RestrictTo:     poolIDs,
	})
	if err != nil {
		log.Printf("Error in semantic rerank: %v", err)
		return nil, false
	}

	venues := make([]response_models.AgentVenue, 0, matchCount)
	for _, m := range matches {
		if len(venues) >= matchCount {
			break
		}
		i, ok := poolByID[m.VenueID]
		if !ok {
			continue
		}
		score := m.Similarity
		venues = append(venues, ToAgentVenue(&pool[i], &score))
	}
	return venues, true
}

func (s *HybridSearchService) queryEmbedding(ctx context.Context, query string) []float32 {
	if s.queryCache != nil {
		if vector, ok := s.queryCache.Get(query); ok {
			return vector
		}
	}

	vector := s.embeddingService.EmbedQuery(ctx, query)
	if vector != nil && s.queryCache != nil {
		s.queryCache.Set(query, vector, queryEmbeddingTTL)
	}
	return vector
}

func toCandidateFilter(f *request_models.SQLFilters) repositories.CandidateFilter {
	if f == nil {
		return repositories.CandidateFilter{}
	}
	return repositories.CandidateFilter{
		Category:    f.Category,
		City:        f.City,
		State:       f.State,
		MinCapacity: f.MinCapacity,
		MaxPrice:    int(f.MaxPrice * 100),
		Featured:    f.Featured,
		MinRating:   f.MinRating,
	}
}
