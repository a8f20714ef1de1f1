package controllers

import (
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"venuehub/internal/models/request_models"
	"venuehub/internal/models/response_models"
	"venuehub/internal/services"
	"venuehub/pkg/utils"
)

type SearchController struct {
	searchService    services.SearchServiceInterface
	hybridService    services.HybridSearchServiceInterface
	embeddingService services.EmbeddingServiceInterface
}

func NewSearchController(
	searchService services.SearchServiceInterface,
	hybridService services.HybridSearchServiceInterface,
	embeddingService services.EmbeddingServiceInterface,
) *SearchController {
	return &SearchController{
		searchService:    searchService,
		hybridService:    hybridService,
		embeddingService: embeddingService,
	}
}

func (sc *SearchController) SemanticSearch(c *gin.Context) {
	var req request_models.SemanticSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	query := strings.TrimSpace(req.Query)
	if len(req.QueryEmbedding) == 0 && query == "" {
		utils.RespondError(c, http.StatusBadRequest, "Either query or query_embedding is required")
		return
	}

	start := time.Now()

	queryEmbedding := req.QueryEmbedding
	if len(queryEmbedding) == 0 {
		queryEmbedding = sc.embeddingService.EmbedQuery(c.Request.Context(), query)
		if queryEmbedding == nil {
			utils.HandleServiceError(c, utils.ErrEmbeddingUnavailable)
			return
		}
	}

	threshold := services.DefaultMatchThreshold
	if req.MatchThreshold != nil {
		threshold = *req.MatchThreshold
	}

	includeReviews := true
	if req.IncludeReviews != nil {
		includeReviews = *req.IncludeReviews
	}

	matches, err := sc.searchService.Search(c.Request.Context(), services.SearchParams{
		QueryEmbedding: queryEmbedding,
		MatchThreshold: threshold,
		MatchCount:     req.MatchCount,
		IncludeReviews: includeReviews,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var results []response_models.SearchResult
	if req.IncludeDetails != nil && *req.IncludeDetails {
		results, err = sc.searchService.Enrich(c.Request.Context(), matches)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
	} else {
		results = toSearchResults(matches)
	}

	for i := range results {
		results[i].SimilarityScore = roundScore(results[i].SimilarityScore)
	}

	utils.RespondSuccess(c, response_models.SemanticSearchResponse{
		Results:       results,
		OriginalQuery: query,
		TotalResults:  len(results),
		SearchTimeMs:  time.Since(start).Milliseconds(),
	}, "Search completed successfully")
}

func (sc *SearchController) HybridSearch(c *gin.Context) {
	var req request_models.HybridSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	start := time.Now()

	resp, err := sc.hybridService.Search(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	for i := range resp.Venues {
		if resp.Venues[i].SimilarityScore != nil {
			rounded := roundScore(*resp.Venues[i].SimilarityScore)
			resp.Venues[i].SimilarityScore = &rounded
		}
	}
	resp.SearchTimeMs = time.Since(start).Milliseconds()

	utils.RespondSuccess(c, resp, "Search completed successfully")
}

func toSearchResults(matches []services.VenueMatch) []response_models.SearchResult {
	results := make([]response_models.SearchResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, response_models.SearchResult{
			VenueID:          m.VenueID.String(),
			VenueName:        m.Name,
			VenueDescription: m.Description,
			City:             m.City,
			State:            m.State,
			Category:         m.Category,
			SimilarityScore:  m.Similarity,
			ReviewMatches:    m.ReviewMatches,
		})
	}
	return results
}

// Scores go out with two decimals, enough precision to compare results.
func roundScore(score float32) float32 {
	return float32(math.Round(float64(score)*100) / 100)
}
