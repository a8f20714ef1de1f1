package response_models

type SearchResult struct {
	VenueID          string  `json:"venue_id"`
	VenueName        string  `json:"venue_name"`
	VenueDescription string  `json:"venue_description"`
	City             string  `json:"city"`
	State            string  `json:"state"`
	Category         string  `json:"category"`
	SimilarityScore  float32 `json:"similarity_score"`
	ReviewMatches    int     `json:"review_matches"`

	VenueDetails *Venue `json:"venue_details,omitempty"`
}

type SemanticSearchResponse struct {
	Results       []SearchResult `json:"results"`
	OriginalQuery string         `json:"original_query,omitempty"`
	TotalResults  int            `json:"total_results"`
	SearchTimeMs  int64          `json:"search_time_ms"`
}

type HybridSearchResponse struct {
	Success           bool         `json:"success"`
	Venues            []AgentVenue `json:"venues"`
	TotalResults      int          `json:"total_results"`
	FilteredCount     int          `json:"filtered_count"`
	SemanticQuery     string       `json:"semantic_query,omitempty"`
	SQLFiltersApplied []string     `json:"sql_filters_applied"`
	SearchTimeMs      int64        `json:"search_time_ms"`
}
