package request_models

import "fmt"

type SemanticSearchRequest struct {
	// Either a raw query (embedded server-side in query mode) or a
	// pre-computed query embedding.
	Query          string    `json:"query"`
	QueryEmbedding []float32 `json:"query_embedding"`

	MatchThreshold *float32 `json:"match_threshold"`
	MatchCount     int      `json:"match_count"`
	IncludeReviews *bool    `json:"include_reviews"`
	IncludeDetails *bool    `json:"include_details"`
}

// SQLFilters are the exact-match predicates of hybrid search. MaxPrice is
// in dollars on the wire, venues store cents.
type SQLFilters struct {
	Category    string  `json:"category"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	MinCapacity int     `json:"min_capacity"`
	MaxPrice    float64 `json:"max_price"`
	Featured    *bool   `json:"featured"`
	MinRating   float64 `json:"min_rating"`
}

// Describe lists the predicates in SQL-ish form for the response's
// sql_filters_applied field.
func (f *SQLFilters) Describe() []string {
	applied := []string{"status = approved", "availability = true"}
	if f == nil {
		return applied
	}
	if f.Category != "" {
		applied = append(applied, fmt.Sprintf("category = '%s'", f.Category))
	}
	if f.City != "" {
		applied = append(applied, fmt.Sprintf("city = '%s'", f.City))
	}
	if f.State != "" {
		applied = append(applied, fmt.Sprintf("state = '%s'", f.State))
	}
	if f.MinCapacity > 0 {
		applied = append(applied, fmt.Sprintf("standing_capacity >= %d", f.MinCapacity))
	}
	if f.MaxPrice > 0 {
		applied = append(applied, fmt.Sprintf("hourly_price <= %d", int(f.MaxPrice*100)))
	}
	if f.Featured != nil {
		applied = append(applied, fmt.Sprintf("featured = %t", *f.Featured))
	}
	if f.MinRating > 0 {
		applied = append(applied, fmt.Sprintf("rating >= %g", f.MinRating))
	}
	return applied
}

type HybridSearchRequest struct {
	SemanticQuery  string      `json:"semantic_query"`
	SQLFilters     *SQLFilters `json:"sql_filters"`
	MatchThreshold *float32    `json:"match_threshold"`
	MatchCount     int         `json:"match_count"`
	IncludeReviews *bool       `json:"include_reviews"`
}
