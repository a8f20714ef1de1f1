package request_models

type ChatRequest struct {
	Message    string      `json:"message" binding:"required"`
	SQLFilters *SQLFilters `json:"sql_filters"`
	MatchCount int         `json:"match_count"`
}
