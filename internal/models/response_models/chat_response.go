package response_models

type ChatResponse struct {
	Reply  string       `json:"reply"`
	Venues []AgentVenue `json:"venues"`
}
