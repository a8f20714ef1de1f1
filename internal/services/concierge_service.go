package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"venuehub/internal/models/request_models"
	"venuehub/internal/models/response_models"
	"venuehub/pkg/utils"
)

const conciergeSystemPrompt = `You are a venue booking concierge. You are given a
user's request and a JSON list of matching venues from the marketplace.
Recommend the best fits conversationally, mention names, city and price,
and never invent venues that are not in the list. If the list is empty,
say so and suggest the user broaden the search.`

const conciergeMatchCount = 5

type ConciergeServiceInterface interface {
	Chat(ctx context.Context, req request_models.ChatRequest) (*response_models.ChatResponse, error)
}

// ConciergeService backs the agent chat surface: retrieval through hybrid
// search, phrasing through a chat completion. Retrieval errors propagate;
// a dead LLM degrades to a canned reply with the venue list intact.
type ConciergeService struct {
	hybridService HybridSearchServiceInterface
	chatClient    utils.ChatClientInterface
}

func NewConciergeService(hybridService HybridSearchServiceInterface, chatClient utils.ChatClientInterface) ConciergeServiceInterface {
	return &ConciergeService{
		hybridService: hybridService,
		chatClient:    chatClient,
	}
}

func (s *ConciergeService) Chat(ctx context.Context, req request_models.ChatRequest) (*response_models.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, utils.ErrInvalidInput
	}

	matchCount := req.MatchCount
	if matchCount <= 0 || matchCount > conciergeMatchCount {
		matchCount = conciergeMatchCount
	}

	searchResponse, err := s.hybridService.Search(ctx, request_models.HybridSearchRequest{
		SemanticQuery: message,
		SQLFilters:    req.SQLFilters,
		MatchCount:    matchCount,
	})
	if err != nil {
		return nil, err
	}

	reply, err := s.phraseReply(ctx, message, searchResponse.Venues)
	if err != nil {
		log.Printf("Error generating concierge reply: %v", err)
		reply = fallbackReply(searchResponse.Venues)
	}

	return &response_models.ChatResponse{
		Reply:  reply,
		Venues: searchResponse.Venues,
	}, nil
}

func (s *ConciergeService) phraseReply(ctx context.Context, message string, venues []response_models.AgentVenue) (string, error) {
	venuesJSON, err := json.Marshal(venues)
	if err != nil {
		return "", err
	}

	user := "Request: " + message + "\n\nVenues:\n" + string(venuesJSON)
	return s.chatClient.Complete(ctx, conciergeSystemPrompt, user)
}

func fallbackReply(venues []response_models.AgentVenue) string {
	if len(venues) == 0 {
		return "I couldn't find venues matching that request. Try broadening your search."
	}

	names := make([]string, 0, len(venues))
	for _, v := range venues {
		names = append(names, v.Name)
	}
	return "Here are some venues that match your request: " + strings.Join(names, ", ") + "."
}
