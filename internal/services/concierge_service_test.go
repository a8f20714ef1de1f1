package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuehub/internal/models/request_models"
	"venuehub/internal/models/response_models"
	"venuehub/pkg/utils"
)

type fakeHybridService struct {
	resp *response_models.HybridSearchResponse
	err  error

	requests []request_models.HybridSearchRequest
}

func (f *fakeHybridService) Search(ctx context.Context, req request_models.HybridSearchRequest) (*response_models.HybridSearchResponse, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeChatClient struct {
	reply string
	err   error

	prompts []string
}

func (f *fakeChatClient) Complete(ctx context.Context, system, user string) (string, error) {
	f.prompts = append(f.prompts, user)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func agentVenues(names ...string) []response_models.AgentVenue {
	venues := make([]response_models.AgentVenue, 0, len(names))
	for _, name := range names {
		venues = append(venues, response_models.AgentVenue{Name: name})
	}
	return venues
}

func TestConciergeChat_GroundsReplyInSearchResults(t *testing.T) {
	hybrid := &fakeHybridService{
		resp: &response_models.HybridSearchResponse{Venues: agentVenues("The Loft", "Garden Pavilion")},
	}
	chat := &fakeChatClient{reply: "The Loft looks perfect for you."}
	svc := NewConciergeService(hybrid, chat)

	resp, err := svc.Chat(context.Background(), request_models.ChatRequest{
		Message: "rooftop wedding for 80 guests",
	})
	require.NoError(t, err)

	assert.Equal(t, "The Loft looks perfect for you.", resp.Reply)
	assert.Len(t, resp.Venues, 2)

	// The retrieval step gets the raw message as the semantic query.
	require.Len(t, hybrid.requests, 1)
	assert.Equal(t, "rooftop wedding for 80 guests", hybrid.requests[0].SemanticQuery)

	// The prompt carries the venues so the model can cite them.
	require.Len(t, chat.prompts, 1)
	assert.Contains(t, chat.prompts[0], "Garden Pavilion")
}

func TestConciergeChat_LLMFailureDegradesToCannedReply(t *testing.T) {
	hybrid := &fakeHybridService{
		resp: &response_models.HybridSearchResponse{Venues: agentVenues("The Loft")},
	}
	chat := &fakeChatClient{err: errors.New("rate limited")}
	svc := NewConciergeService(hybrid, chat)

	resp, err := svc.Chat(context.Background(), request_models.ChatRequest{Message: "something industrial"})
	require.NoError(t, err)

	assert.Contains(t, resp.Reply, "The Loft")
	assert.Len(t, resp.Venues, 1)
}

func TestConciergeChat_NoMatches(t *testing.T) {
	hybrid := &fakeHybridService{resp: &response_models.HybridSearchResponse{}}
	chat := &fakeChatClient{err: errors.New("rate limited")}
	svc := NewConciergeService(hybrid, chat)

	resp, err := svc.Chat(context.Background(), request_models.ChatRequest{Message: "a castle on the moon"})
	require.NoError(t, err)

	assert.Contains(t, resp.Reply, "broaden")
	assert.Empty(t, resp.Venues)
}

func TestConciergeChat_RetrievalFailurePropagates(t *testing.T) {
	hybrid := &fakeHybridService{err: utils.ErrDatabaseError}
	svc := NewConciergeService(hybrid, &fakeChatClient{reply: "unused"})

	_, err := svc.Chat(context.Background(), request_models.ChatRequest{Message: "anything"})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestConciergeChat_BlankMessageRejected(t *testing.T) {
	svc := NewConciergeService(&fakeHybridService{}, &fakeChatClient{})

	_, err := svc.Chat(context.Background(), request_models.ChatRequest{Message: "   "})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
