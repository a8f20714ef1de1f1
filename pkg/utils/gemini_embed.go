package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// EmbeddingMode selects the projection the provider embeds a text into.
// Document and query vectors live in different regions of the space and are
// not interchangeable: index records as documents, embed search input as a
// query.
type EmbeddingMode string

const (
	EmbeddingModeDocument EmbeddingMode = "document"
	EmbeddingModeQuery    EmbeddingMode = "query"
)

type EmbeddingClientInterface interface {
	Embed(ctx context.Context, text string, mode EmbeddingMode) ([]float32, error)
	Dimensions() int
}

// GeminiEmbeddingClient implements EmbeddingClientInterface using Google's
// embedding models.
type GeminiEmbeddingClient struct {
	client     *genai.Client
	model      string
	dimensions int
}

func NewGeminiEmbeddingClient(apiKey, model string, dimensions int) (EmbeddingClientInterface, error) {
	if model == "" {
		model = "gemini-embedding-001"
	}
	if dimensions <= 0 {
		dimensions = 1024
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbeddingClient{
		client:     client,
		model:      model,
		dimensions: dimensions,
	}, nil
}

func (c *GeminiEmbeddingClient) Embed(ctx context.Context, text string, mode EmbeddingMode) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("embed: empty text")
	}

	em := c.client.EmbeddingModel(c.model)
	switch mode {
	case EmbeddingModeQuery:
		em.TaskType = genai.TaskTypeRetrievalQuery
	default:
		em.TaskType = genai.TaskTypeRetrievalDocument
	}

	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}
	if res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return nil, fmt.Errorf("embed content: empty embedding response")
	}

	return res.Embedding.Values, nil
}

func (c *GeminiEmbeddingClient) Dimensions() int {
	return c.dimensions
}
