package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type ChatClientInterface interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// OpenAIChatClient backs the venue concierge. Any OpenAI-compatible
// endpoint works via baseURL.
type OpenAIChatClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIChatClient(apiKey, model, baseURL string) ChatClientInterface {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIChatClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (c *OpenAIChatClient) Complete(ctx context.Context, system, user string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: no response choices")
	}
	return resp.Choices[0].Message.Content, nil
}
