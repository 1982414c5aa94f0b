package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIPlanClient generates candidate itinerary documents with an OpenAI
// chat model.
type OpenAIPlanClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIPlanClient(apiKey, model string) *OpenAIPlanClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIPlanClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIPlanClient) Name() string { return "openai" }

func (c *OpenAIPlanClient) GeneratePlanJSON(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.1,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a travel planner that replies with a single JSON document and nothing else.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no content generated")
	}

	return resp.Choices[0].Message.Content, nil
}
