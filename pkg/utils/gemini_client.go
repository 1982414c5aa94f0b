package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiPlanClient generates candidate itinerary documents with Gemini.
type GeminiPlanClient struct {
	client *genai.Client
	model  string
}

func NewGeminiPlanClient(apiKey, model string) (*GeminiPlanClient, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiPlanClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiPlanClient) Name() string { return "gemini" }

func (c *GeminiPlanClient) GeneratePlanJSON(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output; brace extraction downstream is then a safety
	// net, not the happy path.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(8192)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content generated")
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (c *GeminiPlanClient) Close() error {
	return c.client.Close()
}
