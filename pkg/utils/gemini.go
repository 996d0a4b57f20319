package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiEmbeddingClient implements EmbeddingClientInterface using Google's
// embedding-001 model (768 dimensions).
type GeminiEmbeddingClient struct {
	client *genai.Client
	model  string
}

func NewGeminiEmbeddingClient(ctx context.Context, apiKey, model string) (*GeminiEmbeddingClient, error) {
	if model == "" {
		model = "embedding-001"
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiEmbeddingClient{client: client, model: model}, nil
}

func (c *GeminiEmbeddingClient) GetEmbedding(ctx context.Context, text string) ([]float32, error) {
	em := c.client.EmbeddingModel(c.model)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("gemini embedding: %w", err)
	}
	if res == nil || res.Embedding == nil || len(res.Embedding.Values) == 0 {
		// Recoverable: the caller proceeds without grounding.
		return nil, nil
	}
	return res.Embedding.Values, nil
}

func (c *GeminiEmbeddingClient) Close() error {
	return c.client.Close()
}

// GenerationClientInterface is the black-box "generate text from prompt"
// service behind itinerary creation.
type GenerationClientInterface interface {
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
}

type GeminiGenerationClient struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerationClient(ctx context.Context, apiKey, model string) (*GeminiGenerationClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiGenerationClient{client: client, model: model}, nil
}

func (c *GeminiGenerationClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.7)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no content")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(string(t))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("gemini returned no content")
	}
	return b.String(), nil
}

func (c *GeminiGenerationClient) Close() error {
	return c.client.Close()
}
