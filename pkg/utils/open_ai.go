package utils

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Desire4travels/Chatbot/internal/models/vendors"
)

// EmbeddingClientInterface turns arbitrary text into a fixed-length
// vector. A zero-length result with a nil error means the provider
// answered without a usable embedding; callers treat that as "no
// grounding possible", not as a failure.
type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) ([]float32, error)
}

type OpenAIEmbeddingClient struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

func NewOpenAIEmbeddingClient(apiKey, model string) *OpenAIEmbeddingClient {
	if model == "" {
		model = string(openai.SmallEmbedding3)
	}
	return &OpenAIEmbeddingClient{
		client: openai.NewClient(apiKey),
		model:  openai.EmbeddingModel(model),
	}
}

func (c *OpenAIEmbeddingClient) GetEmbedding(ctx context.Context, text string) ([]float32, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input:      []string{text},
		Model:      c.model,
		Dimensions: vendors.EmbeddingDimensions,
	})
	if err != nil {
		return nil, fmt.Errorf("openai embedding: %w", err)
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, nil
	}
	return resp.Data[0].Embedding, nil
}

// NewEmbeddingClient picks the provider implementation from config.
func NewEmbeddingClient(ctx context.Context, provider, apiKey, model string) (EmbeddingClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIEmbeddingClient(apiKey, model), nil
	case "gemini":
		return NewGeminiEmbeddingClient(ctx, apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
