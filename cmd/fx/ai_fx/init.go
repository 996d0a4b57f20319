package ai_fx

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"github.com/Desire4travels/Chatbot/pkg/utils"
)

var Module = fx.Provide(
	ProvideEmbeddingClient,
	ProvideGenerationClient)

// AIConfig holds configuration for the embedding and generation clients.
// Read from the environment once here, at composition time, so the
// clients themselves never touch global state.
type AIConfig struct {
	Provider        string
	APIKey          string
	EmbeddingModel  string
	GenerationModel string
}

func ProvideEmbeddingClient() (utils.EmbeddingClientInterface, error) {
	config := getAIConfig()

	log.Printf("Initializing %s embedding client with model: %s", config.Provider, config.EmbeddingModel)

	client, err := utils.NewEmbeddingClient(context.Background(), config.Provider, config.APIKey, config.EmbeddingModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding client: %w", err)
	}
	return client, nil
}

func ProvideGenerationClient() (utils.GenerationClientInterface, error) {
	config := getAIConfig()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY is required for itinerary generation")
	}

	client, err := utils.NewGeminiGenerationClient(context.Background(), apiKey, config.GenerationModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}
	return client, nil
}

func getAIConfig() AIConfig {
	provider := getEnvWithDefault("EMBEDDING_PROVIDER", "gemini")

	var apiKey, embeddingModel string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		embeddingModel = getEnvWithDefault("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		embeddingModel = getEnvWithDefault("GEMINI_EMBEDDING_MODEL", "embedding-001")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return AIConfig{
		Provider:        provider,
		APIKey:          apiKey,
		EmbeddingModel:  embeddingModel,
		GenerationModel: getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash"),
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
