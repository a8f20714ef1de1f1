package embeddingfx

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"

	"venuehub/internal/services"
	"venuehub/pkg/utils"
)

var Module = fx.Provide(
	ProvideEmbeddingClient,
	ProvideEmbeddingService)

// ProvideEmbeddingClient builds the Gemini embedding client from
// environment variables.
func ProvideEmbeddingClient() (utils.EmbeddingClientInterface, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	model := getEnvWithDefault("EMBEDDING_MODEL", "gemini-embedding-001")
	dimensions := 1024
	if raw := os.Getenv("EMBEDDING_DIMENSIONS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid EMBEDDING_DIMENSIONS: %q", raw)
		}
		dimensions = parsed
	}

	log.Printf("Initializing embedding client with model %s (%d dimensions)", model, dimensions)

	client, err := utils.NewGeminiEmbeddingClient(apiKey, model, dimensions)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return client, nil
}

func ProvideEmbeddingService(client utils.EmbeddingClientInterface) services.EmbeddingServiceInterface {
	return services.NewEmbeddingService(client)
}

func getEnvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
