package ingest_fx

import (
	"go.uber.org/fx"

	"github.com/Desire4travels/Chatbot/internal/repositories"
	"github.com/Desire4travels/Chatbot/internal/services"
	"github.com/Desire4travels/Chatbot/pkg/utils"
)

var Module = fx.Provide(
	provideIngestService)

func provideIngestService(
	aiClient utils.EmbeddingClientInterface,
	vendorRepo repositories.VendorIndexRepository,
) services.IngestServiceInterface {
	return services.NewIngestService(aiClient, vendorRepo)
}
