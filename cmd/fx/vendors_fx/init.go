package vendors_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Desire4travels/Chatbot/internal/api/controllers"
	"github.com/Desire4travels/Chatbot/internal/repositories"
	"github.com/Desire4travels/Chatbot/internal/services"
	"github.com/Desire4travels/Chatbot/pkg/utils"
)

var Module = fx.Provide(
	provideVendorIndexRepo,
	provideRetrievalService,
	provideVendorsController)

func provideVendorIndexRepo(db *gorm.DB) repositories.VendorIndexRepository {
	return repositories.NewVendorIndexRepository(db)
}

func provideRetrievalService(
	aiClient utils.EmbeddingClientInterface,
	vendorRepo repositories.VendorIndexRepository,
) services.RetrievalServiceInterface {
	return services.NewRetrievalService(aiClient, vendorRepo)
}

func provideVendorsController(
	retrievalService services.RetrievalServiceInterface,
	ingestService services.IngestServiceInterface,
) *controllers.VendorsController {
	return controllers.NewVendorsController(retrievalService, ingestService)
}
