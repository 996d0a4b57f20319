package itinerary_fx

import (
	"go.uber.org/fx"

	"github.com/Desire4travels/Chatbot/internal/api/controllers"
	"github.com/Desire4travels/Chatbot/internal/services"
	"github.com/Desire4travels/Chatbot/pkg/utils"
)

var Module = fx.Provide(
	provideItineraryService,
	provideItineraryController)

func provideItineraryService(
	retrievalService services.RetrievalServiceInterface,
	generator utils.GenerationClientInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(retrievalService, generator)
}

func provideItineraryController(
	itineraryService services.ItineraryServiceInterface,
) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}
