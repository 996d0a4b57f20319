package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Desire4travels/Chatbot/internal/models/request_models"
	"github.com/Desire4travels/Chatbot/internal/models/response_models"
	"github.com/Desire4travels/Chatbot/internal/models/vendors"
	"github.com/Desire4travels/Chatbot/pkg/utils"
)

const generationTimeout = 60 * time.Second

type ItineraryServiceInterface interface {
	PlanTrip(ctx context.Context, req request_models.ItineraryRequest) (*response_models.ItineraryResponse, error)
}

type ItineraryService struct {
	retrieval RetrievalServiceInterface
	generator utils.GenerationClientInterface
}

func NewItineraryService(retrieval RetrievalServiceInterface, generator utils.GenerationClientInterface) ItineraryServiceInterface {
	return &ItineraryService{
		retrieval: retrieval,
		generator: generator,
	}
}

func (s *ItineraryService) PlanTrip(ctx context.Context, req request_models.ItineraryRequest) (*response_models.ItineraryResponse, error) {
	destinations, err := utils.NormalizeCities(req.DestinationCities...)
	if err != nil {
		return nil, err
	}
	origin := utils.NormalizeCity(req.PickupCity)

	answers, err := json.MarshalIndent(req.Responses, "", "  ")
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	grounding, err := s.retrieval.SearchVendors(ctx, string(answers), origin, destinations)
	if err != nil {
		return nil, err
	}

	contextText := ""
	recommendations := []vendors.Recommendation{}
	if grounding != nil {
		contextText = grounding.Text
		recommendations = grounding.Recommendations
	} else {
		log.Printf("No vendor grounding available, generating itinerary without context")
	}

	prompt := buildPlannerPrompt(string(answers), contextText)

	genCtx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	itinerary, err := s.generator.GenerateItinerary(genCtx, prompt)
	if err != nil {
		log.Printf("Itinerary generation failed: %v", err)
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}

	return &response_models.ItineraryResponse{
		Itinerary:       itinerary,
		Context:         contextText,
		Recommendations: recommendations,
		TotalResults:    len(recommendations),
	}, nil
}

func buildPlannerPrompt(answers string, vendorContext string) string {
	prompt := fmt.Sprintf(`You are a smart travel planner bot for "Desire4Travels".
Based on the customer's answers, generate a day-wise itinerary and list the services (cab, hotel, permits, etc.).

Here are the answers:
%s
`, answers)

	if vendorContext != "" {
		prompt += fmt.Sprintf(`
Recommend only from these verified service providers where relevant:
%s
`, vendorContext)
	}

	prompt += "\nRespond in clean sections: Itinerary + Required Services."
	return prompt
}
