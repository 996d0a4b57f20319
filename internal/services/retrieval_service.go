package services

import (
	"context"
	"log"
	"time"

	"github.com/pgvector/pgvector-go"
	"golang.org/x/sync/errgroup"

	"github.com/Desire4travels/Chatbot/internal/models/vendors"
	"github.com/Desire4travels/Chatbot/internal/repositories"
	"github.com/Desire4travels/Chatbot/pkg/utils"
)

// Per-category result caps. Buses get a wider net because they match on
// both the pickup and the destination side.
const (
	busTopK       = 25
	cabTopK       = 20
	hotelTopK     = 20
	adventureTopK = 20
)

const defaultQueryTimeout = 3 * time.Second

type RetrievalServiceInterface interface {
	// Retrieve embeds the free text and runs the four category queries.
	// A nil result with a nil error means grounding is unavailable; the
	// caller proceeds without context rather than failing.
	Retrieve(ctx context.Context, freeText string, originCity string, destinationCities []string) (*vendors.RetrievalResult, error)

	// SearchVendors is Retrieve plus context assembly: the formatted text
	// block and the flat ranked recommendation list.
	SearchVendors(ctx context.Context, freeText string, originCity string, destinationCities []string) (*vendors.AggregatedContext, error)
}

type RetrievalService struct {
	aiClient     utils.EmbeddingClientInterface
	vendorRepo   repositories.VendorIndexRepository
	queryTimeout time.Duration
}

func NewRetrievalService(aiClient utils.EmbeddingClientInterface, vendorRepo repositories.VendorIndexRepository) RetrievalServiceInterface {
	return &RetrievalService{
		aiClient:     aiClient,
		vendorRepo:   vendorRepo,
		queryTimeout: defaultQueryTimeout,
	}
}

func (s *RetrievalService) Retrieve(ctx context.Context, freeText string, originCity string, destinationCities []string) (*vendors.RetrievalResult, error) {
	embedCtx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	vector, err := s.aiClient.GetEmbedding(embedCtx, freeText)
	if err != nil {
		log.Printf("Embedding failed, proceeding without grounding: %v", err)
		return nil, nil
	}
	if len(vector) == 0 {
		log.Printf("Embedding service returned no vector, proceeding without grounding")
		return nil, nil
	}
	vec := pgvector.NewVector(vector)

	// A bus connecting the pickup city to a destination, or local to
	// either end, is relevant; the other categories only matter where the
	// traveler is actually staying.
	busCities := unionCities(originCity, destinationCities)

	var result vendors.RetrievalResult

	g, gctx := errgroup.WithContext(ctx)
	run := func(dst *[]vendors.Match, category vendors.Category, cities []string, topK int) func() error {
		return func() error {
			qctx, cancel := context.WithTimeout(gctx, s.queryTimeout)
			defer cancel()

			matches, err := s.vendorRepo.Query(qctx, category, vec, topK, cities)
			if err != nil {
				// One degraded category must not take down the rest.
				log.Printf("Vendor query for %s failed, returning no matches: %v", category, err)
				return nil
			}
			*dst = matches
			return nil
		}
	}

	g.Go(run(&result.Buses, vendors.CategoryBus, busCities, busTopK))
	g.Go(run(&result.Cabs, vendors.CategoryCab, destinationCities, cabTopK))
	g.Go(run(&result.Hotels, vendors.CategoryHotel, destinationCities, hotelTopK))
	g.Go(run(&result.Adventures, vendors.CategoryAdventure, destinationCities, adventureTopK))

	_ = g.Wait()

	log.Printf("Vendor retrieval: %d buses, %d cabs, %d hotels, %d adventures for cities %v",
		len(result.Buses), len(result.Cabs), len(result.Hotels), len(result.Adventures), destinationCities)

	return &result, nil
}

func (s *RetrievalService) SearchVendors(ctx context.Context, freeText string, originCity string, destinationCities []string) (*vendors.AggregatedContext, error) {
	result, err := s.Retrieve(ctx, freeText, originCity, destinationCities)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	return BuildVendorContext(result), nil
}

// unionCities prepends the origin to the destination set, skipping blanks
// and duplicates.
func unionCities(originCity string, destinationCities []string) []string {
	cities := make([]string, 0, len(destinationCities)+1)
	if origin := utils.NormalizeCity(originCity); origin != "" {
		cities = append(cities, origin)
	}
	for _, city := range destinationCities {
		duplicate := false
		for _, existing := range cities {
			if existing == city {
				duplicate = true
				break
			}
		}
		if !duplicate {
			cities = append(cities, city)
		}
	}
	return cities
}
