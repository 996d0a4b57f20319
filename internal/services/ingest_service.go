package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	"github.com/Desire4travels/Chatbot/internal/models/request_models"
	"github.com/Desire4travels/Chatbot/internal/models/response_models"
	"github.com/Desire4travels/Chatbot/internal/models/vendors"
	"github.com/Desire4travels/Chatbot/internal/repositories"
	"github.com/Desire4travels/Chatbot/pkg/utils"
)

type IngestServiceInterface interface {
	// SyncFromFeed pulls the service-provider feed and upserts every
	// recognizable entry into its category partition. Entries with an
	// unknown type or an empty embedding are skipped, not fatal.
	SyncFromFeed(ctx context.Context, feedURL string) (*response_models.SyncSummary, error)

	UpsertVendor(ctx context.Context, req request_models.VendorUpsertRequest) error
}

type IngestService struct {
	aiClient   utils.EmbeddingClientInterface
	vendorRepo repositories.VendorIndexRepository
	httpClient *http.Client
}

func NewIngestService(aiClient utils.EmbeddingClientInterface, vendorRepo repositories.VendorIndexRepository) IngestServiceInterface {
	return &IngestService{
		aiClient:   aiClient,
		vendorRepo: vendorRepo,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *IngestService) SyncFromFeed(ctx context.Context, feedURL string) (*response_models.SyncSummary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch provider feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch provider feed: status %d", resp.StatusCode)
	}

	var items []request_models.ServiceFeedItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode provider feed: %w", err)
	}

	summary := &response_models.SyncSummary{}
	for i, item := range items {
		record, text, ok := feedItemToRecord(item, i)
		if !ok {
			log.Printf("Skipping feed entry with unknown type %q", item.Type)
			summary.Skipped++
			continue
		}

		vector, err := s.aiClient.GetEmbedding(ctx, text)
		if err != nil {
			log.Printf("Embedding failed for %s, skipping: %v", record.ProviderName, err)
			summary.Skipped++
			continue
		}
		if len(vector) == 0 {
			log.Printf("Empty embedding for %s, skipping", record.ProviderName)
			summary.Skipped++
			continue
		}

		if err := s.vendorRepo.Upsert(ctx, record, pgvector.NewVector(vector)); err != nil {
			log.Printf("Failed to upsert %s: %v", record.ProviderName, err)
			summary.Skipped++
			continue
		}

		log.Printf("Uploaded %s (%s) to partition %s", record.ProviderName, record.City, record.Category)
		summary.Uploaded++
	}

	return summary, nil
}

func (s *IngestService) UpsertVendor(ctx context.Context, req request_models.VendorUpsertRequest) error {
	category := vendors.Category(strings.ToLower(req.Type))
	if !category.Valid() {
		return utils.ErrUnknownVendorCategory
	}

	record := vendors.ServiceRecord{
		ID:           req.ID,
		Category:     category,
		City:         utils.NormalizeCity(req.City),
		ProviderName: req.ProviderName,
		ContactInfo:  req.ContactInfo,
	}
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.City == "" {
		return utils.ErrInvalidInput
	}

	switch category {
	case vendors.CategoryBus:
		record.Details = vendors.BusDetails{BusType: req.BusType, RoutesCovered: req.RoutesCovered}
	case vendors.CategoryCab:
		record.Details = vendors.CabDetails{VehicleTypes: req.VehicleTypes, IntercityCoverage: req.IntercityCoverage}
	case vendors.CategoryHotel:
		record.Details = vendors.HotelDetails{
			StayType:       req.StayType,
			RoomCategories: req.RoomCategories,
			Facilities:     req.Facilities,
			OnlineLink:     req.OnlineLink,
		}
	case vendors.CategoryAdventure:
		record.Details = vendors.AdventureDetails{ActivityTypes: req.ActivityTypes}
	}

	vector, err := s.aiClient.GetEmbedding(ctx, describeRecord(record))
	if err != nil {
		return utils.ErrUnexpectedBehaviorOfAI
	}
	if len(vector) == 0 {
		return utils.ErrUnexpectedBehaviorOfAI
	}

	if err := s.vendorRepo.Upsert(ctx, record, pgvector.NewVector(vector)); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// feedItemToRecord maps one feed entry onto a ServiceRecord plus the
// description sentence that gets embedded. Field names differ per
// category in the upstream feed.
func feedItemToRecord(item request_models.ServiceFeedItem, position int) (vendors.ServiceRecord, string, bool) {
	contactInfo := fmt.Sprintf("%s, %s", item.ContactPerson, item.ContactMobile)

	record := vendors.ServiceRecord{
		Category:    vendors.Category(item.Type),
		ContactInfo: contactInfo,
	}

	var text string
	switch record.Category {
	case vendors.CategoryAdventure:
		record.ProviderName = item.AgencyName
		record.City = utils.NormalizeCity(item.Location)
		record.Details = vendors.AdventureDetails{ActivityTypes: splitList(item.ActivityTypes)}
		text = fmt.Sprintf("Adventure by %s in %s. Activities: %s. Contact: %s - %s",
			item.AgencyName, record.City, item.ActivityTypes, item.ContactPerson, item.ContactMobile)

	case vendors.CategoryBus:
		record.ProviderName = item.CompanyName
		record.City = utils.NormalizeCity(item.BaseCity)
		record.Details = vendors.BusDetails{BusType: item.BusType, RoutesCovered: item.RoutesCovered}
		text = fmt.Sprintf("Bus service by %s based in %s. Route: %s, Type: %s. Contact: %s - %s",
			item.CompanyName, record.City, item.RoutesCovered, item.BusType, item.ContactPerson, item.ContactMobile)

	case vendors.CategoryCab:
		record.ProviderName = item.Company
		record.City = utils.NormalizeCity(item.BaseCity)
		record.Details = vendors.CabDetails{VehicleTypes: item.VehicleTypes, IntercityCoverage: item.IntercityCoverage}
		text = fmt.Sprintf("Cab service from %s in %s. Vehicle types: %s. Coverage: %s. Contact: %s - %s",
			item.Company, record.City, item.VehicleTypes, item.IntercityCoverage, item.ContactPerson, item.ContactMobile)

	case vendors.CategoryHotel:
		record.ProviderName = item.HotelName
		record.City = utils.NormalizeCity(item.City)
		record.Details = vendors.HotelDetails{
			StayType:       item.StayType,
			RoomCategories: item.RoomCategories,
			Facilities:     item.Facilities,
			OnlineLink:     item.OnlineLink,
		}
		text = fmt.Sprintf("Hotel %s in %s. Book online: %s. Stay type: %s. Categories: %s. Facilities: %s. Contact: %s - %s",
			item.HotelName, record.City, item.OnlineLink, item.StayType, item.RoomCategories, item.Facilities,
			item.ContactPerson, item.ContactMobile)

	default:
		return vendors.ServiceRecord{}, "", false
	}

	record.ID = fmt.Sprintf("doc-%s", item.ID)
	if item.ID == "" {
		record.ID = fmt.Sprintf("doc-%d", position)
	}

	return record, text, true
}

func describeRecord(record vendors.ServiceRecord) string {
	return fmt.Sprintf("%s service by %s in %s. %s. Contact: %s",
		record.Category, record.ProviderName, record.City, record.Details.Summary(), record.ContactInfo)
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
