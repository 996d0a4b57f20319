package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Desire4travels/Chatbot/internal/models/request_models"
	"github.com/Desire4travels/Chatbot/internal/models/vendors"
	"github.com/Desire4travels/Chatbot/pkg/utils"
)

// recordingIndex captures every upsert so tests can assert on the mapped
// records.
type recordingIndex struct {
	mu      sync.Mutex
	records []vendors.ServiceRecord
}

func (r *recordingIndex) Upsert(ctx context.Context, record vendors.ServiceRecord, embedding pgvector.Vector) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	return nil
}

func (r *recordingIndex) Query(ctx context.Context, category vendors.Category, vector pgvector.Vector, topK int, cities []string) ([]vendors.Match, error) {
	return nil, nil
}

func (r *recordingIndex) byID(id string) (vendors.ServiceRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return vendors.ServiceRecord{}, false
}

func feedServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

const sampleFeed = `[
  {"id": "17", "type": "bus", "companyName": "Shivneri Travels", "baseCity": "PUNE",
   "routesCovered": "Pune-Goa", "busType": "Sleeper AC",
   "contactPerson": "Ravi", "contactMobile": "9800000001"},
  {"id": "23", "type": "cab", "company": "Coastal Cabs", "baseCity": "goa",
   "vehicleTypes": "Sedan, SUV", "intercityCoverage": "Goa-Pune",
   "contactPerson": "Maya", "contactMobile": "9800000002"},
  {"id": "31", "type": "hotel", "hotelName": "Sea Breeze", "city": "Goa",
   "onlineLink": "https://seabreeze.example", "stayType": "Resort",
   "roomCategories": "Deluxe, Suite", "facilities": "Pool, Wifi",
   "contactPerson": "Front desk", "contactMobile": "9800000003"},
  {"id": "42", "type": "adventure", "agencyName": "Wave Riders", "location": "goa",
   "activityTypes": "Parasailing, Scuba",
   "contactPerson": "Arjun", "contactMobile": "9800000004"}
]`

func TestSyncFromFeedMapsAllCategories(t *testing.T) {
	srv := feedServer(t, sampleFeed)
	index := &recordingIndex{}
	svc := NewIngestService(&stubEmbedder{vector: someVector()}, index)

	summary, err := svc.SyncFromFeed(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Uploaded)
	assert.Equal(t, 0, summary.Skipped)
	require.Len(t, index.records, 4)

	bus, ok := index.byID("doc-17")
	require.True(t, ok)
	assert.Equal(t, vendors.CategoryBus, bus.Category)
	assert.Equal(t, "Shivneri Travels", bus.ProviderName)
	assert.Equal(t, "Pune", bus.City)
	assert.Equal(t, "Ravi, 9800000001", bus.ContactInfo)
	assert.Equal(t, vendors.BusDetails{BusType: "Sleeper AC", RoutesCovered: "Pune-Goa"}, bus.Details)

	cab, ok := index.byID("doc-23")
	require.True(t, ok)
	assert.Equal(t, vendors.CategoryCab, cab.Category)
	assert.Equal(t, "Goa", cab.City)
	assert.Equal(t, vendors.CabDetails{VehicleTypes: "Sedan, SUV", IntercityCoverage: "Goa-Pune"}, cab.Details)

	hotel, ok := index.byID("doc-31")
	require.True(t, ok)
	assert.Equal(t, vendors.CategoryHotel, hotel.Category)
	assert.Equal(t, vendors.HotelDetails{
		StayType:       "Resort",
		RoomCategories: "Deluxe, Suite",
		Facilities:     "Pool, Wifi",
		OnlineLink:     "https://seabreeze.example",
	}, hotel.Details)

	adventure, ok := index.byID("doc-42")
	require.True(t, ok)
	assert.Equal(t, vendors.CategoryAdventure, adventure.Category)
	assert.Equal(t, vendors.AdventureDetails{ActivityTypes: []string{"Parasailing", "Scuba"}}, adventure.Details)
}

func TestSyncFromFeedSkipsUnknownTypeAndNumbersMissingIDs(t *testing.T) {
	srv := feedServer(t, `[
	  {"id": "1", "type": "train", "companyName": "Deccan Express"},
	  {"type": "cab", "company": "Coastal Cabs", "baseCity": "Goa",
	   "vehicleTypes": "Sedan", "contactPerson": "Maya", "contactMobile": "9800000002"}
	]`)
	index := &recordingIndex{}
	svc := NewIngestService(&stubEmbedder{vector: someVector()}, index)

	summary, err := svc.SyncFromFeed(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Uploaded)
	assert.Equal(t, 1, summary.Skipped)

	require.Len(t, index.records, 1)
	rec := index.records[0]
	assert.Equal(t, vendors.CategoryCab, rec.Category, "unrecognized types never reach the index")
	assert.Equal(t, "doc-1", rec.ID, "entries without an id fall back to their feed position")
}

func TestSyncFromFeedSkipsEmptyEmbeddings(t *testing.T) {
	srv := feedServer(t, sampleFeed)
	index := &recordingIndex{}
	svc := NewIngestService(&stubEmbedder{vector: nil}, index)

	summary, err := svc.SyncFromFeed(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Uploaded)
	assert.Equal(t, 4, summary.Skipped)
	assert.Empty(t, index.records)
}

func TestSyncFromFeedUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := NewIngestService(&stubEmbedder{vector: someVector()}, &recordingIndex{})
	_, err := svc.SyncFromFeed(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestUpsertVendorValidation(t *testing.T) {
	svc := NewIngestService(&stubEmbedder{vector: someVector()}, &recordingIndex{})

	err := svc.UpsertVendor(context.Background(), request_models.VendorUpsertRequest{
		Type: "train", City: "Pune", ProviderName: "Deccan Express",
	})
	assert.ErrorIs(t, err, utils.ErrUnknownVendorCategory)

	err = svc.UpsertVendor(context.Background(), request_models.VendorUpsertRequest{
		Type: "cab", City: "   ", ProviderName: "Coastal Cabs",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestUpsertVendorGeneratesIDAndNormalizesCity(t *testing.T) {
	index := &recordingIndex{}
	svc := NewIngestService(&stubEmbedder{vector: someVector()}, index)

	err := svc.UpsertVendor(context.Background(), request_models.VendorUpsertRequest{
		Type:         "HOTEL",
		City:         "GOA",
		ProviderName: "Sea Breeze",
		ContactInfo:  "Front desk, 9800000003",
		StayType:     "Resort",
		Facilities:   "Pool",
		OnlineLink:   "https://seabreeze.example",
	})
	require.NoError(t, err)
	require.Len(t, index.records, 1)

	rec := index.records[0]
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, vendors.CategoryHotel, rec.Category)
	assert.Equal(t, "Goa", rec.City)
	assert.Equal(t, "Sea Breeze", rec.ProviderName)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Parasailing", "Scuba"}, splitList("Parasailing, Scuba"))
	assert.Equal(t, []string{"Trekking"}, splitList(" Trekking , "))
	assert.Nil(t, splitList(""))
}
