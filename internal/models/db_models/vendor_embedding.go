package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"

	"github.com/Desire4travels/Chatbot/internal/models/vendors"
)

// VendorEmbedding is one service provider row. The category column plays
// the namespace role: every query filters on it, so records from one
// partition never bleed into another's results.
type VendorEmbedding struct {
	ID           string `gorm:"primaryKey;column:id"`
	Category     string `gorm:"index:idx_vendor_category_city"`
	City         string `gorm:"index:idx_vendor_category_city"`
	ProviderName string
	ContactInfo  string

	// Category-specific columns; only the ones matching Category are set.
	BusType           string
	RoutesCovered     string
	VehicleTypes      string
	IntercityCoverage string
	StayType          string
	RoomCategories    string
	Facilities        string
	OnlineLink        string
	ActivityTypes     pq.StringArray `gorm:"type:text[]"`

	Embedding pgvector.Vector `gorm:"type:vector(768)"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime"`
}

func (VendorEmbedding) TableName() string { return "vendor_embeddings" }

// ToRecord rebuilds the tagged domain record from the flat row.
func (v VendorEmbedding) ToRecord() vendors.ServiceRecord {
	rec := vendors.ServiceRecord{
		ID:           v.ID,
		Category:     vendors.Category(v.Category),
		City:         v.City,
		ProviderName: v.ProviderName,
		ContactInfo:  v.ContactInfo,
	}

	switch rec.Category {
	case vendors.CategoryBus:
		rec.Details = vendors.BusDetails{BusType: v.BusType, RoutesCovered: v.RoutesCovered}
	case vendors.CategoryCab:
		rec.Details = vendors.CabDetails{VehicleTypes: v.VehicleTypes, IntercityCoverage: v.IntercityCoverage}
	case vendors.CategoryHotel:
		rec.Details = vendors.HotelDetails{
			StayType:       v.StayType,
			RoomCategories: v.RoomCategories,
			Facilities:     v.Facilities,
			OnlineLink:     v.OnlineLink,
		}
	case vendors.CategoryAdventure:
		rec.Details = vendors.AdventureDetails{ActivityTypes: v.ActivityTypes}
	}

	return rec
}

// VendorEmbeddingFromRecord flattens a domain record into a row ready to
// store next to its embedding.
func VendorEmbeddingFromRecord(rec vendors.ServiceRecord, embedding pgvector.Vector) VendorEmbedding {
	row := VendorEmbedding{
		ID:           rec.ID,
		Category:     string(rec.Category),
		City:         rec.City,
		ProviderName: rec.ProviderName,
		ContactInfo:  rec.ContactInfo,
		Embedding:    embedding,
	}

	switch d := rec.Details.(type) {
	case vendors.BusDetails:
		row.BusType = d.BusType
		row.RoutesCovered = d.RoutesCovered
	case vendors.CabDetails:
		row.VehicleTypes = d.VehicleTypes
		row.IntercityCoverage = d.IntercityCoverage
	case vendors.HotelDetails:
		row.StayType = d.StayType
		row.RoomCategories = d.RoomCategories
		row.Facilities = d.Facilities
		row.OnlineLink = d.OnlineLink
	case vendors.AdventureDetails:
		row.ActivityTypes = d.ActivityTypes
	}

	return row
}
