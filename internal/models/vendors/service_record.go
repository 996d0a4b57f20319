package vendors

import (
	"fmt"
	"strings"
)

// EmbeddingDimensions is the fixed width of every stored vendor embedding.
// Matches the vector(768) column in vendor_embeddings.
const EmbeddingDimensions = 768

// CategoryDetails carries the attributes that only one category has.
// Exactly one implementation exists per Category, so a record can never
// hold the wrong shape for its partition.
type CategoryDetails interface {
	Category() Category
	// Summary renders the category-specific attributes for the context
	// block, with "N/A" standing in for anything blank.
	Summary() string
}

type BusDetails struct {
	BusType       string `json:"bus_type"`
	RoutesCovered string `json:"routes_covered"`
}

func (BusDetails) Category() Category { return CategoryBus }

func (d BusDetails) Summary() string {
	return fmt.Sprintf("Type: %s, Routes: %s", OrNA(d.BusType), OrNA(d.RoutesCovered))
}

type CabDetails struct {
	VehicleTypes      string `json:"vehicle_types"`
	IntercityCoverage string `json:"intercity_coverage"`
}

func (CabDetails) Category() Category { return CategoryCab }

func (d CabDetails) Summary() string {
	return fmt.Sprintf("Vehicle: %s", OrNA(d.VehicleTypes))
}

type HotelDetails struct {
	StayType       string `json:"stay_type"`
	RoomCategories string `json:"room_categories"`
	Facilities     string `json:"facilities"`
	OnlineLink     string `json:"online_link"`
}

func (HotelDetails) Category() Category { return CategoryHotel }

func (d HotelDetails) Summary() string {
	return fmt.Sprintf("Facilities: %s, Website: %s", OrNA(d.Facilities), OrNA(d.OnlineLink))
}

type AdventureDetails struct {
	ActivityTypes []string `json:"activity_types"`
}

func (AdventureDetails) Category() Category { return CategoryAdventure }

func (d AdventureDetails) Summary() string {
	return fmt.Sprintf("Activities: %s", OrNA(strings.Join(d.ActivityTypes, ", ")))
}

// OrNA substitutes the explicit fallback label for blank attributes so a
// missing value never renders as silence.
func OrNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// ServiceRecord is one vendor offering one service category.
type ServiceRecord struct {
	ID           string
	Category     Category
	City         string
	ProviderName string
	ContactInfo  string
	Details      CategoryDetails
}

// Match pairs a record with its similarity score for one query.
type Match struct {
	Record ServiceRecord
	Score  float64
}

// RetrievalResult holds the per-category match lists for one request,
// each ordered by descending similarity. Built fresh per request and
// discarded once the context and recommendations are assembled.
type RetrievalResult struct {
	Buses      []Match
	Cabs       []Match
	Hotels     []Match
	Adventures []Match
}

func (r *RetrievalResult) Total() int {
	return len(r.Buses) + len(r.Cabs) + len(r.Hotels) + len(r.Adventures)
}

// Recommendation is one normalized, category-annotated match returned to
// the caller alongside the context block. ActivityTypes is set only for
// adventures, Website only for hotels.
type Recommendation struct {
	ID            string   `json:"id"`
	Score         float64  `json:"score"`
	Category      Category `json:"category"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Contact       string   `json:"contact"`
	City          string   `json:"city"`
	ActivityTypes []string `json:"activity_types,omitempty"`
	Website       string   `json:"website,omitempty"`
}

// AggregatedContext is the grounding handed to the generation stage: a
// human-readable block grouped by category plus the flat ranked list.
type AggregatedContext struct {
	Text            string           `json:"context"`
	Recommendations []Recommendation `json:"recommendations"`
}
