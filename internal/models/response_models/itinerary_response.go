package response_models

import "github.com/Desire4travels/Chatbot/internal/models/vendors"

// ItineraryResponse is the payload returned for a full questionnaire
// submission: the generated day-wise plan plus the vendor grounding that
// backed it. Context and Recommendations are empty when no grounding was
// available; the itinerary is still produced.
type ItineraryResponse struct {
	Itinerary       string                   `json:"itinerary"`
	Context         string                   `json:"context"`
	Recommendations []vendors.Recommendation `json:"recommendations"`
	TotalResults    int                      `json:"total_results"`
}

// VendorSearchResponse is the standalone retrieval result.
type VendorSearchResponse struct {
	Context         string                   `json:"context"`
	Recommendations []vendors.Recommendation `json:"recommendations"`
	TotalResults    int                      `json:"total_results"`
}

// SyncSummary reports one feed sync run.
type SyncSummary struct {
	Uploaded int `json:"uploaded"`
	Skipped  int `json:"skipped"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
