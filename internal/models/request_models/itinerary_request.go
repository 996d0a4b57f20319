package request_models

import "encoding/json"

// CityList decodes a destination field that the questionnaire may send as
// either a single string or an array of strings, depending on whether the
// question allowed multiple selections.
type CityList []string

func (c *CityList) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*c = many
		return nil
	}

	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*c = CityList{one}
	return nil
}

// ItineraryRequest is the full questionnaire submission. Responses holds
// every answer keyed by question text and is serialized as-is into the
// embedding free-text; the city fields are the only ones the retrieval
// path reads structurally.
type ItineraryRequest struct {
	Responses         map[string]any `json:"responses"`
	PickupCity        string         `json:"pickup_city"`
	DestinationCities CityList       `json:"destination_cities"`
}

// VendorSearchRequest drives the standalone vendor retrieval endpoint.
type VendorSearchRequest struct {
	FreeText          string   `json:"free_text" binding:"required"`
	PickupCity        string   `json:"pickup_city"`
	DestinationCities CityList `json:"destination_cities"`
}
