package request_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCityListAcceptsArray(t *testing.T) {
	var c CityList
	require.NoError(t, json.Unmarshal([]byte(`["Goa","Mumbai"]`), &c))
	assert.Equal(t, CityList{"Goa", "Mumbai"}, c)
}

func TestCityListAcceptsSingleString(t *testing.T) {
	var c CityList
	require.NoError(t, json.Unmarshal([]byte(`"Goa"`), &c))
	assert.Equal(t, CityList{"Goa"}, c)
}

func TestCityListRejectsOtherShapes(t *testing.T) {
	var c CityList
	assert.Error(t, json.Unmarshal([]byte(`{"city":"Goa"}`), &c))
	assert.Error(t, json.Unmarshal([]byte(`42`), &c))
}

func TestItineraryRequestDecoding(t *testing.T) {
	payload := `{
		"responses": {"What type of stay do you prefer?": ["Hotel", "Camping"]},
		"pickup_city": "Pune",
		"destination_cities": "Goa"
	}`

	var req ItineraryRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	assert.Equal(t, "Pune", req.PickupCity)
	assert.Equal(t, CityList{"Goa"}, req.DestinationCities)
	assert.Contains(t, req.Responses, "What type of stay do you prefer?")
}
