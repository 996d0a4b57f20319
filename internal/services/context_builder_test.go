package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Desire4travels/Chatbot/internal/models/vendors"
)

func busMatch(id, city string, score float64) vendors.Match {
	return vendors.Match{
		Record: vendors.ServiceRecord{
			ID: id, Category: vendors.CategoryBus, City: city,
			ProviderName: "Shivneri Travels", ContactInfo: "Ravi, 9800000001",
			Details: vendors.BusDetails{BusType: "Sleeper AC", RoutesCovered: "Pune-Goa"},
		},
		Score: score,
	}
}

func cabMatch(id string, score float64) vendors.Match {
	return vendors.Match{
		Record: vendors.ServiceRecord{
			ID: id, Category: vendors.CategoryCab, City: "Goa",
			ProviderName: "Coastal Cabs", ContactInfo: "Maya, 9800000002",
			Details: vendors.CabDetails{VehicleTypes: "Sedan"},
		},
		Score: score,
	}
}

func hotelMatch(id string, score float64) vendors.Match {
	return vendors.Match{
		Record: vendors.ServiceRecord{
			ID: id, Category: vendors.CategoryHotel, City: "Goa",
			ProviderName: "Sea Breeze", ContactInfo: "Front desk, 9800000003",
			Details: vendors.HotelDetails{Facilities: "Pool", OnlineLink: "https://seabreeze.example"},
		},
		Score: score,
	}
}

func adventureMatch(id string, score float64) vendors.Match {
	return vendors.Match{
		Record: vendors.ServiceRecord{
			ID: id, Category: vendors.CategoryAdventure, City: "Goa",
			ProviderName: "Wave Riders", ContactInfo: "Arjun, 9800000004",
			Details: vendors.AdventureDetails{ActivityTypes: []string{"Parasailing"}},
		},
		Score: score,
	}
}

func sections(text string) []string {
	return strings.Split(text, "\n\n")
}

func bulletLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "- ") {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestBuildVendorContextAlwaysFourSectionsInOrder(t *testing.T) {
	cases := []*vendors.RetrievalResult{
		{},
		{Buses: []vendors.Match{busMatch("b1", "Pune", 0.9)}},
		{
			Buses:      []vendors.Match{busMatch("b1", "Pune", 0.9)},
			Cabs:       []vendors.Match{cabMatch("c1", 0.8)},
			Hotels:     []vendors.Match{hotelMatch("h1", 0.7)},
			Adventures: []vendors.Match{adventureMatch("a1", 0.6)},
		},
	}

	for _, result := range cases {
		ctx := BuildVendorContext(result)
		parts := sections(ctx.Text)
		require.Len(t, parts, 4)
		assert.True(t, strings.HasPrefix(parts[0], "Bus Options ("))
		assert.True(t, strings.HasPrefix(parts[1], "Cab Options ("))
		assert.True(t, strings.HasPrefix(parts[2], "Hotel Options ("))
		assert.True(t, strings.HasPrefix(parts[3], "Activity Options ("))
	}
}

func TestBuildVendorContextEmptyCategoryPlaceholder(t *testing.T) {
	result := &vendors.RetrievalResult{
		Buses: []vendors.Match{busMatch("b1", "Pune", 0.9)},
	}

	ctx := BuildVendorContext(result)
	assert.Contains(t, ctx.Text, "Bus Options (1 found):")
	assert.Contains(t, ctx.Text, "Cab Options (0 found):\nNo cab options found.")
	assert.Contains(t, ctx.Text, "Hotel Options (0 found):\nNo hotels found.")
	assert.Contains(t, ctx.Text, "Activity Options (0 found):\nNo activities found.")

	// Empty categories contribute nothing to the flat list.
	require.Len(t, ctx.Recommendations, 1)
	assert.Equal(t, vendors.CategoryBus, ctx.Recommendations[0].Category)
}

func TestBuildVendorContextFallbackLabels(t *testing.T) {
	result := &vendors.RetrievalResult{
		Cabs: []vendors.Match{{
			Record: vendors.ServiceRecord{
				ID: "c9", Category: vendors.CategoryCab, City: "Goa",
				ProviderName: "Bare Cabs",
				Details:      vendors.CabDetails{},
			},
			Score: 0.5,
		}},
	}

	ctx := BuildVendorContext(result)
	assert.Contains(t, ctx.Text, "- Bare Cabs (N/A) — Vehicle: N/A")
}

func TestBuildVendorContextRecommendationOrdering(t *testing.T) {
	result := &vendors.RetrievalResult{
		Buses:      []vendors.Match{busMatch("b1", "Pune", 0.95), busMatch("b2", "Goa", 0.90)},
		Cabs:       []vendors.Match{cabMatch("c1", 0.85), cabMatch("c2", 0.80), cabMatch("c3", 0.75)},
		Adventures: []vendors.Match{adventureMatch("a1", 0.70)},
	}

	ctx := BuildVendorContext(result)
	require.Len(t, ctx.Recommendations, result.Total())

	ids := make([]string, 0, len(ctx.Recommendations))
	for _, rec := range ctx.Recommendations {
		ids = append(ids, rec.ID)
	}
	assert.Equal(t, []string{"b1", "b2", "c1", "c2", "c3", "a1"}, ids)

	// Per-category descending score is preserved.
	assert.GreaterOrEqual(t, ctx.Recommendations[0].Score, ctx.Recommendations[1].Score)
	assert.GreaterOrEqual(t, ctx.Recommendations[2].Score, ctx.Recommendations[3].Score)
}

func TestBuildVendorContextCategoryOnlyFields(t *testing.T) {
	result := &vendors.RetrievalResult{
		Buses:      []vendors.Match{busMatch("b1", "Pune", 0.9)},
		Hotels:     []vendors.Match{hotelMatch("h1", 0.8)},
		Adventures: []vendors.Match{adventureMatch("a1", 0.7)},
	}

	ctx := BuildVendorContext(result)
	byID := map[string]vendors.Recommendation{}
	for _, rec := range ctx.Recommendations {
		byID[rec.ID] = rec
	}

	assert.Empty(t, byID["b1"].ActivityTypes)
	assert.Empty(t, byID["b1"].Website)
	assert.Equal(t, "https://seabreeze.example", byID["h1"].Website)
	assert.Empty(t, byID["h1"].ActivityTypes)
	assert.Equal(t, []string{"Parasailing"}, byID["a1"].ActivityTypes)
	assert.Empty(t, byID["a1"].Website)
}

func TestBuildVendorContextBulletLineRoundTrip(t *testing.T) {
	result := &vendors.RetrievalResult{
		Buses:  []vendors.Match{busMatch("b1", "Pune", 0.9), busMatch("b2", "Goa", 0.8)},
		Cabs:   []vendors.Match{cabMatch("c1", 0.7)},
		Hotels: []vendors.Match{hotelMatch("h1", 0.6)},
	}

	ctx := BuildVendorContext(result)
	assert.Len(t, bulletLines(ctx.Text), result.Total())
	assert.Len(t, ctx.Recommendations, result.Total())
}

func TestBuildVendorContextDeterministic(t *testing.T) {
	result := &vendors.RetrievalResult{
		Buses: []vendors.Match{busMatch("b1", "Pune", 0.9)},
		Cabs:  []vendors.Match{cabMatch("c1", 0.8)},
	}

	first := BuildVendorContext(result)
	second := BuildVendorContext(result)
	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, first.Recommendations, second.Recommendations)
}
