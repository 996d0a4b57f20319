package services

import (
	"fmt"
	"strings"

	"github.com/Desire4travels/Chatbot/internal/models/vendors"
)

type contextSection struct {
	label       string
	placeholder string
}

// Section order and wording are fixed: the generation prompt downstream
// distinguishes a genuinely empty category from a dropped section only by
// the explicit placeholder line.
var contextSections = map[vendors.Category]contextSection{
	vendors.CategoryBus:       {label: "Bus Options", placeholder: "No buses found."},
	vendors.CategoryCab:       {label: "Cab Options", placeholder: "No cab options found."},
	vendors.CategoryHotel:     {label: "Hotel Options", placeholder: "No hotels found."},
	vendors.CategoryAdventure: {label: "Activity Options", placeholder: "No activities found."},
}

// BuildVendorContext turns one retrieval result into the grounding block
// and the flat recommendation list. Pure transformation: deterministic,
// no I/O.
func BuildVendorContext(result *vendors.RetrievalResult) *vendors.AggregatedContext {
	var text strings.Builder
	recommendations := make([]vendors.Recommendation, 0, result.Total())

	for _, category := range vendors.AllCategories() {
		matches := matchesFor(result, category)
		section := contextSections[category]

		if text.Len() > 0 {
			text.WriteString("\n\n")
		}
		fmt.Fprintf(&text, "%s (%d found):\n", section.label, len(matches))

		if len(matches) == 0 {
			text.WriteString(section.placeholder)
			continue
		}

		lines := make([]string, 0, len(matches))
		for _, m := range matches {
			lines = append(lines, fmt.Sprintf("- %s (%s) — %s",
				vendors.OrNA(m.Record.ProviderName), vendors.OrNA(m.Record.ContactInfo), m.Record.Details.Summary()))
			recommendations = append(recommendations, toRecommendation(m))
		}
		text.WriteString(strings.Join(lines, "\n"))
	}

	return &vendors.AggregatedContext{
		Text:            text.String(),
		Recommendations: recommendations,
	}
}

func matchesFor(result *vendors.RetrievalResult, category vendors.Category) []vendors.Match {
	switch category {
	case vendors.CategoryBus:
		return result.Buses
	case vendors.CategoryCab:
		return result.Cabs
	case vendors.CategoryHotel:
		return result.Hotels
	case vendors.CategoryAdventure:
		return result.Adventures
	}
	return nil
}

func toRecommendation(m vendors.Match) vendors.Recommendation {
	rec := vendors.Recommendation{
		ID:          m.Record.ID,
		Score:       m.Score,
		Category:    m.Record.Category,
		Title:       m.Record.ProviderName,
		Description: m.Record.Details.Summary(),
		Contact:     m.Record.ContactInfo,
		City:        m.Record.City,
	}

	switch d := m.Record.Details.(type) {
	case vendors.AdventureDetails:
		rec.ActivityTypes = d.ActivityTypes
	case vendors.HotelDetails:
		rec.Website = d.OnlineLink
	}

	return rec
}
