// Package intent classifies free-text queries into the facets they ask for.
package intent

import (
	"strings"

	"tourguide/internal/types"
)

var weatherKeywords = []string{
	"temperature",
	"weather",
	"rain",
	"temperature there",
	"hot",
	"cold",
	"forecast",
}

var placesKeywords = []string{
	"places",
	"visit",
	"attractions",
	"tourist",
	"see",
	"go",
	"plan my trip",
}

// Classify maps free text to the requested facet set. Pure function, no I/O.
// When neither keyword set matches, the places facet is assumed: the richer
// answer is the better default for an ambiguous trip question.
func Classify(text string) types.Facets {
	lower := strings.ToLower(text)

	facets := types.Facets{
		Weather: containsAny(lower, weatherKeywords),
		Places:  containsAny(lower, placesKeywords),
	}

	if !facets.Any() {
		facets.Places = true
	}

	return facets
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
