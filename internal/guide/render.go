package guide

import (
	"fmt"
	"strconv"
	"strings"

	"tourguide/internal/types"
)

// Response templates. These strings are part of the caller-facing contract
// and must not drift.
const (
	attractionsLeadIn     = "these are the places you can go, - - - - -"
	attractionsConnective = "And these are the places you can go: - - - - -"
	attractionsEmptyNote  = "(No tourist attractions found in the database)"
)

func renderWeather(placeName string, snapshot types.WeatherSnapshot) string {
	temp := strconv.FormatFloat(snapshot.Temperature, 'f', -1, 64)
	return fmt.Sprintf("In %s it's currently %s%s with a chance of %d%% to rain.",
		placeName, temp, snapshot.Unit, snapshot.PrecipitationProbability)
}

func renderAttractions(placeName string, attractions []types.Attraction) string {
	if len(attractions) == 0 {
		return fmt.Sprintf("In %s %s\n%s", placeName, attractionsLeadIn, attractionsEmptyNote)
	}

	names := make([]string, 0, len(attractions))
	for _, attraction := range attractions {
		names = append(names, attraction.Name)
	}

	return fmt.Sprintf("In %s %s\n%s", placeName, attractionsLeadIn, strings.Join(names, "\n"))
}

// withConnective swaps the attractions lead-in line for the connective
// prefix used when the weather sentence already opened the response
func withConnective(rendered string) string {
	if idx := strings.Index(rendered, "\n"); idx >= 0 {
		return attractionsConnective + rendered[idx:]
	}
	return "And " + rendered
}
