package types

// MatchConfidence grades how closely a geocoder hit matches the queried name
type MatchConfidence string

const (
	ConfidenceHigh   MatchConfidence = "high"
	ConfidenceMedium MatchConfidence = "medium"
	ConfidenceLow    MatchConfidence = "low"
)

// PlaceRecord is the best geocoder match for one query. It is built once per
// verification attempt and never mutated afterwards.
type PlaceRecord struct {
	Query           string // the trimmed name the user asked about
	Name            string
	DisplayName     string
	FeatureType     string // Nominatim type tag, e.g. "city", "hamlet"
	Coordinates     Coords
	Country         string
	State           string
	City            string
	Importance      float64
	MatchConfidence MatchConfidence
}
