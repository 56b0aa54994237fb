package types

// Attraction is one named point of interest near a place
type Attraction struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}
