package types

// Facets is the set of information categories a query asks for
type Facets struct {
	Weather bool
	Places  bool
}

func NewFacets(weather, places bool) Facets {
	return Facets{
		Weather: weather,
		Places:  places,
	}
}

// Any reports whether at least one facet is requested
func (f Facets) Any() bool {
	return f.Weather || f.Places
}
