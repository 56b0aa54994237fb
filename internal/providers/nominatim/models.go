package nominatim

import "strconv"

// PlaceAPIResponse is one element of the JSON array returned by /search
type PlaceAPIResponse struct {
	PlaceId     int64   `json:"place_id"`
	Licence     string  `json:"licence"`
	OsmType     string  `json:"osm_type"`
	OsmId       int64   `json:"osm_id"`
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	Class       string  `json:"class"`
	Type        string  `json:"type"`
	PlaceRank   int     `json:"place_rank"`
	Importance  float64 `json:"importance"`
	Addresstype string  `json:"addresstype"`
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Address     struct {
		City         string `json:"city"`
		County       string `json:"county"`
		State        string `json:"state"`
		ISO31662Lvl4 string `json:"ISO3166-2-lvl4"`
		Country      string `json:"country"`
		CountryCode  string `json:"country_code"`
	} `json:"address"`
	Boundingbox []string `json:"boundingbox"`
}

// Coordinates parses the stringly-typed lat/lon pair. Unparseable values
// come back as 0, matching Nominatim's own fallback.
func (r *PlaceAPIResponse) Coordinates() (float64, float64) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		lat = 0
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		lon = 0
	}
	return lat, lon
}
