package openmeteo

// CurrentWeatherAPIResponse is the subset of the forecast endpoint response
// used for current conditions
type CurrentWeatherAPIResponse struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Timezone     string  `json:"timezone"`
	CurrentUnits struct {
		Temperature2m            string `json:"temperature_2m"`
		PrecipitationProbability string `json:"precipitation_probability"`
	} `json:"current_units"`
	Current *struct {
		Time                     string  `json:"time"`
		Temperature2m            float64 `json:"temperature_2m"`
		PrecipitationProbability int     `json:"precipitation_probability"`
	} `json:"current"`
}
