package types

// WeatherSnapshot holds the current conditions for one query
type WeatherSnapshot struct {
	Temperature              float64
	Unit                     string
	PrecipitationProbability int // 0-100
}

func NewWeatherSnapshot(temperature float64, unit string, precipitationProbability int) WeatherSnapshot {
	if unit == "" {
		unit = "°C"
	}
	return WeatherSnapshot{
		Temperature:              temperature,
		Unit:                     unit,
		PrecipitationProbability: precipitationProbability,
	}
}
