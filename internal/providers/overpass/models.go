package overpass

// InterpreterAPIResponse is the JSON body returned by the Overpass interpreter
type InterpreterAPIResponse struct {
	Version   float64 `json:"version"`
	Generator string  `json:"generator"`
	Elements  []struct {
		Type string            `json:"type"`
		Id   int64             `json:"id"`
		Lat  float64           `json:"lat"`
		Lon  float64           `json:"lon"`
		Tags map[string]string `json:"tags"`
	} `json:"elements"`
}
