package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tourguide/internal/types"
)

// API Docs: https://wiki.openstreetmap.org/wiki/Overpass_API
// The interpreter takes an Overpass QL program as form data and returns the
// matching OSM elements as JSON.
const (
	baseURL = "https://overpass-api.de/api/interpreter"

	// searchRadiusMeters is a fixed policy constant, not caller-configurable
	searchRadiusMeters = 10000
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return &Client{
		// Overpass queries are slow; the QL timeout below is 25s
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
		logger:  logger.With("component", "overpass-client"),
	}
}

// Attractions returns up to limit named tourism points of interest within
// the fixed radius of the given coordinates, deduplicated by name.
func (c *Client) Attractions(ctx context.Context, latitude, longitude float64, limit int) ([]types.Attraction, error) {
	query := fmt.Sprintf(`[out:json][timeout:25];
(
  node["tourism"](around:%d,%f,%f);
  way["tourism"](around:%d,%f,%f);
);
out body;
>;
out skel qt;`, searchRadiusMeters, latitude, longitude, searchRadiusMeters, latitude, longitude)

	c.logger.Debug("querying Overpass for tourist attractions",
		"latitude", latitude,
		"longitude", longitude,
		"limit", limit,
	)

	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch Overpass data",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp InterpreterAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return collectAttractions(&apiResp, limit), nil
}

// collectAttractions filters the raw elements down to named, deduplicated
// attractions, preserving provider order and stopping at limit
func collectAttractions(apiResp *InterpreterAPIResponse, limit int) []types.Attraction {
	if limit <= 0 {
		return []types.Attraction{}
	}

	attractions := make([]types.Attraction, 0, limit)
	seen := make(map[string]struct{})

	for _, element := range apiResp.Elements {
		if len(element.Tags) == 0 {
			continue
		}

		category, ok := element.Tags["tourism"]
		if !ok {
			continue
		}
		if category == "" {
			category = "attraction"
		}

		name := elementName(element.Tags)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}

		attractions = append(attractions, types.Attraction{
			Name:     name,
			Category: category,
		})
		seen[name] = struct{}{}

		if len(attractions) >= limit {
			break
		}
	}

	return attractions
}

func elementName(tags map[string]string) string {
	for _, key := range []string{"name", "name:en", "name:en-GB"} {
		if name := tags[key]; name != "" {
			return name
		}
	}
	return ""
}
