package place

import (
	"context"
	"log/slog"
	"strings"

	"tourguide/internal/providers/nominatim"
	"tourguide/internal/types"
)

// Acceptance policy constants. A strict verification rejects minor
// settlements below the importance floor and any low-confidence match.
const (
	minImportance = 0.3
)

var minorFeatureTypes = map[string]struct{}{
	"hamlet":   {},
	"village":  {},
	"locality": {},
}

// Geocoder resolves a free-text name to its single best match. A nil
// response with a nil error means no match.
type Geocoder interface {
	Search(ctx context.Context, placeName string) (*nominatim.PlaceAPIResponse, error)
}

// Verifier is the single gatekeeper deciding whether a queried place exists
// and is significant enough to answer tourism queries about
type Verifier struct {
	geocoder Geocoder
	logger   *slog.Logger
}

// NewVerifier creates a verifier backed by the real Nominatim client
func NewVerifier(logger *slog.Logger) *Verifier {
	return NewVerifierWithGeocoder(nominatim.NewClient(logger), logger)
}

// NewVerifierWithGeocoder creates a verifier with a custom geocoder.
// This is useful for testing with mock providers.
func NewVerifierWithGeocoder(geocoder Geocoder, logger *slog.Logger) *Verifier {
	return &Verifier{
		geocoder: geocoder,
		logger:   logger.With("component", "place-verifier"),
	}
}

// Verify resolves placeName and applies the acceptance policy. Geocoder
// failures are indistinguishable from "no match" at this layer and both
// surface as NotFound.
func (v *Verifier) Verify(ctx context.Context, placeName string, strict bool) types.VerificationOutcome {
	resp, err := v.geocoder.Search(ctx, placeName)
	if err != nil {
		v.logger.Error("geocoder lookup failed",
			"place", placeName,
			"error", err,
		)
		return types.NotFound()
	}
	if resp == nil {
		v.logger.Debug("place not found", "place", placeName)
		return types.NotFound()
	}

	record := buildRecord(placeName, resp)

	if strict {
		// Reject geographically tiny matches a tourist query should not
		// surface, and anything that barely resembles the queried name
		if _, minor := minorFeatureTypes[strings.ToLower(record.FeatureType)]; minor && record.Importance < minImportance {
			v.logger.Debug("rejecting minor settlement",
				"place", placeName,
				"type", record.FeatureType,
				"importance", record.Importance,
			)
			return types.LowConfidence(record)
		}
		if record.MatchConfidence == types.ConfidenceLow {
			v.logger.Debug("rejecting low-confidence match",
				"place", placeName,
				"found", record.DisplayName,
			)
			return types.LowConfidence(record)
		}
	}

	return types.Verified(record)
}

// buildRecord translates a raw geocoder response into the immutable
// per-query place record
func buildRecord(query string, resp *nominatim.PlaceAPIResponse) *types.PlaceRecord {
	query = strings.TrimSpace(query)

	name := resp.Name
	if name == "" {
		name = query
	}
	displayName := resp.DisplayName
	if displayName == "" {
		displayName = query
	}
	featureType := resp.Type
	if featureType == "" {
		featureType = "unknown"
	}

	lat, lon := resp.Coordinates()

	return &types.PlaceRecord{
		Query:           query,
		Name:            name,
		DisplayName:     displayName,
		FeatureType:     featureType,
		Coordinates:     types.NewCoords(lat, lon),
		Country:         resp.Address.Country,
		State:           resp.Address.State,
		City:            resp.Address.City,
		Importance:      resp.Importance,
		MatchConfidence: matchConfidence(query, name),
	}
}

// matchConfidence grades textual similarity between the normalized query and
// the normalized resolved name. Pure function, fully deterministic.
func matchConfidence(query, foundName string) types.MatchConfidence {
	found := strings.ToLower(foundName)
	q := strings.ToLower(strings.TrimSpace(query))

	if found == q || strings.Contains(found, q) {
		return types.ConfidenceHigh
	}

	// Partial match, e.g. "Valhalla" against "Valhalla, NY"
	for _, token := range strings.Fields(q) {
		if strings.Contains(found, token) {
			return types.ConfidenceMedium
		}
	}

	return types.ConfidenceLow
}
