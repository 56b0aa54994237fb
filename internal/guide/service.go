// Package guide orchestrates place verification, facet fan-out, and the
// rendering of the final answer.
package guide

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"tourguide/internal/config"
	"tourguide/internal/intent"
	"tourguide/internal/llm"
	"tourguide/internal/place"
	"tourguide/internal/providers/openmeteo"
	"tourguide/internal/providers/overpass"
	"tourguide/internal/types"
)

// ErrExtractorUnavailable is returned by the free-text path when no language
// model is configured
var ErrExtractorUnavailable = errors.New("free-text queries require a configured OpenAI API key")

// MsgUnknownPlace is the fallback reply for a place that failed verification.
// Callers surfacing verification failures directly should reuse it.
const MsgUnknownPlace = "I don't know this place exists."

const msgNoPlaceInText = "I couldn't identify a place name in your message. Please specify a location."

// WeatherProvider returns current conditions for coordinates. A nil response
// with a nil error means the provider had no data.
type WeatherProvider interface {
	Current(ctx context.Context, latitude, longitude float64) (*openmeteo.CurrentWeatherAPIResponse, error)
}

// AttractionsProvider returns nearby points of interest, deduplicated by
// name and truncated to limit
type AttractionsProvider interface {
	Attractions(ctx context.Context, latitude, longitude float64, limit int) ([]types.Attraction, error)
}

// Verifier decides whether a queried place exists
type Verifier interface {
	Verify(ctx context.Context, placeName string, strict bool) types.VerificationOutcome
}

// Result is the rendered answer for one query
type Result struct {
	Response string
	// Place is the verified (or, for failed verifications, the rejected
	// candidate) place, nil when the geocoder found nothing
	Place *types.PlaceRecord
	// Verified reports whether the place passed verification; when false,
	// Response is a notice rather than data
	Verified bool
}

// Service answers place queries. One Service is safe for concurrent use;
// all per-query state lives on the stack of the call.
type Service struct {
	verifier  Verifier
	weather   WeatherProvider
	places    AttractionsProvider
	extractor llm.Extractor
	cfg       *config.Config
	logger    *slog.Logger
}

// NewService creates a guide service with real provider clients. The
// extractor is optional: with a nil extractor only the structured entry
// points are available.
func NewService(cfg *config.Config, logger *slog.Logger) *Service {
	var extractor llm.Extractor
	if cfg.OpenAI.APIKey != "" {
		client, err := llm.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, logger)
		if err != nil {
			logger.Warn("free-text mode disabled", "error", err)
		} else {
			extractor = client
		}
	} else {
		logger.Info("no OpenAI API key configured, free-text mode disabled")
	}

	return NewServiceWithProviders(
		place.NewVerifier(logger),
		openmeteo.NewClient(logger),
		overpass.NewClient(logger),
		extractor,
		cfg,
		logger,
	)
}

// NewServiceWithProviders creates a guide service with custom collaborators.
// This is useful for testing with mock providers.
func NewServiceWithProviders(
	verifier Verifier,
	weather WeatherProvider,
	places AttractionsProvider,
	extractor llm.Extractor,
	cfg *config.Config,
	logger *slog.Logger,
) *Service {
	return &Service{
		verifier:  verifier,
		weather:   weather,
		places:    places,
		extractor: extractor,
		cfg:       cfg,
		logger:    logger.With("component", "guide-service"),
	}
}

// FreeTextEnabled reports whether the free-text entry point is usable
func (s *Service) FreeTextEnabled() bool {
	return s.extractor != nil
}

// Verify is the verification-only entry point for pre-flight display
func (s *Service) Verify(ctx context.Context, placeName string) types.VerificationOutcome {
	return s.verifier.Verify(ctx, placeName, true)
}

// Ask is the structured entry point: verify the place strictly, then answer
// the requested facets
func (s *Service) Ask(ctx context.Context, placeName string, facets types.Facets) *Result {
	outcome := s.verifier.Verify(ctx, placeName, true)
	if outcome.Status != types.VerificationVerified {
		return &Result{
			Response: s.unknownPlaceReply(ctx, placeName),
			Place:    outcome.Place,
		}
	}

	return &Result{
		Response: s.Answer(ctx, outcome.Place, facets),
		Place:    outcome.Place,
		Verified: true,
	}
}

// AskFreeText is the free-text entry point: extract a candidate place name,
// verify it, classify the intent, and answer
func (s *Service) AskFreeText(ctx context.Context, text string) (*Result, error) {
	if s.extractor == nil {
		return nil, ErrExtractorUnavailable
	}

	placeName, err := s.extractor.ExtractPlace(ctx, text)
	if err != nil {
		s.logger.Error("place extraction failed", "error", err)
		return &Result{Response: msgNoPlaceInText}, nil
	}
	if placeName == "" {
		return &Result{Response: msgNoPlaceInText}, nil
	}

	outcome := s.verifier.Verify(ctx, placeName, true)
	if outcome.Status != types.VerificationVerified {
		return &Result{
			Response: s.unknownPlaceReply(ctx, placeName),
			Place:    outcome.Place,
		}, nil
	}

	facets := intent.Classify(text)

	return &Result{
		Response: s.Answer(ctx, outcome.Place, facets),
		Place:    outcome.Place,
		Verified: true,
	}, nil
}

// Answer fetches every requested facet and merges the pieces into one
// response. It must only be called with a verified place.
//
// The two provider calls are independent and run concurrently; a failure on
// one never aborts the other. The merge is keyed by facet identity, not call
// completion order: the weather piece always precedes the places piece.
func (s *Service) Answer(ctx context.Context, rec *types.PlaceRecord, facets types.Facets) string {
	var (
		wg          sync.WaitGroup
		snapshot    *types.WeatherSnapshot
		weatherErr  error
		attractions []types.Attraction
		placesErr   error
	)

	if facets.Weather {
		wg.Add(1)
		go func() {
			defer wg.Done()
			snapshot, weatherErr = s.fetchWeather(ctx, rec)
		}()
	}

	if facets.Places {
		wg.Add(1)
		go func() {
			defer wg.Done()
			attractions, placesErr = s.places.Attractions(ctx,
				rec.Coordinates.Latitude, rec.Coordinates.Longitude, s.cfg.App.AttractionLimit)
			if placesErr != nil {
				s.logger.Error("attractions lookup failed",
					"place", rec.Query,
					"error", placesErr,
				)
			}
		}()
	}

	wg.Wait()

	weatherOK := facets.Weather && weatherErr == nil && snapshot != nil
	placesOK := facets.Places && placesErr == nil

	var parts []string

	if facets.Weather {
		if weatherOK {
			parts = append(parts, renderWeather(rec.Query, *snapshot))
		} else {
			parts = append(parts, fmt.Sprintf("Could not retrieve weather information for %s.", rec.Query))
		}
	}

	if facets.Places {
		if placesOK {
			rendered := renderAttractions(rec.Query, attractions)
			if weatherOK {
				rendered = withConnective(rendered)
			}
			parts = append(parts, rendered)
		} else {
			parts = append(parts, fmt.Sprintf("Could not retrieve tourist attractions for %s.", rec.Query))
		}
	}

	// Nothing retrievable at all: one generic sentence instead of two
	// stacked failure notices
	if len(parts) == 0 || (facets.Weather && facets.Places && !weatherOK && !placesOK) {
		return fmt.Sprintf("Could not retrieve information for %s. Please try again.", rec.Query)
	}

	return strings.Join(parts, " ")
}

func (s *Service) fetchWeather(ctx context.Context, rec *types.PlaceRecord) (*types.WeatherSnapshot, error) {
	resp, err := s.weather.Current(ctx, rec.Coordinates.Latitude, rec.Coordinates.Longitude)
	if err != nil {
		s.logger.Error("weather lookup failed",
			"place", rec.Query,
			"error", err,
		)
		return nil, err
	}
	if resp == nil || resp.Current == nil {
		return nil, nil
	}

	snapshot := types.NewWeatherSnapshot(
		resp.Current.Temperature2m,
		resp.CurrentUnits.Temperature2m,
		resp.Current.PrecipitationProbability,
	)
	return &snapshot, nil
}

// unknownPlaceReply phrases the "place does not exist" notice, preferring a
// model-generated reply when an extractor is configured
func (s *Service) unknownPlaceReply(ctx context.Context, placeName string) string {
	if s.extractor == nil {
		return MsgUnknownPlace
	}

	reply, err := s.extractor.UnknownPlaceReply(ctx, placeName)
	if err != nil || reply == "" {
		s.logger.Debug("falling back to fixed unknown-place reply", "error", err)
		return MsgUnknownPlace
	}
	return reply
}
