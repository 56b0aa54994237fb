package guide

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"tourguide/internal/config"
	"tourguide/internal/llm"
	"tourguide/internal/providers/openmeteo"
	"tourguide/internal/types"
)

// Mock collaborators for testing

type mockVerifier struct {
	outcome types.VerificationOutcome
}

func (m *mockVerifier) Verify(ctx context.Context, placeName string, strict bool) types.VerificationOutcome {
	return m.outcome
}

type mockWeatherProvider struct {
	response *openmeteo.CurrentWeatherAPIResponse
	err      error
}

func (m *mockWeatherProvider) Current(ctx context.Context, latitude, longitude float64) (*openmeteo.CurrentWeatherAPIResponse, error) {
	return m.response, m.err
}

type mockAttractionsProvider struct {
	attractions []types.Attraction
	err         error
	gotLimit    int
}

func (m *mockAttractionsProvider) Attractions(ctx context.Context, latitude, longitude float64, limit int) ([]types.Attraction, error) {
	m.gotLimit = limit
	return m.attractions, m.err
}

type mockExtractor struct {
	place      string
	extractErr error
	reply      string
	replyErr   error
}

func (m *mockExtractor) ExtractPlace(ctx context.Context, text string) (string, error) {
	return m.place, m.extractErr
}

func (m *mockExtractor) UnknownPlaceReply(ctx context.Context, placeName string) (string, error) {
	return m.reply, m.replyErr
}

func weatherResponse(temp float64, precip int) *openmeteo.CurrentWeatherAPIResponse {
	resp := &openmeteo.CurrentWeatherAPIResponse{}
	resp.CurrentUnits.Temperature2m = "°C"
	resp.Current = &struct {
		Time                     string  `json:"time"`
		Temperature2m            float64 `json:"temperature_2m"`
		PrecipitationProbability int     `json:"precipitation_probability"`
	}{
		Temperature2m:            temp,
		PrecipitationProbability: precip,
	}
	return resp
}

func bangalore() *types.PlaceRecord {
	return &types.PlaceRecord{
		Query:           "Bangalore",
		Name:            "Bangalore",
		DisplayName:     "Bangalore, Karnataka, India",
		FeatureType:     "city",
		Coordinates:     types.NewCoords(12.9767936, 77.590082),
		Country:         "India",
		Importance:      0.9,
		MatchConfidence: types.ConfidenceHigh,
	}
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{AttractionLimit: 5},
	}
}

func newTestService(verifier *mockVerifier, weather *mockWeatherProvider, places *mockAttractionsProvider, extractor *mockExtractor) *Service {
	// assign through the interface type so a nil mock stays a nil interface
	var ext llm.Extractor
	if extractor != nil {
		ext = extractor
	}
	return NewServiceWithProviders(verifier, weather, places, ext, testConfig(), slog.Default())
}

func TestService_Answer(t *testing.T) {
	tests := []struct {
		name     string
		facets   types.Facets
		weather  *mockWeatherProvider
		places   *mockAttractionsProvider
		expected string
	}{
		{
			name:    "both facets succeed, weather first then connective list",
			facets:  types.Facets{Weather: true, Places: true},
			weather: &mockWeatherProvider{response: weatherResponse(24, 10)},
			places: &mockAttractionsProvider{attractions: []types.Attraction{
				{Name: "Lalbagh", Category: "garden"},
				{Name: "Cubbon Park", Category: "park"},
			}},
			expected: "In Bangalore it's currently 24°C with a chance of 10% to rain. " +
				"And these are the places you can go: - - - - -\nLalbagh\nCubbon Park",
		},
		{
			name:     "places only with empty provider result",
			facets:   types.Facets{Places: true},
			weather:  &mockWeatherProvider{},
			places:   &mockAttractionsProvider{attractions: []types.Attraction{}},
			expected: "In Bangalore these are the places you can go, - - - - -\n(No tourist attractions found in the database)",
		},
		{
			name:     "weather only with provider failure",
			facets:   types.Facets{Weather: true},
			weather:  &mockWeatherProvider{err: errors.New("timeout")},
			places:   &mockAttractionsProvider{},
			expected: "Could not retrieve weather information for Bangalore.",
		},
		{
			name:     "weather only with no data is also a facet failure",
			facets:   types.Facets{Weather: true},
			weather:  &mockWeatherProvider{response: nil},
			places:   &mockAttractionsProvider{},
			expected: "Could not retrieve weather information for Bangalore.",
		},
		{
			name:    "weather fails but places keeps its own lead-in",
			facets:  types.Facets{Weather: true, Places: true},
			weather: &mockWeatherProvider{err: errors.New("timeout")},
			places: &mockAttractionsProvider{attractions: []types.Attraction{
				{Name: "Lalbagh", Category: "garden"},
			}},
			expected: "Could not retrieve weather information for Bangalore. " +
				"In Bangalore these are the places you can go, - - - - -\nLalbagh",
		},
		{
			name:    "places fails but weather sentence survives",
			facets:  types.Facets{Weather: true, Places: true},
			weather: &mockWeatherProvider{response: weatherResponse(24, 10)},
			places:  &mockAttractionsProvider{err: errors.New("gateway timeout")},
			expected: "In Bangalore it's currently 24°C with a chance of 10% to rain. " +
				"Could not retrieve tourist attractions for Bangalore.",
		},
		{
			name:     "both facets fail collapses to the generic sentence",
			facets:   types.Facets{Weather: true, Places: true},
			weather:  &mockWeatherProvider{err: errors.New("timeout")},
			places:   &mockAttractionsProvider{err: errors.New("timeout")},
			expected: "Could not retrieve information for Bangalore. Please try again.",
		},
		{
			name:     "empty facet set yields the generic sentence",
			facets:   types.Facets{},
			weather:  &mockWeatherProvider{},
			places:   &mockAttractionsProvider{},
			expected: "Could not retrieve information for Bangalore. Please try again.",
		},
		{
			name:    "empty attraction list with weather keeps the connective block",
			facets:  types.Facets{Weather: true, Places: true},
			weather: &mockWeatherProvider{response: weatherResponse(24, 10)},
			places:  &mockAttractionsProvider{attractions: nil},
			expected: "In Bangalore it's currently 24°C with a chance of 10% to rain. " +
				"And these are the places you can go: - - - - -\n(No tourist attractions found in the database)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(&mockVerifier{}, tt.weather, tt.places, nil)

			got := s.Answer(context.Background(), bangalore(), tt.facets)
			if got != tt.expected {
				t.Errorf("Answer() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// The weather sentence must come before the places block whenever both
// succeed, and the places block must not repeat its own lead-in.
func TestService_Answer_MergeOrder(t *testing.T) {
	s := newTestService(
		&mockVerifier{},
		&mockWeatherProvider{response: weatherResponse(24, 10)},
		&mockAttractionsProvider{attractions: []types.Attraction{{Name: "Lalbagh"}}},
		nil,
	)

	got := s.Answer(context.Background(), bangalore(), types.Facets{Weather: true, Places: true})

	weatherIdx := strings.Index(got, "it's currently")
	placesIdx := strings.Index(got, "places you can go")
	if weatherIdx < 0 || placesIdx < 0 || weatherIdx > placesIdx {
		t.Fatalf("weather piece must precede places piece: %q", got)
	}
	if strings.Count(got, "places you can go") != 1 {
		t.Errorf("places lead-in rendered more than once: %q", got)
	}
}

func TestService_Answer_PassesConfiguredLimit(t *testing.T) {
	places := &mockAttractionsProvider{}
	s := newTestService(&mockVerifier{}, &mockWeatherProvider{}, places, nil)

	s.Answer(context.Background(), bangalore(), types.Facets{Places: true})
	if places.gotLimit != 5 {
		t.Errorf("attraction limit = %d, want 5", places.gotLimit)
	}
}

func TestService_Ask(t *testing.T) {
	t.Run("verified place answers the requested facets", func(t *testing.T) {
		s := newTestService(
			&mockVerifier{outcome: types.Verified(bangalore())},
			&mockWeatherProvider{response: weatherResponse(24, 10)},
			&mockAttractionsProvider{},
			nil,
		)

		result := s.Ask(context.Background(), "Bangalore", types.Facets{Weather: true})
		if !result.Verified {
			t.Fatal("expected a verified result")
		}
		want := "In Bangalore it's currently 24°C with a chance of 10% to rain."
		if result.Response != want {
			t.Errorf("Response = %q, want %q", result.Response, want)
		}
	})

	t.Run("unverified place yields the polite notice and no provider data", func(t *testing.T) {
		s := newTestService(
			&mockVerifier{outcome: types.NotFound()},
			&mockWeatherProvider{response: weatherResponse(24, 10)},
			&mockAttractionsProvider{},
			nil,
		)

		result := s.Ask(context.Background(), "Xyzzystan", types.Facets{Weather: true})
		if result.Verified {
			t.Fatal("expected an unverified result")
		}
		if result.Response != "I don't know this place exists." {
			t.Errorf("Response = %q", result.Response)
		}
		if result.Place != nil {
			t.Errorf("Place = %+v, want nil", result.Place)
		}
	})

	t.Run("low-confidence rejection exposes the candidate but not in the message", func(t *testing.T) {
		candidate := bangalore()
		s := newTestService(
			&mockVerifier{outcome: types.LowConfidence(candidate)},
			&mockWeatherProvider{},
			&mockAttractionsProvider{},
			nil,
		)

		result := s.Ask(context.Background(), "Bangalor", types.Facets{Places: true})
		if result.Verified {
			t.Fatal("expected an unverified result")
		}
		if result.Response != "I don't know this place exists." {
			t.Errorf("Response = %q", result.Response)
		}
		if result.Place != candidate {
			t.Error("expected the rejected candidate to be exposed on the result")
		}
	})
}

func TestService_AskFreeText(t *testing.T) {
	t.Run("extracted place is verified and answered", func(t *testing.T) {
		s := newTestService(
			&mockVerifier{outcome: types.Verified(bangalore())},
			&mockWeatherProvider{response: weatherResponse(24, 10)},
			&mockAttractionsProvider{},
			&mockExtractor{place: "Bangalore"},
		)

		result, err := s.AskFreeText(context.Background(), "what's the weather in Bangalore?")
		if err != nil {
			t.Fatalf("AskFreeText() error = %v", err)
		}
		want := "In Bangalore it's currently 24°C with a chance of 10% to rain."
		if result.Response != want {
			t.Errorf("Response = %q, want %q", result.Response, want)
		}
	})

	t.Run("no place in text", func(t *testing.T) {
		s := newTestService(
			&mockVerifier{outcome: types.Verified(bangalore())},
			&mockWeatherProvider{},
			&mockAttractionsProvider{},
			&mockExtractor{place: ""},
		)

		result, err := s.AskFreeText(context.Background(), "hello there")
		if err != nil {
			t.Fatalf("AskFreeText() error = %v", err)
		}
		if result.Response != "I couldn't identify a place name in your message. Please specify a location." {
			t.Errorf("Response = %q", result.Response)
		}
	})

	t.Run("extraction failure reads like no place found", func(t *testing.T) {
		s := newTestService(
			&mockVerifier{outcome: types.Verified(bangalore())},
			&mockWeatherProvider{},
			&mockAttractionsProvider{},
			&mockExtractor{extractErr: errors.New("rate limited")},
		)

		result, err := s.AskFreeText(context.Background(), "plan my trip")
		if err != nil {
			t.Fatalf("AskFreeText() error = %v", err)
		}
		if result.Response != "I couldn't identify a place name in your message. Please specify a location." {
			t.Errorf("Response = %q", result.Response)
		}
	})

	t.Run("unknown place prefers the model-phrased reply", func(t *testing.T) {
		s := newTestService(
			&mockVerifier{outcome: types.NotFound()},
			&mockWeatherProvider{},
			&mockAttractionsProvider{},
			&mockExtractor{place: "Xyzzystan", reply: "Sorry, Xyzzystan is not a place I know of."},
		)

		result, err := s.AskFreeText(context.Background(), "visit Xyzzystan")
		if err != nil {
			t.Fatalf("AskFreeText() error = %v", err)
		}
		if result.Response != "Sorry, Xyzzystan is not a place I know of." {
			t.Errorf("Response = %q", result.Response)
		}
	})

	t.Run("model reply failure falls back to the fixed notice", func(t *testing.T) {
		s := newTestService(
			&mockVerifier{outcome: types.NotFound()},
			&mockWeatherProvider{},
			&mockAttractionsProvider{},
			&mockExtractor{place: "Xyzzystan", replyErr: errors.New("quota exceeded")},
		)

		result, err := s.AskFreeText(context.Background(), "visit Xyzzystan")
		if err != nil {
			t.Fatalf("AskFreeText() error = %v", err)
		}
		if result.Response != "I don't know this place exists." {
			t.Errorf("Response = %q", result.Response)
		}
	})

	t.Run("no extractor configured", func(t *testing.T) {
		s := newTestService(&mockVerifier{}, &mockWeatherProvider{}, &mockAttractionsProvider{}, nil)

		if _, err := s.AskFreeText(context.Background(), "anything"); !errors.Is(err, ErrExtractorUnavailable) {
			t.Errorf("error = %v, want ErrExtractorUnavailable", err)
		}
	})
}
