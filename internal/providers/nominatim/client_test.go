package nominatim

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(slog.Default())
	c.baseURL = srv.URL
	return c
}

func TestClient_Search(t *testing.T) {
	body := `[{
		"place_id": 298385927,
		"lat": "12.9767936",
		"lon": "77.590082",
		"class": "place",
		"type": "city",
		"importance": 0.89,
		"name": "Bengaluru",
		"display_name": "Bengaluru, Karnataka, India",
		"address": {"state": "Karnataka", "country": "India", "country_code": "in"}
	}]`

	var gotUserAgent string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		if got := r.URL.Query().Get("q"); got != "Bangalore" {
			t.Errorf("q = %q, want %q", got, "Bangalore")
		}
		if got := r.URL.Query().Get("limit"); got != "1" {
			t.Errorf("limit = %q, want %q", got, "1")
		}
		if got := r.URL.Query().Get("addressdetails"); got != "1" {
			t.Errorf("addressdetails = %q, want %q", got, "1")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})

	resp, err := c.Search(context.Background(), "Bangalore")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if resp == nil {
		t.Fatal("Search() returned nil response")
	}
	if gotUserAgent != userAgent {
		t.Errorf("User-Agent = %q, want %q", gotUserAgent, userAgent)
	}
	if resp.Name != "Bengaluru" {
		t.Errorf("Name = %q, want %q", resp.Name, "Bengaluru")
	}
	if resp.Type != "city" {
		t.Errorf("Type = %q, want %q", resp.Type, "city")
	}
	if resp.Importance != 0.89 {
		t.Errorf("Importance = %v, want %v", resp.Importance, 0.89)
	}

	lat, lon := resp.Coordinates()
	if lat != 12.9767936 || lon != 77.590082 {
		t.Errorf("Coordinates() = (%v, %v), want (12.9767936, 77.590082)", lat, lon)
	}
}

func TestClient_Search_NoMatch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	resp, err := c.Search(context.Background(), "Xyzzystan")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if resp != nil {
		t.Errorf("Search() = %+v, want nil for an empty result set", resp)
	}
}

func TestClient_Search_ServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	})

	if _, err := c.Search(context.Background(), "Bangalore"); err == nil {
		t.Fatal("Search() error = nil, want non-nil for a 503 response")
	}
}

func TestPlaceAPIResponse_Coordinates_Unparseable(t *testing.T) {
	r := &PlaceAPIResponse{Lat: "not-a-number", Lon: "77.5"}
	lat, lon := r.Coordinates()
	if lat != 0 {
		t.Errorf("lat = %v, want 0 for unparseable input", lat)
	}
	if lon != 77.5 {
		t.Errorf("lon = %v, want 77.5", lon)
	}
}
