package gmaps_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"guide_paris/internal/adapters/gmaps"
	"guide_paris/internal/domain"
)

func TestNew_RequiresKey(t *testing.T) {
	if _, err := gmaps.New("http://example", "", 5); err == nil {
		t.Fatalf("expected error for empty key")
	}
}

func TestClient_Geocode_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/geocode/json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing key")
		}
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			w.WriteHeader(503)
		default:
			_ = json.NewEncoder(w).Encode(map[string]any{
				"status": "OK",
				"results": []any{map[string]any{
					"geometry": map[string]any{"location": map[string]any{"lat": 48.8557, "lng": 2.3167}},
				}},
			})
		}
	}))
	defer ts.Close()

	cl, err := gmaps.New(ts.URL, "test-key", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	got, err := cl.Geocode(ctx, "84 Rue de Varenne, 75007 Paris")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Lat != 48.8557 || got.Lng != 2.3167 {
		t.Fatalf("unexpected coords: %+v", got)
	}
	if atomic.LoadInt32(&hits) < 3 {
		t.Fatalf("expected at least 3 calls due to retries, got %d", hits)
	}
}

func TestClient_Geocode_ZeroResultsIsUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "ZERO_RESULTS", "results": []any{}})
	}))
	defer ts.Close()

	cl, _ := gmaps.New(ts.URL, "test-key", 100)
	_, err := cl.Geocode(context.Background(), "nowhere")
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestClient_Geocode_Denied(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "REQUEST_DENIED", "error_message": "bad key"})
	}))
	defer ts.Close()

	cl, _ := gmaps.New(ts.URL, "test-key", 100)
	_, err := cl.Geocode(context.Background(), "x")
	if !errors.Is(err, gmaps.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("denied must not look like a miss")
	}
}

func TestClient_Photos(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/place/findplacefromtext/json":
			if r.URL.Query().Get("input") != "Septime, 80 Rue de Charonne" {
				t.Errorf("unexpected input %q", r.URL.Query().Get("input"))
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"status": "OK",
				"candidates": []any{map[string]any{
					"place_id": "abc",
					"photos":   []any{map[string]any{"photo_reference": "p0"}},
				}},
			})
		case "/place/details/json":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"status": "OK",
				"result": map[string]any{"photos": []any{
					map[string]any{"photo_reference": "p1"},
					map[string]any{"photo_reference": "p2"},
					map[string]any{"photo_reference": "p3"},
				}},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	cl, _ := gmaps.New(ts.URL, "test-key", 100)
	got, err := cl.Photos(context.Background(), "Septime, 80 Rue de Charonne", 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 || got[0] != "p1" || got[1] != "p2" {
		t.Fatalf("expected references [p1 p2], got %v", got)
	}
	for _, ref := range got {
		if strings.Contains(ref, "test-key") {
			t.Fatalf("reference carries the API key: %s", ref)
		}
	}
}

func TestClient_OpenPhoto(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/place/photo" || r.URL.Query().Get("key") != "test-key" {
			t.Errorf("unexpected request %s", r.URL.String())
		}
		switch r.URL.Query().Get("photo_reference") {
		case "p1":
			w.Header().Set("Content-Type", "image/jpeg")
			_, _ = w.Write([]byte("jpeg-bytes"))
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	defer ts.Close()

	cl, _ := gmaps.New(ts.URL, "test-key", 100)
	body, ct, err := cl.OpenPhoto(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer body.Close()
	b, _ := io.ReadAll(body)
	if ct != "image/jpeg" || string(b) != "jpeg-bytes" {
		t.Fatalf("unexpected photo %q %q", ct, b)
	}

	if _, _, err := cl.OpenPhoto(context.Background(), "stale"); !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestClient_TransportErrorsHideKey(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	base := ts.URL
	ts.Close()

	cl, _ := gmaps.New(base, "test-key", 100)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := cl.Geocode(ctx, "84 Rue de Varenne")
	if err == nil {
		t.Fatalf("expected a transport error")
	}
	if strings.Contains(err.Error(), "test-key") {
		t.Fatalf("error leaks the API key: %v", err)
	}
}

func TestClient_Photos_404IsUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl, _ := gmaps.New(ts.URL, "test-key", 100)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := cl.Photos(ctx, "Double", 5)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
