package geocode_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/geocode"
)

func TestForward(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path: got %q, want /search", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("apiKey") != "test-key" {
			t.Errorf("apiKey: got %q", q.Get("apiKey"))
		}
		if q.Get("text") != "123 Main St, Columbia, MO" {
			t.Errorf("text: got %q", q.Get("text"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"features":[{"geometry":{"coordinates":[-92.33,38.95]}}]}`))
	}))
	defer srv.Close()

	c := geocode.New(srv.URL, "test-key")
	pt, err := c.Forward(context.Background(), "123 Main St", "Columbia", "MO")
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}
	if pt.Latitude != 38.95 || pt.Longitude != -92.33 {
		t.Errorf("point: got %+v", pt)
	}
}

func TestForward_NoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"features":[]}`))
	}))
	defer srv.Close()

	c := geocode.New(srv.URL, "test-key")
	_, err := c.Forward(context.Background(), "nowhere", "", "")
	if !errors.Is(err, geocode.ErrNotFound) {
		t.Errorf("error: got %v, want ErrNotFound", err)
	}
}

func TestForward_Disabled(t *testing.T) {
	c := geocode.New("https://example.test", "")
	_, err := c.Forward(context.Background(), "123 Main St", "Columbia", "MO")
	if !errors.Is(err, geocode.ErrDisabled) {
		t.Errorf("error: got %v, want ErrDisabled", err)
	}
}

func TestForward_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := geocode.New(srv.URL, "test-key")
	if _, err := c.Forward(context.Background(), "123 Main St", "Columbia", "MO"); err == nil {
		t.Error("expected error for non-200 provider response")
	}
}
