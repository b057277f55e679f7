// Package geocode is a thin client for the external forward-geocoding API.
//
// Church create/update calls Forward best-effort: a failed or unresolvable
// lookup logs a warning and leaves the listing without coordinates; it never
// fails the request.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound is returned when the provider has no match for the address.
var ErrNotFound = errors.New("geocode: no match for address")

// Point is a WGS84 coordinate pair.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Client calls the geocoding provider. A zero APIKey disables the client:
// Forward then returns ErrDisabled immediately.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// ErrDisabled is returned when no API key is configured.
var ErrDisabled = errors.New("geocode: no API key configured")

// New builds a Client for the given provider endpoint.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// response mirrors the provider's GeoJSON-style payload.
type response struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"` // [lon, lat]
		} `json:"geometry"`
	} `json:"features"`
}

// Forward resolves street address components to a coordinate pair.
func (c *Client) Forward(ctx context.Context, address, city, state string) (Point, error) {
	if c.apiKey == "" {
		return Point{}, ErrDisabled
	}

	q := url.Values{}
	q.Set("text", strings.Join([]string{address, city, state}, ", "))
	q.Set("limit", "1")
	q.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return Point{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Point{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Point{}, fmt.Errorf("geocode: provider returned %d", resp.StatusCode)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Point{}, fmt.Errorf("geocode: decoding response: %w", err)
	}
	if len(body.Features) == 0 || len(body.Features[0].Geometry.Coordinates) < 2 {
		return Point{}, ErrNotFound
	}

	coords := body.Features[0].Geometry.Coordinates
	return Point{Latitude: coords[1], Longitude: coords[0]}, nil
}
