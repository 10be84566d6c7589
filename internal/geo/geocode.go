/*
Package geo resolves postal codes to geographic coordinates through the
Google Geocoding API.
*/
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

const requestTimeout = 10 * time.Second

// ErrNotFound reports that the provider had no match for the address.
// It is distinct from transport or decode failures, which are returned as
// ordinary wrapped errors, so callers can tell "no such place" from
// "service unreachable".
var ErrNotFound = errors.New("location not found")

// Coordinates is a WGS 84 latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// geocodeResponse mirrors the subset of the provider payload we consume.
type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location Coordinates `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocoder issues single bounded-timeout lookups against the geocoding API.
type Geocoder struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewGeocoder constructs a Geocoder. A missing API key is a configuration
// error surfaced here, at startup, not per request.
func NewGeocoder(baseURL, apiKey string) (*Geocoder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("geocoding API key is not set")
	}
	return &Geocoder{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: requestTimeout},
	}, nil
}

// Resolve turns a (postal code, country) pair into coordinates. The two
// inputs are combined into one address string and sent in a single request.
// Success requires an OK provider status and at least one result; a clean
// no-match returns ErrNotFound.
func (g *Geocoder) Resolve(ctx context.Context, postalCode, country string) (Coordinates, error) {
	address := fmt.Sprintf("%s, %s", postalCode, country)

	params := url.Values{}
	params.Set("address", address)
	params.Set("key", g.apiKey)

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Coordinates{}, fmt.Errorf("build geocode request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Coordinates{}, fmt.Errorf("geocode API returned status %s", resp.Status)
	}

	var payload geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Coordinates{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if payload.Status != "OK" || len(payload.Results) == 0 {
		log.Info().Str("address", address).Str("status", payload.Status).Msg("geocoder found no match")
		return Coordinates{}, ErrNotFound
	}

	loc := payload.Results[0].Geometry.Location
	log.Info().Str("address", address).Float64("lat", loc.Latitude).Float64("lon", loc.Longitude).
		Msg("coordinates resolved")
	return loc, nil
}
