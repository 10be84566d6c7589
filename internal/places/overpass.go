/*
Package places finds medical facilities near a point through the Overpass
API over OpenStreetMap data.
*/
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	requestTimeout = 25 * time.Second

	// unnamedFacility labels elements the source has no name tag for.
	unnamedFacility = "Unknown Hospital"
)

// Facility is a nearby medical location.
type Facility struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// overpassResponse is the subset of the Overpass payload we consume.
// Ways and relations carry their coordinates under "center" (requested via
// `out center`); nodes carry them directly.
type overpassResponse struct {
	Elements []struct {
		Lat    *float64 `json:"lat"`
		Lon    *float64 `json:"lon"`
		Center *struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"center"`
		Tags map[string]string `json:"tags"`
	} `json:"elements"`
}

// Finder queries an Overpass endpoint for hospitals around a point.
type Finder struct {
	baseURL string
	client  *http.Client
}

func NewFinder(baseURL string) *Finder {
	return &Finder{
		baseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// hospitalQuery builds the Overpass QL statement: hospital-tagged nodes,
// ways and relations within radius meters of the point, with center points
// for extended geometries.
func hospitalQuery(lat, lon float64, radiusMeters int) string {
	return fmt.Sprintf(`[out:json][timeout:25];
(
  node["amenity"="hospital"](around:%d,%f,%f);
  way["amenity"="hospital"](around:%d,%f,%f);
  relation["amenity"="hospital"](around:%d,%f,%f);
);
out center;`, radiusMeters, lat, lon, radiusMeters, lat, lon, radiusMeters, lat, lon)
}

// Nearby returns the facilities within radiusMeters of the point, possibly
// empty. Elements with no resolvable coordinate are dropped. Transport and
// decode failures return an error so callers can tell "zero hospitals" from
// "lookup failed".
func (f *Finder) Nearby(ctx context.Context, lat, lon float64, radiusMeters int) ([]Facility, error) {
	params := url.Values{}
	params.Set("data", hospitalQuery(lat, lon, radiusMeters))

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, f.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build overpass request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass API returned status %s", resp.Status)
	}

	var payload overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode overpass response: %w", err)
	}

	facilities := make([]Facility, 0, len(payload.Elements))
	for _, e := range payload.Elements {
		name := e.Tags["name"]
		if name == "" {
			name = unnamedFacility
		}

		eLat, eLon := e.Lat, e.Lon
		if (eLat == nil || eLon == nil) && e.Center != nil {
			eLat, eLon = &e.Center.Lat, &e.Center.Lon
		}
		if eLat == nil || eLon == nil {
			continue
		}

		facilities = append(facilities, Facility{Name: name, Latitude: *eLat, Longitude: *eLon})
	}

	log.Info().Int("count", len(facilities)).Float64("lat", lat).Float64("lon", lon).
		Msg("hospitals found nearby")
	return facilities, nil
}
