/*
Package mapview renders the hospital map artifact: a self-contained Leaflet
document with the user's location and one marker per facility.
*/
package mapview

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"wellnav/internal/geo"
	"wellnav/internal/places"
)

// ArtifactName is the fixed, well-known file name of the rendered map.
// A new search overwrites the previous artifact; at most one exists.
const ArtifactName = "hospitals_near_me.html"

var mapTemplate = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Hospitals near {{.Label}}</title>
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>html, body, #map { height: 100%; margin: 0; }</style>
</head>
<body>
<div id="map"></div>
<script>
const center = {{.Center}};
const facilities = {{.Facilities}};

const map = L.map("map").setView([center.lat, center.lng], 13);
L.tileLayer("https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png", {
  attribution: "&copy; OpenStreetMap contributors &copy; CARTO"
}).addTo(map);

const homeIcon = L.divIcon({ className: "home-marker", html: "\u{1F3E0}", iconSize: [24, 24] });
const medicalIcon = L.divIcon({ className: "medical-marker", html: "➕", iconSize: [24, 24] });

L.marker([center.lat, center.lng], { icon: homeIcon })
  .addTo(map)
  .bindPopup({{.Label}} + "\n(You are here)");

for (const f of facilities) {
  L.marker([f.lat, f.lon], { icon: medicalIcon }).addTo(map).bindPopup(f.name);
}
</script>
</body>
</html>
`))

type mapData struct {
	Label      string
	Center     geo.Coordinates
	Facilities []places.Facility
}

// Renderer writes map artifacts into a served directory.
type Renderer struct {
	outputDir string
}

func NewRenderer(outputDir string) *Renderer {
	return &Renderer{outputDir: outputDir}
}

// Render writes the map document for center and facilities, labeled with the
// searched location, and returns the artifact path. The document is written
// to a temp file and renamed into place so a concurrent reader never sees a
// partial artifact; repeated calls overwrite the same path.
func (r *Renderer) Render(center geo.Coordinates, facilities []places.Facility, label string) (string, error) {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create map output dir: %w", err)
	}

	if facilities == nil {
		facilities = []places.Facility{}
	}

	tmp, err := os.CreateTemp(r.outputDir, "map-*.html")
	if err != nil {
		return "", fmt.Errorf("create map temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	data := mapData{Label: label, Center: center, Facilities: facilities}
	if err := mapTemplate.Execute(tmp, data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("render map template: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close map temp file: %w", err)
	}

	path := filepath.Join(r.outputDir, ArtifactName)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("publish map artifact: %w", err)
	}

	log.Info().Str("path", path).Int("facilities", len(facilities)).Msg("map artifact written")
	return path, nil
}
