/*
Package config loads the application's runtime configuration from the
process environment. A local .env file is picked up automatically in
development via godotenv's autoload import.
*/
package config

import (
	"fmt"
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	defaultPort         = 8080
	defaultGeminiModel  = "gemini-2.5-flash"
	defaultOverpassURL  = "https://overpass-api.de/api/interpreter"
	defaultGeocodeURL   = "https://maps.googleapis.com/maps/api/geocode/json"
	defaultSearchRadius = 8000
	defaultUserDataFile = "user_data.csv"
	defaultDiseaseFile  = "disease.csv"
	defaultStaticDir    = "web/public"
	defaultTemplateGlob = "web/templates/*.html"
)

// Config holds everything the server needs at startup.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port int

	// GoogleAPIKey authenticates requests to the Google Geocoding API.
	// Required: startup fails without it.
	GoogleAPIKey string

	// GeminiAPIKey authenticates the LLM provider. Required.
	GeminiAPIKey string

	// GeminiModel selects the generation model.
	GeminiModel string

	// GeocodeURL and OverpassURL point at the external lookup providers.
	// Overridable so tests can aim the clients at local mocks.
	GeocodeURL  string
	OverpassURL string

	// SearchRadiusMeters bounds the hospital search around a geocoded point.
	SearchRadiusMeters int

	// UserDataFile is the append-only CSV profile record.
	UserDataFile string

	// DiseaseFile is the disease catalog source, re-read on every request.
	DiseaseFile string

	// StaticDir is served at /static and receives the rendered map artifact.
	StaticDir string

	// TemplateGlob locates the page templates.
	TemplateGlob string
}

// Load reads the environment and returns a validated Config.
// Missing provider credentials are a fatal configuration error here rather
// than a per-request failure later.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               defaultPort,
		GoogleAPIKey:       os.Getenv("GOOGLE_API_KEY"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        envOr("GEMINI_MODEL", defaultGeminiModel),
		GeocodeURL:         envOr("GEOCODE_URL", defaultGeocodeURL),
		OverpassURL:        envOr("OVERPASS_URL", defaultOverpassURL),
		SearchRadiusMeters: defaultSearchRadius,
		UserDataFile:       envOr("USER_DATA_FILE", defaultUserDataFile),
		DiseaseFile:        envOr("DISEASE_FILE", defaultDiseaseFile),
		StaticDir:          envOr("STATIC_DIR", defaultStaticDir),
		TemplateGlob:       envOr("TEMPLATE_GLOB", defaultTemplateGlob),
	}

	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil && port != 0 {
		cfg.Port = port
	}
	if radius, err := strconv.Atoi(os.Getenv("SEARCH_RADIUS_METERS")); err == nil && radius > 0 {
		cfg.SearchRadiusMeters = radius
	}

	if cfg.GoogleAPIKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY is not set")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
