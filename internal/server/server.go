/*
Package server implements the application's HTTP transport layer: the Echo
router, page rendering, and the thin handlers dispatching into the profile
store, the location pipeline, and the recommendation pipeline.
*/
package server

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"wellnav/internal/config"
	"wellnav/internal/geo"
	"wellnav/internal/places"
	"wellnav/internal/profile"
)

// Geocoder resolves a postal code and country to coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, postalCode, country string) (geo.Coordinates, error)
}

// FacilityFinder retrieves medical facilities around a point.
type FacilityFinder interface {
	Nearby(ctx context.Context, lat, lon float64, radiusMeters int) ([]places.Facility, error)
}

// MapWriter renders the hospital map artifact to the served path.
type MapWriter interface {
	Render(center geo.Coordinates, facilities []places.Facility, label string) (string, error)
}

// Advisor runs the LLM recommendation stages over a formatted profile.
type Advisor interface {
	FoodExercise(ctx context.Context, information string) (string, error)
	Routine(ctx context.Context, information string) (string, error)
	KeyFacts(ctx context.Context, information string) (string, error)
}

// Server holds the router's injected dependencies. Every collaborator is an
// explicitly constructed client passed in by the caller; tests substitute
// stubs.
type Server struct {
	cfg      *config.Config
	store    *profile.Store
	geocoder Geocoder
	finder   FacilityFinder
	renderer MapWriter
	advisor  Advisor
}

// New wires the server's dependencies.
func New(cfg *config.Config, store *profile.Store, geocoder Geocoder,
	finder FacilityFinder, renderer MapWriter, advisor Advisor) *Server {
	return &Server{
		cfg:      cfg,
		store:    store,
		geocoder: geocoder,
		finder:   finder,
		renderer: renderer,
		advisor:  advisor,
	}
}

// HTTPServer wraps the router in an http.Server with production timeouts.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 2 * time.Minute, // chained LLM calls are slow
	}
}

// TemplateRenderer is a custom html/template renderer for the Echo framework.
type TemplateRenderer struct {
	templates *template.Template
}

// Render renders a template document by name.
func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}
