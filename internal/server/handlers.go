package server

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"wellnav/internal/advice"
	"wellnav/internal/geo"
	"wellnav/internal/mapview"
	"wellnav/internal/profile"
)

// noContentFallback is served when a category is unknown or a fragment
// fails validation; unvalidated markup is never passed through.
const noContentFallback = "No content available."

// bindProfile extracts the intake form fields shared by the profile and
// content endpoints.
func bindProfile(c echo.Context) (profile.Profile, error) {
	var p profile.Profile
	if err := c.Bind(&p); err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

// submitProfileHandler persists a submitted health profile and renders the
// answer page. Storage failures fail the request; there is no retry.
func (s *Server) submitProfileHandler(c echo.Context) error {
	p, err := bindProfile(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid profile submission")
	}

	if err := s.store.Append(p); err != nil {
		log.Error().Err(err).Msg("failed to store profile")
		return echo.NewHTTPError(http.StatusInternalServerError, "could not save profile")
	}

	return c.Render(http.StatusOK, "answer.html", map[string]interface{}{
		"page":      "answer",
		"form_data": p,
	})
}

// searchLocationHandler runs the location flow in strict sequence:
// geocode, then hospital lookup, then map render. Geocoding no-match and
// unavailability render distinct messages; lookup or render failures degrade
// to zero facilities / no map.
func (s *Server) searchLocationHandler(c echo.Context) error {
	zip := c.FormValue("zip")
	country := c.FormValue("country")
	ctx := c.Request().Context()

	center, err := s.geocoder.Resolve(ctx, zip, country)
	if err != nil {
		data := map[string]interface{}{
			"page":      "map",
			"hospitals": []interface{}{},
		}
		if errors.Is(err, geo.ErrNotFound) {
			data["error"] = "Could not locate that postal code."
		} else {
			log.Error().Err(err).Str("zip", zip).Str("country", country).Msg("geocoding failed")
			data["error"] = "The location service is temporarily unavailable."
		}
		return c.Render(http.StatusOK, "map.html", data)
	}

	facilities, err := s.finder.Nearby(ctx, center.Latitude, center.Longitude, s.cfg.SearchRadiusMeters)
	if err != nil {
		log.Error().Err(err).Msg("hospital lookup failed")
		facilities = nil
	}

	label := zip + ", " + country
	mapFile := ""
	if _, err := s.renderer.Render(center, facilities, label); err != nil {
		log.Error().Err(err).Msg("map rendering failed")
	} else {
		mapFile = "/static/" + mapview.ArtifactName
	}

	return c.Render(http.StatusOK, "map.html", map[string]interface{}{
		"page":      "map",
		"hospitals": facilities,
		"zip_code":  zip,
		"country":   country,
		"map_file":  mapFile,
	})
}

// contentHandler dispatches a category to the matching pipeline stage and
// responds with the generated fragment as {"content": "..."}.
func (s *Server) contentHandler(c echo.Context) error {
	p, err := bindProfile(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid profile fields")
	}
	information := advice.FormatProfile(p)
	ctx := c.Request().Context()

	var fragment string
	switch category := c.Param("category"); category {
	case "food":
		fragment, err = s.advisor.FoodExercise(ctx, information)
	case "routine":
		fragment, err = s.advisor.Routine(ctx, information)
	case "important":
		fragment, err = s.advisor.KeyFacts(ctx, information)
	default:
		return c.JSON(http.StatusOK, map[string]string{"content": noContentFallback})
	}

	if err != nil {
		log.Error().Err(err).Str("category", c.Param("category")).Msg("content generation failed")
		return c.JSON(http.StatusOK, map[string]string{"content": noContentFallback})
	}

	return c.JSON(http.StatusOK, map[string]string{"content": fragment})
}

// recordsHandler shows the raw stored profile record.
func (s *Server) recordsHandler(c echo.Context) error {
	content, err := s.store.ReadAll()
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "no records yet")
	}
	return c.HTML(http.StatusOK, "<pre>"+template.HTMLEscapeString(content)+"</pre>")
}
