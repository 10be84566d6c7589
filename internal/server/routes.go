package server

import (
	"html/template"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"wellnav/internal/profile"
)

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(RequestIDMiddleware)

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"https://*", "http://*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:       300,
	}))

	e.Static("/static", s.cfg.StaticDir)

	renderer := &TemplateRenderer{
		templates: template.Must(template.ParseGlob(s.cfg.TemplateGlob)),
	}
	e.Renderer = renderer

	// Pages
	e.GET("/", s.renderHomeHandler)
	e.GET("/ask", s.renderAskHandler)
	e.GET("/answer", s.renderAnswerHandler)
	e.GET("/about", s.renderAboutHandler)
	e.GET("/map", s.renderMapHandler)
	e.GET("/records", s.recordsHandler)

	// Workflow
	e.POST("/profile", s.submitProfileHandler)
	e.POST("/search-location", s.searchLocationHandler)
	e.POST("/content/:category", s.contentHandler)

	return e
}

// RequestIDMiddleware tags every request with an X-Request-ID and stashes a
// request-scoped logger in the context.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Response().Header().Set("X-Request-ID", requestID)

		logger := log.With().Str("request_id", requestID).Logger()
		c.Set("logger", &logger)

		return next(c)
	}
}

/* ====================================================================
                            Page Handlers
==================================================================== */

func (s *Server) renderHomeHandler(c echo.Context) error {
	return c.Render(http.StatusOK, "base.html", map[string]interface{}{"page": "home"})
}

// renderAskHandler serves the health form; the disease catalog is re-read
// on every request.
func (s *Server) renderAskHandler(c echo.Context) error {
	diseases, err := profile.LoadCatalog(s.cfg.DiseaseFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to load disease catalog")
	}
	return c.Render(http.StatusOK, "ask.html", map[string]interface{}{
		"page":     "ask",
		"diseases": diseases,
	})
}

func (s *Server) renderAnswerHandler(c echo.Context) error {
	return c.Render(http.StatusOK, "answer.html", map[string]interface{}{"page": "answer"})
}

func (s *Server) renderAboutHandler(c echo.Context) error {
	return c.Render(http.StatusOK, "about.html", map[string]interface{}{"page": "about"})
}

func (s *Server) renderMapHandler(c echo.Context) error {
	return c.Render(http.StatusOK, "map.html", map[string]interface{}{"page": "map"})
}
