package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/labstack/echo/v4"
)

// Request limits
const (
	maxImageSize     = 2000
	maxAdaptiveDepth = 6
)

// Server handles web requests for the ray tracer
type Server struct {
	config *config.Config
	echo   *echo.Echo
}

// NewServer creates a web server. Scene and tracer defaults come from cfg.
func NewServer(cfg *config.Config) *Server {
	s := &Server{config: cfg, echo: echo.New()}
	s.echo.HideBanner = true
	s.echo.Use(corsMiddleware)

	s.echo.Static("/", "static")
	s.echo.GET("/api/health", s.handleHealth)
	s.echo.GET("/api/scenes", s.handleScenes)
	s.echo.GET("/api/render", s.handleRender)
	s.echo.GET("/api/inspect", s.handleInspect)
	return s
}

// Handler returns the server's HTTP handler
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves on the configured port until the server is closed
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Server.Port)
	log.Printf("Starting web server on http://localhost%s", addr)
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func corsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", "*")
		c.Response().Header().Set("Access-Control-Allow-Methods", "GET")
		c.Response().Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")

		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusOK)
		}
		return next(c)
	}
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in scenes and the models directory
func (s *Server) handleScenes(c echo.Context) error {
	response, err := scene.ListAllScenes(s.config.Scene.ModelsDir)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, response)
}

// SceneRequest holds the scene parameters shared by render and inspect
type SceneRequest struct {
	Scene  string  `json:"scene"`  // Scene ID
	Width  int     `json:"width"`  // 0 uses the scene's width
	Height int     `json:"height"` // 0 uses the scene's height
	Roll   float64 `json:"roll"`   // Extra camera roll in degrees
}

// parseSceneRequest parses the common scene parameters
func (s *Server) parseSceneRequest(values url.Values) (SceneRequest, error) {
	req := SceneRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = s.config.Scene.Name
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", s.config.Render.Width, 0, maxImageSize); err != nil {
		return req, err
	}
	if req.Height, err = parseIntParam(values, "height", s.config.Render.Height, 0, maxImageSize); err != nil {
		return req, err
	}
	if req.Roll, err = parseFloatParam(values, "roll", s.config.Render.Roll, -360, 360); err != nil {
		return req, err
	}
	return req, nil
}

// loadPreset builds the requested scene and applies the size override
func (s *Server) loadPreset(req SceneRequest) (*scene.Preset, error) {
	preset, err := scene.Load(req.Scene, s.config.Scene.ModelsDir)
	if err != nil {
		return nil, err
	}
	if req.Width > 0 {
		preset.Width = req.Width
	}
	if req.Height > 0 {
		preset.Height = req.Height
	}
	return preset, nil
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	if errors.Is(err, core.ErrInvalidArgument) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, core.InvalidArgf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, core.InvalidArgf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, core.InvalidArgf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, core.InvalidArgf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
