package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/imagewriter"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/labstack/echo/v4"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	SceneRequest
	AdaptiveDepth int `json:"adaptiveDepth"`
	Threads       int `json:"threads"`
	Grid          int `json:"grid"` // Grid overlay interval, 0 disables
}

// Stats represents render statistics
type Stats struct {
	TotalPixels  int     `json:"totalPixels"`
	PrimaryRays  int64   `json:"primaryRays"`
	RaysPerPixel float64 `json:"raysPerPixel"`
	Workers      int     `json:"workers"`
}

// RenderResult is the payload of the final "complete" event
type RenderResult struct {
	Scene     string `json:"scene"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Stats     Stats  `json:"stats"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// eventStream writes Server-Sent Events from several goroutines
type eventStream struct {
	mu sync.Mutex
	w  *echo.Response
}

func (es *eventStream) send(event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	es.mu.Lock()
	defer es.mu.Unlock()
	if _, err := fmt.Fprintf(es.w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	es.w.Flush()
	return nil
}

// handleRender renders a scene and streams console output followed by the
// finished image as Server-Sent Events. Parameter errors are plain JSON
// responses because they happen before the stream starts.
func (s *Server) handleRender(c echo.Context) error {
	req, err := s.parseRenderRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request: " + err.Error()})
	}
	preset, err := s.loadPreset(req.SceneRequest)
	if err != nil {
		return c.JSON(statusFor(err), map[string]string{"error": err.Error()})
	}
	writer, err := imagewriter.NewPNGWriter("", preset.Width, preset.Height)
	if err != nil {
		return c.JSON(statusFor(err), map[string]string{"error": err.Error()})
	}

	consoleChan := make(chan ConsoleMessage, 100)
	logger := NewWebLogger(fmt.Sprintf("render-%d", time.Now().UnixNano()), preset.Scene.Name, consoleChan)

	rendererConfig := renderer.Config{Threads: req.Threads, AdaptiveDepth: req.AdaptiveDepth}
	r, err := renderer.NewPresetRenderer(preset, writer, rendererConfig, s.config.IntegratorConfig(), req.Roll, logger)
	if err != nil {
		return c.JSON(statusFor(err), map[string]string{"error": err.Error()})
	}

	setSSEHeaders(c.Response())
	c.Response().WriteHeader(http.StatusOK)
	events := &eventStream{w: c.Response()}

	forwarded := make(chan struct{})
	go func() {
		defer close(forwarded)
		for msg := range consoleChan {
			if events.send("console", msg) != nil {
				return
			}
		}
	}()

	start := time.Now()
	stats, renderErr := r.Render(c.Request().Context())
	if renderErr == nil && req.Grid > 0 {
		renderErr = renderer.PrintGrid(writer, req.Grid, s.config.GridColor())
	}
	// Every logger call happens inside Render, so the channel can close here
	close(consoleChan)
	<-forwarded

	if renderErr != nil {
		return events.send("error", map[string]string{"error": renderErr.Error()})
	}

	var buf bytes.Buffer
	if err := writer.Encode(&buf); err != nil {
		return events.send("error", map[string]string{"error": err.Error()})
	}
	return events.send("complete", RenderResult{
		Scene:     preset.Scene.Name,
		Width:     preset.Width,
		Height:    preset.Height,
		ImageData: base64.StdEncoding.EncodeToString(buf.Bytes()),
		Stats: Stats{
			TotalPixels:  stats.TotalPixels,
			PrimaryRays:  stats.PrimaryRays,
			RaysPerPixel: stats.RaysPerPixel(),
			Workers:      stats.Workers,
		},
		ElapsedMs: time.Since(start).Milliseconds(),
	})
}

// setSSEHeaders sets the required headers for Server-Sent Events
func setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
}

// parseRenderRequest parses scene and sampling parameters
func (s *Server) parseRenderRequest(c echo.Context) (*RenderRequest, error) {
	values := c.QueryParams()
	sceneReq, err := s.parseSceneRequest(values)
	if err != nil {
		return nil, err
	}

	req := &RenderRequest{SceneRequest: sceneReq}
	if req.AdaptiveDepth, err = parseIntParam(values, "depth", s.config.Render.AdaptiveDepth, 0, maxAdaptiveDepth); err != nil {
		return nil, err
	}
	if req.Threads, err = parseIntParam(values, "threads", s.config.Render.Threads, 0, 256); err != nil {
		return nil, err
	}
	if req.Grid, err = parseIntParam(values, "grid", s.config.Render.Grid.Interval, 0, maxImageSize); err != nil {
		return nil, err
	}
	return req, nil
}
