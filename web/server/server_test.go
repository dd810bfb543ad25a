package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Scene.ModelsDir = t.TempDir()
	cfg.Render.AdaptiveDepth = 0
	cfg.Render.Threads = 2
	return NewServer(cfg)
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

// sseData returns the data line of the first event with the given name
func sseData(body, event string) (string, bool) {
	for _, block := range strings.Split(body, "\n\n") {
		lines := strings.SplitN(block, "\n", 2)
		if len(lines) == 2 && lines[0] == "event: "+event {
			return strings.TrimPrefix(lines[1], "data: "), true
		}
	}
	return "", false
}

func TestHandleHealth(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("Unexpected body %s", rec.Body.String())
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Expected CORS header")
	}
}

func TestHandleScenes(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/scenes")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var response scene.ScenesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(response.Groups) != 1 || len(response.Groups[0].Scenes) != len(scene.Names()) {
		t.Errorf("Expected only the built-in group, got %+v", response.Groups)
	}
}

func TestHandleRender_StreamsImage(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/render?scene=shadow&width=16&height=12&grid=4")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Expected event stream, got %q", ct)
	}

	body := rec.Body.String()
	if console, ok := sseData(body, "console"); !ok {
		t.Error("Expected console events")
	} else if !strings.Contains(console, `"scene":"shadow"`) {
		t.Errorf("Expected console events tagged with the scene, got %s", console)
	}
	data, ok := sseData(body, "complete")
	if !ok {
		t.Fatalf("Expected complete event in:\n%s", body)
	}

	var result RenderResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		t.Fatalf("Invalid complete payload: %v", err)
	}
	if result.Scene != "shadow" || result.Width != 16 || result.Height != 12 {
		t.Errorf("Unexpected result header %+v", result)
	}
	if result.Stats.TotalPixels != 16*12 || result.Stats.RaysPerPixel != 1 {
		t.Errorf("Unexpected stats %+v", result.Stats)
	}

	raw, err := base64.StdEncoding.DecodeString(result.ImageData)
	if err != nil {
		t.Fatalf("Invalid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Invalid PNG: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 12 {
		t.Errorf("Expected 16x12 image, got %v", img.Bounds())
	}
	// Grid lines are yellow
	if r, g, b, _ := img.At(0, 0).RGBA(); r>>8 != 255 || g>>8 != 255 || b != 0 {
		t.Errorf("Expected grid color at the origin, got %d %d %d", r>>8, g>>8, b>>8)
	}
}

func TestHandleRender_BadRequests(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		name   string
		target string
	}{
		{"unknown scene", "/api/render?scene=nope"},
		{"width not a number", "/api/render?width=abc"},
		{"width too large", "/api/render?width=5000"},
		{"depth too deep", "/api/render?depth=40"},
		{"bad model name", "/api/render?scene=model:../x.ply"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, s, tt.target)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), `"error"`) {
				t.Errorf("Expected error body, got %s", rec.Body.String())
			}
		})
	}
}

func TestHandleInspect(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/inspect?scene=shadow&width=15&height=15&x=7&y=7")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var center InspectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &center); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if !center.Hit || center.GeometryType != "sphere" {
		t.Fatalf("Expected the sphere at the center, got %+v", center)
	}
	// Camera at z=1000, sphere front at z=-140
	if math.Abs(center.Distance-1140) > 1e-6 {
		t.Errorf("Expected distance 1140, got %f", center.Distance)
	}
	if math.Abs(center.Normal[2]-1) > 1e-9 {
		t.Errorf("Expected normal facing the camera, got %v", center.Normal)
	}
	if center.Color[2] <= 0 {
		t.Errorf("Expected a blue traced color, got %v", center.Color)
	}

	rec = get(t, s, "/api/inspect?scene=shadow&width=15&height=15&x=0&y=0")
	var corner InspectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &corner); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if corner.Hit {
		t.Errorf("Expected background at the corner, got %+v", corner)
	}
}

func TestHandleInspect_BadRequests(t *testing.T) {
	s := newTestServer(t)
	for _, target := range []string{
		"/api/inspect?scene=shadow&x=a&y=0",
		"/api/inspect?scene=shadow&x=0",
		"/api/inspect?scene=shadow&width=10&height=10&x=10&y=0",
		"/api/inspect?scene=unknown&x=0&y=0",
	} {
		if rec := get(t, s, target); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, rec.Code)
		}
	}
}
