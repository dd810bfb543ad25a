package server

import (
	"math"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/labstack/echo/v4"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Color        [3]float64             `json:"color"` // Traced color of the center ray
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// InspectResult is the closest surface hit by an inspection ray
type InspectResult struct {
	Hit      bool
	Point    geometry.GeoPoint
	Distance float64
	Color    core.Vec3
}

// inspectPixel casts a ray through the center of a pixel and reports the
// closest surface along with the color the tracer computes for that ray
func inspectPixel(preset *scene.Preset, tracer integrator.Config, roll float64, pixelX, pixelY int) (InspectResult, error) {
	camera, err := renderer.CameraForView(preset.View, roll)
	if err != nil {
		return InspectResult{}, err
	}
	whitted, err := integrator.NewWhitted(preset.Scene, tracer)
	if err != nil {
		return InspectResult{}, err
	}

	ray := camera.ConstructRay(preset.Width, preset.Height, pixelX, pixelY)
	result := InspectResult{Color: whitted.TraceRay(ray)}

	closest, ok := geometry.FindClosest(preset.Scene.Geometries.Intersect(ray, math.Inf(1)), ray.Origin)
	if !ok {
		return result, nil
	}
	result.Hit = true
	result.Point = closest
	result.Distance = closest.Point.Distance(ray.Origin)
	return result, nil
}

func vec(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// extractMaterialInfo lists the Phong coefficients of a surface
func extractMaterialInfo(look geometry.Appearance) map[string]interface{} {
	m := look.Material
	return map[string]interface{}{
		"emission":  vec(look.Emission),
		"kd":        vec(m.KD),
		"ks":        vec(m.KS),
		"kt":        vec(m.KT),
		"kr":        vec(m.KR),
		"shininess": m.Shininess,
		"kind":      materialKind(m),
	}
}

// materialKind names the dominant optical behavior of a material
func materialKind(m material.Material) string {
	transparent := m.KT != core.Black
	reflective := m.KR != core.Black
	switch {
	case transparent && reflective:
		return "transparent-reflective"
	case transparent:
		return "transparent"
	case reflective:
		return "reflective"
	default:
		return "opaque"
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(surface geometry.Surface) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := surface.(type) {
	case *geometry.Sphere:
		properties["center"] = vec(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["point"] = vec(geom.Point)
		properties["normal"] = vec(geom.Normal(geom.Point))
		return "plane", properties

	case *geometry.Triangle:
		properties["vertices"] = vertexList(geom.Vertices)
		return "triangle", properties

	case *geometry.Polygon:
		properties["vertices"] = vertexList(geom.Vertices)
		return "polygon", properties

	case *geometry.Cylinder:
		properties["origin"] = vec(geom.Axis.Origin)
		properties["direction"] = vec(geom.Axis.Direction)
		properties["radius"] = geom.Radius
		properties["height"] = geom.Height
		return "cylinder", properties

	case *geometry.Tube:
		properties["origin"] = vec(geom.Axis.Origin)
		properties["direction"] = vec(geom.Axis.Direction)
		properties["radius"] = geom.Radius
		return "tube", properties

	default:
		return "unknown", properties
	}
}

func vertexList(vertices []core.Vec3) [][3]float64 {
	list := make([][3]float64, len(vertices))
	for i, v := range vertices {
		list[i] = vec(v)
	}
	return list
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(c echo.Context) error {
	values := c.QueryParams()
	req, err := s.parseSceneRequest(values)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid scene parameters: " + err.Error()})
	}

	pixelX, err := strconv.Atoi(values.Get("x"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid x coordinate"})
	}
	pixelY, err := strconv.Atoi(values.Get("y"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid y coordinate"})
	}

	preset, err := s.loadPreset(req)
	if err != nil {
		return c.JSON(statusFor(err), map[string]string{"error": err.Error()})
	}
	if pixelX < 0 || pixelX >= preset.Width || pixelY < 0 || pixelY >= preset.Height {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Pixel coordinates out of bounds"})
	}

	result, err := inspectPixel(preset, s.config.IntegratorConfig(), req.Roll, pixelX, pixelY)
	if err != nil {
		return c.JSON(statusFor(err), map[string]string{"error": err.Error()})
	}

	response := InspectResponse{Hit: result.Hit, Color: vec(result.Color)}
	if result.Hit {
		geometryType, geometryProps := extractGeometryInfo(result.Point.Surface)
		response.GeometryType = geometryType
		response.Point = vec(result.Point.Point)
		response.Normal = vec(result.Point.Normal)
		response.Distance = result.Distance
		response.Properties = map[string]interface{}{
			"material": extractMaterialInfo(result.Point.Surface.Look()),
			"geometry": geometryProps,
		}
	}
	return c.JSON(http.StatusOK, response)
}
