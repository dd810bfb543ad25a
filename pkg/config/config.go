// Package config loads render settings from YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"gopkg.in/yaml.v2"
)

// Config represents the main configuration
type Config struct {
	Scene  SceneConfig  `yaml:"scene"`
	Render RenderConfig `yaml:"render"`
	Tracer TracerConfig `yaml:"tracer"`
	Output OutputConfig `yaml:"output"`
	Server ServerConfig `yaml:"server"`
}

// SceneConfig selects what to render
type SceneConfig struct {
	Name      string `yaml:"name"`       // Built-in preset name or "model:<file>"
	ModelsDir string `yaml:"models_dir"` // Directory searched for model files
}

// RenderConfig contains image and sampling settings
type RenderConfig struct {
	Width         int        `yaml:"width"`  // 0 uses the scene's size
	Height        int        `yaml:"height"` // 0 uses the scene's size
	Threads       int        `yaml:"threads"`
	AdaptiveDepth int        `yaml:"adaptive_depth"`
	DebugProgress bool       `yaml:"debug_progress"`
	Roll          float64    `yaml:"roll"` // Extra camera roll in degrees
	Grid          GridConfig `yaml:"grid"`
}

// GridConfig describes an optional grid overlay
type GridConfig struct {
	Interval int        `yaml:"interval"` // 0 disables the grid
	Color    [3]float64 `yaml:"color"`
}

// TracerConfig contains recursion limits
type TracerConfig struct {
	MaxLevel int     `yaml:"max_level"`
	MinK     float64 `yaml:"min_k"`
}

// OutputConfig says where images are written
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// ServerConfig contains web server settings
type ServerConfig struct {
	Port int `yaml:"port"`
}

// Default creates the default configuration
func Default() *Config {
	tracer := integrator.DefaultConfig()
	return &Config{
		Scene: SceneConfig{
			Name:      "final",
			ModelsDir: "models",
		},
		Render: RenderConfig{
			AdaptiveDepth: 3,
			Grid: GridConfig{
				Color: [3]float64{255, 255, 0},
			},
		},
		Tracer: TracerConfig{
			MaxLevel: tracer.MaxLevel,
			MinK:     tracer.MinK,
		},
		Output: OutputConfig{
			Dir: "output",
		},
		Server: ServerConfig{
			Port: 8080,
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(filePath string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", filePath, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", filePath, err)
	}
	return config, nil
}

// Save writes the configuration as YAML
func Save(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("serialize config: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks every section
func (c *Config) Validate() error {
	if c.Scene.Name == "" {
		return core.InvalidArgf("scene name is empty")
	}
	if c.Render.Width < 0 || c.Render.Height < 0 {
		return core.InvalidArgf("image size %dx%d must not be negative", c.Render.Width, c.Render.Height)
	}
	if c.Render.Grid.Interval < 0 {
		return core.InvalidArgf("grid interval %d must not be negative", c.Render.Grid.Interval)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return core.InvalidArgf("server port %d out of range", c.Server.Port)
	}
	if err := c.RendererConfig().Validate(); err != nil {
		return err
	}
	return c.IntegratorConfig().Validate()
}

// RendererConfig returns the renderer settings
func (c *Config) RendererConfig() renderer.Config {
	return renderer.Config{
		Threads:       c.Render.Threads,
		AdaptiveDepth: c.Render.AdaptiveDepth,
		DebugProgress: c.Render.DebugProgress,
	}
}

// IntegratorConfig returns the recursion limits
func (c *Config) IntegratorConfig() integrator.Config {
	return integrator.Config{
		MaxLevel: c.Tracer.MaxLevel,
		MinK:     c.Tracer.MinK,
	}
}

// GridColor returns the grid overlay color
func (c *Config) GridColor() core.Vec3 {
	g := c.Render.Grid.Color
	return core.NewColor(g[0], g[1], g[2])
}

// OutputPath returns the PNG path for a scene name
func (c *Config) OutputPath(sceneName string) string {
	return filepath.Join(c.Output.Dir, sceneName+".png")
}
