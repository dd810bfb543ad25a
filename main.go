package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/imagewriter"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// outputLogger implements core.Logger on a command's output stream
type outputLogger struct {
	out io.Writer
}

func (l outputLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(l.out, format, args...)
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "raytracer",
		Short:        "Whitted ray tracer",
		Long:         "Renders built-in scenes and PLY/glTF models with recursive Whitted ray tracing.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")

	loadConfig := func() (*config.Config, error) {
		if configPath == "" {
			return config.Default(), nil
		}
		return config.Load(configPath)
	}

	root.AddCommand(newRenderCmd(loadConfig), newScenesCmd(loadConfig))
	return root
}

func newRenderCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	var (
		sceneName string
		width     int
		height    int
		threads   int
		depth     int
		grid      int
		roll      float64
		outputDir string
		progress  bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scene to a PNG file",
		Example: `  raytracer render --scene mirror --depth 3
  raytracer render --scene model:bunny.ply --width 800 --height 800`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("scene") {
				cfg.Scene.Name = sceneName
			}
			if flags.Changed("width") {
				cfg.Render.Width = width
			}
			if flags.Changed("height") {
				cfg.Render.Height = height
			}
			if flags.Changed("threads") {
				cfg.Render.Threads = threads
			}
			if flags.Changed("depth") {
				cfg.Render.AdaptiveDepth = depth
			}
			if flags.Changed("grid") {
				cfg.Render.Grid.Interval = grid
			}
			if flags.Changed("roll") {
				cfg.Render.Roll = roll
			}
			if flags.Changed("output") {
				cfg.Output.Dir = outputDir
			}
			if flags.Changed("progress") {
				cfg.Render.DebugProgress = progress
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			path, err := runRender(cmd.Context(), cfg, outputLogger{out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Render saved as %s\n", path)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&sceneName, "scene", "s", "final", "Scene ID: a built-in name or model:<file>")
	flags.IntVar(&width, "width", 0, "Image width in pixels (0 uses the scene's)")
	flags.IntVar(&height, "height", 0, "Image height in pixels (0 uses the scene's)")
	flags.IntVarP(&threads, "threads", "t", 0, "Worker goroutines (0 uses cores minus two)")
	flags.IntVarP(&depth, "depth", "d", 3, "Adaptive supersampling depth (0 casts one ray per pixel)")
	flags.IntVar(&grid, "grid", 0, "Overlay a grid every N pixels (0 disables)")
	flags.Float64Var(&roll, "roll", 0, "Extra camera roll in degrees")
	flags.StringVarP(&outputDir, "output", "o", "output", "Output directory")
	flags.BoolVar(&progress, "progress", false, "Print render progress")
	return cmd
}

func newScenesCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List built-in scenes and models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return printScenes(cmd.OutOrStdout(), cfg.Scene.ModelsDir)
		},
	}
}

// runRender renders the configured scene and returns the saved file path
func runRender(ctx context.Context, cfg *config.Config, logger outputLogger) (string, error) {
	preset, err := scene.Load(cfg.Scene.Name, cfg.Scene.ModelsDir)
	if err != nil {
		return "", err
	}

	width, height := preset.Width, preset.Height
	if cfg.Render.Width > 0 {
		width = cfg.Render.Width
	}
	if cfg.Render.Height > 0 {
		height = cfg.Render.Height
	}

	path := cfg.OutputPath(preset.Scene.Name)
	writer, err := imagewriter.NewPNGWriter(path, width, height)
	if err != nil {
		return "", err
	}

	r, err := renderer.NewPresetRenderer(preset, writer, cfg.RendererConfig(), cfg.IntegratorConfig(), cfg.Render.Roll, logger)
	if err != nil {
		return "", err
	}
	logger.Printf("Rendering scene %q\n", preset.Scene.Name)
	if _, err := r.Render(ctx); err != nil {
		return "", err
	}

	if cfg.Render.Grid.Interval > 0 {
		if err := renderer.PrintGrid(writer, cfg.Render.Grid.Interval, cfg.GridColor()); err != nil {
			return "", err
		}
	}
	if err := writer.Flush(); err != nil {
		return "", err
	}
	return path, nil
}

func printScenes(out io.Writer, modelsDir string) error {
	response, err := scene.ListAllScenes(modelsDir)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, group := range response.Groups {
		fmt.Fprintf(tw, "%s:\n", group.Name)
		for _, info := range group.Scenes {
			fmt.Fprintf(tw, "  %s\t%s\n", info.ID, info.Description)
		}
	}
	return tw.Flush()
}
