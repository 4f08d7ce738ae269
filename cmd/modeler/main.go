package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/gl-modeling-tool/modeler/internal/config"
	"github.com/gl-modeling-tool/modeler/internal/openglhelper"
	"github.com/gl-modeling-tool/modeler/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		slog.Error("modeler failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to a TOML config file")
	shape := flag.String("shape", "", "Shape to render: cube, triangle or polygon")
	sides := flag.Int("sides", 0, "Number of polygon sides")
	width := flag.Int("width", 0, "Window width")
	height := flag.Int("height", 0, "Window height")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	applyFlags(&cfg, *shape, *sides, *width, *height, *debug)
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	window, err := openglhelper.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.Window.VSync, logger)
	if err != nil {
		return err
	}

	shader, err := newShader(cfg.Shader)
	if err != nil {
		window.Close()
		return err
	}

	mesh, err := openglhelper.NewShape(cfg.Model.Shape, cfg.Model.Sides, logger)
	if err != nil {
		shader.Delete()
		window.Close()
		return err
	}

	window.SetMouseCaptured(cfg.Window.CaptureMouse)

	opts := cfg.RenderOptions()
	opts.Logger = logger
	renderer, err := render.NewRenderer(window, shader, mesh, opts)
	if err != nil {
		shader.Delete()
		window.Close()
		return err
	}
	window.SetEventHandler(renderer)

	return renderer.Run()
}

func newShader(cfg config.ShaderConfig) (*openglhelper.Shader, error) {
	if cfg.Vertex != "" {
		shader, err := openglhelper.LoadShaderFromFiles(cfg.Vertex, cfg.Fragment)
		if err != nil {
			return nil, fmt.Errorf("failed to load shader: %w", err)
		}
		return shader, nil
	}

	shader, err := openglhelper.NewDefaultShader()
	if err != nil {
		return nil, fmt.Errorf("failed to compile default shader: %w", err)
	}
	return shader, nil
}

// applyFlags overrides cfg with every flag that was set
func applyFlags(cfg *config.Config, shape string, sides, width, height int, debug bool) {
	if shape != "" {
		cfg.Model.Shape = shape
	}
	if sides != 0 {
		cfg.Model.Sides = sides
	}
	if width != 0 {
		cfg.Window.Width = width
	}
	if height != 0 {
		cfg.Window.Height = height
	}
	if debug {
		cfg.Debug = true
	}
}
