// Package config holds the viewer settings. Compiled defaults can be
// overridden from a TOML file and then from command line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"

	"github.com/gl-modeling-tool/modeler/internal/shapes"
	"github.com/gl-modeling-tool/modeler/pkg/render"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full set of viewer settings.
type Config struct {
	Window WindowConfig `toml:"window"`
	Camera CameraConfig `toml:"camera"`
	Model  ModelConfig  `toml:"model"`
	Shader ShaderConfig `toml:"shader"`
	Debug  bool         `toml:"debug"`
}

type WindowConfig struct {
	Width        int        `toml:"width"`
	Height       int        `toml:"height"`
	Title        string     `toml:"title"`
	VSync        bool       `toml:"vsync"`
	CaptureMouse bool       `toml:"capture_mouse"`
	ClearColor   [4]float32 `toml:"clear_color"`
}

type CameraConfig struct {
	Position    [3]float32 `toml:"position"`
	MoveSpeed   float32    `toml:"move_speed"`
	Sensitivity float32    `toml:"sensitivity"`
}

type ModelConfig struct {
	Shape string  `toml:"shape"`
	Sides int     `toml:"sides"`
	Speed float32 `toml:"speed"`
}

// ShaderConfig points at GLSL sources that replace the built-in program.
// Both paths must be set together.
type ShaderConfig struct {
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
}

// Default returns the settings the viewer runs with when nothing is configured.
func Default() Config {
	pos := render.DefaultCameraPosition
	return Config{
		Window: WindowConfig{
			Width:        2560,
			Height:       1600,
			Title:        "Modeling Tool",
			VSync:        true,
			CaptureMouse: true,
			ClearColor:   [4]float32{0, 0, 0, 1},
		},
		Camera: CameraConfig{
			Position:    [3]float32{pos.X(), pos.Y(), pos.Z()},
			MoveSpeed:   render.DefaultMoveSpeed,
			Sensitivity: render.DefaultSensitivity,
		},
		Model: ModelConfig{
			Shape: shapes.NamePolygon,
			Sides: shapes.DefaultPolygonSides,
			Speed: render.DefaultModelSpeed,
		},
	}
}

// Load reads path over the defaults. Keys the file leaves out keep their
// default value; unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot produce a working viewer.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Camera.MoveSpeed <= 0:
		return fmt.Errorf("%w: camera move_speed must be positive", ErrInvalid)
	case c.Camera.Sensitivity <= 0:
		return fmt.Errorf("%w: camera sensitivity must be positive", ErrInvalid)
	case c.Model.Speed <= 0:
		return fmt.Errorf("%w: model speed must be positive", ErrInvalid)
	case (c.Shader.Vertex == "") != (c.Shader.Fragment == ""):
		return fmt.Errorf("%w: shader vertex and fragment must be set together", ErrInvalid)
	}

	if _, err := shapes.ByName(c.Model.Shape, c.Model.Sides); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// RenderOptions maps the settings onto the renderer.
func (c Config) RenderOptions() render.Options {
	pos := mgl32.Vec3(c.Camera.Position)
	return render.Options{
		CameraPosition: &pos,
		MoveSpeed:      c.Camera.MoveSpeed,
		Sensitivity:    c.Camera.Sensitivity,
		ModelSpeed:     c.Model.Speed,
		ClearColor:     mgl32.Vec4(c.Window.ClearColor),
	}
}
