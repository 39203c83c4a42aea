// Package config loads canvas and grid settings from a TOML file.
//
// A minimal file:
//
//	[canvas]
//	title = "demo"
//	width = 640.0
//	height = 480.0
//
//	[grid]
//	rows = 2
//	cols = 1
//	margin = 10.0
//	name = "plot-${row}-${col}"
//
// Keys that are absent keep their defaults.
package config

import (
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ByLCY/viewgrid/layout"
)

// Config is the full settings document.
type Config struct {
	Canvas CanvasConfig `toml:"canvas"`
	Grid   GridConfig   `toml:"grid"`
}

// CanvasConfig describes the canvas the grid is laid out on.
type CanvasConfig struct {
	Title  string  `toml:"title"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// GridConfig describes the grid shape. It is fixed for the grid's lifetime.
type GridConfig struct {
	Rows   int     `toml:"rows"`
	Cols   int     `toml:"cols"`
	Margin float64 `toml:"margin"`
	Name   string  `toml:"name"`
}

// Default returns a 1x1 grid on a 640x480 canvas with a 10px margin.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{Title: "viewgrid", Width: 640, Height: 480},
		Grid:   GridConfig{Rows: 1, Cols: 1, Margin: layout.DefaultMargin, Name: layout.DefaultNameTemplate},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("读取配置 %s 失败: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("解析配置 %s 失败: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("配置 %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges: positive rows/cols, non-negative finite margin and
// canvas size.
func (c Config) Validate() error {
	if c.Grid.Rows < 1 || c.Grid.Cols < 1 {
		return fmt.Errorf("%w: rows/cols 必须为正整数, got %dx%d", layout.ErrInvalidGrid, c.Grid.Rows, c.Grid.Cols)
	}
	if !finiteNonNegative(c.Grid.Margin) {
		return fmt.Errorf("%w: margin 必须为非负有限数, got %g", layout.ErrInvalidGrid, c.Grid.Margin)
	}
	if !finiteNonNegative(c.Canvas.Width) || !finiteNonNegative(c.Canvas.Height) {
		return fmt.Errorf("canvas 尺寸必须为非负有限数, got %gx%g", c.Canvas.Width, c.Canvas.Height)
	}
	return nil
}

// Plan expands the grid settings into a layout plan.
func (c Config) Plan() (*layout.Plan, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	specs, err := layout.GridSpecs(c.Grid.Rows, c.Grid.Cols, c.Grid.Margin, c.Grid.Name)
	if err != nil {
		return nil, err
	}
	return &layout.Plan{
		Name:   c.Canvas.Title,
		Width:  c.Canvas.Width,
		Height: c.Canvas.Height,
		Margin: c.Grid.Margin,
		Specs:  specs,
	}, nil
}

func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
