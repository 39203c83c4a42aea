package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ByLCY/viewgrid/config"
	"github.com/ByLCY/viewgrid/dsl"
	"github.com/ByLCY/viewgrid/layout"
)

// planFlags are the grid/canvas flags shared by grid, preview and tui.
type planFlags struct {
	configPath string
	layoutPath string
	rows       int
	cols       int
	margin     float64
	width      float64
	height     float64
	name       string
}

func (f *planFlags) register(cmd *cobra.Command, margin float64) {
	def := config.Default()
	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "TOML config file")
	fl.StringVarP(&f.layoutPath, "layout", "l", "", "layout DSL file (overrides grid flags)")
	fl.IntVar(&f.rows, "rows", def.Grid.Rows, "number of grid rows")
	fl.IntVar(&f.cols, "cols", def.Grid.Cols, "number of grid columns")
	fl.Float64Var(&f.margin, "margin", margin, "gutter between cells in logical pixels")
	fl.Float64Var(&f.width, "width", def.Canvas.Width, "canvas logical width")
	fl.Float64Var(&f.height, "height", def.Canvas.Height, "canvas logical height")
	fl.StringVar(&f.name, "name", def.Grid.Name, "view name template (${row} ${col} ${index})")
}

// resolve builds the plan from the layout file, or from config + flags.
// Flags given explicitly win over file values.
func (f *planFlags) resolve(cmd *cobra.Command) (*layout.Plan, error) {
	changed := cmd.Flags().Changed

	if f.layoutPath != "" {
		file, err := os.Open(f.layoutPath)
		if err != nil {
			return nil, fmt.Errorf("无法打开布局文件 %s: %w", f.layoutPath, err)
		}
		defer file.Close()
		doc, err := dsl.Parse(file)
		if err != nil {
			return nil, fmt.Errorf("解析布局文件失败: %w", err)
		}
		plan, err := layout.Build(doc)
		if err != nil {
			return nil, fmt.Errorf("生成布局方案失败: %w", err)
		}
		if changed("width") {
			plan.Width = f.width
		}
		if changed("height") {
			plan.Height = f.height
		}
		return plan, nil
	}

	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}
	if changed("rows") {
		cfg.Grid.Rows = f.rows
	}
	if changed("cols") {
		cfg.Grid.Cols = f.cols
	}
	if changed("margin") || f.configPath == "" {
		cfg.Grid.Margin = f.margin
	}
	if changed("width") {
		cfg.Canvas.Width = f.width
	}
	if changed("height") {
		cfg.Canvas.Height = f.height
	}
	if changed("name") {
		cfg.Grid.Name = f.name
	}
	return cfg.Plan()
}
