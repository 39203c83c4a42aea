package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ByLCY/viewgrid/layout"
	canvasrenderer "github.com/ByLCY/viewgrid/renderer/canvas"
)

func newPreviewCmd() *cobra.Command {
	var (
		flags  planFlags
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Draw the view rectangles to a PDF or SVG file",
		Example: `  viewgrid preview --rows 2 --cols 2 --out output/grid.pdf
  viewgrid preview --layout examples/demo.vg --format svg --out output/demo.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			f, err := canvasrenderer.ParseFormat(format)
			if err != nil {
				return err
			}
			plan, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			m, err := layout.Mount(layout.NewManualCanvas(plan.Width, plan.Height), plan, layout.Options{Logger: logger})
			if err != nil {
				return err
			}
			snap := m.Snapshot()
			snap.Title = plan.Name

			data, err := canvasrenderer.NewRenderer(f).Render(snap)
			if err != nil {
				return fmt.Errorf("渲染预览失败: %w", err)
			}
			if output == "" {
				output = filepath.Join("output", "preview."+string(f))
			}
			if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
				return fmt.Errorf("创建输出目录失败: %w", err)
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("写入预览文件失败: %w", err)
			}
			logger.Info("wrote preview", "path", output, "views", len(snap.Views))
			return nil
		},
	}
	flags.register(cmd, layout.DefaultMargin)
	cmd.Flags().StringVarP(&format, "format", "f", "pdf", "output format: pdf or svg")
	cmd.Flags().StringVarP(&output, "out", "o", "", "output path (default output/preview.<format>)")
	return cmd
}
