package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/ByLCY/viewgrid/layout"
)

func newGridCmd() *cobra.Command {
	var (
		flags  planFlags
		asJSON bool
		debug  string
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the view rectangles of a grid or layout file",
		Example: `  viewgrid grid --rows 2 --cols 1
  viewgrid grid --layout examples/demo.vg --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
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

			if debug != "" {
				if err := layout.WriteDebugJSON(snap, debug); err != nil {
					return fmt.Errorf("输出调试 JSON 失败: %w", err)
				}
				logger.Info("wrote debug JSON", "path", debug)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(snap)
			}
			fmt.Fprintln(out, styleTitle.Render(fmt.Sprintf("%s  %gx%g", plan.Name, snap.Width, snap.Height)))
			fmt.Fprintln(out, renderTable(snap))
			return nil
		},
	}
	flags.register(cmd, layout.DefaultMargin)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the snapshot as JSON")
	cmd.Flags().StringVar(&debug, "debug", "", "also write the snapshot JSON to this path")
	return cmd
}

// renderTable formats one row per view: name, cell, rect and expressions.
func renderTable(snap *layout.Snapshot) string {
	rows := make([][]string, 0, len(snap.Views))
	for _, v := range snap.Views {
		cell := "—"
		if v.Row >= 0 && v.Col >= 0 {
			cell = fmt.Sprintf("%d,%d", v.Row, v.Col)
		}
		rows = append(rows, []string{
			v.Name, cell,
			num(v.Rect.X), num(v.Rect.Y), num(v.Rect.Width), num(v.Rect.Height),
			v.Expr[0], v.Expr[1], v.Expr[2], v.Expr[3],
		})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Headers("View", "Cell", "X", "Y", "W", "H", "x", "y", "w", "h").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case col >= 2 && col <= 5:
				return styleNumber
			case col > 5:
				return styleDim
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
