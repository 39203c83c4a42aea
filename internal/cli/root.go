// Package cli implements the viewgrid command-line interface.
//
// Commands:
//   - eval: evaluate one rect expression against a reference length
//   - grid: print the rectangles of a grid or layout file
//   - preview: draw the view rectangles to PDF or SVG
//   - serve: expose the layout engine over HTTP
//   - tui: live terminal preview that re-lays out on terminal resize
//
// All commands accept --verbose (-v) for debug logging.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev"

// Execute runs the viewgrid CLI.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "viewgrid",
		Short:        "viewgrid lays out grids of views from CSS-like rect expressions",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newEvalCmd())
	root.AddCommand(newGridCmd())
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newTUICmd())

	return root.ExecuteContext(ctx)
}
