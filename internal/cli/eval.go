package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ByLCY/viewgrid/layout"
)

func newEvalCmd() *cobra.Command {
	var ref float64

	cmd := &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate a rect expression against a reference length",
		Example: `  viewgrid eval "50% + 4px" --ref 200
  viewgrid eval 100% - 10px --ref 200`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			value, err := layout.Evaluate(expr, ref)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("evaluated", "expr", expr, "ref", ref, "value", value)
			fmt.Fprintln(cmd.OutOrStdout(), styleNumber.Render(fmt.Sprintf("%g", value)))
			return nil
		},
	}
	cmd.Flags().Float64VarP(&ref, "ref", "r", 0, "reference length in logical pixels")
	return cmd
}
