package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trayforge/trayforge/pkg/calibration"
	"github.com/trayforge/trayforge/pkg/tray"
)

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	depth float64
	floor float64
	wall  float64
	round float64
}

// previewCommand creates the preview command: the layout diagram and the
// outer measurements, without writing any file.
func (c *CLI) previewCommand() *cobra.Command {
	defaults := tray.DefaultParams()
	opts := previewOpts{
		depth: defaults.Depth,
		floor: defaults.Floor,
		wall:  defaults.Wall,
		round: defaults.RoundDepth,
	}

	cmd := &cobra.Command{
		Use:   "preview <column-widths> <row-heights>",
		Short: "Show the tray layout and measurements without generating files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(args[0], args[1], &opts)
		},
	}

	cmd.Flags().Float64Var(&opts.depth, "depth", opts.depth, "depth of the tray above the floor (mm)")
	cmd.Flags().Float64Var(&opts.floor, "floor", opts.floor, "thickness of the tray floor (mm)")
	cmd.Flags().Float64Var(&opts.wall, "wall", opts.wall, "thickness of the walls (mm)")
	cmd.Flags().Float64Var(&opts.round, "round", opts.round, "height of the rounded cavity bottom (mm, 0 for flat)")

	return cmd
}

func runPreview(xArg, yArg string, opts *previewOpts) error {
	xSizes, err := parseSizeList(xArg)
	if err != nil {
		return err
	}
	ySizes, err := parseSizeList(yArg)
	if err != nil {
		return err
	}
	params := tray.Params{Depth: opts.depth, Floor: opts.floor, Wall: opts.wall, RoundDepth: opts.round}

	// Run the real build and discard the solid, so the preview can never
	// drift from the generated geometry.
	result, err := tray.Build(xSizes, ySizes, params, calibration.Identity())
	if err != nil {
		return err
	}

	printDimensions(result.Width, result.Height, params)
	printNewline()
	fmt.Println(buildDiagram(xSizes, ySizes, params))
	return nil
}
