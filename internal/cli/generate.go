package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trayforge/trayforge/pkg/calibration"
	"github.com/trayforge/trayforge/pkg/csg"
	"github.com/trayforge/trayforge/pkg/errors"
	"github.com/trayforge/trayforge/pkg/tray"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	depth       float64 // cavity depth above the floor (mm)
	floor       float64 // floor thickness (mm)
	wall        float64 // wall thickness (mm)
	round       float64 // height of the rounded bottom region (mm)
	output      string  // output .scad path (derived from sizes if empty)
	calibration string  // calibration file path (default lookup if empty)
	yes         bool    // accept the round-depth clamp without prompting
	noDiagram   bool    // skip the layout diagram
}

// generateCommand creates the generate command, the main entry point:
// it validates the grid, resolves the round-depth conflict if any, builds
// the tray solid and writes the OpenSCAD file.
func (c *CLI) generateCommand() *cobra.Command {
	defaults := tray.DefaultParams()
	opts := generateOpts{
		depth: defaults.Depth,
		floor: defaults.Floor,
		wall:  defaults.Wall,
		round: defaults.RoundDepth,
	}

	cmd := &cobra.Command{
		Use:   "generate <column-widths> <row-heights>",
		Short: "Generate a tray and write the OpenSCAD file",
		Long: `Generate a storage tray from per-column widths and per-row heights.

The tray is specified by the interior dimensions of each column and each
row, x-axis first. All units are millimeters. The first row height is the
bottommost row. For a tray that looks like this:

	         -------------------------
	   60mm  |       |    |          |
	         -------------------------
	   60mm  |       |    |          |
	         -------------------------
	         |       |    |          |
	  100mm  |       |    |          |
	         -------------------------
	   30mm  |       |    |          |
	         -------------------------
	           40mm   25mm    70mm

Examples:
  trayforge generate [40,25,70] [30,100,60,60]
  trayforge generate 40,25,70 30,100,60,60 --depth=55 --wall=1.5
  trayforge generate [40,25,70] [30,100,60,60] --round=0 -o flat_tray.scad`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), args[0], args[1], &opts)
		},
	}

	cmd.Flags().Float64Var(&opts.depth, "depth", opts.depth, "depth of the tray above the floor (mm)")
	cmd.Flags().Float64Var(&opts.floor, "floor", opts.floor, "thickness of the tray floor (mm)")
	cmd.Flags().Float64Var(&opts.wall, "wall", opts.wall, "thickness of the walls (mm)")
	cmd.Flags().Float64Var(&opts.round, "round", opts.round, "height of the rounded cavity bottom (mm, 0 for flat)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output .scad file (derived from sizes if empty)")
	cmd.Flags().StringVar(&opts.calibration, "calibration", "", "printer calibration file (default: XDG config dir)")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "accept the round-depth clamp without prompting")
	cmd.Flags().BoolVar(&opts.noDiagram, "no-diagram", false, "skip the layout diagram")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, xArg, yArg string, opts *generateOpts) error {
	xSizes, err := parseSizeList(xArg)
	if err != nil {
		return err
	}
	ySizes, err := parseSizeList(yArg)
	if err != nil {
		return err
	}

	params := tray.Params{
		Depth:      opts.depth,
		Floor:      opts.floor,
		Wall:       opts.wall,
		RoundDepth: opts.round,
	}
	params, err = c.resolveRoundDepth(params, opts.yes)
	if err != nil {
		return err
	}

	scale, err := c.loadCalibration(opts.calibration)
	if err != nil {
		return err
	}

	result, err := tray.Build(xSizes, ySizes, params, scale)
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = defaultOutputName(xSizes, ySizes)
	}
	if err := csg.ExportSCAD(output, result.Solid, csg.DefaultHeader); err != nil {
		return err
	}

	printSuccess("Tray generated")
	printFile(output)
	printNewline()
	printDimensions(result.Width, result.Height, params)
	if !opts.noDiagram {
		printNewline()
		fmt.Println(buildDiagram(xSizes, ySizes, params))
	}
	printNewline()
	printNextStep("Render a printable mesh", "trayforge render "+output)

	return nil
}

// resolveRoundDepth applies the clamp-or-abort policy when the requested
// rounding leaves too little straight wall below the rim. The core rejects
// the conflict; the decision to clamp belongs here, with the operator.
func (c *CLI) resolveRoundDepth(p tray.Params, assumeYes bool) (tray.Params, error) {
	if !tray.NeedsClamp(p.Depth, p.RoundDepth) {
		return p, nil
	}

	clamped, _ := tray.ClampRoundDepth(p.Depth, p.RoundDepth)
	printWarning("round depth %g mm leaves less than %g mm of straight wall below the rim", p.RoundDepth, tray.ClampMargin)

	ok := assumeYes
	if !ok {
		var err error
		ok, err = confirm(fmt.Sprintf("Shorten round depth to %g mm?", clamped))
		if err != nil {
			return p, errors.New(errors.ErrCodeInvalidRoundDepth,
				"round depth %g exceeds depth %g minus the %g mm margin; re-run with --yes to clamp or pass a smaller --round",
				p.RoundDepth, p.Depth, tray.ClampMargin)
		}
	}
	if !ok {
		return p, errors.New(errors.ErrCodeInvalidRoundDepth, "aborted: round depth %g not accepted", p.RoundDepth)
	}

	c.Logger.Infof("Round depth clamped from %g to %g mm", p.RoundDepth, clamped)
	p.RoundDepth = clamped
	return p, nil
}

// loadCalibration resolves the calibration scale. An explicit path must
// load; the default location silently degrades to identity when absent,
// which is reported so the operator knows no correction was applied.
func (c *CLI) loadCalibration(path string) (calibration.Scale, error) {
	if path != "" {
		return calibration.Load(path)
	}

	defaultPath, err := calibration.DefaultPath()
	if err != nil {
		c.Logger.Warnf("Cannot determine calibration path: %v", err)
		return calibration.Identity(), nil
	}

	scale, err := calibration.Load(defaultPath)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		c.Logger.Info("No calibration data found, assuming perfect calibration")
		return calibration.Identity(), nil
	}
	if err != nil {
		// A present-but-broken calibration file should fail loudly, not
		// silently print a miscalibrated tray.
		return calibration.Identity(), err
	}

	c.Logger.Debugf("Loaded calibration from %s (x=%g y=%g z=%g)", defaultPath, scale.X, scale.Y, scale.Z)
	return scale, nil
}
