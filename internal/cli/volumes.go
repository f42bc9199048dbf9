package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/trayforge/trayforge/pkg/tray"
)

// volumesOpts holds the command-line flags shared by the reporting commands.
type volumesOpts struct {
	depth float64
	round float64
}

// volumesCommand creates the volumes command: a per-compartment capacity
// report without generating any geometry. Capacity only depends on cell
// size, depth and rounding, so wall/floor flags are not offered here.
func (c *CLI) volumesCommand() *cobra.Command {
	defaults := tray.DefaultParams()
	opts := volumesOpts{depth: defaults.Depth, round: defaults.RoundDepth}

	cmd := &cobra.Command{
		Use:   "volumes <column-widths> <row-heights>",
		Short: "Report the capacity of each compartment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVolumes(args[0], args[1], &opts)
		},
	}

	cmd.Flags().Float64Var(&opts.depth, "depth", opts.depth, "depth of the tray above the floor (mm)")
	cmd.Flags().Float64Var(&opts.round, "round", opts.round, "height of the rounded cavity bottom (mm, 0 for flat)")

	return cmd
}

func runVolumes(xArg, yArg string, opts *volumesOpts) error {
	xSizes, err := parseSizeList(xArg)
	if err != nil {
		return err
	}
	ySizes, err := parseSizeList(yArg)
	if err != nil {
		return err
	}
	if err := tray.ValidateDimensions(xSizes, ySizes); err != nil {
		return err
	}
	params := tray.Params{Depth: opts.depth, Floor: 0, Wall: 0, RoundDepth: opts.round}
	if err := params.Validate(); err != nil {
		return err
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Row", "Column", "Cell", "Capacity", "Cups").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return StyleValue
		})

	grid := tray.Capacities(xSizes, ySizes, params)
	var total float64
	for j, row := range grid {
		for i, cell := range row {
			t.Row(
				fmt.Sprintf("%d", j+1),
				fmt.Sprintf("%d", i+1),
				fmt.Sprintf("%g x %g mm", xSizes[i], ySizes[j]),
				fmt.Sprintf("%.1f mL", cell.Milliliters),
				fmt.Sprintf("%.2f", cell.Cups),
			)
			total += cell.Milliliters
		}
	}

	fmt.Println(t.Render())
	printKeyValue("Total", fmt.Sprintf("%.1f mL", total))
	return nil
}
