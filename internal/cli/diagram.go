package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/trayforge/trayforge/pkg/tray"
)

// buildDiagram renders the tray layout as a table with per-compartment
// capacity figures. Column headers carry the x sizes; the label column
// carries the y sizes. The first row height is the bottommost row of the
// physical tray, so rows are emitted in reverse to match the print bed
// orientation.
func buildDiagram(xSizes, ySizes []float64, p tray.Params) string {
	grid := tray.Capacities(xSizes, ySizes, p)

	headers := make([]string, len(xSizes)+1)
	headers[0] = ""
	for i, x := range xSizes {
		headers[i+1] = fmt.Sprintf("%g mm", x)
	}

	rows := make([][]string, 0, len(ySizes))
	for j := len(ySizes) - 1; j >= 0; j-- {
		row := make([]string, len(xSizes)+1)
		row[0] = fmt.Sprintf("%g mm", ySizes[j])
		for i := range xSizes {
			c := grid[j][i]
			row[i+1] = fmt.Sprintf("%.1f mL · %.2f cups", c.Milliliters, c.Cups)
		}
		rows = append(rows, row)
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleDim
			}
			return StyleValue
		})

	return t.Render()
}

// printDimensions prints the outer tray measurements.
func printDimensions(width, height float64, p tray.Params) {
	printKeyValue("Size", fmt.Sprintf("%.1f x %.1f mm (%.2f x %.2f cm)",
		width, height, width/10, height/10))
	printKeyValue("Depth", fmt.Sprintf("%.1f mm (with floor: %.1f mm)", p.Depth, p.Depth+p.Floor))
	printKeyValue("Wall", fmt.Sprintf("%.1f mm", p.Wall))
	printKeyValue("Floor", fmt.Sprintf("%.1f mm", p.Floor))
	printKeyValue("Round", fmt.Sprintf("%.1f mm", p.RoundDepth))
}
