package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trayforge/trayforge/pkg/tray"
)

func TestBuildDiagram(t *testing.T) {
	p := tray.Params{Depth: 38, Floor: 1, Wall: 1.5, RoundDepth: 0}

	out := buildDiagram([]float64{40, 25}, []float64{30, 100}, p)

	assert.Contains(t, out, "40 mm")
	assert.Contains(t, out, "25 mm")
	assert.Contains(t, out, "30 mm")
	assert.Contains(t, out, "100 mm")

	// Flat 40x30x38 cell: exactly 45.6 mL.
	assert.Contains(t, out, "45.6 mL")

	// The first row height is the bottommost physical row, so it must be
	// rendered below the others.
	lines := strings.Split(out, "\n")
	row100, row30 := -1, -1
	for i, l := range lines {
		if strings.Contains(l, "100 mm") && row100 == -1 {
			row100 = i
		}
		if strings.Contains(l, "30 mm") && !strings.Contains(l, "100 mm") && row30 == -1 {
			row30 = i
		}
	}
	require.NotEqual(t, -1, row100)
	require.NotEqual(t, -1, row30)
	assert.Less(t, row100, row30, "later rows print above earlier ones")
}

func TestBuildDiagramCellCount(t *testing.T) {
	p := tray.Params{Depth: 10, Floor: 1, Wall: 1, RoundDepth: 0}

	out := buildDiagram([]float64{10, 10, 10}, []float64{10, 10}, p)
	assert.Equal(t, 6, strings.Count(out, "mL"), "one capacity figure per cell")
}
