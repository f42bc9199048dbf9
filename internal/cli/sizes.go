package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/trayforge/trayforge/pkg/errors"
)

// parseSizeList parses a comma-separated list of millimeter sizes.
// Brackets are optional: both "[40,25,70]" and "40,25,70" are accepted.
// Validation of the values themselves (positivity) happens in the core.
func parseSizeList(arg string) ([]float64, error) {
	s := strings.TrimSpace(arg)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if strings.TrimSpace(s) == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "size list %q is empty", arg)
	}

	parts := strings.Split(s, ",")
	sizes := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"invalid size %q in list %q (expected numbers like 40 or 25.5)", strings.TrimSpace(p), arg)
		}
		sizes = append(sizes, v)
	}
	return sizes, nil
}

// defaultOutputName derives the SCAD filename from the grid dimensions,
// e.g. tray_40x25x70_by_30x100x60x60.scad.
func defaultOutputName(xSizes, ySizes []float64) string {
	return fmt.Sprintf("tray_%s_by_%s.scad", joinSizes(xSizes), joinSizes(ySizes))
}

func joinSizes(sizes []float64) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = strconv.FormatFloat(s, 'g', -1, 64)
	}
	return strings.Join(parts, "x")
}
