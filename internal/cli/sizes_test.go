package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trayforge/trayforge/pkg/errors"
)

func TestParseSizeList(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []float64
	}{
		{"bracketed", "[40,25,70]", []float64{40, 25, 70}},
		{"bare", "40,25,70", []float64{40, 25, 70}},
		{"single", "[40]", []float64{40}},
		{"decimals", "12.5,7.25", []float64{12.5, 7.25}},
		{"spaces", "[ 40, 25 , 70 ]", []float64{40, 25, 70}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := parseSizeList(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestParseSizeListErrors(t *testing.T) {
	for _, in := range []string{"", "[]", "[40,,70]", "[40,abc]", "40;25"} {
		t.Run(in, func(t *testing.T) {
			_, err := parseSizeList(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "got %v", err)
		})
	}
}

func TestDefaultOutputName(t *testing.T) {
	got := defaultOutputName([]float64{40, 25, 70}, []float64{30, 100, 60, 60})
	assert.Equal(t, "tray_40x25x70_by_30x100x60x60.scad", got)

	got = defaultOutputName([]float64{12.5}, []float64{30})
	assert.Equal(t, "tray_12.5_by_30.scad", got)
}
