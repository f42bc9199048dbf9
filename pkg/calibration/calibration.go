// Package calibration loads per-axis printer calibration factors.
//
// FDM printers exhibit small systematic dimensional error per axis. The
// correction is a multiplicative scale applied once to the whole assembled
// solid, measured with calibration-cube prints and stored in a TOML file:
//
//	[scale]
//	x = 1.004
//	y = 0.997
//	z = 1.001
//
// Missing calibration data is not an error: the tool degrades to identity
// scaling and reports that fact to the operator. The scale is loaded once
// at startup and treated as read-only for the rest of the run.
package calibration

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/trayforge/trayforge/pkg/errors"
)

// Scale holds multiplicative per-axis correction factors.
type Scale struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
	Z float64 `toml:"z"`
}

// Identity returns the no-correction scale, the documented fallback when
// no calibration file is available.
func Identity() Scale {
	return Scale{X: 1, Y: 1, Z: 1}
}

// IsIdentity reports whether the scale applies no correction.
func (s Scale) IsIdentity() bool {
	return s.X == 1 && s.Y == 1 && s.Z == 1
}

// Validate rejects non-positive factors. A zero or negative scale would
// collapse or mirror the solid, which is never a plausible calibration.
func (s Scale) Validate() error {
	for _, axis := range []struct {
		name  string
		value float64
	}{{"x", s.X}, {"y", s.Y}, {"z", s.Z}} {
		if axis.value <= 0 {
			return errors.New(errors.ErrCodeInvalidParameter,
				"calibration %s scale must be positive, got %g", axis.name, axis.value)
		}
	}
	return nil
}

// fileSchema is the on-disk TOML layout.
type fileSchema struct {
	Scale Scale `toml:"scale"`
}

// Load reads and validates a calibration file. A missing file is reported
// with the FILE_NOT_FOUND code so callers can distinguish "no calibration"
// (fall back to identity) from a present-but-broken file (fail loudly).
func Load(path string) (Scale, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Identity(), errors.Wrap(errors.ErrCodeFileNotFound, err, "calibration file %s", path)
	}
	if err != nil {
		return Identity(), errors.Wrap(errors.ErrCodeInvalidInput, err, "read calibration file %s", path)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return Identity(), errors.Wrap(errors.ErrCodeInvalidInput, err, "parse calibration file %s", path)
	}
	if err := file.Scale.Validate(); err != nil {
		return Identity(), err
	}
	return file.Scale, nil
}

// DefaultPath returns the standard calibration file location,
// $XDG_CONFIG_HOME/trayforge/calibration.toml or its ~/.config fallback.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "trayforge", "calibration.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "trayforge", "calibration.toml"), nil
}
