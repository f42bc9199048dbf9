package calibration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trayforge/trayforge/pkg/errors"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calibration.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "[scale]\nx = 1.004\ny = 0.997\nz = 1.001\n")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Scale{X: 1.004, Y: 0.997, Z: 1.001}, s)
	assert.False(t, s.IsIdentity())
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")

	s, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
	assert.Equal(t, Identity(), s, "missing file should fall back to identity")
}

func TestLoadMalformed(t *testing.T) {
	path := writeFile(t, "[scale\nx = oops")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestLoadRejectsNonPositive(t *testing.T) {
	path := writeFile(t, "[scale]\nx = 0\ny = 1\nz = 1\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidParameter))
}

func TestIdentity(t *testing.T) {
	s := Identity()
	assert.True(t, s.IsIdentity())
	assert.NoError(t, s.Validate())
}
