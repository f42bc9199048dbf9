package scad

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trayforge/trayforge/pkg/cache"
	"github.com/trayforge/trayforge/pkg/errors"
)

// fakeRenderer writes a shell script that mimics "openscad -o out in" by
// emitting a fixed mesh, so render tests need no real OpenSCAD install.
func fakeRenderer(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake renderer script requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "fake-openscad")
	script := "#!/bin/sh\necho \"solid fake\" > \"$2\"\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func writeScad(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tray.scad")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRenderSTL(t *testing.T) {
	ctx := context.Background()
	r := NewRenderer(fakeRenderer(t), cache.NewNullCache())
	scadPath := writeScad(t, "cube([10, 10, 10]);\n")
	stlPath := filepath.Join(t.TempDir(), "tray.stl")

	cached, err := r.RenderSTL(ctx, scadPath, stlPath)
	require.NoError(t, err)
	assert.False(t, cached)

	data, err := os.ReadFile(stlPath)
	require.NoError(t, err)
	assert.Equal(t, "solid fake\n", string(data))
}

func TestRenderSTLUsesCache(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)

	bin := fakeRenderer(t)
	r := NewRenderer(bin, fc)
	scadPath := writeScad(t, "sphere(r=5);\n")

	out1 := filepath.Join(t.TempDir(), "a.stl")
	cached, err := r.RenderSTL(ctx, scadPath, out1)
	require.NoError(t, err)
	assert.False(t, cached, "first render must invoke the binary")

	// Remove the binary: a cache hit must not need it.
	require.NoError(t, os.Remove(bin))

	out2 := filepath.Join(t.TempDir(), "b.stl")
	cached, err = r.RenderSTL(ctx, scadPath, out2)
	require.NoError(t, err)
	assert.True(t, cached, "second render of identical source must hit the cache")

	data, err := os.ReadFile(out2)
	require.NoError(t, err)
	assert.Equal(t, "solid fake\n", string(data))
}

func TestRenderSTLMissingSource(t *testing.T) {
	r := NewRenderer(fakeRenderer(t), nil)
	_, err := r.RenderSTL(context.Background(), "/does/not/exist.scad", "out.stl")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
}

func TestRenderSTLMissingBinary(t *testing.T) {
	r := NewRenderer("definitely-not-a-real-renderer", nil)
	scadPath := writeScad(t, "cube([1, 1, 1]);\n")

	_, err := r.RenderSTL(context.Background(), scadPath, filepath.Join(t.TempDir(), "o.stl"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeRendererNotFound))
}

func TestTail(t *testing.T) {
	assert.Equal(t, "c; d; e", tail("a\nb\nc\nd\ne\n", 3))
	assert.Equal(t, "a", tail("a", 3))
	assert.Equal(t, "", tail("", 3))
}
