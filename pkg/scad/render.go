package scad

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/trayforge/trayforge/pkg/cache"
	"github.com/trayforge/trayforge/pkg/errors"
)

// DefaultBinary is the renderer executable looked up on PATH.
const DefaultBinary = "openscad"

// Renderer converts SCAD files to STL meshes via the external OpenSCAD
// binary, consulting a cache before spawning the process.
type Renderer struct {
	binary string
	cache  cache.Cache
}

// NewRenderer creates a renderer using the given binary and cache.
// An empty binary falls back to [DefaultBinary]; a nil cache disables
// memoization.
func NewRenderer(binary string, c cache.Cache) *Renderer {
	if binary == "" {
		binary = DefaultBinary
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Renderer{binary: binary, cache: c}
}

// RenderSTL renders the SCAD file at scadPath into an STL at stlPath.
// It returns true if the result came from the cache without invoking the
// renderer. The context cancels an in-flight render.
func (r *Renderer) RenderSTL(ctx context.Context, scadPath, stlPath string) (bool, error) {
	src, err := os.ReadFile(scadPath)
	if os.IsNotExist(err) {
		return false, errors.Wrap(errors.ErrCodeFileNotFound, err, "scad file %s", scadPath)
	}
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", scadPath)
	}

	key := cache.Key("stl", []byte(r.binary), src)
	if data, hit, err := r.cache.Get(ctx, key); err == nil && hit {
		if err := os.WriteFile(stlPath, data, 0644); err != nil {
			return false, errors.Wrap(errors.ErrCodeInternal, err, "write cached mesh to %s", stlPath)
		}
		return true, nil
	}

	if _, err := exec.LookPath(r.binary); err != nil {
		return false, errors.Wrap(errors.ErrCodeRendererNotFound, err,
			"%s not found on PATH; install OpenSCAD to render meshes", r.binary)
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.binary, "-o", stlPath, scadPath)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return false, errors.Wrap(errors.ErrCodeRenderFailed, err,
			"%s failed: %s", r.binary, tail(stderr.String(), 3))
	}

	mesh, err := os.ReadFile(stlPath)
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeRenderFailed, err,
			"%s exited cleanly but produced no output", r.binary)
	}
	// Cache write failures are not fatal - the render already succeeded.
	_ = r.cache.Set(ctx, key, mesh, 0)

	return false, nil
}

// tail returns the last n non-empty lines of s, for compact error messages
// from a chatty renderer.
func tail(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	var kept []string
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			kept = append(kept, l)
		}
	}
	if len(kept) > n {
		kept = kept[len(kept)-n:]
	}
	return strings.Join(kept, "; ")
}
