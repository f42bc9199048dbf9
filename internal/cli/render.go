package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trayforge/trayforge/pkg/scad"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output .stl path (derived from the input if empty)
	binary  string // renderer executable
	noCache bool   // bypass the mesh cache
}

// renderCommand creates the render command: it hands a generated SCAD
// file to the external OpenSCAD binary to produce a printable STL mesh.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{binary: scad.DefaultBinary}

	cmd := &cobra.Command{
		Use:   "render <file.scad>",
		Short: "Render a SCAD file to an STL mesh using OpenSCAD",
		Long: `Render a generated SCAD file to a printable STL mesh.

Rendering is delegated to the OpenSCAD binary, which must be installed
separately. Smooth rounded bottoms tessellate slowly, so renders can take
a few minutes; results are cached by content, and re-rendering an
unchanged tray returns immediately.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output .stl file (derived from the input if empty)")
	cmd.Flags().StringVar(&opts.binary, "binary", opts.binary, "renderer executable")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the mesh cache")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, ".scad") + ".stl"
	}

	meshCache := newRenderCache(opts.noCache)
	defer meshCache.Close()
	renderer := scad.NewRenderer(opts.binary, meshCache)

	spinner := newSpinnerWithContext(ctx, "Rendering mesh (this can take a few minutes)...")
	spinner.Start()

	cached, err := renderer.RenderSTL(ctx, input, output)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			spinner.Stop()
			return err
		}
		spinner.StopWithError(fmt.Sprintf("Render failed: %v", err))
		return err
	}

	if cached {
		spinner.StopWithSuccess("Reused cached mesh")
	} else {
		spinner.StopWithSuccess("Mesh rendered")
	}
	printFile(output)
	return nil
}
