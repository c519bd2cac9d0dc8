package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartframe/pkg/render/preview"
)

// previewCommand creates the preview command for drawing a pass as SVG.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		output     string
		step       string
		overlay    bool
		background string
		size       sizeFlags
	)

	cmd := &cobra.Command{
		Use:   "preview [fixture.toml]",
		Short: "Draw a layout pass as SVG",
		Long: `Draw a layout pass as SVG.

The preview shows the frame, axes, gridlines and series geometry of the last
pass of a fixture (or of --step). With --overlay the cursor, brush and
highlight state of that pass are drawn on top.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeFixtures,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd.Context(), args[0], step, output, overlay, background, size)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.svg)")
	cmd.Flags().StringVar(&step, "step", "", "draw the named step instead of the last one")
	cmd.Flags().BoolVar(&overlay, "overlay", false, "draw cursor, brush and highlight state")
	cmd.Flags().StringVar(&background, "background", "white", "background color, empty for none")
	size.register(cmd)

	return cmd
}

func (c *CLI) runPreview(ctx context.Context, path, step, output string, overlay bool, background string, size sizeFlags) error {
	f, passes, err := c.loadAndRun(ctx, path, step, size)
	if err != nil {
		return err
	}
	last := passes[len(passes)-1]

	opts := []preview.Option{preview.WithAxes(f.Axes)}
	if overlay {
		opts = append(opts, preview.WithOverlay())
	}
	if background != "" {
		opts = append(opts, preview.WithBackground(background))
	}
	svg := preview.RenderSVG(last.Output, last.Inputs.Container, opts...)

	if output == "" {
		output = strings.TrimSuffix(path, filepath.Ext(path)) + ".svg"
	}
	if err := os.WriteFile(output, svg, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	newReport(c.Out).wrote("Preview of "+last.Name, output)
	return nil
}
