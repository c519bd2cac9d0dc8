package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartframe/pkg/pipeline"
	"github.com/matzehuels/chartframe/pkg/render/stagegraph"
)

// stagesCommand creates the stages command for drawing the stage graph.
func (c *CLI) stagesCommand() *cobra.Command {
	var (
		output   string
		format   string
		step     string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "stages [fixture.toml]",
		Short: "Draw the layout pipeline's stage graph",
		Long: `Draw the layout pipeline's stage graph.

Without a fixture the plain graph is drawn. With a fixture the stages are
colored by the cache outcome of its last pass (or of --step): filled stages
were recomputed, plain ones were reused.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeFixtures,
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return c.runStages(cmd.Context(), path, step, format, output, detailed)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatDOT, "output format: dot, svg")
	cmd.Flags().StringVar(&step, "step", "", "color by the named step instead of the last one")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show stage depth and metadata")

	return cmd
}

func (c *CLI) runStages(ctx context.Context, path, step, format, output string, detailed bool) error {
	if format != pipeline.FormatDOT && format != pipeline.FormatSVG {
		return fmt.Errorf("invalid stage graph format %q (must be dot or svg)", format)
	}

	opts := stagegraph.Options{Detailed: detailed}
	if path != "" {
		_, passes, err := c.loadAndRun(ctx, path, step, sizeFlags{})
		if err != nil {
			return err
		}
		last := passes[len(passes)-1]
		opts.Hits = last.Output.CacheInfo.Hits
		c.Logger.Info("coloring by pass", "pass", last.Name, "recomputed", len(last.Output.CacheInfo.Recomputed()))
	}

	data := []byte(stagegraph.ToDOT(pipeline.StageGraph(), opts))
	if format == pipeline.FormatSVG {
		spinner := newSpinnerWithContext(ctx, "Rendering stage graph...")
		spinner.Start()
		svg, err := stagegraph.RenderSVG(ctx, string(data))
		if err != nil {
			spinner.StopWithError("Rendering failed")
			return err
		}
		spinner.Stop()
		data = svg
	}

	if output == "" {
		_, err := c.Out.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}
	newReport(c.Out).wrote("Stage graph written", output)
	return nil
}
