package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartframe/pkg/debugstate"
	"github.com/matzehuels/chartframe/pkg/pipeline"
)

// snapshotCommand creates the snapshot command for writing debug snapshots.
func (c *CLI) snapshotCommand() *cobra.Command {
	var (
		output string
		format string
		step   string
		size   sizeFlags
	)

	cmd := &cobra.Command{
		Use:   "snapshot [fixture.toml]",
		Short: "Write the debug snapshot of a layout pass",
		Long: `Write the debug snapshot of a layout pass.

The snapshot is the computed state in the shape tests assert against: axis
labels and gridlines, bar rectangles, line and area points, legend and
cursor. JSON is written to stdout unless --output is given; BSON always
needs an output file.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeFixtures,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSnapshot(cmd.Context(), args[0], step, format, output, size)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (format follows the extension)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "snapshot format: json (default), bson")
	cmd.Flags().StringVar(&step, "step", "", "snapshot the named step instead of the last one")
	size.register(cmd)

	return cmd
}

func (c *CLI) runSnapshot(ctx context.Context, path, step, format, output string, size sizeFlags) error {
	if format == "" {
		format = pipeline.FormatJSON
		if output != "" {
			format = debugstate.FormatFor(output)
		}
	}
	if format != pipeline.FormatJSON && format != pipeline.FormatBSON {
		return fmt.Errorf("invalid snapshot format %q (must be json or bson)", format)
	}
	if format == pipeline.FormatBSON && output == "" {
		return fmt.Errorf("bson snapshots need --output")
	}

	prog := newProgress(c.Logger)
	f, passes, err := c.loadAndRun(ctx, path, step, size)
	if err != nil {
		return err
	}
	last := passes[len(passes)-1]
	snap := debugstate.New(last.Output, f.Axes)

	data, err := debugstate.Encode(snap, format)
	if err != nil {
		return err
	}
	if output == "" {
		_, err := c.Out.Write(data)
		return err
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}
	prog.done(fmt.Sprintf("Snapshot of %s", last.Name))

	r := newReport(c.Out)
	r.wrote("Snapshot written", output)
	r.blank()
	base := strings.TrimSuffix(output, filepath.Ext(output))
	r.next("Preview", fmt.Sprintf("%s preview %s -o %s.svg", appName, path, base))
	return nil
}
