// Package cli implements the chartframe command-line interface.
//
// The commands load chart fixtures (TOML files holding the specs, a
// container and an interaction script), run them through the layout
// pipeline and show what each pass produced. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
//   - inspect: run a fixture and summarize every pass
//   - snapshot: write the debug snapshot of a pass as JSON or BSON
//   - preview: draw a pass as SVG
//   - stages: draw the stage graph, colored by a pass's cache outcome
//   - explore: move a pointer over a chart interactively
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartframe/pkg/buildinfo"
	"github.com/matzehuels/chartframe/pkg/fixture"
	"github.com/matzehuels/chartframe/pkg/pipeline"
)

// appName is the application name used for display.
const appName = "chartframe"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command reports. Encoded snapshots and stage graphs
	// without an output path are written here too.
	Out io.Writer
}

// New creates a new CLI instance logging to w and reporting to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), Out: os.Stdout}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Chartframe lays out charts and shows how it got there",
		Long:         `Chartframe runs chart specifications through a memoized layout pipeline and reports the resulting frame, axes, geometry and interaction state.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.snapshotCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.stagesCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Fixture Runs
// =============================================================================

// initialPass names the pass of a fixture's initial state.
const initialPass = "initial"

// fixturePass is one layout pass of a fixture run.
type fixturePass struct {
	Name   string
	Inputs pipeline.Inputs
	Output *pipeline.Output
}

// newController creates a pipeline controller logging to the CLI logger.
func (c *CLI) newController(name string) *pipeline.Controller {
	return pipeline.New(pipeline.Options{
		InstanceID: name,
		Logger:     c.Logger.WithPrefix(name),
	})
}

// runFixture runs the initial state of a fixture and then its steps on one
// controller, so every pass after the first reuses what it can. With a
// non-empty until, the run stops after the step of that name.
func (c *CLI) runFixture(ctx context.Context, f *fixture.Fixture, until string) ([]fixturePass, error) {
	last := len(f.Steps) - 1
	if until != "" && until != initialPass {
		last = -1
		for i, s := range f.Steps {
			if s.Name == until {
				last = i
				break
			}
		}
		if last < 0 {
			return nil, fmt.Errorf("fixture %s has no step %q", f.Name, until)
		}
	} else if until == initialPass {
		last = -1
	}

	ctrl := c.newController(f.Name)
	defer ctrl.Close(ctx)

	passes := make([]fixturePass, 0, last+2)
	run := func(name string, in pipeline.Inputs) error {
		out, err := ctrl.Compute(ctx, in)
		if err != nil {
			return fmt.Errorf("pass %s: %w", name, err)
		}
		c.Logger.Debug("pass complete", "pass", name, "recomputed", out.CacheInfo.Recomputed())
		passes = append(passes, fixturePass{Name: name, Inputs: in, Output: out})
		return nil
	}

	if err := run(initialPass, f.Inputs()); err != nil {
		return nil, err
	}
	for i := 0; i <= last; i++ {
		if err := run(f.Steps[i].Name, f.StepInputs(i)); err != nil {
			return nil, err
		}
	}
	return passes, nil
}

// sizeFlags override the container size of a fixture.
type sizeFlags struct {
	width, height float64
}

func (s *sizeFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&s.width, "width", 0, "container width (default: from the fixture)")
	cmd.Flags().Float64Var(&s.height, "height", 0, "container height (default: from the fixture)")
}

// load reads a fixture and applies the size overrides.
func (s sizeFlags) load(path string) (*fixture.Fixture, error) {
	f, err := fixture.Load(path)
	if err != nil {
		return nil, err
	}
	if s.width > 0 {
		f.Container.Width = s.width
	}
	if s.height > 0 {
		f.Container.Height = s.height
	}
	return f, nil
}

// loadAndRun loads a fixture and runs it up to the named step.
func (c *CLI) loadAndRun(ctx context.Context, path, step string, size sizeFlags) (*fixture.Fixture, []fixturePass, error) {
	f, err := size.load(path)
	if err != nil {
		return nil, nil, err
	}
	passes, err := c.runFixture(ctx, f, step)
	if err != nil {
		return nil, nil, err
	}
	return f, passes, nil
}
