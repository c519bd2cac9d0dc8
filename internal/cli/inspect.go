package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartframe/pkg/pipeline"
	"github.com/matzehuels/chartframe/pkg/spec"
)

// maxLabels caps the tick labels listed per axis.
const maxLabels = 6

// inspectCommand creates the inspect command for summarizing fixture runs.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		step string
		size sizeFlags
	)

	cmd := &cobra.Command{
		Use:   "inspect [fixture.toml]",
		Short: "Run a fixture and summarize every layout pass",
		Long: `Run a fixture and summarize every layout pass.

The initial state runs first, then every step of the fixture's interaction
script on the same controller. Each pass lists the stages it recomputed; the
last pass is shown in detail: frame, axes, geometry counts, legend and
interaction state.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeFixtures,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], step, size)
		},
	}

	cmd.Flags().StringVar(&step, "step", "", "stop after the named step (\"initial\" for the initial state)")
	size.register(cmd)

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, path, step string, size sizeFlags) error {
	f, passes, err := c.loadAndRun(ctx, path, step, size)
	if err != nil {
		return err
	}

	r := newReport(c.Out)
	r.title(f.Name, f.Description)
	r.blank()

	for _, p := range passes {
		r.pass(p.Name, p.Output.CacheInfo, p.Output.Stats.Total)
	}
	r.blank()

	last := passes[len(passes)-1]
	r.output(last.Inputs, last.Output)

	r.blank()
	r.next("Preview", fmt.Sprintf("%s preview %s", appName, path))
	return nil
}

// output prints the detail view of one pass.
func (r *report) output(in pipeline.Inputs, out *pipeline.Output) {
	if out.Empty() {
		r.warn("chart is empty")
	}

	fr := out.Frame.Container
	r.field("container", fmt.Sprintf("%gx%g", in.Container.Width, in.Container.Height))
	r.field("frame", fmt.Sprintf("%.1fx%.1f at (%.1f, %.1f)", fr.Width, fr.Height, fr.Left, fr.Top))
	r.field("rotation", fmt.Sprintf("%d", out.Config.Settings.Rotation))
	r.field("panels", fmt.Sprintf("%d", len(out.Panels.Panels)))
	r.blank()

	r.line(renderTable([]string{"Axis", "Position", "Ticks", "Labels"}, axisRows(in.Specs.Axes, out)))
	r.line(renderTable([]string{"Panel", "Bars", "Lines", "Areas", "Annotations"}, geometryRows(out)))
	r.line(renderTable([]string{"Series", "Color", "State"}, legendRows(out)))

	r.interaction(out.Interaction)
}

func axisRows(axes []spec.AxisSpec, out *pipeline.Output) [][]string {
	var rows [][]string
	for _, a := range axes {
		p, ok := out.Axes.Projections[a.ID]
		if !ok {
			continue
		}
		var labels []string
		for _, t := range p.Visible {
			if t.Label != "" {
				labels = append(labels, t.Label)
			}
		}
		more := ""
		if len(labels) > maxLabels {
			more = fmt.Sprintf(" +%d", len(labels)-maxLabels)
			labels = labels[:maxLabels]
		}
		rows = append(rows, []string{
			a.ID,
			string(a.Position),
			fmt.Sprintf("%d/%d", len(p.Visible), len(p.Ticks)),
			strings.Join(labels, " ") + more,
		})
	}
	return rows
}

func geometryRows(out *pipeline.Output) [][]string {
	var rows [][]string
	for i, g := range out.Geometries.Panels {
		name := fmt.Sprintf("%d", i)
		if i < len(out.Panels.Panels) {
			if p := out.Panels.Panels[i]; p.Title != "" {
				name += " " + p.Title
			}
		}
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%d", g.Counts.Bars),
			fmt.Sprintf("%d", g.Counts.Lines),
			fmt.Sprintf("%d", g.Counts.Areas),
			fmt.Sprintf("%d", g.Counts.Annotations),
		})
	}
	return rows
}

func legendRows(out *pipeline.Output) [][]string {
	rows := make([][]string, 0, len(out.Legend.Items))
	for _, it := range out.Legend.Items {
		state := "shown"
		if it.Deselected {
			state = "hidden"
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(it.Color)).Render("■") + " " + it.Color
		rows = append(rows, []string{it.Name, swatch, state})
	}
	return rows
}

func (r *report) interaction(in *pipeline.Interaction) {
	if in == nil {
		return
	}
	r.field("pointer", string(in.PointerStyle))
	if in.Value != nil {
		r.field("cursor", fmt.Sprintf("%v (panel %d)", in.Value, in.Panel))
	}
	if in.Brush != nil {
		b := in.Brush
		r.field("brush", fmt.Sprintf("%.1fx%.1f at (%.1f, %.1f)", b.Width, b.Height, b.Left, b.Top))
	}
	for _, t := range in.Tooltip {
		line := fmt.Sprintf("%s %s = %s", t.Series, t.X, t.Y)
		if t.Highlighted {
			r.line("  " + focusStyle.Render(markFocus+" "+line))
			continue
		}
		r.detail(line)
	}
}

// renderTable renders rows in the CLI's rounded table style.
func renderTable(headers []string, rows [][]string) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorLabel).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers(headers...).
		Rows(slices.Clone(rows)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Render()
}
