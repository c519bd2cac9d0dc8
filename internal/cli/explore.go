package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartframe/pkg/pipeline"
	"github.com/matzehuels/chartframe/pkg/spec"
)

// pointerStep is how far one key press moves the pointer, in pixels.
const pointerStep = 10.0

// exploreCommand creates the explore command for interactive pointer moves.
func (c *CLI) exploreCommand() *cobra.Command {
	var size sizeFlags

	cmd := &cobra.Command{
		Use:   "explore [fixture.toml]",
		Short: "Move a pointer over a chart interactively",
		Long: `Move a pointer over a chart interactively.

Arrow keys move the pointer, tab cycles the highlighted legend item and
space hides or shows it. Every move runs a layout pass; the view shows the
cursor value, tooltip and which stages the pass recomputed.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeFixtures,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExplore(cmd.Context(), args[0], size)
		},
	}
	size.register(cmd)

	return cmd
}

func (c *CLI) runExplore(ctx context.Context, path string, size sizeFlags) error {
	f, err := size.load(path)
	if err != nil {
		return err
	}
	ctrl := c.newController(f.Name)
	defer ctrl.Close(ctx)

	m, err := newExploreModel(ctx, ctrl, f.Inputs())
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithContext(ctx)).Run()
	return err
}

// =============================================================================
// exploreModel - Interactive pointer exploration
// =============================================================================

// exploreModel is the bubbletea model driving one controller with pointer
// and legend moves.
type exploreModel struct {
	ctx  context.Context
	ctrl *pipeline.Controller

	in  pipeline.Inputs
	out *pipeline.Output
	err error

	// legend is the index of the highlighted legend item, -1 for none.
	legend int
}

// newExploreModel runs the first pass and places the pointer at the
// center of the frame.
func newExploreModel(ctx context.Context, ctrl *pipeline.Controller, in pipeline.Inputs) (exploreModel, error) {
	m := exploreModel{ctx: ctx, ctrl: ctrl, in: in, legend: -1}
	out, err := ctrl.Compute(ctx, in)
	if err != nil {
		return m, err
	}
	fr := out.Frame.Container
	m.in.State.Pointer = &spec.Point{X: fr.Left + fr.Width/2, Y: fr.Top + fr.Height/2}
	m.recompute()
	return m, m.err
}

func (m *exploreModel) recompute() {
	out, err := m.ctrl.Compute(m.ctx, m.in)
	if err != nil {
		m.err = err
		return
	}
	m.out, m.err = out, nil
}

// move shifts the pointer, bringing it back to the container center when
// it was outside.
func (m *exploreModel) move(dx, dy float64) {
	p := m.in.State.Pointer
	if p == nil {
		p = &spec.Point{X: m.in.Container.Width / 2, Y: m.in.Container.Height / 2}
	} else {
		p = &spec.Point{
			X: min(max(p.X+dx, 0), m.in.Container.Width),
			Y: min(max(p.Y+dy, 0), m.in.Container.Height),
		}
	}
	m.in.State.Pointer = p
}

func (m *exploreModel) cycleLegend() {
	n := len(m.out.Legend.Items)
	if n == 0 {
		return
	}
	m.legend++
	if m.legend >= n {
		m.legend = -1
	}
	m.in.State.HighlightedKey = ""
	if m.legend >= 0 {
		m.in.State.HighlightedKey = string(m.out.Legend.Items[m.legend].Key)
	}
}

func (m *exploreModel) toggleLegend() {
	if m.legend < 0 || m.legend >= len(m.out.Legend.Items) {
		return
	}
	key := string(m.out.Legend.Items[m.legend].Key)
	st := &m.in.State
	if i := slices.Index(st.DeselectedSeries, key); i >= 0 {
		st.DeselectedSeries = slices.Delete(slices.Clone(st.DeselectedSeries), i, i+1)
	} else {
		st.DeselectedSeries = append(slices.Clone(st.DeselectedSeries), key)
	}
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeySpace {
		m.toggleLegend()
		m.recompute()
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		m.move(-pointerStep, 0)
	case "right", "l":
		m.move(pointerStep, 0)
	case "up", "k":
		m.move(0, -pointerStep)
	case "down", "j":
		m.move(0, pointerStep)
	case "o":
		m.in.State.Pointer = nil
	case "tab":
		m.cycleLegend()
	default:
		return m, nil
	}
	m.recompute()
	return m, nil
}

func (m exploreModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Explore"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("←/→/↑/↓ move  o leave  tab legend  space hide  q quit"))
	b.WriteString("\n\n")

	row := func(k, v string) {
		b.WriteString(labelStyle.Render(k) + " " + valueStyle.Render(v) + "\n")
	}

	if p := m.in.State.Pointer; p != nil {
		row("pointer", fmt.Sprintf("(%.0f, %.0f)", p.X, p.Y))
	} else {
		row("pointer", "outside")
	}
	if m.err != nil {
		b.WriteString("\n" + errStyle.Render(markErr+" "+m.err.Error()) + "\n")
		return b.String()
	}

	in := m.out.Interaction
	row("style", string(in.PointerStyle))
	if in.Value != nil {
		row("cursor", fmt.Sprintf("%v", in.Value))
	}
	if in.Panel >= 0 && len(m.out.Panels.Panels) > 1 {
		row("panel", fmt.Sprintf("%d", in.Panel))
	}
	row("recomputed", strings.Join(m.out.CacheInfo.Recomputed(), ", "))
	b.WriteString("\n")

	for i, it := range m.out.Legend.Items {
		cursor := "  "
		if i == m.legend {
			cursor = markFocus + " "
		}
		line := cursor + lipgloss.NewStyle().Foreground(lipgloss.Color(it.Color)).Render("■") + " " + it.Name
		if it.Deselected {
			line = mutedStyle.Render(cursor + "□ " + it.Name)
		}
		b.WriteString(line + "\n")
	}

	if len(in.Tooltip) > 0 {
		b.WriteString("\n")
		for _, t := range in.Tooltip {
			line := fmt.Sprintf("%s %s = %s", t.Series, t.X, t.Y)
			if t.Highlighted {
				line = focusStyle.Render(line)
			}
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}
