package pipeline

import (
	"slices"

	"github.com/matzehuels/chartframe/pkg/dag"
	"github.com/matzehuels/chartframe/pkg/memo"
)

// edges lists which stage outputs each stage reads.
var edges = []dag.Edge{
	{From: StageSettings, To: StageDomain},
	{From: StageSettings, To: StageTicks},
	{From: StageDomain, To: StageTicks},
	{From: StageSettings, To: StageFrame},
	{From: StageTicks, To: StageFrame},
	{From: StageSettings, To: StagePanels},
	{From: StageDomain, To: StagePanels},
	{From: StageFrame, To: StagePanels},
	{From: StageSettings, To: StageAxes},
	{From: StageDomain, To: StageAxes},
	{From: StageTicks, To: StageAxes},
	{From: StageFrame, To: StageAxes},
	{From: StageSettings, To: StageGeometries},
	{From: StageDomain, To: StageGeometries},
	{From: StageTicks, To: StageGeometries},
	{From: StagePanels, To: StageGeometries},
	{From: StageDomain, To: StageLegend},
	{From: StageGeometries, To: StageLegend},
	{From: StageSettings, To: StageInteraction},
	{From: StageDomain, To: StageInteraction},
	{From: StageFrame, To: StageInteraction},
	{From: StagePanels, To: StageInteraction},
	{From: StageGeometries, To: StageInteraction},
}

// measuring lists the stages that need a text surface.
var measuring = []string{StageTicks, StageGeometries}

// StageGraph returns the dependency graph of the derivation stages.
func StageGraph() *dag.DAG {
	g := dag.New()
	for _, id := range []string{
		StageSettings, StageDomain, StageTicks, StageFrame, StagePanels,
		StageAxes, StageGeometries, StageLegend, StageInteraction,
	} {
		_ = g.AddNode(dag.Node{ID: id, Meta: dag.Metadata{"measures": isMeasuring(id)}})
	}
	for _, e := range edges {
		_ = g.AddEdge(e)
	}
	return g
}

func isMeasuring(stage string) bool { return slices.Contains(measuring, stage) }

// declared writes the inputs a stage reads directly from [Inputs]. Each
// stage hashes only what it reads; everything else reaches it through the
// fingerprints of its parents.
func declared(h *memo.Hasher, stage string, in Inputs) {
	h.String(stage)
	switch stage {
	case StageSettings:
		h.Value(in.Specs.Settings)
	case StageDomain:
		h.Value(in.Specs.Series)
		for _, a := range in.Specs.Axes {
			h.String(a.ID).String(string(a.Position)).Value(a.Domain)
		}
		h.Value(in.State.DeselectedSeries)
	case StageTicks:
		h.Value(in.Specs.Axes)
		formatters(h, in)
	case StageFrame:
		h.Value(in.Specs.Axes)
		h.Value(in.Container)
	case StageAxes:
		h.Value(in.Specs.Axes)
	case StageGeometries:
		h.Value(in.Specs.Axes)
		h.Value(in.Specs.Series)
		h.Value(in.Specs.Annotations)
	case StageInteraction:
		h.Value(in.State)
		formatters(h, in)
	}
}

// formatters writes the label formatters, which the value encoding skips.
func formatters(h *memo.Hasher, in Inputs) {
	for _, a := range in.Specs.Axes {
		h.Func(a.TickFormat)
	}
	for _, s := range in.Specs.Series {
		h.Func(s.TickFormat)
	}
}

// plan fingerprints every stage of a pass, in order.
func plan(g *dag.DAG, order []string, in Inputs) (map[string]memo.Fingerprint, error) {
	fps := make(map[string]memo.Fingerprint, len(order))
	for _, stage := range order {
		h := memo.NewHasher()
		declared(h, stage, in)
		for _, parent := range g.Parents(stage) {
			h.String(parent).Fingerprint(fps[parent])
		}
		fp, err := h.Sum()
		if err != nil {
			return nil, err
		}
		fps[stage] = fp
	}
	return fps, nil
}
