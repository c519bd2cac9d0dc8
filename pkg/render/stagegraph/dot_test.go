package stagegraph

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/chartframe/pkg/dag"
	"github.com/matzehuels/chartframe/pkg/pipeline"
)

func TestToDOT(t *testing.T) {
	dot := ToDOT(pipeline.StageGraph(), Options{})

	for _, want := range []string{
		"digraph stages {",
		`"settings" [label="settings"];`,
		`"ticks" [label="ticks", peripheries=2];`,
		`"settings" -> "domain";`,
		`"geometries" -> "interaction";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "fillcolor=\""+recomputedColor) {
		t.Error("stages colored without pass hits")
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(pipeline.StageGraph(), Options{Detailed: true})
	if want := `label="ticks\ndepth: 2\nmeasures: true"`; !strings.Contains(dot, want) {
		t.Errorf("DOT missing %q:\n%s", want, dot)
	}
}

func TestToDOTHits(t *testing.T) {
	dot := ToDOT(pipeline.StageGraph(), Options{Hits: map[string]bool{
		"settings":    true,
		"interaction": false,
	}})

	tests := []struct {
		stage string
		want  string
	}{
		{"settings", `"settings" [label="settings", fillcolor="white", fontcolor="#6b7280"];`},
		{"interaction", `"interaction" [label="interaction", fillcolor="` + recomputedColor + `"];`},
		{"domain", `"domain" [label="domain"];`},
	}
	for _, tt := range tests {
		t.Run(tt.stage, func(t *testing.T) {
			if !strings.Contains(dot, tt.want) {
				t.Errorf("DOT missing %q:\n%s", tt.want, dot)
			}
		})
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="44pt" viewBox="0.00 0.00 62.00 44.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 44.00" width="62" height="44"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() =\n%s\nwant\n%s", got, want)
	}

	plain := []byte(`<svg><g/></svg>`)
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("svg without viewBox changed: %s", got)
	}
}

func TestRenderSVG(t *testing.T) {
	g := dag.New()
	_ = g.AddNode(dag.Node{ID: "a"})
	_ = g.AddNode(dag.Node{ID: "b"})
	_ = g.AddEdge(dag.Edge{From: "a", To: "b"})

	svg, err := RenderSVG(context.Background(), ToDOT(g, Options{}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !strings.Contains(string(svg), `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0`) {
		t.Errorf("root element not normalized:\n%s", svg)
	}
}
