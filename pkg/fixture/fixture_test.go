package fixture

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/chartframe/pkg/errors"
	"github.com/matzehuels/chartframe/pkg/pipeline"
	"github.com/matzehuels/chartframe/pkg/spec"
	"github.com/matzehuels/chartframe/pkg/textmeasure"
)

func TestLoad(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "bars.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Name != "monthly revenue" {
		t.Errorf("Name = %q", f.Name)
	}
	if f.Container.Width != 400 || f.Container.Height != 300 {
		t.Errorf("Container = %+v", f.Container)
	}
	if len(f.Axes) != 2 || f.Axes[0].TickSize != spec.DefaultTickSize {
		t.Errorf("axes = %+v", f.Axes)
	}
	if len(f.Series) != 3 || len(f.Series[0].Data) != 3 {
		t.Fatalf("series = %+v", f.Series)
	}
	if v, ok := spec.ToFloat(f.Series[0].Data[1]["value"]); !ok || v != 5 {
		t.Errorf("feb revenue = %v", f.Series[0].Data[1]["value"])
	}
	if len(f.Annotations) != 1 || f.Annotations[0].Kind != spec.AnnotationLine {
		t.Errorf("annotations = %+v", f.Annotations)
	}
	if len(f.Steps) != 2 || f.Steps[0].Pointer == nil || f.Steps[0].Pointer.X != 200 {
		t.Errorf("steps = %+v", f.Steps)
	}
}

func TestStepInputs(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "bars.toml"))
	if err != nil {
		t.Fatal(err)
	}
	f.State.DeselectedSeries = []string{"target"}

	hover := f.StepInputs(0)
	if diff := cmp.Diff([]string{"target"}, hover.State.DeselectedSeries); diff != "" {
		t.Errorf("step without deselection should inherit it:\n%s", diff)
	}
	hide := f.StepInputs(1)
	if diff := cmp.Diff([]string{"costs"}, hide.State.DeselectedSeries); diff != "" {
		t.Errorf("step deselection mismatch (-want +got):\n%s", diff)
	}
	if hide.State.HighlightedKey != "revenue" {
		t.Errorf("HighlightedKey = %q", hide.State.HighlightedKey)
	}
}

func TestLoadRotated(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "rotated.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s, err := f.ResolveSettings()
	if err != nil {
		t.Fatal(err)
	}
	if s.Rotation != spec.Rotation90 || !s.BrushEnabled {
		t.Errorf("settings = %+v", s)
	}
	if d := f.Axes[1].Domain; d == nil || d.Max == nil || *d.Max != 20 {
		t.Errorf("y domain = %+v", d)
	}
	if !f.Steps[0].Dragging || f.Steps[0].DownAt == nil {
		t.Errorf("drag step = %+v", f.Steps[0])
	}
}

func TestFixturesCompute(t *testing.T) {
	for _, name := range []string{"bars.toml", "rotated.toml"} {
		t.Run(name, func(t *testing.T) {
			f, err := Load(filepath.Join("testdata", name))
			if err != nil {
				t.Fatal(err)
			}
			c := pipeline.New(pipeline.Options{Measurer: textmeasure.NewFixed(10, 8)})
			defer c.Close(context.Background())

			out, err := c.Compute(context.Background(), f.Inputs())
			if err != nil {
				t.Fatalf("Compute: %v", err)
			}
			if out.Empty() {
				t.Error("fixture chart should not be empty")
			}
			for i := range f.Steps {
				if _, err := c.Compute(context.Background(), f.StepInputs(i)); err != nil {
					t.Errorf("step %d: %v", i, err)
				}
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		code errors.Code
	}{
		{"missing", filepath.Join("testdata", "missing.toml"), errors.ErrCodeFileNotFound},
		{"invalid container", filepath.Join("testdata", "invalid.toml"), errors.ErrCodeInvalidFixture},
		{"empty path", "", errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.path); !errors.Is(err, tt.code) {
				t.Errorf("Load(%q) = %v, want %s", tt.path, err, tt.code)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.Code
	}{
		{"syntax", "name = ", errors.ErrCodeInvalidFixture},
		{"no series", "[container]\nwidth = 10\nheight = 10\n", errors.ErrCodeInvalidFixture},
		{
			"bad axis position",
			"[container]\nwidth = 10\nheight = 10\n[[axes]]\nid = \"x\"\nposition = \"middle\"\n" +
				"[[series]]\nid = \"a\"\nkind = \"bar\"\nx_accessor = \"x\"\ny_accessors = [\"y\"]\n",
			errors.ErrCodeInvalidAxis,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.data)); !errors.Is(err, tt.code) {
				t.Errorf("Decode() = %v, want %s", err, tt.code)
			}
		})
	}
}
