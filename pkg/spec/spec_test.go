package spec

import (
	"math"
	"testing"

	"github.com/matzehuels/chartframe/pkg/errors"
)

func TestIsYDomain(t *testing.T) {
	tests := []struct {
		pos  Position
		rot  Rotation
		want bool
	}{
		{PositionLeft, Rotation0, true},
		{PositionRight, Rotation180, true},
		{PositionBottom, Rotation0, false},
		{PositionTop, Rotation180, false},
		{PositionLeft, Rotation90, false},
		{PositionRight, RotationNeg90, false},
		{PositionBottom, Rotation90, true},
		{PositionTop, RotationNeg90, true},
	}

	for _, tt := range tests {
		if got := IsYDomain(tt.pos, tt.rot); got != tt.want {
			t.Errorf("IsYDomain(%s, %d) = %v, want %v", tt.pos, tt.rot, got, tt.want)
		}
	}
}

func TestResolveSettings(t *testing.T) {
	t.Run("defaults when none", func(t *testing.T) {
		s, err := Specs{}.ResolveSettings()
		if err != nil {
			t.Fatalf("ResolveSettings: %v", err)
		}
		if s.Rotation != Rotation0 || s.Brush() != BrushX {
			t.Errorf("unexpected defaults: %+v", s)
		}
	})

	t.Run("single", func(t *testing.T) {
		s, err := Specs{Settings: []Settings{{Rotation: Rotation90}}}.ResolveSettings()
		if err != nil {
			t.Fatalf("ResolveSettings: %v", err)
		}
		if s.Rotation != Rotation90 {
			t.Errorf("Rotation = %d, want 90", s.Rotation)
		}
	})

	t.Run("more than one", func(t *testing.T) {
		_, err := Specs{Settings: []Settings{{}, {}}}.ResolveSettings()
		if !errors.Is(err, errors.ErrCodeMultipleSettings) {
			t.Errorf("error = %v, want %s", err, errors.ErrCodeMultipleSettings)
		}
	})

	t.Run("bad rotation", func(t *testing.T) {
		_, err := Specs{Settings: []Settings{{Rotation: 45}}}.ResolveSettings()
		if !errors.Is(err, errors.ErrCodeInvalidRotation) {
			t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidRotation)
		}
	})
}

func TestSpecsValidate(t *testing.T) {
	tests := []struct {
		name  string
		specs Specs
		code  errors.Code
	}{
		{"ok", Specs{
			Axes:   []AxisSpec{NewAxis("left", PositionLeft)},
			Series: []SeriesSpec{{ID: "a", Kind: KindBar}},
		}, ""},
		{"bad position", Specs{Axes: []AxisSpec{{ID: "a", Position: "middle"}}}, errors.ErrCodeInvalidAxis},
		{"duplicate axis", Specs{Axes: []AxisSpec{NewAxis("a", PositionLeft), NewAxis("a", PositionTop)}}, errors.ErrCodeInvalidAxis},
		{"empty series id", Specs{Series: []SeriesSpec{{Kind: KindLine}}}, errors.ErrCodeInvalidSpec},
		{"unknown kind", Specs{Series: []SeriesSpec{{ID: "a", Kind: "pie"}}}, errors.ErrCodeInvalidSpec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.specs.Validate()
			if tt.code == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Validate() = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestThemeWithDefaults(t *testing.T) {
	th := Theme{BarsPadding: 2, ChartMargins: Margins{Left: 3}}.WithDefaults()
	if th.BarsPadding != 1 {
		t.Errorf("BarsPadding = %v, want clamped to 1", th.BarsPadding)
	}
	if th.ChartMargins.Left != 3 || th.ChartMargins.Top != 0 {
		t.Errorf("margins should be kept as given, got %+v", th.ChartMargins)
	}
	if th.TickLabel.FontSize != DefaultTheme().TickLabel.FontSize {
		t.Errorf("TickLabel.FontSize = %v, want default", th.TickLabel.FontSize)
	}
	if len(th.VizColors) == 0 {
		t.Error("VizColors should default to the library palette")
	}
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		in   any
		want float64
		ok   bool
	}{
		{1, 1, true},
		{int64(7), 7, true},
		{2.5, 2.5, true},
		{float32(0.5), 0.5, true},
		{"3", 0, false},
		{nil, 0, false},
		{math.NaN(), 0, false},
		{math.Inf(1), 0, false},
		{math.Inf(-1), 0, false},
	}

	for _, tt := range tests {
		got, ok := ToFloat(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ToFloat(%v) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestBoundString(t *testing.T) {
	if got := LowerBound(0).String(); got != "{min:0 max:_}" {
		t.Errorf("String() = %q", got)
	}
	if !CompleteBound(1, 2).IsComplete() || UpperBound(1).IsComplete() {
		t.Error("IsComplete mismatch")
	}
}
