package axis

import (
	"math"
	"slices"

	"github.com/matzehuels/chartframe/pkg/domain"
	"github.com/matzehuels/chartframe/pkg/scale"
	"github.com/matzehuels/chartframe/pkg/spec"
	"github.com/matzehuels/chartframe/pkg/textmeasure"
)

// TickDimensions holds the formatted ticks of one axis and the size of its
// largest label. BBox sizes include the label rotation; Text sizes do not.
type TickDimensions struct {
	Values []any    `json:"values"`
	Labels []string `json:"labels"`

	MaxLabelBBoxWidth  float64 `json:"max_label_bbox_width"`
	MaxLabelBBoxHeight float64 `json:"max_label_bbox_height"`
	MaxLabelTextWidth  float64 `json:"max_label_text_width"`
	MaxLabelTextHeight float64 `json:"max_label_text_height"`
}

// Empty reports whether the axis has no ticks.
func (d TickDimensions) Empty() bool { return len(d.Values) == 0 }

// ScaleFor builds the scale an axis shows over [r0, r1]: the x scale for
// the category axis of the rotation, the axis group's y scale otherwise.
// It reports false when the axis group has no data.
func ScaleFor(a spec.AxisSpec, r *domain.Result, rotation spec.Rotation, t spec.Theme, r0, r1 float64) (scale.Scale, bool) {
	if r.Empty() {
		return nil, false
	}
	if spec.IsYDomain(a.Position, rotation) {
		y, ok := r.YDomain(a.Group())
		if !ok {
			return nil, false
		}
		return scale.NewY(y, r0, r1, scale.YOptions{
			Ticks:        a.TickCount(),
			IntegersOnly: a.IntegersOnly,
		}), true
	}
	histogram := spec.IsHistogramMode(r.Specs)
	return scale.NewX(r.X, r0, r1, scale.XOptions{
		TotalBarsInCluster: scale.CountClusters(r.Series).Total,
		BarsPadding:        scale.BarsPadding(t, histogram),
		Histogram:          histogram,
		Ticks:              a.TickCount(),
		IntegersOnly:       a.IntegersOnly,
	}), true
}

// FormatterFor picks the label formatter of an axis. Y axes prefer the
// formatter of a series in their group, then the axis formatter, then the
// default formatter.
func FormatterFor(a spec.AxisSpec, series []spec.SeriesSpec, rotation spec.Rotation) spec.Formatter {
	if spec.IsYDomain(a.Position, rotation) {
		for _, s := range series {
			if s.Group() == a.Group() && s.TickFormat != nil {
				return s.TickFormat
			}
		}
	}
	if a.TickFormat != nil {
		return a.TickFormat
	}
	return spec.FormatValue
}

// ComputeTickDimensions formats and measures the ticks of every visible
// axis. Axes whose group has no data get an empty entry. With duplicate
// hiding on, an axis repeating the labels, title and position of an axis
// already kept is left out.
func ComputeTickDimensions(
	surface textmeasure.Surface,
	r *domain.Result,
	axes []spec.AxisSpec,
	settings spec.Settings,
	theme spec.Theme,
) map[string]TickDimensions {
	out := make(map[string]TickDimensions, len(axes))
	var kept []spec.AxisSpec

	for _, a := range axes {
		if a.Hide && !a.ShowGridLines {
			continue
		}
		s, ok := ScaleFor(a, r, settings.Rotation, theme, 0, 1)
		if !ok {
			out[a.ID] = TickDimensions{}
			continue
		}

		dims := measureTicks(surface, s.Ticks(), FormatterFor(a, r.Specs, settings.Rotation), labelStyle(a, theme))
		if settings.HideDuplicateAxes && isDuplicate(a, dims, kept, out) {
			continue
		}
		out[a.ID] = dims
		kept = append(kept, a)
	}
	return out
}

func labelStyle(a spec.AxisSpec, t spec.Theme) textmeasure.Style {
	st := textmeasure.StyleOf(t.LabelStyle(a))
	if a.Style != nil {
		st.Rotation = a.Style.LabelRotation
	}
	return st
}

func measureTicks(surface textmeasure.Surface, values []any, format spec.Formatter, st textmeasure.Style) TickDimensions {
	d := TickDimensions{
		Values: values,
		Labels: make([]string, len(values)),
	}
	unrotated := st
	unrotated.Rotation = 0
	for i, v := range values {
		label := format(v)
		d.Labels[i] = label

		box := surface.Measure(label, unrotated)
		rotated := textmeasure.Rotate(box, st.Rotation)
		d.MaxLabelBBoxWidth = math.Max(d.MaxLabelBBoxWidth, math.Ceil(rotated.Width))
		d.MaxLabelBBoxHeight = math.Max(d.MaxLabelBBoxHeight, math.Ceil(rotated.Height))
		d.MaxLabelTextWidth = math.Max(d.MaxLabelTextWidth, math.Ceil(box.Width))
		d.MaxLabelTextHeight = math.Max(d.MaxLabelTextHeight, math.Ceil(box.Height))
	}
	return d
}

// isDuplicate compares the first and last labels and the label count, then
// position and title, against every kept axis.
func isDuplicate(a spec.AxisSpec, d TickDimensions, kept []spec.AxisSpec, dims map[string]TickDimensions) bool {
	if len(d.Labels) == 0 {
		return false
	}
	first, last := d.Labels[0], d.Labels[len(d.Labels)-1]
	return slices.ContainsFunc(kept, func(k spec.AxisSpec) bool {
		other := dims[k.ID].Labels
		if len(other) != len(d.Labels) || other[0] != first || other[len(other)-1] != last {
			return false
		}
		return k.Position == a.Position && k.Title == a.Title
	})
}
