// Package panel partitions the chart frame into small-multiple panels.
//
// Each grouping dimension gets an ordinal band scale over the frame: the
// horizontal split over its width, the vertical split over its height.
// Panels are the cells of the two scales.
package panel

import (
	"strings"

	"github.com/matzehuels/chartframe/pkg/domain"
	"github.com/matzehuels/chartframe/pkg/scale"
	"github.com/matzehuels/chartframe/pkg/series"
	"github.com/matzehuels/chartframe/pkg/spec"
)

// Scales is the band scale pair of a small-multiple layout.
type Scales struct {
	Horizontal *scale.Band
	Vertical   *scale.Band
}

// Panel is one cell of the partition.
type Panel struct {
	Row    int `json:"row"`
	Column int `json:"column"`

	HorizontalValue string `json:"horizontal_value,omitempty"`
	VerticalValue   string `json:"vertical_value,omitempty"`
	Title           string `json:"title,omitempty"`

	// Dimensions is relative to the chart frame.
	Dimensions spec.Dimensions `json:"dimensions"`

	// SecondaryX marks x axes above the bottom row; SecondaryY marks y axes
	// right of the first column. Renderers de-emphasize them.
	SecondaryX bool `json:"secondary_x"`
	SecondaryY bool `json:"secondary_y"`
}

// Partition builds the panel scales. A dimension with fewer than two
// values gets a single band and no padding; otherwise panels are separated
// by padding, relative to the band step.
func Partition(frame spec.Dimensions, horizontal, vertical []string, padding float64) Scales {
	return Scales{
		Horizontal: band(horizontal, frame.Width, padding),
		Vertical:   band(vertical, frame.Height, padding),
	}
}

func band(values []string, size, padding float64) *scale.Band {
	if len(values) == 0 {
		values = []string{""}
	}
	if len(values) == 1 {
		padding = 0
	}
	return scale.NewBand(values, 0, size, scale.BandOptions{PaddingInner: padding})
}

// Panels returns every panel, row by row.
func (s Scales) Panels() []Panel {
	cols, rows := s.Horizontal.Domain(), s.Vertical.Domain()
	out := make([]Panel, 0, len(cols)*len(rows))
	for r, v := range rows {
		top, _ := s.Vertical.Scale(v)
		for c, h := range cols {
			left, _ := s.Horizontal.Scale(h)
			out = append(out, Panel{
				Row:             r,
				Column:          c,
				HorizontalValue: h,
				VerticalValue:   v,
				Title:           title(h, v),
				Dimensions: spec.Dimensions{
					Top:    top,
					Left:   left,
					Width:  s.Horizontal.Bandwidth(),
					Height: s.Vertical.Bandwidth(),
				},
				SecondaryX: r != len(rows)-1,
				SecondaryY: c != 0,
			})
		}
	}
	return out
}

func title(h, v string) string {
	var parts []string
	for _, p := range []string{v, h} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, series.NameSeparator)
}

// SplitValues returns the distinct formatted values of a datum field over
// the visible series, in order of appearance. An empty field yields nil.
func SplitValues(r *domain.Result, field string) []string {
	if field == "" || r == nil {
		return nil
	}
	var out []string
	seen := make(map[string]bool)
	for _, ds := range r.Series.All() {
		for _, p := range ds.Points {
			v, ok := p.Datum[field]
			if !ok {
				continue
			}
			s := spec.FormatValue(v)
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// ForChart partitions a chart frame by the small-multiple settings. Charts
// without small multiples get a single panel covering the frame.
func ForChart(r *domain.Result, frame spec.Dimensions, s spec.Settings, t spec.Theme) Scales {
	sm := s.SmallMultiples
	if sm == nil {
		return Partition(frame, nil, nil, 0)
	}
	padding := t.PanelPadding
	if sm.Padding != nil {
		padding = *sm.Padding
	}
	return Partition(frame, SplitValues(r, sm.SplitHorizontally), SplitValues(r, sm.SplitVertically), padding)
}
