package scale

import (
	"github.com/matzehuels/chartframe/pkg/domain"
	"github.com/matzehuels/chartframe/pkg/series"
	"github.com/matzehuels/chartframe/pkg/spec"
)

// Clusters counts the bars drawn side by side at one x value: one per
// non-stacked bar series and one per stacked group that holds bars.
type Clusters struct {
	Stacked int
	Total   int
}

// CountClusters counts the clustered bars of formatted series.
func CountClusters(f series.Formatted) Clusters {
	var c Clusters
	for _, g := range f.NonStacked {
		c.Total += g.BarSeries
	}
	for _, g := range f.Stacked {
		if g.BarSeries > 0 {
			c.Stacked++
		}
	}
	c.Total += c.Stacked
	return c
}

// Set is the x scale and per-group y scales of one chart.
type Set struct {
	X         Scale
	Y         map[string]*Continuous
	Clusters  Clusters
	Histogram bool
}

// YFor returns the y scale of a group.
func (s Set) YFor(groupID string) (*Continuous, bool) {
	y, ok := s.Y[groupID]
	return y, ok
}

// BarsPadding returns the padding between bar clusters for a theme.
func BarsPadding(t spec.Theme, histogram bool) float64 {
	if histogram {
		return t.HistogramPadding
	}
	return t.BarsPadding
}

// ForChart builds the series scales of a chart frame. Geometry is computed
// unrotated, so 90 and -90 degree charts swap width and height; the x range
// is [0, width] and y ranges run from height to 0.
func ForChart(r *domain.Result, width, height float64, rotation spec.Rotation, t spec.Theme) (Set, bool) {
	if r.Empty() {
		return Set{}, false
	}
	if rotation.IsVertical() {
		width, height = height, width
	}
	histogram := spec.IsHistogramMode(r.Specs)
	set := Set{
		Clusters:  CountClusters(r.Series),
		Histogram: histogram,
		Y:         make(map[string]*Continuous, len(r.Y)),
	}
	set.X = NewX(r.X, 0, width, XOptions{
		TotalBarsInCluster: set.Clusters.Total,
		BarsPadding:        BarsPadding(t, histogram),
		Histogram:          histogram,
	})
	for _, y := range r.Y {
		set.Y[y.GroupID] = NewY(y, height, 0, YOptions{})
	}
	return set, true
}
