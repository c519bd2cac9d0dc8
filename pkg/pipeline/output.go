package pipeline

import (
	"github.com/matzehuels/chartframe/pkg/axis"
	"github.com/matzehuels/chartframe/pkg/domain"
	"github.com/matzehuels/chartframe/pkg/frame"
	"github.com/matzehuels/chartframe/pkg/geom"
	"github.com/matzehuels/chartframe/pkg/interaction"
	"github.com/matzehuels/chartframe/pkg/panel"
	"github.com/matzehuels/chartframe/pkg/spec"
)

// Config is the resolved chart configuration.
type Config struct {
	Settings spec.Settings `json:"settings"`
	Theme    spec.Theme    `json:"theme"`
}

// Ticks holds the tick dimensions of every measured axis.
type Ticks struct {
	Dimensions map[string]axis.TickDimensions `json:"dimensions"`
}

// Frame is the chart frame of a pass.
type Frame struct {
	frame.Result

	// Area is the chart area inside the container, see [frame.ChartArea].
	Area spec.Dimensions `json:"area"`

	// Container is the frame in container coordinates, the space pointer
	// positions are given in.
	Container spec.Dimensions `json:"container"`
}

// Panels is the small-multiple partition of the frame.
type Panels struct {
	Scales panel.Scales  `json:"-"`
	Panels []panel.Panel `json:"panels"`
}

// Axes holds the projection of every axis with ticks.
type Axes struct {
	Projections map[string]axis.Projection `json:"projections"`
}

// PanelGeometries holds the geometry of each panel, in panel order.
type PanelGeometries struct {
	Panels []*geom.Geometries `json:"panels"`
}

// Colors returns the series colors, shared by all panels.
func (g *PanelGeometries) Colors() map[string]string {
	out := map[string]string{}
	if len(g.Panels) == 0 {
		return out
	}
	for k, c := range g.Panels[0].Colors {
		out[string(k)] = c
	}
	return out
}

// Legend holds the legend items of the chart.
type Legend struct {
	Items []geom.LegendItem `json:"items"`
}

// Interaction is the interaction overlay of the hovered panel.
type Interaction struct {
	interaction.Result

	// Panel is the index of the panel the overlay belongs to, or -1.
	Panel int `json:"panel"`
}

// Output is the result of one layout pass. Stage outputs that were
// skipped are the pointers of the previous pass.
type Output struct {
	InstanceID string `json:"instance_id"`

	Config      *Config          `json:"config"`
	Domain      *domain.Result   `json:"domain"`
	Ticks       *Ticks           `json:"ticks"`
	Frame       *Frame           `json:"frame"`
	Panels      *Panels          `json:"panels"`
	Axes        *Axes            `json:"axes"`
	Geometries  *PanelGeometries `json:"geometries"`
	Legend      *Legend          `json:"legend"`
	Interaction *Interaction     `json:"interaction"`

	Stats     Stats     `json:"stats"`
	CacheInfo CacheInfo `json:"cache_info"`
}

// Empty reports whether the pass has nothing to draw: no visible series
// or no room left to plot.
func (o *Output) Empty() bool {
	return o.Domain == nil || geom.IsChartEmpty(o.Domain) || o.Frame == nil || o.Frame.Empty
}
