package pipeline

import (
	"github.com/matzehuels/chartframe/pkg/axis"
	"github.com/matzehuels/chartframe/pkg/domain"
	"github.com/matzehuels/chartframe/pkg/frame"
	"github.com/matzehuels/chartframe/pkg/geom"
	"github.com/matzehuels/chartframe/pkg/interaction"
	"github.com/matzehuels/chartframe/pkg/panel"
	"github.com/matzehuels/chartframe/pkg/series"
	"github.com/matzehuels/chartframe/pkg/spec"
)

// runners maps each stage to the function that fills its output field.
var runners = map[string]func(*pass) error{
	StageSettings:    (*pass).settings,
	StageDomain:      (*pass).domain,
	StageTicks:       (*pass).ticks,
	StageFrame:       (*pass).frame,
	StagePanels:      (*pass).panels,
	StageAxes:        (*pass).axes,
	StageGeometries:  (*pass).geometries,
	StageLegend:      (*pass).legend,
	StageInteraction: (*pass).interaction,
}

func (p *pass) settings() (err error) {
	p.out.Config, err = run(p, StageSettings, func() (*Config, error) {
		s, err := p.in.Specs.ResolveSettings()
		if err != nil {
			return nil, err
		}
		return &Config{Settings: s, Theme: s.ResolvedTheme()}, nil
	})
	return err
}

func (p *pass) domain() (err error) {
	s := p.out.Config.Settings
	p.out.Domain, err = run(p, StageDomain, func() (*domain.Result, error) {
		if err := spec.ValidateAxes(p.in.Specs.Axes); err != nil {
			return nil, err
		}
		if err := spec.ValidateSeries(p.in.Specs.Series); err != nil {
			return nil, err
		}
		bounds, err := domain.MergeAxisBounds(p.in.Specs.Axes, s.Rotation)
		if err != nil {
			return nil, err
		}
		return domain.Resolve(p.in.Specs.Series, bounds, p.in.State.DeselectedSeries, s.XDomain)
	})
	return err
}

func (p *pass) ticks() (err error) {
	cfg := p.out.Config
	p.out.Ticks, err = run(p, StageTicks, func() (*Ticks, error) {
		surface, err := p.surface()
		if err != nil {
			return nil, err
		}
		dims := axis.ComputeTickDimensions(surface, p.out.Domain, p.in.Specs.Axes, cfg.Settings, cfg.Theme)
		return &Ticks{Dimensions: dims}, nil
	})
	return err
}

func (p *pass) frame() (err error) {
	p.out.Frame, err = run(p, StageFrame, func() (*Frame, error) {
		res := frame.Compute(p.in.Container, p.out.Config.Theme, p.out.Ticks.Dimensions, p.in.Specs.Axes)
		area := frame.ChartArea(p.in.Container)
		c := res.Dimensions
		c.Left += area.Left
		c.Top += area.Top
		return &Frame{Result: res, Area: area, Container: c}, nil
	})
	return err
}

func (p *pass) panels() (err error) {
	cfg := p.out.Config
	p.out.Panels, err = run(p, StagePanels, func() (*Panels, error) {
		d := p.out.Frame.Dimensions
		scales := panel.ForChart(p.out.Domain, spec.Dimensions{Width: d.Width, Height: d.Height}, cfg.Settings, cfg.Theme)
		return &Panels{Scales: scales, Panels: scales.Panels()}, nil
	})
	return err
}

func (p *pass) axes() (err error) {
	cfg := p.out.Config
	p.out.Axes, err = run(p, StageAxes, func() (*Axes, error) {
		f := p.out.Frame
		proj := axis.Project(p.out.Domain, p.in.Specs.Axes, p.out.Ticks.Dimensions, axis.Layout{
			Frame:      f.Container,
			LeftMargin: f.LeftMargin + f.Area.Left,
			Rotation:   cfg.Settings.Rotation,
			Theme:      cfg.Theme,
		})
		return &Axes{Projections: proj}, nil
	})
	return err
}

func (p *pass) geometries() (err error) {
	cfg := p.out.Config
	p.out.Geometries, err = run(p, StageGeometries, func() (*PanelGeometries, error) {
		if err := spec.ValidateAnnotations(p.in.Specs.Annotations); err != nil {
			return nil, err
		}
		surface, err := p.surface()
		if err != nil {
			return nil, err
		}
		panels := p.out.Panels.Panels
		out := &PanelGeometries{Panels: make([]*geom.Geometries, len(panels))}
		for i, pn := range panels {
			out.Panels[i] = geom.Build(geom.Input{
				Result:      p.out.Domain,
				Frame:       pn.Dimensions,
				Rotation:    cfg.Settings.Rotation,
				Theme:       cfg.Theme,
				Axes:        p.in.Specs.Axes,
				Annotations: p.in.Specs.Annotations,
				SeriesSpecs: p.in.Specs.Series,
				Filter:      filterFor(cfg.Settings.SmallMultiples, pn),
				Surface:     surface,
			})
		}
		return out, nil
	})
	return err
}

// filterFor restricts the data of a panel to its split values.
func filterFor(sm *spec.SmallMultiples, pn panel.Panel) map[string]string {
	if sm == nil {
		return nil
	}
	f := map[string]string{}
	if sm.SplitHorizontally != "" {
		f[sm.SplitHorizontally] = pn.HorizontalValue
	}
	if sm.SplitVertically != "" {
		f[sm.SplitVertically] = pn.VerticalValue
	}
	return f
}

func (p *pass) legend() (err error) {
	p.out.Legend, err = run(p, StageLegend, func() (*Legend, error) {
		var colors map[series.Key]string
		if g := p.out.Geometries.Panels; len(g) > 0 {
			colors = g[0].Colors
		}
		return &Legend{Items: geom.Legend(p.out.Domain, colors)}, nil
	})
	return err
}

func (p *pass) interaction() (err error) {
	cfg := p.out.Config
	p.out.Interaction, err = run(p, StageInteraction, func() (*Interaction, error) {
		res := &Interaction{Panel: -1}
		panels := p.out.Panels.Panels
		geoms := p.out.Geometries.Panels
		if len(panels) == 0 || len(geoms) != len(panels) {
			res.PointerStyle = interaction.PointerDefault
			return res, nil
		}

		fr := p.out.Frame.Container
		idx, rect := 0, panels[0].Dimensions
		rect.Left += fr.Left
		rect.Top += fr.Top
		if ptr := p.in.State.Pointer; ptr != nil {
			if i, d, ok := interaction.PanelAt(panels, fr, *ptr); ok {
				idx, rect = i, d
			}
		}

		res.Panel = idx
		res.Result = interaction.Project(interaction.Input{
			Frame:      rect,
			Rotation:   cfg.Settings.Rotation,
			Geometries: geoms[idx],
			XData:      p.out.Domain.X.Data,
			State:      p.in.State,
			Settings:   cfg.Settings,
			Format:     p.valueFormat(),
		})
		return res, nil
	})
	return err
}

// valueFormat returns the formatter of the first y axis, used for tooltip
// values.
func (p *pass) valueFormat() spec.Formatter {
	rot := p.out.Config.Settings.Rotation
	for _, a := range p.in.Specs.Axes {
		if spec.IsYDomain(a.Position, rot) {
			return axis.FormatterFor(a, p.out.Domain.Specs, rot)
		}
	}
	return nil
}
