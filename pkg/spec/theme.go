package spec

// Margins are per-side pixel distances.
type Margins struct {
	Top    float64 `toml:"top" json:"top"`
	Bottom float64 `toml:"bottom" json:"bottom"`
	Left   float64 `toml:"left" json:"left"`
	Right  float64 `toml:"right" json:"right"`
}

// TextStyle describes a font used for measured text.
type TextStyle struct {
	FontSize   float64 `toml:"font_size" json:"font_size"`
	FontFamily string  `toml:"font_family,omitempty" json:"font_family,omitempty"`
	Padding    float64 `toml:"padding" json:"padding"`
}

// Theme holds the visual constants the layout engine depends on.
type Theme struct {
	ChartMargins  Margins `toml:"chart_margins" json:"chart_margins"`
	ChartPaddings Margins `toml:"chart_paddings" json:"chart_paddings"`

	AxisTitle TextStyle `toml:"axis_title" json:"axis_title"`
	TickLabel TextStyle `toml:"tick_label" json:"tick_label"`

	// BarsPadding and HistogramPadding are relative (0..1) paddings
	// between bar clusters.
	BarsPadding      float64 `toml:"bars_padding" json:"bars_padding"`
	HistogramPadding float64 `toml:"histogram_padding" json:"histogram_padding"`

	VizColors    []string `toml:"viz_colors,omitempty" json:"viz_colors,omitempty"`
	DefaultColor string   `toml:"default_color,omitempty" json:"default_color,omitempty"`

	DisplayValueFontSize float64 `toml:"display_value_font_size,omitempty" json:"display_value_font_size,omitempty"`

	// PanelPadding is the default relative padding between small-multiple panels.
	PanelPadding float64 `toml:"panel_padding,omitempty" json:"panel_padding,omitempty"`
}

// DefaultFontFamily is the font family used when a style names none.
const DefaultFontFamily = "sans-serif"

// DefaultVizColors is the default series palette.
var DefaultVizColors = []string{
	"#54B399", "#6092C0", "#D36086", "#9170B8", "#CA8EAE",
	"#D6BF57", "#B9A888", "#DA8B45", "#AA6556", "#E7664C",
}

// DefaultTheme returns the library default theme.
func DefaultTheme() Theme {
	return Theme{
		ChartMargins:         Margins{Top: 10, Bottom: 10, Left: 10, Right: 10},
		AxisTitle:            TextStyle{FontSize: 12, FontFamily: DefaultFontFamily, Padding: 8},
		TickLabel:            TextStyle{FontSize: 10, FontFamily: DefaultFontFamily, Padding: 4},
		BarsPadding:          0.25,
		HistogramPadding:     0.05,
		VizColors:            append([]string(nil), DefaultVizColors...),
		DefaultColor:         "#FF0000",
		DisplayValueFontSize: 8,
		PanelPadding:         0.1,
	}
}

// WithDefaults substitutes library defaults for missing values: font sizes
// and families, the palette and default color, and the panel padding.
// Margins and paddings are taken as given since zero is a valid value.
func (t Theme) WithDefaults() Theme {
	d := DefaultTheme()
	if t.AxisTitle.FontSize <= 0 {
		t.AxisTitle.FontSize = d.AxisTitle.FontSize
	}
	if t.AxisTitle.FontFamily == "" {
		t.AxisTitle.FontFamily = d.AxisTitle.FontFamily
	}
	if t.TickLabel.FontSize <= 0 {
		t.TickLabel.FontSize = d.TickLabel.FontSize
	}
	if t.TickLabel.FontFamily == "" {
		t.TickLabel.FontFamily = d.TickLabel.FontFamily
	}
	if len(t.VizColors) == 0 {
		t.VizColors = d.VizColors
	}
	if t.DefaultColor == "" {
		t.DefaultColor = d.DefaultColor
	}
	if t.DisplayValueFontSize <= 0 {
		t.DisplayValueFontSize = d.DisplayValueFontSize
	}
	if t.PanelPadding <= 0 {
		t.PanelPadding = d.PanelPadding
	}
	t.BarsPadding = clampUnit(t.BarsPadding)
	t.HistogramPadding = clampUnit(t.HistogramPadding)
	return t
}

// LabelStyle returns the tick label style for an axis, applying the axis
// style overrides on top of the theme.
func (t Theme) LabelStyle(a AxisSpec) TextStyle {
	s := t.TickLabel
	if a.Style == nil {
		return s
	}
	if a.Style.LabelFontSize > 0 {
		s.FontSize = a.Style.LabelFontSize
	}
	if a.Style.LabelFontFamily != "" {
		s.FontFamily = a.Style.LabelFontFamily
	}
	if a.Style.LabelPadding > 0 {
		s.Padding = a.Style.LabelPadding
	}
	return s
}

// TitleHeight returns the space reserved for an axis title.
func (t Theme) TitleHeight() float64 {
	return t.AxisTitle.FontSize + t.AxisTitle.Padding
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
