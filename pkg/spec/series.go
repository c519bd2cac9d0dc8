package spec

// Datum is one row of series data. Accessors name its fields.
type Datum map[string]any

// HistogramAlignment positions lines and areas relative to histogram bars.
type HistogramAlignment string

// Histogram alignments.
const (
	AlignStart  HistogramAlignment = "start"
	AlignCenter HistogramAlignment = "center"
	AlignEnd    HistogramAlignment = "end"
)

// DisplayValue configures value labels drawn on bars.
type DisplayValue struct {
	Show bool `toml:"show" json:"show"`

	// Alternating shows only every other label.
	Alternating bool `toml:"alternating,omitempty" json:"alternating,omitempty"`

	// ContainedInElement sizes the label to the bar width.
	ContainedInElement bool `toml:"contained,omitempty" json:"contained,omitempty"`

	// HideClipped hides labels that would overflow the chart frame.
	HideClipped bool `toml:"hide_clipped,omitempty" json:"hide_clipped,omitempty"`
}

// SeriesSpec declares one series of data and how it is drawn.
type SeriesSpec struct {
	ID      string     `toml:"id" json:"id"`
	GroupID string     `toml:"group_id,omitempty" json:"group_id,omitempty"`
	Kind    SeriesKind `toml:"kind" json:"kind"`

	XScaleType     ScaleType `toml:"x_scale_type,omitempty" json:"x_scale_type,omitempty"`
	XAccessor      string    `toml:"x_accessor" json:"x_accessor"`
	YAccessors     []string  `toml:"y_accessors" json:"y_accessors"`
	SplitAccessors []string  `toml:"split_accessors,omitempty" json:"split_accessors,omitempty"`

	Stacked            bool               `toml:"stacked,omitempty" json:"stacked,omitempty"`
	Histogram          bool               `toml:"histogram,omitempty" json:"histogram,omitempty"`
	HistogramAlignment HistogramAlignment `toml:"histogram_alignment,omitempty" json:"histogram_alignment,omitempty"`

	Color        string        `toml:"color,omitempty" json:"color,omitempty"`
	DisplayValue *DisplayValue `toml:"display_value,omitempty" json:"display_value,omitempty"`
	MinBarHeight float64       `toml:"min_bar_height,omitempty" json:"min_bar_height,omitempty"`

	Data []Datum `toml:"data" json:"data"`

	TickFormat Formatter `toml:"-" json:"-"`
}

// Group returns the series group id, defaulting to DefaultGroupID.
func (s SeriesSpec) Group() string {
	if s.GroupID == "" {
		return DefaultGroupID
	}
	return s.GroupID
}

// ScaleType returns the requested x scale type, defaulting to ordinal.
func (s SeriesSpec) ScaleType() ScaleType {
	if s.XScaleType == "" {
		return ScaleOrdinal
	}
	return s.XScaleType
}

// SeriesByID returns the series spec with the given id.
func SeriesByID(series []SeriesSpec, id string) (SeriesSpec, bool) {
	for _, s := range series {
		if s.ID == id {
			return s, true
		}
	}
	return SeriesSpec{}, false
}

// HasBars reports whether any series is drawn as bars.
func HasBars(series []SeriesSpec) bool {
	for _, s := range series {
		if s.Kind == KindBar {
			return true
		}
	}
	return false
}

// IsLineAreaOnly reports whether no series is drawn as bars.
func IsLineAreaOnly(series []SeriesSpec) bool {
	return !HasBars(series)
}

// IsHistogramMode reports whether any bar series enables histogram mode.
func IsHistogramMode(series []SeriesSpec) bool {
	for _, s := range series {
		if s.Kind == KindBar && s.Histogram {
			return true
		}
	}
	return false
}
