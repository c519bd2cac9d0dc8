package spec

// Point is a pixel position relative to the chart container.
type Point struct {
	X float64 `toml:"x" json:"x"`
	Y float64 `toml:"y" json:"y"`
}

// Container is the space available to the chart, minus the legend.
type Container struct {
	Width  float64 `toml:"width" json:"width"`
	Height float64 `toml:"height" json:"height"`

	// Legend reserves space on one side of the container.
	LegendPosition Position `toml:"legend_position,omitempty" json:"legend_position,omitempty"`
	LegendSize     float64  `toml:"legend_size,omitempty" json:"legend_size,omitempty"`
}

// InteractionState is the pointer and legend state owned by the host.
// The engine only reads it.
type InteractionState struct {
	// Pointer is nil when the pointer is outside the chart.
	Pointer *Point `toml:"pointer,omitempty" json:"pointer,omitempty"`

	// DownAt is the mouse-down anchor of an ongoing drag.
	DownAt   *Point `toml:"down_at,omitempty" json:"down_at,omitempty"`
	Dragging bool   `toml:"dragging,omitempty" json:"dragging,omitempty"`

	// HighlightedKey is the legend item currently hovered.
	HighlightedKey string `toml:"highlighted_key,omitempty" json:"highlighted_key,omitempty"`

	// ExternalValue is a synthetic x value driving the cursor, for charts
	// synchronized with another chart's pointer.
	ExternalValue any `toml:"external_value,omitempty" json:"external_value,omitempty"`

	// DeselectedSeries lists series keys hidden through the legend.
	DeselectedSeries []string `toml:"deselected_series,omitempty" json:"deselected_series,omitempty"`
}

// Dimensions is a pixel rectangle. Chart frames are relative to the
// container; panels and axis boxes are relative to the frame's container
// too unless stated otherwise.
type Dimensions struct {
	Top    float64 `json:"top" bson:"top"`
	Left   float64 `json:"left" bson:"left"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Empty reports whether the rectangle has no area.
func (d Dimensions) Empty() bool { return d.Width <= 0 || d.Height <= 0 }

// Contains reports whether p lies inside the rectangle, edges included.
func (d Dimensions) Contains(p Point) bool {
	return p.X >= d.Left && p.X <= d.Left+d.Width && p.Y >= d.Top && p.Y <= d.Top+d.Height
}
