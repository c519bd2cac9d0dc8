package spec

// DefaultGroupID is the group used by axes and series that do not name one.
const DefaultGroupID = "__global__"

// Default tick geometry for axes built with [NewAxis].
const (
	DefaultTickSize    = 10.0
	DefaultTickPadding = 10.0
	DefaultTickCount   = 10
)

// AxisStyle overrides the theme's tick label style for one axis.
// Zero fields fall back to the theme.
type AxisStyle struct {
	LabelFontSize   float64 `toml:"label_font_size,omitempty" json:"label_font_size,omitempty"`
	LabelFontFamily string  `toml:"label_font_family,omitempty" json:"label_font_family,omitempty"`
	LabelPadding    float64 `toml:"label_padding,omitempty" json:"label_padding,omitempty"`

	// LabelRotation rotates tick labels, in degrees.
	LabelRotation float64 `toml:"label_rotation,omitempty" json:"label_rotation,omitempty"`
}

// AxisSpec requests an axis on one side of the chart frame.
type AxisSpec struct {
	ID       string   `toml:"id" json:"id"`
	GroupID  string   `toml:"group_id,omitempty" json:"group_id,omitempty"`
	Position Position `toml:"position" json:"position"`

	TickSize    float64 `toml:"tick_size" json:"tick_size"`
	TickPadding float64 `toml:"tick_padding" json:"tick_padding"`

	// Domain is a partial y domain for the axis group. Declaring it on the
	// category axis of the current rotation is a configuration error.
	Domain *Bound `toml:"domain,omitempty" json:"domain,omitempty"`

	Title string `toml:"title,omitempty" json:"title,omitempty"`
	Hide  bool   `toml:"hide,omitempty" json:"hide,omitempty"`

	ShowOverlappingTicks  bool `toml:"show_overlapping_ticks,omitempty" json:"show_overlapping_ticks,omitempty"`
	ShowOverlappingLabels bool `toml:"show_overlapping_labels,omitempty" json:"show_overlapping_labels,omitempty"`
	ShowGridLines         bool `toml:"show_grid_lines,omitempty" json:"show_grid_lines,omitempty"`

	// Ticks is the desired tick count; zero means DefaultTickCount.
	Ticks        int  `toml:"ticks,omitempty" json:"ticks,omitempty"`
	IntegersOnly bool `toml:"integers_only,omitempty" json:"integers_only,omitempty"`

	Style *AxisStyle `toml:"style,omitempty" json:"style,omitempty"`

	TickFormat Formatter `toml:"-" json:"-"`
}

// NewAxis returns an axis spec with the default tick size and padding.
func NewAxis(id string, pos Position) AxisSpec {
	return AxisSpec{
		ID:          id,
		Position:    pos,
		TickSize:    DefaultTickSize,
		TickPadding: DefaultTickPadding,
	}
}

// Group returns the axis group id, defaulting to DefaultGroupID.
func (a AxisSpec) Group() string {
	if a.GroupID == "" {
		return DefaultGroupID
	}
	return a.GroupID
}

// TickCount returns the desired tick count.
func (a AxisSpec) TickCount() int {
	if a.Ticks <= 0 {
		return DefaultTickCount
	}
	return a.Ticks
}

// AxisByID returns the axis with the given id.
func AxisByID(axes []AxisSpec, id string) (AxisSpec, bool) {
	for _, a := range axes {
		if a.ID == id {
			return a, true
		}
	}
	return AxisSpec{}, false
}

// AxesForGroup returns the x-position (horizontal) and y-position
// (vertical) axes declared for a group. Missing axes are nil.
func AxesForGroup(axes []AxisSpec, groupID string) (horizontal, vertical *AxisSpec) {
	for i := range axes {
		if axes[i].Group() != groupID {
			continue
		}
		if axes[i].Position.IsVertical() {
			vertical = &axes[i]
		} else {
			horizontal = &axes[i]
		}
	}
	return horizontal, vertical
}
