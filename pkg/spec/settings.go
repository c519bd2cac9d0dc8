package spec

import (
	"github.com/matzehuels/chartframe/pkg/errors"
)

// BrushAxis selects which data axes a brush selects on.
type BrushAxis string

// Brush axes.
const (
	BrushX    BrushAxis = "x"
	BrushY    BrushAxis = "y"
	BrushBoth BrushAxis = "both"
)

// SmallMultiples splits the chart into panels by up to two datum fields.
type SmallMultiples struct {
	SplitHorizontally string `toml:"split_horizontally,omitempty" json:"split_horizontally,omitempty"`
	SplitVertically   string `toml:"split_vertically,omitempty" json:"split_vertically,omitempty"`

	// Padding is the relative inner padding between panels; nil uses the theme.
	Padding *float64 `toml:"padding,omitempty" json:"padding,omitempty"`
}

// Settings holds chart-wide configuration. At most one Settings may be
// declared per chart.
type Settings struct {
	Rotation Rotation `toml:"rotation" json:"rotation"`
	Theme    *Theme   `toml:"theme,omitempty" json:"theme,omitempty"`

	// BrushEnabled reports that the host registered a brush callback.
	BrushEnabled bool      `toml:"brush_enabled,omitempty" json:"brush_enabled,omitempty"`
	BrushAxis    BrushAxis `toml:"brush_axis,omitempty" json:"brush_axis,omitempty"`

	XDomain *XDomainOverride `toml:"x_domain,omitempty" json:"x_domain,omitempty"`

	HideDuplicateAxes bool `toml:"hide_duplicate_axes,omitempty" json:"hide_duplicate_axes,omitempty"`

	// DisableCursorSnap makes the cursor follow the pointer exactly
	// instead of snapping to data steps.
	DisableCursorSnap bool `toml:"disable_cursor_snap,omitempty" json:"disable_cursor_snap,omitempty"`

	SmallMultiples *SmallMultiples `toml:"small_multiples,omitempty" json:"small_multiples,omitempty"`
}

// ResolvedTheme returns the configured theme with defaults applied.
func (s Settings) ResolvedTheme() Theme {
	if s.Theme == nil {
		return DefaultTheme()
	}
	return s.Theme.WithDefaults()
}

// Brush returns the configured brush axis, defaulting to BrushX.
func (s Settings) Brush() BrushAxis {
	if s.BrushAxis == "" {
		return BrushX
	}
	return s.BrushAxis
}

// Specs bundles every spec declared for one chart.
type Specs struct {
	Settings    []Settings       `toml:"settings,omitempty" json:"settings,omitempty"`
	Axes        []AxisSpec       `toml:"axes,omitempty" json:"axes,omitempty"`
	Series      []SeriesSpec     `toml:"series,omitempty" json:"series,omitempty"`
	Annotations []AnnotationSpec `toml:"annotations,omitempty" json:"annotations,omitempty"`
}

// ResolveSettings returns the single declared settings spec, or defaults
// when none is declared. More than one is a configuration error.
func (s Specs) ResolveSettings() (Settings, error) {
	switch len(s.Settings) {
	case 0:
		return Settings{}, nil
	case 1:
		if err := s.Settings[0].Rotation.Validate(); err != nil {
			return Settings{}, err
		}
		return s.Settings[0], nil
	}
	return Settings{}, errors.New(errors.ErrCodeMultipleSettings,
		"%d settings specs declared, only one is allowed", len(s.Settings))
}

// Validate checks ids and axis positions. It does not check domains;
// those are validated by the domain resolver against the rotation.
func (s Specs) Validate() error {
	if err := ValidateAxes(s.Axes); err != nil {
		return err
	}
	if err := ValidateSeries(s.Series); err != nil {
		return err
	}
	return ValidateAnnotations(s.Annotations)
}

// ValidateAxes checks axis ids and positions.
func ValidateAxes(axes []AxisSpec) error {
	seen := make(map[string]bool, len(axes))
	for _, a := range axes {
		if err := errors.ValidateID("axis", a.ID); err != nil {
			return err
		}
		if err := errors.ValidatePosition(a.ID, string(a.Position)); err != nil {
			return err
		}
		if seen[a.ID] {
			return errors.Axis(a.ID).New(errors.ErrCodeInvalidAxis, "declared twice")
		}
		seen[a.ID] = true
	}
	return nil
}

// ValidateSeries checks series ids and kinds.
func ValidateSeries(series []SeriesSpec) error {
	seen := make(map[string]bool, len(series))
	for _, ser := range series {
		if err := errors.ValidateID("series", ser.ID); err != nil {
			return err
		}
		if seen[ser.ID] {
			return errors.Series(ser.ID).New(errors.ErrCodeInvalidSpec, "declared twice")
		}
		seen[ser.ID] = true
		switch ser.Kind {
		case KindBar, KindLine, KindArea:
		default:
			return errors.Series(ser.ID).New(errors.ErrCodeInvalidSpec, "unknown kind %q", ser.Kind)
		}
	}
	return nil
}

// ValidateAnnotations checks annotation ids.
func ValidateAnnotations(annotations []AnnotationSpec) error {
	for _, an := range annotations {
		if err := errors.ValidateID("annotation", an.ID); err != nil {
			return err
		}
	}
	return nil
}
