package spec

// AnnotationKind is the geometry kind of an annotation.
type AnnotationKind string

// Annotation kinds.
const (
	AnnotationLine  AnnotationKind = "line"
	AnnotationRect  AnnotationKind = "rect"
	AnnotationPoint AnnotationKind = "point"
)

// AnnotationDomain selects which domain a line annotation's values live in.
type AnnotationDomain string

// Annotation domains.
const (
	AnnotationXDomain AnnotationDomain = "x"
	AnnotationYDomain AnnotationDomain = "y"
)

// AnnotationSpec declares a line, rect or point annotation.
//
// Line annotations draw one line per value across the frame. Rect
// annotations span [X0, X1] x [Y0, Y1]; a missing side extends to the
// domain edge. Point annotations mark (X, Y).
type AnnotationSpec struct {
	ID      string         `toml:"id" json:"id"`
	GroupID string         `toml:"group_id,omitempty" json:"group_id,omitempty"`
	Kind    AnnotationKind `toml:"kind" json:"kind"`

	Domain AnnotationDomain `toml:"domain,omitempty" json:"domain,omitempty"`
	Values []any            `toml:"values,omitempty" json:"values,omitempty"`

	X0 any      `toml:"x0,omitempty" json:"x0,omitempty"`
	X1 any      `toml:"x1,omitempty" json:"x1,omitempty"`
	Y0 *float64 `toml:"y0,omitempty" json:"y0,omitempty"`
	Y1 *float64 `toml:"y1,omitempty" json:"y1,omitempty"`

	X any      `toml:"x,omitempty" json:"x,omitempty"`
	Y *float64 `toml:"y,omitempty" json:"y,omitempty"`

	Color string `toml:"color,omitempty" json:"color,omitempty"`

	// ZIndex overrides the default draw order (annotations last).
	ZIndex *int `toml:"z_index,omitempty" json:"z_index,omitempty"`
	Hide   bool `toml:"hide,omitempty" json:"hide,omitempty"`
}

// Group returns the annotation group id, defaulting to DefaultGroupID.
func (a AnnotationSpec) Group() string {
	if a.GroupID == "" {
		return DefaultGroupID
	}
	return a.GroupID
}
