// Package spec defines the declarative chart description consumed by the
// layout engine.
//
// The types in this package are plain values: axis placement requests
// ([AxisSpec]), series data and accessors ([SeriesSpec]), annotations
// ([AnnotationSpec]), global [Settings] with a [Theme], and the externally
// owned [InteractionState]. All of them are treated as immutable for the
// duration of a layout pass.
//
// # Bundles
//
// A [Specs] value groups everything declared for one chart:
//
//	specs := spec.Specs{
//	    Axes: []spec.AxisSpec{
//	        {ID: "bottom", Position: spec.PositionBottom},
//	        {ID: "left", Position: spec.PositionLeft, Title: "count"},
//	    },
//	    Series: []spec.SeriesSpec{{
//	        ID: "bars", Kind: spec.KindBar, XScaleType: spec.ScaleOrdinal,
//	        XAccessor: "x", YAccessors: []string{"y"},
//	        Data: []spec.Datum{{"x": "a", "y": 1}, {"x": "b", "y": 3}},
//	    }},
//	}
//	settings, err := specs.ResolveSettings()
//
// # Serialization
//
// Every type carries toml and json tags so chart fixtures can be decoded
// directly (see pkg/fixture). Formatter functions are never serialized.
package spec
