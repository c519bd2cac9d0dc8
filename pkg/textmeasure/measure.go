package textmeasure

import (
	"math"

	"github.com/matzehuels/chartframe/pkg/spec"
)

// Style is the font used to measure a string.
type Style struct {
	FontSize   float64
	FontFamily string

	// Rotation rotates the text, in degrees. Measured boxes are the
	// axis-aligned bounds of the rotated text.
	Rotation float64
}

// StyleOf converts a theme text style.
func StyleOf(s spec.TextStyle) Style {
	return Style{FontSize: s.FontSize, FontFamily: s.FontFamily}
}

// BBox is a measured size in pixels.
type BBox struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Measurer creates measurement surfaces.
type Measurer interface {
	Acquire() (Surface, error)
}

// Surface measures strings for the duration of one layout pass.
type Surface interface {
	Measure(text string, s Style) BBox
	Release() error
}

// Rotate returns the axis-aligned bounds of b rotated by degrees.
func Rotate(b BBox, degrees float64) BBox {
	if degrees == 0 {
		return b
	}
	rad := degrees * math.Pi / 180
	sin, cos := snap(math.Abs(math.Sin(rad))), snap(math.Abs(math.Cos(rad)))
	return BBox{
		Width:  b.Width*cos + b.Height*sin,
		Height: b.Width*sin + b.Height*cos,
	}
}

// snap removes the float error sin and cos leave at multiples of 90 degrees.
func snap(v float64) float64 {
	if v < 1e-12 {
		return 0
	}
	if 1-v < 1e-12 {
		return 1
	}
	return v
}
