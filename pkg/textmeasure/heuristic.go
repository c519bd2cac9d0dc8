package textmeasure

import "unicode/utf8"

const (
	charWidthRatio  = 0.55
	lineHeightRatio = 1.0
)

// Heuristic estimates text size from the character count. It needs no
// fonts and is stable across platforms.
type Heuristic struct{}

// Acquire implements Measurer.
func (Heuristic) Acquire() (Surface, error) { return heuristicSurface{}, nil }

type heuristicSurface struct{}

func (heuristicSurface) Measure(text string, s Style) BBox {
	if text == "" || s.FontSize <= 0 {
		return BBox{}
	}
	return Rotate(estimate(text, s), s.Rotation)
}

func (heuristicSurface) Release() error { return nil }

func estimate(text string, s Style) BBox {
	n := utf8.RuneCountInString(text)
	return BBox{
		Width:  float64(n) * s.FontSize * charWidthRatio,
		Height: s.FontSize * lineHeightRatio,
	}
}
