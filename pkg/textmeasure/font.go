package textmeasure

import (
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/matzehuels/chartframe/pkg/errors"
	"github.com/matzehuels/chartframe/pkg/fonts"
)

// FontMeasurer measures text with the glyph metrics of the embedded fonts.
type FontMeasurer struct{}

// NewFontMeasurer returns a measurer backed by the embedded fonts.
func NewFontMeasurer() *FontMeasurer {
	return &FontMeasurer{}
}

// Acquire implements Measurer.
func (m *FontMeasurer) Acquire() (Surface, error) {
	if _, err := fonts.Regular(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse embedded font")
	}
	return &fontSurface{faces: make(map[faceKey]font.Face)}, nil
}

type faceKey struct {
	family string
	size   float64
}

// fontSurface caches one face per family and size. Faces are closed on
// Release.
type fontSurface struct {
	mu       sync.Mutex
	faces    map[faceKey]font.Face
	released bool
}

func (s *fontSurface) face(family string, size float64) (font.Face, error) {
	key := faceKey{family, size}
	if f, ok := s.faces[key]; ok {
		return f, nil
	}
	ft, err := fonts.ForFamily(family)
	if err != nil {
		return nil, err
	}
	f, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	s.faces[key] = f
	return f, nil
}

// Measure implements Surface. A released surface, or a face that cannot be
// created, falls back to the heuristic estimate.
func (s *fontSurface) Measure(text string, st Style) BBox {
	if text == "" || st.FontSize <= 0 {
		return BBox{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return estimate(text, st)
	}
	f, err := s.face(st.FontFamily, st.FontSize)
	if err != nil {
		return estimate(text, st)
	}

	advance := font.MeasureString(f, text)
	m := f.Metrics()
	b := BBox{
		Width:  math.Ceil(float64(advance) / 64),
		Height: float64(m.Ascent+m.Descent) / 64,
	}
	return Rotate(b, st.Rotation)
}

// Release implements Surface.
func (s *fontSurface) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return nil
	}
	s.released = true
	var first error
	for k, f := range s.faces {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
		delete(s.faces, k)
	}
	return first
}
