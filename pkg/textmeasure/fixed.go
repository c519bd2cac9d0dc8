package textmeasure

import "sync"

// Fixed measures every non-empty string as the same box. It counts
// acquired and released surfaces so tests can check scoping.
type Fixed struct {
	Box BBox

	// Err, when set, is returned by Acquire.
	Err error

	mu       sync.Mutex
	acquired int
	released int
}

// NewFixed returns a measurer that measures every label as w×h.
func NewFixed(w, h float64) *Fixed {
	return &Fixed{Box: BBox{Width: w, Height: h}}
}

// Acquire implements Measurer.
func (f *Fixed) Acquire() (Surface, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.mu.Lock()
	f.acquired++
	f.mu.Unlock()
	return &fixedSurface{m: f}, nil
}

// Open reports the number of surfaces acquired but not yet released.
func (f *Fixed) Open() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.acquired - f.released
}

// Acquired reports the total number of surfaces handed out.
func (f *Fixed) Acquired() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.acquired
}

type fixedSurface struct {
	m    *Fixed
	once sync.Once
}

func (s *fixedSurface) Measure(text string, st Style) BBox {
	if text == "" {
		return BBox{}
	}
	return Rotate(s.m.Box, st.Rotation)
}

func (s *fixedSurface) Release() error {
	s.once.Do(func() {
		s.m.mu.Lock()
		s.m.released++
		s.m.mu.Unlock()
	})
	return nil
}
