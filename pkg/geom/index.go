package geom

import (
	"github.com/matzehuels/chartframe/pkg/spec"
)

// Index maps formatted x values to the geometries drawn at them, for
// tooltips and highlighting.
type Index map[string][]Geometry

func (ix Index) add(x any, g Geometry) {
	k := spec.FormatValue(x)
	ix[k] = append(ix[k], g)
}

// At returns the geometries drawn at x.
func (ix Index) At(x any) []Geometry {
	return ix[spec.FormatValue(x)]
}

// Len returns the number of indexed geometries.
func (ix Index) Len() int {
	n := 0
	for _, gs := range ix {
		n += len(gs)
	}
	return n
}
