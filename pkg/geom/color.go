package geom

import (
	"math"

	"github.com/aclements/go-gg/palette"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/chartframe/pkg/series"
	"github.com/matzehuels/chartframe/pkg/spec"
)

// goldenRatio spreads colors picked past the end of the palette.
const goldenRatio = 0.618033988749895

// overflow samples the colors past the end of the theme palette.
var overflow = palette.Viridis

// Colors assigns a color to every series, deselected ones included, so
// colors stay put when the legend toggles series. Series take their spec
// color when set and the next palette color otherwise. Past the end of
// the palette, colors are sampled from the viridis map at golden-ratio
// steps, so no two extra series share a color.
func Colors(all []series.DataSeries, specs []spec.SeriesSpec, t spec.Theme) map[series.Key]string {
	out := make(map[series.Key]string, len(all))
	n := 0
	for _, ds := range all {
		if _, ok := out[ds.Key]; ok {
			continue
		}
		if s, ok := spec.SeriesByID(specs, ds.SpecID); ok && s.Color != "" {
			out[ds.Key] = normalizeHex(s.Color, t.DefaultColor)
			n++
			continue
		}
		out[ds.Key] = pick(t, n)
		n++
	}
	return out
}

func pick(t spec.Theme, i int) string {
	if len(t.VizColors) == 0 {
		return t.DefaultColor
	}
	if i < len(t.VizColors) {
		return normalizeHex(t.VizColors[i], t.DefaultColor)
	}
	_, frac := math.Modf(float64(i-len(t.VizColors)+1) * goldenRatio)
	c, ok := colorful.MakeColor(overflow.Map(frac))
	if !ok {
		return t.DefaultColor
	}
	return c.Hex()
}

// normalizeHex lower-cases a hex color, or returns fallback for colors
// that do not parse.
func normalizeHex(hex, fallback string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return c.Hex()
}

// Dim blends a color towards white by amount in [0, 1], for series that
// are not highlighted.
func Dim(hex string, amount float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	amount = math.Max(0, math.Min(1, amount))
	return c.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, amount).Clamped().Hex()
}
