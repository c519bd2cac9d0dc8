package geom

import (
	"math"
	"strconv"
	"strings"
)

// vertex is a path point; undefined vertices break the path.
type vertex struct {
	x, y0, y1 float64
	defined   bool
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

func writePoint(b *strings.Builder, cmd byte, x, y float64) {
	b.WriteByte(cmd)
	b.WriteString(formatCoord(x))
	b.WriteByte(',')
	b.WriteString(formatCoord(y))
}

// segments splits vertices into runs of defined vertices.
func segments(vs []vertex) [][]vertex {
	var out [][]vertex
	start := -1
	for i, v := range vs {
		switch {
		case v.defined && start < 0:
			start = i
		case !v.defined && start >= 0:
			out = append(out, vs[start:i])
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, vs[start:])
	}
	return out
}

// linePath draws the y1 values as straight segments. Gaps start a new
// subpath.
func linePath(vs []vertex) string {
	var b strings.Builder
	for _, seg := range segments(vs) {
		for i, v := range seg {
			cmd := byte('L')
			if i == 0 {
				cmd = 'M'
			}
			writePoint(&b, cmd, v.x, v.y1)
		}
	}
	return b.String()
}

// areaPath closes each run of defined vertices along its baseline.
func areaPath(vs []vertex) string {
	var b strings.Builder
	for _, seg := range segments(vs) {
		for i, v := range seg {
			cmd := byte('L')
			if i == 0 {
				cmd = 'M'
			}
			writePoint(&b, cmd, v.x, v.y1)
		}
		for i := len(seg) - 1; i >= 0; i-- {
			writePoint(&b, 'L', seg[i].x, seg[i].y0)
		}
		b.WriteByte('Z')
	}
	return b.String()
}
