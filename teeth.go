package gear

import (
	"iter"
	"math"

	"github.com/soypat/gear/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Teeth returns the tooth polygons of a gear. The sequence is lazy and may
// be iterated any number of times. A degenerate gear has no teeth.
func Teeth(m Metrics, c Paint) iter.Seq[Polygon] {
	return func(yield func(Polygon) bool) {
		if m.Degenerate {
			return
		}
		tip := m.TipRadius()
		taper := math.Pi / m.TeethShape
		st1 := 0.0
		for i := 0; i < m.Teeth*2; i += 2 {
			st2 := st1 + m.TeethRadianDiff + m.TeethCloseness
			et1, et2 := st1+taper, st2-taper
			p := Polygon{
				Points: [4]r2.Vec{
					d2.PolarToXY(m.Magnitude, st1),
					d2.PolarToXY(tip, et1),
					d2.PolarToXY(tip, et2),
					d2.PolarToXY(m.Magnitude, st2),
				},
				Closed:      true,
				Filled:      true,
				StrokeWidth: m.TeethThickness,
				Stroke:      c,
				Fill:        c,
			}
			if !yield(p) {
				return
			}
			st1 += m.TeethRadianDiff * 2
		}
	}
}
