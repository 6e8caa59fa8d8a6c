package gear

import (
	"iter"
	"math"

	"github.com/soypat/gear/internal/d2"
)

// Struts returns the radial strut segments of a gear. Each strut runs from
// just inside the concentric ring to the rim, centered on a tooth slot.
// There are no struts without a strut configuration, with Count <= 1 or
// on a degenerate gear.
func Struts(m Metrics, c Paint) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		if m.Struts == nil || m.Struts.Count <= 1 || m.Degenerate {
			return
		}
		n := m.Struts.Count
		inner := (m.RingDiameter - m.RingThickness) / 2
		outer := m.Diameter / 2
		for i := 0; i < n; i++ {
			st1 := float64(i) * 2 * math.Pi / float64(n)
			theta := st1 + m.TeethRadianDiff/2 + m.TeethCloseness/2
			s := Segment{
				From:        d2.PolarToXY(inner, theta),
				To:          d2.PolarToXY(outer, theta),
				StrokeWidth: m.Struts.WidthFactor * pitchChord(m, st1),
				Stroke:      c,
			}
			if !yield(s) {
				return
			}
		}
	}
}

// pitchChord is the root circle chord spanned by one tooth slot starting
// at st1. Strut widths scale with it so they follow tooth spacing.
func pitchChord(m Metrics, st1 float64) float64 {
	a := d2.PolarToXY(m.Magnitude, st1)
	b := d2.PolarToXY(m.Magnitude, st1+m.TeethRadianDiff+m.TeethCloseness)
	return d2.Dist(a, b)
}
