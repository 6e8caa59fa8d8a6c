package gear

import "math"

// Metrics holds every quantity derived from a gear's parameters. It is
// computed by ComputeMetrics and is never modified independently of its
// inputs.
type Metrics struct {
	Diameter float64
	Teeth    int
	// Struts is a copy of the strut configuration, nil when absent.
	Struts *StrutConfig

	// Magnitude is the root circle radius where tooth bases sit.
	Magnitude float64
	// TeethThickness is the stroke width of the body and teeth.
	TeethThickness float64
	// TeethWidth is the arc length allotted to one tooth slot.
	TeethWidth float64
	// TeethRadianDiff is the angular width of one tooth slot. A full tooth
	// pitch spans twice this angle.
	TeethRadianDiff float64
	// TeethHeight is the radial extent of a tooth above Magnitude.
	TeethHeight float64
	// TeethShape controls how sharply teeth taper.
	TeethShape float64
	// TeethCloseness is the extra angular gap between adjacent teeth.
	TeethCloseness float64
	// RingDiameter is the concentric ring diameter, 0 when absent.
	RingDiameter float64
	// RingThickness is the ring stroke width, -1 when absent.
	RingThickness float64
	// Degenerate is set when Teeth < MinTeeth: no teeth or struts are drawn.
	Degenerate bool
}

// ComputeMetrics derives the gear metrics from p. p is assumed valid;
// division hazards from a zero tooth count or zero diameter are resolved
// to finite values.
func ComputeMetrics(p Params) Metrics {
	n := float64(p.Teeth)
	m := Metrics{
		Diameter:   p.Diameter,
		Teeth:      p.Teeth,
		Degenerate: p.Teeth < MinTeeth,
	}
	m.TeethThickness = p.Diameter * p.Thickness / ThicknessRatio
	m.Magnitude = (p.Diameter + m.TeethThickness) / 2
	if p.Teeth > 0 {
		m.TeethWidth = 2 * math.Pi * m.Magnitude / (n * 2)
		if m.Magnitude != 0 {
			m.TeethRadianDiff = m.TeethWidth / m.Magnitude
		} else {
			m.TeethRadianDiff = math.Pi / n
		}
	}
	m.TeethHeight = (p.Diameter + m.TeethThickness) / ThicknessRatio * p.TeethHeightFactor
	m.TeethShape = n * (math.Abs(p.TeethSquareness) + 2)
	m.TeethCloseness = math.Pi / (100 - p.TeethClosenessFactor*10)

	m.RingThickness = -1
	if p.Struts != nil {
		s := *p.Struts
		m.Struts = &s
		if s.ConcentricDiameter > 0 {
			m.RingDiameter = s.ConcentricDiameter
			m.RingThickness = s.ConcentricDiameter * s.ConcentricThicknessFactor / ThicknessRatio
		}
	}
	return m
}

// Pitch returns the angle in radians of one full tooth pitch.
func (m Metrics) Pitch() float64 { return 2 * m.TeethRadianDiff }

// TipRadius returns the radius of the tip circle.
func (m Metrics) TipRadius() float64 { return m.Magnitude + m.TeethHeight }
