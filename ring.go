package gear

// Ring returns the concentric ring circle. ok is false when the gear has
// no strut configuration or a non-positive concentric diameter. The ring
// does not depend on the tooth count: degenerate gears keep it while their
// teeth and struts are suppressed.
func Ring(m Metrics, c Paint) (ring Circle, ok bool) {
	if m.Struts == nil || m.RingDiameter <= 0 {
		return Circle{}, false
	}
	return Circle{
		Diameter:    m.RingDiameter,
		StrokeWidth: m.RingThickness,
		Stroke:      c,
	}, true
}
