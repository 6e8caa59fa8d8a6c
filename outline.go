package gear

import (
	"math"

	"github.com/soypat/gear/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Build returns the gear primitives in drawing order: body circle, teeth,
// concentric ring when configured, then struts.
func Build(m Metrics, c Paint) []Primitive {
	prims := make([]Primitive, 0, 2+m.Teeth+strutCount(m))
	prims = append(prims, Body(m, c))
	for t := range Teeth(m, c) {
		prims = append(prims, t)
	}
	if ring, ok := Ring(m, c); ok {
		prims = append(prims, ring)
	}
	for s := range Struts(m, c) {
		prims = append(prims, s)
	}
	return prims
}

// Body returns the gear body circle.
func Body(m Metrics, c Paint) Circle {
	return Circle{
		Diameter:    m.Diameter,
		StrokeWidth: m.TeethThickness,
		Stroke:      c,
	}
}

func strutCount(m Metrics) int {
	if m.Struts == nil || m.Struts.Count < 0 {
		return 0
	}
	return m.Struts.Count
}

// Outline is the gear geometry in its local frame together with the
// rotation the renderer should apply.
type Outline struct {
	// Rotation in degrees about the gear axis.
	Rotation   float64
	Primitives []Primitive
}

// World returns the primitives rotated by the outline rotation.
func (o Outline) World() []Primitive {
	theta := o.Rotation * math.Pi / 180
	world := make([]Primitive, len(o.Primitives))
	for i, p := range o.Primitives {
		world[i] = p.Rotate(theta)
	}
	return world
}

// Bounds returns the box enclosing the local primitives.
func (o Outline) Bounds() r2.Box {
	return boundsOf(o.Primitives)
}

// Radius returns the largest distance from the axis to any point of the
// outline, strokes included. A square of side 2*Radius contains the
// outline at every rotation.
func (o Outline) Radius() float64 {
	b := o.Bounds()
	if d2.Box(b).IsEmpty() {
		return 0
	}
	var r float64
	for _, v := range []r2.Vec{b.Min, b.Max, {X: b.Min.X, Y: b.Max.Y}, {X: b.Max.X, Y: b.Min.Y}} {
		r = math.Max(r, r2.Norm(v))
	}
	return r
}

// Polygons returns the tooth polygons of the outline.
func (o Outline) Polygons() []Polygon {
	var polys []Polygon
	for _, p := range o.Primitives {
		if poly, ok := p.(Polygon); ok {
			polys = append(polys, poly)
		}
	}
	return polys
}

// Segments returns the strut segments of the outline.
func (o Outline) Segments() []Segment {
	var segs []Segment
	for _, p := range o.Primitives {
		if s, ok := p.(Segment); ok {
			segs = append(segs, s)
		}
	}
	return segs
}

// Circles returns the body circle followed by the ring, if any.
func (o Outline) Circles() []Circle {
	var circles []Circle
	for _, p := range o.Primitives {
		if c, ok := p.(Circle); ok {
			circles = append(circles, c)
		}
	}
	return circles
}

func boundsOf(prims []Primitive) r2.Box {
	b := d2.Empty()
	for _, p := range prims {
		b = b.Extend(d2.Box(p.Bounds()))
	}
	return r2.Box(b)
}
