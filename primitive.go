package gear

import (
	"github.com/soypat/gear/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Primitive is a drawable shape descriptor centered on the gear axis.
type Primitive interface {
	// Bounds returns the box enclosing the shape including half its stroke.
	Bounds() r2.Box
	// Rotate returns the shape rotated about the origin by theta radians.
	Rotate(theta float64) Primitive
}

// Circle is a stroked circle centered at the origin.
type Circle struct {
	Diameter    float64
	StrokeWidth float64
	Stroke      Paint
}

// Bounds implements Primitive.
func (c Circle) Bounds() r2.Box {
	r := c.Diameter/2 + c.StrokeWidth/2
	return r2.Box{Min: d2.Elem(-r), Max: d2.Elem(r)}
}

// Rotate implements Primitive. Circles are unchanged by rotation.
func (c Circle) Rotate(float64) Primitive { return c }

// Polygon is a closed quadrilateral, used for teeth.
type Polygon struct {
	Points      [4]r2.Vec
	Closed      bool
	Filled      bool
	StrokeWidth float64
	Stroke      Paint
	Fill        Paint
}

// Bounds implements Primitive.
func (p Polygon) Bounds() r2.Box {
	return r2.Box(d2.BoxOf(p.Points[:]).Enlarge(p.StrokeWidth / 2))
}

// Rotate implements Primitive.
func (p Polygon) Rotate(theta float64) Primitive {
	for i := range p.Points {
		p.Points[i] = d2.Rotate(p.Points[i], theta)
	}
	return p
}

// Segment is a stroked straight line, used for struts.
type Segment struct {
	From, To    r2.Vec
	StrokeWidth float64
	Stroke      Paint
}

// Bounds implements Primitive.
func (s Segment) Bounds() r2.Box {
	return r2.Box(d2.BoxOf(d2.Set{s.From, s.To}).Enlarge(s.StrokeWidth / 2))
}

// Rotate implements Primitive.
func (s Segment) Rotate(theta float64) Primitive {
	s.From = d2.Rotate(s.From, theta)
	s.To = d2.Rotate(s.To, theta)
	return s
}

// Length returns the distance between the segment endpoints.
func (s Segment) Length() float64 { return d2.Dist(s.From, s.To) }

// PolarToCartesian converts the polar coordinate (r, theta) to a point.
// theta is in radians measured counter-clockwise from the positive x axis.
func PolarToCartesian(r, theta float64) r2.Vec {
	return d2.PolarToXY(r, theta)
}
