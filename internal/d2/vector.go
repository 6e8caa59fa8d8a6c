package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Elem returns a vector with both components set to v.
func Elem(v float64) r2.Vec {
	return r2.Vec{X: v, Y: v}
}

// EqualWithin reports whether a and b differ by no more than tol in each component.
func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// Pol is a polar coordinate. Theta is in radians, counter-clockwise from +x.
type Pol struct {
	R, Theta float64
}

// PolarToCartesian converts a polar to a cartesian coordinate.
func (a Pol) PolarToCartesian() r2.Vec {
	return r2.Vec{X: a.R * math.Cos(a.Theta), Y: a.R * math.Sin(a.Theta)}
}

// PolarToXY converts polar to cartesian coordinates.
func PolarToXY(r, theta float64) r2.Vec {
	return Pol{R: r, Theta: theta}.PolarToCartesian()
}

// Rotate rotates v about the origin by theta radians.
func Rotate(v r2.Vec, theta float64) r2.Vec {
	s, c := math.Sincos(theta)
	return r2.Vec{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

// Dist returns the euclidean distance between a and b.
func Dist(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(b, a))
}

// Set is a list of points.
type Set []r2.Vec

// Min return the minimum components of a set of vectors.
func (a Set) Min() r2.Vec {
	vmin := a[0]
	for _, v := range a[1:] {
		vmin = MinElem(vmin, v)
	}
	return vmin
}

// Max return the maximum components of a set of vectors.
func (a Set) Max() r2.Vec {
	vmax := a[0]
	for _, v := range a[1:] {
		vmax = MaxElem(vmax, v)
	}
	return vmax
}
