package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Box is a 2d bounding box.
type Box r2.Box

// Empty returns an inverted box that any Extend replaces.
func Empty() Box {
	inf := math.Inf(1)
	return Box{Min: Elem(inf), Max: Elem(-inf)}
}

// IsEmpty reports whether the box contains no points.
func (a Box) IsEmpty() bool {
	return a.Min.X > a.Max.X || a.Min.Y > a.Max.Y
}

// BoxOf returns the smallest box containing every point in s.
func BoxOf(s Set) Box {
	if len(s) == 0 {
		return Empty()
	}
	return Box{Min: s.Min(), Max: s.Max()}
}

// Extend returns a box enclosing two 2d boxes.
func (a Box) Extend(b Box) Box {
	return Box{
		Min: MinElem(a.Min, b.Min),
		Max: MaxElem(a.Max, b.Max),
	}
}

// Enlarge grows the box by d on every side.
func (a Box) Enlarge(d float64) Box {
	v := Elem(d)
	return Box{r2.Sub(a.Min, v), r2.Add(a.Max, v)}
}
