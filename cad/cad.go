// Package cad converts gear outlines into 2D signed distance functions so
// they can be meshed, offset or extruded by sdfx based CAD pipelines.
package cad

import (
	"errors"
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/soypat/gear"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrEmptyOutline is returned when an outline has no solid region.
var ErrEmptyOutline = errors.New("cad: outline has no solid region")

// Outline2D returns the region covered by the outline strokes and fills in
// world orientation. Circles become annuli of their stroke width, teeth
// filled polygons grown by half their stroke and struts rectangles.
func Outline2D(o gear.Outline) (sdf.SDF2, error) {
	var parts []sdf.SDF2
	for i, p := range o.World() {
		s, err := primitive2D(p)
		if err != nil {
			return nil, fmt.Errorf("primitive %d: %w", i, err)
		}
		if s != nil {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return nil, ErrEmptyOutline
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return sdf.Union2D(parts...), nil
}

func primitive2D(p gear.Primitive) (sdf.SDF2, error) {
	switch p := p.(type) {
	case gear.Circle:
		return Annulus2D(p.Diameter/2, p.StrokeWidth)
	case gear.Polygon:
		return polygon2D(p)
	case gear.Segment:
		return Bar2D(p.From, p.To, p.StrokeWidth)
	}
	return nil, fmt.Errorf("unsupported primitive %T", p)
}

// Annulus2D returns a ring of the given centerline radius and width centered
// at the origin. A ring whose inner radius would be negative is a disk. It
// returns nil with no error for a ring with no area.
func Annulus2D(radius, width float64) (sdf.SDF2, error) {
	outer, inner := radius+width/2, radius-width/2
	if outer <= 0 || width <= 0 {
		return nil, nil
	}
	s0, err := sdf.Circle2D(outer)
	if err != nil {
		return nil, err
	}
	if inner <= 0 {
		return s0, nil
	}
	s1, err := sdf.Circle2D(inner)
	if err != nil {
		return nil, err
	}
	return sdf.Difference2D(s0, s1), nil
}

// Bar2D returns the rectangle swept by a line of the given width from a to b.
// It returns nil with no error for a bar with no area.
func Bar2D(a, b r2.Vec, width float64) (sdf.SDF2, error) {
	d := r2.Sub(b, a)
	l := r2.Norm(d)
	if l == 0 || width <= 0 {
		return nil, nil
	}
	n := r2.Scale(width/(2*l), r2.Vec{X: -d.Y, Y: d.X})
	return sdf.Polygon2D([]v2.Vec{
		vec(r2.Add(a, n)),
		vec(r2.Add(b, n)),
		vec(r2.Sub(b, n)),
		vec(r2.Sub(a, n)),
	})
}

func polygon2D(p gear.Polygon) (sdf.SDF2, error) {
	if !p.Filled {
		// Open or hollow teeth are traced edge by edge.
		var edges []sdf.SDF2
		n := len(p.Points)
		last := n
		if !p.Closed {
			last = n - 1
		}
		for i := 0; i < last; i++ {
			e, err := Bar2D(p.Points[i], p.Points[(i+1)%n], p.StrokeWidth)
			if err != nil {
				return nil, err
			}
			if e != nil {
				edges = append(edges, e)
			}
		}
		if len(edges) == 0 {
			return nil, nil
		}
		return sdf.Union2D(edges...), nil
	}
	verts := make([]v2.Vec, len(p.Points))
	for i, v := range p.Points {
		verts[i] = vec(v)
	}
	s, err := sdf.Polygon2D(verts)
	if err != nil {
		return nil, err
	}
	if p.StrokeWidth > 0 {
		s = sdf.Offset2D(s, p.StrokeWidth/2)
	}
	return s, nil
}

// Inside reports whether point v lies within the region s.
func Inside(s sdf.SDF2, v r2.Vec) bool {
	return s.Evaluate(vec(v)) <= 0
}

func vec(v r2.Vec) v2.Vec { return v2.Vec{X: v.X, Y: v.Y} }
