package render

import (
	"github.com/chewxy/math32"
	"github.com/soypat/gear"
)

// LineList is a flat float32 buffer of independent line segments, the
// layout GL_LINES style renderers upload directly.
type LineList struct {
	// Vertices holds x0, y0, x1, y1 for every line.
	Vertices []float32
	// Widths holds one stroke width per line.
	Widths []float32
	// Colors holds normalized r, g, b, a for every line.
	Colors []float32
}

// NewLineList flattens the outline in world orientation. Circles are
// approximated with circleSegments chords, 3 at least. Zero length
// segments are skipped.
func NewLineList(o gear.Outline, circleSegments int) LineList {
	if circleSegments < 3 {
		circleSegments = 3
	}
	var l LineList
	for _, p := range o.World() {
		switch p := p.(type) {
		case gear.Circle:
			if p.Diameter <= 0 {
				continue
			}
			r := float32(p.Diameter / 2)
			step := 2 * math32.Pi / float32(circleSegments)
			for k := 0; k < circleSegments; k++ {
				a0, a1 := step*float32(k), step*float32(k+1)
				l.add(r*math32.Cos(a0), r*math32.Sin(a0), r*math32.Cos(a1), r*math32.Sin(a1), p.StrokeWidth, p.Stroke)
			}
		case gear.Polygon:
			n := len(p.Points)
			last := n
			if !p.Closed {
				last = n - 1
			}
			for i := 0; i < last; i++ {
				a, b := p.Points[i], p.Points[(i+1)%n]
				l.add(float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), p.StrokeWidth, p.Stroke)
			}
		case gear.Segment:
			if p.Length() == 0 {
				continue
			}
			l.add(float32(p.From.X), float32(p.From.Y), float32(p.To.X), float32(p.To.Y), p.StrokeWidth, p.Stroke)
		}
	}
	return l
}

// Len returns the number of lines.
func (l LineList) Len() int { return len(l.Widths) }

func (l *LineList) add(x0, y0, x1, y1 float32, width float64, c gear.Paint) {
	l.Vertices = append(l.Vertices, x0, y0, x1, y1)
	l.Widths = append(l.Widths, float32(width))
	l.Colors = append(l.Colors,
		float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
}
