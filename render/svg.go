package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/jbeda/geom"
	"github.com/soypat/gear"
)

// CreateSVG writes the outline as an SVG file at path.
func CreateSVG(path string, o gear.Outline, margin float64) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSVG(fp, o, margin); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}

// WriteSVG writes the outline as an SVG document centered on the gear
// axis. The rotation is applied as a group transform so successive frames
// of a crank differ only in that attribute.
func WriteSVG(w io.Writer, o gear.Outline, margin float64) error {
	r := viewRadius(o, margin)
	vb := geom.Rect{Min: geom.Coord{X: -r, Y: -r}, Max: geom.Coord{X: r, Y: r}}
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	size := int(math.Ceil(vb.Width()))
	canvas.Start(size, size, fmt.Sprintf(`viewBox="%s %s %s %s"`,
		f64s(vb.Min.X), f64s(vb.Min.Y), f64s(vb.Width()), f64s(vb.Height())))
	canvas.Gtransform("rotate(" + f64s(o.Rotation) + ")")
	for _, p := range o.Primitives {
		switch p := p.(type) {
		case gear.Circle:
			if p.Diameter <= 0 {
				continue
			}
			canvas.Path(circlePath(p.Diameter/2), strokeStyle(p.Stroke, p.StrokeWidth, "none"))
		case gear.Polygon:
			fill := "none"
			if p.Filled {
				fill = p.Fill.Hex()
			}
			canvas.Path(polyPath(p), strokeStyle(p.Stroke, p.StrokeWidth, fill)+";stroke-linejoin:round")
		case gear.Segment:
			d := "M" + f64s(p.From.X) + "," + f64s(p.From.Y) + " L" + f64s(p.To.X) + "," + f64s(p.To.Y)
			canvas.Path(d, strokeStyle(p.Stroke, p.StrokeWidth, "none"))
		}
	}
	canvas.Gend()
	canvas.End()
	return ew.err
}

func strokeStyle(c gear.Paint, width float64, fill string) string {
	return "fill:" + fill + ";stroke:" + c.Hex() + ";stroke-width:" + f64s(width)
}

func circlePath(r float64) string {
	rs := f64s(r)
	return strings.Join([]string{
		"M", rs, "0",
		"A", rs, rs, "0", "1", "0", f64s(-r), "0",
		"A", rs, rs, "0", "1", "0", rs, "0",
		"Z",
	}, " ")
}

func polyPath(p gear.Polygon) string {
	var b strings.Builder
	for i, v := range p.Points {
		if i == 0 {
			b.WriteString("M")
		} else {
			b.WriteString(" L")
		}
		b.WriteString(f64s(v.X) + "," + f64s(v.Y))
	}
	if p.Closed {
		b.WriteString(" Z")
	}
	return b.String()
}
