package render

import (
	"github.com/soypat/gear"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
)

// DXF layer names, one per primitive kind.
const (
	LayerBody   = "BODY"
	LayerTeeth  = "TEETH"
	LayerRing   = "RING"
	LayerStruts = "STRUTS"
)

// CreateDXF writes the outline centerlines to a DXF drawing at path. Stroke
// widths are not represented; the body and ring are circles, teeth are
// closed runs of lines and struts single lines, all in world orientation.
func CreateDXF(path string, o gear.Outline) error {
	d := dxf.NewDrawing()
	world := o.World()
	circles := 0
	layer := func(name string, cl color.ColorNumber) error {
		_, err := d.AddLayer(name, cl, dxf.DefaultLineType, true)
		return err
	}
	if err := layer(LayerTeeth, color.Yellow); err != nil {
		return err
	}
	for _, p := range world {
		poly, ok := p.(gear.Polygon)
		if !ok {
			continue
		}
		n := len(poly.Points)
		last := n
		if !poly.Closed {
			last = n - 1
		}
		for i := 0; i < last; i++ {
			a, b := poly.Points[i], poly.Points[(i+1)%n]
			if _, err := d.Line(a.X, a.Y, 0, b.X, b.Y, 0); err != nil {
				return err
			}
		}
	}
	for _, p := range world {
		c, ok := p.(gear.Circle)
		if !ok || c.Diameter <= 0 {
			continue
		}
		name, cl := LayerBody, color.White
		if circles > 0 {
			name, cl = LayerRing, color.Cyan
		}
		circles++
		if err := layer(name, cl); err != nil {
			return err
		}
		if _, err := d.Circle(0, 0, 0, c.Diameter/2); err != nil {
			return err
		}
	}
	if err := layer(LayerStruts, color.Red); err != nil {
		return err
	}
	for _, p := range world {
		s, ok := p.(gear.Segment)
		if !ok || s.Length() == 0 {
			continue
		}
		if _, err := d.Line(s.From.X, s.From.Y, 0, s.To.X, s.To.Y, 0); err != nil {
			return err
		}
	}
	return d.SaveAs(path)
}
