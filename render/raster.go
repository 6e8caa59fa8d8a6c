package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"github.com/nfnt/resize"
	"github.com/soypat/gear"
	"gonum.org/v1/gonum/spatial/r2"
)

// RasterOptions configures Rasterize.
type RasterOptions struct {
	// Size is the side of the square output image in pixels.
	Size int
	// Supersample renders at Size*Supersample and downscales with a
	// Lanczos filter. Values below 2 disable supersampling.
	Supersample int
	// Margin is the space around the outline in gear units.
	Margin float64
	// Background fills the image before drawing. Nil leaves it transparent.
	Background color.Color
}

// Rasterize draws the outline into a square image. The view is sized so
// the gear fits at every rotation, keeping the frame fixed while cranking.
func Rasterize(o gear.Outline, opts RasterOptions) image.Image {
	ss := opts.Supersample
	if ss < 2 {
		ss = 1
	}
	px := opts.Size * ss
	img := image.NewRGBA(image.Rect(0, 0, px, px))
	if opts.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}
	r := viewRadius(o, opts.Margin)
	if r > 0 && px > 0 {
		t := pixelTransform{
			center: float64(px) / 2,
			scale:  float64(px) / (2 * r),
		}
		gc := draw2dimg.NewGraphicContext(img)
		gc.SetLineCap(draw2d.ButtCap)
		gc.SetLineJoin(draw2d.RoundJoin)
		for _, p := range o.World() {
			drawPrimitive(gc, t, p)
		}
	}
	if ss == 1 {
		return img
	}
	return resize.Resize(uint(opts.Size), uint(opts.Size), img, resize.Lanczos3)
}

// WritePNG rasterizes the outline and encodes it as PNG.
func WritePNG(w io.Writer, o gear.Outline, opts RasterOptions) error {
	return png.Encode(w, Rasterize(o, opts))
}

// CreatePNG rasterizes the outline into a PNG file at path.
func CreatePNG(path string, o gear.Outline, opts RasterOptions) error {
	return draw2dimg.SaveToPngFile(path, Rasterize(o, opts))
}

// pixelTransform maps gear units to pixels. y grows downwards so positive
// rotations turn clockwise on screen.
type pixelTransform struct {
	center, scale float64
}

func (t pixelTransform) xy(v r2.Vec) (x, y float64) {
	return t.center + v.X*t.scale, t.center + v.Y*t.scale
}

func drawPrimitive(gc *draw2dimg.GraphicContext, t pixelTransform, p gear.Primitive) {
	switch p := p.(type) {
	case gear.Circle:
		if p.Diameter <= 0 || p.StrokeWidth <= 0 {
			return
		}
		gc.BeginPath()
		gc.SetStrokeColor(p.Stroke)
		gc.SetLineWidth(p.StrokeWidth * t.scale)
		draw2dkit.Circle(gc, t.center, t.center, p.Diameter/2*t.scale)
		gc.Stroke()
	case gear.Polygon:
		gc.BeginPath()
		gc.SetStrokeColor(p.Stroke)
		gc.SetFillColor(p.Fill)
		gc.SetLineWidth(math.Max(p.StrokeWidth, 0) * t.scale)
		for i, v := range p.Points {
			x, y := t.xy(v)
			if i == 0 {
				gc.MoveTo(x, y)
			} else {
				gc.LineTo(x, y)
			}
		}
		if p.Closed {
			gc.Close()
		}
		switch {
		case p.Filled && p.StrokeWidth > 0:
			gc.FillStroke()
		case p.Filled:
			gc.Fill()
		case p.StrokeWidth > 0:
			gc.Stroke()
		}
	case gear.Segment:
		if p.StrokeWidth <= 0 {
			return
		}
		gc.BeginPath()
		gc.SetStrokeColor(p.Stroke)
		gc.SetLineWidth(p.StrokeWidth * t.scale)
		gc.MoveTo(t.xy(p.From))
		gc.LineTo(t.xy(p.To))
		gc.Stroke()
	}
}
