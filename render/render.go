// Package render turns gear outlines into SVG documents, raster images, DXF
// drawings and float32 line buffers.
package render

import (
	"io"
	"strconv"

	"github.com/soypat/gear"
)

// viewRadius returns the half side of a square view that contains the
// outline at any rotation plus margin.
func viewRadius(o gear.Outline, margin float64) float64 {
	return o.Radius() + margin
}

func f64s(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// errWriter keeps the first write error so writers without error
// reporting can be checked once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(b)
	e.err = err
	return n, err
}
