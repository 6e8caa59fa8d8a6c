// Package gear derives the 2D outline of a mechanical gear from a handful
// of numeric parameters and animates it in whole tooth pitches.
//
// The outline is made of a body circle, one trapezoidal polygon per tooth,
// an optional concentric ring and optional radial struts joining the ring
// to the rim. Geometry is returned as drawable primitive descriptors
// (Circle, Polygon, Segment) which the render and cad packages turn into
// SVG, PNG, DXF or signed distance functions.
//
// Angles are in radians, counter-clockwise from the positive x axis, except
// for the gear rotation which is expressed in degrees.
//
// Cranking a gear rotates it by an integer number of tooth pitches so the
// silhouette before and after the step is identical:
//
//	g, err := gear.New(gear.Params{Diameter: 300, Teeth: 10})
//	if err != nil {
//		log.Fatal(err)
//	}
//	crank, _ := g.Crank(1)
//	driver := anim.Driver{FPS: 30}
//	driver.Run(ctx, crank)
package gear
