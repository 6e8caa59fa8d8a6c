package gear

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/soypat/gear/anim"
	"github.com/soypat/gear/internal/d2"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

const tol = 1e-9

func mustGear(t *testing.T, p Params) *Gear {
	t.Helper()
	g, err := New(p)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func scenarioB() *StrutConfig {
	return &StrutConfig{Count: 5, WidthFactor: 0.5, ConcentricDiameter: 100, ConcentricThicknessFactor: 2}
}

func TestScenarioA(t *testing.T) {
	g := mustGear(t, Params{Diameter: 300, Teeth: 10})
	o := g.Outline()
	polys := o.Polygons()
	if len(polys) != 10 {
		t.Fatalf("got %d teeth. want 10", len(polys))
	}
	for i, p := range polys {
		if !p.Closed || !p.Filled {
			t.Errorf("tooth %d not closed and filled", i)
		}
	}
	circles := o.Circles()
	if len(circles) != 1 || circles[0].Diameter != 300 {
		t.Errorf("got circles %+v. want single body of diameter 300", circles)
	}
	if len(o.Segments()) != 0 {
		t.Error("unexpected struts")
	}
	if len(o.Primitives) != 11 {
		t.Errorf("got %d primitives. want 11", len(o.Primitives))
	}
}

func TestScenarioB(t *testing.T) {
	g := mustGear(t, Params{Diameter: 300, Teeth: 10, Struts: scenarioB()})
	o := g.Outline()
	if got := len(o.Polygons()); got != 10 {
		t.Errorf("got %d teeth. want 10", got)
	}
	circles := o.Circles()
	if len(circles) != 2 {
		t.Fatalf("got %d circles. want body and ring", len(circles))
	}
	ring := circles[1]
	if ring.Diameter != 100 || !scalar.EqualWithinAbs(ring.StrokeWidth, 20, tol) {
		t.Errorf("got ring %+v. want diameter 100 thickness 20", ring)
	}
	segs := o.Segments()
	if len(segs) != 5 {
		t.Fatalf("got %d struts. want 5", len(segs))
	}
	m := g.Metrics()
	wantWidth := 0.5 * 165 * 2 * math.Sin(math.Pi/18)
	for i, s := range segs {
		theta := float64(i)*2*math.Pi/5 + m.TeethRadianDiff/2 + m.TeethCloseness/2
		if !d2.EqualWithin(s.From, d2.PolarToXY(40, theta), tol) {
			t.Errorf("strut %d starts at %v. want radius 40 at %g", i, s.From, theta)
		}
		if !d2.EqualWithin(s.To, d2.PolarToXY(150, theta), tol) {
			t.Errorf("strut %d ends at %v. want radius 150 at %g", i, s.To, theta)
		}
		if !scalar.EqualWithinAbs(s.StrokeWidth, wantWidth, tol) {
			t.Errorf("strut %d width: got %g. want %g", i, s.StrokeWidth, wantWidth)
		}
	}
	// order: body, teeth, ring, struts.
	if _, ok := o.Primitives[0].(Circle); !ok {
		t.Error("first primitive is not the body")
	}
	if _, ok := o.Primitives[11].(Circle); !ok {
		t.Error("ring does not follow the teeth")
	}
}

func TestScenarioCDegenerate(t *testing.T) {
	for _, teeth := range []int{0, 1, 2, 3} {
		g := mustGear(t, Params{Diameter: 300, Teeth: teeth, Struts: &StrutConfig{Count: 5, WidthFactor: 1}})
		o := g.Outline()
		if len(o.Primitives) != 1 {
			t.Errorf("teeth=%d: got %d primitives. want body only", teeth, len(o.Primitives))
		}
		if _, ok := o.Primitives[0].(Circle); !ok {
			t.Errorf("teeth=%d: primitive is not a circle", teeth)
		}
		m := g.Metrics()
		if !m.Degenerate {
			t.Errorf("teeth=%d: not degenerate", teeth)
		}
		for _, v := range []float64{m.TeethWidth, m.TeethRadianDiff, m.TeethShape, m.Magnitude, m.TeethHeight} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("teeth=%d: non-finite metric in %+v", teeth, m)
			}
		}
	}
}

func TestDegenerateKeepsRing(t *testing.T) {
	g := mustGear(t, Params{Diameter: 300, Teeth: 3, Struts: scenarioB()})
	o := g.Outline()
	if len(o.Circles()) != 2 || len(o.Segments()) != 0 || len(o.Polygons()) != 0 {
		t.Errorf("got %d circles %d struts %d teeth. want 2, 0, 0",
			len(o.Circles()), len(o.Segments()), len(o.Polygons()))
	}
}

func TestScenarioDCrank(t *testing.T) {
	g := mustGear(t, Params{Diameter: 300, Teeth: 10})
	theta := g.Metrics().TeethRadianDiff
	tw, err := g.CrankBy(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := 4 * theta * (180 / math.Pi)
	if !scalar.EqualWithinAbs(tw.Target(), want, tol) {
		t.Errorf("target: got %g. want %g", tw.Target(), want)
	}
	for _, e := range []float64{0, 0.3, 0.7} {
		if _, done := tw.Poll(e); done {
			t.Fatalf("crank done early at %g", e)
		}
	}
	if _, done := tw.Poll(1); !done {
		t.Fatal("crank not done at its duration")
	}
	if got := g.Rotation().Get(); got != tw.Target() {
		t.Errorf("rotation after crank: got %g. want exactly %g", got, tw.Target())
	}
}

func TestCrankTarget(t *testing.T) {
	for _, test := range []struct {
		rot, theta, amt float64
	}{
		{0, math.Pi / 10, 1}, {15, math.Pi / 7, -1}, {-30, 0.1, 3}, {0, 0, 5},
	} {
		got := CrankTarget(test.rot, test.theta, test.amt)
		want := test.rot + test.amt*2*test.theta*180/math.Pi
		if !scalar.EqualWithinAbs(got, want, tol) {
			t.Errorf("CrankTarget(%+v): got %g. want %g", test, got, want)
		}
	}
}

func TestCrankOverlap(t *testing.T) {
	g := mustGear(t, Params{Diameter: 100, Teeth: 12})
	tw, err := g.Crank(1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Crank(1); !errors.Is(err, anim.ErrTweenInProgress) {
		t.Fatalf("got %v. want ErrTweenInProgress", err)
	}
	tw.Poll(0.5)
	tw.Cancel()
	next, err := g.CrankBy(1, -1)
	if err != nil {
		t.Fatal(err)
	}
	if next.From() != g.Rotation().Get() {
		t.Error("new crank does not start from the cancelled rotation")
	}
}

func TestCrankSilhouette(t *testing.T) {
	opt := cmpopts.EquateApprox(0, tol)
	for _, test := range []struct {
		teeth int
		amt   int
	}{
		{10, 1}, {10, 2}, {17, -3}, {4, 1}, {33, 5},
	} {
		g := mustGear(t, Params{Diameter: 300, Teeth: test.teeth, TeethSquareness: 2})
		before := worldTeeth(g.Outline())
		tw, err := g.CrankBy(0, float64(test.amt))
		if err != nil {
			t.Fatal(err)
		}
		tw.Poll(0)
		after := worldTeeth(g.Outline())
		n := test.teeth
		if len(before) != n || len(after) != n {
			t.Fatalf("teeth=%d: got %d and %d teeth", n, len(before), len(after))
		}
		for i := range after {
			j := ((i+test.amt)%n + n) % n
			if diff := cmp.Diff(before[j].Points, after[i].Points, opt); diff != "" {
				t.Errorf("teeth=%d amt=%d: tooth %d does not land on tooth %d:\n%s", n, test.amt, i, j, diff)
			}
		}
	}
}

func worldTeeth(o Outline) []Polygon {
	var polys []Polygon
	for _, p := range o.World() {
		if poly, ok := p.(Polygon); ok {
			polys = append(polys, poly)
		}
	}
	return polys
}

func TestToothProfile(t *testing.T) {
	m := ComputeMetrics(Params{Diameter: 200, Teeth: 8, TeethHeightFactor: 1.5, TeethClosenessFactor: 2, TeethSquareness: 1, Thickness: 0.5})
	n := 0
	st1 := 0.0
	for p := range Teeth(m, White) {
		for k, want := range []float64{m.Magnitude, m.TipRadius(), m.TipRadius(), m.Magnitude} {
			if got := r2.Norm(p.Points[k]); !scalar.EqualWithinAbs(got, want, tol) {
				t.Errorf("tooth %d vertex %d radius: got %g. want %g", n, k, got, want)
			}
		}
		if !d2.EqualWithin(p.Points[0], d2.PolarToXY(m.Magnitude, st1), tol) {
			t.Errorf("tooth %d starts at %v", n, p.Points[0])
		}
		st2 := st1 + m.TeethRadianDiff + m.TeethCloseness
		if !d2.EqualWithin(p.Points[2], d2.PolarToXY(m.TipRadius(), st2-math.Pi/m.TeethShape), tol) {
			t.Errorf("tooth %d tip end at %v", n, p.Points[2])
		}
		if p.StrokeWidth != m.TeethThickness || p.Fill != White {
			t.Errorf("tooth %d style %+v", n, p)
		}
		st1 += 2 * m.TeethRadianDiff
		n++
	}
	if n != 8 {
		t.Errorf("got %d teeth. want 8", n)
	}
}

func TestTeethRestartable(t *testing.T) {
	m := ComputeMetrics(Params{Diameter: 50, Teeth: 6, TeethHeightFactor: 1, TeethClosenessFactor: 1, TeethSquareness: 1, Thickness: 1})
	seq := Teeth(m, White)
	var first, second []Polygon
	for p := range seq {
		first = append(first, p)
	}
	for p := range seq {
		second = append(second, p)
		if len(second) == 2 {
			break
		}
	}
	if len(first) != 6 || len(second) != 2 {
		t.Fatalf("got %d and %d teeth", len(first), len(second))
	}
	if diff := cmp.Diff(first[:2], second); diff != "" {
		t.Errorf("second iteration differs:\n%s", diff)
	}
}

func TestToothCount(t *testing.T) {
	for teeth := 4; teeth < 64; teeth += 3 {
		m := ComputeMetrics(Params{Diameter: 120, Teeth: teeth, Thickness: 1, TeethHeightFactor: 1, TeethSquareness: 1, TeethClosenessFactor: 1})
		n := 0
		for range Teeth(m, White) {
			n++
		}
		if n != teeth {
			t.Errorf("got %d teeth. want %d", n, teeth)
		}
	}
}

func TestSquarenessSymmetric(t *testing.T) {
	base := Params{Diameter: 90, Teeth: 9}
	pos, neg := base, base
	pos.TeethSquareness, neg.TeethSquareness = 3, -3
	gp, gn := mustGear(t, pos), mustGear(t, neg)
	if diff := cmp.Diff(gp.Outline().Polygons(), gn.Outline().Polygons()); diff != "" {
		t.Errorf("mirrored squareness differs:\n%s", diff)
	}
}

func TestStrutSuppression(t *testing.T) {
	for _, s := range []*StrutConfig{
		nil,
		{Count: 0, WidthFactor: 1},
		{Count: 1, WidthFactor: 1, ConcentricDiameter: 20},
	} {
		m := ComputeMetrics(Params{Diameter: 100, Teeth: 10, Thickness: 1, Struts: s})
		for range Struts(m, White) {
			t.Errorf("struts %+v: produced a strut", s)
		}
	}
}

func TestRingSuppression(t *testing.T) {
	for _, s := range []*StrutConfig{
		nil,
		{Count: 4, WidthFactor: 1},
		{Count: 4, WidthFactor: 1, ConcentricDiameter: -5},
	} {
		m := ComputeMetrics(Params{Diameter: 100, Teeth: 10, Thickness: 1, Struts: s})
		if _, ok := Ring(m, White); ok {
			t.Errorf("struts %+v: produced a ring", s)
		}
		if m.RingThickness != -1 {
			t.Errorf("struts %+v: ring thickness %g. want -1", s, m.RingThickness)
		}
	}
}

func TestMetricsFormulas(t *testing.T) {
	p := Params{Diameter: 300, Teeth: 10, TeethHeightFactor: 2, TeethClosenessFactor: 3, TeethSquareness: -1, Thickness: 0.5}
	m := ComputeMetrics(p)
	thick := 300 * 0.5 / 10
	mag := (300 + thick) / 2
	want := Metrics{
		Diameter:        300,
		Teeth:           10,
		Magnitude:       mag,
		TeethThickness:  thick,
		TeethWidth:      2 * math.Pi * mag / 20,
		TeethRadianDiff: math.Pi / 10,
		TeethHeight:     (300 + thick) / 10 * 2,
		TeethShape:      10 * 3,
		TeethCloseness:  math.Pi / 70,
		RingThickness:   -1,
	}
	if diff := cmp.Diff(want, m, cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Errorf("metrics mismatch (-want +got):\n%s", diff)
	}
	zero := ComputeMetrics(Params{Diameter: 0, Teeth: 10, Thickness: 1})
	if !scalar.EqualWithinAbs(zero.TeethRadianDiff, math.Pi/10, tol) {
		t.Errorf("zero diameter radian diff: got %g", zero.TeethRadianDiff)
	}
}

func TestMetricsMemo(t *testing.T) {
	g := mustGear(t, Params{Diameter: 100, Teeth: 10})
	m1 := g.Metrics()
	v := g.cacheVer
	g.Metrics()
	if g.cacheVer != v {
		t.Error("metrics recomputed without a parameter change")
	}
	g.Color().Set(Paint{R: 1, A: 255})
	if g.version != v {
		t.Error("color write invalidated geometry")
	}
	if err := g.Diameter().Set(200); err != nil {
		t.Fatal(err)
	}
	m2 := g.Metrics()
	if m2.Magnitude == m1.Magnitude || m2.Diameter != 200 {
		t.Errorf("stale metrics after diameter change: %+v", m2)
	}
	tw, _ := g.Teeth().Tween(20, 1)
	tw.Poll(0.5)
	if got := g.Metrics().Teeth; got != 15 {
		t.Errorf("mid tween teeth: got %d. want 15", got)
	}
	tw.Poll(1)
	if got := len(g.Outline().Polygons()); got != 20 {
		t.Errorf("got %d teeth after tween. want 20", got)
	}
}

func TestStrutTween(t *testing.T) {
	g := mustGear(t, Params{Diameter: 300, Teeth: 10})
	target := scenarioB()
	tw, err := g.Struts().Tween(target, 4)
	if err != nil {
		t.Fatal(err)
	}
	tw.WithEase(anim.Linear)
	tw.Poll(2)
	mid := g.Struts().Get()
	if mid == nil || mid.Count != 3 || !scalar.EqualWithinAbs(mid.ConcentricDiameter, 50, tol) {
		t.Errorf("mid tween struts: got %+v", mid)
	}
	tw.Poll(4)
	if diff := cmp.Diff(target, g.Struts().Get()); diff != "" {
		t.Errorf("final struts differ:\n%s", diff)
	}
	if got := len(g.Outline().Segments()); got != 5 {
		t.Errorf("got %d struts. want 5", got)
	}
}

func TestStrutsCellCopies(t *testing.T) {
	g := mustGear(t, Params{Diameter: 300, Teeth: 10})
	cfg := scenarioB()
	if err := g.Struts().Set(cfg); err != nil {
		t.Fatal(err)
	}
	before := g.Outline()
	cfg.Count = 8
	g.Struts().Get().Count = -4
	if got := g.Struts().Get().Count; got != 5 {
		t.Errorf("got strut count %d after outside edits. want 5", got)
	}
	if got := len(g.Outline().Segments()); got != 5 {
		t.Errorf("got %d struts. want 5", got)
	}
	if diff := cmp.Diff(before, g.Outline()); diff != "" {
		t.Errorf("outline changed by outside edits:\n%s", diff)
	}

	tw, err := g.Struts().Tween(cfg, 1)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Count = 2
	tw.Poll(1)
	if got := g.Struts().Get().Count; got != 8 {
		t.Errorf("got tweened strut count %d. want 8", got)
	}
}

func TestCrankInvalidDuration(t *testing.T) {
	g := mustGear(t, Params{Diameter: 100, Teeth: 10})
	for _, d := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -1} {
		_, err := g.CrankBy(d, 1)
		if !errors.Is(err, anim.ErrInvalidDuration) {
			t.Errorf("duration %g: got %v. want ErrInvalidDuration", d, err)
		}
	}
	if g.Rotation().Busy() || g.Rotation().Get() != 0 {
		t.Fatalf("rejected cranks left rotation busy=%v at %g", g.Rotation().Busy(), g.Rotation().Get())
	}
	tw, err := g.Crank(0)
	if err != nil {
		t.Fatal(err)
	}
	if _, done := tw.Poll(0); !done {
		t.Error("zero duration crank should complete on first poll")
	}
}

func TestValidation(t *testing.T) {
	for _, test := range []struct {
		name string
		p    Params
	}{
		{"negative diameter", Params{Diameter: -1, Teeth: 10}},
		{"negative teeth", Params{Diameter: 10, Teeth: -2}},
		{"closeness pole", Params{Diameter: 10, Teeth: 10, TeethClosenessFactor: 10}},
		{"nan thickness", Params{Diameter: 10, Teeth: 10, Thickness: math.NaN()}},
		{"negative struts", Params{Diameter: 10, Teeth: 10, Struts: &StrutConfig{Count: -1}}},
	} {
		_, err := New(test.p)
		if !errors.Is(err, ErrInvalidParam) {
			t.Errorf("%s: got %v. want ErrInvalidParam", test.name, err)
		}
		var perr *ParamError
		if !errors.As(err, &perr) || perr.Param == "" {
			t.Errorf("%s: error %v is not a *ParamError", test.name, err)
		}
	}
	g := mustGear(t, Params{Diameter: 10, Teeth: 10})
	if err := g.Diameter().Set(-3); !errors.Is(err, ErrInvalidParam) {
		t.Errorf("set negative diameter: got %v", err)
	}
	if g.Diameter().Get() != 10 {
		t.Error("rejected write changed diameter")
	}
	if _, err := g.TeethClosenessFactor().Tween(12, 1); !errors.Is(err, ErrInvalidParam) {
		t.Errorf("tween closeness past pole: got %v", err)
	}
}

func TestTeethCount(t *testing.T) {
	for _, test := range []struct {
		f    float64
		want int
		ok   bool
	}{
		{10, 10, true}, {0, 0, true}, {3, 3, true},
		{2.5, 0, false}, {-1, 0, false}, {math.NaN(), 0, false}, {math.Inf(1), 0, false},
	} {
		got, err := TeethCount(test.f)
		if (err == nil) != test.ok || got != test.want {
			t.Errorf("TeethCount(%g): got %d, %v", test.f, got, err)
		}
	}
	if _, err := StrutCount(1.5); err == nil {
		t.Error("StrutCount accepted a fraction")
	}
}

func TestDefaults(t *testing.T) {
	g := mustGear(t, Params{Diameter: 300, Teeth: 10})
	p := g.Params()
	if p.TeethHeightFactor != 1 || p.TeethClosenessFactor != 1 || p.TeethSquareness != 1 || p.Thickness != 1 {
		t.Errorf("factors not defaulted: %+v", p)
	}
	if p.Color != White || p.Struts != nil {
		t.Errorf("got color %v struts %v", p.Color, p.Struts)
	}
}

func TestOutlineBounds(t *testing.T) {
	g := mustGear(t, Params{Diameter: 300, Teeth: 10, Struts: scenarioB()})
	o := g.Outline()
	m := g.Metrics()
	r := o.Radius()
	// tip vertices lie on the tip circle and strokes add half a thickness.
	if r < m.TipRadius() || r > (m.TipRadius()+m.TeethThickness)*math.Sqrt2 {
		t.Errorf("radius %g out of range for tip %g", r, m.TipRadius())
	}
	g.Rotation().Set(33)
	for _, p := range g.Outline().World() {
		b := p.Bounds()
		for _, v := range []r2.Vec{b.Min, b.Max} {
			if math.Abs(v.X) > r || math.Abs(v.Y) > r {
				t.Errorf("rotated primitive bound %v escapes radius %g", v, r)
			}
		}
	}
}
