package gear

import (
	"log/slog"
	"math"

	"github.com/soypat/gear/anim"
)

// Gear stores the animatable parameters of a gear and memoizes the
// metrics derived from them. A Gear is not safe for concurrent use.
type Gear struct {
	diameter        *anim.Cell[float64]
	teeth           *anim.Cell[int]
	heightFactor    *anim.Cell[float64]
	closenessFactor *anim.Cell[float64]
	squareness      *anim.Cell[float64]
	thickness       *anim.Cell[float64]
	struts          *anim.Cell[*StrutConfig]
	color           *anim.Cell[Paint]
	rotation        *anim.Cell[float64]

	// version counts writes to geometric parameters.
	version  uint64
	cacheVer uint64
	cache    Metrics
	cached   bool
}

// New returns a gear with the given parameters. Zero valued shape factors
// and color take their defaults, see Params.SetDefaults.
func New(p Params) (*Gear, error) {
	p.SetDefaults()
	if err := p.Validate(); err != nil {
		Logger().Warn("rejected gear parameters", slog.Any("err", err))
		return nil, err
	}
	g := &Gear{}
	finite := func(name string) func(float64) error {
		return func(v float64) error { return checkFinite(name, v) }
	}
	g.diameter = anim.NewCell("diameter", p.Diameter, anim.Mix, checkDiameter)
	g.teeth = anim.NewCell("teeth", p.Teeth, anim.MixInt, checkTeeth)
	g.heightFactor = anim.NewCell("teethHeightFactor", p.TeethHeightFactor, anim.Mix, finite("teethHeightFactor"))
	g.closenessFactor = anim.NewCell("teethClosenessFactor", p.TeethClosenessFactor, anim.Mix, checkCloseness)
	g.squareness = anim.NewCell("teethSquareness", p.TeethSquareness, anim.Mix, finite("teethSquareness"))
	g.thickness = anim.NewCell("thickness", p.Thickness, anim.Mix, finite("thickness"))
	g.struts = anim.NewCell("struts", cloneStruts(p.Struts), mixStruts, checkStruts).WithCopy(cloneStruts)
	g.color = anim.NewCell("color", p.Color, mixPaint, nil)
	g.rotation = anim.NewCell("rotation", 0.0, anim.Mix, finite("rotation"))

	invalidate := func() { g.version++ }
	g.diameter.OnChange(invalidate)
	g.teeth.OnChange(invalidate)
	g.heightFactor.OnChange(invalidate)
	g.closenessFactor.OnChange(invalidate)
	g.squareness.OnChange(invalidate)
	g.thickness.OnChange(invalidate)
	g.struts.OnChange(invalidate)
	return g, nil
}

// Diameter is the overall gear diameter cell.
func (g *Gear) Diameter() *anim.Cell[float64] { return g.diameter }

// Teeth is the tooth count cell. Tweens pass through whole tooth counts.
func (g *Gear) Teeth() *anim.Cell[int] { return g.teeth }

// TeethHeightFactor scales the tooth height.
func (g *Gear) TeethHeightFactor() *anim.Cell[float64] { return g.heightFactor }

// TeethClosenessFactor controls the gap between adjacent teeth.
func (g *Gear) TeethClosenessFactor() *anim.Cell[float64] { return g.closenessFactor }

// TeethSquareness controls how flat tooth tips are.
func (g *Gear) TeethSquareness() *anim.Cell[float64] { return g.squareness }

// Thickness scales the body and teeth stroke.
func (g *Gear) Thickness() *anim.Cell[float64] { return g.thickness }

// Struts is the strut configuration cell, nil for no struts. Tweens
// interpolate each field, starting from DefaultStruts when unset. The cell
// stores copies, so later edits to a config passed in or read out have no
// effect on the gear.
func (g *Gear) Struts() *anim.Cell[*StrutConfig] { return g.struts }

// Color is the stroke and fill color cell.
func (g *Gear) Color() *anim.Cell[Paint] { return g.color }

// Rotation is the gear orientation cell in degrees.
func (g *Gear) Rotation() *anim.Cell[float64] { return g.rotation }

// Params returns a snapshot of the current parameter values.
func (g *Gear) Params() Params {
	return Params{
		Diameter:             g.diameter.Get(),
		Teeth:                g.teeth.Get(),
		TeethHeightFactor:    g.heightFactor.Get(),
		TeethClosenessFactor: g.closenessFactor.Get(),
		TeethSquareness:      g.squareness.Get(),
		Thickness:            g.thickness.Get(),
		Struts:               cloneStruts(g.struts.Get()),
		Color:                g.color.Get(),
	}
}

// Metrics returns the derived metrics, recomputing them only if a
// geometric parameter changed since the last call.
func (g *Gear) Metrics() Metrics {
	if g.cached && g.cacheVer == g.version {
		return g.cache
	}
	g.cache = ComputeMetrics(g.Params())
	g.cacheVer = g.version
	g.cached = true
	log := Logger()
	log.Debug("gear metrics recomputed", slog.Uint64("version", g.version),
		slog.Float64("magnitude", g.cache.Magnitude), slog.Float64("radianDiff", g.cache.TeethRadianDiff))
	if g.cache.Degenerate {
		log.Debug("degenerate gear, teeth and struts suppressed", slog.Int("teeth", g.cache.Teeth))
	}
	return g.cache
}

// Outline builds the current primitives and rotation.
func (g *Gear) Outline() Outline {
	return Outline{
		Rotation:   g.rotation.Get(),
		Primitives: Build(g.Metrics(), g.color.Get()),
	}
}

// CrankTarget returns the rotation in degrees reached by cranking amt tooth
// pitches from rotation. radianDiff is Metrics.TeethRadianDiff.
func CrankTarget(rotation, radianDiff, amt float64) float64 {
	return rotation + amt*2*radianDiff*(180/math.Pi)
}

// Crank rotates the gear by one tooth pitch over duration seconds. After the
// returned tween completes the gear looks exactly as before.
func (g *Gear) Crank(duration float64) (*anim.Tween[float64], error) {
	return g.CrankBy(duration, 1)
}

// CrankBy rotates the gear by amt tooth pitches over duration seconds.
// Positive amt is clockwise on a y-down canvas, negative is counter-clockwise.
// Only one crank may be in flight at once; ErrTweenInProgress is returned
// until the previous tween completes or is cancelled.
func (g *Gear) CrankBy(duration, amt float64) (*anim.Tween[float64], error) {
	rot := g.rotation.Get()
	target := CrankTarget(rot, g.Metrics().TeethRadianDiff, amt)
	tw, err := g.rotation.Tween(target, duration)
	if err != nil {
		Logger().Warn("crank rejected", slog.Float64("amt", amt), slog.Any("err", err))
		return nil, err
	}
	return tw, nil
}

func cloneStruts(s *StrutConfig) *StrutConfig {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
