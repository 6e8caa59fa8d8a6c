package gear

import (
	"math"

	"github.com/soypat/gear/anim"
)

// ThicknessRatio relates every stroke thickness to the diameter scale.
// Body, teeth and ring all divide by it so strokes stay proportionate.
const ThicknessRatio = 10

// MinTeeth is the smallest tooth count that produces teeth and struts.
const MinTeeth = 4

// StrutConfig configures the radial struts and the concentric ring.
type StrutConfig struct {
	Count                     int     // number of struts. <= 1 draws none
	WidthFactor               float64 // strut width relative to one tooth pitch chord
	ConcentricDiameter        float64 // inner ring diameter. <= 0 draws no ring
	ConcentricThicknessFactor float64 // ring stroke thickness multiplier
}

// DefaultStruts returns the empty strut configuration: no struts, no ring.
func DefaultStruts() StrutConfig {
	return StrutConfig{
		WidthFactor:               1,
		ConcentricThicknessFactor: 1,
	}
}

// Params defines the parameters of a gear. Zero valued shape factors
// are replaced by their defaults in New; use SetDefaults to do the same
// on a Params value.
type Params struct {
	Diameter             float64      // overall gear diameter
	Teeth                int          // tooth count. < 4 draws a toothless body
	TeethHeightFactor    float64      // tooth height multiplier (1)
	TeethClosenessFactor float64      // gap between adjacent teeth, must be < 10 (1)
	TeethSquareness      float64      // tooth tip flatness. 0 is most pointed (1)
	Thickness            float64      // body and teeth stroke multiplier (1)
	Struts               *StrutConfig // nil for no struts or ring
	Color                Paint        // shared stroke and fill (white)
}

// SetDefaults fills zero valued factors with 1 and an unset color with
// white. Use explicit non-zero values through the Gear cells to keep a
// factor at zero.
func (p *Params) SetDefaults() {
	if p.TeethHeightFactor == 0 {
		p.TeethHeightFactor = 1
	}
	if p.TeethClosenessFactor == 0 {
		p.TeethClosenessFactor = 1
	}
	if p.TeethSquareness == 0 {
		p.TeethSquareness = 1
	}
	if p.Thickness == 0 {
		p.Thickness = 1
	}
	if p.Color == (Paint{}) {
		p.Color = White
	}
}

// Validate reports the first invalid parameter as a *ParamError.
func (p Params) Validate() error {
	if err := checkDiameter(p.Diameter); err != nil {
		return err
	}
	if err := checkTeeth(p.Teeth); err != nil {
		return err
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"teethHeightFactor", p.TeethHeightFactor},
		{"teethSquareness", p.TeethSquareness},
		{"thickness", p.Thickness},
	} {
		if err := checkFinite(f.name, f.v); err != nil {
			return err
		}
	}
	if err := checkCloseness(p.TeethClosenessFactor); err != nil {
		return err
	}
	return checkStruts(p.Struts)
}

// TeethCount converts a floating point tooth count, as found in parameter
// files, to an integer. Negative and fractional values are rejected.
func TeethCount(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, paramErr("teeth", f, "must be an integer")
	}
	if f > math.MaxInt32 {
		return 0, paramErr("teeth", f, "too large")
	}
	n := int(f)
	if err := checkTeeth(n); err != nil {
		return 0, err
	}
	return n, nil
}

// StrutCount converts a floating point strut count to an integer.
func StrutCount(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, paramErr("struts.count", f, "must be an integer")
	}
	if f < 0 {
		return 0, paramErr("struts.count", f, "must not be negative")
	}
	return int(f), nil
}

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return paramErr(name, v, "must be finite")
	}
	return nil
}

func checkDiameter(d float64) error {
	if err := checkFinite("diameter", d); err != nil {
		return err
	}
	if d < 0 {
		return paramErr("diameter", d, "must not be negative")
	}
	return nil
}

func checkTeeth(n int) error {
	if n < 0 {
		return paramErr("teeth", float64(n), "must not be negative")
	}
	return nil
}

func checkCloseness(f float64) error {
	if err := checkFinite("teethClosenessFactor", f); err != nil {
		return err
	}
	if f >= 10 {
		// closeness is pi/(100-10f), a pole at f=10.
		return paramErr("teethClosenessFactor", f, "must be less than 10")
	}
	return nil
}

func checkStruts(s *StrutConfig) error {
	if s == nil {
		return nil
	}
	if s.Count < 0 {
		return paramErr("struts.count", float64(s.Count), "must not be negative")
	}
	if err := checkFinite("struts.widthFactor", s.WidthFactor); err != nil {
		return err
	}
	if err := checkFinite("struts.concentricDiameter", s.ConcentricDiameter); err != nil {
		return err
	}
	return checkFinite("struts.concentricThicknessFactor", s.ConcentricThicknessFactor)
}

func mixStruts(a, b *StrutConfig, t float64) *StrutConfig {
	if a == nil && b == nil {
		return nil
	}
	from, to := DefaultStruts(), DefaultStruts()
	if a != nil {
		from = *a
	}
	if b != nil {
		to = *b
	}
	if t >= 1 {
		if b == nil {
			return nil
		}
		c := to
		return &c
	}
	return &StrutConfig{
		Count:                     anim.MixInt(from.Count, to.Count, t),
		WidthFactor:               anim.Mix(from.WidthFactor, to.WidthFactor, t),
		ConcentricDiameter:        anim.Mix(from.ConcentricDiameter, to.ConcentricDiameter, t),
		ConcentricThicknessFactor: anim.Mix(from.ConcentricThicknessFactor, to.ConcentricThicknessFactor, t),
	}
}
