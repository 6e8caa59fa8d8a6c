// Package config reads gear scene files written in JSON5.
//
// A scene file looks like
//
//	{
//		// gear outline
//		diameter: 300,
//		teeth: 10,
//		color: "#ffcc00",
//		struts: {count: 5, widthFactor: 0.5, concentricDiameter: 100},
//		crank: {duration: 0.5, steps: 4},
//	}
//
// Omitted tooth factors and thickness default to 1 and an omitted color to
// white. An explicit zero is kept, so teethSquareness: 0 gives fully
// pointed teeth.
package config

import (
	"fmt"
	"math"
	"os"

	"github.com/soypat/gear"
	"github.com/soypat/gear/anim"
	"github.com/titanous/json5"
)

// Scene is a decoded scene file. Gear holds the resolved parameters with
// defaults applied; zero shape factors in it were written explicitly.
type Scene struct {
	Gear gear.Params
	// Rotation is the initial rotation in degrees.
	Rotation float64
	Crank    Crank
}

// Crank describes a crank animation.
type Crank struct {
	// Duration of one crank step in seconds.
	Duration float64
	// Amount of tooth pitches per step. Zero means one.
	Amount float64
	// Steps is the number of consecutive crank steps.
	Steps int
	// Pause between steps in seconds.
	Pause float64
	// Ease names the timing function, see anim.TimingByName.
	Ease string
}

// DefaultCrank is a single half second crank of one pitch.
func DefaultCrank() Crank {
	return Crank{Duration: 0.5, Amount: 1, Steps: 1}
}

type sceneFile struct {
	Diameter             float64     `json:"diameter"`
	Teeth                float64     `json:"teeth"`
	TeethHeightFactor    *float64    `json:"teethHeightFactor"`
	TeethClosenessFactor *float64    `json:"teethClosenessFactor"`
	TeethSquareness      *float64    `json:"teethSquareness"`
	Thickness            *float64    `json:"thickness"`
	Color                string      `json:"color"`
	Rotation             float64     `json:"rotation"`
	Struts               *strutsFile `json:"struts"`
	Crank                *crankFile  `json:"crank"`
}

type strutsFile struct {
	Count                     float64 `json:"count"`
	WidthFactor               float64 `json:"widthFactor"`
	ConcentricDiameter        float64 `json:"concentricDiameter"`
	ConcentricThicknessFactor float64 `json:"concentricThicknessFactor"`
}

type crankFile struct {
	Duration *float64 `json:"duration"`
	Amount   float64  `json:"amount"`
	Steps    float64  `json:"steps"`
	Pause    float64  `json:"pause"`
	Ease     string   `json:"ease"`
}

// Load reads and decodes the scene file at path.
func Load(path string) (Scene, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, err
	}
	sc, err := Decode(b)
	if err != nil {
		return Scene{}, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Decode parses a JSON5 scene. Parameter errors wrap gear.ErrInvalidParam.
func Decode(b []byte) (Scene, error) {
	var f sceneFile
	if err := json5.Unmarshal(b, &f); err != nil {
		return Scene{}, fmt.Errorf("config: %w", err)
	}
	teeth, err := gear.TeethCount(f.Teeth)
	if err != nil {
		return Scene{}, err
	}
	sc := Scene{
		Gear: gear.Params{
			Diameter:             f.Diameter,
			Teeth:                teeth,
			TeethHeightFactor:    orDefault(f.TeethHeightFactor),
			TeethClosenessFactor: orDefault(f.TeethClosenessFactor),
			TeethSquareness:      orDefault(f.TeethSquareness),
			Thickness:            orDefault(f.Thickness),
		},
		Rotation: f.Rotation,
		Crank:    DefaultCrank(),
	}
	if f.Color != "" {
		sc.Gear.Color, err = gear.ParsePaint(f.Color)
		if err != nil {
			return Scene{}, fmt.Errorf("config: color: %w", err)
		}
	}
	if f.Struts != nil {
		count, err := gear.StrutCount(f.Struts.Count)
		if err != nil {
			return Scene{}, err
		}
		st := gear.DefaultStruts()
		st.Count = count
		if f.Struts.WidthFactor != 0 {
			st.WidthFactor = f.Struts.WidthFactor
		}
		st.ConcentricDiameter = f.Struts.ConcentricDiameter
		if f.Struts.ConcentricThicknessFactor != 0 {
			st.ConcentricThicknessFactor = f.Struts.ConcentricThicknessFactor
		}
		sc.Gear.Struts = &st
	}
	if f.Crank != nil {
		if err := f.Crank.apply(&sc.Crank); err != nil {
			return Scene{}, err
		}
	}
	if sc.Gear.Color == (gear.Paint{}) {
		sc.Gear.Color = gear.White
	}
	if err := sc.Gear.Validate(); err != nil {
		return Scene{}, err
	}
	return sc, nil
}

// NewGear returns the scene's gear at its initial rotation. Unlike gear.New,
// zero shape factors in sc.Gear are kept at zero.
func (sc Scene) NewGear() (*gear.Gear, error) {
	g, err := gear.New(sc.Gear)
	if err != nil {
		return nil, err
	}
	// New defaults zero factors; write the resolved values back.
	for _, w := range []struct {
		c *anim.Cell[float64]
		v float64
	}{
		{g.TeethHeightFactor(), sc.Gear.TeethHeightFactor},
		{g.TeethClosenessFactor(), sc.Gear.TeethClosenessFactor},
		{g.TeethSquareness(), sc.Gear.TeethSquareness},
		{g.Thickness(), sc.Gear.Thickness},
		{g.Rotation(), sc.Rotation},
	} {
		if err := w.c.Set(w.v); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func orDefault(v *float64) float64 {
	if v == nil {
		return 1
	}
	return *v
}

// count converts a file number to a non-negative integer.
func count(param string, f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, &gear.ParamError{Param: param, Value: f, Reason: "must be an integer"}
	}
	if f < 0 {
		return 0, &gear.ParamError{Param: param, Value: f, Reason: "must not be negative"}
	}
	return int(f), nil
}

func (c *crankFile) apply(dst *Crank) error {
	if c.Duration != nil {
		if d := *c.Duration; d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return &gear.ParamError{Param: "crank.duration", Value: d, Reason: "must be finite and not negative"}
		}
		dst.Duration = *c.Duration
	}
	if math.IsNaN(c.Amount) || math.IsInf(c.Amount, 0) {
		return &gear.ParamError{Param: "crank.amount", Value: c.Amount, Reason: "must be finite"}
	}
	if c.Amount != 0 {
		dst.Amount = c.Amount
	}
	if c.Steps != 0 {
		n, err := count("crank.steps", c.Steps)
		if err != nil {
			return err
		}
		dst.Steps = n
	}
	if c.Ease != "" {
		if _, err := anim.TimingByName(c.Ease); err != nil {
			return fmt.Errorf("config: crank.ease: %w", err)
		}
		dst.Ease = c.Ease
	}
	if c.Pause < 0 {
		return &gear.ParamError{Param: "crank.pause", Value: c.Pause, Reason: "must not be negative"}
	}
	dst.Pause = c.Pause
	return nil
}
