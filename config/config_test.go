package config_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/soypat/gear"
	"github.com/soypat/gear/config"
)

func TestLoad(t *testing.T) {
	sc, err := config.Load("testdata/demo.json5")
	if err != nil {
		t.Fatal(err)
	}
	want := config.Scene{
		Gear: gear.Params{
			Diameter:             300,
			Teeth:                10,
			TeethHeightFactor:    1,
			TeethClosenessFactor: 1,
			TeethSquareness:      1,
			Thickness:            1,
			Color:                gear.White,
			Struts:               &gear.StrutConfig{Count: 5, WidthFactor: 0.5, ConcentricDiameter: 100, ConcentricThicknessFactor: 2},
		},
		Crank: config.Crank{Duration: 0.5, Amount: 1, Steps: 4, Pause: 0.25},
	}
	if diff := cmp.Diff(want, sc); diff != "" {
		t.Errorf("scene mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeDefaults(t *testing.T) {
	sc, err := config.Decode([]byte(`{diameter: 120, teeth: 6, color: "#f00", rotation: 15}`))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Gear.Struts != nil {
		t.Errorf("got struts %+v. want none", sc.Gear.Struts)
	}
	if sc.Gear.Color != (gear.Paint{R: 255, A: 255}) {
		t.Errorf("got color %v. want #ff0000", sc.Gear.Color)
	}
	if sc.Rotation != 15 {
		t.Errorf("got rotation %g. want 15", sc.Rotation)
	}
	if sc.Crank != config.DefaultCrank() {
		t.Errorf("got crank %+v. want default", sc.Crank)
	}
}

func TestDecodeInvalid(t *testing.T) {
	for _, test := range []struct {
		src   string
		param string
	}{
		{src: `{diameter: 100, teeth: 10.5}`, param: "teeth"},
		{src: `{diameter: 100, teeth: -3}`, param: "teeth"},
		{src: `{diameter: -1, teeth: 10}`, param: "diameter"},
		{src: `{diameter: 100, teeth: 10, teethClosenessFactor: 12}`, param: "teethClosenessFactor"},
		{src: `{diameter: 100, teeth: 10, struts: {count: 2.5}}`, param: "struts.count"},
		{src: `{diameter: 100, teeth: 10, crank: {duration: -1}}`, param: "crank.duration"},
		{src: `{diameter: 100, teeth: 10, crank: {steps: 1.5}}`, param: "crank.steps"},
		{src: `{diameter: 100, teeth: 10, crank: {steps: -2}}`, param: "crank.steps"},
	} {
		_, err := config.Decode([]byte(test.src))
		if !errors.Is(err, gear.ErrInvalidParam) {
			t.Errorf("%s: got %v. want ErrInvalidParam", test.src, err)
			continue
		}
		var perr *gear.ParamError
		if !errors.As(err, &perr) || perr.Param != test.param {
			t.Errorf("%s: got %v. want error on %s", test.src, err, test.param)
		}
	}
}

func TestDecodeSyntax(t *testing.T) {
	_, err := config.Decode([]byte(`{diameter: `))
	if err == nil || errors.Is(err, gear.ErrInvalidParam) {
		t.Errorf("got %v. want syntax error", err)
	}
	if _, err := config.Decode([]byte(`{diameter: 10, teeth: 4, color: "notacolor"}`)); err == nil {
		t.Error("expected unknown color error")
	}
}

func TestDecodeExplicitZero(t *testing.T) {
	sc, err := config.Decode([]byte(`{diameter: 100, teeth: 8, teethSquareness: 0, teethHeightFactor: 0, rotation: 30}`))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Gear.TeethSquareness != 0 || sc.Gear.TeethHeightFactor != 0 {
		t.Errorf("explicit zeros lost: %+v", sc.Gear)
	}
	if sc.Gear.Thickness != 1 || sc.Gear.TeethClosenessFactor != 1 {
		t.Errorf("omitted factors not defaulted: %+v", sc.Gear)
	}
	g, err := sc.NewGear()
	if err != nil {
		t.Fatal(err)
	}
	m := g.Metrics()
	if m.TeethShape != 2*8 {
		t.Errorf("got teeth shape %g. want %d", m.TeethShape, 2*8)
	}
	if m.TeethHeight != 0 {
		t.Errorf("got teeth height %g. want 0", m.TeethHeight)
	}
	if g.Rotation().Get() != 30 {
		t.Errorf("got rotation %g. want 30", g.Rotation().Get())
	}
}

func TestDecodeEase(t *testing.T) {
	sc, err := config.Decode([]byte(`{diameter: 100, teeth: 8, crank: {ease: "outCubic"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Crank.Ease != "outCubic" {
		t.Errorf("got ease %q. want outCubic", sc.Crank.Ease)
	}
	if _, err := config.Decode([]byte(`{diameter: 100, teeth: 8, crank: {ease: "bounce"}}`)); err == nil {
		t.Error("expected unknown ease error")
	}
}
