package anim

import (
	"fmt"
	"math"
)

// TimingFunc maps normalized time t in [0,1] to normalized progress.
// It must satisfy f(0) == 0 and f(1) == 1.
type TimingFunc func(t float64) float64

// Linear progresses at constant speed.
func Linear(t float64) float64 { return t }

// EaseInOutCubic accelerates then decelerates. It is the default timing
// function for tweens.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutCubic decelerates towards the target.
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// TimingByName returns the timing function called name: "linear",
// "inOutCubic" or "outCubic". The empty name selects EaseInOutCubic.
func TimingByName(name string) (TimingFunc, error) {
	switch name {
	case "", "inOutCubic":
		return EaseInOutCubic, nil
	case "outCubic":
		return EaseOutCubic, nil
	case "linear":
		return Linear, nil
	}
	return nil, fmt.Errorf("anim: unknown timing function %q", name)
}

// Mix does a linear interpolation from x to y, a = [0,1]
func Mix(x, y, a float64) float64 {
	return x + (a * (y - x))
}

// MixInt interpolates between two integers and rounds to the nearest one.
func MixInt(x, y int, a float64) int {
	return int(math.Round(Mix(float64(x), float64(y), a)))
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
