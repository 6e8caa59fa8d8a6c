package anim

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrTweenInProgress is returned when a cell already has a tween in flight.
	ErrTweenInProgress = errors.New("tween in progress")
	// ErrInvalidDuration is returned for negative or non-finite tween durations.
	ErrInvalidDuration = errors.New("tween duration must be finite and not negative")
)

// Lerp interpolates between a and b at progress t in [0,1].
type Lerp[T any] func(a, b T, t float64) T

// Cell is a settable value that may animate towards a new value over time.
type Cell[T any] struct {
	name     string
	v        T
	lerp     Lerp[T]
	check    func(T) error
	onChange func()
	dup      func(T) T
	active   *Tween[T]
}

// NewCell returns a cell holding v. check validates every value written
// through Set or used as a Tween target and may be nil. lerp must not be nil.
func NewCell[T any](name string, v T, lerp Lerp[T], check func(T) error) *Cell[T] {
	if lerp == nil {
		panic("nil lerp for cell " + name)
	}
	return &Cell[T]{name: name, v: v, lerp: lerp, check: check}
}

// Name returns the name the cell was created with.
func (c *Cell[T]) Name() string { return c.name }

// Get returns the current value, interpolated if a tween is in flight.
func (c *Cell[T]) Get() T { return c.copy(c.v) }

// WithCopy makes the cell hold private copies of its values. fn is applied
// to values passed to Set and Tween and to values handed out by Get, so
// reference types such as pointers cannot be mutated behind the cell.
func (c *Cell[T]) WithCopy(fn func(T) T) *Cell[T] {
	c.dup = fn
	return c
}

// OnChange registers fn to be called after every write to the cell.
// A second call replaces the previous function.
func (c *Cell[T]) OnChange(fn func()) { c.onChange = fn }

// Set validates v and applies it immediately. A tween in flight on the
// cell is cancelled and keeps no further control over the value.
func (c *Cell[T]) Set(v T) error {
	v = c.copy(v)
	if err := c.validate(v); err != nil {
		return err
	}
	if c.active != nil {
		c.active.Cancel()
	}
	c.write(v)
	return nil
}

// Tween returns a task that animates the cell from its current value to
// `to` over duration seconds using EaseInOutCubic. The target is validated
// before the tween is created. duration must be finite and not negative;
// zero completes on the first poll.
func (c *Cell[T]) Tween(to T, duration float64) (*Tween[T], error) {
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		return nil, fmt.Errorf("cell %s: %w: %g", c.name, ErrInvalidDuration, duration)
	}
	to = c.copy(to)
	if err := c.validate(to); err != nil {
		return nil, err
	}
	if c.active != nil {
		return nil, fmt.Errorf("cell %s: %w", c.name, ErrTweenInProgress)
	}
	tw := &Tween[T]{
		cell:     c,
		from:     c.v,
		to:       to,
		duration: duration,
		ease:     EaseInOutCubic,
	}
	c.active = tw
	return tw, nil
}

// Busy reports whether a tween currently controls the cell.
func (c *Cell[T]) Busy() bool { return c.active != nil }

func (c *Cell[T]) validate(v T) error {
	if c.check == nil {
		return nil
	}
	return c.check(v)
}

func (c *Cell[T]) copy(v T) T {
	if c.dup == nil {
		return v
	}
	return c.dup(v)
}

func (c *Cell[T]) write(v T) {
	c.v = v
	if c.onChange != nil {
		c.onChange()
	}
}

func (c *Cell[T]) release(tw *Tween[T]) {
	if c.active == tw {
		c.active = nil
	}
}
