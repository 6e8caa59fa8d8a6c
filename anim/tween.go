package anim

// Tween animates a Cell from one value to another. It is created by
// Cell.Tween and driven by calling Poll with the time elapsed since the
// tween started.
type Tween[T any] struct {
	cell     *Cell[T]
	from, to T
	duration float64
	ease     TimingFunc
	done     bool
	canceled bool
}

// WithEase replaces the timing function. It must be called before the
// first Poll.
func (tw *Tween[T]) WithEase(f TimingFunc) *Tween[T] {
	if f != nil {
		tw.ease = f
	}
	return tw
}

// From returns the value the cell held when the tween was created.
func (tw *Tween[T]) From() T { return tw.cell.copy(tw.from) }

// Target returns the value the cell holds once the tween completes.
func (tw *Tween[T]) Target() T { return tw.cell.copy(tw.to) }

// Duration returns the tween duration in seconds.
func (tw *Tween[T]) Duration() float64 { return tw.duration }

// Done reports whether the tween completed or was cancelled.
func (tw *Tween[T]) Done() bool { return tw.done || tw.canceled }

// Poll writes the value for elapsed seconds into the cell and returns it.
// done is true once elapsed reaches the duration, at which point the cell
// holds exactly the target. Polling a finished or cancelled tween returns
// the cell's current value and true without writing.
func (tw *Tween[T]) Poll(elapsed float64) (value T, done bool) {
	if tw.Done() {
		return tw.cell.Get(), true
	}
	if elapsed >= tw.duration {
		tw.done = true
		tw.cell.write(tw.to)
		tw.cell.release(tw)
		return tw.cell.Get(), true
	}
	t := clamp01(elapsed / tw.duration)
	tw.cell.write(tw.cell.lerp(tw.from, tw.to, tw.ease(t)))
	return tw.cell.Get(), false
}

// Advance implements Task.
func (tw *Tween[T]) Advance(elapsed float64) (bool, error) {
	_, done := tw.Poll(elapsed)
	return done, nil
}

// Cancel stops the tween. The cell keeps its last tweened value and becomes
// free for another tween.
func (tw *Tween[T]) Cancel() {
	if tw.Done() {
		return
	}
	tw.canceled = true
	tw.cell.release(tw)
}
