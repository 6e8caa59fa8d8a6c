package anim

// Task is a cooperative unit of work driven by an external clock.
// Advance is called with the seconds elapsed since the task started and
// reports whether the task reached its terminal state.
type Task interface {
	Advance(elapsed float64) (done bool, err error)
}

// Wait returns a task that completes after d seconds.
func Wait(d float64) Task { return wait(d) }

type wait float64

func (w wait) Advance(elapsed float64) (bool, error) {
	return elapsed >= float64(w), nil
}

// Defer returns a task that constructs its underlying task when first
// advanced. Use it inside a Sequence when a task depends on the state left
// by the previous one, such as successive cranks of a gear.
func Defer(fn func() (Task, error)) Task {
	return &deferred{fn: fn}
}

type deferred struct {
	fn   func() (Task, error)
	task Task
}

func (d *deferred) Advance(elapsed float64) (bool, error) {
	if d.task == nil {
		t, err := d.fn()
		if err != nil {
			return true, err
		}
		d.task = t
	}
	return d.task.Advance(elapsed)
}

// Sequence runs tasks one after another. Each task receives time relative
// to the moment the previous one completed.
func Sequence(tasks ...Task) Task {
	return &sequence{tasks: tasks}
}

type sequence struct {
	tasks   []Task
	i       int
	start   float64
	started bool
}

func (s *sequence) Advance(elapsed float64) (bool, error) {
	for s.i < len(s.tasks) {
		if !s.started {
			s.start = elapsed
			s.started = true
		}
		done, err := s.tasks[s.i].Advance(elapsed - s.start)
		if err != nil {
			return true, err
		}
		if !done {
			return false, nil
		}
		s.i++
		s.started = false
	}
	return true, nil
}

// All runs tasks concurrently on the same clock and completes when every
// task has completed.
func All(tasks ...Task) Task {
	return &all{tasks: tasks, done: make([]bool, len(tasks))}
}

type all struct {
	tasks []Task
	done  []bool
}

func (a *all) Advance(elapsed float64) (bool, error) {
	finished := true
	for i, t := range a.tasks {
		if a.done[i] {
			continue
		}
		done, err := t.Advance(elapsed)
		if err != nil {
			return true, err
		}
		a.done[i] = done
		finished = finished && done
	}
	return finished, nil
}
