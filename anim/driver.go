package anim

import (
	"context"
	"errors"
)

// Driver advances a Task on a fixed frame clock.
type Driver struct {
	// FPS is the number of frames per simulated second. Must be positive.
	FPS float64
	// MaxFrames stops the driver after this many frames when positive.
	MaxFrames int
	// OnFrame is called after the task is advanced for each frame, with the
	// frame index and the elapsed time in seconds. A non-nil error stops the run.
	OnFrame func(frame int, elapsed float64) error
}

// ErrFrameLimit is returned by Run when MaxFrames is reached first.
var ErrFrameLimit = errors.New("anim: frame limit reached before task completed")

// Run polls task once per frame, starting at elapsed time zero, until the
// task completes, an error occurs or ctx is done. It returns the number of
// frames produced.
func (d *Driver) Run(ctx context.Context, task Task) (frames int, err error) {
	if d.FPS <= 0 {
		return 0, errors.New("anim: driver FPS must be positive")
	}
	dt := 1 / d.FPS
	for {
		if err := ctx.Err(); err != nil {
			return frames, err
		}
		if d.MaxFrames > 0 && frames >= d.MaxFrames {
			return frames, ErrFrameLimit
		}
		elapsed := float64(frames) * dt
		done, err := task.Advance(elapsed)
		if err != nil {
			return frames, err
		}
		if d.OnFrame != nil {
			if err := d.OnFrame(frames, elapsed); err != nil {
				return frames + 1, err
			}
		}
		frames++
		if done {
			return frames, nil
		}
	}
}
