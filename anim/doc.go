// Package anim implements animatable value cells and the cooperative tasks
// that drive them.
//
// A Cell holds a value that can be set immediately or tweened towards a
// target. A Tween is a unit of work with a Poll(elapsed) contract: the
// caller advances time, the tween writes the interpolated value into its
// cell, and reports completion once elapsed reaches the duration.
// Cancelling a task is done by ceasing to poll it, or by calling Cancel to
// release the cell for another tween.
//
// Everything in this package assumes a single logical thread of control.
package anim
