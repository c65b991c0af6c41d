// Package anim drives scalar values toward targets over time.
//
// Values are advanced explicitly with the frame time, which keeps them usable
// from a Gio layout function and deterministic under test.
package anim

import "time"

// Options describes a single animation.
type Options struct {
	Duration time.Duration
	// Delay postpones the start of the motion.
	Delay time.Duration
	// Easing defaults to Standard.
	Easing Easing
	// Done is called once when the animation ends. finished is false when the
	// animation was interrupted by another one or by Set.
	Done func(finished bool)
}

// Value is an animated scalar channel.
type Value struct {
	current float32
	from    float32
	to      float32
	start   time.Time
	opts    Options
	running bool
}

// NewValue returns a resting value.
func NewValue(v float32) *Value {
	return &Value{current: v, from: v, to: v}
}

// Value returns the value as of the last Update.
func (v *Value) Value() float32 {
	return v.current
}

// Target returns the value being animated toward, or the resting value.
func (v *Value) Target() float32 {
	return v.to
}

// Animating reports whether an animation is scheduled or in motion.
func (v *Value) Animating() bool {
	return v.running
}

// AnimateTo starts animating from the current value toward to. A running
// animation is interrupted and continues from its current value.
func (v *Value) AnimateTo(now time.Time, to float32, opts Options) {
	interrupted := v.halt()

	if opts.Easing == nil {
		opts.Easing = Standard
	}
	v.from = v.current
	v.to = to
	v.start = now.Add(opts.Delay)
	v.opts = opts
	v.running = true

	if interrupted != nil {
		interrupted(false)
	}
}

// Set moves the value to x immediately.
func (v *Value) Set(x float32) {
	interrupted := v.halt()
	v.current, v.from, v.to = x, x, x
	if interrupted != nil {
		interrupted(false)
	}
}

// Update advances the animation to now and returns the new value.
func (v *Value) Update(now time.Time) float32 {
	if !v.running || now.Before(v.start) {
		return v.current
	}

	elapsed := now.Sub(v.start)
	if elapsed >= v.opts.Duration {
		v.current = v.to
		done := v.opts.Done
		v.running = false
		v.opts = Options{}
		if done != nil {
			done(true)
		}
		return v.current
	}

	progress := float32(elapsed) / float32(v.opts.Duration)
	v.current = v.from + (v.to-v.from)*v.opts.Easing(progress)
	return v.current
}

// halt stops a running animation and returns its completion callback.
func (v *Value) halt() func(bool) {
	if !v.running {
		return nil
	}
	done := v.opts.Done
	v.running = false
	v.opts = Options{}
	return done
}
