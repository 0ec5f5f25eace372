// Package filter implements the adaptive low-pass smoothing applied to raw
// joint estimates. The scalar filter is a one-euro filter: a causal first
// order low-pass whose cutoff rises with the estimated signal velocity, so
// jitter is suppressed at rest without adding lag during fast motion.
package filter

import "math"

// OneEuro is a single-axis adaptive low-pass filter. The zero value is not
// usable; construct with NewOneEuro.
type OneEuro struct {
	minCutoff float64 // baseline cutoff (Hz), lower = smoother
	beta      float64 // velocity coefficient, higher = less lag when moving
	dCutoff   float64 // cutoff (Hz) for the derivative estimate

	initialized bool
	xPrev       float64
	dxPrev      float64
	tPrev       float64
}

// NewOneEuro builds a filter with the given tuning. dCutoff at or below zero
// falls back to the conventional 1 Hz derivative cutoff.
func NewOneEuro(minCutoff, beta, dCutoff float64) *OneEuro {
	if dCutoff <= 0 {
		dCutoff = 1.0
	}
	return &OneEuro{minCutoff: minCutoff, beta: beta, dCutoff: dCutoff}
}

func lowpass(prev, x, cutoff, dt float64) float64 {
	tau := 1 / (2 * math.Pi * cutoff)
	alpha := 1 / (1 + tau/dt)
	return prev + alpha*(x-prev)
}

// Filter consumes one sample at time t seconds and returns the smoothed
// value. The first sample passes through unchanged. A non-increasing
// timestamp returns the last output without touching state; that is the
// defined degenerate-input policy, not an error.
func (f *OneEuro) Filter(t, x float64) float64 {
	if !f.initialized {
		f.initialized = true
		f.xPrev = x
		f.dxPrev = 0
		f.tPrev = t
		return x
	}

	dt := t - f.tPrev
	if dt <= 0 {
		return f.xPrev
	}

	dx := (x - f.xPrev) / dt
	edx := lowpass(f.dxPrev, dx, f.dCutoff, dt)
	cutoff := f.minCutoff + f.beta*math.Abs(edx)
	result := lowpass(f.xPrev, x, cutoff, dt)

	f.xPrev = result
	f.dxPrev = edx
	f.tPrev = t
	return result
}

// Reset clears the filter history so the next sample passes through.
func (f *OneEuro) Reset() {
	f.initialized = false
	f.xPrev = 0
	f.dxPrev = 0
	f.tPrev = 0
}
