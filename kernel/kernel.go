// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kernel implements the SPH smoothing kernels: the smoothing value
// W(r,κ) and its gradient magnitude dW/dr(r,κ), for six kernel families.
package kernel

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/rboman/sph/config"
)

// hOf returns the kernel-internal length scale h derived from κ.
func hOf(sel config.Kernel, kh float64) float64 {
	switch sel {
	case config.Gaussian, config.BellShaped:
		return kh
	case config.CubicSpline, config.Quadratic, config.Quintic:
		return kh / 2.0
	case config.QuinticSpline:
		return kh / 3.0
	default:
		chk.Panic("kernel: unknown selector %v", sel)
	}
	return 0
}

// W evaluates the smoothing kernel at distance r ≥ 0 with smoothing length
// κ. Returns 0 outside the kernel's compact support.
func W(r, kh float64, sel config.Kernel) float64 {
	h := hOf(sel, kh)
	switch sel {
	case config.Gaussian:
		alphaD := 1.0 / (math.Pow(math.Pi, 1.5) * h * h * h)
		return alphaD * math.Exp(-(r/h)*(r/h))

	case config.BellShaped:
		alphaD := 6.5625 / (math.Pi * h * h * h)
		if r < h {
			return alphaD * (1.0 + 3.0*(r/h)) * math.Pow(1.0-(r/h), 3)
		}
		return 0

	case config.CubicSpline:
		alphaD := 1.5 / (math.Pi * h * h * h)
		switch {
		case r < h:
			return alphaD * (2.0/3.0 - r*r/(h*h) + 0.5*r*r*r/(h*h*h))
		case r < 2*h:
			return alphaD * ((1.0 / 6.0) * math.Pow(2.0-(r/h), 3))
		default:
			return 0
		}

	case config.Quadratic:
		alphaD := 1.25 / (math.Pi * h * h * h)
		if r < 2*h {
			return alphaD * (0.1875*r*r/(h*h) - 0.75*(r/h) + 0.75)
		}
		return 0

	case config.Quintic:
		alphaD := 1.3125 / (math.Pi * h * h * h)
		if r < 2*h {
			return alphaD * math.Pow(1-0.5*(r/h), 4) * (2*r/h + 1)
		}
		return 0

	case config.QuinticSpline:
		alphaD := 3.0 / (359.0 * math.Pi * h * h * h)
		switch {
		case r < h:
			return alphaD * (math.Pow(3-(r/h), 5) - 6*math.Pow(2-(r/h), 5) + 15*math.Pow(1-(r/h), 5))
		case r < 2*h:
			return alphaD * (math.Pow(3-(r/h), 5) - 6*math.Pow(2-(r/h), 5))
		case r < 3*h:
			return alphaD * math.Pow(3-(r/h), 5)
		default:
			return 0
		}

	default:
		chk.Panic("kernel: unknown selector %v", sel)
	}
	return 0
}

// GradW evaluates the (signed) derivative dW/dr at distance r ≥ 0 with
// smoothing length κ. Returns 0 outside the kernel's compact support.
func GradW(r, kh float64, sel config.Kernel) float64 {
	h := hOf(sel, kh)
	switch sel {
	case config.Gaussian:
		alphaD := 1.0 / (math.Pow(math.Pi, 1.5) * h * h * h)
		return (alphaD / h) * (-2.0 * (r / h)) * math.Exp(-(r/h)*(r/h))

	case config.BellShaped:
		alphaD := 6.5625 / (math.Pi * h * h * h)
		if r < h {
			return (alphaD / h) * 3 * (math.Pow(1-(r/h), 3) - (1+3*(r/h))*math.Pow(1-(r/h), 2))
		}
		return 0

	case config.CubicSpline:
		alphaD := 1.5 / (math.Pi * h * h * h)
		switch {
		case r < h:
			return (alphaD / h) * (1.5*(r/h)*(r/h) - 2*r/h)
		case r < 2*h:
			return (alphaD / h) * (-0.5 * (2.0 - (r / h)) * (2.0 - (r / h)))
		default:
			return 0
		}

	case config.Quadratic:
		alphaD := 1.25 / (math.Pi * h * h * h)
		if r < 2*h {
			return (alphaD / h) * (0.375*(r/h) - 0.75)
		}
		return 0

	case config.Quintic:
		alphaD := 1.3125 / (math.Pi * h * h * h)
		if r < 2*h {
			return (alphaD / h) * ((-5.0 * (r / h)) * math.Pow(1-0.5*(r/h), 3))
		}
		return 0

	case config.QuinticSpline:
		alphaD := 3.0 / (359.0 * math.Pi * h * h * h)
		switch {
		case r < h:
			return (alphaD / h) * (-5.0*math.Pow(3.0-(r/h), 4) + 30.0*math.Pow(2.0-(r/h), 4) - 75.0*math.Pow(1.0-(r/h), 4))
		case r < 2*h:
			return (alphaD / h) * (-5.0*math.Pow(3.0-(r/h), 4) + 30.0*math.Pow(2.0-(r/h), 4))
		case r < 3*h:
			return (alphaD / h) * (-5.0 * math.Pow(3.0-(r/h), 4))
		default:
			return 0
		}

	default:
		chk.Panic("kernel: unknown selector %v", sel)
	}
	return 0
}

// Table is a uniformly-sampled gradient lookup over [0,κ], used when the
// caller prefers a table lookup over an analytic evaluation.
type Table struct {
	kh      float64
	samples []float64
}

// NewTable precomputes N uniformly-spaced samples of dW/dr over [0,κ] for
// the given kernel. Panics (contract violation, not a runtime condition) if
// N ≤ 1.
func NewTable(sel config.Kernel, kh float64, n int) *Table {
	if n <= 1 {
		chk.Panic("kernel: table resolution must be greater than 1, got %d", n)
	}
	t := &Table{kh: kh, samples: make([]float64, n)}
	increment := kh / float64(n-1)
	r := 0.0
	for i := 0; i < n; i++ {
		t.samples[i] = GradW(r, kh, sel)
		r += increment
	}
	return t
}

// Lookup returns the stored gradient sample nearest to r, via round-to-
// nearest index r·(N-1)/κ.
func (t *Table) Lookup(r float64) float64 {
	n := len(t.samples)
	idx := int(math.Round(r * float64(n-1) / t.kh))
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	return t.samples[idx]
}
