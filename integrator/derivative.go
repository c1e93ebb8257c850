// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package integrator advances a Field in time: a shared derivative pass
// (continuity, momentum, XSPH) feeds either an Euler step or an RK2
// midpoint step, with an optional adaptive time-step proposal.
package integrator

import (
	"github.com/rboman/sph/boxindex"
	"github.com/rboman/sph/config"
	"github.com/rboman/sph/field"
	"github.com/rboman/sph/neighbor"
	"github.com/rboman/sph/physics"
)

// Derivatives holds the three per-particle derivative arrays shared by both
// integration methods: dρ/dt, 3·dv/dt and 3·dx/dt (=v̂, the XSPH-corrected
// velocity). Sized to the local nTotal and kept across steps; an array is
// reallocated only when the particle count changes, since a fresh
// allocation every step is a known inefficiency in the original.
type Derivatives struct {
	DRho []float64
	DV   []float64 // flat 3n: DV[3i+0..2]
	DX   []float64 // flat 3n: DX[3i+0..2]
}

// NewDerivatives allocates a Derivatives sized for n particles.
func NewDerivatives(n int) *Derivatives {
	d := &Derivatives{}
	d.Resize(n)
	return d
}

// Resize grows or shrinks the three arrays to match n, reusing an array
// whose length already matches and reallocating (contents copied) otherwise.
func (d *Derivatives) Resize(n int) {
	d.DRho = resizeF(d.DRho, n)
	d.DV = resizeF(d.DV, 3*n)
	d.DX = resizeF(d.DX, 3*n)
}

// Zero resets every entry to 0 without reallocating, using the same
// la.VecFill-backed helper the field package uses for scratch buffers.
func (d *Derivatives) Zero() {
	field.ZeroVec3(d.DRho)
	field.ZeroVec3(d.DV)
	field.ZeroVec3(d.DX)
}

func resizeF(a []float64, n int) []float64 {
	if len(a) == n {
		return a
	}
	b := make([]float64, n)
	copy(b, a)
	return b
}

// Compute zeroes d, then fills it with the derivatives of every particle
// owned by boxes [startBox, endBox], walking the particles box by box the way the original
// derivativeComputation does. soundSpeed is the artificial-viscosity
// reference speed (parameter.c in the original).
func Compute(f *field.Field, grid *boxindex.Grid, p *config.Parameter, soundSpeed float64, startBox, endBox int, d *Derivatives) {
	d.Resize(f.NTotal())
	d.Zero()
	var res neighbor.Result
	for box := startBox; box <= endBox; box++ {
		for _, i := range grid.Neighbors(box) {
			neighbor.Search(i, box, grid, f, p.Kh, p.KernelSelector, true, &res)

			d.DRho[i] = physics.Continuity(i, &res, f)

			if f.Kind[i] == field.Free {
				dvx, dvy, dvz := physics.Momentum(i, &res, f, p, soundSpeed)
				d.DV[3*i], d.DV[3*i+1], d.DV[3*i+2] = dvx, dvy, dvz
			}

			vx, vy, vz := physics.XSPHCorrection(i, &res, f, p)
			d.DX[3*i], d.DX[3*i+1], d.DX[3*i+2] = vx, vy, vz
		}
	}
}
