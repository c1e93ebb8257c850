// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package physics implements the per-particle SPH formulas: continuity,
// momentum (with Violeau artificial viscosity), XSPH position correction,
// the equation of state, hydrostatic/homogeneous density initialisation,
// and moving-boundary kinematics.
package physics

import (
	"math"

	"github.com/rboman/sph/field"
	"github.com/rboman/sph/neighbor"
)

// unitSep returns r_ij and the unit vector ê_ij pointing from j to i
// (zero vector when r_ij==0, which only occurs for the self term; the zero
// vector makes that term contribute nothing, whatever dW/dr(0,κ) is).
func unitSep(f *field.Field, i, j int) (r, ex, ey, ez float64) {
	dx := f.X[i] - f.X[j]
	dy := f.Y[i] - f.Y[j]
	dz := f.Z[i] - f.Z[j]
	r = math.Sqrt(dx*dx + dy*dy + dz*dz)
	if r == 0 {
		return 0, 0, 0, 0
	}
	return r, dx / r, dy / r, dz / r
}

// Continuity computes dρ/dt for particle i:
//
//	Σ_j m_j (v_i - v_j)·ê_ij · dW/dr(r_ij,κ)
//
// Yields 0 when i has no neighbors other than itself at nonzero distance.
func Continuity(i int, res *neighbor.Result, f *field.Field) float64 {
	var drho float64
	for n, j := range res.IDs {
		_, ex, ey, ez := unitSep(f, i, j)
		dvx := f.Vx[i] - f.Vx[j]
		dvy := f.Vy[i] - f.Vy[j]
		dvz := f.Vz[i] - f.Vz[j]
		dot := dvx*ex + dvy*ey + dvz*ez
		drho += f.Mass[j] * dot * res.Gradients[n]
	}
	return drho
}
