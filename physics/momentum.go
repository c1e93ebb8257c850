// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"github.com/rboman/sph/config"
	"github.com/rboman/sph/field"
	"github.com/rboman/sph/neighbor"
)

// Momentum computes dv/dt = (dvx,dvy,dvz) for a free particle i: the
// pressure term -m_j(p_i/ρ_i² + p_j/ρ_j² + Π_ij)·∇W plus gravity (0,0,-g)
// on the z axis. Π_ij is the Violeau artificial viscosity.
func Momentum(i int, res *neighbor.Result, f *field.Field, p *config.Parameter, soundSpeed float64) (dvx, dvy, dvz float64) {
	kh := p.Kh
	for n, j := range res.IDs {
		r, ex, ey, ez := unitSep(f, i, j)
		if r == 0 {
			continue // self term: zero separation contributes nothing to the pressure gradient
		}
		pi := f.Pressure[i]
		pj := f.Pressure[j]
		rhoi := f.Density[i]
		rhoj := f.Density[j]

		pij := pi/(rhoi*rhoi) + pj/(rhoj*rhoj)
		pij += violeauViscosity(f, i, j, r, kh, soundSpeed, p.Alpha, p.Beta, p.Epsilon)

		coeff := -f.Mass[j] * pij * res.Gradients[n]
		dvx += coeff * ex
		dvy += coeff * ey
		dvz += coeff * ez
	}
	dvz -= p.G
	return
}

// violeauViscosity computes Π_ij: zero when (v_i-v_j)·(x_i-x_j) ≥ 0;
// otherwise -(α·c·μ - β·μ²)/ρ̄ with μ = κ(v_i-v_j)·(x_i-x_j)/(r²+ε·κ²).
func violeauViscosity(f *field.Field, i, j int, r, kh, c, alpha, beta, eps float64) float64 {
	dvx := f.Vx[i] - f.Vx[j]
	dvy := f.Vy[i] - f.Vy[j]
	dvz := f.Vz[i] - f.Vz[j]
	dxx := f.X[i] - f.X[j]
	dxy := f.Y[i] - f.Y[j]
	dxz := f.Z[i] - f.Z[j]
	dot := dvx*dxx + dvy*dxy + dvz*dxz
	if dot >= 0 {
		return 0
	}
	mu := kh * dot / (r*r + eps*kh*kh)
	rhoBar := 0.5 * (f.Density[i] + f.Density[j])
	return -(alpha*c*mu - beta*mu*mu) / rhoBar
}
