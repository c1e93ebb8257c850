// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"github.com/rboman/sph/config"
	"github.com/rboman/sph/field"
	"github.com/rboman/sph/neighbor"
)

// XSPHCorrection computes the position derivative v̂_i = v_i +
// εXSPH·Σ_j (2·m_j/(ρ_i+ρ_j))·(v_j-v_i)·W(r_ij,κ). res must have been
// searched with withW=true.
func XSPHCorrection(i int, res *neighbor.Result, f *field.Field, p *config.Parameter) (vx, vy, vz float64) {
	vx, vy, vz = f.Vx[i], f.Vy[i], f.Vz[i]
	for n, j := range res.IDs {
		if j == i {
			continue // self term: (v_j-v_i)=0, no contribution
		}
		coeff := p.EpsilonXSPH * (2 * f.Mass[j] / (f.Density[i] + f.Density[j])) * res.Values[n]
		vx += coeff * (f.Vx[j] - f.Vx[i])
		vy += coeff * (f.Vy[j] - f.Vy[i])
		vz += coeff * (f.Vz[j] - f.Vz[i])
	}
	return
}
