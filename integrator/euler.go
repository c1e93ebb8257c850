// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"github.com/rboman/sph/config"
	"github.com/rboman/sph/field"
	"github.com/rboman/sph/physics"
)

// Euler advances particles [startParticle, endParticle] of cur by one step
// of size k at time t using derivatives d already computed over cur, writing
// the result into next. next must already carry a copy of cur (Kind, Law,
// OriginX/Y/Z, and for fixed particles X/Y/Z/Vx/Vy/Vz) — e.g. via
// next.CopyFrom(cur) — since Euler only overwrites the fields each particle
// kind actually integrates. Free particles integrate density, velocity and
// position; fixed particles integrate only density (velocity and position
// stay exactly as copied); moving particles integrate density and take their
// position/velocity from movingKinematics evaluated at t+k. Pressure is
// recomputed for every particle from its new density.
func Euler(cur, next *field.Field, p *config.Parameter, d *Derivatives, t, k float64, startParticle, endParticle int) {
	for i := startParticle; i <= endParticle; i++ {
		next.Density[i] = cur.Density[i] + k*d.DRho[i]

		switch cur.Kind[i] {
		case field.Free:
			next.Vx[i] = cur.Vx[i] + k*d.DV[3*i]
			next.Vy[i] = cur.Vy[i] + k*d.DV[3*i+1]
			next.Vz[i] = cur.Vz[i] + k*d.DV[3*i+2]
			next.X[i] = cur.X[i] + k*d.DX[3*i]
			next.Y[i] = cur.Y[i] + k*d.DX[3*i+1]
			next.Z[i] = cur.Z[i] + k*d.DX[3*i+2]

		case field.Moving:
			next.X[i], next.Y[i], next.Z[i], next.Vx[i], next.Vy[i], next.Vz[i] =
				physics.MovingKinematics(i, next, p, t+k)
		}

		next.Pressure[i] = physics.EquationOfState(next.Density[i], p)
	}
}
