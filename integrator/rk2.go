// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"github.com/rboman/sph/config"
	"github.com/rboman/sph/field"
	"github.com/rboman/sph/physics"
)

// RK2Update combines the derivatives at t (cur) and at the shared mid-state
// (mid) into next, blended by θ: ρⁿ⁺¹ = ρⁿ + k·((1−θ)·dρⁿ + θ·dρᵐⁱᵈ), and
// likewise for v and x. Moving particles instead evaluate movingKinematics
// directly at t+k, the same as Euler — the mid-state only ever feeds free
// and fixed particles' blended derivatives. next must already carry a copy
// of cur, per Euler's contract.
func RK2Update(cur, mid, next *field.Field, p *config.Parameter, curD, midD *Derivatives, t, k float64, startParticle, endParticle int) {
	theta := p.Theta
	oneMinusTheta := 1 - theta
	for i := startParticle; i <= endParticle; i++ {
		next.Density[i] = cur.Density[i] + k*(oneMinusTheta*curD.DRho[i]+theta*midD.DRho[i])

		switch cur.Kind[i] {
		case field.Free:
			next.Vx[i] = cur.Vx[i] + k*(oneMinusTheta*curD.DV[3*i]+theta*midD.DV[3*i])
			next.Vy[i] = cur.Vy[i] + k*(oneMinusTheta*curD.DV[3*i+1]+theta*midD.DV[3*i+1])
			next.Vz[i] = cur.Vz[i] + k*(oneMinusTheta*curD.DV[3*i+2]+theta*midD.DV[3*i+2])
			next.X[i] = cur.X[i] + k*(oneMinusTheta*curD.DX[3*i]+theta*midD.DX[3*i])
			next.Y[i] = cur.Y[i] + k*(oneMinusTheta*curD.DX[3*i+1]+theta*midD.DX[3*i+1])
			next.Z[i] = cur.Z[i] + k*(oneMinusTheta*curD.DX[3*i+2]+theta*midD.DX[3*i+2])

		case field.Moving:
			next.X[i], next.Y[i], next.Z[i], next.Vx[i], next.Vy[i], next.Vz[i] =
				physics.MovingKinematics(i, next, p, t+k)
		}

		next.Pressure[i] = physics.EquationOfState(next.Density[i], p)
	}
}

// RK2MidStep advances particles [startParticle, endParticle] of cur to the
// mid-state at time t+kMid (kMid = k/(2θ)) by a plain Euler step using the
// derivatives already computed at t, writing into mid. mid must already
// carry a copy of cur (see Euler's contract).
func RK2MidStep(cur, mid *field.Field, p *config.Parameter, d *Derivatives, t, k float64, startParticle, endParticle int) {
	kMid := 0.5 * k / p.Theta
	Euler(cur, mid, p, d, t, kMid, startParticle, endParticle)
}
