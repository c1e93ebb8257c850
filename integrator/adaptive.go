// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"math"

	"github.com/rboman/sph/config"
	"github.com/rboman/sph/field"
)

// courantFactor is the safety factor applied to both the speed- and
// force-based CFL-like bounds, in the spirit of Monaghan's variable
// time-stepping criterion for weakly-compressible SPH.
const courantFactor = 0.3

// ProposeDt returns this rank's local candidate next time step: a CFL-like
// bound from the maximum particle speed, and a bound from the maximum
// acceleration magnitude found in d.DV, over particles
// [startParticle, endParticle]. The caller (subdomain.ReduceMinDt) combines
// this with every other rank's proposal by a collective minimum. fallback
// is returned unbounded when no particle moves or accelerates (e.g. the
// very first step of a quiescent initial condition).
func ProposeDt(f *field.Field, d *Derivatives, p *config.Parameter, startParticle, endParticle int, fallback float64) float64 {
	maxSpeed := 0.0
	maxForce := 0.0
	for i := startParticle; i <= endParticle; i++ {
		speed := math.Sqrt(f.Vx[i]*f.Vx[i] + f.Vy[i]*f.Vy[i] + f.Vz[i]*f.Vz[i])
		if speed > maxSpeed {
			maxSpeed = speed
		}
		fx, fy, fz := d.DV[3*i], d.DV[3*i+1], d.DV[3*i+2]
		force := math.Sqrt(fx*fx + fy*fy + fz*fz)
		if force > maxForce {
			maxForce = force
		}
	}

	dt := fallback
	if maxSpeed > 0 {
		dt = math.Min(dt, courantFactor*p.Kh/maxSpeed)
	}
	if maxForce > 0 {
		dt = math.Min(dt, courantFactor*math.Sqrt(p.Kh/maxForce))
	}
	return dt
}
