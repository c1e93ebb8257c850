// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/ode"
	"github.com/rboman/sph/config"
	"github.com/rboman/sph/field"
)

// InitDensity fills f.Density for every owned particle according to
// p.DensityInit. Boundaries (Fixed, Moving) always take ρ₀; free particles
// take ρ₀ under Homogeneous or the hydrostatic column value under
// Hydrostatic, integrated downward from the highest free-particle
// elevation using the configured equation of state.
func InitDensity(f *field.Field, p *config.Parameter) {
	switch p.DensityInit {
	case config.Homogeneous:
		for i := range f.Density {
			f.Density[i] = p.DensityRef
		}
	case config.Hydrostatic:
		zMax := math.Inf(-1)
		for i, k := range f.Kind {
			if k == field.Free && f.Z[i] > zMax {
				zMax = f.Z[i]
			}
		}
		for i, k := range f.Kind {
			if k == field.Free {
				f.Density[i] = hydrostaticColumn(f.Z[i], zMax, p)
			} else {
				f.Density[i] = p.DensityRef
			}
		}
	default:
		chk.Panic("physics: unknown density init method %v", p.DensityInit)
	}
}

// hydrostaticColumn integrates dp/dz = -ρ(p)·g from the free surface zMax
// (p=0) down to z, using a pseudo-time T∈[0,1] substitution:
// Z(T) = zMax + T·(z-zMax), so dp/dT = ρ(p)·g·Δz with Δz = zMax-z, and
// dρ/dT = (dρ/dp)·dp/dT.
func hydrostaticColumn(z, zMax float64, p *config.Parameter) float64 {
	if z >= zMax {
		return p.DensityRef
	}
	dz := zMax - z
	var sol ode.ODE
	silent := true
	sol.Init("Radau5", 2, func(fv []float64, dT, T float64, xi []float64, args ...interface{}) error {
		deltaZ := args[0].(float64)
		rho := xi[1]
		fv[0] = rho * p.G * deltaZ     // dp/dT
		fv[1] = DrhoDp(rho, p) * fv[0] // dρ/dT
		return nil
	}, nil, nil, nil, silent)
	sol.Distr = false // disable parallel distribution; this is a per-particle scalar IVP
	xi := []float64{0, p.DensityRef}
	err := sol.Solve(xi, 0, 1, 1, false, dz)
	if err != nil {
		chk.Panic("physics: hydrostatic column integration failed: %v", err)
	}
	return xi[1]
}

// InitPressure fills f.Pressure for every owned particle from f.Density via
// the configured equation of state.
func InitPressure(f *field.Field, p *config.Parameter) {
	for i := range f.Pressure {
		f.Pressure[i] = EquationOfState(f.Density[i], p)
	}
}

// InitMass fills f.Mass from f.Density and f.Volume (the per-particle seed
// volume set by the geometry reader), per the violeau2012 convention
// (mass = density·volume at t=0).
func InitMass(f *field.Field, p *config.Parameter) {
	if p.MassInit != config.Violeau2012 {
		chk.Panic("physics: unknown mass init method %v", p.MassInit)
	}
	for i := range f.Mass {
		f.Mass[i] = f.Density[i] * f.Volume[i]
	}
}
