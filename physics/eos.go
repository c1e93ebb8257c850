// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/rboman/sph/config"
)

// EquationOfState returns pressure p for density ρ under the configured
// state equation: quasi-incompressible Tait, p = B((ρ/ρ₀)^γ - 1); or
// perfect gas, p = ρ·R·T/M.
func EquationOfState(rho float64, p *config.Parameter) float64 {
	switch p.StateEquation {
	case config.QuasiIncompressible:
		return p.B * (math.Pow(rho/p.DensityRef, p.Gamma) - 1.0)
	case config.PerfectGas:
		return rho * config.GasConstant * p.Temperature / p.MolarMass
	default:
		chk.Panic("physics: unknown state equation %v", p.StateEquation)
	}
	return 0
}

// DrhoDp returns dρ/dp, the inverse compressibility used by the
// hydrostatic density initialiser to integrate the column.
func DrhoDp(rho float64, p *config.Parameter) float64 {
	switch p.StateEquation {
	case config.QuasiIncompressible:
		// invert p = B((ρ/ρ0)^γ - 1)  =>  ρ = ρ0 (p/B + 1)^(1/γ)
		// dρ/dp = (ρ0/(B·γ)) (p/B+1)^(1/γ - 1)
		pres := p.B * (math.Pow(rho/p.DensityRef, p.Gamma) - 1.0)
		return (p.DensityRef / (p.B * p.Gamma)) * math.Pow(pres/p.B+1.0, 1.0/p.Gamma-1.0)
	case config.PerfectGas:
		// p = ρ R T / M  =>  dρ/dp = M/(R T)
		return p.MolarMass / (config.GasConstant * p.Temperature)
	default:
		chk.Panic("physics: unknown state equation %v", p.StateEquation)
	}
	return 0
}
