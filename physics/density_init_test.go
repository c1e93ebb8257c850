// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/rboman/sph/config"
	"github.com/rboman/sph/field"
)

func Test_densityinit01(tst *testing.T) {

	chk.PrintTitle("densityinit01. homogeneous density initialisation")

	f := field.New(2)
	f.Kind = []field.Kind{field.Free, field.Fixed}
	f.NFree, f.NFixed = 1, 1

	p := &config.Parameter{DensityInit: config.Homogeneous, DensityRef: 1000.0}
	InitDensity(f, p)

	for i, rho := range f.Density {
		if rho != p.DensityRef {
			tst.Errorf("particle %d: density = %v, want %v", i, rho, p.DensityRef)
		}
	}
}

func Test_densityinit02(tst *testing.T) {

	chk.PrintTitle("densityinit02. hydrostatic init: surface particle and boundary particle take ρ0")

	p := &config.Parameter{
		DensityInit:   config.Hydrostatic,
		StateEquation: config.QuasiIncompressible,
		DensityRef:    1000.0,
		B:             1.0e5,
		Gamma:         7.0,
		G:             9.81,
	}

	zMax := 1.0
	f := field.New(2)
	f.Kind = []field.Kind{field.Free, field.Fixed}
	f.Z = []float64{zMax, 0.3}
	f.NFree, f.NFixed = 1, 1
	InitDensity(f, p)

	// surface particle: density must equal ρ0 exactly
	chk.AnaNum(tst, "ρ(zMax)", 1e-9, p.DensityRef, f.Density[0], false)

	// boundary particle keeps ρ0 regardless of elevation
	chk.AnaNum(tst, "ρ(fixed)", 1e-12, p.DensityRef, f.Density[1], false)
}

func Test_densityinit03(tst *testing.T) {

	chk.PrintTitle("densityinit03. deeper free particles are denser under gravity")

	p := &config.Parameter{
		DensityInit:   config.Hydrostatic,
		StateEquation: config.QuasiIncompressible,
		DensityRef:    1000.0,
		B:             1.0e5,
		Gamma:         7.0,
		G:             9.81,
	}

	f := field.New(3)
	f.Kind = []field.Kind{field.Free, field.Free, field.Free}
	f.Z = []float64{1.0, 0.5, 0.0}
	f.NFree = 3
	InitDensity(f, p)

	if !(f.Density[0] <= f.Density[1] && f.Density[1] <= f.Density[2]) {
		tst.Errorf("density should increase with depth: got %v", f.Density)
	}
	if math.Abs(f.Density[0]-p.DensityRef) > 1e-9 {
		tst.Errorf("surface density should equal ρ0, got %v", f.Density[0])
	}
}
