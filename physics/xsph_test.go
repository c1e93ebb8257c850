// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/rboman/sph/config"
	"github.com/rboman/sph/field"
	"github.com/rboman/sph/neighbor"
)

func Test_xsph01(tst *testing.T) {

	chk.PrintTitle("xsph01. isolated particle: corrected velocity equals its own velocity")

	f := field.New(1)
	f.NFree = 1
	f.Vx[0], f.Vy[0], f.Vz[0] = 1.0, 2.0, -3.0
	f.Density[0] = 1000.0

	p := &config.Parameter{EpsilonXSPH: 0.5}
	res := &neighbor.Result{IDs: []int{0}, Gradients: []float64{0}, Values: []float64{1}}

	vx, vy, vz := XSPHCorrection(0, res, f, p)
	chk.AnaNum(tst, "vx", 1e-12, 1.0, vx, false)
	chk.AnaNum(tst, "vy", 1e-12, 2.0, vy, false)
	chk.AnaNum(tst, "vz", 1e-12, -3.0, vz, false)
}

func Test_xsph02(tst *testing.T) {

	chk.PrintTitle("xsph02. neighbor velocity pulls the corrected velocity toward it")

	f := field.New(2)
	f.NFree = 2
	f.Vx = []float64{0, 2}
	f.Density = []float64{1000, 1000}
	f.Mass = []float64{1, 1}

	p := &config.Parameter{EpsilonXSPH: 0.5}
	res := &neighbor.Result{IDs: []int{0, 1}, Gradients: []float64{0, 0}, Values: []float64{1, 0.8}}

	vx, _, _ := XSPHCorrection(0, res, f, p)
	if vx <= 0 || vx >= 2 {
		tst.Errorf("corrected velocity should lie strictly between 0 and the neighbor's speed, got %v", vx)
	}
}
