// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/rboman/sph/field"
	"github.com/rboman/sph/neighbor"
)

func Test_continuity01(tst *testing.T) {

	chk.PrintTitle("continuity01. single particle with no neighbors has dρ/dt = 0")

	f := field.New(1)
	f.NFree = 1
	f.Density[0] = 1000.0
	f.Mass[0] = 1.0

	res := &neighbor.Result{IDs: []int{0}, Gradients: []float64{0}, Values: []float64{1}}
	drho := Continuity(0, res, f)
	if drho != 0 {
		tst.Errorf("dρ/dt should be 0 for an isolated particle, got %v", drho)
	}
}

func Test_continuity02(tst *testing.T) {

	chk.PrintTitle("continuity02. approaching neighbor increases density")

	f := field.New(2)
	f.NFree = 2
	f.X = []float64{0, 0.05}
	f.Vx = []float64{1.0, -1.0} // particles closing in on each other
	f.Mass = []float64{1.0, 1.0}
	f.Density = []float64{1000, 1000}

	res := &neighbor.Result{IDs: []int{0, 1}, Gradients: []float64{0, -5.0}}
	drho := Continuity(0, res, f)
	if drho <= 0 {
		tst.Errorf("density should increase when particles approach, got dρ/dt=%v", drho)
	}
}
