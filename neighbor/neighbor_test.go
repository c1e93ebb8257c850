// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neighbor

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/rboman/sph/boxindex"
	"github.com/rboman/sph/config"
	"github.com/rboman/sph/field"
)

func Test_neighbor01(tst *testing.T) {

	chk.PrintTitle("neighbor01. self is included, distant particle is not")

	kh := 0.1
	l := [3]float64{0, 0, 0}
	u := [3]float64{1, 1, 1}
	grid := boxindex.New(l, u, boxindex.Size(kh, config.Euler))

	f := field.New(3)
	f.X = []float64{0.5, 0.52, 0.9}
	f.Y = []float64{0.5, 0.5, 0.9}
	f.Z = []float64{0.5, 0.5, 0.9}
	f.NFree = 3
	grid.Sort(f)

	box := grid.BoxOf(f.X[0], f.Y[0], f.Z[0])
	var res Result
	Search(0, box, grid, f, kh, config.CubicSpline, true, &res)

	foundSelf, foundNear, foundFar := false, false, false
	for _, id := range res.IDs {
		switch id {
		case 0:
			foundSelf = true
		case 1:
			foundNear = true
		case 2:
			foundFar = true
		}
	}
	if !foundSelf {
		tst.Errorf("particle 0 should include itself in its own neighbor list")
	}
	if !foundNear {
		tst.Errorf("particle 1 is within kh of particle 0 and should be found")
	}
	if foundFar {
		tst.Errorf("particle 2 is far from particle 0 and should not be found")
	}
	if len(res.IDs) != len(res.Gradients) || len(res.IDs) != len(res.Values) {
		tst.Errorf("IDs/Gradients/Values must share indices")
	}
}
