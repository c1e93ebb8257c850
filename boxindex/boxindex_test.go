// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package boxindex

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/rboman/sph/field"
)

func Test_boxindex01(tst *testing.T) {

	chk.PrintTitle("boxindex01. sort covers every particle exactly once")

	l := [3]float64{0, 0, 0}
	u := [3]float64{1, 1, 1}
	g := New(l, u, 0.25)

	f := field.New(5)
	f.X = []float64{0.01, 0.3, 0.6, 0.99, 0.5}
	f.Y = []float64{0.01, 0.3, 0.6, 0.99, 0.5}
	f.Z = []float64{0.01, 0.3, 0.6, 0.99, 0.5}
	f.NFree = 5

	g.Sort(f)

	seen := make(map[int]bool)
	for id := 0; id < g.NBoxes(); id++ {
		for _, p := range g.Neighbors(id) {
			if seen[p] {
				tst.Errorf("particle %d appears in more than one box", p)
			}
			seen[p] = true
		}
	}
	if len(seen) != 5 {
		tst.Errorf("expected 5 particles to be covered, got %d", len(seen))
	}
}

func Test_boxindex02(tst *testing.T) {

	chk.PrintTitle("boxindex02. out-of-bounds positions clamp into the boundary cell")

	l := [3]float64{0, 0, 0}
	u := [3]float64{1, 1, 1}
	g := New(l, u, 0.25)

	id := g.BoxOf(-0.5, 1.5, 0.1)
	if id < 0 || id >= g.NBoxes() {
		tst.Errorf("clamped box id %d out of range", id)
	}
}

func Test_boxindex03(tst *testing.T) {

	chk.PrintTitle("boxindex03. adjacency is clipped at borders, never wraps")

	l := [3]float64{0, 0, 0}
	u := [3]float64{1, 1, 1}
	g := New(l, u, 0.34) // 3x3x3 boxes

	cornerID := g.cellID(0, 0, 0)
	if n := len(g.Adjacency[cornerID]); n != 8 {
		tst.Errorf("corner cell should have 8 neighbors (including itself), got %d", n)
	}

	centerID := g.cellID(1, 1, 1)
	if n := len(g.Adjacency[centerID]); n != 27 {
		tst.Errorf("center cell should have 27 neighbors, got %d", n)
	}
}
