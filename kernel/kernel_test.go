// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/rboman/sph/config"
)

func Test_kernel01(tst *testing.T) {

	chk.PrintTitle("kernel01. compact support")

	kh := 0.05
	selectors := []config.Kernel{
		config.Gaussian, config.BellShaped, config.CubicSpline,
		config.Quadratic, config.Quintic, config.QuinticSpline,
	}
	for _, sel := range selectors {
		if sel == config.Gaussian {
			continue // Gaussian has unbounded (but decaying) support
		}
		beyond := 10 * kh
		wv := W(beyond, kh, sel)
		gv := GradW(beyond, kh, sel)
		if wv != 0 {
			tst.Errorf("W(%v,%v,%v) should be exactly 0 beyond support, got %v", beyond, kh, sel, wv)
		}
		if gv != 0 {
			tst.Errorf("GradW(%v,%v,%v) should be exactly 0 beyond support, got %v", beyond, kh, sel, gv)
		}
	}
}

func Test_kernel02(tst *testing.T) {

	chk.PrintTitle("kernel02. positive at r=0 and table lookup")

	kh := 0.05
	selectors := []config.Kernel{
		config.Gaussian, config.BellShaped, config.CubicSpline,
		config.Quadratic, config.Quintic, config.QuinticSpline,
	}
	for _, sel := range selectors {
		if w0 := W(0, kh, sel); w0 <= 0 {
			tst.Errorf("W(0,%v,%v) should be strictly positive, got %v", kh, sel, w0)
		}
		if g0 := GradW(0, kh, sel); g0 != 0 {
			tst.Errorf("GradW(0,%v,%v) should vanish at r=0 by symmetry, got %v", kh, sel, g0)
		}
	}
}

func Test_kernel03(tst *testing.T) {

	chk.PrintTitle("kernel03. table matches analytic at sample points")

	kh := 0.1
	n := 101
	table := NewTable(config.CubicSpline, kh, n)
	increment := kh / float64(n-1)
	r := 0.0
	for i := 0; i < n; i++ {
		exact := GradW(r, kh, config.CubicSpline)
		got := table.Lookup(r)
		if exact != got {
			tst.Errorf("table sample %d mismatch: exact=%v got=%v", i, exact, got)
		}
		r += increment
	}
}
