// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/rboman/sph/config"
	"github.com/rboman/sph/subdomain"
)

func writeTemp(tst *testing.T, content string) string {
	f, err := os.CreateTemp("", "sph-param-*.txt")
	if err != nil {
		tst.Fatalf("cannot create temp file: %v", err)
	}
	if _, err := f.WriteString(content); err != nil {
		tst.Fatalf("cannot write temp file: %v", err)
	}
	f.Close()
	return f.Name()
}

func Test_readparameter01(tst *testing.T) {

	chk.PrintTitle("readparameter01. scalar and enumerated keys parse into Parameter")

	path := writeTemp(tst, `
kh 0.05
k 1e-4
T 1.0
densityRef 1000
B 1e5
gamma 7
g 9.81
writeInterval 0.01
kernel Cubic_spline
integrationMethod RK2
adaptativeTimeStep yes
densityInitMethod hydrostatic
stateEquationMethod quasiIncompressible
massInitMethod violeau2012
theta 0.5
`)
	defer os.Remove(path)

	p, err := ReadParameter(path)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.AnaNum(tst, "kh", 1e-15, 0.05, p.Kh, false)
	chk.AnaNum(tst, "T", 1e-15, 1.0, p.T, false)
	if p.KernelSelector != config.CubicSpline {
		tst.Errorf("expected CubicSpline, got %v", p.KernelSelector)
	}
	if p.IntegrationMethod != config.RK2 {
		tst.Errorf("expected RK2, got %v", p.IntegrationMethod)
	}
	if !p.Adaptive {
		tst.Errorf("expected Adaptive=true")
	}
	if p.DensityInit != config.Hydrostatic {
		tst.Errorf("expected Hydrostatic, got %v", p.DensityInit)
	}
}

func Test_readparameter02(tst *testing.T) {

	chk.PrintTitle("readparameter02. moving-boundary table: posLaw opens a new law entry")

	path := writeTemp(tst, `
posLaw sine
charactTime 1.0
amplitude 0.1
direction 1 0 0
posLaw rotating
rotationCenter 0 0 1
teta 0 0 1.5708
`)
	defer os.Remove(path)

	p, err := ReadParameter(path)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(p.MovingBoundaries) != 2 {
		tst.Fatalf("expected 2 moving-boundary laws, got %d", len(p.MovingBoundaries))
	}
	if p.MovingBoundaries[0].PosLaw != config.PosSine {
		tst.Errorf("law 0 should be PosSine, got %v", p.MovingBoundaries[0].PosLaw)
	}
	chk.AnaNum(tst, "law0 amplitude", 1e-15, 0.1, p.MovingBoundaries[0].Amplitude, false)
	if p.MovingBoundaries[1].PosLaw != config.PosRotating {
		tst.Errorf("law 1 should be PosRotating, got %v", p.MovingBoundaries[1].PosLaw)
	}
	chk.AnaNum(tst, "law1 rotationCenter.z", 1e-15, 1, p.MovingBoundaries[1].RotationCenter[2], false)
}

func Test_readparameter03(tst *testing.T) {

	chk.PrintTitle("readparameter03. unknown kernel value is a ParameterError")

	path := writeTemp(tst, "kernel not_a_kernel\n")
	defer os.Remove(path)

	_, err := ReadParameter(path)
	if err == nil {
		tst.Fatalf("expected a ParameterError, got nil")
	}
	if _, ok := err.(*subdomain.ParameterError); !ok {
		tst.Errorf("expected *subdomain.ParameterError, got %T", err)
	}
}

func Test_readparameter04(tst *testing.T) {

	chk.PrintTitle("readparameter04. missing file is an ArgumentError")

	_, err := ReadParameter("/nonexistent/path/to/nothing.txt")
	if _, ok := err.(*subdomain.ArgumentError); !ok {
		tst.Errorf("expected *subdomain.ArgumentError, got %T (%v)", err, err)
	}
}
