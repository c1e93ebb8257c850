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

func Test_kinematics01(tst *testing.T) {

	chk.PrintTitle("kinematics01. sinusoidal wall: x(t) = amplitude·sin(2π·t/τ)")

	f := field.New(1)
	f.Kind[0] = field.Moving
	f.Law[0] = 0
	f.NMoving = 1

	p := &config.Parameter{
		MovingBoundaries: []config.MovingBoundary{
			{
				PosLaw:      config.PosSine,
				CharactTime: 1.0,
				Amplitude:   0.1,
				Direction:   [3]float64{1, 0, 0},
			},
		},
	}

	for _, t := range []float64{0.0, 0.137, 0.5, 0.73, 1.21} {
		x, _, _, _, _, _ := MovingKinematics(0, f, p, t)
		want := 0.1 * math.Sin(2*math.Pi*t/1.0)
		chk.AnaNum(tst, "x(t)", 1e-12, want, x, false)
	}
}

func Test_kinematics02(tst *testing.T) {

	chk.PrintTitle("kinematics02. constant-velocity ramp")

	f := field.New(1)
	f.Kind[0] = field.Moving
	f.NMoving = 1

	p := &config.Parameter{
		MovingBoundaries: []config.MovingBoundary{
			{PosLaw: config.PosConstant, Amplitude: 0.5, Direction: [3]float64{0, 1, 0}},
		},
	}

	x, y, z, vx, vy, vz := MovingKinematics(0, f, p, 2.0)
	if x != 0 || z != 0 {
		tst.Errorf("motion should be confined to y: x=%v z=%v", x, z)
	}
	chk.AnaNum(tst, "y(2)", 1e-12, 1.0, y, false)
	chk.AnaNum(tst, "vy", 1e-12, 0.5, vy, false)
	if vx != 0 || vz != 0 {
		tst.Errorf("velocity should be confined to y: vx=%v vz=%v", vx, vz)
	}
}

func Test_kinematics03(tst *testing.T) {

	chk.PrintTitle("kinematics03. rotation about z axis preserves distance to the rotation center")

	f := field.New(1)
	f.Kind[0] = field.Moving
	f.OriginX[0], f.OriginY[0], f.OriginZ[0] = 1.0, 0.0, 0.0
	f.NMoving = 1

	p := &config.Parameter{
		MovingBoundaries: []config.MovingBoundary{
			{
				PosLaw:         config.PosRotating,
				AngleLaw:       config.AngleLinear,
				CharactTime:    1.0,
				RotationCenter: [3]float64{0, 0, 0},
				EulerAngles:    [3]float64{0, 0, math.Pi / 2},
			},
		},
	}

	x, y, _, _, _, _ := MovingKinematics(0, f, p, 1.0)
	r := math.Hypot(x, y)
	chk.AnaNum(tst, "radius preserved", 1e-9, 1.0, r, false)
	chk.AnaNum(tst, "x(quarter turn)", 1e-9, 0.0, x, false)
	chk.AnaNum(tst, "y(quarter turn)", 1e-9, 1.0, y, false)
}
