// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subdomain

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/rboman/sph/config"
	"github.com/rboman/sph/field"
)

func Test_scattergather01(tst *testing.T) {

	chk.PrintTitle("scattergather01. single rank: Scatter/Gather are identity")

	o := &Info{Rank: 0, NTasks: 1}
	whole := field.New(4)
	whole.NFree = 4

	local := o.Scatter(whole)
	if local.NTotal() != 4 {
		tst.Errorf("expected 4 particles after Scatter, got %d", local.NTotal())
	}

	back := o.Gather(local)
	if back.NTotal() != 4 {
		tst.Errorf("expected 4 particles after Gather, got %d", back.NTotal())
	}
}

func Test_movingboundaryencode01(tst *testing.T) {

	chk.PrintTitle("movingboundaryencode01. encode/decodeMovingBoundaries round-trips the law table")

	laws := []config.MovingBoundary{
		{PosLaw: config.PosSine, AngleLaw: config.AngleLinear, CharactTime: 2, Amplitude: 0.1,
			Direction: [3]float64{1, 0, 0}, RotationCenter: [3]float64{0, 0, 0}, EulerAngles: [3]float64{0, 0, 0}},
		{PosLaw: config.PosRotating, AngleLaw: config.AngleSine, CharactTime: 4, Amplitude: 0,
			Direction: [3]float64{0, 0, 0}, RotationCenter: [3]float64{1, 2, 3}, EulerAngles: [3]float64{0, 0, 1.5708}},
	}

	buf := encodeMovingBoundaries(laws)
	const stride = 14
	got := decodeMovingBoundaries(buf, stride)

	if len(got) != 2 {
		tst.Fatalf("expected 2 laws back, got %d", len(got))
	}
	if got[0].PosLaw != config.PosSine || got[1].PosLaw != config.PosRotating {
		tst.Errorf("PosLaw not preserved: got %v, %v", got[0].PosLaw, got[1].PosLaw)
	}
	if got[1].AngleLaw != config.AngleSine {
		tst.Errorf("AngleLaw not preserved: got %v", got[1].AngleLaw)
	}
	chk.AnaNum(tst, "RotationCenter.z", 1e-15, 3, got[1].RotationCenter[2], false)
	chk.AnaNum(tst, "EulerAngles.z", 1e-12, 1.5708, got[1].EulerAngles[2], false)
}

func Test_exitcode01(tst *testing.T) {

	chk.PrintTitle("exitcode01. ExitCode maps each taxonomy member to a distinct nonzero code")

	codes := map[int]bool{}
	errs := []error{
		nil,
		&ArgumentError{Msg: "x"},
		&ParameterError{Msg: "x"},
		&GeometryError{Msg: "x"},
		&ConsistencyError{Msg: "x"},
		&RuntimeDivergenceError{Msg: "x"},
	}
	for _, err := range errs {
		c := ExitCode(err)
		if err == nil {
			if c != 0 {
				tst.Errorf("ExitCode(nil) = %d, want 0", c)
			}
			continue
		}
		if c == 0 {
			tst.Errorf("ExitCode(%T) = 0, want nonzero", err)
		}
		if codes[c] {
			tst.Errorf("exit code %d reused across two error kinds", c)
		}
		codes[c] = true
	}
}
