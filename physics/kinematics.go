// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/rboman/sph/config"
	"github.com/rboman/sph/field"
)

// MovingKinematics returns the position and velocity of particle i at time t,
// according to its moving-boundary law f.Law[i]. Position is measured from
// the particle's stored t=0 anchor (f.OriginX/Y/Z), never from its previous
// step, so successive calls at t and t+k are exact functions of time rather
// than accumulated increments.
func MovingKinematics(i int, f *field.Field, p *config.Parameter, t float64) (x, y, z, vx, vy, vz float64) {
	mb := p.MovingBoundaries[f.Law[i]]
	ox, oy, oz := f.OriginX[i], f.OriginY[i], f.OriginZ[i]

	switch mb.PosLaw {
	case config.PosConstant:
		return translate(ox, oy, oz, mb.Direction, mb.Amplitude*t, mb.Amplitude)

	case config.PosSine:
		omega := 2 * math.Pi / mb.CharactTime
		disp := mb.Amplitude * math.Sin(omega*t)
		speed := mb.Amplitude * omega * math.Cos(omega*t)
		return translate(ox, oy, oz, mb.Direction, disp, speed)

	case config.PosExponential:
		e := math.Exp(-t / mb.CharactTime)
		disp := mb.Amplitude * (1 - e)
		speed := mb.Amplitude * e / mb.CharactTime
		return translate(ox, oy, oz, mb.Direction, disp, speed)

	case config.PosRotating:
		return rotate(ox, oy, oz, t, mb)

	default:
		chk.Panic("physics: unknown moving position law %v", mb.PosLaw)
	}
	return
}

// translate displaces (ox,oy,oz) by disp along dir and returns the constant-
// direction velocity speed·dir alongside it.
func translate(ox, oy, oz float64, dir [3]float64, disp, speed float64) (x, y, z, vx, vy, vz float64) {
	x = ox + disp*dir[0]
	y = oy + disp*dir[1]
	z = oz + disp*dir[2]
	vx = speed * dir[0]
	vy = speed * dir[1]
	vz = speed * dir[2]
	return
}

// rotate applies the angle law to the stored Euler-angle tuple, rotates the
// anchor (ox,oy,oz) about mb.RotationCenter, and derives velocity from the
// rigid-body relation v = ω×r with ω the instantaneous angular-velocity
// vector (angle-law derivative times the Euler-angle tuple).
func rotate(ox, oy, oz float64, t float64, mb config.MovingBoundary) (x, y, z, vx, vy, vz float64) {
	scale, dScale := angleLaw(mb.AngleLaw, t, mb.CharactTime)

	ax := mb.EulerAngles[0] * scale
	ay := mb.EulerAngles[1] * scale
	az := mb.EulerAngles[2] * scale

	rx := ox - mb.RotationCenter[0]
	ry := oy - mb.RotationCenter[1]
	rz := oz - mb.RotationCenter[2]

	px, py, pz := rotateEuler(rx, ry, rz, ax, ay, az)
	x = mb.RotationCenter[0] + px
	y = mb.RotationCenter[1] + py
	z = mb.RotationCenter[2] + pz

	wx := mb.EulerAngles[0] * dScale
	wy := mb.EulerAngles[1] * dScale
	wz := mb.EulerAngles[2] * dScale
	vx = wy*pz - wz*py
	vy = wz*px - wx*pz
	vz = wx*py - wy*px
	return
}

// angleLaw returns the scale applied to the Euler-angle tuple at time t, and
// its time derivative, for the three supported angle laws.
func angleLaw(law config.AngleLaw, t, tau float64) (scale, dScale float64) {
	switch law {
	case config.AngleLinear:
		return t / tau, 1 / tau
	case config.AngleSine:
		omega := 2 * math.Pi / tau
		return math.Sin(omega * t), omega * math.Cos(omega*t)
	case config.AngleExponential:
		e := math.Exp(-t / tau)
		return 1 - e, e / tau
	default:
		chk.Panic("physics: unknown moving angle law %v", law)
	}
	return
}

// rotateEuler applies the intrinsic rotation Rz(az)·Ry(ay)·Rx(ax) to vector
// (x,y,z).
func rotateEuler(x, y, z, ax, ay, az float64) (px, py, pz float64) {
	// rotate about X
	cx, sx := math.Cos(ax), math.Sin(ax)
	y, z = cx*y-sx*z, sx*y+cx*z

	// rotate about Y
	cy, sy := math.Cos(ay), math.Sin(ay)
	x, z = cy*x+sy*z, -sy*x+cy*z

	// rotate about Z
	cz, sz := math.Cos(az), math.Sin(az)
	x, y = cz*x-sz*y, sz*x+cz*y

	return x, y, z
}
