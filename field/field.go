// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field implements the structure-of-arrays particle container
// shared by every rank.
package field

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Kind tags a particle as free, fixed, or moving under a configured law.
type Kind int

const (
	Free Kind = iota
	Fixed
	Moving
)

// Field is the structure-of-arrays particle container. All per-particle
// arrays have identical length equal to NTotal(); within a single rank,
// particles are laid out contiguously as [owned | right-halo | left-halo]
// after an overlap exchange: both halos are appended after the owned range,
// none is prepended, so the owned range always starts at index 0.
type Field struct {
	X, Y, Z    []float64 // position
	Vx, Vy, Vz []float64 // velocity
	Density    []float64
	Pressure   []float64
	Mass       []float64
	Volume     []float64 // per-particle seed volume, used once by physics.InitMass
	Kind       []Kind
	Law        []int // moving-law index k, meaningful only when Kind[i]==Moving

	// OriginX/Y/Z anchor the t=0 position of a moving particle; every
	// translation/rotation law displaces from this anchor rather than from
	// the previous step, so kinematics stay exact functions of time.
	OriginX, OriginY, OriginZ []float64

	NFree, NFixed, NMoving int // counts; NTotal() = sum

	L, U [3]float64 // axis-aligned subdomain bounds

	Time   float64 // current simulated time
	NextDt float64 // proposed next time step
}

// NTotal returns the total particle count, free+fixed+moving.
func (f *Field) NTotal() int {
	return f.NFree + f.NFixed + f.NMoving
}

// New allocates a Field with n particles, all arrays zeroed.
func New(n int) *Field {
	return &Field{
		X: make([]float64, n), Y: make([]float64, n), Z: make([]float64, n),
		Vx: make([]float64, n), Vy: make([]float64, n), Vz: make([]float64, n),
		Density:  make([]float64, n),
		Pressure: make([]float64, n),
		Mass:     make([]float64, n),
		Volume:   make([]float64, n),
		Kind:     make([]Kind, n),
		Law:      make([]int, n),
		OriginX:  make([]float64, n), OriginY: make([]float64, n), OriginZ: make([]float64, n),
	}
}

// CheckShape asserts invariant I1: every per-particle array has length
// exactly NTotal(). Contract violation, not a runtime condition.
func (f *Field) CheckShape() {
	n := f.NTotal()
	arrays := map[string]int{
		"X": len(f.X), "Y": len(f.Y), "Z": len(f.Z),
		"Vx": len(f.Vx), "Vy": len(f.Vy), "Vz": len(f.Vz),
		"Density": len(f.Density), "Pressure": len(f.Pressure), "Mass": len(f.Mass),
		"Volume": len(f.Volume),
		"Kind": len(f.Kind), "Law": len(f.Law),
		"OriginX": len(f.OriginX), "OriginY": len(f.OriginY), "OriginZ": len(f.OriginZ),
	}
	for name, got := range arrays {
		if got != n {
			chk.Panic("field: array %q has length %d, want %d (NTotal)", name, got, n)
		}
	}
}

// Resize grows or shrinks every per-particle array to length n, preserving
// existing contents up to min(oldLen,n). An array is reallocated only when
// its length changes; one that already has length n is kept as is.
func (f *Field) Resize(n int) {
	f.X = resizeF(f.X, n)
	f.Y = resizeF(f.Y, n)
	f.Z = resizeF(f.Z, n)
	f.Vx = resizeF(f.Vx, n)
	f.Vy = resizeF(f.Vy, n)
	f.Vz = resizeF(f.Vz, n)
	f.Density = resizeF(f.Density, n)
	f.Pressure = resizeF(f.Pressure, n)
	f.Mass = resizeF(f.Mass, n)
	f.Volume = resizeF(f.Volume, n)
	f.Kind = resizeK(f.Kind, n)
	f.Law = resizeI(f.Law, n)
	f.OriginX = resizeF(f.OriginX, n)
	f.OriginY = resizeF(f.OriginY, n)
	f.OriginZ = resizeF(f.OriginZ, n)
}

func resizeF(a []float64, n int) []float64 {
	if len(a) == n {
		return a
	}
	b := make([]float64, n)
	copy(b, a)
	return b
}

func resizeI(a []int, n int) []int {
	if len(a) == n {
		return a
	}
	b := make([]int, n)
	copy(b, a)
	return b
}

func resizeK(a []Kind, n int) []Kind {
	if len(a) == n {
		return a
	}
	b := make([]Kind, n)
	copy(b, a)
	return b
}

// Set copies particle src of field "from" into slot dst of f. Used by box
// sorting (size-preserving reorder) and by halo insertion (size-growing
// append/prepend, after Resize).
func (f *Field) Set(dst int, from *Field, src int) {
	f.X[dst], f.Y[dst], f.Z[dst] = from.X[src], from.Y[src], from.Z[src]
	f.Vx[dst], f.Vy[dst], f.Vz[dst] = from.Vx[src], from.Vy[src], from.Vz[src]
	f.Density[dst] = from.Density[src]
	f.Pressure[dst] = from.Pressure[src]
	f.Mass[dst] = from.Mass[src]
	f.Volume[dst] = from.Volume[src]
	f.Kind[dst] = from.Kind[src]
	f.Law[dst] = from.Law[src]
	f.OriginX[dst], f.OriginY[dst], f.OriginZ[dst] = from.OriginX[src], from.OriginY[src], from.OriginZ[src]
}

// CopyFrom overwrites f entirely with a copy of src's contents, resizing as
// needed. Used to build the RK2 mid-field from the current field.
func (f *Field) CopyFrom(src *Field) {
	n := src.NTotal()
	f.Resize(n)
	copy(f.X, src.X)
	copy(f.Y, src.Y)
	copy(f.Z, src.Z)
	copy(f.Vx, src.Vx)
	copy(f.Vy, src.Vy)
	copy(f.Vz, src.Vz)
	copy(f.Density, src.Density)
	copy(f.Pressure, src.Pressure)
	copy(f.Mass, src.Mass)
	copy(f.Volume, src.Volume)
	copy(f.Kind, src.Kind)
	copy(f.Law, src.Law)
	copy(f.OriginX, src.OriginX)
	copy(f.OriginY, src.OriginY)
	copy(f.OriginZ, src.OriginZ)
	f.L, f.U = src.L, src.U
	f.Time, f.NextDt = src.Time, src.NextDt
	f.NFree, f.NFixed, f.NMoving = src.NFree, src.NFixed, src.NMoving
}

// RecountKinds recomputes NFree/NFixed/NMoving from the Kind array. Called
// after migration, since halo insertion/removal changes particle counts.
func (f *Field) RecountKinds() {
	var nf, nx, nm int
	for _, k := range f.Kind {
		switch k {
		case Free:
			nf++
		case Fixed:
			nx++
		case Moving:
			nm++
		}
	}
	f.NFree, f.NFixed, f.NMoving = nf, nx, nm
}

// ZeroVec3 zeroes a flat 3·n derivative buffer in place using la.VecFill,
// matching the teacher's pattern of resetting reused scratch rather than
// reallocating it (gofem/fem/solver.go: la.VecFill(d.Fb, 0)).
func ZeroVec3(buf []float64) {
	la.VecFill(buf, 0)
}
