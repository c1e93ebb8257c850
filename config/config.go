// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the scalar and enumerated simulation constants that
// are read once on rank 0 and replicated identically on every rank.
package config

// Kernel selects one of the six supported smoothing kernels.
type Kernel int

const (
	Gaussian Kernel = iota
	BellShaped
	CubicSpline
	Quadratic
	Quintic
	QuinticSpline
)

// ViscosityModel selects the artificial-viscosity law used by momentum().
type ViscosityModel int

const (
	VioleauArtificial ViscosityModel = iota
)

// IntegrationMethod selects the time integrator.
type IntegrationMethod int

const (
	Euler IntegrationMethod = iota
	RK2
)

// DensityInitMethod selects how free-particle density is initialised.
type DensityInitMethod int

const (
	Hydrostatic DensityInitMethod = iota
	Homogeneous
)

// StateEquation selects the equation of state.
type StateEquation int

const (
	QuasiIncompressible StateEquation = iota
	PerfectGas
)

// MassInitMethod selects how particle mass is assigned.
type MassInitMethod int

const (
	Violeau2012 MassInitMethod = iota
)

// PosLaw selects the translation law of a moving-boundary particle.
type PosLaw int

const (
	PosConstant PosLaw = iota
	PosSine
	PosExponential
	PosRotating
)

// AngleLaw selects the rotation law of a moving-boundary particle.
type AngleLaw int

const (
	AngleLinear AngleLaw = iota
	AngleSine
	AngleExponential
)

// MovingBoundary holds the per-law table entry described in spec §3.
type MovingBoundary struct {
	PosLaw         PosLaw
	AngleLaw       AngleLaw
	CharactTime    float64    // τ
	Amplitude      float64    // translation amplitude
	Direction      [3]float64 // unit direction vector for translation
	RotationCenter [3]float64
	EulerAngles    [3]float64 // θ table used by the angle law
}

// Parameter holds every scalar simulation constant, enumerated choice, and
// per-moving-boundary table. Built on rank 0 during initialisation and
// replicated, byte-identical, on every other rank; never mutated after
// initial broadcast.
type Parameter struct {
	// interaction & time
	Kh float64 // κ, interaction (smoothing) radius
	K  float64 // initial/base time step
	T  float64 // final simulation time

	// fluid properties
	DensityRef float64 // ρ₀
	B          float64 // Tait stiffness
	Gamma      float64 // Tait exponent γ
	G          float64 // gravity magnitude
	MolarMass  float64 // M, for perfect-gas EOS
	Temperature float64 // T, for perfect-gas EOS

	// output
	WriteInterval float64

	// artificial viscosity (Violeau)
	C       float64 // reference sound speed used by the viscosity term
	Alpha   float64
	Beta    float64
	Epsilon float64

	// XSPH
	EpsilonXSPH float64

	// RK2 blending weight
	Theta float64

	// enumerated choices
	KernelSelector    Kernel
	ViscosityModel    ViscosityModel
	IntegrationMethod IntegrationMethod
	Adaptive          bool
	DensityInit       DensityInitMethod
	StateEquation     StateEquation
	MassInit          MassInitMethod

	// moving-boundary laws, indexed by k in Moving(k)
	MovingBoundaries []MovingBoundary
}

// GasConstant is R in the perfect-gas equation of state (J/(mol·K)).
const GasConstant = 8.3144626
