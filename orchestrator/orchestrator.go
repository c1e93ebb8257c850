// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orchestrator drives the main time loop: one Main per rank, built
// once from a Parameter and an initial Field, repeatedly advancing the
// local field through the shared derivative/integrate/exchange sequence
// until the final simulation time is reached.
package orchestrator

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/rboman/sph/boxindex"
	"github.com/rboman/sph/config"
	"github.com/rboman/sph/field"
	"github.com/rboman/sph/integrator"
	"github.com/rboman/sph/physics"
	"github.com/rboman/sph/subdomain"
)

// Diagnostics is rank-local bookkeeping surfaced after every step: no
// hidden global clock is kept anywhere else (spec §9).
type Diagnostics struct {
	Step     int
	Time     float64
	Dt       float64
	StepWall time.Duration
}

// Main holds everything one rank needs to run the time loop: its slice of
// parameter state, its subdomain partition, and the two (Euler) or three
// (RK2) field buffers the integrator reads and writes each step.
type Main struct {
	Param *config.Parameter
	Info  *subdomain.Info

	cur, next, mid *field.Field
	grid            *boxindex.Grid

	curD, midD *integrator.Derivatives

	ShowMsg bool

	Diag Diagnostics

	nextWrite float64
	OnWrite   func(step int, t float64, whole *field.Field)
}

// NewMain builds a Main for this rank from a fully-initialised local field
// (already scattered and density/pressure/mass-initialised) and the
// subdomain partition describing this rank's slice of the global box grid.
func NewMain(p *config.Parameter, info *subdomain.Info, local *field.Field) *Main {
	o := &Main{Param: p, Info: info}
	o.cur = local
	o.next = field.New(0)
	o.next.CopyFrom(o.cur)
	if p.IntegrationMethod == config.RK2 {
		o.mid = field.New(0)
		o.mid.CopyFrom(o.cur)
	}

	boxSize := boxindex.Size(p.Kh, p.IntegrationMethod)
	l0, u0 := info.LocalBounds()
	l := [3]float64{l0, o.cur.L[1], o.cur.L[2]}
	u := [3]float64{u0, o.cur.U[1], o.cur.U[2]}
	o.grid = boxindex.New(l, u, boxSize)

	o.curD = integrator.NewDerivatives(o.cur.NTotal())
	if p.IntegrationMethod == config.RK2 {
		o.midD = integrator.NewDerivatives(o.cur.NTotal())
	}

	o.ShowMsg = info.Rank == 0
	o.nextWrite = p.WriteInterval
	return o
}

// Run advances the simulation from t=0 to p.T, one step at a time,
// following spec §4.7's sequence from the already-built field: write step 0, then
// per step: derive, propose & reduce Δt, integrate, swap, delete stale
// halos, migrate crossed particles, re-establish halos, recount kinds, and
// — on a WriteInterval boundary — gather and hand the assembled field to
// OnWrite.
func (o *Main) Run() error {
	t := o.cur.Time
	k := o.Param.K

	if whole := o.Info.Gather(o.cur); whole != nil && o.OnWrite != nil {
		o.OnWrite(0, t, whole)
	}

	for t < o.Param.T {
		stepStart := time.Now()

		o.grid.Sort(o.cur)
		integrator.Compute(o.cur, o.grid, o.Param, o.Param.C, 0, o.grid.NBoxes()-1, o.curD)

		if o.Param.Adaptive {
			local := integrator.ProposeDt(o.cur, o.curD, o.Param, o.Info.StartingParticle, o.Info.EndingParticle, k)
			k = subdomain.ReduceMinDt(local)
		}
		if t+k > o.Param.T {
			k = o.Param.T - t
		}

		switch o.Param.IntegrationMethod {
		case config.Euler:
			o.next.CopyFrom(o.cur)
			integrator.Euler(o.cur, o.next, o.Param, o.curD, t, k, o.Info.StartingParticle, o.Info.EndingParticle)

		case config.RK2:
			o.mid.CopyFrom(o.cur)
			integrator.RK2MidStep(o.cur, o.mid, o.Param, o.curD, t, k, o.Info.StartingParticle, o.Info.EndingParticle)
			o.Info.ReshareMidpoint(o.mid, o.Param.Kh)

			o.grid.Sort(o.mid)
			integrator.Compute(o.mid, o.grid, o.Param, o.Param.C, 0, o.grid.NBoxes()-1, o.midD)

			o.next.CopyFrom(o.cur)
			integrator.RK2Update(o.cur, o.mid, o.next, o.Param, o.curD, o.midD, t, k, o.Info.StartingParticle, o.Info.EndingParticle)

		default:
			chk.Panic("orchestrator: unknown integration method %v", o.Param.IntegrationMethod)
		}

		o.cur, o.next = o.next, o.cur
		o.cur.Time = t + k

		o.Info.DeleteHalos(o.cur)
		o.Info.Migrate(o.cur, o.Param.Kh)
		o.Info.Overlap(o.cur, o.Param.Kh)
		o.cur.RecountKinds()

		t = o.cur.Time
		o.Diag.Step++
		o.Diag.Time = t
		o.Diag.Dt = k
		o.Diag.StepWall = time.Since(stepStart)

		if o.ShowMsg {
			io.Pf("> step %4d  t=%12.6f  dt=%10.6f  wall=%v\n", o.Diag.Step, t, k, o.Diag.StepWall)
		}

		if t+1e-12 >= o.nextWrite {
			whole := o.Info.Gather(o.cur)
			if whole != nil && o.OnWrite != nil {
				o.OnWrite(o.Diag.Step, t, whole)
			}
			o.nextWrite += o.Param.WriteInterval
		}
	}
	return nil
}

// InitializeField fills density, pressure and mass for a freshly scattered
// field per the configured DensityInit/MassInit laws, then assigns every
// moving particle its t=0 origin anchor — the one-time setup the C++
// original performs before the first time step (Init.cpp's
// densityInit/pressureComputation/massInit, plus the origin bookkeeping
// movingKinematics depends on).
func InitializeField(f *field.Field, p *config.Parameter) {
	physics.InitDensity(f, p)
	physics.InitPressure(f, p)
	physics.InitMass(f, p)
	for i := range f.Kind {
		if f.Kind[i] == field.Moving {
			f.OriginX[i], f.OriginY[i], f.OriginZ[i] = f.X[i], f.Y[i], f.Z[i]
		}
	}
}
