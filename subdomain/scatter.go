// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subdomain

import (
	"github.com/cpmech/gosl/mpi"
	"github.com/rboman/sph/config"
	"github.com/rboman/sph/field"
)

// Scatter is called on every rank after rank 0 has read the full geometry
// into whole. On rank 0, whole holds every particle; on every other rank it
// is nil. Scatter classifies whole's particles by owned x-range per rank
// (mirroring MPI.cpp's scatterField), sends each rank its slice, and returns
// this rank's local field with StartingParticle/EndingParticle set to the
// full local range (no halo yet — the first Overlap call establishes it).
func (o *Info) Scatter(whole *field.Field) *field.Field {
	if o.NTasks == 1 {
		o.StartingParticle, o.EndingParticle = 0, whole.NTotal()-1
		return whole
	}

	if o.Rank == 0 {
		bounds := make([][2]float64, o.NTasks)
		for r := 0; r < o.NTasks; r++ {
			bounds[r][0] = o.L0 + float64(o.startBoxX[r])*o.BoxSize
			bounds[r][1] = o.L0 + float64(o.startBoxX[r+1])*o.BoxSize
		}
		buckets := make([][]int, o.NTasks)
		for i := 0; i < whole.NTotal(); i++ {
			r := rankOf(whole.X[i], bounds)
			buckets[r] = append(buckets[r], i)
		}
		for r := 1; r < o.NTasks; r++ {
			sendVar(r, pack(whole, buckets[r]))
		}
		local := field.New(0)
		n := len(buckets[0])
		local.Resize(n)
		for j, i := range buckets[0] {
			local.Set(j, whole, i)
		}
		local.RecountKinds()
		o.StartingParticle, o.EndingParticle = 0, n-1
		return local
	}

	buf := recvVar(0)
	local := field.New(0)
	appendUnpacked(local, buf)
	local.RecountKinds()
	o.StartingParticle, o.EndingParticle = 0, local.NTotal()-1
	return local
}

func rankOf(x float64, bounds [][2]float64) int {
	for r, b := range bounds {
		if x >= b[0] && (x < b[1] || r == len(bounds)-1) {
			return r
		}
	}
	return len(bounds) - 1
}

// Gather is the inverse of Scatter: every non-zero rank sends its owned
// particles (excluding halo) to rank 0, which appends them to its own owned
// range and returns the assembled whole field. On every other rank, Gather
// returns nil. Used once per WriteInterval (spec §4.7) and is deliberately
// not on the hot path of every step.
func (o *Info) Gather(f *field.Field) *field.Field {
	if o.NTasks == 1 {
		return f
	}

	owned := ownedIndices(o)
	if o.Rank != 0 {
		sendVar(0, pack(f, owned))
		return nil
	}

	whole := field.New(0)
	n := len(owned)
	whole.Resize(n)
	for j, i := range owned {
		whole.Set(j, f, i)
	}
	for r := 1; r < o.NTasks; r++ {
		buf := recvVar(r)
		appendUnpacked(whole, buf)
	}
	whole.RecountKinds()
	return whole
}

func ownedIndices(o *Info) []int {
	idx := make([]int, o.EndingParticle-o.StartingParticle+1)
	for j := range idx {
		idx[j] = o.StartingParticle + j
	}
	return idx
}

// BroadcastMovingBoundaries sends rank 0's parsed MovingBoundary table to
// every other rank, so that movingKinematics evaluates the same law
// parameters everywhere regardless of which rank owns a given moving
// particle at any point in the run.
func (o *Info) BroadcastMovingBoundaries(p *config.Parameter) {
	if o.NTasks == 1 {
		return
	}
	const fieldsPerLaw = 1 + 1 + 1 + 1 + 1 + 3 + 3 + 3 // PosLaw,AngleLaw,CharactTime,Amplitude,_pad,Direction,RotationCenter,EulerAngles

	if o.Rank == 0 {
		buf := encodeMovingBoundaries(p.MovingBoundaries)
		for r := 1; r < o.NTasks; r++ {
			sendVar(r, buf)
		}
		return
	}
	buf := recvVar(0)
	p.MovingBoundaries = decodeMovingBoundaries(buf, fieldsPerLaw)
}

func encodeMovingBoundaries(laws []config.MovingBoundary) []float64 {
	var buf []float64
	for _, mb := range laws {
		buf = append(buf,
			float64(mb.PosLaw), float64(mb.AngleLaw), mb.CharactTime, mb.Amplitude, 0,
			mb.Direction[0], mb.Direction[1], mb.Direction[2],
			mb.RotationCenter[0], mb.RotationCenter[1], mb.RotationCenter[2],
			mb.EulerAngles[0], mb.EulerAngles[1], mb.EulerAngles[2],
		)
	}
	return buf
}

func decodeMovingBoundaries(buf []float64, stride int) []config.MovingBoundary {
	n := len(buf) / stride
	laws := make([]config.MovingBoundary, n)
	for i := 0; i < n; i++ {
		b := buf[i*stride:]
		laws[i] = config.MovingBoundary{
			PosLaw:         config.PosLaw(int(b[0])),
			AngleLaw:       config.AngleLaw(int(b[1])),
			CharactTime:    b[2],
			Amplitude:      b[3],
			Direction:      [3]float64{b[5], b[6], b[7]},
			RotationCenter: [3]float64{b[8], b[9], b[10]},
			EulerAngles:    [3]float64{b[11], b[12], b[13]},
		}
	}
	return laws
}

// ReduceMinDt combines this rank's locally proposed time step with every
// other rank's proposal by a collective minimum, then returns the common
// value every rank must use for the next step. The original C++
// timeStepUpdate takes std::min_element over
// allPropositions[0 .. nTasks-2], silently excluding the last rank from the
// reduction; this folds every rank in, fixing that off-by-one.
func ReduceMinDt(local float64) float64 {
	if !mpi.IsOn() || mpi.Size() == 1 {
		return local
	}
	send := []float64{local}
	recv := []float64{0}
	mpi.AllReduceMin(send, recv)
	return recv[0]
}
