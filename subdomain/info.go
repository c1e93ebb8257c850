// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package subdomain implements the 1-D x-axis MPI domain decomposition:
// partitioning, halo (overlap) exchange, particle migration, the RK2
// midpoint re-share, scatter/gather of the initial and output fields, and
// the collective error-abort discipline.
package subdomain

import (
	"github.com/cpmech/gosl/mpi"
)

// Info describes one rank's slice of the global x-extent: which boxes and
// particles it owns, plus the halo layout around them. Overlap never moves
// the owned range: it always appends freshly received halos onto the tail,
// so particles are laid out contiguously as [StartingParticle,
// EndingParticle] owned (StartingParticle pinned at 0), followed by
// rightHaloCount right-halo particles, followed by leftHaloCount left-halo
// particles.
type Info struct {
	Rank, NTasks int

	BoxSize float64

	StartingBox, EndingBox           int
	StartingParticle, EndingParticle int

	// startBoxX[i] is the first global box-column index owned by rank i;
	// startBoxX[NTasks] is the total box-column count. Kept to answer
	// "which rank owns this x position" during migration.
	startBoxX []int

	// rightHaloCount/leftHaloCount record how many halo particles Overlap
	// appended on each side, so ReshareMidpoint can find them again without
	// assuming a fixed offset.
	rightHaloCount, leftHaloCount int

	NBoxesY, NBoxesZ int

	L0 float64 // global lower x-bound, needed to convert startBoxX into coordinates
}

// HasLeft reports whether this rank has a left neighbor.
func (o *Info) HasLeft() bool { return o.Rank > 0 }

// HasRight reports whether this rank has a right neighbor.
func (o *Info) HasRight() bool { return o.Rank < o.NTasks-1 }

// New builds rank info from the current MPI environment. In a non-MPI
// (single-process) build, Rank=0 and NTasks=1 and every exchange in this
// package becomes a no-op, matching the original's "single processor"
// early-return branches throughout MPI.cpp.
func New() *Info {
	o := &Info{Rank: 0, NTasks: 1}
	if mpi.IsOn() {
		o.Rank = mpi.Rank()
		o.NTasks = mpi.Size()
	}
	return o
}

// Partition computes this rank's box and particle bounds for a domain of
// global extent [l,u] with cubic cells of side boxSize. It returns a
// ConsistencyError, unraised, when nTotalBoxesX < 2·NTasks; every rank
// computes the same verdict from the same inputs, and the caller (cmd/sph)
// exits on it before any step runs (S5).
func (o *Info) Partition(l, u [3]float64, boxSize float64) error {
	o.BoxSize = boxSize
	o.L0 = l[0]

	nTotalBoxesX := ceilDiv(u[0]-l[0], boxSize)
	if nTotalBoxesX < 2*o.NTasks {
		return &ConsistencyError{Msg: "nTotalBoxesX must be at least 2·nTasks"}
	}

	o.NBoxesY = ceilDiv(u[1]-l[1], boxSize)
	o.NBoxesZ = ceilDiv(u[2]-l[2], boxSize)

	o.startBoxX = make([]int, o.NTasks+1)
	for i := 0; i <= o.NTasks; i++ {
		// plain Go integer division matches the C++ int arithmetic exactly,
		// which is what makes results independent of nTasks (I6).
		o.startBoxX[i] = nTotalBoxesX * i / o.NTasks
	}

	perColumn := o.NBoxesY * o.NBoxesZ
	if o.Rank == 0 {
		o.StartingBox = 0
	} else {
		o.StartingBox = perColumn
	}
	o.EndingBox = o.StartingBox + (o.startBoxX[o.Rank+1]-o.startBoxX[o.Rank])*perColumn - 1
	return nil
}

// LocalBounds returns the x-extent [l0,u0] this rank's field array should
// carry, including the one-box halo on each side that has a neighbor.
func (o *Info) LocalBounds() (l0, u0 float64) {
	if o.Rank == 0 {
		l0 = o.L0
	} else {
		l0 = o.L0 + float64(o.startBoxX[o.Rank]-1)*o.BoxSize
	}
	if o.Rank == o.NTasks-1 {
		u0 = o.L0 + float64(o.startBoxX[o.Rank+1])*o.BoxSize
	} else {
		u0 = o.L0 + float64(o.startBoxX[o.Rank+1]+1)*o.BoxSize
	}
	return
}

func ceilDiv(span, boxSize float64) int {
	if span <= 0 {
		return 1
	}
	n := int(span / boxSize)
	if float64(n)*boxSize < span {
		n++
	}
	return n
}
