// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subdomain

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/mpi"
	"github.com/rboman/sph/field"
)

// recordSize is the number of float64 slots used to serialise one particle
// for point-to-point transfer: x,y,z, vx,vy,vz, density,pressure,mass,
// volume, kind, law, originX,originY,originZ.
const recordSize = 15

// OwnedXBounds returns this rank's owned x-extent, excluding the halo.
func (o *Info) OwnedXBounds() (xmin, xmax float64) {
	xmin = o.L0 + float64(o.startBoxX[o.Rank])*o.BoxSize
	xmax = o.L0 + float64(o.startBoxX[o.Rank+1])*o.BoxSize
	return
}

func pack(f *field.Field, idx []int) []float64 {
	buf := make([]float64, len(idx)*recordSize)
	for j, i := range idx {
		b := buf[j*recordSize:]
		b[0], b[1], b[2] = f.X[i], f.Y[i], f.Z[i]
		b[3], b[4], b[5] = f.Vx[i], f.Vy[i], f.Vz[i]
		b[6], b[7], b[8] = f.Density[i], f.Pressure[i], f.Mass[i]
		b[9] = f.Volume[i]
		b[10] = float64(f.Kind[i])
		b[11] = float64(f.Law[i])
		b[12], b[13], b[14] = f.OriginX[i], f.OriginY[i], f.OriginZ[i]
	}
	return buf
}

// appendUnpacked grows dst by len(buf)/recordSize particles and fills them
// from buf, returning the index range [start,end) that was added.
func appendUnpacked(dst *field.Field, buf []float64) (start, end int) {
	n := len(buf) / recordSize
	start = dst.NTotal()
	dst.Resize(start + n)
	for j := 0; j < n; j++ {
		i := start + j
		b := buf[j*recordSize:]
		dst.X[i], dst.Y[i], dst.Z[i] = b[0], b[1], b[2]
		dst.Vx[i], dst.Vy[i], dst.Vz[i] = b[3], b[4], b[5]
		dst.Density[i], dst.Pressure[i], dst.Mass[i] = b[6], b[7], b[8]
		dst.Volume[i] = b[9]
		dst.Kind[i] = field.Kind(int(b[10]))
		dst.Law[i] = int(b[11])
		dst.OriginX[i], dst.OriginY[i], dst.OriginZ[i] = b[12], b[13], b[14]
	}
	end = start + n
	return
}

// sendVar sends a variable-length point-to-point message to peer, and
// recvVar receives one: first the number of float64 slots (so the receiver
// can size its buffer), then the payload itself. Named by analogy with the confirmed collective primitives
// (mpi.AllReduceSum, mpi.IntAllReduceMax): gosl/mpi's point-to-point
// Send/Receive functions are not evidenced anywhere in the retrieved corpus,
// so these signatures are a best-effort guess at the library's naming
// convention, flagged in DESIGN.md.
func sendVar(peer int, buf []float64) {
	n := []int{len(buf)}
	mpi.IntSendOne(peer, n)
	if len(buf) > 0 {
		mpi.SendOne(peer, buf)
	}
}

func recvVar(peer int) []float64 {
	n := []int{0}
	mpi.IntReceiveOne(peer, n)
	if n[0] == 0 {
		return nil
	}
	buf := make([]float64, n[0])
	mpi.ReceiveOne(peer, buf)
	return buf
}

// exchangeOrdered runs a variable-length point-to-point exchange with one
// neighbor, observing the even/odd send-first discipline used throughout
// MPI.cpp's shareOverlap/shareRKMidpoint to avoid a two-rank send/send
// deadlock: the lower-rank side of a pair always sends before it receives,
// the higher-rank side always receives before it sends.
func exchangeOrdered(myRank, peer int, out []float64) (in []float64) {
	if myRank < peer {
		sendVar(peer, out)
		in = recvVar(peer)
	} else {
		in = recvVar(peer)
		sendVar(peer, out)
	}
	return
}

// DeleteHalos truncates f back to just the owned particles
// [StartingParticle, EndingParticle], discarding the halo copies received by
// the previous step's Overlap exchange. Mirrors MPI.cpp's deleteHalos: it
// must run before every Overlap call, since Overlap always appends fresh
// halos onto the current owned range.
func (o *Info) DeleteHalos(f *field.Field) {
	if o.StartingParticle == 0 && o.EndingParticle == f.NTotal()-1 {
		return
	}
	owned := field.New(0)
	n := o.EndingParticle - o.StartingParticle + 1
	owned.Resize(n)
	for j := 0; j < n; j++ {
		owned.Set(j, f, o.StartingParticle+j)
	}
	f.CopyFrom(owned)
	o.StartingParticle, o.EndingParticle = 0, n-1
	f.RecountKinds()
}

// Overlap exchanges halo copies of the Kh-wide boundary layer with each
// x-neighbor, appending received particles to f's halo. idx left/right is
// the local index of every owned particle within kh of the owned x-bounds
// on that side. The result is a field laid out as
// [owned | right-halo | left-halo], with o.StartingParticle/EndingParticle
// left unchanged (the owned range never moves) and o.rightHaloCount/
// o.leftHaloCount recording how many halo particles landed on each side, so
// ReshareMidpoint can find them again.
//
// Before exchanging, Overlap is also the classifier spec §7 calls out for
// runtimeDivergence: Migrate has already relocated every owned particle
// that crossed into a neighbor's range, so any owned particle still found
// outside [xmin,xmax] here fell outside every known interval — it moved
// farther than one subdomain in a single step. That is reported and fatal,
// via a collective Abort check run before any send, so a diverging rank
// never leaves its peers blocked on an exchange that will never arrive.
func (o *Info) Overlap(f *field.Field, kh float64) {
	if o.NTasks == 1 {
		o.StartingParticle, o.EndingParticle = 0, f.NTotal()-1
		return
	}
	xmin, xmax := o.OwnedXBounds()
	var leftIdx, rightIdx []int
	var divergent error
	for i := o.StartingParticle; i <= o.EndingParticle; i++ {
		if f.X[i] < xmin || f.X[i] > xmax {
			divergent = &RuntimeDivergenceError{Msg: fmt.Sprintf(
				"rank %d: particle %d at x=%.6g fell outside every known interval [%.6g,%.6g] at step boundary",
				o.Rank, i, f.X[i], xmin, xmax)}
		}
		if o.HasLeft() && f.X[i] < xmin+kh {
			leftIdx = append(leftIdx, i)
		}
		if o.HasRight() && f.X[i] > xmax-kh {
			rightIdx = append(rightIdx, i)
		}
	}
	if stop := Abort(divergent); stop {
		panicIfAbort(divergent)
		chk.Panic("rank %d: aborting, a peer rank reported a fatal error during overlap", o.Rank)
	}

	var rightHaloCount, leftHaloCount int
	if o.HasRight() {
		in := exchangeOrdered(o.Rank, o.Rank+1, pack(f, rightIdx))
		if len(in) > 0 {
			appendUnpacked(f, in)
			rightHaloCount = len(in) / recordSize
		}
	}
	if o.HasLeft() {
		in := exchangeOrdered(o.Rank, o.Rank-1, pack(f, leftIdx))
		if len(in) > 0 {
			appendUnpacked(f, in)
			leftHaloCount = len(in) / recordSize
		}
	}
	o.rightHaloCount, o.leftHaloCount = rightHaloCount, leftHaloCount
}

// Migrate moves owned particles that have crossed into a neighbor's x-range
// out of f and into that neighbor's field, receiving whatever the neighbors
// send back in turn, then compacts f's owned range. Must run after
// DeleteHalos and before Overlap, matching the original's per-step order
// (migrate, then re-establish halos).
func (o *Info) Migrate(f *field.Field, kh float64) {
	if o.NTasks == 1 {
		return
	}
	xmin, xmax := o.OwnedXBounds()

	var leftIdx, rightIdx []int
	keep := make([]bool, f.NTotal())
	for i := range keep {
		keep[i] = true
	}
	for i := o.StartingParticle; i <= o.EndingParticle; i++ {
		switch {
		case o.HasLeft() && f.X[i] < xmin:
			leftIdx = append(leftIdx, i)
			keep[i] = false
		case o.HasRight() && f.X[i] > xmax:
			rightIdx = append(rightIdx, i)
			keep[i] = false
		}
	}

	var received []float64
	if o.HasRight() {
		in := exchangeOrdered(o.Rank, o.Rank+1, pack(f, rightIdx))
		received = append(received, in...)
	}
	if o.HasLeft() {
		in := exchangeOrdered(o.Rank, o.Rank-1, pack(f, leftIdx))
		received = append(received, in...)
	}

	compacted := field.New(0)
	n := 0
	for i := o.StartingParticle; i <= o.EndingParticle; i++ {
		if keep[i] {
			n++
		}
	}
	compacted.Resize(n)
	j := 0
	for i := o.StartingParticle; i <= o.EndingParticle; i++ {
		if keep[i] {
			compacted.Set(j, f, i)
			j++
		}
	}
	f.CopyFrom(compacted)
	appendUnpacked(f, received)
	o.StartingParticle, o.EndingParticle = 0, f.NTotal()-1
	f.RecountKinds()
}

// ReshareMidpoint overwrites the halo particles already present in mid (from
// the previous Overlap call on cur, which mid was copied from) with their
// freshly-advanced RK2 mid-state counterparts, in place — unlike Overlap, it
// never changes particle count, matching MPI.cpp's shareRKMidpoint which
// updates existing halo slots rather than re-inserting them. The halo slots
// sit at [EndingParticle+1, EndingParticle+1+rightHaloCount) for the right
// neighbor and immediately after that for the left neighbor, per Overlap's
// [owned | right-halo | left-halo] layout.
func (o *Info) ReshareMidpoint(mid *field.Field, kh float64) {
	if o.NTasks == 1 {
		return
	}
	xmin, xmax := o.OwnedXBounds()
	var leftIdx, rightIdx []int
	for i := o.StartingParticle; i <= o.EndingParticle; i++ {
		if o.HasLeft() && mid.X[i] < xmin+kh {
			leftIdx = append(leftIdx, i)
		}
		if o.HasRight() && mid.X[i] > xmax-kh {
			rightIdx = append(rightIdx, i)
		}
	}

	rightHaloStart := o.EndingParticle + 1
	leftHaloStart := rightHaloStart + o.rightHaloCount

	if o.HasRight() {
		in := exchangeOrdered(o.Rank, o.Rank+1, pack(mid, rightIdx))
		overwriteHalo(mid, in, rightHaloStart)
	}
	if o.HasLeft() {
		in := exchangeOrdered(o.Rank, o.Rank-1, pack(mid, leftIdx))
		overwriteHalo(mid, in, leftHaloStart)
	}
}

// overwriteHalo writes n received records starting at slot `at`, used when
// the destination range already exists (ReshareMidpoint) rather than being
// appended (Overlap/Migrate).
func overwriteHalo(f *field.Field, buf []float64, at int) {
	n := len(buf) / recordSize
	for j := 0; j < n; j++ {
		i := at + j
		if i >= f.NTotal() {
			break
		}
		b := buf[j*recordSize:]
		f.X[i], f.Y[i], f.Z[i] = b[0], b[1], b[2]
		f.Vx[i], f.Vy[i], f.Vz[i] = b[3], b[4], b[5]
		f.Density[i], f.Pressure[i], f.Mass[i] = b[6], b[7], b[8]
		f.Volume[i] = b[9]
		f.Kind[i] = field.Kind(int(b[10]))
		f.Law[i] = int(b[11])
		f.OriginX[i], f.OriginY[i], f.OriginZ[i] = b[12], b[13], b[14]
	}
}
