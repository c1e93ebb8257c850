// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package boxindex implements the uniform-grid spatial hash used to
// accelerate neighbor search: BoxSize selection, box construction, the
// 27-box adjacency stencil (clipped at borders), and particle sorting.
package boxindex

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/rboman/sph/config"
	"github.com/rboman/sph/field"
)

// Size returns the cube side used to tile the local subdomain: κ for Euler,
// 2κ for RK2 (so that one sort per step suffices across the mid-point
// re-derivative pass).
func Size(kh float64, method config.IntegrationMethod) float64 {
	if method == config.RK2 {
		return 2 * kh
	}
	return kh
}

// Grid is a uniform 3-D grid of cubic cells of side BoxSize covering
// [L,U]. For each cell it pre-computes its ≤27 adjacent cell IDs (itself
// included); borders are clipped, never wrapped.
type Grid struct {
	L, U           [3]float64
	BoxSize        float64
	NX, NY, NZ     int
	Adjacency      [][]int     // [cellID] -> neighbor cell IDs, including itself
	boxes          [][]int     // [cellID] -> particle indices currently in that box
}

// New constructs a Grid covering [l,u] with cubic cells of side boxSize
// (ceiling division along each axis).
func New(l, u [3]float64, boxSize float64) *Grid {
	g := &Grid{L: l, U: u, BoxSize: boxSize}
	g.NX = ceilDiv(u[0]-l[0], boxSize)
	g.NY = ceilDiv(u[1]-l[1], boxSize)
	g.NZ = ceilDiv(u[2]-l[2], boxSize)
	if g.NX < 1 {
		g.NX = 1
	}
	if g.NY < 1 {
		g.NY = 1
	}
	if g.NZ < 1 {
		g.NZ = 1
	}
	n := g.NX * g.NY * g.NZ
	g.Adjacency = make([][]int, n)
	g.boxes = make([][]int, n)
	for cx := 0; cx < g.NX; cx++ {
		for cy := 0; cy < g.NY; cy++ {
			for cz := 0; cz < g.NZ; cz++ {
				id := g.cellID(cx, cy, cz)
				g.Adjacency[id] = g.stencil(cx, cy, cz)
			}
		}
	}
	return g
}

func ceilDiv(span, boxSize float64) int {
	if span <= 0 {
		return 1
	}
	return int(math.Ceil(span / boxSize))
}

func (g *Grid) cellID(cx, cy, cz int) int {
	return (cx*g.NY+cy)*g.NZ + cz
}

// stencil enumerates the ≤27 neighbor cell IDs of (cx,cy,cz), clipped at
// the local borders (no wraparound).
func (g *Grid) stencil(cx, cy, cz int) []int {
	var out []int
	for dx := -1; dx <= 1; dx++ {
		nx := cx + dx
		if nx < 0 || nx >= g.NX {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			ny := cy + dy
			if ny < 0 || ny >= g.NY {
				continue
			}
			for dz := -1; dz <= 1; dz++ {
				nz := cz + dz
				if nz < 0 || nz >= g.NZ {
					continue
				}
				out = append(out, g.cellID(nx, ny, nz))
			}
		}
	}
	return out
}

// BoxOf returns the cell ID owning position (x,y,z), by flooring
// (pos-L)/BoxSize along each axis. Positions outside [L,U] are clamped into
// the boundary cell — an edge case that occurs transiently for halo
// particles exchanged from a neighbor with slightly different arithmetic.
func (g *Grid) BoxOf(x, y, z float64) int {
	cx := g.axisIndex(x, g.L[0], g.NX)
	cy := g.axisIndex(y, g.L[1], g.NY)
	cz := g.axisIndex(z, g.L[2], g.NZ)
	return g.cellID(cx, cy, cz)
}

func (g *Grid) axisIndex(pos, l0 float64, n int) int {
	idx := int(math.Floor((pos - l0) / g.BoxSize))
	if idx < 0 {
		idx = 0
	}
	if idx > n-1 {
		idx = n - 1
	}
	return idx
}

// Neighbors returns the particle indices currently assigned to cell id.
func (g *Grid) Neighbors(id int) []int {
	return g.boxes[id]
}

// Sort rewrites the owning box lists so that each particle index in f
// appears in exactly one cell list, consistent with f's current positions.
// After Sort, the union of all box lists is exactly {0..NTotal-1}.
func (g *Grid) Sort(f *field.Field) {
	for i := range g.boxes {
		g.boxes[i] = g.boxes[i][:0]
	}
	n := f.NTotal()
	for i := 0; i < n; i++ {
		id := g.BoxOf(f.X[i], f.Y[i], f.Z[i])
		if id < 0 || id >= len(g.boxes) {
			chk.Panic("boxindex: BoxOf returned out-of-range cell %d for particle %d", id, i)
		}
		g.boxes[id] = append(g.boxes[id], i)
	}
}

// NBoxes returns the total number of cells in the grid.
func (g *Grid) NBoxes() int {
	return len(g.boxes)
}
