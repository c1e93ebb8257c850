// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package neighbor implements the per-particle neighbor search over a
// boxindex.Grid's 27-box stencil, pairing each neighbor with its kernel
// gradient magnitude (and, optionally, its smoothing value for XSPH).
package neighbor

import (
	"math"

	"github.com/rboman/sph/boxindex"
	"github.com/rboman/sph/config"
	"github.com/rboman/sph/field"
	"github.com/rboman/sph/kernel"
)

// Result holds the outcome of a search around one particle. IDs and
// Gradients share indices; Values is populated only when WithW is
// requested. Self-contribution (j==i) is always included; callers whose
// self term is zero (XSPH, momentum) skip it themselves.
type Result struct {
	IDs       []int
	Gradients []float64 // dW/dr(r_ij, κ)
	Values    []float64 // W(r_ij, κ), only when requested
}

// Search finds every particle within radius κ of particle i (including i
// itself), walking box b's 27-box stencil (clipped at borders by the
// Grid). Order of neighbors is unspecified.
func Search(i, box int, grid *boxindex.Grid, f *field.Field, kh float64, sel config.Kernel, withW bool, out *Result) {
	out.IDs = out.IDs[:0]
	out.Gradients = out.Gradients[:0]
	if withW {
		out.Values = out.Values[:0]
	}
	xi, yi, zi := f.X[i], f.Y[i], f.Z[i]
	for _, cell := range grid.Adjacency[box] {
		for _, j := range grid.Neighbors(cell) {
			dx := xi - f.X[j]
			dy := yi - f.Y[j]
			dz := zi - f.Z[j]
			r := math.Sqrt(dx*dx + dy*dy + dz*dz)
			if r < kh {
				out.IDs = append(out.IDs, j)
				out.Gradients = append(out.Gradients, kernel.GradW(r, kh, sel))
				if withW {
					out.Values = append(out.Values, kernel.W(r, kh, sel))
				}
			}
		}
	}
}
