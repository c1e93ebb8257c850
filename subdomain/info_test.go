// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subdomain

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_partition01(tst *testing.T) {

	chk.PrintTitle("partition01. single rank owns the whole domain")

	o := &Info{Rank: 0, NTasks: 1}
	err := o.Partition([3]float64{0, 0, 0}, [3]float64{1, 1, 1}, 0.1)
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
	}
	if o.StartingBox != 0 {
		tst.Errorf("single-rank StartingBox should be 0, got %d", o.StartingBox)
	}
}

func Test_partition02(tst *testing.T) {

	chk.PrintTitle("partition02. S5: too few box columns for the rank count is a ConsistencyError")

	o := &Info{Rank: 0, NTasks: 8}
	err := o.Partition([3]float64{0, 0, 0}, [3]float64{0.5, 1, 1}, 0.1)
	if err == nil {
		tst.Errorf("expected a ConsistencyError, got nil")
	}
	if _, ok := err.(*ConsistencyError); !ok {
		tst.Errorf("expected *ConsistencyError, got %T", err)
	}
}

func Test_partition03(tst *testing.T) {

	chk.PrintTitle("partition03. startBoxX partition for 1..5 ranks: every box column is owned by exactly one rank")

	const nTotalBoxesX = 40
	boxSize := 1.0 / float64(nTotalBoxesX)

	for _, nTasks := range []int{1, 2, 3, 4, 5} {
		covered := make([]int, nTotalBoxesX)
		for r := 0; r < nTasks; r++ {
			o := &Info{Rank: r, NTasks: nTasks}
			if err := o.Partition([3]float64{0, 0, 0}, [3]float64{1, 1, 1}, boxSize); err != nil {
				tst.Fatalf("nTasks=%d: unexpected error: %v", nTasks, err)
			}
			lo, hi := o.startBoxX[r], o.startBoxX[r+1]
			for b := lo; b < hi; b++ {
				covered[b]++
			}
		}
		for b, c := range covered {
			if c != 1 {
				tst.Errorf("nTasks=%d: box column %d covered %d times, want 1", nTasks, b, c)
			}
		}
	}
}

func Test_partition04(tst *testing.T) {

	chk.PrintTitle("partition04. HasLeft/HasRight at the domain ends")

	o := &Info{Rank: 0, NTasks: 3}
	if o.HasLeft() {
		tst.Errorf("rank 0 must not have a left neighbor")
	}
	if !o.HasRight() {
		tst.Errorf("rank 0 of 3 must have a right neighbor")
	}

	last := &Info{Rank: 2, NTasks: 3}
	if !last.HasLeft() {
		tst.Errorf("last rank must have a left neighbor")
	}
	if last.HasRight() {
		tst.Errorf("last rank must not have a right neighbor")
	}
}
