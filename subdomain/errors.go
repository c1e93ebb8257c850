// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subdomain

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
)

// ArgumentError signals a malformed command-line invocation (missing or
// unreadable file, unrecognised flag). Exit code 2.
type ArgumentError struct{ Msg string }

func (e *ArgumentError) Error() string { return e.Msg }

// ParameterError signals a malformed or out-of-range parameter file entry.
// Exit code 3.
type ParameterError struct{ Msg string }

func (e *ParameterError) Error() string { return e.Msg }

// GeometryError signals a malformed geometry file (unknown section or shape
// tag, unreadable or missing value). Exit code 4.
type GeometryError struct{ Msg string }

func (e *GeometryError) Error() string { return e.Msg }

// ConsistencyError signals a configuration that is individually well-formed
// but inconsistent with the run's parallel layout, e.g. nTotalBoxesX smaller
// than 2·nTasks (S5). Exit code 5.
type ConsistencyError struct{ Msg string }

func (e *ConsistencyError) Error() string { return e.Msg }

// RuntimeDivergenceError signals a particle that escaped every known overlap
// or migration interval mid-run — the original's computeOverlapIndex prints
// "should not be here" and carries on; here it is reported then fatal.
type RuntimeDivergenceError struct{ Msg string }

func (e *RuntimeDivergenceError) Error() string { return e.Msg }

// ExitCode maps an error from this taxonomy to a process exit status. err
// may be nil, in which case it returns 0.
func ExitCode(err error) int {
	switch err.(type) {
	case nil:
		return 0
	case *ArgumentError:
		return 2
	case *ParameterError:
		return 3
	case *GeometryError:
		return 4
	case *ConsistencyError:
		return 5
	case *RuntimeDivergenceError:
		return 6
	default:
		return 1
	}
}

// Abort performs a collective error check: every rank contributes a 0/1 stop
// flag (1 when its local err is non-nil) and the flags are reduced with
// IntAllReduceMax, so that one rank's failure stops every rank instead of
// leaving the others to hang on a halo exchange that will never arrive.
// Adapted from the collective stop-flag pattern used for FE solver failures
// elsewhere in the gofem codebase, rewired onto this module's io/chk
// printing conventions. Rank 0 prints the offending message, if any; every
// rank then returns the same boolean.
func Abort(err error) bool {
	local := 0
	if err != nil {
		local = 1
	}
	if !mpi.IsOn() {
		if err != nil {
			io.Pfred("error: %v\n", err)
		}
		return err != nil
	}
	send := []int{local}
	recv := []int{0}
	mpi.IntAllReduceMax(send, recv)
	stop := recv[0] == 1
	if stop && mpi.Rank() == 0 {
		if err != nil {
			io.Pfred("rank %d: %v\n", mpi.Rank(), err)
		} else {
			io.Pfred("a peer rank reported a fatal error; aborting\n")
		}
	}
	return stop
}

// panicIfAbort is a convenience used deep inside exchange routines where
// propagating an error up through every call site would be unwieldy. It
// panics with err itself, so a top-level recover still sees the taxonomy
// type and can map it through ExitCode.
func panicIfAbort(err error) {
	if err != nil {
		panic(err)
	}
}
