// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/utl"
	"github.com/rboman/sph/field"
	"github.com/rboman/sph/input"
	"github.com/rboman/sph/orchestrator"
	"github.com/rboman/sph/subdomain"
)

func main() {

	exitCode := 0

	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				chk.Verbose = true
				for i := 8; i > 3; i-- {
					chk.CallerInfo(i)
				}
				io.PfRed("ERROR: %v\n", err)
			}
			// a panic during time-stepping (e.g. subdomain's collective abort
			// on runtimeDivergence) still carries its taxonomy error; map it
			// to the same exit code exitOn would have used.
			if e, ok := err.(error); ok {
				exitCode = subdomain.ExitCode(e)
			} else {
				exitCode = 1
			}
		}
		mpi.Stop(false)
		os.Exit(exitCode)
	}()
	mpi.Start(false)

	if mpi.Rank() == 0 {
		io.PfWhite("\nsph -- distributed smoothed-particle hydrodynamics\n\n")
	}

	flag.Parse()
	if len(flag.Args()) < 2 {
		panic(&subdomain.ArgumentError{Msg: "Please provide a parameter file and a geometry file. Ex.: sph case.param case.geom [outputStem]"})
	}
	parameterFile := flag.Arg(0)
	geometryFile := flag.Arg(1)
	outputStem := "result"
	if len(flag.Args()) > 2 {
		outputStem = flag.Arg(2)
	}

	defer utl.DoProf(false)()

	p, err := input.ReadParameter(parameterFile)
	exitOn(err)

	geom, err := input.ReadGeometry(geometryFile, p)
	exitOn(err)

	info := subdomain.New()
	exitOn(info.Partition(geom.L, geom.U, p.Kh))

	info.BroadcastMovingBoundaries(p)

	local := info.Scatter(geom.Field)
	local.L, local.U = geom.L, geom.U

	orchestrator.InitializeField(local, p)

	info.Overlap(local, p.Kh)
	local.RecountKinds()

	orc := orchestrator.NewMain(p, info, local)
	orc.OnWrite = func(step int, t float64, whole *field.Field) {
		if mpi.Rank() == 0 {
			io.Pf("> write at step %d t=%v (%s, %d particles)\n", step, t, outputStem, whole.NTotal())
		}
	}

	exitOn(orc.Run())

	if mpi.Rank() == 0 {
		io.PfGreen("> Success\n")
	}
}

func exitOn(err error) {
	if err == nil {
		return
	}
	if mpi.Rank() == 0 {
		io.Pfred("error: %v\n", err)
	}
	os.Exit(subdomain.ExitCode(err))
}

