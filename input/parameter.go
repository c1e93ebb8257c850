// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package input reads the two text file formats described in spec §6: the
// line-oriented key/value parameter file and the #SECTION-tagged geometry
// file, the latter seeding an initial Field from brick/cylinder/sphere
// shape subsections.
package input

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/rboman/sph/config"
	"github.com/rboman/sph/subdomain"
)

// ReadParameter parses a parameter file per spec §6 into a config.Parameter.
// Unknown keys are ignored, matching the original's tolerance for a
// parameter file carrying extra writer-only keys (paraview, matlab) that
// this module has no use for but must not choke on. The moving-boundary
// table is a sequence of per-law blocks: each "posLaw ..." line opens a new
// law entry, and every other moving-boundary key fills the most recently
// opened entry.
func ReadParameter(path string) (*config.Parameter, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &subdomain.ArgumentError{Msg: "cannot open parameter file: " + err.Error()}
	}
	defer file.Close()

	p := &config.Parameter{}

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#") {
			continue
		}
		key, rest, ok := splitKeyValue(line)
		if !ok {
			continue
		}
		if err := applyParameterKey(p, key, rest); err != nil {
			return nil, &subdomain.ParameterError{Msg: fmt.Sprintf("line %d: %v", lineNo, err)}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &subdomain.ParameterError{Msg: err.Error()}
	}
	return p, nil
}

func splitKeyValue(line string) (key, value string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", "", false
	}
	return strings.ToLower(fields[0]), strings.Join(fields[1:], " "), true
}

func currentLaw(p *config.Parameter) *config.MovingBoundary {
	if len(p.MovingBoundaries) == 0 {
		return nil
	}
	return &p.MovingBoundaries[len(p.MovingBoundaries)-1]
}

func applyParameterKey(p *config.Parameter, key, value string) error {
	var err error
	switch key {
	case "kh", "h":
		p.Kh, err = parseFloat(value)
	case "k":
		p.K, err = parseFloat(value)
	case "t":
		p.T, err = parseFloat(value)
	case "densityref":
		p.DensityRef, err = parseFloat(value)
	case "b":
		p.B, err = parseFloat(value)
	case "gamma":
		p.Gamma, err = parseFloat(value)
	case "g":
		p.G, err = parseFloat(value)
	case "writeinterval":
		p.WriteInterval, err = parseFloat(value)
	case "c":
		p.C, err = parseFloat(value)
	case "alpha":
		p.Alpha, err = parseFloat(value)
	case "beta":
		p.Beta, err = parseFloat(value)
	case "epsilon":
		p.Epsilon, err = parseFloat(value)
	case "epsilonxsph":
		p.EpsilonXSPH, err = parseFloat(value)
	case "molarmass":
		p.MolarMass, err = parseFloat(value)
	case "temperature":
		p.Temperature, err = parseFloat(value)
	case "theta":
		p.Theta, err = parseFloat(value)
	case "kernel":
		p.KernelSelector, err = parseKernel(value)
	case "integrationmethod":
		p.IntegrationMethod, err = parseIntegrationMethod(value)
	case "adaptativetimestep":
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "yes":
			p.Adaptive = true
		case "no":
			p.Adaptive = false
		default:
			p.Adaptive = io.Atob(value)
		}
	case "densityinitmethod":
		p.DensityInit, err = parseDensityInit(value)
	case "stateequationmethod":
		p.StateEquation, err = parseStateEquation(value)
	case "massinitmethod":
		p.MassInit, err = parseMassInit(value)
	case "viscositymodel":
		p.ViscosityModel = config.VioleauArtificial

	case "poslaw":
		var law config.PosLaw
		law, err = parsePosLaw(value)
		if err == nil {
			p.MovingBoundaries = append(p.MovingBoundaries, config.MovingBoundary{PosLaw: law})
		}
	case "anglelaw":
		if mb := currentLaw(p); mb != nil {
			mb.AngleLaw, err = parseAngleLaw(value)
		}
	case "characttime":
		if mb := currentLaw(p); mb != nil {
			mb.CharactTime, err = parseFloat(value)
		}
	case "amplitude":
		if mb := currentLaw(p); mb != nil {
			mb.Amplitude, err = parseFloat(value)
		}
	case "direction":
		if mb := currentLaw(p); mb != nil {
			mb.Direction, err = parseVec3(value)
		}
	case "rotationcenter":
		if mb := currentLaw(p); mb != nil {
			mb.RotationCenter, err = parseVec3(value)
		}
	case "teta":
		if mb := currentLaw(p); mb != nil {
			mb.EulerAngles, err = parseVec3(value)
		}

	case "paraview", "matlab":
		// writer-only selectors; no effect on core simulation state.
	default:
		// tolerate unrecognized keys, per spec §6's enumerated-but-open list.
	}
	return err
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func parseVec3(s string) ([3]float64, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return [3]float64{}, fmt.Errorf("expected 3 components, got %q", s)
	}
	var v [3]float64
	for i := 0; i < 3; i++ {
		x, err := parseFloat(fields[i])
		if err != nil {
			return [3]float64{}, err
		}
		v[i] = x
	}
	return v, nil
}

func parseKernel(s string) (config.Kernel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gaussian":
		return config.Gaussian, nil
	case "bell_shaped":
		return config.BellShaped, nil
	case "cubic_spline":
		return config.CubicSpline, nil
	case "quadratic":
		return config.Quadratic, nil
	case "quintic":
		return config.Quintic, nil
	case "quintic_spline":
		return config.QuinticSpline, nil
	}
	return 0, fmt.Errorf("unknown kernel %q", s)
}

func parseIntegrationMethod(s string) (config.IntegrationMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "euler":
		return config.Euler, nil
	case "rk2":
		return config.RK2, nil
	}
	return 0, fmt.Errorf("unknown integrationMethod %q", s)
}

func parseDensityInit(s string) (config.DensityInitMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hydrostatic":
		return config.Hydrostatic, nil
	case "homogeneous":
		return config.Homogeneous, nil
	}
	return 0, fmt.Errorf("unknown densityInitMethod %q", s)
}

func parseStateEquation(s string) (config.StateEquation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quasiincompressible":
		return config.QuasiIncompressible, nil
	case "perfectgas":
		return config.PerfectGas, nil
	}
	return 0, fmt.Errorf("unknown stateEquationMethod %q", s)
}

func parseMassInit(s string) (config.MassInitMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "violeau2012":
		return config.Violeau2012, nil
	}
	return 0, fmt.Errorf("unknown massInitMethod %q", s)
}

func parsePosLaw(s string) (config.PosLaw, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "constant":
		return config.PosConstant, nil
	case "sine":
		return config.PosSine, nil
	case "exponential":
		return config.PosExponential, nil
	case "rotating":
		return config.PosRotating, nil
	}
	return 0, fmt.Errorf("unknown posLaw %q", s)
}

func parseAngleLaw(s string) (config.AngleLaw, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return config.AngleLinear, nil
	case "sine":
		return config.AngleSine, nil
	case "exponential":
		return config.AngleExponential, nil
	}
	return 0, fmt.Errorf("unknown angleLaw %q", s)
}
