// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"bufio"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/rboman/sph/config"
	"github.com/rboman/sph/field"
	"github.com/rboman/sph/subdomain"
)

// Geometry is the result of reading a geometry file: the domain bounds and
// the seeded field (its Volume array already filled for physics.InitMass).
type Geometry struct {
	L, U  [3]float64
	Field *field.Field
}

// shapeSpec is one #brick/#cylin/#spher subsection: a status, the shared
// seeding parameters (origin, extent, spacing, jitter fraction, stacking),
// and which moving law index it belongs to when status==Moving.
type shapeSpec struct {
	kind    string // "brick", "cylin", "spher"
	status  field.Kind
	lawIdx  int
	origin  [3]float64
	extent  [3]float64
	spacing float64
	jitter  float64
	stack   bool
}

// ReadGeometry parses a geometry file per spec §6: a #FLUID section (eight
// scalars plus five method selectors, folded into the returned *Parameter
// so that a run driven only by a geometry+parameter pair has every fluid
// constant available to it) followed by a #GEOM section (domain bounds plus
// zero or more shape subsections).
func ReadGeometry(path string, p *config.Parameter) (*Geometry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &subdomain.ArgumentError{Msg: "cannot open geometry file: " + err.Error()}
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	g := &Geometry{}
	var shapes []shapeSpec
	nextMovingLaw := 0

	section := ""
	var geomLines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			switch strings.ToLower(line) {
			case "#fluid":
				section = "fluid"
			case "#geom":
				section = "geom"
			case "#brick", "#cylin", "#spher":
				geomLines = append(geomLines, line)
			default:
				return nil, &subdomain.GeometryError{Msg: "unknown section tag " + line}
			}
			continue
		}
		switch section {
		case "fluid":
			if err := applyFluidKey(p, line); err != nil {
				return nil, &subdomain.GeometryError{Msg: err.Error()}
			}
		case "geom":
			geomLines = append(geomLines, line)
		default:
			return nil, &subdomain.GeometryError{Msg: "data line outside any #SECTION: " + line}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &subdomain.GeometryError{Msg: err.Error()}
	}

	g.L, g.U, shapes, err = parseGeomBlock(geomLines)
	if err != nil {
		return nil, err
	}

	var xs, ys, zs []float64
	var kinds []field.Kind
	var laws []int
	var volumes []float64
	var free, fixed, moving int

	for i := range shapes {
		if shapes[i].status == field.Moving {
			shapes[i].lawIdx = nextMovingLaw
			nextMovingLaw++
		}
		pts := seedShape(shapes[i])
		vol := shapes[i].spacing * shapes[i].spacing * shapes[i].spacing
		for _, pt := range pts {
			xs = append(xs, pt[0])
			ys = append(ys, pt[1])
			zs = append(zs, pt[2])
			kinds = append(kinds, shapes[i].status)
			laws = append(laws, shapes[i].lawIdx)
			volumes = append(volumes, vol)
			switch shapes[i].status {
			case field.Free:
				free++
			case field.Fixed:
				fixed++
			case field.Moving:
				moving++
			}
		}
	}

	n := len(xs)
	f := field.New(n)
	copy(f.X, xs)
	copy(f.Y, ys)
	copy(f.Z, zs)
	copy(f.Kind, kinds)
	copy(f.Law, laws)
	copy(f.Volume, volumes)
	f.NFree, f.NFixed, f.NMoving = free, fixed, moving
	f.L, f.U = g.L, g.U

	g.Field = f
	return g, nil
}

func applyFluidKey(p *config.Parameter, line string) error {
	key, value, ok := splitKeyValue(line)
	if !ok {
		return nil
	}
	return applyParameterKey(p, key, value)
}

// parseGeomBlock consumes the #GEOM section: six scalars (lower bound xyz,
// upper bound xyz) followed by zero or more shape subsections, each
// introduced by its own "#brick"/"#cylin"/"#spher" tag and ten single-value
// data lines (status, spacing, jitter, origin x/y/z, extent x/y/z,
// stack-flag), per spec §6.
func parseGeomBlock(lines []string) (l, u [3]float64, shapes []shapeSpec, err error) {
	idx := 0
	readFloat := func() (float64, error) {
		if idx >= len(lines) {
			return 0, fmt.Errorf("geometry file ended early")
		}
		v, e := strconv.ParseFloat(lines[idx], 64)
		idx++
		return v, e
	}

	for i := 0; i < 3; i++ {
		l[i], err = readFloat()
		if err != nil {
			return l, u, nil, &subdomain.GeometryError{Msg: err.Error()}
		}
	}
	for i := 0; i < 3; i++ {
		u[i], err = readFloat()
		if err != nil {
			return l, u, nil, &subdomain.GeometryError{Msg: err.Error()}
		}
	}

	for idx < len(lines) {
		tag := strings.ToLower(lines[idx])
		idx++
		var kind string
		switch tag {
		case "#brick":
			kind = "brick"
		case "#cylin":
			kind = "cylin"
		case "#spher":
			kind = "spher"
		default:
			return l, u, nil, &subdomain.GeometryError{Msg: "unknown shape tag " + tag}
		}

		statusVal, err := readFloat()
		if err != nil {
			return l, u, nil, &subdomain.GeometryError{Msg: err.Error()}
		}
		status, err := statusKind(int(statusVal))
		if err != nil {
			return l, u, nil, &subdomain.GeometryError{Msg: err.Error()}
		}
		spacing, err := readFloat()
		if err != nil {
			return l, u, nil, &subdomain.GeometryError{Msg: err.Error()}
		}
		jitter, err := readFloat()
		if err != nil {
			return l, u, nil, &subdomain.GeometryError{Msg: err.Error()}
		}
		var origin, extent [3]float64
		for i := 0; i < 3; i++ {
			origin[i], err = readFloat()
			if err != nil {
				return l, u, nil, &subdomain.GeometryError{Msg: err.Error()}
			}
		}
		for i := 0; i < 3; i++ {
			extent[i], err = readFloat()
			if err != nil {
				return l, u, nil, &subdomain.GeometryError{Msg: err.Error()}
			}
		}
		stackVal, err := readFloat()
		if err != nil {
			return l, u, nil, &subdomain.GeometryError{Msg: err.Error()}
		}

		shapes = append(shapes, shapeSpec{
			kind: kind, status: status,
			origin: origin, extent: extent,
			spacing: spacing, jitter: jitter,
			stack: stackVal != 0,
		})
	}
	return
}

func statusKind(v int) (field.Kind, error) {
	switch v {
	case 0:
		return field.Free, nil
	case 1:
		return field.Moving, nil
	case 2:
		return field.Fixed, nil
	}
	return 0, fmt.Errorf("unknown shape status %d", v)
}

// seedShape generates the particle positions for one shape subsection:
// bricks seed a regular grid, cylinders a set of concentric revolution
// rings, spheres a set of concentric radial shells — each jittered by a
// uniform fraction r of the spacing, matching the spec's "regular grid /
// revolution pattern / radial pattern" shapes.
func seedShape(s shapeSpec) [][3]float64 {
	switch s.kind {
	case "brick":
		return seedBrick(s)
	case "cylin":
		return seedCylinder(s)
	case "spher":
		return seedSphere(s)
	}
	return nil
}

// jitterRand seeds seeding jitter from a fixed source rather than the
// top-level math/rand (auto-seeded per run since Go 1.20), so that a given
// geometry file produces the same particle cloud every run — required for
// I5's bit-identical determinism whenever jitter is non-zero.
var jitterRand = rand.New(rand.NewSource(1))

func jitterOf(s float64, r float64) float64 {
	if r == 0 {
		return 0
	}
	return (jitterRand.Float64()*2 - 1) * r * s
}

func seedBrick(s shapeSpec) [][3]float64 {
	var pts [][3]float64
	nx := int(s.extent[0]/s.spacing) + 1
	ny := int(s.extent[1]/s.spacing) + 1
	nz := int(s.extent[2]/s.spacing) + 1
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				x := s.origin[0] + float64(i)*s.spacing + jitterOf(s.spacing, s.jitter)
				y := s.origin[1] + float64(j)*s.spacing + jitterOf(s.spacing, s.jitter)
				z := s.origin[2] + float64(k)*s.spacing + jitterOf(s.spacing, s.jitter)
				pts = append(pts, [3]float64{x, y, z})
			}
		}
	}
	return pts
}

// seedCylinder lays out concentric rings about the shape's z-axis (through
// origin, radius extent[0], height extent[2]), one ring per radial step of
// spacing; when the stack flag is set, each z layer also gets a point on
// the axis.
func seedCylinder(s shapeSpec) [][3]float64 {
	var pts [][3]float64
	radius := s.extent[0]
	height := s.extent[2]
	nr := int(radius/s.spacing) + 1
	nz := int(height/s.spacing) + 1
	for iz := 0; iz < nz; iz++ {
		z := s.origin[2] + float64(iz)*s.spacing
		for ir := 1; ir <= nr; ir++ {
			r := float64(ir) * s.spacing
			circumference := 2 * math.Pi * r
			nTheta := int(circumference/s.spacing) + 1
			for it := 0; it < nTheta; it++ {
				theta := 2 * math.Pi * float64(it) / float64(nTheta)
				x := s.origin[0] + r*math.Cos(theta) + jitterOf(s.spacing, s.jitter)
				y := s.origin[1] + r*math.Sin(theta) + jitterOf(s.spacing, s.jitter)
				pts = append(pts, [3]float64{x, y, z + jitterOf(s.spacing, s.jitter)})
			}
		}
		if s.stack {
			pts = append(pts, [3]float64{s.origin[0], s.origin[1], z})
		}
	}
	return pts
}

// seedSphere lays out concentric shells about origin up to radius extent[0],
// one shell per radial step of spacing, using a simple latitude/longitude
// grid per shell (stack-flag adds the center point).
func seedSphere(s shapeSpec) [][3]float64 {
	var pts [][3]float64
	radius := s.extent[0]
	nr := int(radius/s.spacing) + 1
	for ir := 1; ir <= nr; ir++ {
		r := float64(ir) * s.spacing
		nPhi := int(math.Pi*r/s.spacing) + 1
		for ip := 0; ip <= nPhi; ip++ {
			phi := math.Pi * float64(ip) / float64(nPhi)
			circumference := 2 * math.Pi * r * math.Sin(phi)
			nTheta := int(circumference/s.spacing) + 1
			if nTheta < 1 {
				nTheta = 1
			}
			for it := 0; it < nTheta; it++ {
				theta := 2 * math.Pi * float64(it) / float64(nTheta)
				x := s.origin[0] + r*math.Sin(phi)*math.Cos(theta) + jitterOf(s.spacing, s.jitter)
				y := s.origin[1] + r*math.Sin(phi)*math.Sin(theta) + jitterOf(s.spacing, s.jitter)
				z := s.origin[2] + r*math.Cos(phi) + jitterOf(s.spacing, s.jitter)
				pts = append(pts, [3]float64{x, y, z})
			}
		}
	}
	if s.stack {
		pts = append(pts, s.origin)
	}
	return pts
}
