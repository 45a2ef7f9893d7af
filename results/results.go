// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package results holds the output of a calculation run: per-combination
// node displacements/reactions and per-element sampled internal force
// diagrams, plus the interpolation rules for querying a diagram at an
// arbitrary station (spec.md §4.8, C9).
package results

import "sort"

// NodeResult is one node's resolved displacement and reaction state for
// a single load combination.
type NodeResult struct {
	NodeNumber                 int
	Dx, Dz, Ry                 float64
	Rx, Rz, Rm                 float64
}

// Station is one sampled point along an element: position x from the
// element's start plus the five reconstructed fields at that point.
type Station struct {
	X          float64
	N, V, M    float64
	W, U       float64
}

// ElementResult is the ordered set of sampled stations along one element
// for a single load combination.
type ElementResult struct {
	ElementNumber int
	Stations      []Station
}

// CombinationResult is one load combination's full set of node and
// element results, tagged with the (parent, sub) numbering used to sort
// combinations deterministically after parallel evaluation (spec.md §5).
type CombinationResult struct {
	ParentNumber int
	SubNumber    int
	Name         string
	Nodes        []NodeResult
	Elements     []ElementResult
}

// Results is the full output of a Calculate run.
type Results struct {
	Combinations []CombinationResult
}

// Sort orders Combinations by (ParentNumber, SubNumber) ascending, the
// deterministic ordering required after threaded evaluation.
func (r *Results) Sort() {
	sort.Slice(r.Combinations, func(i, j int) bool {
		a, b := r.Combinations[i], r.Combinations[j]
		if a.ParentNumber != b.ParentNumber {
			return a.ParentNumber < b.ParentNumber
		}
		return a.SubNumber < b.SubNumber
	})
}

// Field selects which reconstructed quantity to read from a Station.
type Field int

const (
	FieldN Field = iota
	FieldV
	FieldM
	FieldW
	FieldU
)

func (s Station) value(f Field) float64 {
	switch f {
	case FieldN:
		return s.N
	case FieldV:
		return s.V
	case FieldM:
		return s.M
	case FieldW:
		return s.W
	case FieldU:
		return s.U
	default:
		return 0
	}
}

// ValueAt interpolates field at position x along er's sampled stations
// (spec.md §4.8, C9): an exact station match returns that value, a
// position between two stations is linearly interpolated, a position
// before the first station is interpolated linearly between the origin
// (0, 0) and the first station, and a position past the last station clamps to
// the last station's value.
func (er ElementResult) ValueAt(x float64, f Field) float64 {
	n := len(er.Stations)
	if n == 0 {
		return 0
	}
	if x < er.Stations[0].X {
		// Extrapolate from the origin (0, 0) to the first sample, per
		// spec.md §4.8 - not from the first two samples' slope.
		if er.Stations[0].X == 0 {
			return er.Stations[0].value(f)
		}
		t := x / er.Stations[0].X
		return t * er.Stations[0].value(f)
	}
	if n == 1 || x <= er.Stations[0].X {
		return er.Stations[0].value(f)
	}
	if x >= er.Stations[n-1].X {
		return er.Stations[n-1].value(f)
	}
	for i := 0; i < n-1; i++ {
		a, b := er.Stations[i], er.Stations[i+1]
		if x == a.X {
			return a.value(f)
		}
		if x > a.X && x < b.X {
			t := (x - a.X) / (b.X - a.X)
			return a.value(f) + t*(b.value(f)-a.value(f))
		}
	}
	return er.Stations[n-1].value(f)
}
