// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calcsettings carries the knobs that steer a calculation run:
// sampling interval, threading, and the direct-vs-Cholesky solver
// threshold (spec.md §4.5, §4.8).
package calcsettings

// IntervalKind distinguishes the two ways a caller may specify the
// internal-force/deflection sampling interval along an element (spec.md
// §4.8): a fixed physical step, or a fixed fraction of the element's
// length.
type IntervalKind int

const (
	// Absolute samples every Value length units (mm).
	Absolute IntervalKind = iota
	// Relative samples every Value*length along each element (Value is a
	// fraction of the element length, e.g. 0.01 for 1% steps).
	Relative
)

// Interval is a tagged union of Absolute/Relative sampling granularity.
type Interval struct {
	Kind  IntervalKind
	Value float64
}

// AbsoluteInterval builds a fixed-step sampling interval.
func AbsoluteInterval(stepMM float64) Interval {
	return Interval{Kind: Absolute, Value: stepMM}
}

// RelativeInterval builds a sampling interval whose step is the given
// fraction of each element's length.
func RelativeInterval(fraction float64) Interval {
	return Interval{Kind: Relative, Value: fraction}
}

// DefaultSolverThreshold is the free-DOF count above which the
// solver switches from direct (Gauss-Jordan) inversion to Cholesky
// factorization (spec.md §4.5).
const DefaultSolverThreshold = 100

// CalcSettings bundles the per-run knobs threaded through a Calculate call.
type CalcSettings struct {
	// Interval controls internal-force/deflection sampling density.
	Interval Interval
	// CalcThreaded fans load combinations out across goroutines
	// (spec.md §5) when true; false forces sequential evaluation,
	// useful for deterministic tests and small models.
	CalcThreaded bool
	// SolverThreshold overrides DefaultSolverThreshold when non-zero.
	SolverThreshold int
}

// Default returns the conventional settings: 50mm sampling step,
// threaded combination evaluation, default solver threshold.
func Default() CalcSettings {
	return CalcSettings{
		Interval:     AbsoluteInterval(50),
		CalcThreaded: true,
	}
}

// Threshold returns the effective solver threshold, falling back to
// DefaultSolverThreshold when unset.
func (c CalcSettings) Threshold() int {
	if c.SolverThreshold > 0 {
		return c.SolverThreshold
	}
	return DefaultSolverThreshold
}
