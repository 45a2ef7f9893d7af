// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/VillePe/vefem-sub000/loads"
)

// dirFactors returns the local axial (x) and transverse (z) direction
// cosines of a load's global rotation relative to the element's own
// rotation, both in degrees.
func dirFactors(loadRotationDeg, elRotationDeg float64) (xDir, zDir float64) {
	rad := (loadRotationDeg - elRotationDeg) * math.Pi / 180.0
	return math.Cos(rad), math.Sin(rad)
}

// MomentAt returns the bending moment M(x) (about the local y-axis) at
// distance x from the element's start, built from the recovered start
// end-forces (state.Forces[1] = shear, state.Forces[2] = moment, both at
// the start) plus every linked load's own contribution up to x.
func MomentAt(x float64, state ElementState, elRotationDeg float64, linked []loads.CalculationLoad) float64 {
	m := state.Forces[1]*x - state.Forces[2]
	for _, l := range linked {
		_, zDir := dirFactors(l.Rotation, elRotationDeg)
		switch l.Type {
		case loads.CPoint:
			if l.OffsetStart <= x {
				m += zDir * l.Strength * (x - l.OffsetStart)
			}
		case loads.CRotational:
			if l.OffsetStart <= x {
				m -= l.Strength
			}
		case loads.CLine:
			if l.OffsetStart <= x {
				var length, offset float64
				if l.OffsetEnd <= x {
					length = l.OffsetEnd - l.OffsetStart
					offset = x - (l.OffsetStart + length/2.0)
				} else {
					length = x - l.OffsetStart
					offset = x - (l.OffsetStart + length/2.0)
				}
				m += zDir * l.Strength * length * offset
			}
		case loads.CTriangular:
			m += zDir * triangularMomentContribution(l, x)
		}
	}
	return m
}

// ShearAt returns the transverse shear force V(x), the resultant of the
// start shear end-force plus every transverse load component (signed along
// the local z-axis) applied up to x; it is the derivative of MomentAt.
func ShearAt(x float64, state ElementState, elRotationDeg float64, linked []loads.CalculationLoad) float64 {
	v := state.Forces[1]
	for _, l := range linked {
		_, zDir := dirFactors(l.Rotation, elRotationDeg)
		switch l.Type {
		case loads.CPoint:
			if l.OffsetStart <= x {
				v += zDir * l.Strength
			}
		case loads.CLine:
			if l.OffsetStart <= x {
				span := math.Min(x, l.OffsetEnd) - l.OffsetStart
				v += zDir * l.Strength * span
			}
		case loads.CTriangular:
			v += zDir * triangularForceContribution(l, x)
		}
	}
	return v
}

// AxialAt returns the axial normal force N(x), tension positive: the
// negated start axial end-force minus every axial-direction load applied
// up to x.
func AxialAt(x float64, state ElementState, elRotationDeg float64, linked []loads.CalculationLoad) float64 {
	n := -state.Forces[0]
	for _, l := range linked {
		xDir, _ := dirFactors(l.Rotation, elRotationDeg)
		switch l.Type {
		case loads.CPoint:
			if l.OffsetStart <= x {
				n -= xDir * l.Strength
			}
		case loads.CLine:
			if l.OffsetStart <= x {
				span := math.Min(x, l.OffsetEnd) - l.OffsetStart
				n -= xDir * l.Strength * span
			}
		case loads.CTriangular:
			n -= xDir * triangularForceContribution(l, x)
		}
	}
	return n
}

// triLeftRight returns the geometric left/right bounds of a triangular
// load span, independent of which field (OffsetStart/OffsetEnd) is
// numerically larger, plus whether the load's peak Strength sits at the
// left end.
func triLeftRight(l loads.CalculationLoad) (left, right float64, peakAtLeft bool) {
	if l.OffsetStart < l.OffsetEnd {
		return l.OffsetStart, l.OffsetEnd, true
	}
	return l.OffsetEnd, l.OffsetStart, false
}

// triangularForceContribution returns the resultant (integral) of a
// triangular load's distributed intensity from its left bound up to x
// (clamped at its right bound), not yet multiplied by its direction
// factor.
func triangularForceContribution(l loads.CalculationLoad, x float64) float64 {
	a, e, peakAtLeft := triLeftRight(l)
	if x < a {
		return 0
	}
	b := math.Min(x, e)
	L := e - a
	if L <= 0 {
		return 0
	}
	if peakAtLeft {
		return l.Strength / L * (e*(b-a) - (b*b-a*a)/2.0)
	}
	return l.Strength / L * ((b*b-a*a)/2.0 - a*(b-a))
}

// triangularMomentContribution returns the moment (about x) of a
// triangular load's distributed intensity from its left bound up to x
// (clamped at its right bound), not yet multiplied by its direction
// factor.
func triangularMomentContribution(l loads.CalculationLoad, x float64) float64 {
	a, e, peakAtLeft := triLeftRight(l)
	if x < a {
		return 0
	}
	b := math.Min(x, e)
	L := e - a
	if L <= 0 {
		return 0
	}
	if peakAtLeft {
		return l.Strength / L * (e*x*(b-a) - (e+x)*(b*b-a*a)/2.0 + (b*b*b-a*a*a)/3.0)
	}
	return l.Strength / L * (-(b*b*b-a*a*a)/3.0 + (x+a)*(b*b-a*a)/2.0 - a*x*(b-a))
}
