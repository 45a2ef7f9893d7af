// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/VillePe/vefem-sub000/loads"
	"github.com/VillePe/vefem-sub000/structure"
)

// DeflectionAt returns the transverse deflection w(x) (local z-axis) at
// distance x from the element's start. It gathers the double integral of
// the moment function from every linked load plus the element's own
// recovered end forces/displacements, then divides by EI (Euler-Bernoulli
// theory; see MomentAt for the single-integral counterpart).
func DeflectionAt(x float64, e structure.Element, state ElementState, elRotationDeg float64, linked []loads.CalculationLoad) float64 {
	EI := e.Material.E() * e.Profile.IMajor(e.Material)
	var d float64
	for _, l := range linked {
		_, zDir := dirFactors(l.Rotation, elRotationDeg)
		switch l.Type {
		case loads.CPoint:
			if l.OffsetStart <= x {
				d += l.Strength * zDir * cube(x-l.OffsetStart) / 6.0
			}
		case loads.CRotational:
			if l.OffsetStart <= x {
				d -= l.Strength * sq(x-l.OffsetStart) / 2.0
			}
		case loads.CLine:
			if l.OffsetStart <= x {
				length := x - l.OffsetStart
				d += l.Strength * zDir * quart(length) / 24.0
				if l.OffsetEnd <= x {
					d -= l.Strength * zDir * quart(x-l.OffsetEnd) / 24.0
				}
			}
		case loads.CTriangular:
			if l.OffsetStart < l.OffsetEnd {
				d += triangularDeflectionLTR(l, x, elRotationDeg)
			} else {
				d += triangularDeflectionRTL(l, x, elRotationDeg)
			}
		}
	}

	d += state.Displacements[2] * EI * x
	d += state.Displacements[1] * EI
	d += state.Forces[1] * cube(x) / 6.0
	d -= state.Forces[2] * sq(x) / 2.0

	return d / EI
}

func triangularDeflectionLTR(l loads.CalculationLoad, x, elRotationDeg float64) float64 {
	_, zDir := dirFactors(l.Rotation, elRotationDeg)
	if l.OffsetStart > x {
		return 0
	}
	ll := l.OffsetEnd - l.OffsetStart
	if l.OffsetEnd <= x {
		d := l.Strength / ll * zDir * quint(x-l.OffsetStart) * 2.0 / 120.0
		d += l.Strength / ll * zDir * quint(x-l.OffsetEnd) * 1.0 / 120.0
		d -= l.Strength / ll * zDir * quint(x-l.OffsetStart) / 40.0
		d += l.Strength * zDir * quart(x-l.OffsetStart) / 24.0
		return d
	}
	d := l.Strength / ll * zDir * quint(x-l.OffsetStart) * 2.0 / 120.0
	d -= l.Strength / ll * zDir * quint(x-l.OffsetStart) / 40.0
	d += l.Strength * zDir * quart(x-l.OffsetStart) / 24.0
	return d
}

func triangularDeflectionRTL(l loads.CalculationLoad, x, elRotationDeg float64) float64 {
	_, zDir := dirFactors(l.Rotation, elRotationDeg)
	left, right := l.OffsetEnd, l.OffsetStart
	if left > x {
		return 0
	}
	ll := right - left
	if right <= x {
		d := l.Strength / ll * zDir * quint(x-left) / 120.0
		d -= l.Strength * zDir * quart(x-right) / 24.0
		d -= l.Strength / ll * zDir * quint(x-right) / 120.0
		return d
	}
	return l.Strength / ll * zDir * quint(x-left) * 1.0 / 120.0
}

func sq(v float64) float64    { return v * v }
func cube(v float64) float64  { return v * v * v }
func quart(v float64) float64 { return v * v * v * v }
func quint(v float64) float64 { return v * v * v * v * v }
