// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/VillePe/vefem-sub000/loads"
	"github.com/VillePe/vefem-sub000/structure"
)

// AxialDeformationAt returns the axial displacement u(x) (local x-axis)
// at distance x from the element's start: the single integral of the
// axial force function from every linked load plus the element's own
// recovered end state, divided by EA.
func AxialDeformationAt(x float64, e structure.Element, state ElementState, elRotationDeg float64, linked []loads.CalculationLoad) float64 {
	EA := e.Material.E() * e.Profile.Area(e.Material)
	var s float64
	for _, l := range linked {
		xDir, _ := dirFactors(l.Rotation, elRotationDeg)
		switch l.Type {
		case loads.CPoint:
			if l.OffsetStart <= x {
				s -= l.Strength * xDir * (x - l.OffsetStart)
			}
		case loads.CLine:
			if l.OffsetStart <= x {
				length := x - l.OffsetStart
				s -= l.Strength * xDir * length * length / 2.0
				if l.OffsetEnd <= x {
					s += l.Strength * xDir * sq(x-l.OffsetEnd) / 2.0
				}
			}
		case loads.CTriangular:
			if l.OffsetStart < l.OffsetEnd {
				s -= triangularAxialLTR(l, x, elRotationDeg)
			} else {
				s -= triangularAxialRTL(l, x, elRotationDeg)
			}
		}
	}

	s += state.Displacements[0] * EA
	s -= state.Forces[0] * x

	return s / EA
}

func triangularAxialLTR(l loads.CalculationLoad, x, elRotationDeg float64) float64 {
	xDir, _ := dirFactors(l.Rotation, elRotationDeg)
	if l.OffsetStart > x {
		return 0
	}
	ll := l.OffsetEnd - l.OffsetStart
	if l.OffsetEnd <= x {
		s := l.Strength / ll * xDir * cube(x-l.OffsetStart) / 6.0
		s += l.Strength / ll * xDir * cube(x-l.OffsetEnd) / 6.0
		s -= l.Strength / ll * xDir * cube(x-l.OffsetStart) / 3.0
		s += l.Strength * xDir * sq(x-l.OffsetStart) / 2.0
		return s
	}
	s := l.Strength / ll * xDir * cube(x-l.OffsetStart) / 6.0
	s -= l.Strength / ll * xDir * cube(x-l.OffsetStart) / 3.0
	s += l.Strength * xDir * sq(x-l.OffsetStart) / 2.0
	return s
}

func triangularAxialRTL(l loads.CalculationLoad, x, elRotationDeg float64) float64 {
	xDir, _ := dirFactors(l.Rotation, elRotationDeg)
	left, right := l.OffsetEnd, l.OffsetStart
	if left > x {
		return 0
	}
	ll := right - left
	if right <= x {
		s := l.Strength / ll * xDir * cube(x-left) / 6.0
		s -= l.Strength * xDir * sq(x-right) / 2.0
		s -= l.Strength / ll * xDir * cube(x-right) / 6.0
		return s
	}
	return l.Strength / ll * xDir * cube(x-left) / 6.0
}
