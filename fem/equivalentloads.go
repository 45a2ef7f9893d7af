// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/VillePe/vefem-sub000/loads"
	"github.com/VillePe/vefem-sub000/structure"
)

// lengthTolerance is how close a partial load's span must be to the full
// element length before it is treated as a full-length load rather than
// decomposed into point/rotational equivalents (spec.md §4.3). The start
// offset must in addition lie within 1e-9 of zero.
const lengthTolerance = 0.1

// ElementLocalEquivalentLoads sums the local-coordinate equivalent load
// vector (6x1, DOF order u_s,w_s,ry_s,u_e,w_e,ry_e) contributed by every
// CalculationLoad linked to element el of length elLength and rotation
// elRotationDeg.
func ElementLocalEquivalentLoads(el structure.Element, elLength, elRotationDeg float64, linked []loads.CalculationLoad) [6]float64 {
	var total [6]float64
	for _, l := range linked {
		var v [6]float64
		switch l.Type {
		case loads.CPoint:
			v = pointLoadVector(elLength, elRotationDeg, l.OffsetStart, l.Strength, l.Rotation)
		case loads.CRotational:
			v = rotationalLoadVector(elLength, l.OffsetStart, l.Strength)
		case loads.CLine:
			v = lineLoadVector(elLength, elRotationDeg, l)
		case loads.CTriangular:
			v = triangularLoadVector(elLength, elRotationDeg, l)
		case loads.CStrain:
			v = axialEndShorteningVector(el, elLength, l.Strength)
		case loads.CThermal:
			v = thermalVector(el, elLength, l.Strength)
		}
		for i := range total {
			total[i] += v[i]
		}
	}
	return total
}

func pointLoadVector(elLength, elRotationDeg, offsetStart, strength, loadRotationDeg float64) [6]float64 {
	rad := (loadRotationDeg - elRotationDeg) * math.Pi / 180.0
	xDir, zDir := math.Cos(rad), math.Sin(rad)
	px, pz := xDir*strength, zDir*strength

	a := offsetStart
	b := elLength - a
	L := elLength

	var v [6]float64
	v[0] = b / L * px
	v[3] = a / L * px
	v[1] = b * b * (3*a + b) / (L * L * L) * pz
	v[4] = a * a * (a + 3*b) / (L * L * L) * pz
	v[2] = a * b * b / (L * L) * pz
	v[5] = -a * a * b / (L * L) * pz
	return v
}

func rotationalLoadVector(elLength, offsetStart, strength float64) [6]float64 {
	a := offsetStart
	b := elLength - a
	L := elLength

	var v [6]float64
	v[1] = -6 * a * b / (L * L * L) * strength
	v[4] = 6 * a * b / (L * L * L) * strength
	v[2] = -b * (2*a - b) / (L * L) * strength
	v[5] = -a * (2*b - a) / (L * L) * strength
	return v
}

func lineLoadVector(elLength, elRotationDeg float64, l loads.CalculationLoad) [6]float64 {
	loadLength := l.Length()
	rad := (l.Rotation - elRotationDeg) * math.Pi / 180.0
	xDir, zDir := math.Cos(rad), math.Sin(rad)

	plSH := loadLength / 2.0 * xDir * l.Strength
	plEH := loadLength / 2.0 * xDir * l.Strength
	plSV := loadLength / 2.0 * zDir * l.Strength
	plEV := loadLength / 2.0 * zDir * l.Strength
	rlStart := loadLength * loadLength / 12.0 * l.Strength * zDir
	rlEnd := -loadLength * loadLength / 12.0 * l.Strength * zDir

	if math.Abs(loadLength-elLength) < lengthTolerance && math.Abs(l.OffsetStart) < 1e-9 {
		return [6]float64{plSH, plSV, rlStart, plEH, plEV, rlEnd}
	}
	return partialEquivalentLoads(elLength, elRotationDeg, l.OffsetStart, l.OffsetEnd,
		plSH, plEH, plSV, plEV, rlStart, rlEnd)
}

func triangularLoadVector(elLength, elRotationDeg float64, l loads.CalculationLoad) [6]float64 {
	loadLength := l.Length()
	rad := (l.Rotation - elRotationDeg) * math.Pi / 180.0
	xDir, zDir := math.Cos(rad), math.Sin(rad)

	var plSH, plEH, plSV, plEV, rlStart, rlEnd float64
	maxAtStart := l.OffsetStart < l.OffsetEnd
	if maxAtStart {
		plSH = loadLength * 2.0 / 6.0 * xDir * l.Strength
		plEH = loadLength * 1.0 / 6.0 * xDir * l.Strength
		plSV = 7.0 * loadLength / 20.0 * zDir * l.Strength
		plEV = 3.0 * loadLength / 20.0 * zDir * l.Strength
		rlStart = loadLength * loadLength / 20.0 * zDir * l.Strength
		rlEnd = -loadLength * loadLength / 30.0 * zDir * l.Strength
	} else {
		plSH = loadLength * 1.0 / 6.0 * xDir * l.Strength
		plEH = loadLength * 2.0 / 6.0 * xDir * l.Strength
		plSV = 3.0 * loadLength / 20.0 * zDir * l.Strength
		plEV = 7.0 * loadLength / 20.0 * zDir * l.Strength
		rlStart = loadLength * loadLength / 30.0 * zDir * l.Strength
		rlEnd = -loadLength * loadLength / 20.0 * zDir * l.Strength
	}

	if math.Abs(loadLength-elLength) < lengthTolerance && math.Abs(l.OffsetStart) < 1e-9 {
		return [6]float64{plSH, plSV, rlStart, plEH, plEV, rlEnd}
	}
	// The start-side equivalents (plSH/plSV/rlStart) belong at the smaller
	// physical offset and the end-side ones at the larger; when the peak
	// is at the end (!maxAtStart), swap which offset each equivalent is
	// placed at (original_source's swap_offsets) so plEH/plEV/rlEnd lands
	// at the peak's actual position.
	offsetStart, offsetEnd := l.OffsetStart, l.OffsetEnd
	if !maxAtStart {
		offsetStart, offsetEnd = offsetEnd, offsetStart
	}
	return partialEquivalentLoads(elLength, elRotationDeg, offsetStart, offsetEnd,
		plSH, plEH, plSV, plEV, rlStart, rlEnd)
}

// partialEquivalentLoads converts a line/triangular load shorter than the
// element (or offset from its start) into the superposition of point and
// rotational equivalent loads anchored at the load's own start and end
// offsets (spec.md §4.3's "get_eq_loads_with_partial_eq_loads" idiom).
func partialEquivalentLoads(elLength, elRotationDeg, offsetStart, offsetEnd float64,
	plSH, plEH, plSV, plEV, rlStart, rlEnd float64) [6]float64 {

	var total [6]float64
	add := func(v [6]float64) {
		for i := range total {
			total[i] += v[i]
		}
	}
	add(pointLoadVector(elLength, elRotationDeg, offsetStart, plSH, elRotationDeg))
	add(pointLoadVector(elLength, elRotationDeg, offsetStart, plSV, elRotationDeg+90))
	add(rotationalLoadVector(elLength, offsetStart, rlStart))
	add(pointLoadVector(elLength, elRotationDeg, offsetEnd, plEH, elRotationDeg))
	add(pointLoadVector(elLength, elRotationDeg, offsetEnd, plEV, elRotationDeg+90))
	add(rotationalLoadVector(elLength, offsetEnd, rlEnd))
	return total
}

// axialEndShorteningVector builds the local equivalent load pair for a
// prescribed end-shortening displacement delta (spec.md §9: Strain loads
// carry length units, not dimensionless strain).
func axialEndShorteningVector(el structure.Element, elLength, delta float64) [6]float64 {
	EA := el.Material.E() * el.Profile.Area(el.Material)
	val := EA / elLength * delta
	return [6]float64{-val, 0, 0, val, 0, 0}
}

// thermalVector converts a uniform temperature change into the equivalent
// axial end-shortening load via the material's thermal expansion
// coefficient.
func thermalVector(el structure.Element, elLength, temperatureDelta float64) [6]float64 {
	alpha := el.Material.Alpha()
	delta := temperatureDelta * alpha * elLength
	return axialEndShorteningVector(el, elLength, delta)
}

// LinkedCalculationLoads filters loads already evaluated for other
// elements down to the ones belonging to elementNumber.
func LinkedCalculationLoads(elementNumber int, all []loads.CalculationLoad) []loads.CalculationLoad {
	var out []loads.CalculationLoad
	for _, l := range all {
		if l.ElementNumber == elementNumber {
			out = append(out, l)
		}
	}
	return out
}
