// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fem is the calculation kernel: local/global stiffness assembly,
// equivalent load generation, the linear solve, reaction recovery and
// internal-force/deflection reconstruction (spec.md §4, components C2-C10).
package fem

import (
	"math"

	"github.com/VillePe/vefem-sub000/linalg"
	"github.com/VillePe/vefem-sub000/structure"
)

// dofsPerNode is the number of DOFs at a single node: translation along
// the element's local x, translation along local z, rotation about y.
const dofsPerNode = 3

// LocalStiffness builds the 6x6 Euler-Bernoulli stiffness matrix of e in
// its own local coordinate system, DOF order (u_s, w_s, ry_s, u_e, w_e,
// ry_e).
func LocalStiffness(e structure.Element, length float64) linalg.Matrix {
	E := e.Material.E()
	A := e.Profile.Area(e.Material)
	I := e.Profile.IMajor(e.Material)
	EA := E * A
	EI := E * I
	L := length
	L2, L3 := L*L, L*L*L

	k := linalg.Alloc(6, 6)
	k[0][0], k[0][3] = EA/L, -EA/L
	k[3][0], k[3][3] = -EA/L, EA/L

	k[1][1], k[1][2], k[1][4], k[1][5] = 12*EI/L3, 6*EI/L2, -12*EI/L3, 6*EI/L2
	k[2][1], k[2][2], k[2][4], k[2][5] = 6*EI/L2, 4*EI/L, -6*EI/L2, 2*EI/L
	k[4][1], k[4][2], k[4][4], k[4][5] = -12*EI/L3, -6*EI/L2, 12*EI/L3, -6*EI/L2
	k[5][1], k[5][2], k[5][4], k[5][5] = 6*EI/L2, 2*EI/L, -6*EI/L2, 4*EI/L
	return k
}

// RotationMatrix builds the 6x6 transform from global to local coordinates
// for an element whose local x-axis makes angleDeg with the global x-axis.
func RotationMatrix(angleDeg float64) linalg.Matrix {
	rad := angleDeg * math.Pi / 180.0
	c, s := math.Cos(rad), math.Sin(rad)
	r := linalg.Alloc(6, 6)
	r[0][0], r[0][1] = c, s
	r[1][0], r[1][1] = -s, c
	r[2][2] = 1
	r[3][3], r[3][4] = c, s
	r[4][3], r[4][4] = -s, c
	r[5][5] = 1
	return r
}

// GlobalStiffness returns e's stiffness matrix transformed into the global
// coordinate system: Rᵀ·K_local·R.
func GlobalStiffness(e structure.Element, nodes structure.NodeMap) linalg.Matrix {
	length := e.Length(nodes)
	local := LocalStiffness(e, length)
	rot := RotationMatrix(e.Rotation(nodes))
	global := linalg.Alloc(6, 6)
	linalg.GlobalFromLocal(global, rot, local)
	return global
}
