// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/VillePe/vefem-sub000/linalg"
	"github.com/VillePe/vefem-sub000/loads"
	"github.com/VillePe/vefem-sub000/structure"
)

// GlobalReactions computes R = K*u - f for the whole joined system
// (spec.md §4.6, C7). Only the entries at locked support DOFs are
// meaningful reaction forces; entries at free DOFs are ~0 up to solver
// tolerance.
func GlobalReactions(sol Solution, f []float64) []float64 {
	n := len(sol.Displacements)
	r := linalg.AllocVec(n)
	linalg.MulVec(r, 1, sol.Stiffness, sol.Displacements)
	for i := range r {
		r[i] -= f[i]
	}
	return r
}

// ElementState is the per-element local-coordinate state the internal
// force/deflection/axial-deformation reconstruction (C8) reads from: the
// node displacements (and release rotations) transformed into the
// element's own axis, and the element's own local end-force vector
// recovered from K_local*u_local - f_local_equivalent.
type ElementState struct {
	Displacements [6]float64
	Forces        [6]float64
}

// RecoverElementState builds e's local displacement and end-force vectors
// from the global solution. dofIdx is e's six global DOF indices (from
// ElementDOFIndices); linked is the CalculationLoads already filtered to
// this element.
func RecoverElementState(e structure.Element, nodes structure.NodeMap, u []float64, dofIdx [6]int, linked []loads.CalculationLoad) ElementState {
	length := e.Length(nodes)
	rot := RotationMatrix(e.Rotation(nodes))
	local := LocalStiffness(e, length)

	var uGlobal [6]float64
	for i, gi := range dofIdx {
		uGlobal[i] = u[gi]
	}

	var uLocal [6]float64
	for i := 0; i < 6; i++ {
		var s float64
		for j := 0; j < 6; j++ {
			s += rot[i][j] * uGlobal[j]
		}
		uLocal[i] = s
	}

	fEquivLocal := ElementLocalEquivalentLoads(e, length, e.Rotation(nodes), linked)

	var force [6]float64
	for i := 0; i < 6; i++ {
		var s float64
		for j := 0; j < 6; j++ {
			s += local[i][j] * uLocal[j]
		}
		force[i] = s - fEquivLocal[i]
	}

	return ElementState{Displacements: uLocal, Forces: force}
}
