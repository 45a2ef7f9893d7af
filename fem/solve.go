// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/VillePe/vefem-sub000/calcsettings"
	"github.com/VillePe/vefem-sub000/linalg"
	"github.com/VillePe/vefem-sub000/structure"
)

// injectSprings adds each node's spring stiffnesses onto the diagonal of
// the joined stiffness matrix at that node's own DOFs, leaving locked
// (rigid) DOFs to be removed entirely by free-DOF extraction instead
// (spec.md §4.5).
func injectSprings(k linalg.Matrix, nodes structure.NodeMap) {
	idx := nodeIndex(nodes)
	numbers := make([]int, 0, len(nodes))
	for n := range nodes {
		numbers = append(numbers, n)
	}
	for _, num := range numbers {
		n := nodes[num]
		i := idx[num] * dofsPerNode
		if !n.Support.Tx {
			k[i][i] += n.Support.Kx
		}
		if !n.Support.Tz {
			k[i+1][i+1] += n.Support.Kz
		}
		if !n.Support.Ry {
			k[i+2][i+2] += n.Support.Kr
		}
	}
}

// removeSprings subtracts the spring stiffnesses injectSprings added, so
// the matrix returned to the caller is the plain joined stiffness matrix
// reaction recovery (GlobalReactions) expects (spec.md §4.5 step 6).
func removeSprings(k linalg.Matrix, nodes structure.NodeMap) {
	idx := nodeIndex(nodes)
	numbers := make([]int, 0, len(nodes))
	for n := range nodes {
		numbers = append(numbers, n)
	}
	for _, num := range numbers {
		n := nodes[num]
		i := idx[num] * dofsPerNode
		if !n.Support.Tx {
			k[i][i] -= n.Support.Kx
		}
		if !n.Support.Tz {
			k[i+1][i+1] -= n.Support.Kz
		}
		if !n.Support.Ry {
			k[i+2][i+2] -= n.Support.Kr
		}
	}
}

// freeDOFIndices returns the row/column indices of the joined DOF vector
// that are NOT locked by a support, in ascending order. Release DOFs
// (appended after the suppCount*3 node DOFs) are always free.
func freeDOFIndices(nodes structure.NodeMap, totalDOFs int) []int {
	idx := nodeIndex(nodes)
	locked := make(map[int]bool, len(nodes)*dofsPerNode)
	for num, n := range nodes {
		i := idx[num] * dofsPerNode
		if n.Support.Tx {
			locked[i] = true
		}
		if n.Support.Tz {
			locked[i+1] = true
		}
		if n.Support.Ry {
			locked[i+2] = true
		}
	}
	free := make([]int, 0, totalDOFs)
	for i := 0; i < totalDOFs; i++ {
		if !locked[i] {
			free = append(free, i)
		}
	}
	return free
}

// Solution is the resolved DOF state for one load combination: the full
// displacement vector (zero at locked DOFs) and the joined stiffness
// matrix used to obtain it, needed downstream for reaction recovery.
type Solution struct {
	Stiffness     linalg.Matrix
	Displacements []float64
}

// Solve builds the joined stiffness matrix (with spring injection),
// extracts the free-DOF submatrix/subvector, solves for the unknown
// displacements and scatters them back into a full-length vector. The
// solver is Cholesky when the free-DOF count is above
// settings.Threshold(), direct inversion otherwise (spec.md §4.5). If the
// Cholesky factorization fails (non-SPD, e.g. a mechanism), it falls back
// to direct inversion.
func Solve(elements []structure.Element, nodes structure.NodeMap, f []float64, settings calcsettings.CalcSettings) Solution {
	k := JoinedStiffness(elements, nodes)
	injectSprings(k, nodes)

	n := len(k)
	free := freeDOFIndices(nodes, n)
	subK, subF := linalg.Extract(k, f, free)

	var subU []float64
	if len(free) > settings.Threshold() {
		if chol, err := linalg.CholeskyFactor(subK); err == nil {
			subU = chol.Solve(subF)
		}
	}
	if subU == nil {
		inv := linalg.Alloc(len(free), len(free))
		if _, err := linalg.Invert(inv, subK, 1e-14); err == nil {
			subU = linalg.AllocVec(len(free))
			linalg.MulVec(subU, 1, inv, subF)
		} else {
			subU = linalg.AllocVec(len(free))
		}
	}

	u := linalg.Scatter(n, free, subU)
	removeSprings(k, nodes)
	return Solution{Stiffness: k, Displacements: u}
}
