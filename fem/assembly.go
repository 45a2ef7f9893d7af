// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/VillePe/vefem-sub000/linalg"
	"github.com/VillePe/vefem-sub000/structure"
)

// releaseCount returns the total number of released DOFs across elements;
// each released DOF becomes one additional row/column appended after the
// node DOFs in the joined stiffness matrix (spec.md §4.4).
func releaseCount(elements []structure.Element) int {
	n := 0
	for _, e := range elements {
		n += e.Releases.Count()
	}
	return n
}

// nodeIndex maps a node number to its 0-based joined-DOF-ordering position,
// which is simply number-1 (spec.md §4.4: "node index s = node.number - 1").
// Model prep (§4.1) numbers every node, including synthesized intermediate
// ones, so that this mapping stays dense.
func nodeIndex(nodes structure.NodeMap) map[int]int {
	idx := make(map[int]int, len(nodes))
	for n := range nodes {
		idx[n] = n - 1
	}
	return idx
}

// JoinedStiffness assembles the global stiffness matrix for the whole
// model, appending one extra row/column per released element DOF after
// the supp_count*3 node DOFs (spec.md §4.4, §9). Each released DOF owns
// one slot; the coupling term between two released DOFs of the same
// element lands at the crossing of their two release slots.
func JoinedStiffness(elements []structure.Element, nodes structure.NodeMap) linalg.Matrix {
	suppCount := len(nodes)
	relCount := releaseCount(elements)
	rowWidth := suppCount*dofsPerNode + relCount
	m := linalg.Alloc(rowWidth, rowWidth)
	idx := nodeIndex(nodes)

	relRow := suppCount * dofsPerNode

	for _, elem := range elements {
		g := GlobalStiffness(elem, nodes)
		s := idx[elem.NodeStart]
		e := idx[elem.NodeEnd]
		relBase := relRow

		for i := 0; i < dofsPerNode*2; i++ {
			relCol := relBase
			incrementRelRow := false

			var suppIndex1, iNormalized int
			if i < dofsPerNode {
				suppIndex1, iNormalized = s, i
			} else {
				suppIndex1, iNormalized = e, i-dofsPerNode
			}

			for j := 0; j < dofsPerNode*2; j++ {
				var suppIndex2, jNormalized int
				if j < dofsPerNode {
					suppIndex2, jNormalized = s, j
				} else {
					suppIndex2, jNormalized = e, j-dofsPerNode
				}

				iReleased := elem.Releases.At(i)
				jReleased := elem.Releases.At(j)

				switch {
				case iReleased && jReleased:
					m[relRow][relCol] += g[i][j]
					relCol++
					incrementRelRow = true
				case iReleased:
					m[relRow][suppIndex2*dofsPerNode+jNormalized] += g[i][j]
					incrementRelRow = true
				case jReleased:
					m[suppIndex1*dofsPerNode+iNormalized][relCol] += g[i][j]
					relCol++
				default:
					m[suppIndex1*dofsPerNode+iNormalized][suppIndex2*dofsPerNode+jNormalized] += g[i][j]
				}
			}
			if incrementRelRow {
				relRow++
			}
		}
	}
	return m
}

// ElementDOFIndices returns, for every element (keyed by element number),
// the global joined-vector index that each of its six local DOFs maps to
// - either a node DOF slot or (for a released local DOF) its own release
// slot. Index assignment replays the same left-to-right cursor
// JoinedStiffness uses, so the two stay consistent for a given element
// order.
func ElementDOFIndices(elements []structure.Element, nodes structure.NodeMap) map[int][6]int {
	suppCount := len(nodes)
	idx := nodeIndex(nodes)
	relCol := suppCount * dofsPerNode

	out := make(map[int][6]int, len(elements))
	for _, elem := range elements {
		var d [6]int
		s := idx[elem.NodeStart]
		e := idx[elem.NodeEnd]
		for i := 0; i < dofsPerNode*2; i++ {
			var suppIndex, iNormalized int
			if i < dofsPerNode {
				suppIndex, iNormalized = s, i
			} else {
				suppIndex, iNormalized = e, i-dofsPerNode
			}
			if elem.Releases.At(i) {
				d[i] = relCol
				relCol++
			} else {
				d[i] = suppIndex*dofsPerNode + iNormalized
			}
		}
		out[elem.Number] = d
	}
	return out
}

// JoinedEquivalentLoads assembles the global equivalent-load vector for
// the whole model from already-evaluated per-element equivalent loads
// (the "eq" argument is indexed by element number), following the same
// release-cursor placement as JoinedStiffness.
func JoinedEquivalentLoads(elements []structure.Element, nodes structure.NodeMap, eq map[int][]float64) []float64 {
	suppCount := len(nodes)
	relCount := releaseCount(elements)
	n := suppCount*dofsPerNode + relCount
	v := linalg.AllocVec(n)
	idx := nodeIndex(nodes)

	relCol := suppCount * dofsPerNode

	for _, elem := range elements {
		localEq := eq[elem.Number]
		if localEq == nil {
			continue
		}
		s := idx[elem.NodeStart]
		e := idx[elem.NodeEnd]

		for i := 0; i < dofsPerNode*2; i++ {
			var suppIndex, iNormalized int
			if i < dofsPerNode {
				suppIndex, iNormalized = s, i
			} else {
				suppIndex, iNormalized = e, i-dofsPerNode
			}
			if elem.Releases.At(i) {
				v[relCol] += localEq[i]
				relCol++
			} else {
				v[suppIndex*dofsPerNode+iNormalized] += localEq[i]
			}
		}
	}
	return v
}
