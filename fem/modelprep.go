// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"sort"

	"github.com/VillePe/vefem-sub000/geom2d"
	"github.com/VillePe/vefem-sub000/loads"
	"github.com/VillePe/vefem-sub000/structure"
)

// colinearTolerance is the perpendicular distance (mm) within which a node
// is considered to lie on an element's axis and therefore subdivides it
// (spec.md §4.2).
const colinearTolerance = 0.1

// subElementNumberBase is the numbering floor for synthesized sub-elements
// produced by splitting, kept distinct from user-facing element numbers
// (spec.md §4.1).
const subElementNumberBase = 1001

// Model is the full, user-authored input to a calculation: nodes,
// elements and loads before any intermediate-node subdivision.
type Model struct {
	Nodes        structure.NodeMap
	Elements     []structure.Element
	Loads        []loads.Load
	Combinations []loads.LoadCombination
	// ManualSplits requests additional split points (mm from an element's
	// start) beyond the intermediate nodes Prepare discovers on its own
	// (spec.md §4.1). Keyed by the original element number.
	ManualSplits map[int][]float64
}

// PreparedModel is the expanded model the fem kernel actually calculates
// on: every original element that had intermediate nodes (or a requested
// manual split) lying on its span has been split into a chain of shorter
// elements, each a full copy of the original's profile/material, with the
// original's releases kept only at the true outer ends (spec.md §4.2, §9).
// Nodes synthesized to carry a manual split with no coincident existing
// node are added to Nodes.
type PreparedModel struct {
	Nodes    structure.NodeMap
	Elements []structure.Element
}

// Prepare subdivides every element in m at any node (other than its own
// two endpoints) that lies on the element's axis within colinearTolerance,
// plus any position named in m.ManualSplits for that element. Manual split
// positions with no coincident existing node synthesize a new, free-
// support node (spec.md §4.1). Elements with no split pass through
// unchanged, sharing the same Element value and number; split elements'
// sub-elements are renumbered starting at subElementNumberBase, in the
// order they are produced (ascending distance from the original start).
func Prepare(m Model) PreparedModel {
	// Copy so synthesized nodes never leak back into the caller's model.
	nodes := make(structure.NodeMap, len(m.Nodes)+4)
	for num, n := range m.Nodes {
		nodes[num] = n
	}
	// Captured before any synthesis: the numbering formula |nodes|+1+k
	// (spec.md §4.1) counts the original node population, not the
	// growing one.
	originalCount := len(nodes)
	synthesizedSoFar := 0
	nextSubNumber := subElementNumberBase

	var out []structure.Element
	for _, e := range m.Elements {
		chain := splitChain(e, &nodes, originalCount, m.ManualSplits[e.Number], &synthesizedSoFar)
		if len(chain) <= 2 {
			out = append(out, e)
			continue
		}
		for i := 0; i < len(chain)-1; i++ {
			sub := e
			sub.NodeStart = chain[i]
			sub.NodeEnd = chain[i+1]
			if i > 0 {
				sub.Releases.STx, sub.Releases.STz, sub.Releases.SRy = false, false, false
			}
			if i < len(chain)-2 {
				sub.Releases.ETx, sub.Releases.ETz, sub.Releases.ERy = false, false, false
			}
			sub.Number = nextSubNumber
			nextSubNumber++
			out = append(out, sub)
		}
	}
	return PreparedModel{Nodes: nodes, Elements: out}
}

// splitChain returns e's node numbers in travel order from NodeStart to
// NodeEnd, with every other node in *nodes that lies on e's axis, plus
// every position in manualOffsets, inserted in between in ascending
// distance-from-start order (spec.md §4.1's ordering note). Positions
// within colinearTolerance of each other collapse to a single split,
// preferring an existing node over synthesizing a new one. *nodes and
// *synthesizedSoFar are updated in place when a manual split requires a
// brand new node.
func splitChain(e structure.Element, nodes *structure.NodeMap, originalNodeCount int, manualOffsets []float64, synthesizedSoFar *int) []int {
	start := (*nodes)[e.NodeStart]
	end := (*nodes)[e.NodeEnd]
	if start == nil || end == nil {
		return []int{e.NodeStart, e.NodeEnd}
	}
	dir := end.Point.Sub(start.Point)
	length := dir.Norm()
	if length <= 0 {
		return []int{e.NodeStart, e.NodeEnd}
	}
	ux, uz := dir.X/length, dir.Z/length

	var hits []splitHit
	for num, n := range *nodes {
		if num == e.NodeStart || num == e.NodeEnd {
			continue
		}
		rel := n.Point.Sub(start.Point)
		t := rel.X*ux + rel.Z*uz
		if t <= 0 || t >= length {
			continue
		}
		perp := math.Abs(geom2d.Cross2D(geom2d.Point{X: ux, Z: uz}, rel))
		if perp > colinearTolerance {
			continue
		}
		hits = append(hits, splitHit{number: num, t: t})
	}

	for _, offset := range manualOffsets {
		if offset <= 0 || offset >= length {
			continue
		}
		if coincidesWithExisting(hits, offset) {
			continue
		}
		num := originalNodeCount + 1 + *synthesizedSoFar
		*synthesizedSoFar++
		point := start.Point
		point.X += ux * offset
		point.Z += uz * offset
		(*nodes)[num] = &structure.Node{Number: num, Point: point, Support: structure.Free()}
		hits = append(hits, splitHit{number: num, t: offset})
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].t < hits[j].t })

	chain := make([]int, 0, len(hits)+2)
	chain = append(chain, e.NodeStart)
	for _, h := range hits {
		chain = append(chain, h.number)
	}
	chain = append(chain, e.NodeEnd)
	return chain
}

// splitHit is a candidate split position along an element's axis: either
// an existing node that lies on the axis, or a synthesized one created
// for a manual split.
type splitHit struct {
	number int
	t      float64
}

func coincidesWithExisting(hits []splitHit, t float64) bool {
	for _, h := range hits {
		if math.Abs(h.t-t) <= colinearTolerance {
			return true
		}
	}
	return false
}
