// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package structure

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/VillePe/vefem-sub000/geom2d"
	"github.com/VillePe/vefem-sub000/materials"
	"github.com/VillePe/vefem-sub000/profile"
)

// Element is a prismatic line element (beam/column) connecting two nodes.
// Its length and rotation derive from the current node coordinates; it
// holds node numbers rather than node pointers so the NodeMap remains the
// single owner of node storage (spec.md §9).
type Element struct {
	Number    int
	NodeStart int
	NodeEnd   int
	Profile   profile.Profile
	Material  materials.Material
	Releases  Release
}

// Length returns the element's length in mm, looking up its endpoints in
// nodes. Panics (a programmer-error invariant violation, spec.md §7) if
// either node is missing or the endpoints coincide.
func (e Element) Length(nodes NodeMap) float64 {
	ns, ok := nodes[e.NodeStart]
	if !ok {
		chk.Panic("element %d: start node %d not found", e.Number, e.NodeStart)
	}
	ne, ok := nodes[e.NodeEnd]
	if !ok {
		chk.Panic("element %d: end node %d not found", e.Number, e.NodeEnd)
	}
	l := ne.Point.Sub(ns.Point).Norm()
	if l <= 0 {
		chk.Panic("element %d: zero length (coincident endpoints)", e.Number)
	}
	return l
}

// Rotation returns the element's direction angle in degrees, measured
// counter-clockwise from +x, i.e. the angle of (endPoint - startPoint).
func (e Element) Rotation(nodes NodeMap) float64 {
	ns, ne := nodes[e.NodeStart], nodes[e.NodeEnd]
	d := ne.Point.Sub(ns.Point)
	return math.Atan2(d.Z, d.X) * 180.0 / math.Pi
}

// StartPoint returns the element's start node coordinates.
func (e Element) StartPoint(nodes NodeMap) geom2d.Point { return nodes[e.NodeStart].Point }

// EndPoint returns the element's end node coordinates.
func (e Element) EndPoint(nodes NodeMap) geom2d.Point { return nodes[e.NodeEnd].Point }
