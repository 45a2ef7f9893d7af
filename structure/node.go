// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package structure defines the core model types of the analysis: Node,
// Support, Release and Element. Elements refer to nodes by number rather
// than by pointer, so the node map owns all node storage (spec.md §9).
package structure

import "github.com/VillePe/vefem-sub000/geom2d"

// Support carries the three lock flags and three spring constants for a
// node's translational/rotational degrees of freedom.
type Support struct {
	Tx, Tz, Ry bool    // lock flags: true => prescribed zero displacement
	Kx, Kz, Kr float64 // spring constants, >= 0; N/mm or N*mm/rad
}

// Free returns an unrestrained support (no locks, no springs), used for
// synthesized intermediate nodes.
func Free() Support { return Support{} }

// Fixed returns a fully locked support.
func Fixed() Support { return Support{Tx: true, Tz: true, Ry: true} }

// Hinged returns a pinned support (translations locked, rotation free).
func Hinged() Support { return Support{Tx: true, Tz: true} }

// Node is a point in the 2D model, identified by its Number.
type Node struct {
	Number  int
	Point   geom2d.Point
	Support Support
}

// NodeMap is the ordered-by-key store of nodes keyed by node number.
type NodeMap map[int]*Node
