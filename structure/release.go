// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package structure

// Release marks which of an element's own end DOFs are free relative to
// the node they connect to. A released DOF becomes an additional unknown
// appended to the global DOF vector (spec.md §3/§4.4).
type Release struct {
	STx, STz, SRy bool // start: axial, transverse, rotational
	ETx, ETz, ERy bool // end: axial, transverse, rotational
}

// None is a fully continuous (no release) connection.
func None() Release { return Release{} }

// PinnedStart releases only the start rotational DOF (a moment release /
// "pin" at the element's start).
func PinnedStart() Release { return Release{SRy: true} }

// PinnedEnd releases only the end rotational DOF.
func PinnedEnd() Release { return Release{ERy: true} }

// Count returns the number of true flags.
func (r Release) Count() int {
	n := 0
	for _, v := range r.bits() {
		if v {
			n++
		}
	}
	return n
}

// bits returns the six release flags in the fixed iteration order
// (s_tx, s_tz, s_ry, e_tx, e_tz, e_ry) that the global assembly (spec.md
// §4.4, §9) relies on for its release-row cursor.
func (r Release) bits() [6]bool {
	return [6]bool{r.STx, r.STz, r.SRy, r.ETx, r.ETz, r.ERy}
}

// At returns the release flag at local DOF index i (0..5), in the fixed
// order (s_tx, s_tz, s_ry, e_tx, e_tz, e_ry).
func (r Release) At(i int) bool {
	return r.bits()[i]
}
