// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/VillePe/vefem-sub000/geom2d"
	"github.com/VillePe/vefem-sub000/structure"
)

func TestPrepareSplitsAtIntermediateNode(t *testing.T) {
	chk.PrintTitle("Prepare splits at a coincident intermediate node")

	nodes := structure.NodeMap{
		1: {Number: 1, Point: geom2d.Point{X: 0, Z: 0}, Support: structure.Hinged()},
		2: {Number: 2, Point: geom2d.Point{X: 4000, Z: 0}, Support: structure.Free()},
		3: {Number: 3, Point: geom2d.Point{X: 8000, Z: 0}, Support: structure.Hinged()},
	}
	el := steelRectBeam(1, 1, 3)
	model := Model{Nodes: nodes, Elements: []structure.Element{el}}

	prepared := Prepare(model)
	if len(prepared.Elements) != 2 {
		t.Fatalf("expected 2 sub-elements, got %d", len(prepared.Elements))
	}
	if prepared.Elements[0].Number < subElementNumberBase || prepared.Elements[1].Number < subElementNumberBase {
		t.Fatalf("sub-elements must be renumbered >= %d, got %d, %d",
			subElementNumberBase, prepared.Elements[0].Number, prepared.Elements[1].Number)
	}
	if prepared.Elements[0].NodeStart != 1 || prepared.Elements[0].NodeEnd != 2 {
		t.Fatalf("first sub-element should run 1->2, got %d->%d",
			prepared.Elements[0].NodeStart, prepared.Elements[0].NodeEnd)
	}
	if prepared.Elements[1].NodeStart != 2 || prepared.Elements[1].NodeEnd != 3 {
		t.Fatalf("second sub-element should run 2->3, got %d->%d",
			prepared.Elements[1].NodeStart, prepared.Elements[1].NodeEnd)
	}
	if len(prepared.Nodes) != 3 {
		t.Fatalf("no new node should be synthesized, got %d nodes", len(prepared.Nodes))
	}
}

func TestPrepareManualSplitSynthesizesNode(t *testing.T) {
	chk.PrintTitle("Prepare synthesizes a node for a manual split with no coincident node")

	nodes := structure.NodeMap{
		1: {Number: 1, Point: geom2d.Point{X: 0, Z: 0}, Support: structure.Hinged()},
		2: {Number: 2, Point: geom2d.Point{X: 4000, Z: 0}, Support: structure.Hinged()},
	}
	el := steelRectBeam(1, 1, 2)
	model := Model{
		Nodes:        nodes,
		Elements:     []structure.Element{el},
		ManualSplits: map[int][]float64{1: {1000}},
	}

	prepared := Prepare(model)
	if len(prepared.Nodes) != 3 {
		t.Fatalf("expected 1 synthesized node, got %d total nodes", len(prepared.Nodes))
	}
	synth, ok := prepared.Nodes[3]
	if !ok {
		t.Fatal("expected synthesized node numbered |nodes|+1 = 3")
	}
	chk.Scalar(t, "synthesized node x", 1e-9, synth.Point.X, 1000)
	if synth.Support.Tx || synth.Support.Tz || synth.Support.Ry {
		t.Fatal("synthesized node must carry a free support")
	}
	if len(prepared.Elements) != 2 {
		t.Fatalf("expected 2 sub-elements, got %d", len(prepared.Elements))
	}
}

func TestPrepareManualSplitReusesCoincidentNode(t *testing.T) {
	chk.PrintTitle("Prepare reuses an existing node for a manual split that lands on it")

	nodes := structure.NodeMap{
		1: {Number: 1, Point: geom2d.Point{X: 0, Z: 0}, Support: structure.Hinged()},
		2: {Number: 2, Point: geom2d.Point{X: 2000, Z: 0}, Support: structure.Free()},
		3: {Number: 3, Point: geom2d.Point{X: 4000, Z: 0}, Support: structure.Hinged()},
	}
	el := steelRectBeam(1, 1, 3)
	model := Model{
		Nodes:        nodes,
		Elements:     []structure.Element{el},
		ManualSplits: map[int][]float64{1: {2000}},
	}

	prepared := Prepare(model)
	if len(prepared.Nodes) != 3 {
		t.Fatalf("manual split coincident with node 2 must not synthesize a new node, got %d nodes", len(prepared.Nodes))
	}
}

func TestPrepareUnsplitElementKeepsNumber(t *testing.T) {
	chk.PrintTitle("Prepare leaves an unsplit element's number untouched")

	nodes := simplySupported(4000)
	el := steelRectBeam(7, 1, 2)
	model := Model{Nodes: nodes, Elements: []structure.Element{el}}

	prepared := Prepare(model)
	if len(prepared.Elements) != 1 || prepared.Elements[0].Number != 7 {
		t.Fatalf("expected element 7 unchanged, got %+v", prepared.Elements)
	}
}
