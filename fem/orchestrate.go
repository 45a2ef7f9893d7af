// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sync"

	"github.com/VillePe/vefem-sub000/calcsettings"
	"github.com/VillePe/vefem-sub000/expr"
	"github.com/VillePe/vefem-sub000/loadgroup"
	"github.com/VillePe/vefem-sub000/loads"
	"github.com/VillePe/vefem-sub000/results"
	"github.com/VillePe/vefem-sub000/structure"
)

// extractCalculationLoads evaluates every Load against every element it
// is linked to, producing the flat CalculationLoad set the kernel works
// on (spec.md §4.3). ev is cloned once so each call owns an independent
// "L" binding.
func extractCalculationLoads(elements []structure.Element, nodes structure.NodeMap, rawLoads []loads.Load, ev expr.Evaluator) []loads.CalculationLoad {
	ev = ev.Clone()
	var out []loads.CalculationLoad
	for _, el := range elements {
		length := el.Length(nodes)
		for _, l := range rawLoads {
			if !loads.IsLinkedToElement(l, el.Number) {
				continue
			}
			out = append(out, loads.Evaluate(l, el.Number, length, ev)...)
		}
	}
	return out
}

// sampleStations returns the x positions (mm from element start) to
// sample internal fields at, per settings.Interval (spec.md §4.8).
func sampleStations(length float64, interval calcsettings.Interval) []float64 {
	var xs []float64
	step := interval.Value
	if interval.Kind == calcsettings.Relative {
		step = interval.Value * length
	}
	if step <= 0 {
		step = length
	}
	for x := 0.0; x < length; x += step {
		xs = append(xs, x)
	}
	xs = append(xs, length)
	return xs
}

// buildLoadGroups maps every named load to the loadgroup.Group its
// Load.LoadGroup tag resolves to, the shape ExpandByGroup/
// ExpandAutoCombinations consume to auto-expand a combination
// (spec.md §3).
func buildLoadGroups(rawLoads []loads.Load) map[string]loadgroup.Group {
	groups := make(map[string]loadgroup.Group, len(rawLoads))
	for _, l := range rawLoads {
		category := loadgroup.ParseCategory(l.LoadGroup)
		groups[l.Name] = loadgroup.Group{Category: category, Factors: loadgroup.DefaultFactors(category)}
	}
	return groups
}

// calculateOne runs the full kernel (C3-C9) for one already-expanded set
// of CalculationLoads against the prepared model, returning its node and
// element results.
func calculateOne(prepared PreparedModel, calcLoads []loads.CalculationLoad, settings calcsettings.CalcSettings) ([]results.NodeResult, []results.ElementResult) {
	eq := make(map[int][]float64, len(prepared.Elements))
	for _, el := range prepared.Elements {
		length := el.Length(prepared.Nodes)
		linked := LinkedCalculationLoads(el.Number, calcLoads)
		v := ElementLocalEquivalentLoads(el, length, el.Rotation(prepared.Nodes), linked)
		eq[el.Number] = v[:]
	}

	f := JoinedEquivalentLoads(prepared.Elements, prepared.Nodes, eq)
	sol := Solve(prepared.Elements, prepared.Nodes, f, settings)
	reactions := GlobalReactions(sol, f)
	dofIdx := ElementDOFIndices(prepared.Elements, prepared.Nodes)

	idx := nodeIndex(prepared.Nodes)
	var nodeResults []results.NodeResult
	for num := range prepared.Nodes {
		i := idx[num] * dofsPerNode
		nodeResults = append(nodeResults, results.NodeResult{
			NodeNumber: num,
			Dx:         sol.Displacements[i],
			Dz:         sol.Displacements[i+1],
			Ry:         sol.Displacements[i+2],
			Rx:         reactions[i],
			Rz:         reactions[i+1],
			Rm:         reactions[i+2],
		})
	}

	var elementResults []results.ElementResult
	for _, el := range prepared.Elements {
		length := el.Length(prepared.Nodes)
		rotation := el.Rotation(prepared.Nodes)
		linked := LinkedCalculationLoads(el.Number, calcLoads)
		state := RecoverElementState(el, prepared.Nodes, sol.Displacements, dofIdx[el.Number], linked)

		var stations []results.Station
		for _, x := range sampleStations(length, settings.Interval) {
			stations = append(stations, results.Station{
				X: x,
				N: AxialAt(x, state, rotation, linked),
				V: ShearAt(x, state, rotation, linked),
				M: MomentAt(x, state, rotation, linked),
				W: DeflectionAt(x, el, state, rotation, linked),
				U: AxialDeformationAt(x, el, state, rotation, linked),
			})
		}
		elementResults = append(elementResults, results.ElementResult{ElementNumber: el.Number, Stations: stations})
	}

	return nodeResults, elementResults
}

// Calculate runs the kernel over every load combination in model (or, if
// no combinations are given, once over the raw loads as a single
// pseudo-combination numbered 1/0). Combinations are evaluated
// concurrently when settings.CalcThreaded is set, one goroutine per
// combination each owning its own matrices (spec.md §5); results are
// joined and sorted deterministically by (parent, sub) before returning.
func Calculate(model Model, ev expr.Evaluator, settings calcsettings.CalcSettings) results.Results {
	prepared := Prepare(model)
	allCalcLoads := extractCalculationLoads(prepared.Elements, prepared.Nodes, model.Loads, ev)

	type job struct {
		parent, sub int
		name        string
		calcLoads   []loads.CalculationLoad
	}

	var jobs []job
	if len(model.Combinations) == 0 {
		jobs = append(jobs, job{parent: 1, sub: 0, name: "", calcLoads: allCalcLoads})
	} else {
		groups := buildLoadGroups(model.Loads)
		for i, lc := range model.Combinations {
			if !lc.AutoExpand {
				jobs = append(jobs, job{parent: i + 1, sub: 0, name: lc.Name, calcLoads: loads.GetLoads(lc, allCalcLoads)})
				continue
			}
			for sub, expanded := range loads.ExpandAutoCombinations(lc.Kind, groups) {
				jobs = append(jobs, job{parent: i + 1, sub: sub, name: lc.Name, calcLoads: loads.GetLoads(expanded, allCalcLoads)})
			}
		}
	}

	var out results.Results
	var mu sync.Mutex
	run := func(j job) {
		nodeRes, elemRes := calculateOne(prepared, j.calcLoads, settings)
		mu.Lock()
		out.Combinations = append(out.Combinations, results.CombinationResult{
			ParentNumber: j.parent, SubNumber: j.sub, Name: j.name,
			Nodes: nodeRes, Elements: elemRes,
		})
		mu.Unlock()
	}

	if settings.CalcThreaded {
		var wg sync.WaitGroup
		for _, j := range jobs {
			wg.Add(1)
			go func(j job) {
				defer wg.Done()
				run(j)
			}(j)
		}
		wg.Wait()
	} else {
		for _, j := range jobs {
			run(j)
		}
	}

	out.Sort()
	return out
}
