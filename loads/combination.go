// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loads

import (
	"sort"

	"github.com/VillePe/vefem-sub000/loadgroup"
)

// CombinationKind is the limit-state this combination represents
// (spec.md §3). The auto-expand flag lives on LoadCombination itself.
type CombinationKind int

const (
	ULS CombinationKind = iota
	SLSCharacteristic
	SLSFrequent
	SLSQuasiPermanent
)

// LoadCombination names a set of (load name -> factor) pairs to apply on
// top of a model's raw Loads. AutoExpand marks combinations meant to be
// generated by exploding load-group defaults rather than authored by hand
// (spec.md §4.3).
type LoadCombination struct {
	Name          string
	Kind          CombinationKind
	LoadsNFactors map[string]float64
	AutoExpand    bool
}

// NewCombination builds an empty, hand-authored combination.
func NewCombination(name string, kind CombinationKind) LoadCombination {
	return LoadCombination{Name: name, Kind: kind, LoadsNFactors: make(map[string]float64)}
}

// AddLoadAndFactor records the factor applied to every CalculationLoad
// whose Name matches loadName when this combination is expanded.
func (lc *LoadCombination) AddLoadAndFactor(loadName string, factor float64) {
	if lc.LoadsNFactors == nil {
		lc.LoadsNFactors = make(map[string]float64)
	}
	lc.LoadsNFactors[loadName] = factor
}

// CalcCombination is the fully resolved, per-combination load set the fem
// kernel consumes: every referenced load name expanded to its matching
// CalculationLoads with Strength multiplied by the combination's factor.
type CalcCombination struct {
	ParentNumber int
	SubNumber    int
	Name         string
	Kind         CombinationKind
	Loads        []CalculationLoad
}

// groupByName buckets loads by Name, the same shape the corpus's
// get_load_map produces, so GetLoads can fan a single combination entry
// out to every load sharing that name.
func groupByName(loads []CalculationLoad) map[string][]CalculationLoad {
	m := make(map[string][]CalculationLoad)
	for _, l := range loads {
		m[l.Name] = append(m[l.Name], l)
	}
	return m
}

// GetLoads expands combination against originalLoads: for every
// (load_name, factor) pair, every CalculationLoad sharing that name is
// copied with Strength multiplied by factor. Load names absent from
// originalLoads simply contribute nothing, matching the corpus's
// lc_utils::get_loads.
func GetLoads(combination LoadCombination, originalLoads []CalculationLoad) []CalculationLoad {
	loadMap := groupByName(originalLoads)
	var result []CalculationLoad
	for name, factor := range combination.LoadsNFactors {
		for _, l := range loadMap[name] {
			modified := l
			modified.Strength = l.Strength * factor
			result = append(result, modified)
		}
	}
	return result
}

// ExpandByGroup auto-builds a ULS (or SLS) combination's loads_n_factors
// from loadgroup default factors, one entry per load name in groups, at
// the factor of that load's group. Used when
// LoadCombination.AutoExpand is set (spec.md §4.3).
func ExpandByGroup(kind CombinationKind, groups map[string]loadgroup.Group) LoadCombination {
	lc := NewCombination("", kind)
	for loadName, g := range groups {
		lc.AddLoadAndFactor(loadName, factorForKind(kind, g.Factors))
	}
	return lc
}

func factorForKind(kind CombinationKind, f loadgroup.Factors) float64 {
	switch kind {
	case ULS:
		return f.ULS
	case SLSCharacteristic:
		return 1.0
	case SLSFrequent:
		return f.Psi1
	case SLSQuasiPermanent:
		return f.Psi2
	default:
		return 0
	}
}

// ExpandAutoCombinations fans an AutoExpand-flagged LoadCombination out
// into one envelope sub-combination per load in groups whose category is
// not Permanent (two such loads in the same group give two
// sub-combinations): each sub-combination pairs that leading load (at
// kind's factor) with every Permanent-category load (always included, at
// its own factor), the same "several... each with a sub-number" shape
// spec.md §3 describes for auto-expanded combinations. Sub-combinations
// are returned in a deterministic order (sorted by the leading load's
// name) so repeated runs assign the same sub-numbers. If groups contains
// no non-Permanent category, a single combination covering whatever
// Permanent loads exist is returned instead.
func ExpandAutoCombinations(kind CombinationKind, groups map[string]loadgroup.Group) []LoadCombination {
	var permanentNames, variableNames []string
	for name, g := range groups {
		if g.Category == loadgroup.Permanent {
			permanentNames = append(permanentNames, name)
		} else {
			variableNames = append(variableNames, name)
		}
	}
	sort.Strings(permanentNames)
	sort.Strings(variableNames)

	if len(variableNames) == 0 {
		return []LoadCombination{ExpandByGroup(kind, groups)}
	}

	out := make([]LoadCombination, 0, len(variableNames))
	for _, leadName := range variableNames {
		lc := NewCombination("", kind)
		lc.AddLoadAndFactor(leadName, factorForKind(kind, groups[leadName].Factors))
		for _, permName := range permanentNames {
			lc.AddLoadAndFactor(permName, factorForKind(kind, groups[permName].Factors))
		}
		out = append(out, lc)
	}
	return out
}
