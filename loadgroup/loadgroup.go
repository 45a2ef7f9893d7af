// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loadgroup defines the categorical load-group tags and their
// default ULS/SLS combination factors, used when a LoadCombination is set
// to auto-expand (spec.md §3, "Combination expansion").
package loadgroup

// Category is a categorical load-group tag.
type Category int

const (
	Permanent Category = iota
	LiveA
	LiveB
	LiveC
	LiveD
	LiveE
	LiveF
	LiveG
	LiveH
	Snow
	Wind
	Thermal
)

// Factors holds the partial-factor and combination-factor set for a load
// group, mirroring the factor-table idiom used for NSCP-style load
// combinations.
type Factors struct {
	ULS     float64 // ultimate limit state partial factor, favourable load cases already excluded
	Psi0    float64 // combination factor for the leading variable action
	Psi1    float64 // frequent-value factor (SLSf)
	Psi2    float64 // quasi-permanent factor (SLSqp)
}

// Group ties a category to its factor set.
type Group struct {
	Category Category
	Factors  Factors
}

// defaultFactors is the built-in factor table, one row per category. These
// are representative Eurocode-style defaults; a real deployment supplies
// its own table via Group.
var defaultFactors = map[Category]Factors{
	Permanent: {ULS: 1.35, Psi0: 1.0, Psi1: 1.0, Psi2: 1.0},
	LiveA:     {ULS: 1.5, Psi0: 0.7, Psi1: 0.5, Psi2: 0.3},
	LiveB:     {ULS: 1.5, Psi0: 0.7, Psi1: 0.5, Psi2: 0.3},
	LiveC:     {ULS: 1.5, Psi0: 0.7, Psi1: 0.7, Psi2: 0.6},
	LiveD:     {ULS: 1.5, Psi0: 0.7, Psi1: 0.7, Psi2: 0.6},
	LiveE:     {ULS: 1.5, Psi0: 1.0, Psi1: 0.9, Psi2: 0.8},
	LiveF:     {ULS: 1.5, Psi0: 0.7, Psi1: 0.7, Psi2: 0.6},
	LiveG:     {ULS: 1.5, Psi0: 0.7, Psi1: 0.5, Psi2: 0.3},
	LiveH:     {ULS: 1.5, Psi0: 0.0, Psi1: 0.0, Psi2: 0.0},
	Snow:      {ULS: 1.5, Psi0: 0.7, Psi1: 0.5, Psi2: 0.2},
	Wind:      {ULS: 1.5, Psi0: 0.6, Psi1: 0.2, Psi2: 0.0},
	Thermal:   {ULS: 1.5, Psi0: 0.6, Psi1: 0.5, Psi2: 0.0},
}

// DefaultFactors returns the built-in factor set for a category.
func DefaultFactors(c Category) Factors {
	return defaultFactors[c]
}

// categoryNames maps the serialized load-group tag (Load.LoadGroup / the
// JSON boundary's "load_group" string) to its Category, mirroring the
// corpus's named LoadGroup constants (PERMANENT, CLASS_A..CLASS_H, SNOW,
// WIND, THERMAL).
var categoryNames = map[string]Category{
	"permanent": Permanent,
	"live_a":    LiveA,
	"live_b":    LiveB,
	"live_c":    LiveC,
	"live_d":    LiveD,
	"live_e":    LiveE,
	"live_f":    LiveF,
	"live_g":    LiveG,
	"live_h":    LiveH,
	"snow":      Snow,
	"wind":      Wind,
	"thermal":   Thermal,
}

// ParseCategory resolves a load-group tag string to its Category. Unknown
// or empty tags default to Permanent, the corpus's always-included,
// never-companion-factored group (spec.md §7's best-effort parsing
// policy).
func ParseCategory(tag string) Category {
	if c, ok := categoryNames[tag]; ok {
		return c
	}
	return Permanent
}
