// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loads models user-authored loads, their binding to elements via
// an element-number selector grammar, their reduction to evaluated
// CalculationLoads, and load combinations (spec.md §3, §4.3, §6).
package loads

import (
	"strconv"
	"strings"
)

// Type distinguishes how a Load is handled during equivalent-load
// generation and internal-force reconstruction (spec.md §4.3).
type Type int

const (
	Point Type = iota
	Line
	Triangular
	Rotational
	// Trapezoid is split into a Line + Triangular pair before calculation
	// (spec.md §4.3) and never reaches CalculationLoad directly.
	Trapezoid
	Strain
	Thermal
)

// Load is a user-authored load: its offsets, strength and element
// selector are formula strings evaluated per-element against the bound
// evaluator (spec.md §4.3's "L" rebinding).
type Load struct {
	Name string
	// ElementNumbers is the element-selector grammar string: comma
	// separated tokens, each an integer, an inclusive "A..B" range, or
	// -1 meaning "every element" (spec.md §4.3/§9).
	ElementNumbers string
	Type           Type
	OffsetStart    string
	OffsetEnd      string
	// Strength is a formula string. For Trapezoid loads, start and end
	// values are given separated by ';'.
	Strength string
	Rotation float64
	Comment  string
	// IsMovingLoad marks the load as eligible for on/off-element
	// toggling when auto-expanding load combinations (spec.md §4.3).
	IsMovingLoad  bool
	MovingPercent float64
	// LoadGroup names the loadgroup.Category this load belongs to (e.g.
	// "permanent", "live_a", "snow"), consulted only when a combination
	// referencing this load has AutoExpand set (spec.md §3).
	LoadGroup string
}

// NewPointLoad builds a point load with the teacher's conventional
// default rotation of straight-down (-90 degrees, global).
func NewPointLoad(name, elementNumbers, offsetStart, strength string) Load {
	return Load{Name: name, ElementNumbers: elementNumbers, Type: Point,
		OffsetStart: offsetStart, OffsetEnd: offsetStart, Strength: strength, Rotation: -90}
}

// NewLineLoad builds a uniformly distributed load between OffsetStart and
// OffsetEnd.
func NewLineLoad(name, elementNumbers, offsetStart, offsetEnd, strength string, rotation float64) Load {
	return Load{Name: name, ElementNumbers: elementNumbers, Type: Line,
		OffsetStart: offsetStart, OffsetEnd: offsetEnd, Strength: strength, Rotation: rotation}
}

// NewTriangularLoad builds a linearly varying load with its peak Strength
// at OffsetStart, falling to 0 at OffsetEnd; an OffsetStart larger than
// OffsetEnd puts the peak at the right (spec.md §4.3).
func NewTriangularLoad(name, elementNumbers, offsetStart, offsetEnd, strength string, rotation float64) Load {
	return Load{Name: name, ElementNumbers: elementNumbers, Type: Triangular,
		OffsetStart: offsetStart, OffsetEnd: offsetEnd, Strength: strength, Rotation: rotation}
}

// NewTrapezoidLoad builds a load whose distribution is split into a Line
// and Triangular pair before calculation (spec.md §4.3).
func NewTrapezoidLoad(name, elementNumbers, offsetStart, offsetEnd, strength string, rotation float64) Load {
	return Load{Name: name, ElementNumbers: elementNumbers, Type: Trapezoid,
		OffsetStart: offsetStart, OffsetEnd: offsetEnd, Strength: strength, Rotation: rotation}
}

// NewRotationalLoad builds a concentrated end moment at OffsetStart.
func NewRotationalLoad(name, elementNumbers, offsetStart, strength string) Load {
	return Load{Name: name, ElementNumbers: elementNumbers, Type: Rotational,
		OffsetStart: offsetStart, OffsetEnd: offsetStart, Strength: strength}
}

// NewStrainLoad builds a prescribed end-shortening load (spec.md §9: Strain
// is interpreted as a length-unit end shortening, not a dimensionless
// strain).
func NewStrainLoad(name, elementNumbers, strength string) Load {
	return Load{Name: name, ElementNumbers: elementNumbers, Type: Strain, Strength: strength}
}

// NewThermalLoad builds a uniform thermal load (combined with the
// element's material Alpha coefficient during equivalent-load generation).
func NewThermalLoad(name, elementNumbers, strength string) Load {
	return Load{Name: name, ElementNumbers: elementNumbers, Type: Thermal, Strength: strength}
}

// ExtractElementNumbers parses the element-selector grammar: comma
// separated tokens, each an integer, an inclusive "A..B" range, or -1
// meaning "every element". Malformed tokens are silently skipped, matching
// the corpus's best-effort parsing policy (spec.md §7).
func ExtractElementNumbers(selector string) []int {
	var result []int
	for _, tok := range strings.Split(selector, ",") {
		if tok == "" {
			continue
		}
		if strings.Contains(tok, "..") {
			parts := strings.SplitN(tok, "..", 2)
			if len(parts) != 2 {
				continue
			}
			begin, errB := strconv.Atoi(strings.TrimSpace(parts[0]))
			end, errE := strconv.Atoi(strings.TrimSpace(parts[1]))
			if errB != nil || errE != nil {
				continue
			}
			for i := begin; i <= end; i++ {
				result = append(result, i)
			}
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			continue
		}
		result = append(result, n)
	}
	return result
}

// IsLinkedToElement reports whether load applies to elementNumber: either
// the selector contains the wildcard -1, or it names elementNumber
// explicitly.
func IsLinkedToElement(load Load, elementNumber int) bool {
	for _, n := range ExtractElementNumbers(load.ElementNumbers) {
		if n == -1 || n == elementNumber {
			return true
		}
	}
	return false
}
