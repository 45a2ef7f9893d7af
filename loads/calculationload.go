// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loads

import (
	"strings"

	"github.com/VillePe/vefem-sub000/expr"
)

// CalculationType is the reduced set of load shapes the fem kernel
// actually builds equivalent loads for. Trapezoid loads are split into a
// Line and a Triangular CalculationLoad before reaching this type
// (spec.md §4.3).
type CalculationType int

const (
	CPoint CalculationType = iota
	CLine
	CTriangular
	CRotational
	CStrain
	CThermal
)

// CalculationLoad is a Load fully evaluated against one element: its
// formula strings resolved to numbers with "L" bound to that element's
// length.
type CalculationLoad struct {
	Name          string
	Type          CalculationType
	OffsetStart   float64
	OffsetEnd     float64
	Strength      float64
	Rotation      float64
	ElementNumber int
}

// Length returns the CalculationLoad's span along the element.
func (c CalculationLoad) Length() float64 {
	l := c.OffsetEnd - c.OffsetStart
	if l < 0 {
		return -l
	}
	return l
}

func toCalcType(t Type) CalculationType {
	switch t {
	case Point:
		return CPoint
	case Line:
		return CLine
	case Triangular:
		return CTriangular
	case Rotational:
		return CRotational
	case Strain:
		return CStrain
	case Thermal:
		return CThermal
	default:
		return CLine
	}
}

// Evaluate resolves load's formula strings against an element of the
// given length, evaluator ev (with "L" rebound to elementLength), and
// elementNumber. Trapezoid loads are split into a Line + Triangular pair;
// every other type evaluates to exactly one CalculationLoad. Formula
// evaluation errors fall back to 0 (spec.md §7's best-guess policy).
func Evaluate(load Load, elementNumber int, elementLength float64, ev expr.Evaluator) []CalculationLoad {
	ev.SetVar("L", elementLength)

	offStart := evalOrZero(ev, load.OffsetStart, 0)
	offEnd := evalOrZero(ev, load.OffsetEnd, elementLength)

	if load.Type == Trapezoid {
		return evaluateTrapezoid(load, elementNumber, offStart, offEnd, ev)
	}

	strength := evalOrZero(ev, load.Strength, 0)
	return []CalculationLoad{{
		Name:          load.Name,
		Type:          toCalcType(load.Type),
		OffsetStart:   offStart,
		OffsetEnd:     offEnd,
		Strength:      strength,
		Rotation:      load.Rotation,
		ElementNumber: elementNumber,
	}}
}

func evalOrZero(ev expr.Evaluator, formula string, fallback float64) float64 {
	if formula == "" {
		return fallback
	}
	v, err := ev.Eval(formula)
	if err != nil {
		return 0
	}
	return v
}

// evaluateTrapezoid splits a trapezoid load's "start;end" strength into a
// uniform Line component plus a Triangular component carrying the
// remaining linear variation, oriented so the triangle's peak sits at
// whichever end has the larger strength (mirrors the corpus's
// split_trapezoid_load).
func evaluateTrapezoid(load Load, elementNumber int, offStart, offEnd float64, ev expr.Evaluator) []CalculationLoad {
	parts := strings.SplitN(load.Strength, ";", 2)
	startStrength := evalOrZero(ev, strings.TrimSpace(parts[0]), 0)
	endStrength := startStrength
	if len(parts) == 2 {
		endStrength = evalOrZero(ev, strings.TrimSpace(parts[1]), 0)
	}

	var lineStrength, triStrength float64
	var triOffsetStart, triOffsetEnd float64
	if startStrength > endStrength {
		triStrength = startStrength - endStrength
		lineStrength = startStrength - triStrength
		triOffsetStart, triOffsetEnd = offStart, offEnd
	} else {
		triStrength = endStrength - startStrength
		lineStrength = endStrength - triStrength
		triOffsetStart, triOffsetEnd = offEnd, offStart
	}

	return []CalculationLoad{
		{Name: load.Name, Type: CLine, OffsetStart: offStart, OffsetEnd: offEnd,
			Strength: lineStrength, Rotation: load.Rotation, ElementNumber: elementNumber},
		{Name: load.Name, Type: CTriangular, OffsetStart: triOffsetStart, OffsetEnd: triOffsetEnd,
			Strength: triStrength, Rotation: load.Rotation, ElementNumber: elementNumber},
	}
}
