// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loads

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestExtractElementNumbers(t *testing.T) {
	chk.PrintTitle("ExtractElementNumbers")

	r1 := ExtractElementNumbers("1,2,3")
	chk.Ints(t, "1,2,3", r1, []int{1, 2, 3})

	r2 := ExtractElementNumbers("1,2,6,8")
	chk.Ints(t, "1,2,6,8", r2, []int{1, 2, 6, 8})

	r3 := ExtractElementNumbers("1,3..6,8")
	chk.Ints(t, "1,3..6,8", r3, []int{1, 3, 4, 5, 6, 8})

	r4 := ExtractElementNumbers("-1")
	chk.Ints(t, "-1", r4, []int{-1})
}

func TestIsLinkedToElement(t *testing.T) {
	wildcard := Load{ElementNumbers: "-1"}
	if !IsLinkedToElement(wildcard, 42) {
		t.Fatal("wildcard selector should link to every element")
	}

	explicit := Load{ElementNumbers: "1,3..6,8"}
	if !IsLinkedToElement(explicit, 4) {
		t.Fatal("element 4 should be within range 3..6")
	}
	if IsLinkedToElement(explicit, 2) {
		t.Fatal("element 2 should not be linked")
	}
}

func TestGetLoadsFactorExpansion(t *testing.T) {
	chk.PrintTitle("GetLoads factor expansion")

	originalLoads := []CalculationLoad{
		{Name: "g_oma", Type: CLine, Strength: 5},
		{Name: "g", Type: CLine, Strength: 10, ElementNumber: 1},
		{Name: "g", Type: CLine, Strength: 20, ElementNumber: 2},
		{Name: "q", Type: CLine, Strength: 10},
		{Name: "qs", Type: CLine, Strength: 10},
	}

	lc := NewCombination("Load combination 1", ULS)
	lc.AddLoadAndFactor("g_oma", 1.15)
	lc.AddLoadAndFactor("g", 1.15)
	lc.AddLoadAndFactor("q", 1.05)
	lc.AddLoadAndFactor("qs", 1.5)

	result := GetLoads(lc, originalLoads)

	var gOma, gElem1, gElem2, q, qs float64
	for _, l := range result {
		switch {
		case l.Name == "g_oma":
			gOma = l.Strength
		case l.Name == "g" && l.ElementNumber == 1:
			gElem1 = l.Strength
		case l.Name == "g" && l.ElementNumber == 2:
			gElem2 = l.Strength
		case l.Name == "q":
			q = l.Strength
		case l.Name == "qs":
			qs = l.Strength
		}
	}

	chk.Scalar(t, "g_oma", 1e-12, gOma, 5.75)
	chk.Scalar(t, "g (elem 1)", 1e-12, gElem1, 11.5)
	chk.Scalar(t, "g (elem 2)", 1e-12, gElem2, 23.0)
	chk.Scalar(t, "q", 1e-12, q, 10.5)
	chk.Scalar(t, "qs", 1e-12, qs, 15.0)
}
