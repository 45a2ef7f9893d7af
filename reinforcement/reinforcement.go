// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reinforcement holds the canonical rebar model used by concrete
// profiles. The original source carried two overlapping reinforcement
// modules (reinforcement::reinforcement and reinforcement::element_reinforcement);
// this package collapses them into a single row-based representation.
package reinforcement

// Distribution describes how a rebar row's bars are spread across the
// section width.
type Distribution int

const (
	// Even spaces the bars evenly across the row's available width.
	Even Distribution = iota
	// Custom uses explicit per-bar offsets (Offsets on RebarRow).
	Custom
)

// RebarRow is a single row of reinforcing bars at a given elevation.
type RebarRow struct {
	Y            float64      // elevation of the row, mm, in the profile's local frame
	BarDiameter  float64      // mm
	BarCount     int          // number of bars in the row (ignored when Distribution==Custom)
	Distribution Distribution
	Offsets      []float64 // per-bar x offsets, mm, used when Distribution==Custom
}

// Area returns the total steel area of the row.
func (r RebarRow) Area() float64 {
	n := r.BarCount
	if r.Distribution == Custom {
		n = len(r.Offsets)
	}
	barArea := pi * r.BarDiameter * r.BarDiameter / 4.0
	return float64(n) * barArea
}

const pi = 3.14159265358979323846

// Layout is the reinforcement attached to a profile: rows in tension,
// compression and shear (stirrups), kept as one canonical shape for all
// profile variants.
type Layout struct {
	TensionRows     []RebarRow
	CompressionRows []RebarRow
	ShearRows       []RebarRow // stirrups; not used by the flexural transform, kept for completeness
}

// TotalArea returns the combined tension+compression steel area.
func (l Layout) TotalArea() float64 {
	var a float64
	for _, r := range l.TensionRows {
		a += r.Area()
	}
	for _, r := range l.CompressionRows {
		a += r.Area()
	}
	return a
}

// CentroidOffset returns the area-weighted elevation of all tension+
// compression rebar relative to referenceY (mm). Positive values are on
// the same side as positive Y.
func (l Layout) CentroidOffset(referenceY float64) float64 {
	var areaSum, momentSum float64
	for _, r := range l.TensionRows {
		a := r.Area()
		areaSum += a
		momentSum += a * (r.Y - referenceY)
	}
	for _, r := range l.CompressionRows {
		a := r.Area()
		areaSum += a
		momentSum += a * (r.Y - referenceY)
	}
	if areaSum == 0 {
		return 0
	}
	return momentSum / areaSum
}
