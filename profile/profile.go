// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package profile implements the cross-section tagged union: Polygon,
// Standard and Custom. Every variant answers Area(material) and
// IMajor(material) in mm^2 / mm^4; Polygon derives these from its vertex
// list, Standard/Custom carry stored constants. When the material is
// concrete with attached reinforcement and a calc-type other than Plain,
// the returned values are adjusted for the transformed section.
package profile

import (
	"github.com/VillePe/vefem-sub000/geom2d"
	"github.com/VillePe/vefem-sub000/materials"
	"github.com/VillePe/vefem-sub000/reinforcement"
)

// Profile is the tagged union of cross-section definitions.
type Profile interface {
	// Area returns the section area in mm^2 for the given material.
	Area(mat materials.Material) float64
	// IMajor returns the major-axis second moment of area in mm^4 for the
	// given material.
	IMajor(mat materials.Material) float64
	isProfile()
}

// Polygon is a section defined by an ordered list of vertices (mm), with
// optional attached reinforcement.
type Polygon struct {
	Name          string
	Vertices      []geom2d.Point
	Reinforcement *reinforcement.Layout
}

func (p Polygon) isProfile() {}

func (p Polygon) grossArea() float64 {
	a, _ := geom2d.AreaAndCentroid(p.Vertices)
	return a
}

func (p Polygon) grossIMajor() float64 {
	return geom2d.SecondMomentOfAreaAboutCentroid(p.Vertices)
}

func (p Polygon) Area(mat materials.Material) float64 {
	a := p.grossArea()
	return applyTransformedArea(a, mat, p.Reinforcement)
}

func (p Polygon) IMajor(mat materials.Material) float64 {
	i := p.grossIMajor()
	_, centroid := geom2d.AreaAndCentroid(p.Vertices)
	return applyTransformedIMajor(p.grossArea(), i, centroid.Z, mat, p.Reinforcement)
}

// Standard is a section whose area/inertia are built-in constants, either
// from the small catalogue below (via NewRectangle or NewCircular) or
// supplied directly.
type Standard struct {
	Name          string
	AreaValue     float64 // mm^2
	IMajorValue   float64 // mm^4
	CentroidZ     float64 // mm, elevation of the elastic centroid used for transform
	Reinforcement *reinforcement.Layout
}

func (s Standard) isProfile() {}

func (s Standard) Area(mat materials.Material) float64 {
	return applyTransformedArea(s.AreaValue, mat, s.Reinforcement)
}

func (s Standard) IMajor(mat materials.Material) float64 {
	return applyTransformedIMajor(s.AreaValue, s.IMajorValue, s.CentroidZ, mat, s.Reinforcement)
}

// Custom is a section with explicitly supplied constants and no built-in
// catalogue entry.
type Custom struct {
	Name          string
	AreaValue     float64
	IMajorValue   float64
	CentroidZ     float64
	Reinforcement *reinforcement.Layout
}

func (c Custom) isProfile() {}

func (c Custom) Area(mat materials.Material) float64 {
	return applyTransformedArea(c.AreaValue, mat, c.Reinforcement)
}

func (c Custom) IMajor(mat materials.Material) float64 {
	return applyTransformedIMajor(c.AreaValue, c.IMajorValue, c.CentroidZ, mat, c.Reinforcement)
}

// applyTransformedArea adds the modular-ratio-weighted rebar area offset,
// per spec: A_s * (Es/Ec - 1), when mat is concrete with reinforcement and
// calc-type != Plain.
func applyTransformedArea(grossArea float64, mat materials.Material, reinf *reinforcement.Layout) float64 {
	c, ok := materials.IsConcrete(mat)
	if !ok || reinf == nil || c.CalcType == materials.Plain {
		return grossArea
	}
	n := materials.EsSteel/c.E() - 1.0
	return grossArea + reinf.TotalArea()*n
}

// applyTransformedIMajor shifts the elastic centroid to account for the
// transformed rebar area, then adds the parallel-axis contribution of the
// rebar about the new centroid. ConcreteCalcType.Cracked is not
// implemented (see materials.Cracked) and falls back to the same
// uncracked-transformed value as WithReinforcement.
func applyTransformedIMajor(grossArea, grossI, grossCentroidZ float64, mat materials.Material, reinf *reinforcement.Layout) float64 {
	c, ok := materials.IsConcrete(mat)
	if !ok || reinf == nil || c.CalcType == materials.Plain {
		return grossI
	}
	n := materials.EsSteel/c.E() - 1.0
	asTransformed := reinf.TotalArea() * n
	if grossArea+asTransformed <= 0 {
		return grossI
	}
	// Elastic centroid shift: rebar sits at an offset from the gross
	// centroid; the new centroid is the area-weighted average.
	rebarOffset := reinf.CentroidOffset(grossCentroidZ)
	shift := (asTransformed * rebarOffset) / (grossArea + asTransformed)
	// Parallel-axis theorem: shift the gross inertia to the new centroid,
	// then add the rebar's own parallel-axis contribution.
	iShifted := grossI + grossArea*shift*shift
	iRebar := asTransformed * (rebarOffset - shift) * (rebarOffset - shift)
	return iShifted + iRebar
}

// NewRectangle builds a Standard profile for a solid rectangular section of
// the given width (x) and height (z), in mm.
func NewRectangle(name string, width, height float64) Standard {
	return Standard{
		Name:        name,
		AreaValue:   width * height,
		IMajorValue: width * height * height * height / 12.0,
		CentroidZ:   0,
	}
}

// NewCircular builds a Standard profile for a solid circular section of the
// given diameter, in mm.
func NewCircular(name string, diameter float64) Standard {
	r := diameter / 2.0
	return Standard{
		Name:        name,
		AreaValue:   3.14159265358979323846 * r * r,
		IMajorValue: 3.14159265358979323846 * diameter * diameter * diameter * diameter / 64.0,
		CentroidZ:   0,
	}
}
