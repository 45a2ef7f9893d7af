// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom2d provides the minimal 2D geometry primitives the section
// and model-preparation code needs: points, polygon area/centroid via the
// shoelace formula, bounding boxes and rotations. Kept deliberately small -
// a general-purpose geometry kernel is out of scope for this module.
package geom2d

import "math"

// Point is a 2D point (or vector) in millimetres.
type Point struct {
	X, Z float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Z - q.Z} }

// Norm returns the Euclidean length of p treated as a vector from the origin.
func (p Point) Norm() float64 { return math.Hypot(p.X, p.Z) }

// Rotated returns p rotated by angleDeg degrees counter-clockwise about the
// origin.
func (p Point) Rotated(angleDeg float64) Point {
	a := angleDeg * math.Pi / 180.0
	c, s := math.Cos(a), math.Sin(a)
	return Point{
		X: p.X*c - p.Z*s,
		Z: p.X*s + p.Z*c,
	}
}

// Cross2D returns the z-component of the cross product (a x b) of two
// vectors lying in the x-z plane.
func Cross2D(a, b Point) float64 { return a.X*b.Z - a.Z*b.X }

// BBox is an axis-aligned bounding box.
type BBox struct {
	MinX, MaxX, MinZ, MaxZ float64
}

// Width returns MaxX-MinX.
func (b BBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxZ-MinZ.
func (b BBox) Height() float64 { return b.MaxZ - b.MinZ }

// BoundingBox returns the axis-aligned bounding box of a closed polygon
// given as an ordered list of vertices.
func BoundingBox(verts []Point) BBox {
	if len(verts) == 0 {
		return BBox{}
	}
	b := BBox{MinX: verts[0].X, MaxX: verts[0].X, MinZ: verts[0].Z, MaxZ: verts[0].Z}
	for _, v := range verts[1:] {
		b.MinX = math.Min(b.MinX, v.X)
		b.MaxX = math.Max(b.MaxX, v.X)
		b.MinZ = math.Min(b.MinZ, v.Z)
		b.MaxZ = math.Max(b.MaxZ, v.Z)
	}
	return b
}

// AreaAndCentroid computes the (unsigned) area and centroid of a simple
// closed polygon using the shoelace formula.
func AreaAndCentroid(verts []Point) (area float64, centroid Point) {
	n := len(verts)
	if n < 3 {
		return 0, Point{}
	}
	var signedArea, sumX, sumZ float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := verts[i].X*verts[j].Z - verts[j].X*verts[i].Z
		signedArea += cross
		sumX += (verts[i].X + verts[j].X) * cross
		sumZ += (verts[i].Z + verts[j].Z) * cross
	}
	signedArea /= 2
	area = math.Abs(signedArea)
	if signedArea != 0 {
		centroid.X = sumX / (6 * signedArea)
		centroid.Z = sumZ / (6 * signedArea)
	}
	return
}

// SecondMomentOfAreaAboutCentroid computes the second moment of area of a
// simple closed polygon about its own centroidal x-axis (i.e. bending about
// the major/horizontal axis, "Izz" in beam-theory notation), using the
// standard closed-form polygon integral.
func SecondMomentOfAreaAboutCentroid(verts []Point) float64 {
	n := len(verts)
	if n < 3 {
		return 0
	}
	_, c := AreaAndCentroid(verts)
	var ix float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		xi, zi := verts[i].X-c.X, verts[i].Z-c.Z
		xj, zj := verts[j].X-c.X, verts[j].Z-c.Z
		cross := xi*zj - xj*zi
		ix += (zi*zi + zi*zj + zj*zj) * cross
	}
	return math.Abs(ix) / 12.0
}
