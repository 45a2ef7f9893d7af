// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linalg is the dense-matrix-algebra collaborator boundary: thin
// wrappers over github.com/cpmech/gosl/la for allocation, multiplication,
// transpose and inversion, plus a hand-written Cholesky factor+solve (the
// retrieved gosl surface exposes Gauss-Jordan inversion but no dense
// Cholesky entry point - see DESIGN.md).
package linalg

import (
	"github.com/cpmech/gosl/la"
)

// Matrix is a dense row-major matrix, same shape gosl/la operates on.
type Matrix = [][]float64

// Alloc allocates a zeroed r x c matrix.
func Alloc(r, c int) Matrix { return la.MatAlloc(r, c) }

// AllocVec allocates a zeroed vector of length n.
func AllocVec(n int) []float64 { return make([]float64, n) }

// Fill sets every entry of m to v.
func Fill(m Matrix, v float64) { la.MatFill(m, v) }

// GlobalFromLocal computes Rᵀ·K·R (the global-frame stiffness/load
// transform used throughout C3-C5), writing into dst.
func GlobalFromLocal(dst, rot, local Matrix) {
	la.MatTrMul3(dst, 1, rot, local, rot)
}

// MulAdd adds coef*A*x into dst (dst += coef*A*x).
func MulAdd(dst []float64, coef float64, a Matrix, x []float64) {
	n := len(dst)
	for i := 0; i < n; i++ {
		var s float64
		for j := 0; j < len(x); j++ {
			s += a[i][j] * x[j]
		}
		dst[i] += coef * s
	}
}

// MulVec computes dst = coef*A*x.
func MulVec(dst []float64, coef float64, a Matrix, x []float64) {
	la.MatVecMul(dst, coef, a, x)
}

// TransposeMulVecAdd adds coef*Aᵀ*x into dst.
func TransposeMulVecAdd(dst []float64, coef float64, a Matrix, x []float64) {
	la.MatTrVecMulAdd(dst, coef, a, x)
}

// Invert computes the inverse of a into dst, returning the determinant.
// minDet guards against near-singular matrices the same way gosl/la's
// MatInv does throughout the teacher's shape-function Jacobian inversions.
func Invert(dst, a Matrix, minDet float64) (det float64, err error) {
	return la.MatInv(dst, a, minDet)
}

// Extract returns the square submatrix of a restricted to rows/cols in idx,
// and the subvector of f restricted to idx.
func Extract(a Matrix, f []float64, idx []int) (sub Matrix, subF []float64) {
	n := len(idx)
	sub = Alloc(n, n)
	subF = AllocVec(n)
	for i, I := range idx {
		subF[i] = f[I]
		for j, J := range idx {
			sub[i][j] = a[I][J]
		}
	}
	return
}

// Scatter writes the solution for the unknown indices idx into a
// zero-initialized vector of length n.
func Scatter(n int, idx []int, values []float64) []float64 {
	v := AllocVec(n)
	for i, I := range idx {
		v[I] = values[i]
	}
	return v
}
