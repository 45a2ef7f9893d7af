// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Cholesky holds the lower-triangular factor L of a symmetric positive
// definite matrix A = L*Lᵀ.
type Cholesky struct {
	L Matrix
	n int
}

// CholeskyFactor attempts to factor the SPD matrix a. It returns an error
// (rather than panicking) the moment a non-positive pivot is found, so
// callers can fall back to direct inversion per spec.md §4.5.
func CholeskyFactor(a Matrix) (*Cholesky, error) {
	n := len(a)
	l := Alloc(n, n)
	for j := 0; j < n; j++ {
		var sum float64
		for k := 0; k < j; k++ {
			sum += l[j][k] * l[j][k]
		}
		d := a[j][j] - sum
		if d <= 0 {
			return nil, chk.Err("cholesky: matrix is not positive definite at pivot %d", j)
		}
		l[j][j] = math.Sqrt(d)
		for i := j + 1; i < n; i++ {
			sum = 0
			for k := 0; k < j; k++ {
				sum += l[i][k] * l[j][k]
			}
			l[i][j] = (a[i][j] - sum) / l[j][j]
		}
	}
	return &Cholesky{L: l, n: n}, nil
}

// Solve solves A*x = b using the L*Lᵀ factorization (forward then back
// substitution) and returns x.
func (c *Cholesky) Solve(b []float64) []float64 {
	n := c.n
	y := make([]float64, n)
	// forward substitution: L*y = b
	for i := 0; i < n; i++ {
		sum := b[i]
		for k := 0; k < i; k++ {
			sum -= c.L[i][k] * y[k]
		}
		y[i] = sum / c.L[i][i]
	}
	// back substitution: Lᵀ*x = y
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := y[i]
		for k := i + 1; k < n; k++ {
			sum -= c.L[k][i] * x[k]
		}
		x[i] = sum / c.L[i][i]
	}
	return x
}
