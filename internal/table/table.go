// Package table provides centered views over precomputed 1D interpolation
// tables and the two lookup orders used by the evaluation kernels.
//
// A table of length J*L+1 samples an interpolation kernel with support
// [-J/2, J/2] at L subdivisions per grid unit. The views re-center the
// table so that index 0 addresses the sample at offset 0; this is a pure
// index-origin shift computed once per view, never a copy. Lookups perform
// no bounds checks: the caller guarantees, by sizing the table for the
// query points it supplies, that every lookup index lands inside the table.
package table

import (
	"math"

	"github.com/cwbudde/algo-nufft/internal/nufftypes"
)

// Real is a centered view over a real-valued interpolation table.
// The zero value is not usable; construct with NewReal.
type Real[T nufftypes.Float] struct {
	h      []T
	center int
}

// NewReal wraps a real table of length j*l+1. The center sample sits at
// index floor(j*l/2) of the underlying slice.
func NewReal[T nufftypes.Float](samples []T, j, l int) Real[T] {
	return Real[T]{h: samples, center: j * l / 2}
}

// At returns the table sample at centered index n (n = 0 is offset 0).
func (t Real[T]) At(n int) T {
	return t.h[t.center+n]
}

// Sample0 returns the 0th-order interpolation weight for fractional table
// offset p: the sample nearest to p, with ties rounded away from zero.
func (t Real[T]) Sample0(p T) T {
	return t.h[t.center+roundInt(p)]
}

// Sample1 returns the 1st-order interpolation weight for fractional table
// offset p: the linear blend of the two samples bracketing p.
func (t Real[T]) Sample1(p T) T {
	n := floorInt(p)
	alf := p - T(n)
	base := t.center + n

	return (1-alf)*t.h[base] + alf*t.h[base+1]
}

// Complex is a centered view over a complex-valued interpolation table
// stored as separate real and imaginary planes.
type Complex[T nufftypes.Float] struct {
	re     []T
	im     []T
	center int
}

// NewComplex wraps a complex table of length j*l+1 per plane.
func NewComplex[T nufftypes.Float](re, im []T, j, l int) Complex[T] {
	return Complex[T]{re: re, im: im, center: j * l / 2}
}

// Sample0 returns the 0th-order complex interpolation weight for fractional
// table offset p as separate real and imaginary parts.
func (t Complex[T]) Sample0(p T) (re, im T) {
	n := t.center + roundInt(p)

	return t.re[n], t.im[n]
}

func floorInt[T nufftypes.Float](x T) int {
	return int(math.Floor(float64(x)))
}

func roundInt[T nufftypes.Float](x T) int {
	return int(math.Round(float64(x)))
}
