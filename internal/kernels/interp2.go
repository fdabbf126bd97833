// Package kernels implements the 2D separable table-interpolation
// evaluators. These are the hot loops: they perform no validation and no
// bounds checks beyond what the slice accesses imply. The caller guarantees
// slice lengths, table support and query-point range; the public Plan API
// enforces that contract once, outside the loop.
//
// All evaluators share the same window walk: for a query point (t1, t2) the
// window on axis a starts at 1 + floor(ta - Ja/2) and covers Ja consecutive
// integers. Axis 2 is the outer loop, axis 1 the inner one, and the grid is
// row-major with axis 1 fast, so the inner loop walks contiguous memory.
package kernels

import (
	"math"

	"github.com/cwbudde/algo-nufft/internal/grid"
	"github.com/cwbudde/algo-nufft/internal/nufftypes"
	"github.com/cwbudde/algo-nufft/internal/table"
)

// Geometry carries the static per-invocation parameters shared by every
// evaluator variant: grid extents, window widths, table subdivision rates
// and the per-axis sign-flip flags.
type Geometry struct {
	K1, K2 int // grid extents
	J1, J2 int // window widths (grid neighbors per axis)
	L1, L2 int // table subdivisions per grid unit
	Flip1  bool
	Flip2  bool
}

func floorInt[T nufftypes.Float](x T) int {
	return int(math.Floor(float64(x)))
}

// Forward2Complex0 evaluates the complex-table, 0th-order variant
// sequentially. dstRe/dstIm are fully overwritten, one value per query
// point; points holds the axis-1 coordinates in its first half and the
// axis-2 coordinates in its second half.
func Forward2Complex0[T nufftypes.Float](g Geometry, h1, h2 table.Complex[T], dstRe, dstIm, ckRe, ckIm, points []T) {
	m := len(dstRe)
	for mm := 0; mm < m; mm++ {
		dstRe[mm], dstIm[mm] = evalComplex0(g, h1, h2, ckRe, ckIm, points[mm], points[m+mm])
	}
}

func evalComplex0[T nufftypes.Float](g Geometry, h1, h2 table.Complex[T], ckRe, ckIm []T, t1, t2 T) (sum2r, sum2i T) {
	koff1 := 1 + floorInt(t1-T(g.J1)/2)
	k2 := 1 + floorInt(t2-T(g.J2)/2)

	for jj2 := 0; jj2 < g.J2; jj2++ {
		p2 := (t2 - T(k2)) * T(g.L2)
		coef2r, coef2i := h2.Sample0(p2)
		k2mod, wrap2 := grid.Wrap(k2, g.K2)
		if g.Flip2 && wrap2%2 != 0 {
			coef2r, coef2i = -coef2r, -coef2i
		}
		row := k2mod * g.K1

		var sum1r, sum1i T
		k1 := koff1

		for jj1 := 0; jj1 < g.J1; jj1++ {
			p1 := (t1 - T(k1)) * T(g.L1)
			coef1r, coef1i := h1.Sample0(p1)
			k1mod, wrap1 := grid.Wrap(k1, g.K1)
			if g.Flip1 && wrap1%2 != 0 {
				coef1r, coef1i = -coef1r, -coef1i
			}
			kk := row + k1mod

			// sum1 += coef1 * ck
			sum1r += coef1r*ckRe[kk] - coef1i*ckIm[kk]
			sum1i += coef1r*ckIm[kk] + coef1i*ckRe[kk]
			k1++
		}

		// sum2 += coef2 * sum1
		sum2r += coef2r*sum1r - coef2i*sum1i
		sum2i += coef2r*sum1i + coef2i*sum1r
		k2++
	}

	return sum2r, sum2i
}

// Forward2Real0 evaluates the real-table, 0th-order variant. The real axis
// weight scales the real and imaginary coefficient planes independently.
func Forward2Real0[T nufftypes.Float](g Geometry, h1, h2 table.Real[T], dstRe, dstIm, ckRe, ckIm, points []T) {
	m := len(dstRe)
	for mm := 0; mm < m; mm++ {
		t1 := points[mm]
		t2 := points[m+mm]

		var sum2r, sum2i T
		koff1 := 1 + floorInt(t1-T(g.J1)/2)
		k2 := 1 + floorInt(t2-T(g.J2)/2)

		for jj2 := 0; jj2 < g.J2; jj2++ {
			p2 := (t2 - T(k2)) * T(g.L2)
			coef2 := h2.Sample0(p2)
			k2mod, wrap2 := grid.Wrap(k2, g.K2)
			if g.Flip2 && wrap2%2 != 0 {
				coef2 = -coef2
			}
			row := k2mod * g.K1

			var sum1r, sum1i T
			k1 := koff1

			for jj1 := 0; jj1 < g.J1; jj1++ {
				p1 := (t1 - T(k1)) * T(g.L1)
				coef1 := h1.Sample0(p1)
				k1mod, wrap1 := grid.Wrap(k1, g.K1)
				if g.Flip1 && wrap1%2 != 0 {
					coef1 = -coef1
				}
				kk := row + k1mod

				sum1r += coef1 * ckRe[kk]
				sum1i += coef1 * ckIm[kk]
				k1++
			}

			sum2r += coef2 * sum1r
			sum2i += coef2 * sum1i
			k2++
		}

		dstRe[mm] = sum2r
		dstIm[mm] = sum2i
	}
}

// Forward2Real1 evaluates the real-table, 1st-order (linear lookup) variant.
// Identical to Forward2Real0 except for the table sampler.
func Forward2Real1[T nufftypes.Float](g Geometry, h1, h2 table.Real[T], dstRe, dstIm, ckRe, ckIm, points []T) {
	m := len(dstRe)
	for mm := 0; mm < m; mm++ {
		t1 := points[mm]
		t2 := points[m+mm]

		var sum2r, sum2i T
		koff1 := 1 + floorInt(t1-T(g.J1)/2)
		k2 := 1 + floorInt(t2-T(g.J2)/2)

		for jj2 := 0; jj2 < g.J2; jj2++ {
			p2 := (t2 - T(k2)) * T(g.L2)
			coef2 := h2.Sample1(p2)
			k2mod, wrap2 := grid.Wrap(k2, g.K2)
			if g.Flip2 && wrap2%2 != 0 {
				coef2 = -coef2
			}
			row := k2mod * g.K1

			var sum1r, sum1i T
			k1 := koff1

			for jj1 := 0; jj1 < g.J1; jj1++ {
				p1 := (t1 - T(k1)) * T(g.L1)
				coef1 := h1.Sample1(p1)
				k1mod, wrap1 := grid.Wrap(k1, g.K1)
				if g.Flip1 && wrap1%2 != 0 {
					coef1 = -coef1
				}
				kk := row + k1mod

				sum1r += coef1 * ckRe[kk]
				sum1i += coef1 * ckIm[kk]
				k1++
			}

			sum2r += coef2 * sum1r
			sum2i += coef2 * sum1i
			k2++
		}

		dstRe[mm] = sum2r
		dstIm[mm] = sum2i
	}
}
