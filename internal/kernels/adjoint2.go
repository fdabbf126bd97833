package kernels

import (
	"github.com/cwbudde/algo-nufft/internal/grid"
	"github.com/cwbudde/algo-nufft/internal/nufftypes"
	"github.com/cwbudde/algo-nufft/internal/table"
)

// The adjoint evaluators scatter sample values back onto the grid with
// complex-conjugated table weights:
//
//	c[k1,k2] = sum_m f(t_m) h1*((t_m1-k1) mod K1) h2*((t_m2-k2) mod K2)
//
// They walk the same window as the forward loops and accumulate into
// overlapping grid slots, so they run sequentially. The destination planes
// are zeroed up front; callers get a full overwrite, not an accumulate.

// Adjoint2Complex0 is the adjoint of the complex-table, 0th-order variant.
func Adjoint2Complex0[T nufftypes.Float](g Geometry, h1, h2 table.Complex[T], ckRe, ckIm, srcRe, srcIm, points []T) {
	for i := range ckRe {
		ckRe[i] = 0
		ckIm[i] = 0
	}

	m := len(srcRe)
	for mm := 0; mm < m; mm++ {
		t1 := points[mm]
		t2 := points[m+mm]
		fmr := srcRe[mm]
		fmi := srcIm[mm]

		koff1 := 1 + floorInt(t1-T(g.J1)/2)
		k2 := 1 + floorInt(t2-T(g.J2)/2)

		for jj2 := 0; jj2 < g.J2; jj2++ {
			p2 := (t2 - T(k2)) * T(g.L2)
			coef2r, coef2i := h2.Sample0(p2)
			coef2i = -coef2i
			k2mod, wrap2 := grid.Wrap(k2, g.K2)
			if g.Flip2 && wrap2%2 != 0 {
				coef2r, coef2i = -coef2r, -coef2i
			}
			row := k2mod * g.K1

			// v = coef2' * f(t_m)
			vr := coef2r*fmr - coef2i*fmi
			vi := coef2r*fmi + coef2i*fmr
			k1 := koff1

			for jj1 := 0; jj1 < g.J1; jj1++ {
				p1 := (t1 - T(k1)) * T(g.L1)
				coef1r, coef1i := h1.Sample0(p1)
				coef1i = -coef1i
				k1mod, wrap1 := grid.Wrap(k1, g.K1)
				if g.Flip1 && wrap1%2 != 0 {
					coef1r, coef1i = -coef1r, -coef1i
				}
				kk := row + k1mod

				ckRe[kk] += coef1r*vr - coef1i*vi
				ckIm[kk] += coef1r*vi + coef1i*vr
				k1++
			}
			k2++
		}
	}
}

// Adjoint2Real0 is the adjoint of the real-table, 0th-order variant.
// Real weights are self-conjugate, so only the sign flip applies.
func Adjoint2Real0[T nufftypes.Float](g Geometry, h1, h2 table.Real[T], ckRe, ckIm, srcRe, srcIm, points []T) {
	for i := range ckRe {
		ckRe[i] = 0
		ckIm[i] = 0
	}

	m := len(srcRe)
	for mm := 0; mm < m; mm++ {
		t1 := points[mm]
		t2 := points[m+mm]
		fmr := srcRe[mm]
		fmi := srcIm[mm]

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

			vr := coef2 * fmr
			vi := coef2 * fmi
			k1 := koff1

			for jj1 := 0; jj1 < g.J1; jj1++ {
				p1 := (t1 - T(k1)) * T(g.L1)
				coef1 := h1.Sample0(p1)
				k1mod, wrap1 := grid.Wrap(k1, g.K1)
				if g.Flip1 && wrap1%2 != 0 {
					coef1 = -coef1
				}
				kk := row + k1mod

				ckRe[kk] += coef1 * vr
				ckIm[kk] += coef1 * vi
				k1++
			}
			k2++
		}
	}
}

// Adjoint2Real1 is the adjoint of the real-table, 1st-order variant.
func Adjoint2Real1[T nufftypes.Float](g Geometry, h1, h2 table.Real[T], ckRe, ckIm, srcRe, srcIm, points []T) {
	for i := range ckRe {
		ckRe[i] = 0
		ckIm[i] = 0
	}

	m := len(srcRe)
	for mm := 0; mm < m; mm++ {
		t1 := points[mm]
		t2 := points[m+mm]
		fmr := srcRe[mm]
		fmi := srcIm[mm]

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

			vr := coef2 * fmr
			vi := coef2 * fmi
			k1 := koff1

			for jj1 := 0; jj1 < g.J1; jj1++ {
				p1 := (t1 - T(k1)) * T(g.L1)
				coef1 := h1.Sample1(p1)
				k1mod, wrap1 := grid.Wrap(k1, g.K1)
				if g.Flip1 && wrap1%2 != 0 {
					coef1 = -coef1
				}
				kk := row + k1mod

				ckRe[kk] += coef1 * vr
				ckIm[kk] += coef1 * vi
				k1++
			}
			k2++
		}
	}
}
