package algonufft

// Adjoint scatters sample values back onto the grid, the reverse of Interp,
// with complex-conjugated table weights:
//
//	c[k1,k2] = sum_m f(t_m) h1*((t_m1-k1) mod K1) h2*((t_m2-k2) mod K2)
//
// srcRe/srcIm hold the M sample values (srcIm may be nil for real samples),
// points the 2M coordinates as in Interp. gridRe and gridIm receive the
// K1*K2 accumulated coefficients and are fully overwritten. The adjoint
// runs sequentially in every variant.
//
// Returns ErrLengthMismatch or ErrNilSlice under the same rules as Interp.
// M = 0 succeeds and leaves the grid zeroed.
func (p *Plan[T]) Adjoint(gridRe, gridIm, srcRe, srcIm, points []T) error {
	if len(points)%2 != 0 {
		return ErrLengthMismatch
	}
	m := len(points) / 2
	nk := p.GridLen()
	if nk == 0 {
		return nil
	}
	if gridRe == nil || gridIm == nil {
		return ErrNilSlice
	}
	if len(gridRe) != nk || len(gridIm) != nk {
		return ErrLengthMismatch
	}
	if len(srcRe) != m || (srcIm != nil && len(srcIm) != m) {
		return ErrLengthMismatch
	}
	if m == 0 {
		for i := range gridRe {
			gridRe[i] = 0
			gridIm[i] = 0
		}
		return nil
	}
	if srcIm == nil {
		srcIm = make([]T, m)
	}

	p.adjoint(p, gridRe, gridIm, srcRe, srcIm, points)

	return nil
}
