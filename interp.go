package algonufft

// Interp evaluates the interpolation at scattered query points:
//
//	f(t_m) = sum_{k1,k2} c[k1,k2] h1((t_m1-k1) mod K1) h2((t_m2-k2) mod K2)
//
// points holds the M axis-1 coordinates followed by the M axis-2
// coordinates, in grid units. gridRe (and gridIm, if non-nil) hold the
// K1*K2 coefficients row-major with axis 1 fast. dstRe and dstIm receive
// one value per query point and are fully overwritten. A nil gridIm is
// treated as an all-zero imaginary plane.
//
// Query points must stay within the range the tables were sized for; the
// kernel performs no bounds checks of its own (see the package docs on the
// caller-enforced support contract).
//
// Returns ErrLengthMismatch if points has odd length or the destination or
// grid slices do not match, and ErrNilSlice for missing required slices.
// M = 0 or an empty grid succeeds and leaves dst zeroed.
func (p *Plan[T]) Interp(dstRe, dstIm, gridRe, gridIm, points []T) error {
	if len(points)%2 != 0 {
		return ErrLengthMismatch
	}
	m := len(points) / 2
	if m == 0 {
		return nil
	}
	if dstRe == nil || dstIm == nil || gridRe == nil {
		return ErrNilSlice
	}
	if len(dstRe) != m || len(dstIm) != m {
		return ErrLengthMismatch
	}
	nk := p.GridLen()
	if len(gridRe) != nk || (gridIm != nil && len(gridIm) != nk) {
		return ErrLengthMismatch
	}

	if nk == 0 {
		for i := range dstRe {
			dstRe[i] = 0
			dstIm[i] = 0
		}
		return nil
	}

	if gridIm == nil {
		gridIm = p.zeroImagPlane()
	}

	p.forward(p, dstRe, dstIm, gridRe, gridIm, points)

	return nil
}

func (p *Plan[T]) zeroImagPlane() []T {
	p.zeroOnce.Do(func() {
		p.zeroPlane = make([]T, p.GridLen())
	})

	return p.zeroPlane
}
