// Package grid provides periodic index arithmetic for the uniform
// coefficient grid underneath the table-interpolation kernels.
//
// The grid is stored row-major with axis 1 as the fast (inner) axis:
// element (k1, k2) lives at linear index k2*K1 + k1. Both kernels and the
// adjoint rely on this layout; it must not change independently of them.
package grid

// Wrap maps an integer grid offset k, which may be negative or exceed the
// period, onto the canonical index range [0, period). It returns the wrapped
// index and the number of full periods subtracted, using floor semantics:
//
//	k == kmod + period*wraps,  0 <= kmod < period
//
// Floor semantics (not truncation) matter for negative k: Wrap(-1, 8)
// returns (7, -1), never (-1, 0). The wrap count drives the optional
// per-axis sign flip for alternating-sign kernel extensions.
//
// period must be positive; the caller guarantees this.
func Wrap(k, period int) (kmod, wraps int) {
	wraps = k / period
	kmod = k - period*wraps
	if kmod < 0 {
		kmod += period
		wraps--
	}

	return kmod, wraps
}

// Index returns the row-major linear index of grid element (k1mod, k2mod)
// for a grid with inner-axis extent k1. Both indices must already be
// wrapped into range.
func Index(k1mod, k2mod, k1 int) int {
	return k2mod*k1 + k1mod
}
